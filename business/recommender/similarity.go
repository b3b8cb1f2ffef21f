package recommender

import "math"

// Similarity computes cosine similarity of the query food's normalized
// feature vector against every row, including the query itself. Callers are
// responsible for excluding self-matches downstream. No fuzzy matching: the
// canonicalized name must exist exactly.
func (ix *FeatureIndex) Similarity(queryFood string) ([]float64, error) {
	idx, ok := ix.Lookup(queryFood)
	if !ok {
		return nil, &NotFoundError{Food: queryFood}
	}

	query := ix.norm[idx]
	sims := make([]float64, len(ix.norm))
	for i, row := range ix.norm {
		sims[i] = cosine(query, row)
	}

	return sims, nil
}

func cosine(a, b [featureDim]float64) float64 {
	var dot, na, nb float64
	for i := 0; i < featureDim; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
