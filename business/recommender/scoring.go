package recommender

import (
	"math"
	"sort"

	"nutrimatch/domain"
)

// Hybrid ranking weights. Fixed, sum to 1.0 over three normalized inputs
// (similarity may be negative and is deliberately not clamped).
const (
	weightSimilarity  = 0.55
	weightHealth      = 0.25
	weightInteraction = 0.20
)

// Confidence blends the same three signals with its own weights. They are
// intentionally different from the hybrid weights: confidence expresses
// certainty, not rank, and may diverge from ranking order.
const (
	confWeightSimilarity  = 0.5
	confWeightInteraction = 0.3
	confWeightHealth      = 0.2
)

// computeConfidence returns the 0-100 confidence value rounded to one decimal.
func computeConfidence(similarity, interaction, healthNorm float64) float64 {
	c := confWeightSimilarity*similarity +
		confWeightInteraction*interaction +
		confWeightHealth*healthNorm
	return math.Round(c*100*10) / 10
}

// rankCandidates blends similarity, normalized health score and the
// (max-rescaled) interaction signal into a descending hybrid ranking. The
// query food itself is excluded. Ties break on canonical food name so output
// is deterministic regardless of dataset row order.
func rankCandidates(
	ix *FeatureIndex,
	queryIdx int,
	sims []float64,
	interactionScores map[string]float64,
	topN int,
) []domain.Recommendation {

	if topN <= 0 || ix.Len() == 0 {
		return []domain.Recommendation{}
	}

	// normalize the interaction signal by its max; all zero stays all zero
	maxInteraction := 0.0
	for i := 0; i < ix.Len(); i++ {
		if s := interactionScores[ix.Food(i).Food]; s > maxInteraction {
			maxInteraction = s
		}
	}

	recs := make([]domain.Recommendation, 0, ix.Len()-1)
	for i := 0; i < ix.Len(); i++ {
		if i == queryIdx {
			continue
		}

		food := ix.Food(i)
		healthNorm := food.HealthScoreNorm / 100

		interaction := 0.0
		if maxInteraction > 0 {
			interaction = interactionScores[food.Food] / maxInteraction
		}

		hybrid := weightSimilarity*sims[i] +
			weightHealth*healthNorm +
			weightInteraction*interaction

		recs = append(recs, domain.Recommendation{
			Food:             food,
			Similarity:       sims[i],
			HealthNorm:       healthNorm,
			InteractionScore: interaction,
			HybridScore:      hybrid,
			Confidence:       computeConfidence(sims[i], interaction, healthNorm),
		})
	}

	sort.Slice(recs, func(a, b int) bool {
		if recs[a].HybridScore != recs[b].HybridScore {
			return recs[a].HybridScore > recs[b].HybridScore
		}
		return recs[a].Food.Food < recs[b].Food.Food
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}

	return recs
}
