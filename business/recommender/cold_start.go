package recommender

import (
	"sort"

	"nutrimatch/domain"
)

// Every cold-start row carries the same baseline confidence: without any
// interaction history there is nothing to differentiate certainty on.
const coldStartConfidence = 60.0

// coldStartRecommendations ranks strictly by health score, no similarity or
// interaction computation. The hybrid score is the normalized health score so
// the [0,1] invariant holds on both scoring paths.
func coldStartRecommendations(ix *FeatureIndex, topN int) []domain.Recommendation {
	if topN <= 0 || ix.Len() == 0 {
		return []domain.Recommendation{}
	}

	recs := make([]domain.Recommendation, 0, ix.Len())
	for _, food := range ix.Foods() {
		recs = append(recs, domain.Recommendation{
			Food:        food,
			HealthNorm:  food.HealthScoreNorm / 100,
			HybridScore: food.HealthScoreNorm / 100,
			Confidence:  coldStartConfidence,
		})
	}

	sort.Slice(recs, func(a, b int) bool {
		if recs[a].Food.HealthScoreNorm != recs[b].Food.HealthScoreNorm {
			return recs[a].Food.HealthScoreNorm > recs[b].Food.HealthScoreNorm
		}
		return recs[a].Food.Food < recs[b].Food.Food
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}

	return recs
}
