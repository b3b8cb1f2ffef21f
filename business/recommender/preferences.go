package recommender

import (
	"context"
	"fmt"

	"nutrimatch/domain"
)

// NutrientPreferences derives the user's weighted-average nutrient profile
// from the raw interaction log: sum(feature x weight) / sum(weight) over
// events whose food exists in the index. Unmatched foods are skipped without
// error. Returns nil when the user has no events or the weight sum stays
// zero.
func (s *Service) NutrientPreferences(ctx context.Context, userID uint) (*domain.NutrientPreferences, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	events, err := s.interactions.EventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interaction events: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	var totals [featureDim]float64
	weightSum := 0.0

	for _, ev := range events {
		idx, ok := s.index.Lookup(ev.FoodName)
		if !ok {
			continue
		}

		row := s.index.raw[idx]
		for col := 0; col < featureDim; col++ {
			totals[col] += row[col] * ev.InteractionWeight
		}
		weightSum += ev.InteractionWeight
	}

	if weightSum == 0 {
		return nil, nil
	}

	return &domain.NutrientPreferences{
		Protein:         totals[featProtein] / weightSum,
		Fat:             totals[featFat] / weightSum,
		Carbs:           totals[featCarbs] / weightSum,
		Fiber:           totals[featFiber] / weightSum,
		Calories:        totals[featCalories] / weightSum,
		HealthScoreNorm: totals[featHealthScore] / weightSum,
	}, nil
}
