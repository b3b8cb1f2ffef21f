package recommender

import "nutrimatch/domain"

// Small deterministic catalog used across the package tests.
func fixtureFoods() []domain.FoodItem {
	return []domain.FoodItem{
		{Food: "potato chips", Protein: 2, Fat: 10, Carbs: 15, Fiber: 1, Calories: 160, HealthScoreNorm: 25},
		{Food: "almonds", Protein: 6, Fat: 14, Carbs: 6, Fiber: 3.5, Calories: 164, HealthScoreNorm: 78},
		{Food: "apple", Protein: 0.5, Fat: 0.3, Carbs: 25, Fiber: 4.4, Calories: 95, HealthScoreNorm: 88},
		{Food: "granola bar", Protein: 3, Fat: 6, Carbs: 18, Fiber: 2, Calories: 120, HealthScoreNorm: 55},
		{Food: "greek yogurt", Protein: 10, Fat: 0.7, Carbs: 6, Fiber: 0, Calories: 100, HealthScoreNorm: 82},
	}
}

func fixtureIndex() *FeatureIndex {
	return NewFeatureIndex(fixtureFoods())
}

// The two-food catalog from the scoring walkthrough: "b" is strictly
// healthier than "a".
func pairFoods() []domain.FoodItem {
	return []domain.FoodItem{
		{Food: "a", Protein: 5, Fat: 1, Carbs: 20, Fiber: 3, Calories: 100, HealthScoreNorm: 80},
		{Food: "b", Protein: 10, Fat: 0, Carbs: 10, Fiber: 6, Calories: 50, HealthScoreNorm: 95},
	}
}
