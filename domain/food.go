package domain

import "strings"

// FoodItem is one row of the nutrition dataset. Items are immutable once
// loaded; the feature index owns them for the lifetime of the process.
type FoodItem struct {
	Food            string  `json:"food"`
	Measure         string  `json:"measure"`
	Grams           float64 `json:"grams"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Fat             float64 `json:"fat"`
	SatFat          float64 `json:"sat_fat"`
	Fiber           float64 `json:"fiber"`
	Carbs           float64 `json:"carbs"`
	Category        string  `json:"category"`
	HealthScoreNorm float64 `json:"health_score_norm"` // precomputed, 0-100
}

// CanonicalFoodName is the join/lookup key used across all components:
// lower-cased, whitespace-trimmed.
func CanonicalFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Recommendation is ephemeral, produced per request, never persisted as-is.
type Recommendation struct {
	Food             FoodItem `json:"food"`
	Similarity       float64  `json:"similarity"`
	HealthNorm       float64  `json:"health_norm"`
	InteractionScore float64  `json:"interaction_score"`
	HybridScore      float64  `json:"hybrid_score"`
	Confidence       float64  `json:"confidence"`
	Reason           string   `json:"reason,omitempty"`
}

// NutrientPreferences is the per-user weighted-average nutrient profile
// derived from the interaction log. A nil value means "no profile yet".
type NutrientPreferences struct {
	Protein         float64 `json:"protein"`
	Fat             float64 `json:"fat"`
	Carbs           float64 `json:"carbs"`
	Fiber           float64 `json:"fiber"`
	Calories        float64 `json:"calories"`
	HealthScoreNorm float64 `json:"health_score_norm"`
}
