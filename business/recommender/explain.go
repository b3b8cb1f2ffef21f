package recommender

import (
	"strings"

	"nutrimatch/domain"
)

const explainFallback = "Recommended due to overall nutritional balance."

// ExplainRecommendation builds the human-readable justification for one
// recommended item relative to the selected item and (if available) the
// user's derived nutrient preference profile. Rules are evaluated in fixed
// order; each satisfied rule appends one clause. Pure function.
func ExplainRecommendation(selected, recommended domain.FoodItem, prefs *domain.NutrientPreferences) string {
	var reasons []string

	if recommended.Protein > selected.Protein {
		reasons = append(reasons, "higher protein")
	}

	if recommended.Fiber > selected.Fiber {
		reasons = append(reasons, "more fiber")
	}

	if recommended.Calories < selected.Calories {
		reasons = append(reasons, "fewer calories")
	}

	if recommended.Fat < selected.Fat {
		reasons = append(reasons, "lower fat")
	}

	if prefs != nil {
		if recommended.Protein >= prefs.Protein {
			reasons = append(reasons, "matches your protein preference")
		}

		if recommended.Fiber >= prefs.Fiber {
			reasons = append(reasons, "supports your fiber goals")
		}

		if recommended.Calories <= prefs.Calories {
			reasons = append(reasons, "fits your calorie tolerance")
		}
	}

	if len(reasons) == 0 {
		return explainFallback
	}

	return "Recommended because it has " + strings.Join(reasons, ", ") + "."
}
