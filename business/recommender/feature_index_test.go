package recommender

import (
	"math"
	"testing"

	"nutrimatch/domain"
)

func TestFeatureIndexCanonicalLookup(t *testing.T) {
	ix := NewFeatureIndex([]domain.FoodItem{
		{Food: "  Potato Chips ", Protein: 2, Fat: 10, Carbs: 15, Fiber: 1, Calories: 160, HealthScoreNorm: 25},
		{Food: "Almonds", Protein: 6, Fat: 14, Carbs: 6, Fiber: 3.5, Calories: 164, HealthScoreNorm: 78},
	})

	if ix.Len() != 2 {
		t.Fatalf("expected 2 foods, got %d", ix.Len())
	}

	i, ok := ix.Lookup(" POTATO CHIPS ")
	if !ok {
		t.Fatal("expected canonicalized lookup to succeed")
	}
	if got := ix.Food(i).Food; got != "potato chips" {
		t.Errorf("expected stored name %q, got %q", "potato chips", got)
	}

	if _, ok := ix.Lookup("granola bar"); ok {
		t.Error("expected lookup of unknown food to fail")
	}
}

func TestFeatureIndexDuplicateKeepsFirst(t *testing.T) {
	ix := NewFeatureIndex([]domain.FoodItem{
		{Food: "almonds", Protein: 6, Fat: 14, Carbs: 6, Fiber: 3.5, Calories: 164, HealthScoreNorm: 78},
		{Food: " Almonds ", Protein: 99, Fat: 99, Carbs: 99, Fiber: 99, Calories: 999, HealthScoreNorm: 1},
	})

	if ix.Len() != 1 {
		t.Fatalf("expected duplicate row to be skipped, got %d rows", ix.Len())
	}

	i, _ := ix.Lookup("almonds")
	if ix.Food(i).Protein != 6 {
		t.Errorf("expected first occurrence to win, got protein %v", ix.Food(i).Protein)
	}
}

func TestFeatureIndexZeroVarianceColumn(t *testing.T) {
	// every food has identical calories: the column has zero std and must
	// normalize to 0 instead of NaN/Inf
	ix := NewFeatureIndex([]domain.FoodItem{
		{Food: "a", Protein: 1, Fat: 2, Carbs: 3, Fiber: 4, Calories: 100, HealthScoreNorm: 50},
		{Food: "b", Protein: 5, Fat: 6, Carbs: 7, Fiber: 8, Calories: 100, HealthScoreNorm: 70},
	})

	for i, row := range ix.norm {
		for col, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("row %d col %d not finite: %v", i, col, v)
			}
		}
		if row[featCalories] != 0 {
			t.Errorf("expected constant column to normalize to 0, got %v", row[featCalories])
		}
	}
}

func TestFeatureIndexZScoreShape(t *testing.T) {
	ix := fixtureIndex()

	// per column: mean 0, std 1 (population) within floating point noise
	for col := 0; col < featureDim; col++ {
		sum := 0.0
		for _, row := range ix.norm {
			sum += row[col]
		}
		mean := sum / float64(ix.Len())
		if math.Abs(mean) > 1e-9 {
			t.Errorf("col %d: expected zero mean, got %v", col, mean)
		}

		variance := 0.0
		for _, row := range ix.norm {
			variance += row[col] * row[col]
		}
		variance /= float64(ix.Len())
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("col %d: expected unit variance, got %v", col, variance)
		}
	}
}
