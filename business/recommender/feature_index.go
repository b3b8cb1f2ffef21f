package recommender

import (
	"math"

	"nutrimatch/domain"
)

// The six numeric features every scoring computation runs on.
const featureDim = 6

const (
	featProtein = iota
	featFat
	featCarbs
	featFiber
	featCalories
	featHealthScore
)

// FeatureIndex is the immutable in-memory handle over the loaded nutrition
// dataset: canonical name lookup, raw feature matrix and its z-score
// normalized form. Built once at startup and passed into every core call so
// tests can construct isolated fixtures.
type FeatureIndex struct {
	foods  []domain.FoodItem
	byName map[string]int
	raw    [][featureDim]float64
	norm   [][featureDim]float64
	mean   [featureDim]float64
	std    [featureDim]float64
}

func featureVector(f domain.FoodItem) [featureDim]float64 {
	return [featureDim]float64{
		featProtein:     f.Protein,
		featFat:         f.Fat,
		featCarbs:       f.Carbs,
		featFiber:       f.Fiber,
		featCalories:    f.Calories,
		featHealthScore: f.HealthScoreNorm,
	}
}

// NewFeatureIndex builds the index from loaded food items. Names are
// canonicalized; a duplicate canonical name keeps the first occurrence.
// Normalization uses per-column population mean/std; a zero std is
// substituted with 1 so constant columns normalize to 0 instead of NaN.
func NewFeatureIndex(items []domain.FoodItem) *FeatureIndex {
	ix := &FeatureIndex{
		byName: make(map[string]int, len(items)),
	}

	for _, item := range items {
		name := domain.CanonicalFoodName(item.Food)
		if name == "" {
			continue
		}
		if _, exists := ix.byName[name]; exists {
			continue
		}

		item.Food = name
		ix.byName[name] = len(ix.foods)
		ix.foods = append(ix.foods, item)
		ix.raw = append(ix.raw, featureVector(item))
	}

	n := float64(len(ix.raw))
	if n == 0 {
		return ix
	}

	for col := 0; col < featureDim; col++ {
		sum := 0.0
		for _, row := range ix.raw {
			sum += row[col]
		}
		mean := sum / n

		variance := 0.0
		for _, row := range ix.raw {
			d := row[col] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / n)
		if std == 0 {
			std = 1
		}

		ix.mean[col] = mean
		ix.std[col] = std
	}

	ix.norm = make([][featureDim]float64, len(ix.raw))
	for i, row := range ix.raw {
		for col := 0; col < featureDim; col++ {
			ix.norm[i][col] = (row[col] - ix.mean[col]) / ix.std[col]
		}
	}

	return ix
}

// Len returns the number of indexed foods.
func (ix *FeatureIndex) Len() int {
	return len(ix.foods)
}

// Lookup resolves a canonical food name to its row index.
func (ix *FeatureIndex) Lookup(name string) (int, bool) {
	i, ok := ix.byName[domain.CanonicalFoodName(name)]
	return i, ok
}

// Food returns the item at row i.
func (ix *FeatureIndex) Food(i int) domain.FoodItem {
	return ix.foods[i]
}

// Foods returns all indexed items in row order.
func (ix *FeatureIndex) Foods() []domain.FoodItem {
	return ix.foods
}
