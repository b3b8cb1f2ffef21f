package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"nutrimatch/domain"
)

// Columns the scoring engine cannot run without. Rows missing any of them
// are dropped, counted, and otherwise ignored: a data-quality policy, not an
// error.
var requiredColumns = []string{
	"food", "protein", "fat", "carbs", "fiber", "calories", "health_score_norm",
}

var optionalNumericColumns = []string{"grams", "sat_fat"}

// LoadResult carries the usable rows plus the observable drop count.
type LoadResult struct {
	Foods       []domain.FoodItem
	DroppedRows int
}

// LoadNutritionCSV reads the cleaned nutrition dataset. The header is
// matched case-insensitively; required columns must all be present. Rows
// where any required numeric feature fails to parse are dropped silently by
// exclusion and reported via DroppedRows.
func LoadNutritionCSV(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nutrition dataset: %w", err)
	}
	defer f.Close()

	return parseNutritionCSV(f)
}

func parseNutritionCSV(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[domain.CanonicalFoodName(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("nutrition dataset missing required column %q", required)
		}
	}

	result := &LoadResult{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		item, ok := parseRow(record, cols)
		if !ok {
			result.DroppedRows++
			continue
		}

		result.Foods = append(result.Foods, item)
	}

	return result, nil
}

func parseRow(record []string, cols map[string]int) (domain.FoodItem, bool) {
	food := domain.CanonicalFoodName(field(record, cols, "food"))
	if food == "" {
		return domain.FoodItem{}, false
	}

	values := make(map[string]float64, len(requiredColumns)-1)
	for _, col := range requiredColumns[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field(record, cols, col)), 64)
		if err != nil {
			return domain.FoodItem{}, false
		}
		values[col] = v
	}

	item := domain.FoodItem{
		Food:            food,
		Measure:         strings.TrimSpace(field(record, cols, "measure")),
		Category:        strings.TrimSpace(field(record, cols, "category")),
		Calories:        values["calories"],
		Protein:         values["protein"],
		Fat:             values["fat"],
		Fiber:           values["fiber"],
		Carbs:           values["carbs"],
		HealthScoreNorm: values["health_score_norm"],
	}

	// optional columns default to zero when absent or malformed
	for _, col := range optionalNumericColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(field(record, cols, col)), 64)
		if err != nil {
			continue
		}
		switch col {
		case "grams":
			item.Grams = v
		case "sat_fat":
			item.SatFat = v
		}
	}

	return item, true
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
