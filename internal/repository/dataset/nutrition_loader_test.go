package dataset

import (
	"strings"
	"testing"
)

const validHeader = "food,measure,grams,calories,protein,fat,sat_fat,fiber,carbs,category,health_score_norm\n"

func TestParseNutritionCSV(t *testing.T) {
	csv := validHeader +
		"Almonds,1 oz,28,164,6,14,1.1,3.5,6,Nuts,78\n" +
		"apple,1 medium,182,95,0.5,0.3,0.1,4.4,25,Fruit,88\n"

	result, err := parseNutritionCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Foods) != 2 {
		t.Fatalf("expected 2 foods, got %d", len(result.Foods))
	}
	if result.DroppedRows != 0 {
		t.Errorf("expected no dropped rows, got %d", result.DroppedRows)
	}

	almonds := result.Foods[0]
	if almonds.Food != "almonds" {
		t.Errorf("expected canonical name, got %q", almonds.Food)
	}
	if almonds.Protein != 6 || almonds.HealthScoreNorm != 78 || almonds.Grams != 28 {
		t.Errorf("unexpected parsed values: %+v", almonds)
	}
	if almonds.Category != "Nuts" {
		t.Errorf("category %q", almonds.Category)
	}
}

func TestParseNutritionCSVDropsIncompleteRows(t *testing.T) {
	csv := validHeader +
		"Almonds,1 oz,28,164,6,14,1.1,3.5,6,Nuts,78\n" +
		"mystery snack,1 pack,50,,2,3,0.5,1,10,Snacks,40\n" + // missing calories
		"worse snack,1 pack,50,200,n/a,3,0.5,1,10,Snacks,40\n" + // non-numeric protein
		",1 pack,50,200,2,3,0.5,1,10,Snacks,40\n" // missing food name

	result, err := parseNutritionCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Foods) != 1 {
		t.Fatalf("expected 1 usable food, got %d", len(result.Foods))
	}
	if result.DroppedRows != 3 {
		t.Errorf("expected 3 dropped rows, got %d", result.DroppedRows)
	}
}

func TestParseNutritionCSVOptionalColumnsDefaultToZero(t *testing.T) {
	csv := validHeader +
		"Almonds,1 oz,,164,6,14,,3.5,6,Nuts,78\n"

	result, err := parseNutritionCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if result.DroppedRows != 0 {
		t.Fatalf("optional columns must not drop the row: %d dropped", result.DroppedRows)
	}
	if result.Foods[0].Grams != 0 || result.Foods[0].SatFat != 0 {
		t.Errorf("expected zero defaults, got %+v", result.Foods[0])
	}
}

func TestParseNutritionCSVMissingRequiredColumn(t *testing.T) {
	csv := "food,measure,grams,calories,protein,fat,sat_fat,carbs,category,health_score_norm\n" + // no fiber
		"Almonds,1 oz,28,164,6,14,1.1,6,Nuts,78\n"

	if _, err := parseNutritionCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing required column")
	}
}

func TestParseNutritionCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "Food,Measure,Grams,Calories,Protein,Fat,Sat_Fat,Fiber,Carbs,Category,Health_Score_Norm\n" +
		"Almonds,1 oz,28,164,6,14,1.1,3.5,6,Nuts,78\n"

	result, err := parseNutritionCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Foods) != 1 {
		t.Fatalf("expected 1 food, got %d", len(result.Foods))
	}
}
