package pricing

import (
	"math"
	"testing"

	"bakery-backend/internal/models"
)

func testIngredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: "flour", Name: "קמח", Unit: models.UnitKg, PricePerUnit: 10, PackagePrice: 10, PackageQuantity: 1},
		{ID: "milk", Name: "חלב", Unit: models.UnitL, PricePerUnit: 6, PackagePrice: 6, PackageQuantity: 1},
		{ID: "egg", Name: "ביצה", Unit: models.UnitCount, PricePerUnit: 1.2, PackagePrice: 12, PackageQuantity: 10},
	}
}

func TestPricePerUnit(t *testing.T) {
	if got := PricePerUnit(12, 10); got != 1.2 {
		t.Fatalf("PricePerUnit(12, 10) = %v, want 1.2", got)
	}
	// Zero package quantity is not guarded here; it propagates as +Inf.
	if got := PricePerUnit(12, 0); !math.IsInf(got, 1) {
		t.Fatalf("PricePerUnit(12, 0) = %v, want +Inf", got)
	}
}

func TestIngredientLineCost(t *testing.T) {
	ingredients := testIngredients()

	tests := []struct {
		name string
		line models.RecipeIngredient
		want float64
	}{
		{"converted grams against kg price", models.RecipeIngredient{IngredientID: "flour", Quantity: 500, Unit: models.UnitG}, 5},
		{"same unit", models.RecipeIngredient{IngredientID: "milk", Quantity: 0.5, Unit: models.UnitL}, 3},
		{"count", models.RecipeIngredient{IngredientID: "egg", Quantity: 3, Unit: models.UnitCount}, 3.6},
		{"missing reference costs zero", models.RecipeIngredient{IngredientID: "butter", Quantity: 200, Unit: models.UnitG}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IngredientLineCost(tt.line, ingredients)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("IngredientLineCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecipeCostChain(t *testing.T) {
	ingredients := testIngredients()
	recipe := models.Recipe{
		ID:    "cake",
		Yield: 3,
		Ingredients: models.RecipeIngredients{
			{IngredientID: "flour", Quantity: 1.5, Unit: models.UnitKg}, // 15
			{IngredientID: "milk", Quantity: 500, Unit: models.UnitMl},  // 3
			{IngredientID: "egg", Quantity: 10, Unit: models.UnitCount}, // 12
		},
	}

	if got := RecipeTotalCost(recipe, ingredients); math.Abs(got-30) > 1e-9 {
		t.Fatalf("RecipeTotalCost = %v, want 30", got)
	}
	if got := RecipeCostPerYieldUnit(recipe, ingredients); math.Abs(got-10) > 1e-9 {
		t.Fatalf("RecipeCostPerYieldUnit = %v, want 10", got)
	}
}

func TestRecipeCostZeroYieldPropagates(t *testing.T) {
	ingredients := testIngredients()
	recipe := models.Recipe{
		Yield: 0,
		Ingredients: models.RecipeIngredients{
			{IngredientID: "flour", Quantity: 1, Unit: models.UnitKg},
		},
	}
	if got := RecipeCostPerYieldUnit(recipe, ingredients); !math.IsInf(got, 1) {
		t.Fatalf("cost per yield unit with yield 0 = %v, want +Inf", got)
	}
}

func TestProductIngredientsCost(t *testing.T) {
	ingredients := testIngredients()
	recipes := []models.Recipe{
		{
			ID:    "cake",
			Yield: 3,
			Ingredients: models.RecipeIngredients{
				{IngredientID: "flour", Quantity: 1.5, Unit: models.UnitKg},
				{IngredientID: "milk", Quantity: 500, Unit: models.UnitMl},
				{IngredientID: "egg", Quantity: 10, Unit: models.UnitCount},
			},
		}, // 10 per yield unit
		{
			ID:    "cookies",
			Yield: 20,
			Ingredients: models.RecipeIngredients{
				{IngredientID: "flour", Quantity: 1, Unit: models.UnitKg}, // 10
			},
		}, // 0.5 per yield unit
	}

	product := models.Product{
		Components: models.ProductComponents{
			{RecipeID: "cake", Quantity: 2},    // 20
			{RecipeID: "cookies", Quantity: 6}, // 3
			{RecipeID: "gone", Quantity: 4},    // missing recipe, 0
		},
	}

	got := ProductIngredientsCost(product, recipes, ingredients)
	if math.Abs(got-23) > 1e-9 {
		t.Fatalf("ProductIngredientsCost = %v, want 23", got)
	}

	// Pure function: a second pass over the same snapshot must agree.
	if again := ProductIngredientsCost(product, recipes, ingredients); again != got {
		t.Fatalf("ProductIngredientsCost not idempotent: %v then %v", got, again)
	}
}
