package product

import (
	"testing"

	"bakery-backend/internal/models"
)

func pricingCatalog() ([]models.Recipe, []models.Ingredient) {
	recipes := []models.Recipe{{
		ID:    "cake",
		Yield: 2,
		Ingredients: models.RecipeIngredients{
			{IngredientID: "flour", Quantity: 2, Unit: models.UnitKg},
		},
	}} // 20 total, 10 per yield unit
	ingredients := []models.Ingredient{
		{ID: "flour", Unit: models.UnitKg, PricePerUnit: 10},
	}
	return recipes, ingredients
}

func TestApplyPricingKeepsEnteredMargin(t *testing.T) {
	recipes, ingredients := pricingCatalog()

	tests := []struct {
		name             string
		profitPercent    float64
		wantStored       float64
		wantSellingPrice float64
	}{
		// An explicit 0 is stored as 0 but the suggestion uses 100%.
		{"zero margin stored, default suggestion", 0, 0, 20},
		{"entered margin", 50, 50, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ProductRequest{
				Name:          "עוגה",
				Components:    []models.ProductComponent{{RecipeID: "cake", Quantity: 1}},
				ProfitPercent: tt.profitPercent,
			}

			var row models.Product
			applyPricing(&row, body, recipes, ingredients)

			if row.ProfitPercent != tt.wantStored {
				t.Fatalf("ProfitPercent = %v, want %v", row.ProfitPercent, tt.wantStored)
			}
			if row.SellingPrice != tt.wantSellingPrice {
				t.Fatalf("SellingPrice = %v, want %v", row.SellingPrice, tt.wantSellingPrice)
			}
			if row.IngredientsCost != 10 {
				t.Fatalf("IngredientsCost = %v, want 10", row.IngredientsCost)
			}
		})
	}
}

func TestApplyPricingManualPriceCeiled(t *testing.T) {
	recipes, ingredients := pricingCatalog()

	price := 33.2
	body := ProductRequest{
		Name:          "עוגה",
		Components:    []models.ProductComponent{{RecipeID: "cake", Quantity: 1}},
		ProfitPercent: 40,
		SellingPrice:  &price,
	}

	var row models.Product
	applyPricing(&row, body, recipes, ingredients)

	if row.SellingPrice != 34 {
		t.Fatalf("SellingPrice = %v, want manual 33.2 ceiled to 34", row.SellingPrice)
	}
	if row.ProfitPercent != 40 {
		t.Fatalf("ProfitPercent = %v, want 40", row.ProfitPercent)
	}
}
