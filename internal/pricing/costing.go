package pricing

import "bakery-backend/internal/models"

// The cost chain below is pure and tolerant by design: a dangling
// ingredient or recipe reference contributes zero instead of erroring,
// and degenerate divisors (packageQuantity 0, yield 0) propagate as
// non-finite values rather than being clamped. Input validation belongs
// to the handlers, not here.

// PricePerUnit derives an ingredient's unit price from its package.
func PricePerUnit(packagePrice, packageQuantity float64) float64 {
	return packagePrice / packageQuantity
}

// IngredientLineCost prices one recipe line against the ingredient catalog.
func IngredientLineCost(line models.RecipeIngredient, ingredients []models.Ingredient) float64 {
	for _, ing := range ingredients {
		if ing.ID == line.IngredientID {
			return Convert(line.Quantity, line.Unit, ing.Unit) * ing.PricePerUnit
		}
	}
	return 0
}

// RecipeTotalCost sums all line costs of a recipe.
func RecipeTotalCost(recipe models.Recipe, ingredients []models.Ingredient) float64 {
	var total float64
	for _, line := range recipe.Ingredients {
		total += IngredientLineCost(line, ingredients)
	}
	return total
}

// RecipeCostPerYieldUnit is the material cost of one yield unit.
func RecipeCostPerYieldUnit(recipe models.Recipe, ingredients []models.Ingredient) float64 {
	return RecipeTotalCost(recipe, ingredients) / float64(recipe.Yield)
}

// ProductIngredientsCost sums the component costs of a bundle, each
// component being quantity units of its recipe's yield.
func ProductIngredientsCost(product models.Product, recipes []models.Recipe, ingredients []models.Ingredient) float64 {
	var total float64
	for _, comp := range product.Components {
		recipe, ok := findRecipe(recipes, comp.RecipeID)
		if !ok {
			continue
		}
		total += RecipeCostPerYieldUnit(recipe, ingredients) * float64(comp.Quantity)
	}
	return total
}

func findRecipe(recipes []models.Recipe, id string) (models.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}
