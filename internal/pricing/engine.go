package pricing

import (
	"math"

	"bakery-backend/internal/models"
)

// fixedOverheadReference is the fixed cost the break-even figure is
// measured against. TODO: derive from settings once overhead tracking
// grows beyond a single reference number.
const fixedOverheadReference = 500

// RoundToNicePrice rounds a price up to a human-friendly point:
// below 20 to the next shekel, below 50 to the next 5, below 100 to the
// next 10, otherwise to the next 25. Never rounds down.
func RoundToNicePrice(price float64) float64 {
	switch {
	case price < 20:
		return math.Ceil(price)
	case price < 50:
		return math.Ceil(price/5) * 5
	case price < 100:
		return math.Ceil(price/10) * 10
	default:
		return math.Ceil(price/25) * 25
	}
}

// SuggestedPrice is the bundle-level suggestion: cost plus margin, ceiled
// to the next whole currency unit.
func SuggestedPrice(totalCost, profitPercent float64) float64 {
	return math.Ceil(totalCost * (1 + profitPercent/100))
}

// BreakEvenUnits is how many units must sell to cover the fixed reference
// overhead at the given per-unit profit. Zero when there is no profit.
func BreakEvenUnits(pricePerUnit, costPerUnit float64) int {
	profitPerUnit := pricePerUnit - costPerUnit
	if profitPerUnit > 0 {
		return int(math.Ceil(fixedOverheadReference / profitPerUnit))
	}
	return 0
}

// OrderTotal sums line totals plus packaging and delivery, minus discount.
// A discount larger than the items legitimately yields a negative total.
func OrderTotal(items []models.OrderItem, packagingCost, deliveryCost, discount float64) float64 {
	var itemsTotal float64
	for _, item := range items {
		itemsTotal += item.TotalPrice
	}
	return itemsTotal + packagingCost + deliveryCost - discount
}

// QuoteInput is one batch-pricing request for the interactive calculator.
type QuoteInput struct {
	Recipe        models.Recipe
	Ingredients   []models.Ingredient
	Quantity      int               // yield units being priced
	Packaging     *models.Packaging // nil = no packaging
	DeliveryCost  float64           // applied as-is; caller passes 0 to skip
	ProfitPercent float64
	CustomPrice   *float64 // manual override; nil = use calculated price
	Settings      models.PricingSettings
}

// Quote is the full calculator result. CalculatedPrice stays unrounded for
// display; RoundedPrice is the nice-round suggestion. LaborCost and
// OverheadCost are advisory figures and are not part of TotalCost.
type Quote struct {
	IngredientsCost     float64 `json:"ingredientsCost"`
	PackagingCost       float64 `json:"packagingCost"`
	DeliveryCost        float64 `json:"deliveryCost"`
	TotalCost           float64 `json:"totalCost"`
	CostPerUnit         float64 `json:"costPerUnit"`
	CalculatedPrice     float64 `json:"calculatedPrice"`
	ActualPrice         float64 `json:"actualPrice"`
	RoundedPrice        float64 `json:"roundedPrice"`
	Profit              float64 `json:"profit"`
	ActualProfitPercent float64 `json:"actualProfitPercent"`
	PricePerUnit        float64 `json:"pricePerUnit"`
	BreakEvenUnits      int     `json:"breakEvenUnits"`
	LaborCost           float64 `json:"laborCost"`
	OverheadCost        float64 `json:"overheadCost"`
}

// CalculateQuote prices a batch of in.Quantity yield units of one recipe.
func CalculateQuote(in QuoteInput) Quote {
	costPerYieldUnit := RecipeCostPerYieldUnit(in.Recipe, in.Ingredients)
	ingredientsCost := costPerYieldUnit * float64(in.Quantity)

	var packagingCost float64
	if in.Packaging != nil {
		packagingCost = in.Packaging.Cost * float64(in.Quantity)
	}

	totalCost := ingredientsCost + packagingCost + in.DeliveryCost
	costPerUnit := totalCost / float64(in.Quantity)

	calculatedPrice := totalCost * (1 + in.ProfitPercent/100)

	actualPrice := calculatedPrice
	if in.CustomPrice != nil {
		actualPrice = *in.CustomPrice
	}

	profit := actualPrice - totalCost
	var actualProfitPercent float64
	if totalCost > 0 {
		actualProfitPercent = profit / totalCost * 100
	}

	pricePerUnit := actualPrice / float64(in.Quantity)

	return Quote{
		IngredientsCost:     ingredientsCost,
		PackagingCost:       packagingCost,
		DeliveryCost:        in.DeliveryCost,
		TotalCost:           totalCost,
		CostPerUnit:         costPerUnit,
		CalculatedPrice:     calculatedPrice,
		ActualPrice:         actualPrice,
		RoundedPrice:        RoundToNicePrice(calculatedPrice),
		Profit:              profit,
		ActualProfitPercent: actualProfitPercent,
		PricePerUnit:        pricePerUnit,
		BreakEvenUnits:      BreakEvenUnits(pricePerUnit, costPerUnit),
		LaborCost:           float64(in.Recipe.LaborMinutes) / 60 * in.Settings.LaborCostPerHour,
		OverheadCost:        ingredientsCost * in.Settings.OverheadPercent / 100,
	}
}
