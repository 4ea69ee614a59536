package calculator

import (
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"
	"bakery-backend/internal/pricing"
	"bakery-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
)

type QuoteRequest struct {
	RecipeID        string   `json:"recipeId"`
	Quantity        int      `json:"quantity"`
	PackagingID     string   `json:"packagingId"`     // empty = no packaging
	IncludeDelivery bool     `json:"includeDelivery"` // adds the delivery cost from settings
	ProfitPercent   *float64 `json:"profitPercent"`   // nil = margin from settings
	CustomPrice     *float64 `json:"customPrice"`
}

func (r QuoteRequest) validate() error {
	if r.RecipeID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "recipeId is required")
	}
	if r.Quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
	}
	return nil
}

// POST /api/calculator/quote
// Stateless pricing of a batch. Nothing here writes to the database.
func QuoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body QuoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		var recipe models.Recipe
		if err := database.DB.First(&recipe, "id = ?", body.RecipeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		var ingredients []models.Ingredient
		if err := database.DB.Find(&ingredients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load ingredients")
		}

		var pack *models.Packaging
		if body.PackagingID != "" {
			var row models.Packaging
			if err := database.DB.First(&row, "id = ?", body.PackagingID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Packaging not found")
			}
			pack = &row
		}

		cfg := settings.Load()

		profitPercent := cfg.ProfitMarginPercent
		if body.ProfitPercent != nil {
			profitPercent = *body.ProfitPercent
		}

		var deliveryCost float64
		if body.IncludeDelivery {
			deliveryCost = cfg.DeliveryCost
		}

		quote := pricing.CalculateQuote(pricing.QuoteInput{
			Recipe:        recipe,
			Ingredients:   ingredients,
			Quantity:      body.Quantity,
			Packaging:     pack,
			DeliveryCost:  deliveryCost,
			ProfitPercent: profitPercent,
			CustomPrice:   body.CustomPrice,
			Settings:      cfg,
		})

		return c.JSON(quote)
	}
}
