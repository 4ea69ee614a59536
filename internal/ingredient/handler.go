package ingredient

import (
	"time"

	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"
	"bakery-backend/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// -------------------------
// Request Types
// -------------------------

type IngredientRequest struct {
	Name            string      `json:"name"`
	PackagePrice    float64     `json:"packagePrice"`
	PackageQuantity float64     `json:"packageQuantity"`
	Unit            models.Unit `json:"unit"`
	Supplier        string      `json:"supplier"`
	Notes           string      `json:"notes"`
}

// validate is the form-level guard: the pricing core itself never checks
// its inputs, so bad divisors must be stopped here.
func (r IngredientRequest) validate() error {
	if r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if r.PackagePrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "packagePrice must not be negative")
	}
	if r.PackageQuantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "packageQuantity must be > 0")
	}
	if !models.ValidUnit(r.Unit) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown unit")
	}
	return nil
}

// -------------------------
// Handlers
// -------------------------

// GET /api/ingredients
func ListIngredientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Ingredient
		if err := database.DB.Order("created_at asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list ingredients")
		}
		return c.JSON(rows)
	}
}

// POST /api/ingredients
func CreateIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row := models.Ingredient{
			ID:              uuid.NewString(),
			Name:            body.Name,
			PackagePrice:    body.PackagePrice,
			PackageQuantity: body.PackageQuantity,
			PricePerUnit:    pricing.PricePerUnit(body.PackagePrice, body.PackageQuantity),
			Unit:            body.Unit,
			Supplier:        body.Supplier,
			Notes:           body.Notes,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save the ingredient")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// PUT /api/ingredients/:id
// Re-derives pricePerUnit from the package pair, keeping the invariant.
func UpdateIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Ingredient
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ingredient not found")
		}

		var body IngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row.Name = body.Name
		row.PackagePrice = body.PackagePrice
		row.PackageQuantity = body.PackageQuantity
		row.PricePerUnit = pricing.PricePerUnit(body.PackagePrice, body.PackageQuantity)
		row.Unit = body.Unit
		row.Supplier = body.Supplier
		row.Notes = body.Notes
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the ingredient")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// DELETE /api/ingredients/:id
// Deletion does not cascade: recipe lines that still reference this id
// simply cost zero from now on.
func DeleteIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Ingredient{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the ingredient")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ingredient not found")
		}

		cloudsync.NotifyChange()
		return c.JSON(fiber.Map{"success": true})
	}
}
