package recipe

import (
	"time"

	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"
	"bakery-backend/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RecipeRequest struct {
	Name         string                    `json:"name"`
	Category     models.RecipeCategory     `json:"category"`
	Ingredients  []models.RecipeIngredient `json:"ingredients"`
	Yield        int                       `json:"yield"`
	YieldUnit    string                    `json:"yieldUnit"`
	LaborMinutes int                       `json:"laborMinutes"`
	Notes        string                    `json:"notes"`
}

type RecipeCostResponse struct {
	RecipeID         string  `json:"recipeId"`
	TotalCost        float64 `json:"totalCost"`
	CostPerYieldUnit float64 `json:"costPerYieldUnit"`
}

func (r RecipeRequest) validate() error {
	if r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if !models.ValidCategory(r.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category")
	}
	if r.Yield < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "yield must be at least 1")
	}
	if r.LaborMinutes < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "laborMinutes must not be negative")
	}
	for _, line := range r.Ingredients {
		if line.IngredientID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "every line needs an ingredientId")
		}
		if line.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "line quantity must be > 0")
		}
		if !models.ValidUnit(line.Unit) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown unit on a recipe line")
		}
	}
	return nil
}

// GET /api/recipes
func ListRecipesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Recipe
		if err := database.DB.Order("created_at asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list recipes")
		}
		return c.JSON(rows)
	}
}

// POST /api/recipes
func CreateRecipeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row := models.Recipe{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Category:     body.Category,
			Ingredients:  models.RecipeIngredients(body.Ingredients),
			Yield:        body.Yield,
			YieldUnit:    body.YieldUnit,
			LaborMinutes: body.LaborMinutes,
			Notes:        body.Notes,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save the recipe")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// PUT /api/recipes/:id
func UpdateRecipeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Recipe
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row.Name = body.Name
		row.Category = body.Category
		row.Ingredients = models.RecipeIngredients(body.Ingredients)
		row.Yield = body.Yield
		row.YieldUnit = body.YieldUnit
		row.LaborMinutes = body.LaborMinutes
		row.Notes = body.Notes
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the recipe")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// DELETE /api/recipes/:id
func DeleteRecipeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Recipe{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the recipe")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		cloudsync.NotifyChange()
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/recipes/:id/cost
// Live costing against the current ingredient catalog. Lines referencing
// deleted ingredients contribute zero.
func RecipeCostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Recipe
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		var ingredients []models.Ingredient
		if err := database.DB.Find(&ingredients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load ingredients")
		}

		return c.JSON(RecipeCostResponse{
			RecipeID:         row.ID,
			TotalCost:        pricing.RecipeTotalCost(row, ingredients),
			CostPerYieldUnit: pricing.RecipeCostPerYieldUnit(row, ingredients),
		})
	}
}
