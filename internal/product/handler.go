package product

import (
	"math"
	"time"

	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"
	"bakery-backend/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductRequest struct {
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	Components    []models.ProductComponent `json:"components"`
	ProfitPercent float64                   `json:"profitPercent"`
	SellingPrice  *float64                  `json:"sellingPrice"` // nil = use the suggested price
	IsActive      *bool                     `json:"isActive"`
}

type ProductCostResponse struct {
	ProductID             string  `json:"productId"`
	CachedIngredientsCost float64 `json:"cachedIngredientsCost"` // snapshot taken at last save
	LiveIngredientsCost   float64 `json:"liveIngredientsCost"`   // recomputed now
	SellingPrice          float64 `json:"sellingPrice"`
	RealizedProfitPercent float64 `json:"realizedProfitPercent"` // against the live cost
}

func (r ProductRequest) validate() error {
	if r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if len(r.Components) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one component is required")
	}
	for _, comp := range r.Components {
		if comp.RecipeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "every component needs a recipeId")
		}
		if comp.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "component quantity must be at least 1")
		}
	}
	return nil
}

// profitPercentOrDefault substitutes the 100% default for an absent or
// zero margin. The substitution feeds the price suggestion only; the
// stored field keeps exactly what was entered, including an explicit 0.
func profitPercentOrDefault(p float64) float64 {
	if p == 0 {
		return 100
	}
	return p
}

func loadCatalog() ([]models.Recipe, []models.Ingredient, error) {
	var recipes []models.Recipe
	if err := database.DB.Find(&recipes).Error; err != nil {
		return nil, nil, err
	}
	var ingredients []models.Ingredient
	if err := database.DB.Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}
	return recipes, ingredients, nil
}

// applyPricing recomputes the cost snapshot and resolves the selling price
// against the given catalog: a manual price is ceiled to a whole amount,
// otherwise the suggestion (cost plus margin, ceiled) is used.
func applyPricing(row *models.Product, body ProductRequest, recipes []models.Recipe, ingredients []models.Ingredient) {
	row.Components = models.ProductComponents(body.Components)
	row.IngredientsCost = pricing.ProductIngredientsCost(*row, recipes, ingredients)
	row.ProfitPercent = body.ProfitPercent

	if body.SellingPrice != nil {
		row.SellingPrice = math.Ceil(*body.SellingPrice)
	} else {
		row.SellingPrice = pricing.SuggestedPrice(row.IngredientsCost, profitPercentOrDefault(body.ProfitPercent))
	}
}

// GET /api/products?active=true
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Order("created_at asc")
		if c.Query("active") == "true" {
			dbq = dbq.Where("is_active = ?", true)
		}

		var rows []models.Product
		if err := dbq.Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}
		return c.JSON(rows)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row := models.Product{
			ID:          uuid.NewString(),
			Name:        body.Name,
			Description: body.Description,
			IsActive:    true,
		}
		if body.IsActive != nil {
			row.IsActive = *body.IsActive
		}

		recipes, ingredients, err := loadCatalog()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load the catalog")
		}
		applyPricing(&row, body, recipes, ingredients)

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save the product")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Product
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row.Name = body.Name
		row.Description = body.Description
		if body.IsActive != nil {
			row.IsActive = *body.IsActive
		}

		recipes, ingredients, err := loadCatalog()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load the catalog")
		}
		applyPricing(&row, body, recipes, ingredients)
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the product")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// DELETE /api/products/:id
// Orders keep their snapshot prices, so deleting a product never rewrites
// order history.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Product{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the product")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		cloudsync.NotifyChange()
		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /api/products/:id/duplicate
func DuplicateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Product
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		dup := row
		dup.ID = uuid.NewString()
		dup.Name = row.Name + " (עותק)"
		dup.CreatedAt = time.Time{}
		dup.UpdatedAt = time.Time{}

		if err := database.DB.Create(&dup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not duplicate the product")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(dup)
	}
}

// POST /api/products/:id/toggle-active
func ToggleActiveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Product
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		row.IsActive = !row.IsActive
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the product")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// GET /api/products/:id/cost
// Snapshot vs. live: the cached cost is what the product was saved with,
// the live cost reflects current ingredient prices.
func ProductCostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Product
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		recipes, ingredients, err := loadCatalog()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load the catalog")
		}

		liveCost := pricing.ProductIngredientsCost(row, recipes, ingredients)

		var realized float64
		if liveCost > 0 {
			realized = (row.SellingPrice - liveCost) / liveCost * 100
		}

		return c.JSON(ProductCostResponse{
			ProductID:             row.ID,
			CachedIngredientsCost: row.IngredientsCost,
			LiveIngredientsCost:   liveCost,
			SellingPrice:          row.SellingPrice,
			RealizedProfitPercent: realized,
		})
	}
}
