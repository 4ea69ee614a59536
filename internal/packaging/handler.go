package packaging

import (
	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PackagingRequest struct {
	Name  string  `json:"name"`
	Cost  float64 `json:"cost"`
	Notes string  `json:"notes"`
}

func (r PackagingRequest) validate() error {
	if r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if r.Cost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cost must not be negative")
	}
	return nil
}

// GET /api/packagings
func ListPackagingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Packaging
		if err := database.DB.Order("id asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list packagings")
		}
		return c.JSON(rows)
	}
}

// POST /api/packagings
func CreatePackagingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PackagingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row := models.Packaging{
			ID:    uuid.NewString(),
			Name:  body.Name,
			Cost:  body.Cost,
			Notes: body.Notes,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save the packaging")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// PUT /api/packagings/:id
func UpdatePackagingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Packaging
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Packaging not found")
		}

		var body PackagingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		row.Name = body.Name
		row.Cost = body.Cost
		row.Notes = body.Notes

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the packaging")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// DELETE /api/packagings/:id
func DeletePackagingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Packaging{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the packaging")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Packaging not found")
		}

		cloudsync.NotifyChange()
		return c.JSON(fiber.Map{"success": true})
	}
}
