package settings

import (
	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SettingsRequest struct {
	LaborCostPerHour    float64 `json:"laborCostPerHour"`
	ProfitMarginPercent float64 `json:"profitMarginPercent"`
	DeliveryCost        float64 `json:"deliveryCost"`
	OverheadPercent     float64 `json:"overheadPercent"`
}

func (r SettingsRequest) validate() error {
	if r.LaborCostPerHour < 0 || r.ProfitMarginPercent < 0 || r.DeliveryCost < 0 || r.OverheadPercent < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "settings values must not be negative")
	}
	return nil
}

// Load returns the single settings row, falling back to the defaults when
// the table is empty.
func Load() models.PricingSettings {
	var row models.PricingSettings
	if err := database.DB.First(&row).Error; err != nil {
		return models.DefaultSettings()
	}
	return row
}

// GET /api/settings
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Load())
	}
}

// PUT /api/settings
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		var row models.PricingSettings
		if err := database.DB.First(&row).Error; err != nil {
			row = models.DefaultSettings()
		}

		row.LaborCostPerHour = body.LaborCostPerHour
		row.ProfitMarginPercent = body.ProfitMarginPercent
		row.DeliveryCost = body.DeliveryCost
		row.OverheadPercent = body.OverheadPercent

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}
