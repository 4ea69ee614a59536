package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/backup/export
// Downloads the whole aggregate document as a portable JSON backup.
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := Snapshot()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not assemble the backup document")
		}

		body, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not serialize the backup document")
		}

		filename := fmt.Sprintf("bakery-pricing-backup-%s.json", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(body)
	}
}

// POST /api/backup/import
// Replaces every collection with the uploaded document's content. The file
// is parsed in full before any mutation; a malformed document is rejected
// with the previous state untouched.
func ImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A backup file is required")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not open the uploaded file")
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read the uploaded file")
		}

		data, err := models.ParseDocument(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "The backup document is malformed")
		}

		if err := Restore(data); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Restoring the backup failed")
		}

		cloudsync.NotifyChange()

		return c.JSON(fiber.Map{
			"success":     true,
			"ingredients": len(data.Ingredients),
			"recipes":     len(data.Recipes),
			"packagings":  len(data.Packagings),
			"products":    len(data.Products),
			"orders":      len(data.Orders),
		})
	}
}
