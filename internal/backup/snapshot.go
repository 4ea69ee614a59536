package backup

import (
	"bakery-backend/internal/database"
	"bakery-backend/internal/models"

	"gorm.io/gorm"
)

// Snapshot assembles the whole aggregate document from the database.
func Snapshot() (models.AppData, error) {
	var data models.AppData

	if err := database.DB.Order("created_at asc").Find(&data.Ingredients).Error; err != nil {
		return models.AppData{}, err
	}
	if err := database.DB.Order("created_at asc").Find(&data.Recipes).Error; err != nil {
		return models.AppData{}, err
	}
	if err := database.DB.Order("id asc").Find(&data.Packagings).Error; err != nil {
		return models.AppData{}, err
	}
	if err := database.DB.Order("created_at asc").Find(&data.Products).Error; err != nil {
		return models.AppData{}, err
	}
	if err := database.DB.Order("date asc, created_at asc").Find(&data.Orders).Error; err != nil {
		return models.AppData{}, err
	}
	if err := database.DB.First(&data.Settings).Error; err != nil {
		return models.AppData{}, err
	}

	return data, nil
}

// Restore replaces every collection with the document's content inside one
// transaction. Whole-document semantics: there are no partial updates.
func Restore(data models.AppData) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Ingredient{}, &models.Recipe{}, &models.Packaging{},
			&models.Product{}, &models.Order{}, &models.PricingSettings{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(data.Ingredients) > 0 {
			if err := tx.Create(&data.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(data.Recipes) > 0 {
			if err := tx.Create(&data.Recipes).Error; err != nil {
				return err
			}
		}
		if len(data.Packagings) > 0 {
			if err := tx.Create(&data.Packagings).Error; err != nil {
				return err
			}
		}
		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return err
			}
		}
		if len(data.Orders) > 0 {
			if err := tx.Create(&data.Orders).Error; err != nil {
				return err
			}
		}

		settings := data.Settings
		settings.ID = 0
		return tx.Create(&settings).Error
	})
}
