package database

import (
	"log"

	"bakery-backend/internal/config"
	"bakery-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.Packaging{},
		&models.Product{},
		&models.Order{},
		&models.PricingSettings{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedDefaults()

	log.Println("Database connected, migration complete.")
}

// seedDefaults installs the default packaging catalog and the settings row
// on first run. Existing data is never touched.
func seedDefaults() {
	var packagingCount int64
	DB.Model(&models.Packaging{}).Count(&packagingCount)
	if packagingCount == 0 {
		defaults := models.DefaultPackagings()
		if err := DB.Create(&defaults).Error; err != nil {
			log.Printf("Seeding default packagings failed: %v", err)
		} else {
			log.Printf("Seeded %d default packagings", len(defaults))
		}
	}

	var settingsCount int64
	DB.Model(&models.PricingSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := models.DefaultSettings()
		if err := DB.Create(&settings).Error; err != nil {
			log.Printf("Seeding default settings failed: %v", err)
		}
	}
}
