package main

import (
	"context"
	"log"
	"strings"
	"time"

	"bakery-backend/internal/backup"
	"bakery-backend/internal/calculator"
	"bakery-backend/internal/cloudsync"
	"bakery-backend/internal/config"
	"bakery-backend/internal/database"
	"bakery-backend/internal/ingredient"
	"bakery-backend/internal/order"
	"bakery-backend/internal/packaging"
	"bakery-backend/internal/product"
	"bakery-backend/internal/recipe"
	"bakery-backend/internal/reporting"
	"bakery-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	// CORS origins come in as a comma separated string
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Optional cloud mirror of the whole document
	if cfg.CloudSyncURL != "" {
		cloudsync.Default = cloudsync.New(
			cfg.CloudSyncURL,
			cfg.CloudSyncAPIKey,
			time.Duration(cfg.CloudPollSeconds)*time.Second,
			time.Duration(cfg.CloudSuppressSeconds)*time.Second,
			backup.Snapshot,
			backup.Restore,
		)
		go cloudsync.Default.Run(context.Background())
	}

	api := app.Group("/api")

	// Ingredient catalog
	api.Get("/ingredients", ingredient.ListIngredientsHandler())
	api.Post("/ingredients", ingredient.CreateIngredientHandler())
	api.Put("/ingredients/:id", ingredient.UpdateIngredientHandler())
	api.Delete("/ingredients/:id", ingredient.DeleteIngredientHandler())

	// Recipes
	api.Get("/recipes", recipe.ListRecipesHandler())
	api.Post("/recipes", recipe.CreateRecipeHandler())
	api.Put("/recipes/:id", recipe.UpdateRecipeHandler())
	api.Delete("/recipes/:id", recipe.DeleteRecipeHandler())
	api.Get("/recipes/:id/cost", recipe.RecipeCostHandler())

	// Packaging options
	api.Get("/packagings", packaging.ListPackagingsHandler())
	api.Post("/packagings", packaging.CreatePackagingHandler())
	api.Put("/packagings/:id", packaging.UpdatePackagingHandler())
	api.Delete("/packagings/:id", packaging.DeletePackagingHandler())

	// Products
	api.Get("/products", product.ListProductsHandler())
	api.Post("/products", product.CreateProductHandler())
	api.Put("/products/:id", product.UpdateProductHandler())
	api.Delete("/products/:id", product.DeleteProductHandler())
	api.Post("/products/:id/duplicate", product.DuplicateProductHandler())
	api.Post("/products/:id/toggle-active", product.ToggleActiveHandler())
	api.Get("/products/:id/cost", product.ProductCostHandler())

	// Orders
	api.Get("/orders", order.ListOrdersHandler())
	api.Get("/orders/customers", order.ListCustomersHandler())
	api.Post("/orders", order.CreateOrderHandler())
	api.Put("/orders/:id", order.UpdateOrderHandler())
	api.Put("/orders/:id/status", order.UpdateOrderStatusHandler())
	api.Delete("/orders/:id", order.DeleteOrderHandler())

	// Pricing settings
	api.Get("/settings", settings.GetSettingsHandler())
	api.Put("/settings", settings.UpdateSettingsHandler())

	// Interactive calculator
	api.Post("/calculator/quote", calculator.QuoteHandler())

	// Reports
	api.Get("/reports", reporting.ReportHandler())
	api.Get("/reports/months", reporting.MonthsHandler())
	api.Get("/reports/export", reporting.ExportHandler())

	// Backup
	api.Get("/backup/export", backup.ExportHandler())
	api.Post("/backup/import", backup.ImportHandler())

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
