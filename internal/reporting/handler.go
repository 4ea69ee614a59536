package reporting

import (
	"sort"
	"time"

	"bakery-backend/internal/database"
	"bakery-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReportResponse struct {
	AllTime  Summary `json:"allTime"`
	Filtered Summary `json:"filtered"`
	Filter   struct {
		Month     string `json:"month,omitempty"`
		Customer  string `json:"customer,omitempty"`
		ProductID string `json:"productId,omitempty"`
	} `json:"filter"`
}

func loadReportData() ([]models.Order, []models.Product, error) {
	var orders []models.Order
	if err := database.DB.Find(&orders).Error; err != nil {
		return nil, nil, err
	}
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		return nil, nil, err
	}
	return orders, products, nil
}

// GET /api/reports?month=&customer=&product_id=
// Returns both the all-time rollup and the filtered one so the dashboard
// can show them side by side.
func ReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, products, err := loadReportData()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load report data")
		}

		filter := Filter{
			Month:     c.Query("month"),
			Customer:  c.Query("customer"),
			ProductID: c.Query("product_id"),
		}

		resp := ReportResponse{
			AllTime:  Summarize(FilterOrders(orders, Filter{}), products),
			Filtered: Summarize(FilterOrders(orders, filter), products),
		}
		resp.Filter.Month = filter.Month
		resp.Filter.Customer = filter.Customer
		resp.Filter.ProductID = filter.ProductID

		return c.JSON(resp)
	}
}

// GET /api/reports/months
// Distinct YYYY-MM values from order history, newest first. The current
// month is always present so the report picker never starts empty.
func MonthsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load orders")
		}

		seen := map[string]bool{time.Now().Format("2006-01"): true}
		for _, order := range orders {
			if len(order.Date) >= 7 {
				seen[order.Date[:7]] = true
			}
		}

		months := make([]string, 0, len(seen))
		for month := range seen {
			months = append(months, month)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(months)))

		return c.JSON(months)
	}
}
