package order

import (
	"sort"
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

type OrderItemRequest struct {
	ProductID    string   `json:"productId"`
	CustomName   string   `json:"customName"`
	Quantity     int      `json:"quantity"`
	PricePerUnit *float64 `json:"pricePerUnit"` // nil = snapshot the current catalog price
}

type OrderRequest struct {
	Date          string             `json:"date"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemRequest `json:"items"`
	PackagingCost float64            `json:"packagingCost"`
	DeliveryCost  float64            `json:"deliveryCost"`
	Discount      float64            `json:"discount"`
	Status        models.OrderStatus `json:"status"`
	Notes         string             `json:"notes"`
}

type StatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type CustomerResponse struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	OrderCount int     `json:"orderCount"`
	TotalSpend float64 `json:"totalSpend"`
}

func (r OrderRequest) validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	if r.CustomerName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customerName is required")
	}
	if len(r.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one item is required")
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "item quantity must be at least 1")
		}
		switch {
		case item.ProductID == models.CustomProductID:
			if item.CustomName == "" {
				return fiber.NewError(fiber.StatusBadRequest, "custom items need a customName")
			}
			if item.PricePerUnit == nil {
				return fiber.NewError(fiber.StatusBadRequest, "custom items need a pricePerUnit")
			}
		case item.ProductID == "":
			return fiber.NewError(fiber.StatusBadRequest, "every item needs a productId")
		}
	}
	if r.Status != "" && !models.ValidStatus(r.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown status")
	}
	return nil
}

// buildItems freezes per-line prices. Catalog lines without an explicit
// price snapshot the product's current selling price; the order keeps
// that snapshot forever.
func buildItems(reqItems []OrderItemRequest) (models.OrderItems, error) {
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load products")
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make(models.OrderItems, 0, len(reqItems))
	for _, req := range reqItems {
		item := models.OrderItem{
			ProductID:  req.ProductID,
			CustomName: req.CustomName,
			Quantity:   req.Quantity,
		}
		switch {
		case req.PricePerUnit != nil:
			item.PricePerUnit = *req.PricePerUnit
		default:
			product, ok := byID[req.ProductID]
			if !ok {
				return nil, fiber.NewError(fiber.StatusBadRequest, "unknown productId on an item")
			}
			item.PricePerUnit = product.SellingPrice
		}
		item.TotalPrice = item.PricePerUnit * float64(item.Quantity)
		items = append(items, item)
	}
	return items, nil
}

// -------------------------
// Handlers
// -------------------------

// GET /api/orders?status=&month=
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Order("date desc, created_at desc")
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if month := c.Query("month"); month != "" {
			dbq = dbq.Where("date LIKE ?", month+"%")
		}

		var rows []models.Order
		if err := dbq.Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}
		return c.JSON(rows)
	}
}

// POST /api/orders
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		items, err := buildItems(body.Items)
		if err != nil {
			return err
		}

		status := body.Status
		if status == "" {
			status = models.StatusPending
		}

		row := models.Order{
			ID:            uuid.NewString(),
			Date:          body.Date,
			CustomerName:  body.CustomerName,
			CustomerPhone: body.CustomerPhone,
			Items:         items,
			PackagingCost: body.PackagingCost,
			DeliveryCost:  body.DeliveryCost,
			Discount:      body.Discount,
			TotalAmount:   pricing.OrderTotal(items, body.PackagingCost, body.DeliveryCost, body.Discount),
			Status:        status,
			Notes:         body.Notes,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save the order")
		}

		cloudsync.NotifyChange()
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// PUT /api/orders/:id
// A full edit rebuilds the item snapshots and the derived total.
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.Order
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		var body OrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		items, err := buildItems(body.Items)
		if err != nil {
			return err
		}

		row.Date = body.Date
		row.CustomerName = body.CustomerName
		row.CustomerPhone = body.CustomerPhone
		row.Items = items
		row.PackagingCost = body.PackagingCost
		row.DeliveryCost = body.DeliveryCost
		row.Discount = body.Discount
		row.TotalAmount = pricing.OrderTotal(items, body.PackagingCost, body.DeliveryCost, body.Discount)
		if body.Status != "" {
			row.Status = body.Status
		}
		row.Notes = body.Notes
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the order")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if !models.ValidStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown status")
		}

		var row models.Order
		if err := database.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		row.Status = body.Status
		row.UpdatedAt = time.Now()

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the order")
		}

		cloudsync.NotifyChange()
		return c.JSON(row)
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Order{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the order")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		cloudsync.NotifyChange()
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/orders/customers
// Customer directory derived from order history: each unique name with
// order count, most recent phone and total spend. Cancelled orders are
// excluded from the spend but still count toward the phone lookup.
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Order
		if err := database.DB.Order("date asc, created_at asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}

		byName := make(map[string]*CustomerResponse)
		for _, order := range rows {
			entry, ok := byName[order.CustomerName]
			if !ok {
				entry = &CustomerResponse{Name: order.CustomerName}
				byName[order.CustomerName] = entry
			}
			if order.CustomerPhone != "" {
				entry.Phone = order.CustomerPhone
			}
			if order.Status == models.StatusCancelled {
				continue
			}
			entry.OrderCount++
			entry.TotalSpend += order.TotalAmount
		}

		customers := make([]CustomerResponse, 0, len(byName))
		for _, entry := range byName {
			customers = append(customers, *entry)
		}
		sort.Slice(customers, func(i, j int) bool {
			if customers[i].OrderCount != customers[j].OrderCount {
				return customers[i].OrderCount > customers[j].OrderCount
			}
			return customers[i].Name < customers[j].Name
		})

		return c.JSON(customers)
	}
}
