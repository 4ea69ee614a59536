package reporting

import (
	"sort"

	"bakery-backend/internal/models"
)

// Filter narrows the order set before aggregation. Empty fields mean "all".
// Month matches the YYYY-MM prefix of the order date, Customer matches the
// exact name, ProductID keeps orders with at least one matching line.
type Filter struct {
	Month     string
	Customer  string
	ProductID string
}

// ProductStat is one row of the product rollup. Key is the product id, or
// "custom_<name>" for ad-hoc lines.
type ProductStat struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CustomerStat struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type Summary struct {
	TotalRevenue      float64        `json:"totalRevenue"`
	TotalOrders       int            `json:"totalOrders"`
	DeliveredOrders   int            `json:"deliveredOrders"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	TopProducts       []ProductStat  `json:"topProducts"`
	TopCustomers      []CustomerStat `json:"topCustomers"`
}

// FilterOrders applies the filter and always drops cancelled orders.
func FilterOrders(orders []models.Order, f Filter) []models.Order {
	kept := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == models.StatusCancelled {
			continue
		}
		if f.Month != "" {
			if len(order.Date) < 7 || order.Date[:7] != f.Month {
				continue
			}
		}
		if f.Customer != "" && order.CustomerName != f.Customer {
			continue
		}
		if f.ProductID != "" && !hasProduct(order, f.ProductID) {
			continue
		}
		kept = append(kept, order)
	}
	return kept
}

func hasProduct(order models.Order, productID string) bool {
	for _, item := range order.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Summarize computes revenue totals and the product/customer rollups over
// an already filtered, cancellation-free order set. Single pass over
// orders x items; recomputed in full on every call.
func Summarize(orders []models.Order, products []models.Product) Summary {
	var s Summary
	s.TotalOrders = len(orders)

	productStats := make(map[string]*ProductStat)
	customerStats := make(map[string]*CustomerStat)

	for _, order := range orders {
		s.TotalRevenue += order.TotalAmount
		if order.Status == models.StatusDelivered {
			s.DeliveredOrders++
		}

		for _, item := range order.Items {
			key := item.ProductID
			if item.ProductID == models.CustomProductID {
				key = "custom_" + item.CustomName
			}
			stat, ok := productStats[key]
			if !ok {
				stat = &ProductStat{Key: key, Name: productDisplayName(item, products)}
				productStats[key] = stat
			}
			stat.Quantity += item.Quantity
			stat.Revenue += item.TotalPrice
		}

		cust, ok := customerStats[order.CustomerName]
		if !ok {
			cust = &CustomerStat{Name: order.CustomerName}
			customerStats[order.CustomerName] = cust
		}
		cust.Orders++
		cust.Revenue += order.TotalAmount
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}

	s.TopProducts = make([]ProductStat, 0, len(productStats))
	for _, stat := range productStats {
		s.TopProducts = append(s.TopProducts, *stat)
	}
	sort.Slice(s.TopProducts, func(i, j int) bool {
		if s.TopProducts[i].Quantity != s.TopProducts[j].Quantity {
			return s.TopProducts[i].Quantity > s.TopProducts[j].Quantity
		}
		return s.TopProducts[i].Key < s.TopProducts[j].Key
	})

	s.TopCustomers = make([]CustomerStat, 0, len(customerStats))
	for _, stat := range customerStats {
		s.TopCustomers = append(s.TopCustomers, *stat)
	}
	sort.Slice(s.TopCustomers, func(i, j int) bool {
		if s.TopCustomers[i].Revenue != s.TopCustomers[j].Revenue {
			return s.TopCustomers[i].Revenue > s.TopCustomers[j].Revenue
		}
		return s.TopCustomers[i].Name < s.TopCustomers[j].Name
	})

	return s
}

func productDisplayName(item models.OrderItem, products []models.Product) string {
	if item.ProductID == models.CustomProductID && item.CustomName != "" {
		return item.CustomName + " (מותאם)"
	}
	for _, p := range products {
		if p.ID == item.ProductID {
			return p.Name
		}
	}
	return "לא ידוע"
}
