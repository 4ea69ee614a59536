package reporting

import (
	"math"
	"testing"

	"bakery-backend/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID: "o1", Date: "2026-08-02", CustomerName: "דנה", Status: models.StatusDelivered,
			TotalAmount: 50,
			Items: models.OrderItems{
				{ProductID: "box", Quantity: 2, PricePerUnit: 25, TotalPrice: 50},
			},
		},
		{
			ID: "o2", Date: "2026-08-15", CustomerName: "דנה", Status: models.StatusCancelled,
			TotalAmount: 70,
			Items: models.OrderItems{
				{ProductID: "box", Quantity: 3, PricePerUnit: 25, TotalPrice: 70},
			},
		},
		{
			ID: "o3", Date: "2026-09-01", CustomerName: "יוסי", Status: models.StatusPending,
			TotalAmount: 130,
			Items: models.OrderItems{
				{ProductID: "box", Quantity: 1, PricePerUnit: 25, TotalPrice: 25},
				{ProductID: models.CustomProductID, CustomName: "עוגת יום הולדת", Quantity: 1, PricePerUnit: 105, TotalPrice: 105},
			},
		},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{{ID: "box", Name: "מארז עוגיות"}}
}

func TestFilterOrders(t *testing.T) {
	orders := sampleOrders()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"cancelled always excluded", Filter{}, []string{"o1", "o3"}},
		{"month prefix", Filter{Month: "2026-08"}, []string{"o1"}},
		{"exact customer", Filter{Customer: "יוסי"}, []string{"o3"}},
		{"customer is case and whitespace exact", Filter{Customer: "יוסי "}, nil},
		{"product presence", Filter{ProductID: "box"}, []string{"o1", "o3"}},
		{"combined", Filter{Month: "2026-09", ProductID: "box"}, []string{"o3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d orders, want %d", len(got), len(tt.wantIDs))
			}
			for i, order := range got {
				if order.ID != tt.wantIDs[i] {
					t.Fatalf("order[%d] = %s, want %s", i, order.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSummarizeAllTime(t *testing.T) {
	// Same customer, amounts 50 and 70, the 70 cancelled: revenue counts
	// only the live order.
	orders := FilterOrders(sampleOrders()[:2], Filter{})
	s := Summarize(orders, sampleProducts())

	if s.TotalRevenue != 50 {
		t.Fatalf("TotalRevenue = %v, want 50", s.TotalRevenue)
	}
	if s.TotalOrders != 1 {
		t.Fatalf("TotalOrders = %d, want 1", s.TotalOrders)
	}
	if s.DeliveredOrders != 1 {
		t.Fatalf("DeliveredOrders = %d, want 1", s.DeliveredOrders)
	}
}

func TestSummarizeRollups(t *testing.T) {
	orders := FilterOrders(sampleOrders(), Filter{})
	s := Summarize(orders, sampleProducts())

	if s.TotalRevenue != 180 {
		t.Fatalf("TotalRevenue = %v, want 180", s.TotalRevenue)
	}
	if s.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2", s.TotalOrders)
	}
	if math.Abs(s.AverageOrderValue-90) > 1e-9 {
		t.Fatalf("AverageOrderValue = %v, want 90", s.AverageOrderValue)
	}

	// Product rollup: catalog box sold 3 total, custom line keyed by name.
	if len(s.TopProducts) != 2 {
		t.Fatalf("TopProducts len = %d, want 2", len(s.TopProducts))
	}
	top := s.TopProducts[0]
	if top.Key != "box" || top.Quantity != 3 || top.Revenue != 75 {
		t.Fatalf("top product = %+v, want box qty 3 revenue 75", top)
	}
	if top.Name != "מארז עוגיות" {
		t.Fatalf("top product name = %q", top.Name)
	}
	custom := s.TopProducts[1]
	if custom.Key != "custom_עוגת יום הולדת" || custom.Quantity != 1 || custom.Revenue != 105 {
		t.Fatalf("custom product = %+v", custom)
	}
	if custom.Name != "עוגת יום הולדת (מותאם)" {
		t.Fatalf("custom product name = %q", custom.Name)
	}

	// Customer rollup sorted by revenue descending.
	if len(s.TopCustomers) != 2 {
		t.Fatalf("TopCustomers len = %d, want 2", len(s.TopCustomers))
	}
	if s.TopCustomers[0].Name != "יוסי" || s.TopCustomers[0].Revenue != 130 || s.TopCustomers[0].Orders != 1 {
		t.Fatalf("first customer = %+v", s.TopCustomers[0])
	}
	if s.TopCustomers[1].Name != "דנה" || s.TopCustomers[1].Revenue != 50 {
		t.Fatalf("second customer = %+v", s.TopCustomers[1])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.AverageOrderValue != 0 {
		t.Fatalf("AverageOrderValue on empty set = %v, want 0", s.AverageOrderValue)
	}
	if s.TotalRevenue != 0 || s.TotalOrders != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
	if len(s.TopProducts) != 0 || len(s.TopCustomers) != 0 {
		t.Fatalf("rollups on empty set should be empty: %+v", s)
	}
}

func TestUnknownProductNameFallback(t *testing.T) {
	orders := []models.Order{{
		ID: "o", Date: "2026-09-01", CustomerName: "x", Status: models.StatusPending,
		Items: models.OrderItems{{ProductID: "deleted", Quantity: 1, TotalPrice: 10}},
	}}
	s := Summarize(orders, nil)
	if s.TopProducts[0].Name != "לא ידוע" {
		t.Fatalf("unknown product name = %q", s.TopProducts[0].Name)
	}
}
