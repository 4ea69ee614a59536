package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports membership only. There is no state machine: any
// status is reachable from any other by explicit user selection.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CustomProductID marks an ad-hoc order line that has no catalog product.
const CustomProductID = "custom"

// OrderItem is one line of an order. PricePerUnit is a snapshot frozen at
// order time; later catalog price changes do not touch it.
type OrderItem struct {
	ProductID    string  `json:"productId"`
	CustomName   string  `json:"customName,omitempty"` // required iff ProductID == CustomProductID
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalPrice   float64 `json:"totalPrice"`
}

type OrderItems []OrderItem

func (oi OrderItems) Value() (driver.Value, error) {
	if oi == nil {
		oi = OrderItems{}
	}
	return json.Marshal(oi)
}

func (oi *OrderItems) Scan(value interface{}) error {
	return jsonbScan(oi, value)
}

// Order. Date is kept as the "YYYY-MM-DD" string the reports filter by
// prefix. TotalAmount is derived: items + packaging + delivery - discount.
type Order struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	Date          string      `gorm:"size:10;not null;index" json:"date"`
	CustomerName  string      `gorm:"size:100;not null" json:"customerName"`
	CustomerPhone string      `gorm:"size:30" json:"customerPhone,omitempty"`
	Items         OrderItems  `gorm:"type:jsonb" json:"items"`
	PackagingCost float64     `json:"packagingCost"`
	DeliveryCost  float64     `json:"deliveryCost"`
	Discount      float64     `json:"discount"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        OrderStatus `gorm:"size:20;not null;index" json:"status"`
	Notes         string      `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
