package models

import "time"

// Ingredient is a raw material bought in packages. PricePerUnit is derived
// from PackagePrice / PackageQuantity every time the pair is written, so the
// three fields stay consistent.
type Ingredient struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	PricePerUnit    float64   `gorm:"not null" json:"pricePerUnit"`
	PackagePrice    float64   `gorm:"not null" json:"packagePrice"`
	PackageQuantity float64   `gorm:"not null" json:"packageQuantity"`
	Unit            Unit      `gorm:"size:10;not null" json:"unit"`
	Supplier        string    `gorm:"size:100" json:"supplier,omitempty"`
	Notes           string    `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
