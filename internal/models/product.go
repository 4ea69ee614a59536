package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ProductComponent is a quantity of one recipe's yield inside a bundle.
type ProductComponent struct {
	RecipeID string `json:"recipeId"`
	Quantity int    `json:"quantity"` // units of the recipe's yield
}

type ProductComponents []ProductComponent

func (pc ProductComponents) Value() (driver.Value, error) {
	if pc == nil {
		pc = ProductComponents{}
	}
	return json.Marshal(pc)
}

func (pc *ProductComponents) Scan(value interface{}) error {
	return jsonbScan(pc, value)
}

// Product is a sellable bundle composed of recipe outputs.
//
// IngredientsCost is the snapshot taken at last save. It may drift from the
// live recomputation when ingredient prices change; GET /products/:id/cost
// returns both.
type Product struct {
	ID              string            `gorm:"primaryKey;size:36" json:"id"`
	Name            string            `gorm:"size:100;not null" json:"name"`
	Description     string            `gorm:"size:255" json:"description,omitempty"`
	Components      ProductComponents `gorm:"type:jsonb" json:"components"`
	IngredientsCost float64           `gorm:"not null" json:"ingredientsCost"`
	ProfitPercent   float64           `json:"profitPercent"`
	SellingPrice    float64           `gorm:"not null" json:"sellingPrice"`
	IsActive        bool              `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
