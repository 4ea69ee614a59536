package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type RecipeCategory string

const (
	CategoryCake    RecipeCategory = "cake"
	CategoryCookie  RecipeCategory = "cookie"
	CategoryDessert RecipeCategory = "dessert"
	CategoryBread   RecipeCategory = "bread"
	CategoryOther   RecipeCategory = "other"
)

func ValidCategory(c RecipeCategory) bool {
	switch c {
	case CategoryCake, CategoryCookie, CategoryDessert, CategoryBread, CategoryOther:
		return true
	}
	return false
}

// RecipeIngredient is one line of a recipe. It references an Ingredient by
// id; a dangling reference is tolerated and costs zero.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
	Unit         Unit    `json:"unit"`
}

// RecipeIngredients is stored as a jsonb column, value-owned by the recipe.
type RecipeIngredients []RecipeIngredient

func (ri RecipeIngredients) Value() (driver.Value, error) {
	if ri == nil {
		ri = RecipeIngredients{}
	}
	return json.Marshal(ri)
}

func (ri *RecipeIngredients) Scan(value interface{}) error {
	return jsonbScan(ri, value)
}

type Recipe struct {
	ID           string            `gorm:"primaryKey;size:36" json:"id"`
	Name         string            `gorm:"size:100;not null" json:"name"`
	Category     RecipeCategory    `gorm:"size:20;not null" json:"category"`
	Ingredients  RecipeIngredients `gorm:"type:jsonb" json:"ingredients"`
	Yield        int               `gorm:"not null" json:"yield"`    // sellable units per execution
	YieldUnit    string            `gorm:"size:50" json:"yieldUnit"` // free text, e.g. "פרוסות"
	LaborMinutes int               `gorm:"not null" json:"laborMinutes"`
	Notes        string            `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
