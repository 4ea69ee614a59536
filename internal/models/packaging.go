package models

// Packaging is a catalog entry referenced by id from orders and the
// calculator, never embedded by value.
type Packaging struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Cost  float64 `gorm:"not null" json:"cost"`
	Notes string  `gorm:"size:255" json:"notes,omitempty"`
}

// DefaultPackagings is the catalog seeded on first run.
func DefaultPackagings() []Packaging {
	return []Packaging{
		{ID: "1", Name: "קופסה רגילה", Cost: 5},
		{ID: "2", Name: "קופסה מהודרת", Cost: 15},
		{ID: "3", Name: "שקית צלופן", Cost: 2},
	}
}
