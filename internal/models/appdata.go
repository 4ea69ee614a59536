package models

// AppData is the aggregate document: every top-level collection plus the
// settings. It is what backup export/import and the cloud mirror move
// around, always as a whole (no partial updates).
type AppData struct {
	Ingredients []Ingredient    `json:"ingredients"`
	Recipes     []Recipe        `json:"recipes"`
	Packagings  []Packaging     `json:"packagings"`
	Products    []Product       `json:"products"`
	Orders      []Order         `json:"orders"`
	Settings    PricingSettings `json:"settings"`
}
