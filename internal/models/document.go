package models

import "encoding/json"

// settingsDocument mirrors PricingSettings with pointer fields so that a
// field genuinely missing from a document can be told apart from an
// explicit zero.
type settingsDocument struct {
	LaborCostPerHour    *float64 `json:"laborCostPerHour"`
	ProfitMarginPercent *float64 `json:"profitMarginPercent"`
	DeliveryCost        *float64 `json:"deliveryCost"`
	OverheadPercent     *float64 `json:"overheadPercent"`
}

type appDocument struct {
	Ingredients []Ingredient      `json:"ingredients"`
	Recipes     []Recipe          `json:"recipes"`
	Packagings  []Packaging       `json:"packagings"`
	Products    []Product         `json:"products"`
	Orders      []Order           `json:"orders"`
	Settings    *settingsDocument `json:"settings"`
}

// ParseDocument decodes an aggregate document and back-fills defaults for
// any missing collection or settings field. Both backup import and the
// cloud mirror go through here, so a partial document never erases the
// default packaging catalog or zeroes the settings. Parsing happens in
// full before the caller mutates anything.
func ParseDocument(raw []byte) (AppData, error) {
	var doc appDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AppData{}, err
	}

	data := AppData{
		Ingredients: doc.Ingredients,
		Recipes:     doc.Recipes,
		Packagings:  doc.Packagings,
		Products:    doc.Products,
		Orders:      doc.Orders,
		Settings:    DefaultSettings(),
	}

	if data.Ingredients == nil {
		data.Ingredients = []Ingredient{}
	}
	if data.Recipes == nil {
		data.Recipes = []Recipe{}
	}
	if data.Packagings == nil {
		data.Packagings = DefaultPackagings()
	}
	if data.Products == nil {
		data.Products = []Product{}
	}
	if data.Orders == nil {
		data.Orders = []Order{}
	}

	if doc.Settings != nil {
		if doc.Settings.LaborCostPerHour != nil {
			data.Settings.LaborCostPerHour = *doc.Settings.LaborCostPerHour
		}
		if doc.Settings.ProfitMarginPercent != nil {
			data.Settings.ProfitMarginPercent = *doc.Settings.ProfitMarginPercent
		}
		if doc.Settings.DeliveryCost != nil {
			data.Settings.DeliveryCost = *doc.Settings.DeliveryCost
		}
		if doc.Settings.OverheadPercent != nil {
			data.Settings.OverheadPercent = *doc.Settings.OverheadPercent
		}
	}

	return data, nil
}
