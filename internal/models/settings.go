package models

// PricingSettings are the process-wide defaults consumed by the pricing
// engine and the order form. Single row, mutated only through the settings
// update endpoint.
type PricingSettings struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	LaborCostPerHour    float64 `json:"laborCostPerHour"`
	ProfitMarginPercent float64 `json:"profitMarginPercent"`
	DeliveryCost        float64 `json:"deliveryCost"`
	OverheadPercent     float64 `json:"overheadPercent"`
}

func DefaultSettings() PricingSettings {
	return PricingSettings{
		LaborCostPerHour:    50,
		ProfitMarginPercent: 30,
		DeliveryCost:        30,
		OverheadPercent:     10,
	}
}
