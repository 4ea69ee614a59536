package pricing

import "bakery-backend/internal/models"

// Convert converts quantity from one unit to another.
//
// Supported directions: kg<->g and l<->ml (factor 1000), and the one-way
// kitchen approximations tbsp->ml (x15), tsp->ml (x5), cup->ml (x240),
// each also reducible to liters. Any other pair (mass<->volume, count,
// or the reverse of an approximation) returns the quantity unchanged.
// The identity fallback is deliberate: recipes with mismatched units must
// keep costing instead of failing.
func Convert(quantity float64, from, to models.Unit) float64 {
	if from == to {
		return quantity
	}

	if to == models.UnitKg && from == models.UnitG {
		return quantity / 1000
	}
	if to == models.UnitG && from == models.UnitKg {
		return quantity * 1000
	}

	if to == models.UnitL && from == models.UnitMl {
		return quantity / 1000
	}
	if to == models.UnitMl && from == models.UnitL {
		return quantity * 1000
	}

	// Spoons and cups reduce to milliliters first.
	if from == models.UnitTbsp && (to == models.UnitMl || to == models.UnitL) {
		return toVolume(quantity*15, to)
	}
	if from == models.UnitTsp && (to == models.UnitMl || to == models.UnitL) {
		return toVolume(quantity*5, to)
	}
	if from == models.UnitCup && (to == models.UnitMl || to == models.UnitL) {
		return toVolume(quantity*240, to)
	}

	return quantity
}

func toVolume(ml float64, to models.Unit) float64 {
	if to == models.UnitL {
		return ml / 1000
	}
	return ml
}
