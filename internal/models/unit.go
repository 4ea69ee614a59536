package models

// Unit is a measurement unit for ingredient quantities.
// Mass units: kg, g. Volume units: l, ml, tbsp, tsp, cup. Count: unit.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitG     Unit = "g"
	UnitL     Unit = "l"
	UnitMl    Unit = "ml"
	UnitCount Unit = "unit" // count, convertible only to itself
	UnitTsp   Unit = "tsp"
	UnitTbsp  Unit = "tbsp"
	UnitCup   Unit = "cup"
)

var allUnits = []Unit{UnitKg, UnitG, UnitL, UnitMl, UnitCount, UnitTsp, UnitTbsp, UnitCup}

func ValidUnit(u Unit) bool {
	for _, known := range allUnits {
		if u == known {
			return true
		}
	}
	return false
}
