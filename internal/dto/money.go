package dto

import "github.com/shopspring/decimal"

// minorUnitExponent is the number of decimal places between minor and major units.
const minorUnitExponent = 2

// MinorToMajor converts an integer minor-unit amount to its major-unit decimal,
// e.g. 150000 -> 1500.00.
func MinorToMajor(amount int64) decimal.Decimal {
	return decimal.New(amount, -minorUnitExponent)
}
