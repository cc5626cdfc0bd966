package domain

import (
	"math"
	"strconv"
)

// Monetary amounts cross the Direct API as integer micro-units (millionths of
// a currency unit). Tool inputs and rendered output always use display units;
// the conversion happens only at the translation boundary.

// ToMicros converts a display-unit amount to vendor micro-units.
func ToMicros(amount float64) int64 {
	return int64(math.Round(amount * 1_000_000))
}

// FromMicros renders vendor micro-units as a two-decimal display string.
func FromMicros(micros int64) string {
	return strconv.FormatFloat(float64(micros)/1_000_000, 'f', 2, 64)
}
