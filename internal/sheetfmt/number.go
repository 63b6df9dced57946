package sheetfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber converts a possibly comma-formatted sheet cell ("1,234.5") to a
// float64. Empty cells and unparseable text default to 0, matching how the
// source sheets are read.
func ParseNumber(cell string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// KgToGrams converts a kilogram quantity to grams exactly. Going through
// decimal avoids float noise like 24999.999999999996 in emitted cells.
func KgToGrams(kg float64) float64 {
	g, _ := decimal.NewFromFloat(kg).Mul(decimal.NewFromInt(1000)).Float64()
	return g
}
