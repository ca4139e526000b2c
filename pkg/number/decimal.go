package number

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ratio returns a / b, zero when b is zero
func Ratio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}

	return a.Div(b)
}

// ToFixed formats f with the given number of decimal places, rounding the
// exact binary value half away from zero
func ToFixed(f float64, places int32) string {
	exact := strconv.FormatFloat(f, 'f', 64, 64)
	return Decimal(exact).StringFixed(places)
}

// Percent formats ratio as a percentage, eg 0.1234 => 12.34%
func Percent(ratio decimal.Decimal, places int32) string {
	return ratio.Shift(2).StringFixed(places) + "%"
}
