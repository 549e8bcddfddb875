package analytics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Percentage returns part/total*100 rounded to two decimals, or 0 when total
// is zero.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)*100/float64(total), 2)
}

// Money converts a monetary decimal to a float with cent precision, ready
// for JSON.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// FormatCurrency renders an amount as "$1,234.50".
func FormatCurrency(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	v := d.Round(2)
	if v.IsNegative() {
		return "-$" + p.Sprintf("%.2f", v.Neg().InexactFloat64())
	}
	return "$" + p.Sprintf("%.2f", v.InexactFloat64())
}

// HourLabel renders an hour of day as "09:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
