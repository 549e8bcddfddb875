package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := map[string]string{
		"0":         "$0.00",
		"1234.5":    "$1,234.50",
		"1000000":   "$1,000,000.00",
		"-2500.125": "-$2,500.13",
	}
	for in, want := range tests {
		if got := FormatCurrency(decimal.RequireFromString(in)); got != want {
			t.Errorf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(1, 3); got != 33.33 {
		t.Errorf("expected 33.33, got %v", got)
	}
	if got := Percentage(5, 0); got != 0 {
		t.Errorf("expected 0 for empty total, got %v", got)
	}
}

func TestHourLabel(t *testing.T) {
	if got := HourLabel(7); got != "07:00" {
		t.Errorf("expected 07:00, got %s", got)
	}
}
