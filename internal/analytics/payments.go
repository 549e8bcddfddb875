package analytics

import (
	"cmp"
	"slices"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type PaymentMethodDistribution struct {
	Method         string  `json:"method"`
	Count          int64   `json:"count"`
	Percentage     float64 `json:"percentage"`
	TotalAmount    float64 `json:"totalAmount"`
	FormattedTotal string  `json:"formattedTotal"`
	AvgTicket      float64 `json:"avgTicket"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// PaymentDistribution computes each method's share of the transaction
// count, most used method first.
func PaymentDistribution(rows []models.PaymentMethodStats) []PaymentMethodDistribution {
	var total int64
	for _, r := range rows {
		total += r.Count
	}

	out := make([]PaymentMethodDistribution, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaymentMethodDistribution{
			Method:         r.Method,
			Count:          r.Count,
			Percentage:     Percentage(r.Count, total),
			TotalAmount:    Money(r.TotalAmount),
			FormattedTotal: FormatCurrency(r.TotalAmount),
			AvgTicket:      Money(r.AvgTicket),
			Min:            Money(r.Min),
			Max:            Money(r.Max),
		})
	}
	slices.SortStableFunc(out, func(a, b PaymentMethodDistribution) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return out
}
