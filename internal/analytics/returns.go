package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

type ReturnMetricsView struct {
	TotalReturns    int64      `json:"totalReturns"`
	TotalAmount     float64    `json:"totalAmount"`
	FormattedAmount string     `json:"formattedAmount"`
	AverageAmount   float64    `json:"averageAmount"`
	TotalQuantity   int64      `json:"totalQuantity"`
	UniqueCustomers int64      `json:"uniqueCustomers"`
	UniqueProducts  int64      `json:"uniqueProducts"`
	LastReturnAt    *time.Time `json:"lastReturnAt"`
}

type ReasonShare struct {
	Motive          string  `json:"motive"`
	Count           int64   `json:"count"`
	Percentage      float64 `json:"percentage"`
	TotalAmount     float64 `json:"totalAmount"`
	FormattedAmount string  `json:"formattedAmount"`
}

type ReturnedProductView struct {
	ProductID       models.BigInt `json:"productId"`
	ProductName     string        `json:"productName"`
	ReturnCount     int64         `json:"returnCount"`
	TotalQuantity   int64         `json:"totalQuantity"`
	TotalAmount     float64       `json:"totalAmount"`
	FormattedAmount string        `json:"formattedAmount"`
}

type TrendPoint struct {
	Date        string  `json:"date"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type ReturnTrend struct {
	Days             int          `json:"days"`
	Points           []TrendPoint `json:"points"`
	TotalReturns     int64        `json:"totalReturns"`
	TotalAmount      float64      `json:"totalAmount"`
	AveragePerDay    float64      `json:"averagePerDay"`
	Direction        string       `json:"direction"`
	ChangePercentage float64      `json:"changePercentage"`
}

func FormatReturnMetrics(m models.ReturnMetrics) ReturnMetricsView {
	return ReturnMetricsView{
		TotalReturns:    m.TotalReturns,
		TotalAmount:     Money(m.TotalAmount),
		FormattedAmount: FormatCurrency(m.TotalAmount),
		AverageAmount:   Money(m.AverageAmount),
		TotalQuantity:   m.TotalQuantity,
		UniqueCustomers: m.UniqueCustomers,
		UniqueProducts:  m.UniqueProducts,
		LastReturnAt:    m.LastReturnAt,
	}
}

// ReasonDistribution computes each motive's share of all returns.
func ReasonDistribution(rows []models.ReasonBreakdown) []ReasonShare {
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	out := make([]ReasonShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReasonShare{
			Motive:          r.Motive,
			Count:           r.Count,
			Percentage:      Percentage(r.Count, total),
			TotalAmount:     Money(r.TotalAmount),
			FormattedAmount: FormatCurrency(r.TotalAmount),
		})
	}
	slices.SortStableFunc(out, func(a, b ReasonShare) int { return cmp.Compare(b.Count, a.Count) })
	return out
}

func FormatReturnedProducts(rows []models.ReturnedProduct) []ReturnedProductView {
	out := make([]ReturnedProductView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReturnedProductView{
			ProductID:       models.BigInt(r.ProductID),
			ProductName:     r.ProductName,
			ReturnCount:     r.ReturnCount,
			TotalQuantity:   r.TotalQuantity,
			TotalAmount:     Money(r.TotalAmount),
			FormattedAmount: FormatCurrency(r.TotalAmount),
		})
	}
	return out
}

// SummarizeReturnTrend totals the daily series of the days ending on today
// and compares the first half of that calendar window with the second half.
// Days without returns count as zero; with an odd number of days the middle
// day is left out of the comparison.
func SummarizeReturnTrend(points []models.DailyReturns, days int, today time.Time) ReturnTrend {
	byDay := make(map[time.Time]models.DailyReturns, len(points))
	for _, p := range points {
		day := truncateDay(p.Day)
		prev := byDay[day]
		byDay[day] = models.DailyReturns{
			Day:         day,
			Count:       prev.Count + p.Count,
			TotalAmount: prev.TotalAmount.Add(p.TotalAmount),
		}
	}

	trend := ReturnTrend{Days: days, Points: []TrendPoint{}, Direction: TrendFlat}
	if days <= 0 || len(byDay) == 0 {
		return trend
	}

	end := truncateDay(today)
	start := end.AddDate(0, 0, -(days - 1))
	counts := make([]int64, 0, days)
	amount := decimal.Zero
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		p := byDay[day]
		counts = append(counts, p.Count)
		trend.Points = append(trend.Points, TrendPoint{
			Date:        day.Format(time.DateOnly),
			Count:       p.Count,
			TotalAmount: Money(p.TotalAmount),
		})
		trend.TotalReturns += p.Count
		amount = amount.Add(p.TotalAmount)
	}
	trend.TotalAmount = Money(amount)
	trend.AveragePerDay = Round(float64(trend.TotalReturns)/float64(len(counts)), 1)

	n := len(counts)
	if n < 2 {
		return trend
	}
	var first, second int64
	for _, c := range counts[:n/2] {
		first += c
	}
	for _, c := range counts[n-n/2:] {
		second += c
	}

	switch {
	case first == 0 && second > 0:
		trend.Direction = TrendUp
	case first == 0:
		trend.Direction = TrendFlat
	default:
		trend.ChangePercentage = Round(float64(second-first)*100/float64(first), 1)
		switch {
		case second > first:
			trend.Direction = TrendUp
		case second < first:
			trend.Direction = TrendDown
		}
	}
	return trend
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
