package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

// Classification labels an hour relative to the peak hour and the hourly
// average.
type Classification string

const (
	Peak   Classification = "Peak"
	High   Classification = "High"
	Normal Classification = "Normal"
	Low    Classification = "Low"
	Valley Classification = "Valley"
)

const topHourCount = 4

// HourlyBucket aggregates all transactions sharing an hour of day.
type HourlyBucket struct {
	Hour              int
	TransactionCount  int64
	TotalAmount       decimal.Decimal
	PercentageOfTotal float64
}

type HourStat struct {
	Hour             int     `json:"hour"`
	Label            string  `json:"label"`
	TransactionCount int64   `json:"transactionCount"`
	Percentage       float64 `json:"percentage"`
}

type Concentration struct {
	HourCount  int      `json:"hourCount"`
	Percentage float64  `json:"percentage"`
	HourLabels []string `json:"hourLabels"`
}

type ClassifiedHour struct {
	Hour              int            `json:"hour"`
	Label             string         `json:"label"`
	TransactionCount  int64          `json:"transactionCount"`
	TotalAmount       float64        `json:"totalAmount"`
	FormattedAmount   string         `json:"formattedAmount"`
	PercentageOfTotal float64        `json:"percentageOfTotal"`
	Classification    Classification `json:"classification"`
	Recommendation    string         `json:"recommendation"`
}

// HourlyReport is the outcome of AnalyzeHourly. PeakValleyRatio is nil when
// the valley hour has no transactions; ZeroValley reports that condition.
type HourlyReport struct {
	Peak              HourStat         `json:"peakHour"`
	Valley            HourStat         `json:"valleyHour"`
	Concentration     Concentration    `json:"concentration"`
	PeakValleyRatio   *float64         `json:"peakValleyRatio"`
	ZeroValley        bool             `json:"zeroValley"`
	TotalTransactions int64            `json:"totalTransactions"`
	AveragePerHour    int64            `json:"averagePerHour"`
	Hours             []ClassifiedHour `json:"hours"`
	Insights          []string         `json:"insights"`
}

// BuildHourlyBuckets turns raw per-hour counts into buckets ordered by hour,
// each carrying its share of the total.
func BuildHourlyBuckets(rows []models.HourlyCount) []HourlyBucket {
	var total int64
	for _, r := range rows {
		total += r.TransactionCount
	}

	buckets := make([]HourlyBucket, 0, len(rows))
	for _, r := range rows {
		buckets = append(buckets, HourlyBucket{
			Hour:              r.Hour,
			TransactionCount:  r.TransactionCount,
			TotalAmount:       r.TotalAmount,
			PercentageOfTotal: Percentage(r.TransactionCount, total),
		})
	}
	slices.SortStableFunc(buckets, func(a, b HourlyBucket) int { return cmp.Compare(a.Hour, b.Hour) })
	return buckets
}

// Classify applies the staffing rule. Rules are evaluated in order and the
// first match wins.
func Classify(count, peakCount int64, average float64) (Classification, string) {
	c := float64(count)
	switch {
	case c >= float64(peakCount)*0.9:
		return Peak, "Full staffing + optimized systems"
	case c >= average*1.5:
		return High, "Full staffing"
	case c >= average*0.7:
		return Normal, "Standard staffing"
	case c >= average*0.4:
		return Low, "Reduced staffing"
	default:
		return Valley, "Minimum staffing"
	}
}

// AnalyzeHourly finds the peak and valley hours, the concentration of the
// busiest hours and classifies every bucket.
//
// Buckets are scanned in ascending hour order whatever the input order, so
// ties on peak or valley always resolve to the lowest hour.
func AnalyzeHourly(buckets []HourlyBucket) (HourlyReport, error) {
	if !hasActivity(buckets) {
		return HourlyReport{}, ErrEmptyDataset
	}

	ordered := slices.Clone(buckets)
	slices.SortStableFunc(ordered, func(a, b HourlyBucket) int { return cmp.Compare(a.Hour, b.Hour) })

	peak, valley := ordered[0], ordered[0]
	var total int64
	for _, b := range ordered {
		if b.TransactionCount > peak.TransactionCount {
			peak = b
		}
		if b.TransactionCount < valley.TransactionCount {
			valley = b
		}
		total += b.TransactionCount
	}
	average := float64(total) / float64(len(ordered))

	top := slices.Clone(ordered)
	slices.SortStableFunc(top, func(a, b HourlyBucket) int { return cmp.Compare(b.TransactionCount, a.TransactionCount) })
	if len(top) > topHourCount {
		top = top[:topHourCount]
	}
	concentration := Concentration{HourCount: len(top), HourLabels: make([]string, 0, len(top))}
	var topShare float64
	for _, b := range top {
		topShare += b.PercentageOfTotal
		concentration.HourLabels = append(concentration.HourLabels, HourLabel(b.Hour))
	}
	concentration.Percentage = Round(topShare, 1)

	report := HourlyReport{
		Peak:              hourStat(peak),
		Valley:            hourStat(valley),
		Concentration:     concentration,
		TotalTransactions: total,
		AveragePerHour:    int64(Round(average, 0)),
		Hours:             make([]ClassifiedHour, 0, len(ordered)),
	}
	if valley.TransactionCount > 0 {
		ratio := Round(float64(peak.TransactionCount)/float64(valley.TransactionCount), 1)
		report.PeakValleyRatio = &ratio
	} else {
		report.ZeroValley = true
	}

	for _, b := range ordered {
		class, recommendation := Classify(b.TransactionCount, peak.TransactionCount, average)
		report.Hours = append(report.Hours, ClassifiedHour{
			Hour:              b.Hour,
			Label:             HourLabel(b.Hour),
			TransactionCount:  b.TransactionCount,
			TotalAmount:       Money(b.TotalAmount),
			FormattedAmount:   FormatCurrency(b.TotalAmount),
			PercentageOfTotal: b.PercentageOfTotal,
			Classification:    class,
			Recommendation:    recommendation,
		})
	}

	report.Insights = hourlyInsights(report, len(ordered))
	return report, nil
}

func hasActivity(buckets []HourlyBucket) bool {
	for _, b := range buckets {
		if b.TransactionCount > 0 {
			return true
		}
	}
	return false
}

func hourStat(b HourlyBucket) HourStat {
	return HourStat{
		Hour:             b.Hour,
		Label:            HourLabel(b.Hour),
		TransactionCount: b.TransactionCount,
		Percentage:       b.PercentageOfTotal,
	}
}

func hourlyInsights(r HourlyReport, activeHours int) []string {
	insights := []string{
		fmt.Sprintf("Peak activity at %s with %d transactions (%.1f%% of the total)",
			r.Peak.Label, r.Peak.TransactionCount, r.Peak.Percentage),
		fmt.Sprintf("Lowest activity at %s with %d transactions", r.Valley.Label, r.Valley.TransactionCount),
		fmt.Sprintf("The top %d hours (%s) concentrate %.1f%% of all transactions",
			r.Concentration.HourCount, strings.Join(r.Concentration.HourLabels, ", "), r.Concentration.Percentage),
	}
	if r.PeakValleyRatio != nil {
		insights = append(insights, fmt.Sprintf("The peak hour handles %.1fx the volume of the valley hour", *r.PeakValleyRatio))
	} else {
		insights = append(insights, fmt.Sprintf("%s has no recorded transactions; staffing can be minimal", r.Valley.Label))
	}
	insights = append(insights, fmt.Sprintf("Average of %d transactions per hour across %d hours", r.AveragePerHour, activeHours))
	return insights
}
