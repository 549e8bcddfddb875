package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	TimingRiskHigh   = "High"
	TimingRiskMedium = "Medium"
	TimingRiskLow    = "Low"
)

// SuspiciousOptions bounds the repeat-transaction scan. Zero values fall
// back to DefaultSuspiciousOptions.
type SuspiciousOptions struct {
	MaxMinutes   float64
	Window       time.Duration
	CandidateCap int
	ResultCap    int
}

func DefaultSuspiciousOptions() SuspiciousOptions {
	return SuspiciousOptions{
		MaxMinutes:   5,
		Window:       24 * time.Hour,
		CandidateCap: 10000,
		ResultCap:    50,
	}
}

func (o SuspiciousOptions) withDefaults() SuspiciousOptions {
	d := DefaultSuspiciousOptions()
	if o.MaxMinutes <= 0 {
		o.MaxMinutes = d.MaxMinutes
	}
	if o.Window <= 0 {
		o.Window = d.Window
	}
	if o.CandidateCap <= 0 {
		o.CandidateCap = d.CandidateCap
	}
	if o.ResultCap <= 0 {
		o.ResultCap = d.ResultCap
	}
	return o
}

// SuspiciousPattern is a pair of consecutive transactions by one customer.
type SuspiciousPattern struct {
	CustomerID          models.BigInt `json:"customerId"`
	FirstTransactionID  models.BigInt `json:"firstTransactionId"`
	SecondTransactionID models.BigInt `json:"secondTransactionId"`
	FirstAt             time.Time     `json:"firstAt"`
	SecondAt            time.Time     `json:"secondAt"`
	MinutesApart        float64       `json:"minutesApart"`
	FirstAmount         float64       `json:"firstAmount"`
	SecondAmount        float64       `json:"secondAmount"`
	RiskLevel           string        `json:"riskLevel"`
}

// TimingRiskLevel tiers the gap between two transactions: up to 2 minutes
// is High, up to 3 is Medium, anything longer is Low.
func TimingRiskLevel(minutes float64) string {
	switch {
	case minutes <= 2:
		return TimingRiskHigh
	case minutes <= 3:
		return TimingRiskMedium
	default:
		return TimingRiskLow
	}
}

// DetectSuspiciousPatterns flags transactions that follow the same
// customer's previous transaction within opts.MaxMinutes. Only the newest
// opts.CandidateCap transactions inside the window are considered. Results
// are newest first and capped at opts.ResultCap.
func DetectSuspiciousPatterns(txs []models.Transaction, now time.Time, opts SuspiciousOptions) []SuspiciousPattern {
	opts = opts.withDefaults()
	cutoff := now.Add(-opts.Window)

	candidates := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.CustomerID == nil || tx.CreatedAt.Before(cutoff) {
			continue
		}
		candidates = append(candidates, tx)
	}
	slices.SortStableFunc(candidates, func(a, b models.Transaction) int { return compareByTime(b, a) })
	if len(candidates) > opts.CandidateCap {
		candidates = candidates[:opts.CandidateCap]
	}

	byCustomer := make(map[models.BigInt][]models.Transaction)
	for _, tx := range candidates {
		byCustomer[*tx.CustomerID] = append(byCustomer[*tx.CustomerID], tx)
	}

	patterns := []SuspiciousPattern{}
	for customer, history := range byCustomer {
		slices.SortStableFunc(history, compareByTime)
		for i := 1; i < len(history); i++ {
			prev, cur := history[i-1], history[i]
			minutes := float64(cur.CreatedAt.Sub(prev.CreatedAt)) / float64(time.Minute)
			if minutes > opts.MaxMinutes {
				continue
			}
			patterns = append(patterns, SuspiciousPattern{
				CustomerID:          customer,
				FirstTransactionID:  prev.ID,
				SecondTransactionID: cur.ID,
				FirstAt:             prev.CreatedAt,
				SecondAt:            cur.CreatedAt,
				MinutesApart:        Round(minutes, 2),
				FirstAmount:         Money(prev.Total),
				SecondAmount:        Money(cur.Total),
				RiskLevel:           TimingRiskLevel(minutes),
			})
		}
	}

	slices.SortFunc(patterns, func(a, b SuspiciousPattern) int {
		if c := b.SecondAt.Compare(a.SecondAt); c != 0 {
			return c
		}
		return cmp.Compare(b.SecondTransactionID, a.SecondTransactionID)
	})
	if len(patterns) > opts.ResultCap {
		patterns = patterns[:opts.ResultCap]
	}
	return patterns
}

func compareByTime(a, b models.Transaction) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
