package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	RiskCritical = "Critical (>$50K)"
	RiskHigh     = "High (>$20K)"
	RiskModerate = "Moderate ($10K–$20K)"
)

var (
	// DefaultCashRiskThreshold is the minimum cash amount worth reporting.
	DefaultCashRiskThreshold = decimal.NewFromInt(10000)

	criticalCashAmount = decimal.NewFromInt(50000)
	highCashAmount     = decimal.NewFromInt(20000)
)

type RiskTransaction struct {
	ID              models.BigInt  `json:"id"`
	CustomerID      *models.BigInt `json:"customerId"`
	PaymentMethod   string         `json:"paymentMethod"`
	Amount          float64        `json:"amount"`
	FormattedAmount string         `json:"formattedAmount"`
	CreatedAt       time.Time      `json:"createdAt"`
	RiskLevel       string         `json:"riskLevel"`
}

// CashRiskLevel tiers a cash amount that already passed the minimum
// threshold.
func CashRiskLevel(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(criticalCashAmount):
		return RiskCritical
	case amount.GreaterThanOrEqual(highCashAmount):
		return RiskHigh
	default:
		return RiskModerate
	}
}

// ClassifyCashRisk keeps cash transactions of at least minAmount and tiers
// them, largest amount first.
func ClassifyCashRisk(txs []models.Transaction, minAmount decimal.Decimal) []RiskTransaction {
	selected := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.PaymentMethod != models.CashPaymentMethod || tx.Total.LessThan(minAmount) {
			continue
		}
		selected = append(selected, tx)
	}

	slices.SortStableFunc(selected, func(a, b models.Transaction) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	out := make([]RiskTransaction, 0, len(selected))
	for _, tx := range selected {
		out = append(out, RiskTransaction{
			ID:              tx.ID,
			CustomerID:      tx.CustomerID,
			PaymentMethod:   tx.PaymentMethod,
			Amount:          Money(tx.Total),
			FormattedAmount: FormatCurrency(tx.Total),
			CreatedAt:       tx.CreatedAt,
			RiskLevel:       CashRiskLevel(tx.Total),
		})
	}
	return out
}
