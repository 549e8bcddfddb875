package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

func TestCashRiskLevel(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"50000", RiskCritical},
		{"49999.99", RiskHigh},
		{"20000", RiskHigh},
		{"19999.99", RiskModerate},
		{"10000", RiskModerate},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := CashRiskLevel(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyCashRisk(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{ID: 1, PaymentMethod: "efectivo", Total: decimal.RequireFromString("9999"), CreatedAt: now},
		{ID: 2, PaymentMethod: "efectivo", Total: decimal.RequireFromString("10000"), CreatedAt: now},
		{ID: 3, PaymentMethod: "tarjeta", Total: decimal.RequireFromString("80000"), CreatedAt: now},
		{ID: 4, PaymentMethod: "efectivo", Total: decimal.RequireFromString("50000"), CreatedAt: now},
		{ID: 5, PaymentMethod: "efectivo", Total: decimal.RequireFromString("10000"), CreatedAt: now},
	}

	got := ClassifyCashRisk(txs, DefaultCashRiskThreshold)

	if len(got) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(got))
	}
	wantIDs := []models.BigInt{4, 2, 5}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
	if got[0].RiskLevel != RiskCritical {
		t.Errorf("expected %s, got %s", RiskCritical, got[0].RiskLevel)
	}
	if got[0].FormattedAmount != "$50,000.00" {
		t.Errorf("expected $50,000.00, got %s", got[0].FormattedAmount)
	}
}

func TestClassifyCashRiskEmpty(t *testing.T) {
	got := ClassifyCashRisk(nil, DefaultCashRiskThreshold)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
