package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

func seedCash() {
	transactionRepo.Add(
		models.Transaction{ID: 1, PaymentMethod: "efectivo", Total: decimal.RequireFromString("12000.00"), CreatedAt: at(9, 0)},
		models.Transaction{ID: 2, PaymentMethod: "efectivo", Total: decimal.RequireFromString("60000.00"), CreatedAt: at(10, 0)},
		models.Transaction{ID: 3, PaymentMethod: "efectivo", Total: decimal.RequireFromString("25000.50"), CreatedAt: at(11, 0)},
		models.Transaction{ID: 4, PaymentMethod: "efectivo", Total: decimal.RequireFromString("5000.00"), CreatedAt: at(12, 0)},
		models.Transaction{ID: 5, PaymentMethod: "tarjeta", Total: decimal.RequireFromString("90000.00"), CreatedAt: at(13, 0)},
	)
}

func TestHighRiskHandler_DefaultThreshold(t *testing.T) {
	t.Cleanup(clearAll)
	seedCash()

	w := get(router, "/api/payments/high-risk")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.HighRiskResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}

	if result.MinAmount != 10000 {
		t.Errorf("expected minAmount 10000, got %v", result.MinAmount)
	}
	if result.Count != 3 {
		t.Fatalf("expected 3 risky transactions, got %d", result.Count)
	}

	expected := []struct {
		id    int64
		level string
	}{
		{2, analytics.RiskCritical},
		{3, analytics.RiskHigh},
		{1, analytics.RiskModerate},
	}
	for i, e := range expected {
		got := result.Transactions[i]
		if got.ID.Int64() != e.id {
			t.Errorf("expected transaction %d at position %d, got %d", e.id, i, got.ID.Int64())
		}
		if got.RiskLevel != e.level {
			t.Errorf("expected risk level %q for transaction %d, got %q", e.level, e.id, got.RiskLevel)
		}
	}
	if result.Transactions[1].Amount != 25000.5 {
		t.Errorf("expected amount 25000.5, got %v", result.Transactions[1].Amount)
	}
}

func TestHighRiskHandler_CustomThreshold(t *testing.T) {
	t.Cleanup(clearAll)
	seedCash()

	w := get(router, "/api/payments/high-risk?minAmount=20000")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.HighRiskResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}
	if result.Count != 2 {
		t.Errorf("expected 2 transactions above 20000, got %d", result.Count)
	}
}

func TestHighRiskHandler_InvalidThreshold(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"not a number", "?minAmount=lots"},
		{"negative", "?minAmount=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/api/payments/high-risk"+tt.query)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
			env, err := decodeEnvelope(w, nil)
			if err != nil {
				t.Fatal(err)
			}
			if env.Success || env.Error == "" {
				t.Errorf("expected failure envelope with an error, got %+v", env)
			}
		})
	}
}

func TestPaymentMethodsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedCash()

	w := get(router, "/api/payments/methods")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var methods []analytics.PaymentMethodDistribution
	if _, err := decodeEnvelope(w, &methods); err != nil {
		t.Fatal(err)
	}
	if len(methods) != 2 {
		t.Fatalf("expected 2 payment methods, got %d", len(methods))
	}
	if methods[0].Method != "efectivo" || methods[0].Count != 4 {
		t.Errorf("expected efectivo with 4 transactions first, got %s with %d", methods[0].Method, methods[0].Count)
	}
	if methods[0].Percentage != 80 {
		t.Errorf("expected 80%% for efectivo, got %v", methods[0].Percentage)
	}
	if methods[1].Percentage != 20 {
		t.Errorf("expected 20%% for tarjeta, got %v", methods[1].Percentage)
	}
}
