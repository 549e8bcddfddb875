package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

func TestConnectivity(t *testing.T) {
	w, env, err := get(router, "/api/returns/test")
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d (%s)", w.Code, env.Error)
	}

	var result handler.ConnectivityResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("error decoding data: %v", err)
	}
	if result.Database != "connected" {
		t.Errorf("expected connected, got %q", result.Database)
	}
	if result.Counts.Transactions.Int64() < 0 {
		t.Errorf("expected a non-negative transaction count, got %d", result.Counts.Transactions.Int64())
	}
}

func TestFreshness(t *testing.T) {
	w, env, err := get(router, "/api/returns/freshness")
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d (%s)", w.Code, env.Error)
	}

	var f models.MaterializedViewFreshness
	if err := json.Unmarshal(env.Data, &f); err != nil {
		t.Fatalf("error decoding data: %v", err)
	}
	if f.View != "mv_returns_enriched" || f.BaseTable != "returns" {
		t.Errorf("expected mv_returns_enriched against returns, got %s against %s", f.View, f.BaseTable)
	}
	if f.StaleHours < 0 {
		t.Errorf("expected non-negative stale hours, got %v", f.StaleHours)
	}
}

func TestReadEndpointsAnswerWithEnvelope(t *testing.T) {
	paths := []string{
		"/api/returns/metrics",
		"/api/returns/analysis",
		"/api/returns/top-returned-products?limit=5",
		"/api/returns/trends?days=7",
		"/api/returns/suspicious-patterns",
		"/api/payments/high-risk",
		"/api/payments/methods",
		"/api/inventory/movements",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w, env, err := get(router, path)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if w.Code != http.StatusOK {
				t.Errorf("expected 200 OK, got %d (%s)", w.Code, env.Error)
			}
			if !env.Success {
				t.Errorf("expected success")
			}
		})
	}
}
