package handlers_test_suite

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/config"
	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
)

func seedReturns() {
	last := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	returnsRepo.SetViews(
		models.ReturnMetrics{
			TotalReturns:    40,
			TotalAmount:     decimal.RequireFromString("12345.678"),
			AverageAmount:   decimal.RequireFromString("308.64"),
			TotalQuantity:   55,
			UniqueCustomers: 30,
			UniqueProducts:  12,
			LastReturnAt:    &last,
		},
		[]models.ReasonBreakdown{
			{Motive: "defectuoso", Count: 30, TotalAmount: decimal.RequireFromString("9000")},
			{Motive: "talla incorrecta", Count: 10, TotalAmount: decimal.RequireFromString("3345.678")},
		},
		[]models.ReturnedProduct{
			{ProductID: 9007199254740993, ProductName: "Headphones", ReturnCount: 9, TotalQuantity: 10, TotalAmount: decimal.RequireFromString("900")},
			{ProductID: 17, ProductName: "Charger", ReturnCount: 5, TotalQuantity: 5, TotalAmount: decimal.RequireFromString("100")},
			{ProductID: 18, ProductName: "Cable", ReturnCount: 2, TotalQuantity: 3, TotalAmount: decimal.RequireFromString("30")},
		},
		[]models.DailyReturns{
			{Day: today.AddDate(0, 0, -3), Count: 1, TotalAmount: decimal.RequireFromString("10")},
			{Day: today.AddDate(0, 0, -2), Count: 1, TotalAmount: decimal.RequireFromString("10")},
			{Day: today.AddDate(0, 0, -1), Count: 4, TotalAmount: decimal.RequireFromString("40")},
			{Day: today, Count: 4, TotalAmount: decimal.RequireFromString("40")},
		},
	)
}

func TestReturnMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedReturns()

	w := get(router, "/api/returns/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics analytics.ReturnMetricsView
	if _, err := decodeEnvelope(w, &metrics); err != nil {
		t.Fatal(err)
	}
	if metrics.TotalReturns != 40 {
		t.Errorf("expected 40 returns, got %d", metrics.TotalReturns)
	}
	if metrics.TotalAmount != 12345.68 {
		t.Errorf("expected total 12345.68, got %v", metrics.TotalAmount)
	}
	if metrics.FormattedAmount != "$12,345.68" {
		t.Errorf("expected $12,345.68, got %q", metrics.FormattedAmount)
	}
}

func TestReturnsAnalysisHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedReturns()

	w := get(router, "/api/returns/analysis")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var analysis handler.ReturnsAnalysis
	if _, err := decodeEnvelope(w, &analysis); err != nil {
		t.Fatal(err)
	}
	if len(analysis.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %d", len(analysis.Reasons))
	}
	if analysis.Reasons[0].Percentage != 75 {
		t.Errorf("expected 75%% for the first reason, got %v", analysis.Reasons[0].Percentage)
	}
	if len(analysis.TopProducts) != 3 {
		t.Errorf("expected 3 top products, got %d", len(analysis.TopProducts))
	}
}

func TestTopReturnedProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedReturns()

	w := get(router, "/api/returns/top-returned-products?limit=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	// Beyond 2^53-1 ids travel as strings to stay exact in JavaScript.
	if !strings.Contains(body, `"productId":"9007199254740993"`) {
		t.Errorf("expected large product id serialized as string, got %s", body)
	}
	if !strings.Contains(body, `"productId":17`) {
		t.Errorf("expected small product id serialized as number, got %s", body)
	}

	var result handler.TopProductsResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Products) != 2 {
		t.Errorf("expected 2 products, got %d", len(result.Products))
	}
	if result.Products[0].ProductID.Int64() != 9007199254740993 {
		t.Errorf("expected exact large id, got %d", result.Products[0].ProductID.Int64())
	}
}

func TestTopReturnedProductsHandler_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"0", "x", "501"} {
		t.Run(limit, func(t *testing.T) {
			w := get(router, "/api/returns/top-returned-products?limit="+limit)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestReturnTrendsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	seedReturns()

	w := get(router, "/api/returns/trends?days=7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var trend analytics.ReturnTrend
	if _, err := decodeEnvelope(w, &trend); err != nil {
		t.Fatal(err)
	}
	if trend.Days != 7 {
		t.Errorf("expected 7 days, got %d", trend.Days)
	}
	if trend.TotalReturns != 10 {
		t.Errorf("expected 10 returns, got %d", trend.TotalReturns)
	}
	if trend.Direction != analytics.TrendUp {
		t.Errorf("expected trend up, got %s", trend.Direction)
	}
}

func TestConnectivityTestHandler(t *testing.T) {
	t.Cleanup(clearAll)
	transactionRepo.SetTableCounts(7, 3)
	addTransactions(10, 2, "tarjeta", "1.00")

	w := get(router, "/api/returns/test")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ConnectivityResult
	env, err := decodeEnvelope(w, &result)
	if err != nil {
		t.Fatal(err)
	}
	if env.Message == "" {
		t.Errorf("expected a message")
	}
	if result.Counts.Transactions.Int64() != 2 || result.Counts.Returns.Int64() != 7 || result.Counts.Products.Int64() != 3 {
		t.Errorf("expected counts 2/7/3, got %+v", result.Counts)
	}
}

func TestSuspiciousPatternsHandler(t *testing.T) {
	t.Cleanup(clearAll)

	now := time.Now()
	transactionRepo.Add(
		models.Transaction{ID: 101, CustomerID: customer(7), PaymentMethod: "tarjeta", Total: decimal.NewFromInt(10), CreatedAt: now.Add(-10 * time.Minute)},
		models.Transaction{ID: 102, CustomerID: customer(7), PaymentMethod: "tarjeta", Total: decimal.NewFromInt(12), CreatedAt: now.Add(-8 * time.Minute)},
		models.Transaction{ID: 201, CustomerID: customer(9007199254740993), PaymentMethod: "efectivo", Total: decimal.NewFromInt(5), CreatedAt: now.Add(-40 * time.Minute)},
		models.Transaction{ID: 202, CustomerID: customer(9007199254740993), PaymentMethod: "efectivo", Total: decimal.NewFromInt(6), CreatedAt: now.Add(-30 * time.Minute)},
		models.Transaction{ID: 301, PaymentMethod: "efectivo", Total: decimal.NewFromInt(1), CreatedAt: now.Add(-9 * time.Minute)},
		models.Transaction{ID: 401, CustomerID: customer(7), PaymentMethod: "tarjeta", Total: decimal.NewFromInt(1), CreatedAt: now.Add(-30 * time.Hour)},
	)

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"default five minutes", "", 1},
		{"fifteen minutes", "?maxMinutes=15", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/api/returns/suspicious-patterns"+tt.query)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			var result handler.SuspiciousResult
			if _, err := decodeEnvelope(w, &result); err != nil {
				t.Fatal(err)
			}
			if result.Count != tt.expectedCount {
				t.Fatalf("expected %d patterns, got %d", tt.expectedCount, result.Count)
			}

			first := result.Patterns[0]
			if first.SecondTransactionID.Int64() != 102 {
				t.Errorf("expected newest pattern to end at 102, got %d", first.SecondTransactionID.Int64())
			}
			if first.RiskLevel != analytics.TimingRiskHigh {
				t.Errorf("expected High risk, got %s", first.RiskLevel)
			}
			if first.MinutesApart != 2 {
				t.Errorf("expected 2 minutes apart, got %v", first.MinutesApart)
			}
		})
	}
}

func TestSuspiciousPatternsHandler_InvalidMaxMinutes(t *testing.T) {
	w := get(router, "/api/returns/suspicious-patterns?maxMinutes=soon")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestRefreshViewsHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAll)

	tests := []struct {
		name   string
		bearer string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postWithToken(router, "/api/returns/refresh-vistas", tt.bearer)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}

	if len(viewRepo.Refreshed()) != 0 {
		t.Errorf("expected no view refreshed, got %v", viewRepo.Refreshed())
	}
}

func TestRefreshViewsHandler(t *testing.T) {
	t.Cleanup(clearAll)

	w := postWithToken(router, "/api/returns/refresh-vistas", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result refresh.Result
	env, err := decodeEnvelope(w, &result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(env.Message, "seconds") {
		t.Errorf("expected duration in the message, got %q", env.Message)
	}
	if result.RunID == "" {
		t.Errorf("expected a run id")
	}
	if !strings.Contains(handlerLogs.String(), `"requested_by":"admin"`) {
		t.Errorf("expected the refresh to be logged with its requester, got %s", handlerLogs.String())
	}

	refreshed := viewRepo.Refreshed()
	if len(refreshed) != len(config.DefaultViews) {
		t.Fatalf("expected %d views refreshed, got %v", len(config.DefaultViews), refreshed)
	}
	for i, view := range config.DefaultViews {
		if refreshed[i] != view {
			t.Errorf("expected %s at step %d, got %s", view, i+1, refreshed[i])
		}
	}
	if refreshed[len(refreshed)-1] != "mv_returns_enriched" {
		t.Errorf("expected enriched view refreshed last, got %s", refreshed[len(refreshed)-1])
	}
}

func TestRefreshViewsHandler_FailureAbortsRemainingViews(t *testing.T) {
	t.Cleanup(clearAll)
	viewRepo.FailOn("mv_returns_top_products", errors.New("could not obtain lock"))

	w := postWithToken(router, "/api/returns/refresh-vistas", token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	env, err := decodeEnvelope(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(env.Error, "mv_returns_top_products") {
		t.Errorf("expected failing view in the error, got %q", env.Error)
	}
	if !strings.Contains(env.Details, "could not obtain lock") {
		t.Errorf("expected cause in details, got %q", env.Details)
	}

	refreshed := viewRepo.Refreshed()
	if len(refreshed) != 2 {
		t.Errorf("expected 2 views refreshed before the failure, got %v", refreshed)
	}

	h := get(router, "/api/returns/refresh-history?limit=1")
	if h.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for history, got %d", h.Code)
	}
	var history handler.RefreshHistoryResult
	if _, err := decodeEnvelope(h, &history); err != nil {
		t.Fatal(err)
	}
	if len(history.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(history.Runs))
	}
	if history.Runs[0].Status != refresh.StatusFailed {
		t.Errorf("expected latest run failed, got %s", history.Runs[0].Status)
	}
	if history.Runs[0].FailedView != "mv_returns_top_products" {
		t.Errorf("expected failed view recorded, got %q", history.Runs[0].FailedView)
	}
}

func TestFreshnessHandler(t *testing.T) {
	t.Cleanup(clearAll)

	lastBase := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	lastView := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	viewRepo.SetFreshness(models.NewFreshness("mv_returns_enriched", "returns", 120, 100, &lastBase, &lastView, lastBase))

	w := get(router, "/api/returns/freshness")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var f models.MaterializedViewFreshness
	if _, err := decodeEnvelope(w, &f); err != nil {
		t.Fatal(err)
	}
	if !f.Stale {
		t.Errorf("expected stale view")
	}
	if f.StaleHours != 6 {
		t.Errorf("expected 6 stale hours, got %v", f.StaleHours)
	}
}
