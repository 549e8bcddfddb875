package handlers_test_suite

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rogerio-castellano/sales-analytics/internal/db"
)

func TestDatabaseConnectionErrorHandler(t *testing.T) {
	t.Cleanup(clearAll)
	driverText := "dial tcp 10.0.0.5:5432: connect: connection refused"
	transactionRepo.FailWith(fmt.Errorf("%w: %s", db.ErrConnection, driverText))

	paths := []string{
		"/api/returns/test",
		"/api/patterns/hourly",
		"/api/payments/high-risk",
		"/api/returns/suspicious-patterns",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := get(router, path)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			body := w.Body.String()

			env, err := decodeEnvelope(w, nil)
			if err != nil {
				t.Fatal(err)
			}
			if env.Success {
				t.Errorf("expected success false")
			}
			if env.Error != "Database connection error" {
				t.Errorf("expected 'Database connection error', got %q", env.Error)
			}
			if env.Details == "" {
				t.Errorf("expected details to be set")
			}
			if strings.Contains(body, "10.0.0.5") || strings.Contains(body, "connection refused") {
				t.Errorf("expected no driver text in response, got %s", body)
			}
		})
	}
}

func TestQueryErrorKeepsDetails(t *testing.T) {
	t.Cleanup(clearAll)
	transactionRepo.FailWith(errors.New(`hourly counts: relation "transactions" does not exist`))

	w := get(router, "/api/patterns/hourly")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	env, err := decodeEnvelope(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if env.Error == "Database connection error" {
		t.Errorf("expected a query failure message, got %q", env.Error)
	}
	if !strings.Contains(env.Details, "does not exist") {
		t.Errorf("expected details to carry the query error, got %q", env.Details)
	}
}
