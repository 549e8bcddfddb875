package handlers_test_suite

import (
	"net/http"
	"testing"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
)

func TestInventoryMovementsHandler(t *testing.T) {
	t.Cleanup(clearAll)

	now := time.Now()
	inventoryRepo.AddProduct(1, "Keyboard")
	inventoryRepo.AddProduct(2, "Mouse")
	inventoryRepo.Log(1, 10, now.Add(-48*time.Hour))
	inventoryRepo.Log(1, -3, now.Add(-24*time.Hour))
	inventoryRepo.Log(1, -2, now.Add(-time.Hour))
	inventoryRepo.Log(2, -5, now.Add(-2*time.Hour))
	// Outside a seven day window.
	inventoryRepo.Log(2, 50, now.AddDate(0, 0, -20))

	w := get(router, "/api/inventory/movements?days=7&limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.MovementsResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}
	if result.Days != 7 || result.Limit != 5 {
		t.Errorf("expected days 7 and limit 5 echoed, got %d and %d", result.Days, result.Limit)
	}
	if len(result.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(result.Products))
	}

	keyboard := result.Products[0]
	if keyboard.ProductName != "Keyboard" {
		t.Errorf("expected Keyboard first, got %s", keyboard.ProductName)
	}
	if keyboard.Net != 5 || keyboard.Direction != analytics.MovementRestock {
		t.Errorf("expected net 5 restock, got %d %s", keyboard.Net, keyboard.Direction)
	}
	if keyboard.Share != 75 {
		t.Errorf("expected 75%% share, got %v", keyboard.Share)
	}

	mouse := result.Products[1]
	if mouse.Direction != analytics.MovementDepletion {
		t.Errorf("expected Mouse depletion, got %s", mouse.Direction)
	}
}

func TestInventoryMovementsHandler_ShareIgnoresLimit(t *testing.T) {
	t.Cleanup(clearAll)

	now := time.Now()
	inventoryRepo.AddProduct(1, "Keyboard")
	inventoryRepo.AddProduct(2, "Mouse")
	inventoryRepo.Log(1, 10, now.Add(-3*time.Hour))
	inventoryRepo.Log(1, -3, now.Add(-2*time.Hour))
	inventoryRepo.Log(1, -2, now.Add(-time.Hour))
	inventoryRepo.Log(2, -5, now.Add(-time.Hour))

	w := get(router, "/api/inventory/movements?days=7&limit=1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.MovementsResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(result.Products))
	}
	if result.Products[0].Share != 75 {
		t.Errorf("expected 75%% share of all movements, got %v", result.Products[0].Share)
	}
}

func TestInventoryMovementsHandler_InvalidParams(t *testing.T) {
	for _, query := range []string{"?days=0", "?limit=-1", "?days=abc"} {
		t.Run(query, func(t *testing.T) {
			w := get(router, "/api/inventory/movements"+query)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}
