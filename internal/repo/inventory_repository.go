package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type InventoryRepository interface {
	// MovementSummary totals stock movements per product since the given
	// time, busiest products first.
	MovementSummary(ctx context.Context, since time.Time, limit int) ([]models.ProductMovement, error)
}
