package repo

import (
	"context"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

// ReturnsRepository reads the returns materialized views. Results are only
// as fresh as the last refresh.
type ReturnsRepository interface {
	Metrics(ctx context.Context) (models.ReturnMetrics, error)
	ByReason(ctx context.Context) ([]models.ReasonBreakdown, error)
	TopReturnedProducts(ctx context.Context, limit int) ([]models.ReturnedProduct, error)
	DailyTrend(ctx context.Context, days int) ([]models.DailyReturns, error)
}
