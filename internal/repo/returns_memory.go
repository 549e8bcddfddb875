package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type InMemoryReturnsRepository struct {
	mu       sync.RWMutex
	metrics  models.ReturnMetrics
	reasons  []models.ReasonBreakdown
	products []models.ReturnedProduct
	daily    []models.DailyReturns
	now      func() time.Time
}

func NewInMemoryReturnsRepository() *InMemoryReturnsRepository {
	return &InMemoryReturnsRepository{now: time.Now}
}

// SetViews replaces the content served as if read from the views.
func (r *InMemoryReturnsRepository) SetViews(
	metrics models.ReturnMetrics,
	reasons []models.ReasonBreakdown,
	products []models.ReturnedProduct,
	daily []models.DailyReturns,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics, r.reasons, r.products, r.daily = metrics, reasons, products, daily
}

func (r *InMemoryReturnsRepository) Clear() {
	r.SetViews(models.ReturnMetrics{}, nil, nil, nil)
}

func (r *InMemoryReturnsRepository) Metrics(context.Context) (models.ReturnMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metrics, nil
}

func (r *InMemoryReturnsRepository) ByReason(context.Context) ([]models.ReasonBreakdown, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ReasonBreakdown{}, r.reasons...), nil
}

func (r *InMemoryReturnsRepository) TopReturnedProducts(_ context.Context, limit int) ([]models.ReturnedProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]models.ReturnedProduct{}, r.products...)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryReturnsRepository) DailyTrend(_ context.Context, days int) ([]models.DailyReturns, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	today := r.now().UTC().Truncate(24 * time.Hour)
	cutoff := today.AddDate(0, 0, -(days - 1))
	out := []models.DailyReturns{}
	for _, d := range r.daily {
		if !d.Day.Before(cutoff) {
			out = append(out, d)
		}
	}
	return out, nil
}
