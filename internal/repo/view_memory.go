package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

// InMemoryViewRepository records refresh calls and can be told to fail on a
// given view.
type InMemoryViewRepository struct {
	mu        sync.Mutex
	refreshed []string
	failures  map[string]error
	freshness models.MaterializedViewFreshness
	now       func() time.Time
}

func NewInMemoryViewRepository() *InMemoryViewRepository {
	return &InMemoryViewRepository{failures: map[string]error{}, now: time.Now}
}

// FailOn makes RefreshView return err for view.
func (r *InMemoryViewRepository) FailOn(view string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[view] = err
}

func (r *InMemoryViewRepository) SetFreshness(f models.MaterializedViewFreshness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freshness = f
}

// Refreshed lists the views refreshed so far, in call order.
func (r *InMemoryViewRepository) Refreshed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.refreshed...)
}

func (r *InMemoryViewRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshed = nil
	r.failures = map[string]error{}
	r.freshness = models.MaterializedViewFreshness{}
}

func (r *InMemoryViewRepository) RefreshView(ctx context.Context, view string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failures[view]; ok {
		return err
	}
	r.refreshed = append(r.refreshed, view)
	return nil
}

func (r *InMemoryViewRepository) CheckFreshness(context.Context) (models.MaterializedViewFreshness, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.freshness
	if f.View == "" {
		f = models.NewFreshness(freshnessView, freshnessBaseTable, 0, 0, nil, nil, r.now())
	}
	return f, nil
}
