package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type InMemoryInventoryRepository struct {
	mu        sync.RWMutex
	products  map[int64]string
	movements []models.Movement
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{products: map[int64]string{}}
}

func (r *InMemoryInventoryRepository) AddProduct(id int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[id] = name
}

// Log records a movement; movements for unknown products are ignored by
// MovementSummary, matching the inner join of the SQL version.
func (r *InMemoryInventoryRepository) Log(productID int64, delta int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, models.Movement{
		ID:        models.BigInt(len(r.movements) + 1),
		ProductID: models.BigInt(productID),
		Delta:     delta,
		CreatedAt: at,
	})
}

func (r *InMemoryInventoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[int64]string{}
	r.movements = nil
}

func (r *InMemoryInventoryRepository) MovementSummary(_ context.Context, since time.Time, limit int) ([]models.ProductMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byProduct := map[int64]*models.ProductMovement{}
	var all int64
	for _, m := range r.movements {
		id := m.ProductID.Int64()
		name, ok := r.products[id]
		if !ok || m.CreatedAt.Before(since) {
			continue
		}
		pm, ok := byProduct[id]
		if !ok {
			pm = &models.ProductMovement{ProductID: id, ProductName: name}
			byProduct[id] = pm
		}
		if m.Delta > 0 {
			pm.Inbound += m.Delta
		} else {
			pm.Outbound -= m.Delta
		}
		pm.MovementCount++
		all++
	}

	summary := make([]models.ProductMovement, 0, len(byProduct))
	for _, pm := range byProduct {
		pm.AllMovements = all
		summary = append(summary, *pm)
	}
	slices.SortFunc(summary, func(a, b models.ProductMovement) int {
		if c := cmp.Compare(b.MovementCount, a.MovementCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if limit >= 0 && len(summary) > limit {
		summary = summary[:limit]
	}
	return summary, nil
}
