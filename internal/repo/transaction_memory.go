package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

type InMemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	returns      int64
	products     int64
	err          error
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{transactions: []models.Transaction{}}
}

// Add appends transactions to the store.
func (r *InMemoryTransactionRepository) Add(txs ...models.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, txs...)
}

// SetTableCounts fixes the returns and products counts reported by Counts.
func (r *InMemoryTransactionRepository) SetTableCounts(returns, products int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.returns, r.products = returns, products
}

// FailWith makes every query return err until Clear; nil restores normal
// behaviour.
func (r *InMemoryTransactionRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *InMemoryTransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = []models.Transaction{}
	r.returns, r.products = 0, 0
	r.err = nil
}

func (r *InMemoryTransactionRepository) failure() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *InMemoryTransactionRepository) HourlyCounts(_ context.Context, since *time.Time) ([]models.HourlyCount, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	byHour := map[int]*models.HourlyCount{}
	for _, tx := range r.since(since) {
		h := tx.CreatedAt.Hour()
		c, ok := byHour[h]
		if !ok {
			c = &models.HourlyCount{Hour: h}
			byHour[h] = c
		}
		c.TransactionCount++
		c.TotalAmount = c.TotalAmount.Add(tx.Total)
	}

	counts := make([]models.HourlyCount, 0, len(byHour))
	for _, c := range byHour {
		counts = append(counts, *c)
	}
	slices.SortFunc(counts, func(a, b models.HourlyCount) int { return cmp.Compare(a.Hour, b.Hour) })
	return counts, nil
}

func (r *InMemoryTransactionRepository) WeekdayCounts(_ context.Context, since *time.Time) ([]models.WeekdayCount, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	byDay := map[int]*models.WeekdayCount{}
	for _, tx := range r.since(since) {
		d := int(tx.CreatedAt.Weekday())
		c, ok := byDay[d]
		if !ok {
			c = &models.WeekdayCount{Day: d}
			byDay[d] = c
		}
		c.TransactionCount++
		c.TotalAmount = c.TotalAmount.Add(tx.Total)
	}

	counts := make([]models.WeekdayCount, 0, len(byDay))
	for _, c := range byDay {
		counts = append(counts, *c)
	}
	slices.SortFunc(counts, func(a, b models.WeekdayCount) int { return cmp.Compare(a.Day, b.Day) })
	return counts, nil
}

func (r *InMemoryTransactionRepository) PaymentMethodStats(_ context.Context, since *time.Time) ([]models.PaymentMethodStats, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	byMethod := map[string]*models.PaymentMethodStats{}
	for _, tx := range r.since(since) {
		s, ok := byMethod[tx.PaymentMethod]
		if !ok {
			s = &models.PaymentMethodStats{Method: tx.PaymentMethod, Min: tx.Total, Max: tx.Total}
			byMethod[tx.PaymentMethod] = s
		}
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(tx.Total)
		s.Min = decimal.Min(s.Min, tx.Total)
		s.Max = decimal.Max(s.Max, tx.Total)
	}

	stats := make([]models.PaymentMethodStats, 0, len(byMethod))
	for _, s := range byMethod {
		s.AvgTicket = s.TotalAmount.Div(decimal.NewFromInt(s.Count))
		stats = append(stats, *s)
	}
	slices.SortFunc(stats, func(a, b models.PaymentMethodStats) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return stats, nil
}

func (r *InMemoryTransactionRepository) CashTransactionsAbove(_ context.Context, minAmount decimal.Decimal) ([]models.Transaction, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	out := []models.Transaction{}
	for _, tx := range r.since(nil) {
		if tx.PaymentMethod == models.CashPaymentMethod && tx.Total.GreaterThanOrEqual(minAmount) {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b models.Transaction) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *InMemoryTransactionRepository) RecentCustomerTransactions(_ context.Context, since time.Time, limit int) ([]models.Transaction, error) {
	if err := r.failure(); err != nil {
		return nil, err
	}
	out := []models.Transaction{}
	for _, tx := range r.since(&since) {
		if tx.CustomerID != nil {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b models.Transaction) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryTransactionRepository) Counts(context.Context) (models.TableCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return models.TableCounts{}, r.err
	}
	return models.TableCounts{
		Transactions: models.BigInt(len(r.transactions)),
		Returns:      models.BigInt(r.returns),
		Products:     models.BigInt(r.products),
	}, nil
}

func (r *InMemoryTransactionRepository) Ping(context.Context) error {
	return r.failure()
}

func (r *InMemoryTransactionRepository) since(since *time.Time) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if since != nil && tx.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
