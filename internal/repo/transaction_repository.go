package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

// TransactionRepository aggregates the transactions table. A nil since means
// the whole history.
type TransactionRepository interface {
	HourlyCounts(ctx context.Context, since *time.Time) ([]models.HourlyCount, error)
	WeekdayCounts(ctx context.Context, since *time.Time) ([]models.WeekdayCount, error)
	PaymentMethodStats(ctx context.Context, since *time.Time) ([]models.PaymentMethodStats, error)
	CashTransactionsAbove(ctx context.Context, minAmount decimal.Decimal) ([]models.Transaction, error)
	RecentCustomerTransactions(ctx context.Context, since time.Time, limit int) ([]models.Transaction, error)
	Counts(ctx context.Context) (models.TableCounts, error)
	Ping(ctx context.Context) error
}
