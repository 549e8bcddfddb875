package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/db"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	hourlyCountsSQL = `SELECT
        EXTRACT(HOUR FROM created_at)::int AS hour,
        COUNT(*) AS transaction_count,
        COALESCE(SUM(total), 0)::text AS total_amount
    FROM transactions
    WHERE ($1::timestamptz IS NULL OR created_at >= $1)
    GROUP BY 1
    ORDER BY 1;`

	weekdayCountsSQL = `SELECT
        EXTRACT(DOW FROM created_at)::int AS day,
        COUNT(*) AS transaction_count,
        COALESCE(SUM(total), 0)::text AS total_amount
    FROM transactions
    WHERE ($1::timestamptz IS NULL OR created_at >= $1)
    GROUP BY 1
    ORDER BY 1;`

	paymentMethodStatsSQL = `SELECT
        payment_method,
        COUNT(*),
        COALESCE(SUM(total), 0)::text,
        COALESCE(AVG(total), 0)::text,
        COALESCE(MIN(total), 0)::text,
        COALESCE(MAX(total), 0)::text
    FROM transactions
    WHERE ($1::timestamptz IS NULL OR created_at >= $1)
    GROUP BY payment_method
    ORDER BY COUNT(*) DESC, payment_method;`

	cashTransactionsAboveSQL = `SELECT id, customer_id, payment_method, total::text, created_at
    FROM transactions
    WHERE payment_method = $1
      AND total >= $2::numeric
    ORDER BY total DESC, id;`

	recentCustomerTransactionsSQL = `SELECT id, customer_id, payment_method, total::text, created_at
    FROM transactions
    WHERE customer_id IS NOT NULL
      AND created_at >= $1
    ORDER BY created_at DESC, id DESC
    LIMIT $2;`

	tableCountsSQL = `SELECT
        (SELECT COUNT(*) FROM transactions),
        (SELECT COUNT(*) FROM returns),
        (SELECT COUNT(*) FROM products);`
)

type PostgresTransactionRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTransactionRepository(pool *pgxpool.Pool) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{pool: pool}
}

func (r *PostgresTransactionRepository) HourlyCounts(ctx context.Context, since *time.Time) ([]models.HourlyCount, error) {
	rows, err := r.pool.Query(ctx, hourlyCountsSQL, since)
	if err != nil {
		return nil, fmt.Errorf("hourly counts: %w", err)
	}
	defer rows.Close()

	counts := make([]models.HourlyCount, 0, 24)
	for rows.Next() {
		var (
			hour  int32
			count int64
			total string
		)
		if err := rows.Scan(&hour, &count, &total); err != nil {
			return nil, fmt.Errorf("scan hourly count: %w", err)
		}
		amount, err := parseDecimal("hourly total", total)
		if err != nil {
			return nil, err
		}
		counts = append(counts, models.HourlyCount{Hour: int(hour), TransactionCount: count, TotalAmount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hourly counts: %w", err)
	}
	return counts, nil
}

func (r *PostgresTransactionRepository) WeekdayCounts(ctx context.Context, since *time.Time) ([]models.WeekdayCount, error) {
	rows, err := r.pool.Query(ctx, weekdayCountsSQL, since)
	if err != nil {
		return nil, fmt.Errorf("weekday counts: %w", err)
	}
	defer rows.Close()

	counts := make([]models.WeekdayCount, 0, 7)
	for rows.Next() {
		var (
			day   int32
			count int64
			total string
		)
		if err := rows.Scan(&day, &count, &total); err != nil {
			return nil, fmt.Errorf("scan weekday count: %w", err)
		}
		amount, err := parseDecimal("weekday total", total)
		if err != nil {
			return nil, err
		}
		counts = append(counts, models.WeekdayCount{Day: int(day), TransactionCount: count, TotalAmount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekday counts: %w", err)
	}
	return counts, nil
}

func (r *PostgresTransactionRepository) PaymentMethodStats(ctx context.Context, since *time.Time) ([]models.PaymentMethodStats, error) {
	rows, err := r.pool.Query(ctx, paymentMethodStatsSQL, since)
	if err != nil {
		return nil, fmt.Errorf("payment method stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.PaymentMethodStats, 0)
	for rows.Next() {
		var s models.PaymentMethodStats
		var total, avg, low, high string
		if err := rows.Scan(&s.Method, &s.Count, &total, &avg, &low, &high); err != nil {
			return nil, fmt.Errorf("scan payment method stats: %w", err)
		}
		if s.TotalAmount, err = parseDecimal("payment total", total); err != nil {
			return nil, err
		}
		if s.AvgTicket, err = parseDecimal("payment average", avg); err != nil {
			return nil, err
		}
		if s.Min, err = parseDecimal("payment min", low); err != nil {
			return nil, err
		}
		if s.Max, err = parseDecimal("payment max", high); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment method stats: %w", err)
	}
	return stats, nil
}

func (r *PostgresTransactionRepository) CashTransactionsAbove(ctx context.Context, minAmount decimal.Decimal) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, cashTransactionsAboveSQL, models.CashPaymentMethod, minAmount.String())
	if err != nil {
		return nil, fmt.Errorf("cash transactions above %s: %w", minAmount, err)
	}
	return collectTransactions(rows)
}

func (r *PostgresTransactionRepository) RecentCustomerTransactions(ctx context.Context, since time.Time, limit int) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, recentCustomerTransactionsSQL, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent customer transactions: %w", err)
	}
	return collectTransactions(rows)
}

func (r *PostgresTransactionRepository) Counts(ctx context.Context) (models.TableCounts, error) {
	var transactions, returns, products int64
	if err := r.pool.QueryRow(ctx, tableCountsSQL).Scan(&transactions, &returns, &products); err != nil {
		return models.TableCounts{}, fmt.Errorf("table counts: %w", err)
	}
	return models.TableCounts{
		Transactions: models.BigInt(transactions),
		Returns:      models.BigInt(returns),
		Products:     models.BigInt(products),
	}, nil
}

func (r *PostgresTransactionRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", db.ErrConnection, err)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		var (
			id        int64
			customer  *int64
			method    string
			total     string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &customer, &method, &total, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		amount, err := parseDecimal("transaction total", total)
		if err != nil {
			return nil, err
		}
		tx := models.Transaction{ID: models.BigInt(id), PaymentMethod: method, Total: amount, CreatedAt: createdAt}
		if customer != nil {
			c := models.BigInt(*customer)
			tx.CustomerID = &c
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
