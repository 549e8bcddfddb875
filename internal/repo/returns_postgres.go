package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	returnMetricsSQL = `SELECT
        total_returns,
        total_amount::text,
        average_amount::text,
        total_quantity,
        unique_customers,
        unique_products,
        last_return_at
    FROM mv_returns_metrics
    LIMIT 1;`

	returnsByReasonSQL = `SELECT motive, return_count, total_amount::text
    FROM mv_returns_by_reason
    ORDER BY return_count DESC, motive;`

	topReturnedProductsSQL = `SELECT product_id, product_name, return_count, total_quantity, total_amount::text
    FROM mv_returns_top_products
    ORDER BY return_count DESC, product_id
    LIMIT $1;`

	dailyReturnsSQL = `SELECT
        date_trunc('day', created_at) AS day,
        COUNT(*),
        COALESCE(SUM(amount), 0)::text
    FROM mv_returns_enriched
    WHERE created_at >= date_trunc('day', now()) - make_interval(days => $1 - 1)
    GROUP BY 1
    ORDER BY 1;`
)

type PostgresReturnsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReturnsRepository(pool *pgxpool.Pool) *PostgresReturnsRepository {
	return &PostgresReturnsRepository{pool: pool}
}

func (r *PostgresReturnsRepository) Metrics(ctx context.Context) (models.ReturnMetrics, error) {
	var (
		m            models.ReturnMetrics
		total, avg   string
		lastReturnAt *time.Time
	)
	err := r.pool.QueryRow(ctx, returnMetricsSQL).Scan(
		&m.TotalReturns, &total, &avg, &m.TotalQuantity, &m.UniqueCustomers, &m.UniqueProducts, &lastReturnAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ReturnMetrics{}, nil
	}
	if err != nil {
		return models.ReturnMetrics{}, fmt.Errorf("return metrics: %w", err)
	}
	if m.TotalAmount, err = parseDecimal("returns total", total); err != nil {
		return models.ReturnMetrics{}, err
	}
	if m.AverageAmount, err = parseDecimal("returns average", avg); err != nil {
		return models.ReturnMetrics{}, err
	}
	m.LastReturnAt = lastReturnAt
	return m, nil
}

func (r *PostgresReturnsRepository) ByReason(ctx context.Context) ([]models.ReasonBreakdown, error) {
	rows, err := r.pool.Query(ctx, returnsByReasonSQL)
	if err != nil {
		return nil, fmt.Errorf("returns by reason: %w", err)
	}
	defer rows.Close()

	reasons := make([]models.ReasonBreakdown, 0)
	for rows.Next() {
		var (
			b     models.ReasonBreakdown
			total string
		)
		if err := rows.Scan(&b.Motive, &b.Count, &total); err != nil {
			return nil, fmt.Errorf("scan return reason: %w", err)
		}
		if b.TotalAmount, err = parseDecimal("reason total", total); err != nil {
			return nil, err
		}
		reasons = append(reasons, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return reasons: %w", err)
	}
	return reasons, nil
}

func (r *PostgresReturnsRepository) TopReturnedProducts(ctx context.Context, limit int) ([]models.ReturnedProduct, error) {
	rows, err := r.pool.Query(ctx, topReturnedProductsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top returned products: %w", err)
	}
	defer rows.Close()

	products := make([]models.ReturnedProduct, 0, limit)
	for rows.Next() {
		var (
			p     models.ReturnedProduct
			total string
		)
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.ReturnCount, &p.TotalQuantity, &total); err != nil {
			return nil, fmt.Errorf("scan returned product: %w", err)
		}
		if p.TotalAmount, err = parseDecimal("product total", total); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate returned products: %w", err)
	}
	return products, nil
}

func (r *PostgresReturnsRepository) DailyTrend(ctx context.Context, days int) ([]models.DailyReturns, error) {
	rows, err := r.pool.Query(ctx, dailyReturnsSQL, days)
	if err != nil {
		return nil, fmt.Errorf("daily returns: %w", err)
	}
	defer rows.Close()

	points := make([]models.DailyReturns, 0, days)
	for rows.Next() {
		var (
			p     models.DailyReturns
			total string
		)
		if err := rows.Scan(&p.Day, &p.Count, &total); err != nil {
			return nil, fmt.Errorf("scan daily returns: %w", err)
		}
		if p.TotalAmount, err = parseDecimal("daily total", total); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily returns: %w", err)
	}
	return points, nil
}
