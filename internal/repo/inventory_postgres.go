package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const movementSummarySQL = `SELECT
        p.id,
        p.name,
        COALESCE(SUM(m.delta) FILTER (WHERE m.delta > 0), 0)::bigint AS inbound,
        COALESCE(-SUM(m.delta) FILTER (WHERE m.delta < 0), 0)::bigint AS outbound,
        COUNT(*) AS movement_count,
        SUM(COUNT(*)) OVER ()::bigint AS all_movements
    FROM movements m
    JOIN products p ON p.id = m.product_id
    WHERE m.created_at >= $1
    GROUP BY p.id, p.name
    ORDER BY movement_count DESC, p.id
    LIMIT $2;`

type PostgresInventoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresInventoryRepository(pool *pgxpool.Pool) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{pool: pool}
}

func (r *PostgresInventoryRepository) MovementSummary(ctx context.Context, since time.Time, limit int) ([]models.ProductMovement, error) {
	rows, err := r.pool.Query(ctx, movementSummarySQL, since, limit)
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	defer rows.Close()

	summary := make([]models.ProductMovement, 0)
	for rows.Next() {
		var m models.ProductMovement
		if err := rows.Scan(&m.ProductID, &m.ProductName, &m.Inbound, &m.Outbound, &m.MovementCount, &m.AllMovements); err != nil {
			return nil, fmt.Errorf("scan product movement: %w", err)
		}
		summary = append(summary, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product movements: %w", err)
	}
	return summary, nil
}
