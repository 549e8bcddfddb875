package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

const (
	freshnessView      = "mv_returns_enriched"
	freshnessBaseTable = "returns"

	freshnessSQL = `SELECT
        (SELECT COUNT(*) FROM returns),
        (SELECT MAX(created_at) FROM returns),
        (SELECT COUNT(*) FROM mv_returns_enriched),
        (SELECT MAX(created_at) FROM mv_returns_enriched),
        now();`
)

// PostgresViewRepository refreshes materialized views and compares the
// enriched returns view with its base table.
type PostgresViewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresViewRepository(pool *pgxpool.Pool) *PostgresViewRepository {
	return &PostgresViewRepository{pool: pool}
}

// RefreshView blocks until the view is rebuilt. The name may be schema
// qualified and is quoted as an identifier.
func (r *PostgresViewRepository) RefreshView(ctx context.Context, view string) error {
	ident := pgx.Identifier(strings.Split(view, ".")).Sanitize()
	if _, err := r.pool.Exec(ctx, "REFRESH MATERIALIZED VIEW "+ident); err != nil {
		return fmt.Errorf("refresh materialized view %s: %w", view, err)
	}
	return nil
}

func (r *PostgresViewRepository) CheckFreshness(ctx context.Context) (models.MaterializedViewFreshness, error) {
	var (
		baseCount, viewCount int64
		lastBase, lastView   *time.Time
		checkedAt            time.Time
	)
	err := r.pool.QueryRow(ctx, freshnessSQL).Scan(&baseCount, &lastBase, &viewCount, &lastView, &checkedAt)
	if err != nil {
		return models.MaterializedViewFreshness{}, fmt.Errorf("check freshness: %w", err)
	}
	return models.NewFreshness(freshnessView, freshnessBaseTable, baseCount, viewCount, lastBase, lastView, checkedAt), nil
}
