package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/config"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
	"github.com/rogerio-castellano/sales-analytics/internal/repo"
)

// RefreshRunner is the part of the refresh orchestrator the API drives.
type RefreshRunner interface {
	Run(ctx context.Context, trigger string) (refresh.Result, error)
	History() refresh.RunLog
}

// FreshnessChecker reports how far the returns views lag behind.
type FreshnessChecker interface {
	CheckFreshness(ctx context.Context) (models.MaterializedViewFreshness, error)
}

// Deps lists everything the handlers need. All fields are required.
type Deps struct {
	Transactions repo.TransactionRepository
	Returns      repo.ReturnsRepository
	Inventory    repo.InventoryRepository
	Users        repo.UserRepository
	Refresher    RefreshRunner
	Freshness    FreshnessChecker
	Issuer       *auth.Issuer
	Analytics    config.AnalyticsConfig
	Logger       zerolog.Logger
}

// Handler serves the analytics API.
type Handler struct {
	transactions repo.TransactionRepository
	returns      repo.ReturnsRepository
	inventory    repo.InventoryRepository
	users        repo.UserRepository
	refresher    RefreshRunner
	freshness    FreshnessChecker
	issuer       *auth.Issuer
	settings     config.AnalyticsConfig
	logger       zerolog.Logger
	now          func() time.Time
}

func New(d Deps) *Handler {
	return &Handler{
		transactions: d.Transactions,
		returns:      d.Returns,
		inventory:    d.Inventory,
		users:        d.Users,
		refresher:    d.Refresher,
		freshness:    d.Freshness,
		issuer:       d.Issuer,
		settings:     d.Analytics,
		logger:       d.Logger.With().Str("component", "http").Logger(),
		now:          time.Now,
	}
}
