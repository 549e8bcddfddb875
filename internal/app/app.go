package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/config"
	"github.com/rogerio-castellano/sales-analytics/internal/db"
	"github.com/rogerio-castellano/sales-analytics/internal/events"
	api "github.com/rogerio-castellano/sales-analytics/internal/http"
	"github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/redissvc"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
	"github.com/rogerio-castellano/sales-analytics/internal/repo"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// services holds everything opened against external systems. close releases
// them in reverse order.
type services struct {
	pool         *pgxpool.Pool
	redis        *redissvc.RedisService
	publisher    events.Publisher
	orchestrator *refresh.Orchestrator
	views        *repo.PostgresViewRepository
}

func (s *services) close() {
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

func (a *App) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if a.Config.Database.DSN == "" {
		return nil, errors.New("database.dsn is not configured")
	}
	return db.NewPool(ctx, a.Config.Database)
}

func (a *App) open(ctx context.Context) (*services, error) {
	pool, err := a.openPool(ctx)
	if err != nil {
		return nil, err
	}
	s := &services{pool: pool, views: repo.NewPostgresViewRepository(pool)}

	s.redis, err = redissvc.New(ctx, a.Config.Redis)
	if err != nil {
		s.close()
		return nil, err
	}

	var history refresh.RunLog
	if s.redis != nil {
		history = refresh.NewRedisRunLog(s.redis.Rdb(), a.Config.Refresh.HistoryKey, a.Config.Refresh.HistoryMax, a.Logger)
	} else {
		a.Logger.Warn().Msg("redis.addr not configured; refresh history kept in memory")
		history = refresh.NewMemoryRunLog(a.Config.Refresh.HistoryMax)
	}

	s.publisher = events.New(a.Config.Kafka.Brokers, a.Config.Kafka.RefreshTopic)
	if len(a.Config.Kafka.Brokers) == 0 {
		a.Logger.Info().Msg("kafka.brokers not configured; refresh events disabled")
	}

	s.orchestrator = refresh.NewOrchestrator(s.views, refresh.Options{
		Views:     a.Config.Refresh.Views,
		History:   history,
		Publisher: s.publisher,
		Logger:    a.Logger,
	})
	a.Logger.Debug().Strs("views", s.orchestrator.Views()).Msg("refresh order")
	return s, nil
}

// Serve runs the HTTP API until SIGINT/SIGTERM.
func (a *App) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	issuer, err := auth.NewIssuer(a.Config.Auth.JWTSecret, a.Config.Auth.TokenTTL)
	if err != nil {
		return err
	}
	if a.Config.Auth.JWTSecret == "" {
		a.Logger.Warn().Msg("auth.jwt_secret not configured; using a random secret")
	}

	h := handlers.New(handlers.Deps{
		Transactions: repo.NewPostgresTransactionRepository(s.pool),
		Returns:      repo.NewPostgresReturnsRepository(s.pool),
		Inventory:    repo.NewPostgresInventoryRepository(s.pool),
		Users:        repo.NewPostgresUserRepository(s.pool),
		Refresher:    s.orchestrator,
		Freshness:    s.views,
		Issuer:       issuer,
		Analytics:    a.Config.Analytics,
		Logger:       a.Logger,
	})

	limiter := rate_limiter.NewLimiter(a.Config.HTTP.RateLimit, a.Config.HTTP.RateBurst, a.Config.HTTP.VisitorTTL)
	limiter.StartCleanup(ctx, time.Minute)

	router := api.NewRouter(h, api.RouterConfig{
		Logger:  a.Logger.With().Str("component", "access").Logger(),
		Limiter: limiter,
		Issuer:  issuer,
	})

	if a.Config.Refresh.Interval > 0 {
		sched, err := refresh.NewScheduler(s.orchestrator, a.Config.Refresh.Interval, a.Logger)
		if err != nil {
			return err
		}
		sched.Start(ctx)
		defer sched.Stop()
		a.Logger.Info().Dur("interval", a.Config.Refresh.Interval).Msg("scheduled refresh enabled")
	}

	return api.NewServer(a.Config.HTTP, router, a.Logger).Run(ctx)
}

// Refresh runs the view refresh once.
func (a *App) Refresh(ctx context.Context) (refresh.Result, error) {
	s, err := a.open(ctx)
	if err != nil {
		return refresh.Result{}, err
	}
	defer s.close()

	return s.orchestrator.Run(ctx, refresh.TriggerCLI)
}

// HourlyReport analyzes the hourly pattern, optionally over the last days.
func (a *App) HourlyReport(ctx context.Context, days int) (analytics.HourlyReport, error) {
	pool, err := a.openPool(ctx)
	if err != nil {
		return analytics.HourlyReport{}, err
	}
	defer pool.Close()

	var since *time.Time
	if days > 0 {
		t := time.Now().AddDate(0, 0, -days)
		since = &t
	}

	rows, err := repo.NewPostgresTransactionRepository(pool).HourlyCounts(ctx, since)
	if err != nil {
		return analytics.HourlyReport{}, err
	}
	return analytics.AnalyzeHourly(analytics.BuildHourlyBuckets(rows))
}

// AddUser stores a user allowed to log in to the API.
func (a *App) AddUser(ctx context.Context, username, password, role string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, errors.New("username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	pool, err := a.openPool(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer pool.Close()

	user, err := repo.NewPostgresUserRepository(pool).CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, fmt.Errorf("user %q already exists", username)
	}
	return user, err
}
