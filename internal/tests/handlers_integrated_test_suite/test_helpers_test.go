package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/config"
	"github.com/rogerio-castellano/sales-analytics/internal/db"
	api "github.com/rogerio-castellano/sales-analytics/internal/http"
	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
	"github.com/rogerio-castellano/sales-analytics/internal/repo"
)

const (
	testUsername = "integration-admin"
	testPassword = "secret"
)

var (
	router   http.Handler
	pool     *pgxpool.Pool
	userRepo *repo.PostgresUserRepository
)

// TestMain runs the suite against the database named by
// ANALYTICS_TEST_DATABASE_DSN and skips it when the variable is unset.
func TestMain(m *testing.M) {
	dsn := os.Getenv("ANALYTICS_TEST_DATABASE_DSN")
	if dsn == "" {
		fmt.Println("ANALYTICS_TEST_DATABASE_DSN not set; skipping integrated handler tests")
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	pool, err = db.NewPool(ctx, config.DatabaseConfig{
		DSN:            dsn,
		MaxConns:       4,
		MinConns:       1,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		fmt.Println("could not connect to database:", err)
		os.Exit(1)
	}

	router, err = setupRouter(ctx)
	if err != nil {
		fmt.Println("could not set up router:", err)
		os.Exit(1)
	}

	code := m.Run()
	clearTestUsers()
	pool.Close()
	os.Exit(code)
}

func setupRouter(ctx context.Context) (http.Handler, error) {
	userRepo = repo.NewPostgresUserRepository(pool)
	if err := createAdminIfNotExists(ctx); err != nil {
		return nil, err
	}

	issuer, err := auth.NewIssuer("integration-secret", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	views := repo.NewPostgresViewRepository(pool)
	orchestrator := refresh.NewOrchestrator(views, refresh.Options{
		Views:   config.DefaultViews,
		History: refresh.NewMemoryRunLog(20),
		Logger:  zerolog.Nop(),
	})

	h := handler.New(handler.Deps{
		Transactions: repo.NewPostgresTransactionRepository(pool),
		Returns:      repo.NewPostgresReturnsRepository(pool),
		Inventory:    repo.NewPostgresInventoryRepository(pool),
		Users:        userRepo,
		Refresher:    orchestrator,
		Freshness:    views,
		Issuer:       issuer,
		Analytics: config.AnalyticsConfig{
			CashRiskMinAmount:    10000,
			SuspiciousMaxMinutes: 5,
			SuspiciousWindow:     24 * time.Hour,
			SuspiciousCandidates: 10000,
			SuspiciousResults:    50,
			TopProductsLimit:     10,
			TrendDays:            30,
			MovementDays:         30,
			MovementLimit:        20,
			MaxLimit:             500,
			MaxDays:              365,
		},
		Logger: zerolog.Nop(),
	})
	return api.NewRouter(h, api.RouterConfig{Logger: zerolog.Nop(), Issuer: issuer}), nil
}

func createAdminIfNotExists(ctx context.Context) error {
	_, err := userRepo.GetByUsername(ctx, testUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		return fmt.Errorf("error checking if admin exists: %w", err)
	}

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		return err
	}
	_, err = userRepo.CreateUser(ctx, models.User{
		Username:     testUsername,
		PasswordHash: hash,
		Role:         "admin",
	})
	return err
}

func clearTestUsers() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "DELETE FROM users WHERE username = $1", testUsername)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to delete test users: %w", err))
	}
}

func generateToken(r http.Handler, username, password string) (string, int, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Data handler.LoginResult `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", w.Code, fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Data.Token, w.Code, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func get(r http.Handler, target string) (*httptest.ResponseRecorder, envelope, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	return w, env, err
}
