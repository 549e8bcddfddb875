package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/config"
	api "github.com/rogerio-castellano/sales-analytics/internal/http"
	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
	"github.com/rogerio-castellano/sales-analytics/internal/repo"
)

var (
	token           string
	router          http.Handler
	transactionRepo *repo.InMemoryTransactionRepository
	returnsRepo     *repo.InMemoryReturnsRepository
	inventoryRepo   *repo.InMemoryInventoryRepository
	viewRepo        *repo.InMemoryViewRepository
	runLog          *refresh.MemoryRunLog
	handlerLogs     bytes.Buffer
)

func init() {
	router = setupTestRouter("secret")

	var err error
	token, err = generateToken(router, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func testSettings() config.AnalyticsConfig {
	return config.AnalyticsConfig{
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
	}
}

func setupTestRouter(password string) http.Handler {
	transactionRepo = repo.NewInMemoryTransactionRepository()
	returnsRepo = repo.NewInMemoryReturnsRepository()
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	viewRepo = repo.NewInMemoryViewRepository()
	runLog = refresh.NewMemoryRunLog(100)

	userRepo := repo.NewInMemoryUserRepository()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if _, err := userRepo.CreateUser(context.Background(), models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		panic(fmt.Sprintf("error creating admin: %v", err))
	}

	issuer, err := auth.NewIssuer("test-secret", 15*time.Minute)
	if err != nil {
		panic(fmt.Sprintf("error creating issuer: %v", err))
	}

	orchestrator := refresh.NewOrchestrator(viewRepo, refresh.Options{
		Views:   config.DefaultViews,
		History: runLog,
		Logger:  zerolog.Nop(),
	})

	h := handler.New(handler.Deps{
		Transactions: transactionRepo,
		Returns:      returnsRepo,
		Inventory:    inventoryRepo,
		Users:        userRepo,
		Refresher:    orchestrator,
		Freshness:    viewRepo,
		Issuer:       issuer,
		Analytics:    testSettings(),
		Logger:       zerolog.New(&handlerLogs),
	})

	return api.NewRouter(h, api.RouterConfig{Logger: zerolog.Nop(), Issuer: issuer})
}

func clearAll() {
	transactionRepo.Clear()
	returnsRepo.Clear()
	inventoryRepo.Clear()
	viewRepo.Reset()
	handlerLogs.Reset()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp struct {
		Data handler.LoginResult `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Data.Token, nil
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postWithToken(r http.Handler, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors handler.Envelope with the data left raw for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details string          `json:"details"`
}

func decodeEnvelope(w *httptest.ResponseRecorder, data any) (envelope, error) {
	var env envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		return env, fmt.Errorf("decode envelope: %w", err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return env, fmt.Errorf("decode data: %w", err)
		}
	}
	return env, nil
}

// at returns yesterday (UTC) at the given hour and minute.
func at(hour, minute int) time.Time {
	day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func addTransactions(hour, count int, method string, amount string) {
	for i := range count {
		transactionRepo.Add(models.Transaction{
			ID:            models.BigInt(hour*1000 + i + 1),
			PaymentMethod: method,
			Total:         decimal.RequireFromString(amount),
			CreatedAt:     at(hour, i%60),
		})
	}
}

func customer(id int64) *models.BigInt {
	c := models.BigInt(id)
	return &c
}

func addAt(createdAt time.Time, method, amount string) {
	transactionRepo.Add(models.Transaction{
		ID:            models.BigInt(createdAt.UnixNano()),
		PaymentMethod: method,
		Total:         decimal.RequireFromString(amount),
		CreatedAt:     createdAt,
	})
}
