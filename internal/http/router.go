package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/sales-analytics/docs"
	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/sales-analytics/internal/http/rate_limiter"
)

type RouterConfig struct {
	Logger zerolog.Logger
	// Limiter is optional; nil disables rate limiting.
	Limiter *rate_limiter.Limiter
	Issuer  *auth.Issuer
}

func NewRouter(h *handlers.Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(cfg.Logger))
	r.Use(middleware.Recoverer)
	if cfg.Limiter != nil {
		r.Use(RateLimit(cfg.Limiter))
	}

	r.Get("/health", h.Health)
	r.Post("/login", h.Login)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Route("/patterns", func(r chi.Router) {
			r.Get("/hourly", h.HourlyPatterns)
			r.Get("/hourly/chart.png", h.HourlyChart)
			r.Get("/weekday", h.WeekdayPatterns)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/methods", h.PaymentMethods)
			r.Get("/high-risk", h.HighRisk)
		})

		r.Route("/returns", func(r chi.Router) {
			r.Get("/metrics", h.ReturnMetrics)
			r.Get("/analysis", h.ReturnsAnalysis)
			r.Get("/test", h.ConnectivityTest)
			r.Get("/suspicious-patterns", h.SuspiciousPatterns)
			r.Get("/top-returned-products", h.TopReturnedProducts)
			r.Get("/trends", h.ReturnTrends)
			r.Get("/freshness", h.Freshness)
			r.Get("/refresh-history", h.RefreshHistory)
			r.With(RequireAuth(cfg.Issuer)).Post("/refresh-vistas", h.RefreshViews)
		})

		r.Get("/inventory/movements", h.InventoryMovements)
	})

	return r
}
