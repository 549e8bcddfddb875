package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/refresh"
)

// ReturnMetrics godoc
// @Summary Returns summary metrics
// @Tags returns
// @Produce json
// @Success 200 {object} Envelope{data=analytics.ReturnMetricsView}
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/metrics [get]
func (h *Handler) ReturnMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.returns.Metrics(r.Context())
	if err != nil {
		h.writeFailure(w, r, err, "could not load return metrics")
		return
	}
	h.writeSuccess(w, r, analytics.FormatReturnMetrics(m), "")
}

// ReturnsAnalysis godoc
// @Summary Returns metrics, reason breakdown and most returned products
// @Tags returns
// @Produce json
// @Success 200 {object} Envelope{data=ReturnsAnalysis}
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/analysis [get]
func (h *Handler) ReturnsAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.returns.Metrics(ctx)
	if err != nil {
		h.writeFailure(w, r, err, "could not load return metrics")
		return
	}
	reasons, err := h.returns.ByReason(ctx)
	if err != nil {
		h.writeFailure(w, r, err, "could not load return reasons")
		return
	}
	products, err := h.returns.TopReturnedProducts(ctx, h.settings.TopProductsLimit)
	if err != nil {
		h.writeFailure(w, r, err, "could not load returned products")
		return
	}

	h.writeSuccess(w, r, ReturnsAnalysis{
		Metrics:     analytics.FormatReturnMetrics(m),
		Reasons:     analytics.ReasonDistribution(reasons),
		TopProducts: analytics.FormatReturnedProducts(products),
	}, "")
}

// ConnectivityTest godoc
// @Summary Database connectivity test with table row counts
// @Tags returns
// @Produce json
// @Success 200 {object} Envelope{data=ConnectivityResult}
// @Failure 500 {object} Envelope "Database connection error"
// @Router /api/returns/test [get]
func (h *Handler) ConnectivityTest(w http.ResponseWriter, r *http.Request) {
	if err := h.transactions.Ping(r.Context()); err != nil {
		h.writeFailure(w, r, err, "database ping failed")
		return
	}
	counts, err := h.transactions.Counts(r.Context())
	if err != nil {
		h.writeFailure(w, r, err, "could not count rows")
		return
	}
	h.writeSuccess(w, r, ConnectivityResult{Database: "connected", Counts: counts}, "Database connection OK")
}

// SuspiciousPatterns godoc
// @Summary Same-customer transactions close together in time
// @Tags returns
// @Produce json
// @Param maxMinutes query number false "Maximum gap in minutes" default(5)
// @Success 200 {object} Envelope{data=SuspiciousResult}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/suspicious-patterns [get]
func (h *Handler) SuspiciousPatterns(w http.ResponseWriter, r *http.Request) {
	maxMinutes, err := floatParam(r, "maxMinutes", h.settings.SuspiciousMaxMinutes, 0.01, 1440)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	now := h.now()
	opts := analytics.SuspiciousOptions{
		MaxMinutes:   maxMinutes,
		Window:       h.settings.SuspiciousWindow,
		CandidateCap: h.settings.SuspiciousCandidates,
		ResultCap:    h.settings.SuspiciousResults,
	}
	txs, err := h.transactions.RecentCustomerTransactions(r.Context(), now.Add(-opts.Window), opts.CandidateCap)
	if err != nil {
		h.writeFailure(w, r, err, "could not load recent transactions")
		return
	}

	patterns := analytics.DetectSuspiciousPatterns(txs, now, opts)
	h.writeSuccess(w, r, SuspiciousResult{
		MaxMinutes:  maxMinutes,
		WindowHours: opts.Window.Hours(),
		Count:       len(patterns),
		Patterns:    patterns,
	}, "")
}

// TopReturnedProducts godoc
// @Summary Most returned products
// @Tags returns
// @Produce json
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} Envelope{data=TopProductsResult}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/top-returned-products [get]
func (h *Handler) TopReturnedProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", h.settings.TopProductsLimit, 1, h.settings.MaxLimit)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	products, err := h.returns.TopReturnedProducts(r.Context(), limit)
	if err != nil {
		h.writeFailure(w, r, err, "could not load returned products")
		return
	}
	h.writeSuccess(w, r, TopProductsResult{Limit: limit, Products: analytics.FormatReturnedProducts(products)}, "")
}

// ReturnTrends godoc
// @Summary Daily returns over the last days with trend direction
// @Tags returns
// @Produce json
// @Param days query int false "Number of days" default(30)
// @Success 200 {object} Envelope{data=analytics.ReturnTrend}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/trends [get]
func (h *Handler) ReturnTrends(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", h.settings.TrendDays, 1, h.settings.MaxDays)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	points, err := h.returns.DailyTrend(r.Context(), days)
	if err != nil {
		h.writeFailure(w, r, err, "could not load return trend")
		return
	}
	h.writeSuccess(w, r, analytics.SummarizeReturnTrend(points, days, h.now()), "")
}

// Freshness godoc
// @Summary Staleness of the returns materialized views
// @Tags returns
// @Produce json
// @Success 200 {object} Envelope{data=models.MaterializedViewFreshness}
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/freshness [get]
func (h *Handler) Freshness(w http.ResponseWriter, r *http.Request) {
	f, err := h.freshness.CheckFreshness(r.Context())
	if err != nil {
		h.writeFailure(w, r, err, "could not check view freshness")
		return
	}
	h.writeSuccess(w, r, f, "")
}

// RefreshHistory godoc
// @Summary Most recent materialized view refresh runs
// @Tags returns
// @Produce json
// @Param limit query int false "Number of runs" default(20)
// @Success 200 {object} Envelope{data=RefreshHistoryResult}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/returns/refresh-history [get]
func (h *Handler) RefreshHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 20, 1, h.settings.MaxLimit)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	runs, err := h.refresher.History().Recent(r.Context(), limit)
	if err != nil {
		h.writeFailure(w, r, err, "could not read refresh history")
		return
	}
	h.writeSuccess(w, r, RefreshHistoryResult{Runs: runs}, "")
}

// RefreshViews godoc
// @Summary Refresh every returns materialized view, in order
// @Description Blocks until all views are refreshed; this may take minutes.
// @Tags returns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=refresh.Result}
// @Failure 401 {object} Envelope "Missing or invalid token"
// @Failure 409 {object} Envelope "Refresh already running"
// @Failure 500 {object} Envelope "Refresh failed"
// @Router /api/returns/refresh-vistas [post]
func (h *Handler) RefreshViews(w http.ResponseWriter, r *http.Request) {
	// A refresh is not abandoned when the client goes away.
	ctx := context.WithoutCancel(r.Context())

	requester := "unknown"
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		requester = claims.Username
	}
	h.logger.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("requested_by", requester).
		Msg("materialized view refresh requested")

	result, err := h.refresher.Run(ctx, refresh.TriggerAPI)
	if errors.Is(err, refresh.ErrRunInProgress) {
		h.writeError(w, r, http.StatusConflict, err.Error())
		return
	}
	var refreshErr *refresh.RefreshError
	if errors.As(err, &refreshErr) {
		h.writeFailure(w, r, err, fmt.Sprintf("refresh of %s failed", refreshErr.View))
		return
	}
	if err != nil {
		h.writeFailure(w, r, err, "materialized view refresh failed")
		return
	}

	h.writeSuccess(w, r, result, fmt.Sprintf("Materialized views refreshed in %.2f seconds", result.DurationSeconds))
}
