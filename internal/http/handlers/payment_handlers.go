package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
)

// PaymentMethods godoc
// @Summary Distribution of transactions by payment method
// @Tags payments
// @Produce json
// @Param days query int false "Look-back window in days (whole history when omitted)"
// @Success 200 {object} Envelope{data=[]analytics.PaymentMethodDistribution}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/payments/methods [get]
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	since, err := h.sinceParam(r)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	rows, err := h.transactions.PaymentMethodStats(r.Context(), since)
	if err != nil {
		h.writeFailure(w, r, err, "could not load payment methods")
		return
	}
	h.writeSuccess(w, r, analytics.PaymentDistribution(rows), "")
}

// HighRisk godoc
// @Summary Cash transactions above a threshold, tiered by risk
// @Tags payments
// @Produce json
// @Param minAmount query number false "Minimum cash amount" default(10000)
// @Success 200 {object} Envelope{data=HighRiskResult}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/payments/high-risk [get]
func (h *Handler) HighRisk(w http.ResponseWriter, r *http.Request) {
	minAmount, err := decimalParam(r, "minAmount", decimal.NewFromFloat(h.settings.CashRiskMinAmount))
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	txs, err := h.transactions.CashTransactionsAbove(r.Context(), minAmount)
	if err != nil {
		h.writeFailure(w, r, err, "could not load cash transactions")
		return
	}

	risky := analytics.ClassifyCashRisk(txs, minAmount)
	h.writeSuccess(w, r, HighRiskResult{
		MinAmount:    analytics.Money(minAmount),
		Count:        len(risky),
		Transactions: risky,
	}, "")
}
