package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/charts"
)

// HourlyPatterns godoc
// @Summary Hourly transaction pattern with peak, valley and staffing classification
// @Tags patterns
// @Produce json
// @Param days query int false "Look-back window in days (whole history when omitted)"
// @Success 200 {object} Envelope{data=analytics.HourlyReport}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error or no data"
// @Router /api/patterns/hourly [get]
func (h *Handler) HourlyPatterns(w http.ResponseWriter, r *http.Request) {
	report, ok := h.hourlyReport(w, r)
	if !ok {
		return
	}
	h.writeSuccess(w, r, report, "")
}

// HourlyChart godoc
// @Summary Hourly transaction pattern rendered as a PNG bar chart
// @Tags patterns
// @Produce png
// @Param days query int false "Look-back window in days (whole history when omitted)"
// @Success 200 {file} binary
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error or no data"
// @Router /api/patterns/hourly/chart.png [get]
func (h *Handler) HourlyChart(w http.ResponseWriter, r *http.Request) {
	report, ok := h.hourlyReport(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderHourly(&buf, report); err != nil {
		h.writeFailure(w, r, err, "could not render hourly chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn().Err(err).Msg("failed to write chart")
	}
}

func (h *Handler) hourlyReport(w http.ResponseWriter, r *http.Request) (analytics.HourlyReport, bool) {
	since, err := h.sinceParam(r)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return analytics.HourlyReport{}, false
	}

	rows, err := h.transactions.HourlyCounts(r.Context(), since)
	if err != nil {
		h.writeFailure(w, r, err, "could not load hourly transactions")
		return analytics.HourlyReport{}, false
	}

	report, err := analytics.AnalyzeHourly(analytics.BuildHourlyBuckets(rows))
	if err != nil {
		h.writeFailure(w, r, err, "could not analyze hourly pattern")
		return analytics.HourlyReport{}, false
	}
	return report, true
}

// WeekdayPatterns godoc
// @Summary Transactions per day of week
// @Tags patterns
// @Produce json
// @Param days query int false "Look-back window in days (whole history when omitted)"
// @Success 200 {object} Envelope{data=analytics.WeekdayReport}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error or no data"
// @Router /api/patterns/weekday [get]
func (h *Handler) WeekdayPatterns(w http.ResponseWriter, r *http.Request) {
	since, err := h.sinceParam(r)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	rows, err := h.transactions.WeekdayCounts(r.Context(), since)
	if err != nil {
		h.writeFailure(w, r, err, "could not load weekday transactions")
		return
	}

	report, err := analytics.WeekdayPattern(rows)
	if errors.Is(err, analytics.ErrEmptyDataset) {
		h.writeFailure(w, r, err, "no transaction data available")
		return
	}
	if err != nil {
		h.writeFailure(w, r, err, "could not analyze weekday pattern")
		return
	}
	h.writeSuccess(w, r, report, "")
}
