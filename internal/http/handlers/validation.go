package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParamError is a query parameter that failed validation.
type ParamError struct {
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func intParam(r *http.Request, name string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Param: name, Reason: "must be an integer"}
	}
	if v < lo || v > hi {
		return 0, &ParamError{Param: name, Reason: fmt.Sprintf("must be between %d and %d", lo, hi)}
	}
	return v, nil
}

func floatParam(r *http.Request, name string, def, lo, hi float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParamError{Param: name, Reason: "must be a number"}
	}
	if v < lo || v > hi {
		return 0, &ParamError{Param: name, Reason: fmt.Sprintf("must be between %g and %g", lo, hi)}
	}
	return v, nil
}

func decimalParam(r *http.Request, name string, def decimal.Decimal) (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ParamError{Param: name, Reason: "must be a decimal amount"}
	}
	if v.IsNegative() {
		return decimal.Zero, &ParamError{Param: name, Reason: "cannot be negative"}
	}
	return v, nil
}

// sinceParam reads an optional "days" look-back window. No parameter means
// the whole history.
func (h *Handler) sinceParam(r *http.Request) (*time.Time, error) {
	days, err := intParam(r, "days", 0, 1, h.settings.MaxDays)
	if err != nil || days == 0 {
		return nil, err
	}
	since := h.now().AddDate(0, 0, -days)
	return &since, nil
}
