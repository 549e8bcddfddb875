package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
	"github.com/rogerio-castellano/sales-analytics/internal/db"
)

// Envelope wraps every JSON response of the API.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	Message   string    `json:"message,omitempty"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, data any, message string) {
	h.write(w, r, http.StatusOK, Envelope{Success: true, Data: data, Message: message, Timestamp: h.now().UTC()})
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.write(w, r, http.StatusBadRequest, Envelope{Success: false, Error: msg, Timestamp: h.now().UTC()})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.write(w, r, status, Envelope{Success: false, Error: msg, Timestamp: h.now().UTC()})
}

// writeFailure logs err and answers 500. Connection failures get a generic
// message so driver details never reach the client.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	env := Envelope{Success: false, Error: msg, Details: err.Error(), Timestamp: h.now().UTC()}
	switch {
	case db.IsConnectionError(err):
		env.Error = "Database connection error"
		env.Details = "the database is unavailable, try again later"
	case errors.Is(err, analytics.ErrEmptyDataset):
		env.Error = "No transaction data available"
	}

	h.logger.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg(msg)
	h.write(w, r, http.StatusInternalServerError, env)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	if err := writeJSON(w, status, env); err != nil {
		h.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("failed to write JSON response")
	}
}
