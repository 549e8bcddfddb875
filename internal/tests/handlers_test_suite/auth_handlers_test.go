package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/sales-analytics/internal/http/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := get(router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected X-Request-ID header")
	}

	var result handler.HealthResult
	if _, err := decodeEnvelope(w, &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != "ok" {
		t.Errorf("expected status ok, got %q", result.Status)
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		expectCode int
	}{
		{"valid credentials", `{"username":"admin","password":"secret"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"secret"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
		{"malformed JSON", `{username: "admin"`, http.StatusBadRequest},
		{"two JSON values", `{"username":"admin","password":"secret"}{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Fatalf("expected status %d, got %d", tt.expectCode, w.Code)
			}

			var result handler.LoginResult
			env, err := decodeEnvelope(w, &result)
			if err != nil {
				t.Fatal(err)
			}
			if tt.expectCode == http.StatusOK {
				if result.Token == "" {
					t.Errorf("expected a token")
				}
				if result.ExpiresIn != 900 {
					t.Errorf("expected expiresIn 900, got %d", result.ExpiresIn)
				}
				return
			}
			if env.Success || env.Error == "" {
				t.Errorf("expected failure envelope, got %+v", env)
			}
		})
	}
}

func TestResponsesAreJSONEnvelopes(t *testing.T) {
	w := get(router, "/api/returns/metrics")

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	for _, field := range []string{"success", "timestamp"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected field %q in envelope", field)
		}
	}
}
