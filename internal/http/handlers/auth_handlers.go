package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/sales-analytics/internal/auth"
	"github.com/rogerio-castellano/sales-analytics/internal/repo"
	"github.com/rogerio-castellano/sales-analytics/internal/version"
)

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} Envelope{data=HealthResult}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, HealthResult{Status: "ok", Version: version.Version}, "")
}

// Login godoc
// @Summary Exchange credentials for a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} Envelope{data=LoginResult}
// @Failure 400 {object} Envelope "Invalid input"
// @Failure 401 {object} Envelope "Invalid credentials"
// @Failure 500 {object} Envelope "Internal error"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		h.writeBadRequest(w, r, "invalid input")
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		h.writeBadRequest(w, r, "missing credentials")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), credentials.Username)
	if errors.Is(err, repo.ErrUserNotFound) {
		h.writeError(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.writeFailure(w, r, err, "could not look up user")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, credentials.Password) {
		h.writeError(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.issuer.GenerateToken(user)
	if err != nil {
		h.writeFailure(w, r, err, "could not generate token")
		return
	}

	h.writeSuccess(w, r, LoginResult{Token: token, ExpiresIn: int64(h.issuer.TTL().Seconds())}, "")
}
