// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mockauth/internal/service"
	"mockauth/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 15 * time.Second

// AuthHandler handles HTTP requests for the authentication flow.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *AuthHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError converts internal error kinds into client-visible HTTP
// responses. This is the only place that mapping happens; backend detail
// never leaks into the response body.
func (h *AuthHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrValidation):
		statusCode = http.StatusBadRequest
		message = "Username is required"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
}

// Login handles the login request. The flow always succeeds by
// construction once a valid username is supplied: no password check, no
// session, just identity resolution against the configured store.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.Login(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, user)
}
