package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
	apperrors "github.com/electromove/ev-admin-api/internal/errors"
)

// AuthManagerInterface defines what the handlers need from the session
// manager.
type AuthManagerInterface interface {
	Login(ctx context.Context, username, password string) (*domainauth.SessionUser, error)
	Logout(ctx context.Context)
	Refresh(ctx context.Context) (string, error)
	CurrentUser() *domainauth.SessionUser
	IsAuthenticated() bool
}

// AuthHandlers provides HTTP handlers for session operations.
type AuthHandlers struct {
	Auth   AuthManagerInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	User *domainauth.SessionUser `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}
	if payload.Username == "" || payload.Password == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("username and password are required"),
		})
		return
	}

	user, err := h.Auth.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if !apperrors.IsInvalidCredentials(err) {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, userResponse{User: user})
}

// Logout handles POST /api/auth/logout. Always succeeds.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Refresh handles POST /api/auth/refresh. A failed refresh has already
// torn the session down, so the error response doubles as the signed-out
// signal.
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	token, err := h.Auth.Refresh(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Me handles GET /api/auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	if !h.Auth.IsAuthenticated() {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "session_expired",
			Err:     errors.New("no active session"),
		})
		return
	}
	WriteJSON(w, http.StatusOK, userResponse{User: h.Auth.CurrentUser()})
}
