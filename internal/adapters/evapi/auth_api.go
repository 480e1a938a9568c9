package evapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
	"github.com/electromove/ev-admin-api/internal/ports"
)

// Upstream auth endpoint paths.
const (
	pathLogin                = "/UserAccounts/Administration/Login"
	pathRegister             = "/UserAccounts/Administration/Register"
	pathRefresh              = "/UserAccounts/RefreshToken"
	pathLogout               = "/UserAccounts/Logout"
	pathPasswordReset        = "/UserAccounts/Administration/RequestPasswordReset"
	pathPasswordResetConfirm = "/UserAccounts/PasswordResetConfirmation"
	pathPasswordChange       = "/UserAccounts/PasswordChange"
	pathEmailConfirm         = "/UserAccounts/EmailConfirmation"
)

// AuthAPI talks to the upstream identity endpoints on an ungated client.
// Session endpoints must never pass through the auth transport: a 401 on
// login/refresh/logout is an answer, not a trigger for another refresh.
type AuthAPI struct {
	client *Client
}

var _ ports.AuthAPI = (*AuthAPI)(nil)

// NewAuthAPI creates the auth endpoint client. cfg.Transport is normally
// left nil here.
func NewAuthAPI(cfg Config) *AuthAPI {
	return &AuthAPI{client: NewClient(cfg)}
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair, classifying every failure
// shape the upstream is known to produce: success=false with list- or
// map-shaped errors, a bare 401, or a free-form server message.
func (a *AuthAPI) Login(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathLogin, nil, loginRequest{
		UserName: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		return ports.TokenPair{}, err
	}

	env, status, err := a.doAuth(req)
	if err != nil {
		return ports.TokenPair{}, err
	}

	if status >= http.StatusBadRequest {
		return ports.TokenPair{}, classifyLoginFailure(status, env)
	}
	if env.failed() {
		return ports.TokenPair{}, apperrors.InvalidCredentials(env.Errors.Join())
	}
	if env.Token == "" || env.RefreshToken == "" {
		return ports.TokenPair{}, apperrors.MalformedResponse("login response missing tokens")
	}

	return ports.TokenPair{Token: env.Token, RefreshToken: env.RefreshToken}, nil
}

// Refresh exchanges the current pair for a fresh one.
func (a *AuthAPI) Refresh(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathRefresh, nil, tokenRequest{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return ports.TokenPair{}, err
	}

	env, status, err := a.doAuth(req)
	if err != nil {
		return ports.TokenPair{}, err
	}

	if status >= http.StatusBadRequest {
		if status == http.StatusUnauthorized {
			return ports.TokenPair{}, apperrors.Unauthorized("refresh token rejected")
		}
		if msg := env.serverMessage(); msg != "" {
			return ports.TokenPair{}, apperrors.Internal(msg)
		}
		return ports.TokenPair{}, apperrors.Internalf("refresh returned status %d", status)
	}
	if env.Token == "" || env.RefreshToken == "" {
		return ports.TokenPair{}, apperrors.MalformedResponse("refresh response missing tokens")
	}

	return ports.TokenPair{Token: env.Token, RefreshToken: env.RefreshToken}, nil
}

// Logout invalidates the pair upstream. Callers treat this as best effort.
func (a *AuthAPI) Logout(ctx context.Context, pair ports.TokenPair) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathLogout, nil, tokenRequest{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return err
	}

	_, status, err := a.doAuth(req)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return apperrors.Internalf("logout returned status %d", status)
	}
	return nil
}

// RegisterRequest creates a new administrative user upstream.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
}

// Register creates a new admin user (requires an Administrator session).
func (a *AuthAPI) Register(ctx context.Context, reg RegisterRequest) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathRegister, nil, reg)
	if err != nil {
		return err
	}
	return a.client.do(req, nil)
}

// RequestPasswordReset asks the upstream to send a password reset email.
func (a *AuthAPI) RequestPasswordReset(ctx context.Context, emailAddress string) error {
	q := url.Values{}
	q.Set("emailAddress", emailAddress)
	req, err := a.client.newRequest(ctx, http.MethodGet, pathPasswordReset, q, nil)
	if err != nil {
		return err
	}
	return a.client.do(req, nil)
}

// PasswordResetConfirmation completes a password reset with the emailed token.
type PasswordResetConfirmation struct {
	Token           string `json:"token"`
	Email           string `json:"email"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ConfirmPasswordReset completes a password reset.
func (a *AuthAPI) ConfirmPasswordReset(ctx context.Context, conf PasswordResetConfirmation) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathPasswordResetConfirm, nil, conf)
	if err != nil {
		return err
	}
	return a.client.do(req, nil)
}

// PasswordChange updates the password of the authenticated user.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePassword changes the password for the session holding accessToken.
// The auth client is ungated, so the bearer header is attached explicitly.
func (a *AuthAPI) ChangePassword(ctx context.Context, accessToken string, change PasswordChange) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, pathPasswordChange, nil, change)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return a.client.do(req, nil)
}

// ConfirmEmail confirms a user's email address with the emailed token.
func (a *AuthAPI) ConfirmEmail(ctx context.Context, userID, confirmationToken string) error {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("confirmationToken", confirmationToken)
	req, err := a.client.newRequest(ctx, http.MethodGet, pathEmailConfirm, q, nil)
	if err != nil {
		return err
	}
	return a.client.do(req, nil)
}

// doAuth executes an auth endpoint call and parses the shared envelope
// regardless of status, so classification can look at the body of error
// responses too.
func (a *AuthAPI) doAuth(req *http.Request) (*authEnvelope, int, error) {
	resp, err := a.client.httpc.Do(req)
	if err != nil {
		return nil, 0, apperrors.Network("call upstream auth API", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, apperrors.Network("read upstream auth response", err)
	}

	env := &authEnvelope{}
	_ = json.Unmarshal(data, env)
	return env, resp.StatusCode, nil
}

// classifyLoginFailure turns an HTTP-level login failure into the most
// specific user-facing error available: structured field errors first,
// then 401, then the server's message, else the generic fallback.
func classifyLoginFailure(status int, env *authEnvelope) error {
	if !env.Errors.IsEmpty() {
		return apperrors.InvalidCredentials(env.Errors.Join())
	}
	if status == http.StatusUnauthorized {
		return apperrors.InvalidCredentials("")
	}
	if msg := env.serverMessage(); msg != "" {
		return apperrors.InvalidCredentials(msg)
	}
	return apperrors.InvalidCredentials("")
}
