// Package service orchestrates the auth session lifecycle over the ports.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
	"github.com/electromove/ev-admin-api/internal/domain/token"
	apperrors "github.com/electromove/ev-admin-api/internal/errors"
	"github.com/electromove/ev-admin-api/internal/ports"
)

// ManagerOptions groups dependencies for Manager.
//
// API and Store are required; Logger is optional.
type ManagerOptions struct {
	API    ports.AuthAPI
	Store  ports.SessionStore
	Logger *slog.Logger
}

// Manager is the sole owner of the process-wide auth session. All reads
// and writes of the in-memory session go through it; the store only ever
// sees what the Manager writes. Invariant: the session is authenticated
// exactly when both an access token and a user projection are present.
//
// The mutex guards the in-memory session only. Upstream calls are made
// outside the lock; the request gate's refresh dedup keeps concurrent
// refreshes from stacking up.
type Manager struct {
	api    ports.AuthAPI
	store  ports.SessionStore
	logger *slog.Logger

	mu      sync.RWMutex
	session domainauth.Session
}

// NewManager constructs a Manager. It performs no I/O; call Bootstrap to
// restore a persisted session.
func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.API == nil {
		return nil, errors.New("AuthAPI is required")
	}
	if opts.Store == nil {
		return nil, errors.New("SessionStore is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		api:    opts.API,
		store:  opts.Store,
		logger: logger,
	}, nil
}

// MustNewManager constructs a Manager and panics on error.
func MustNewManager(opts ManagerOptions) *Manager {
	m, err := NewManager(opts)
	if err != nil {
		panic(err)
	}
	return m
}

// Bootstrap restores the session from the store at startup. It never
// returns an error: a usable stored token is adopted directly with no
// upstream call, a stored refresh token is tried once, and on any failure
// the store is cleared and the process starts signed out.
func (m *Manager) Bootstrap(ctx context.Context) {
	stored, err := m.store.Read(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "session bootstrap: store read failed, starting signed out", "error", err)
		m.clearLocal(ctx)
		return
	}

	// The fast path needs both halves of the session: a usable token and
	// the stored user projection. A token alone falls through to refresh.
	if stored.Token != "" && stored.User != nil && !token.IsExpired(stored.Token) {
		m.adopt(ports.TokenPair{Token: stored.Token, RefreshToken: stored.RefreshToken}, stored.User)
		m.logger.InfoContext(ctx, "session restored from store", "user", stored.User.Name)
		return
	}

	if stored.RefreshToken != "" {
		m.setTokens(ports.TokenPair{Token: stored.Token, RefreshToken: stored.RefreshToken})
		if _, err := m.Refresh(ctx); err != nil {
			// Refresh already forced the logout, whatever the failure.
			m.logger.InfoContext(ctx, "session bootstrap: refresh failed, starting signed out", "error", err)
			return
		}
		m.logger.InfoContext(ctx, "session restored via refresh")
		return
	}

	m.clearLocal(ctx)
}

// Login authenticates against the upstream API, persists the session, and
// returns the user projection.
func (m *Manager) Login(ctx context.Context, username, password string) (*domainauth.SessionUser, error) {
	pair, err := m.api.Login(ctx, ports.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	user, err := token.ExtractUser(pair.Token)
	if err != nil {
		// The upstream accepted the credentials but issued a token we
		// cannot use; treat it the same as a response missing tokens.
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedResponse, "login returned an unusable token")
	}

	if err := m.store.Write(ctx, ports.StoredSession{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}); err != nil {
		// The in-memory session is still valid; only restart recovery
		// is degraded.
		m.logger.WarnContext(ctx, "persist session after login failed", "error", err)
	}

	m.adopt(pair, user)
	m.logger.InfoContext(ctx, "user logged in", "user", user.Name)
	return user, nil
}

// Logout signs the session out. The upstream invalidation is best effort;
// local state is always cleared, so Logout never fails.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.RLock()
	pair := ports.TokenPair{Token: m.session.Token, RefreshToken: m.session.RefreshToken}
	m.mu.RUnlock()

	defer m.clearLocal(ctx)

	if pair.Token == "" && pair.RefreshToken == "" {
		return
	}
	if err := m.api.Logout(ctx, pair); err != nil {
		m.logger.WarnContext(ctx, "upstream logout failed, clearing local session anyway", "error", err)
	}
}

// Refresh exchanges the current token pair for a fresh one and returns the
// new access token. Tokens come from memory, falling back to the store.
// Any failure forces a full logout before the error propagates, so a
// caller seeing an error can assume the session is gone.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	m.mu.RLock()
	pair := ports.TokenPair{Token: m.session.Token, RefreshToken: m.session.RefreshToken}
	m.mu.RUnlock()

	if pair.Token == "" || pair.RefreshToken == "" {
		stored, err := m.store.Read(ctx)
		if err == nil {
			pair = ports.TokenPair{Token: stored.Token, RefreshToken: stored.RefreshToken}
		}
	}
	if pair.Token == "" || pair.RefreshToken == "" {
		// An incomplete pair ends the session just like a rejected one.
		m.Logout(ctx)
		return "", apperrors.NoTokens()
	}

	fresh, err := m.api.Refresh(ctx, pair)
	if err != nil {
		m.logger.WarnContext(ctx, "token refresh failed, signing out", "error", err)
		m.Logout(ctx)
		return "", err
	}

	m.mu.Lock()
	m.session.Token = fresh.Token
	m.session.RefreshToken = fresh.RefreshToken
	if m.session.User == nil {
		if user, err := token.ExtractUser(fresh.Token); err == nil {
			m.session.User = user
		}
	}
	user := m.session.User
	m.mu.Unlock()

	if err := m.store.Write(ctx, ports.StoredSession{
		Token:        fresh.Token,
		RefreshToken: fresh.RefreshToken,
		User:         user,
	}); err != nil {
		m.logger.WarnContext(ctx, "persist session after refresh failed", "error", err)
	}

	return fresh.Token, nil
}

// UpdateUser replaces the user projection in memory and store without
// touching the tokens.
func (m *Manager) UpdateUser(ctx context.Context, user *domainauth.SessionUser) error {
	m.mu.Lock()
	m.session.User = user
	sess := m.session
	m.mu.Unlock()

	return m.store.Write(ctx, ports.StoredSession{
		Token:        sess.Token,
		RefreshToken: sess.RefreshToken,
		User:         user,
	})
}

// AccessToken returns the current access token, or "" when signed out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// CurrentUser returns the current user projection, or nil when signed out.
func (m *Manager) CurrentUser() *domainauth.SessionUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.User
}

// IsAuthenticated reports whether a usable session is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Authenticated()
}

// Snapshot returns a copy of the current session.
func (m *Manager) Snapshot() domainauth.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := m.session
	if sess.User != nil {
		user := *sess.User
		sess.User = &user
	}
	return sess
}

// adopt installs a token pair and user as the current session.
func (m *Manager) adopt(pair ports.TokenPair, user *domainauth.SessionUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domainauth.Session{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}
}

// setTokens installs a token pair without a user (transient state while
// bootstrapping via refresh).
func (m *Manager) setTokens(pair ports.TokenPair) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domainauth.Session{Token: pair.Token, RefreshToken: pair.RefreshToken}
}

// clearLocal empties the in-memory session and the store.
func (m *Manager) clearLocal(ctx context.Context) {
	m.mu.Lock()
	m.session = domainauth.Session{}
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.WarnContext(ctx, "clear session store failed", "error", err)
	}
}
