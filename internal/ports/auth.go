package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
)

// Credentials carries a login attempt against the upstream API.
type Credentials struct {
	Username string
	Password string
}

// TokenPair is an access token and the refresh token issued alongside it.
// The pair is replaced wholesale; the two are never updated independently.
type TokenPair struct {
	Token        string
	RefreshToken string
}

// AuthAPI talks to the upstream identity endpoints. Implementations must
// classify upstream failures into the internal/errors taxonomy.
type AuthAPI interface {
	// Login exchanges credentials for a token pair. The pair is guaranteed
	// complete on success (a response missing either token is an error).
	Login(ctx context.Context, creds Credentials) (TokenPair, error)

	// Refresh exchanges the current pair for a fresh one. The returned pair
	// is guaranteed complete on success.
	Refresh(ctx context.Context, pair TokenPair) (TokenPair, error)

	// Logout invalidates the pair upstream. Best effort; callers are
	// expected to proceed with local cleanup regardless of the result.
	Logout(ctx context.Context, pair TokenPair) error
}

// StoredSession is the persisted shape of the session: three independently
// optional fields. A corrupt user record reads back as absent.
type StoredSession struct {
	Token        string
	RefreshToken string
	User         *domainauth.SessionUser
}

// SessionStore persists the session triple under fixed keys. It is a dumb
// persistence delegate: no expiry or refresh logic belongs here, so that
// implementations stay trivially swappable (e.g. in-memory for tests).
type SessionStore interface {
	Read(ctx context.Context) (StoredSession, error)
	Write(ctx context.Context, sess StoredSession) error
	Clear(ctx context.Context) error
}
