package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
	apperrors "github.com/electromove/ev-admin-api/internal/errors"
	"github.com/electromove/ev-admin-api/internal/mocks"
	mockauth "github.com/electromove/ev-admin-api/internal/mocks/auth"
	"github.com/electromove/ev-admin-api/internal/ports"
	"github.com/electromove/ev-admin-api/internal/testutil"
)

func newTestManager(t *testing.T, api ports.AuthAPI, store ports.SessionStore) *Manager {
	t.Helper()
	m, err := NewManager(ManagerOptions{API: api, Store: store})
	require.NoError(t, err)
	return m
}

func validToken(t *testing.T) string {
	t.Helper()
	return testutil.MintUserToken(t, "42", "ana@example.com", "Ana Torres",
		[]string{domainauth.RoleAdministrator}, time.Now().Add(time.Hour))
}

func expiredToken(t *testing.T) string {
	t.Helper()
	return testutil.MintUserToken(t, "42", "ana@example.com", "Ana Torres",
		[]string{domainauth.RoleAdministrator}, time.Now().Add(-time.Hour))
}

func TestNewManager_RequiredDependencies(t *testing.T) {
	_, err := NewManager(ManagerOptions{Store: &mockauth.MemorySessionStore{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthAPI is required")

	_, err = NewManager(ManagerOptions{API: &mockauth.MockAuthAPI{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SessionStore is required")
}

func TestNewManager_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, err := NewManager(ManagerOptions{
		API:   mocks.NewMockAuthAPI(ctrl),
		Store: mocks.NewMockSessionStore(ctrl),
	})
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.False(t, m.IsAuthenticated())
}

func TestLogin_Success(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			assert.Equal(t, "ana@example.com", creds.Username)
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	user, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "Ana Torres", user.Name)
	assert.True(t, user.HasRole(domainauth.RoleAdministrator))

	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, raw, m.AccessToken())

	stored, ok := store.Stored()
	require.True(t, ok)
	assert.Equal(t, raw, stored.Token)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
	require.NotNil(t, stored.User)
	assert.Equal(t, "Ana Torres", stored.User.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	api := &mockauth.MockAuthAPI{} // default: invalid credentials
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	_, err := m.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentials(err))

	assert.False(t, m.IsAuthenticated())
	_, ok := store.Stored()
	assert.False(t, ok, "failed login must not persist anything")
}

func TestLogin_UnusableTokenIsMalformed(t *testing.T) {
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: "not-a-jwt", RefreshToken: "refresh-1"}, nil
		},
	}
	m := newTestManager(t, api, &mockauth.MemorySessionStore{})

	_, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedResponse(err))
	assert.False(t, m.IsAuthenticated())
}

func TestLogin_StoreWriteFailureKeepsSession(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{WriteErr: assert.AnError}
	m := newTestManager(t, api, store)

	user, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err, "persistence failure must not fail the login")
	assert.NotNil(t, user)
	assert.True(t, m.IsAuthenticated())
}

func TestBootstrap_RoundTripAfterLogin(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}

	first := newTestManager(t, api, store)
	loggedIn, err := first.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)
	callsAfterLogin := api.TotalCalls()

	// A new process over the same store restores the identical user
	// without touching the upstream.
	second := newTestManager(t, api, store)
	second.Bootstrap(context.Background())

	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, raw, second.AccessToken())
	assert.Equal(t, loggedIn, second.CurrentUser())
	assert.Equal(t, callsAfterLogin, api.TotalCalls(), "fast-path bootstrap makes no upstream calls")
}

func TestBootstrap_EmptyStore(t *testing.T) {
	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, &mockauth.MemorySessionStore{})

	m.Bootstrap(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Zero(t, api.TotalCalls())
}

func TestBootstrap_ExpiredTokenRefreshes(t *testing.T) {
	stale := expiredToken(t)
	fresh := validToken(t)
	api := &mockauth.MockAuthAPI{
		RefreshFunc: func(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
			assert.Equal(t, stale, pair.Token)
			assert.Equal(t, "refresh-1", pair.RefreshToken)
			return ports.TokenPair{Token: fresh, RefreshToken: "refresh-2"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{Token: stale, RefreshToken: "refresh-1"})

	m := newTestManager(t, api, store)
	m.Bootstrap(context.Background())

	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, fresh, m.AccessToken())
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, "Ana Torres", m.CurrentUser().Name)

	stored, ok := store.Stored()
	require.True(t, ok)
	assert.Equal(t, fresh, stored.Token)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
}

func TestBootstrap_RefreshFailureStartsSignedOut(t *testing.T) {
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{Token: expiredToken(t), RefreshToken: "refresh-1"})

	api := &mockauth.MockAuthAPI{} // default: refresh rejected
	m := newTestManager(t, api, store)
	m.Bootstrap(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.AccessToken())
	_, ok := store.Stored()
	assert.False(t, ok, "rejected refresh must leave the store cleared")
}

func TestBootstrap_MissingStoredUserStartsSignedOut(t *testing.T) {
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{Token: validToken(t)})

	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, store)
	m.Bootstrap(context.Background())

	assert.False(t, m.IsAuthenticated(), "a token without a stored user is not a session")
	assert.Empty(t, m.AccessToken())
	assert.Zero(t, api.TotalCalls())
	_, ok := store.Stored()
	assert.False(t, ok)
}

func TestBootstrap_RefreshTokenOnlyStartsSignedOut(t *testing.T) {
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{RefreshToken: "r-only"})

	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, store)
	m.Bootstrap(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Zero(t, api.RefreshCalls(), "half a pair is never sent upstream")

	snap := m.Snapshot()
	assert.Empty(t, snap.RefreshToken, "no tokens may linger in memory")
	_, ok := store.Stored()
	assert.False(t, ok, "the store must be cleared too")
}

func TestBootstrap_StoreReadFailureStartsSignedOut(t *testing.T) {
	store := &mockauth.MemorySessionStore{ReadErr: assert.AnError}
	m := newTestManager(t, &mockauth.MockAuthAPI{}, store)

	m.Bootstrap(context.Background())
	assert.False(t, m.IsAuthenticated())
}

func TestRefresh_NoTokens(t *testing.T) {
	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, &mockauth.MemorySessionStore{})

	_, err := m.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNoTokens(err))
	assert.Zero(t, api.RefreshCalls(), "nothing to refresh means no upstream call")
}

func TestRefresh_IncompletePairClearsSession(t *testing.T) {
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{Token: validToken(t)}) // no refresh token

	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, store)

	_, err := m.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNoTokens(err))
	assert.Zero(t, api.RefreshCalls())

	assert.False(t, m.IsAuthenticated())
	_, ok := store.Stored()
	assert.False(t, ok, "an unusable pair must not survive the failed refresh")
}

func TestRefresh_UpdatesTokensKeepsUser(t *testing.T) {
	raw := validToken(t)
	fresh := testutil.MintUserToken(t, "42", "ana@example.com", "Ana Torres",
		[]string{domainauth.RoleAdministrator}, time.Now().Add(2*time.Hour))

	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
		RefreshFunc: func(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
			return ports.TokenPair{Token: fresh, RefreshToken: "refresh-2"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	user, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)

	got, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, fresh, m.AccessToken())
	assert.Same(t, user, m.CurrentUser(), "refresh replaces tokens, not the user")

	stored, ok := store.Stored()
	require.True(t, ok)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
}

func TestRefresh_FallsBackToStore(t *testing.T) {
	stale := expiredToken(t)
	fresh := validToken(t)
	api := &mockauth.MockAuthAPI{
		RefreshFunc: func(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
			return ports.TokenPair{Token: fresh, RefreshToken: "refresh-2"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}
	store.Seed(ports.StoredSession{Token: stale, RefreshToken: "refresh-1"})

	// Fresh manager with an empty in-memory session.
	m := newTestManager(t, api, store)

	got, err := m.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestRefresh_FailureForcesLogout(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
		RefreshFunc: func(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
			return ports.TokenPair{}, apperrors.Unauthorized("refresh token rejected")
		},
	}
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	_, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)

	_, err = m.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.AccessToken())
	_, ok := store.Stored()
	assert.False(t, ok)
	assert.Equal(t, 1, api.LogoutCalls(), "failed refresh signs out upstream too")
}

func TestLogout_ClearsLocalEvenWhenUpstreamFails(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
		LogoutFunc: func(ctx context.Context, pair ports.TokenPair) error {
			return apperrors.Network("call upstream auth API", assert.AnError)
		},
	}
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	_, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)

	m.Logout(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.AccessToken())
	_, ok := store.Stored()
	assert.False(t, ok)
}

func TestLogout_SignedOutSkipsUpstream(t *testing.T) {
	api := &mockauth.MockAuthAPI{}
	m := newTestManager(t, api, &mockauth.MemorySessionStore{})

	m.Logout(context.Background())
	assert.Zero(t, api.LogoutCalls())
}

func TestUpdateUser_PersistsWithoutTouchingTokens(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
	}
	store := &mockauth.MemorySessionStore{}
	m := newTestManager(t, api, store)

	_, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)

	renamed := &domainauth.SessionUser{
		ID:    "42",
		Email: "ana@example.com",
		Name:  "Ana T.",
		Roles: []string{domainauth.RoleAdministrator},
	}
	require.NoError(t, m.UpdateUser(context.Background(), renamed))

	assert.Equal(t, raw, m.AccessToken())
	assert.Equal(t, "Ana T.", m.CurrentUser().Name)

	stored, ok := store.Stored()
	require.True(t, ok)
	assert.Equal(t, raw, stored.Token)
	assert.Equal(t, "Ana T.", stored.User.Name)
}

func TestSnapshot_CopiesUser(t *testing.T) {
	raw := validToken(t)
	api := &mockauth.MockAuthAPI{
		LoginFunc: func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
			return ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil
		},
	}
	m := newTestManager(t, api, &mockauth.MemorySessionStore{})

	_, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)

	snap := m.Snapshot()
	require.NotNil(t, snap.User)
	snap.User.Name = "mutated"
	assert.Equal(t, "Ana Torres", m.CurrentUser().Name, "snapshot must not alias internal state")
}

func TestManager_GomockWiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw := validToken(t)
	api := mocks.NewMockAuthAPI(ctrl)
	store := mocks.NewMockSessionStore(ctrl)

	api.EXPECT().Login(gomock.Any(), ports.Credentials{Username: "ana@example.com", Password: "hunter2"}).
		Return(ports.TokenPair{Token: raw, RefreshToken: "refresh-1"}, nil)
	store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

	m, err := NewManager(ManagerOptions{API: api, Store: store})
	require.NoError(t, err)

	user, err := m.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
}
