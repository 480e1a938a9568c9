package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
	"github.com/electromove/ev-admin-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI      = (*MockAuthAPI)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
)

// MockAuthAPI simulates the upstream identity endpoints. Each operation
// delegates to its Func field when set; otherwise logins and refreshes
// fail with invalid credentials and logouts succeed. Call counts are
// tracked for asserting how often the upstream was hit.
type MockAuthAPI struct {
	LoginFunc   func(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error)
	RefreshFunc func(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error)
	LogoutFunc  func(ctx context.Context, pair ports.TokenPair) error

	mu           sync.Mutex
	loginCalls   int
	refreshCalls int
	logoutCalls  int
}

func (m *MockAuthAPI) Login(ctx context.Context, creds ports.Credentials) (ports.TokenPair, error) {
	m.mu.Lock()
	m.loginCalls++
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return ports.TokenPair{}, apperrors.InvalidCredentials("")
}

func (m *MockAuthAPI) Refresh(ctx context.Context, pair ports.TokenPair) (ports.TokenPair, error) {
	m.mu.Lock()
	m.refreshCalls++
	m.mu.Unlock()

	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, pair)
	}
	return ports.TokenPair{}, apperrors.Unauthorized("refresh token rejected")
}

func (m *MockAuthAPI) Logout(ctx context.Context, pair ports.TokenPair) error {
	m.mu.Lock()
	m.logoutCalls++
	m.mu.Unlock()

	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, pair)
	}
	return nil
}

// LoginCalls returns how many times Login was invoked.
func (m *MockAuthAPI) LoginCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

// RefreshCalls returns how many times Refresh was invoked.
func (m *MockAuthAPI) RefreshCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCalls
}

// LogoutCalls returns how many times Logout was invoked.
func (m *MockAuthAPI) LogoutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutCalls
}

// TotalCalls returns the total number of upstream calls of any kind.
func (m *MockAuthAPI) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls + m.refreshCalls + m.logoutCalls
}

// MemorySessionStore is an in-memory ports.SessionStore. The zero value
// is ready to use. ReadErr and WriteErr force the corresponding
// operations to fail for error-path tests.
type MemorySessionStore struct {
	mu      sync.Mutex
	session ports.StoredSession
	present bool

	ReadErr  error
	WriteErr error
	ClearErr error
}

func (s *MemorySessionStore) Read(ctx context.Context) (ports.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return ports.StoredSession{}, s.ReadErr
	}
	if !s.present {
		return ports.StoredSession{}, nil
	}
	return s.session, nil
}

func (s *MemorySessionStore) Write(ctx context.Context, sess ports.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.session = sess
	s.present = true
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.session = ports.StoredSession{}
	s.present = false
	return nil
}

// Seed installs a stored session directly, bypassing Write error hooks.
func (s *MemorySessionStore) Seed(sess ports.StoredSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.present = true
}

// Stored returns the current stored session and whether anything is stored.
func (s *MemorySessionStore) Stored() (ports.StoredSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.present
}
