package evapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
)

// fakeAuthority is a scriptable TokenAuthority for transport tests.
type fakeAuthority struct {
	token        atomic.Value
	refreshCalls atomic.Int64
	refreshFn    func(ctx context.Context) (string, error)
}

func newFakeAuthority(token string) *fakeAuthority {
	fa := &fakeAuthority{}
	fa.token.Store(token)
	return fa
}

func (fa *fakeAuthority) AccessToken() string {
	return fa.token.Load().(string)
}

func (fa *fakeAuthority) Refresh(ctx context.Context) (string, error) {
	fa.refreshCalls.Add(1)
	if fa.refreshFn != nil {
		return fa.refreshFn(ctx)
	}
	return "", apperrors.NoTokens()
}

func TestAuthTransport_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("access-1")
	client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

	resp, err := client.Get(srv.URL + "/Brands/GetBrands")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer access-1", gotAuth)
	assert.EqualValues(t, 0, auth.refreshCalls.Load())
}

func TestAuthTransport_RefreshesAndRetriesOn401(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"id":7}`, string(body), "retry must replay the body")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("access-1")
	auth.refreshFn = func(ctx context.Context) (string, error) {
		auth.token.Store("access-2")
		return "access-2", nil
	}
	client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/Inventory/ChangeStatus", strings.NewReader(`{"id":7}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, attempts.Load())
	assert.EqualValues(t, 1, auth.refreshCalls.Load())
}

func TestAuthTransport_Concurrent401sShareOneRefresh(t *testing.T) {
	const n = 8

	var firstAttempts sync.WaitGroup
	firstAttempts.Add(n)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			firstAttempts.Done()
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("access-1")
	auth.refreshFn = func(ctx context.Context) (string, error) {
		// Hold the flight open until every caller has seen its 401 and
		// joined, so the dedup is actually exercised.
		firstAttempts.Wait()
		time.Sleep(50 * time.Millisecond)
		auth.token.Store("access-2")
		return "access-2", nil
	}
	client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

	var wg sync.WaitGroup
	statuses := make([]int, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Get(srv.URL + "/Brands/GetBrands")
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.EqualValues(t, 1, auth.refreshCalls.Load(), "all 401s must join one refresh")
}

func TestAuthTransport_RefreshFailureFailsAllWaiters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("stale")
	auth.refreshFn = func(ctx context.Context) (string, error) {
		return "", apperrors.Unauthorized("refresh token rejected")
	}

	// Route through the typed client so the pre-classified error survives
	// the http.Client's url.Error wrapping.
	c := NewClient(Config{
		BaseURL:   srv.URL,
		Transport: NewAuthTransport(auth, nil, nil),
	})

	_, err := c.GetBrands(context.Background(), 1, 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthTransport_SessionAuthPathsBypassGate(t *testing.T) {
	for _, path := range []string{pathLogin, pathRefresh, pathLogout} {
		t.Run(path, func(t *testing.T) {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusUnauthorized)
			}))
			t.Cleanup(srv.Close)

			auth := newFakeAuthority("access-1")
			client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

			resp, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "session 401 is an answer, not a trigger")
			assert.Empty(t, gotAuth, "no bearer on session endpoints")
			assert.EqualValues(t, 0, auth.refreshCalls.Load())
		})
	}
}

func TestAuthTransport_UserAdminPathsStayGated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("access-1")
	client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

	resp, err := client.Get(srv.URL + "/UserAccounts/Update/5")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer access-1", gotAuth)
}

// readerOnly hides the concrete reader type so http.NewRequest cannot
// derive a GetBody for it.
type readerOnly struct{ io.Reader }

func TestAuthTransport_NonReplayableBodyReturns401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	auth := newFakeAuthority("stale")
	auth.refreshFn = func(ctx context.Context) (string, error) {
		t.Fatal("refresh must not run for a non-replayable request")
		return "", nil
	}
	client := &http.Client{Transport: NewAuthTransport(auth, nil, nil)}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/Inventory/CreateInventoryItem", readerOnly{strings.NewReader("{}")})
	require.NoError(t, err)
	require.Nil(t, req.GetBody)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.EqualValues(t, 0, auth.refreshCalls.Load())
}
