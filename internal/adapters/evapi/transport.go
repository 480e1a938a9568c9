package evapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"
)

// TokenAuthority is what the transport needs from the session manager:
// the current access token, and a refresh that either yields a new token
// or tears the session down.
type TokenAuthority interface {
	AccessToken() string
	Refresh(ctx context.Context) (string, error)
}

// AuthTransport keeps outbound catalog calls authorized. It attaches the
// current bearer token to every request and, on a 401, performs one
// coordinated refresh and retries the request once with the new token.
//
// The refresh is deduplicated with a singleflight group owned by this
// instance: at most one refresh is in flight process-wide, every 401 that
// arrives during that window blocks on the same flight, and all of them
// observe the same outcome, the same new token or the same failure. One
// AuthTransport is constructed per process and injected wherever a gated
// client is built.
type AuthTransport struct {
	base    http.RoundTripper
	auth    TokenAuthority
	logger  *slog.Logger
	refresh singleflight.Group
}

// NewAuthTransport wraps base (http.DefaultTransport when nil) with the
// token gate.
func NewAuthTransport(auth TokenAuthority, base http.RoundTripper, logger *slog.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthTransport{
		base:   base,
		auth:   auth,
		logger: logger,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// A 401 from the session endpoints is an answer, never a refresh
	// trigger; pass those through untouched.
	if isSessionAuthPath(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	first := req.Clone(req.Context())
	if token := t.auth.AccessToken(); token != "" {
		first.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(first)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// A consumed, non-replayable body cannot be retried; surface the 401.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	newToken, refreshErr := t.refreshToken(req.Context())
	if refreshErr != nil {
		// The manager has already forced a local logout; every waiter
		// rejects with the same failure.
		drainAndClose(resp)
		t.logger.WarnContext(req.Context(), "token refresh after 401 failed",
			"path", req.URL.Path, "error", refreshErr)
		return nil, refreshErr
	}

	drainAndClose(resp)

	retry, cloneErr := cloneForRetry(req, newToken)
	if cloneErr != nil {
		return nil, cloneErr
	}
	return t.base.RoundTrip(retry)
}

// refreshToken joins the shared in-flight refresh, starting one if none is
// running.
func (t *AuthTransport) refreshToken(ctx context.Context) (string, error) {
	v, err, _ := t.refresh.Do("refresh", func() (any, error) {
		return t.auth.Refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// cloneForRetry rebuilds the request with a fresh body and the new token.
func cloneForRetry(req *http.Request, token string) (*http.Request, error) {
	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)
	return retry, nil
}

// isSessionAuthPath matches the three session endpoints the gate must
// never intercept. Other /UserAccounts/ routes (user administration) stay
// gated.
func isSessionAuthPath(path string) bool {
	for _, p := range []string{pathLogin, pathRefresh, pathLogout} {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// drainAndClose discards the remainder of a response body so the
// underlying connection can be reused.
func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
