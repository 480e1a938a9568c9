// Package evapi is a thin typed client for the upstream EV catalog REST
// API: auth/session endpoints, brand directory, vehicle catalog, dealer
// inventory, and user administration. It performs no business logic of its
// own; every call maps 1:1 to an upstream endpoint.
package evapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds construction parameters for a Client.
type Config struct {
	// BaseURL is the upstream API root, e.g. "https://fleet.example.com/api".
	BaseURL string

	// Timeout applies per call. Defaults to 30s.
	Timeout time.Duration

	// Transport optionally replaces the underlying RoundTripper. The gated
	// catalog client passes an AuthTransport here; the auth client leaves
	// it nil.
	Transport http.RoundTripper

	Logger *slog.Logger
}

// Client is the shared HTTP plumbing for all upstream endpoint groups.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client for the given upstream API.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpc: &http.Client{
			Timeout:   timeout,
			Transport: cfg.Transport,
		},
		logger: logger,
	}
}

// newRequest builds an upstream request. A non-nil body is JSON-encoded;
// the bytes.Reader body keeps the request replayable for the auth
// transport's single retry.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// do executes the request and decodes a 2xx JSON body into dst (skipped
// when dst is nil). Non-2xx responses are classified into the application
// error taxonomy.
func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		// The auth transport can fail a call with an already-classified
		// error (e.g. a forced logout after a failed refresh); keep it.
		if apperrors.GetCode(err) != "" {
			return err
		}
		return apperrors.Network("call upstream API", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperrors.Network("read upstream response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(resp.StatusCode, data)
	}

	if dst == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeMalformedResponse, "decode upstream response")
	}
	return nil
}

// envelope is the `{data: ...}` wrapper some upstream endpoints use.
type envelope[T any] struct {
	Data T `json:"data"`
}
