package redis

// Package redis provides Redis-based adapters for the ev-admin gateway.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
	"github.com/electromove/ev-admin-api/internal/ports"
)

// Key suffixes for the three persisted session fields. Absence of a key
// means "never logged in"; there is no versioning or migration scheme.
const (
	keyToken        = "token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// SessionStore is a Redis-based session store for production use. It
// persists exactly three string values under a fixed key prefix and holds
// no expiry or refresh logic of its own.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithPrefix(client, "auth:")
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) key(suffix string) string {
	return s.prefix + suffix
}

// Read returns the persisted session. Each field is independently
// optional; a corrupt user record is treated as absent, never an error.
func (s *SessionStore) Read(ctx context.Context) (ports.StoredSession, error) {
	vals, err := s.client.MGet(ctx, s.key(keyToken), s.key(keyRefreshToken), s.key(keyUser)).Result()
	if err != nil {
		return ports.StoredSession{}, fmt.Errorf("redis mget session: %w", err)
	}

	sess := ports.StoredSession{
		Token:        asString(vals[0]),
		RefreshToken: asString(vals[1]),
	}

	if raw := asString(vals[2]); raw != "" {
		var user domainauth.SessionUser
		if unmarshalErr := json.Unmarshal([]byte(raw), &user); unmarshalErr == nil {
			sess.User = &user
		}
	}

	return sess, nil
}

// Write overwrites all three keys in a single transactional pipeline.
func (s *SessionStore) Write(ctx context.Context, sess ports.StoredSession) error {
	userJSON := ""
	if sess.User != nil {
		data, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("marshal session user: %w", err)
		}
		userJSON = string(data)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(keyToken), sess.Token, 0)
	pipe.Set(ctx, s.key(keyRefreshToken), sess.RefreshToken, 0)
	pipe.Set(ctx, s.key(keyUser), userJSON, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis write session: %w", err)
	}
	return nil
}

// Clear removes all three keys.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(keyToken), s.key(keyRefreshToken), s.key(keyUser)).Err(); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	return nil
}

// asString converts an MGET result entry; missing keys come back nil.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
