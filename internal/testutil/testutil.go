// Package testutil provides shared helpers for tests: a Redis harness that
// skips when no server is reachable, and token minting for codec and
// session tests.
package testutil

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Cleanup(func())
}

// TestRedisConfig holds configuration for the test Redis instance.
type TestRedisConfig struct {
	Addr string
	DB   int
}

// DefaultTestRedisConfig returns the test Redis configuration.
// Defaults to localhost:6379 DB 15; override with TEST_REDIS_ADDR and
// TEST_REDIS_DB for CI environments.
func DefaultTestRedisConfig() TestRedisConfig {
	db := 15
	if raw := os.Getenv("TEST_REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}
	return TestRedisConfig{
		Addr: getEnvOrDefault("TEST_REDIS_ADDR", "localhost:6379"),
		DB:   db,
	}
}

// SkipIfNoTestRedis skips the test if the test Redis instance is not reachable.
func SkipIfNoTestRedis(t TestingTB) {
	t.Helper()

	cfg := DefaultTestRedisConfig()
	conn, err := net.DialTimeout("tcp", cfg.Addr, 2*time.Second)
	if err != nil {
		t.Skipf("test Redis not available at %s: %v", cfg.Addr, err)
		return
	}
	_ = conn.Close()
}

// SetupTestRedis creates a Redis client for testing and registers cleanup
// that flushes the test database. Tests are skipped if Redis is unavailable.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()
	SkipIfNoTestRedis(t)

	cfg := DefaultTestRedisConfig()
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping test Redis: %v", err)
	}

	t.Cleanup(func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := client.FlushDB(flushCtx).Err(); err != nil {
			t.Logf("flush test Redis DB: %v", err)
		}
		_ = client.Close()
	})

	return client
}

// MintToken signs an HS256 token with the given claims. The signature is
// never verified by the code under test; the secret only has to be stable.
func MintToken(t TestingTB, claims map[string]any) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims)).
		SignedString([]byte("testutil-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return raw
}

// MintUserToken mints a token carrying the standard upstream user claims
// with the given expiry.
func MintUserToken(t TestingTB, id, email, name string, roles []string, exp time.Time) string {
	t.Helper()

	claims := map[string]any{
		"nameid": id,
		"email":  email,
		"exp":    exp.Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	switch len(roles) {
	case 0:
	case 1:
		claims["role"] = roles[0]
	default:
		claims["role"] = roles
	}
	return MintToken(t, claims)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
