// Package mocks holds generated mocks for the auth ports.
//
// Mocks are generated with go.uber.org/mock (gomock). To regenerate after
// interface changes, run:
//
//	go generate ./internal/mocks
//
// Hand-written doubles for the same ports live in internal/mocks/auth;
// prefer those for simple stubbing and the generated mocks when a test
// needs call-order expectations.
package mocks

// Generate mock for AuthAPI interface from internal/ports.
// This creates MockAuthAPI with Login, Refresh, and Logout.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/electromove/ev-admin-api/internal/ports AuthAPI

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with Read, Write, and Clear.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/electromove/ev-admin-api/internal/ports SessionStore
