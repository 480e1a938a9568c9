package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/electromove/ev-admin-api/config"
	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
	redisadapter "github.com/electromove/ev-admin-api/internal/adapters/redis"
	"github.com/electromove/ev-admin-api/internal/service"
)

// AuthStackConfig contains dependencies for the auth stack.
type AuthStackConfig struct {
	Config *config.AppConfig
	Redis  goredis.UniversalClient
	Logger *slog.Logger
}

// AuthStack bundles the auth manager with the gated catalog client that
// refreshes through it.
type AuthStack struct {
	Manager *service.Manager
	Catalog *evapi.Client
}

// BuildAuthStack assembles the session store, the ungated auth client,
// the session manager, and the token-gated catalog client.
func BuildAuthStack(cfg AuthStackConfig) (*AuthStack, error) {
	if cfg.Config == nil {
		return nil, fmt.Errorf("app config is required")
	}
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := redisadapter.NewSessionStoreWithPrefix(cfg.Redis, cfg.Config.Auth.KeyPrefix)

	authAPI := evapi.NewAuthAPI(evapi.Config{
		BaseURL: cfg.Config.Upstream.BaseURL,
		Timeout: cfg.Config.Upstream.Timeout,
		Logger:  logger,
	})

	manager, err := service.NewManager(service.ManagerOptions{
		API:    authAPI,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth manager: %w", err)
	}

	// One gate per process; every catalog call funnels through it.
	gate := evapi.NewAuthTransport(manager, nil, logger)
	catalog := evapi.NewClient(evapi.Config{
		BaseURL:   cfg.Config.Upstream.BaseURL,
		Timeout:   cfg.Config.Upstream.Timeout,
		Transport: gate,
		Logger:    logger,
	})

	return &AuthStack{Manager: manager, Catalog: catalog}, nil
}
