package config

// AuthConfig contains session persistence configuration.
type AuthConfig struct {
	// KeyPrefix namespaces the session keys in Redis. Change it to run
	// several gateways against one Redis.
	KeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"auth:"`
}
