package config

import "time"

// UpstreamConfig contains the upstream EV API configuration.
type UpstreamConfig struct {
	// BaseURL is the upstream API root, e.g. "https://fleet.example.com/api".
	BaseURL string `env:"EV_API_BASE_URL" envDefault:"http://localhost:5000/api"`

	// Timeout applies per upstream call.
	Timeout time.Duration `env:"EV_API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 30 * time.Second
	}
}
