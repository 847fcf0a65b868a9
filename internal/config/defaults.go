package config

import "time"

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = "insurehub.yml"

// EnvPrefix marks environment overrides, e.g. INSUREHUB_SERVER__PORT.
const EnvPrefix = "INSUREHUB_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
			LiveUpdates:     true,
		},
		Session: SessionConfig{
			CookieName:  "insurehub_session",
			MaxSessions: 10000,
			TTL:         30 * time.Minute,
		},
		Locale: "en",
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
