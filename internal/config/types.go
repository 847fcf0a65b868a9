package config

import "time"

// Config is the top-level insurehub configuration, corresponding to insurehub.yml.
type Config struct {
	Server      ServerConfig  `yaml:"server" koanf:"server"`
	Session     SessionConfig `yaml:"session" koanf:"session"`
	CatalogFile string        `yaml:"catalog_file" koanf:"catalog_file"`
	Locale      string        `yaml:"locale" koanf:"locale"`
	Log         LogConfig     `yaml:"log" koanf:"log"`
	Metrics     MetricsConfig `yaml:"metrics" koanf:"metrics"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LiveUpdates     bool `yaml:"live_updates" koanf:"live_updates"`
}

// SessionConfig bounds the per-browser view-state store.
type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name" koanf:"cookie_name"`
	MaxSessions  int           `yaml:"max_sessions" koanf:"max_sessions"`
	TTL          time.Duration `yaml:"ttl" koanf:"ttl"`
	SecureCookie bool          `yaml:"secure_cookie" koanf:"secure_cookie"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
}
