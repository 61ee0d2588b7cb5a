// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Host modes.
const (
	HostModeMemory = "memory"
	HostModeRemote = "remote"
)

// Registration gates.
const (
	GateReadiness = "readiness"
	GateDelay     = "delay"
)

// Config holds all configuration for the service.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Log           LogConfig           `koanf:"log"`
	Host          HostConfig          `koanf:"host"`
	Contributions ContributionsConfig `koanf:"contributions"`
	Menus         MenusConfig         `koanf:"menus"`
	Telemetry     TelemetryConfig     `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// HostConfig selects where the host menu and command registries live.
// In memory mode they run in-process; in remote mode menu actions are
// forwarded to the host over HTTP using Client.
type HostConfig struct {
	Mode   string       `koanf:"mode"`
	Client ClientConfig `koanf:"client"`
}

// ClientConfig holds outbound HTTP client settings for the remote host.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting. Zero RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// ContributionsConfig controls how contributed menu actions are deferred
// until their command exists. Gate is "readiness" (wait for the command
// registry's signal, bounded by ReadinessTimeout) or "delay" (wait a fixed
// Delay).
type ContributionsConfig struct {
	Gate             string        `koanf:"gate"`
	Delay            time.Duration `koanf:"delay"`
	ReadinessTimeout time.Duration `koanf:"readiness_timeout"`
}

// MenusConfig holds the closed location table: location token -> menu path
// segments. Tokens must not contain '.', which is the koanf key delimiter.
type MenusConfig struct {
	Locations map[string][]string `koanf:"locations"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
