package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once, each error naming its key.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Host.validate(&p)
	c.Contributions.validate(&p, c.Host.Mode)
	c.Menus.validate(&p)
	c.Telemetry.validate(&p)
	return errors.Join(p...)
}

// problems collects validation failures.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (h *HostConfig) validate(p *problems) {
	p.oneOf("host.mode", h.Mode, HostModeMemory, HostModeRemote)
	if h.Mode == HostModeRemote {
		h.Client.validate(p)
	}
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"host.client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "host.client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "host.client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "host.client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"host.client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"host.client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"host.client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
}

func (c *ContributionsConfig) validate(p *problems, hostMode string) {
	p.oneOf("contributions.gate", c.Gate, GateReadiness, GateDelay)
	switch c.Gate {
	case GateDelay:
		p.check(c.Delay > 0, "contributions.delay must be positive when gate is delay")
	case GateReadiness:
		p.check(c.ReadinessTimeout > 0, "contributions.readiness_timeout must be positive when gate is readiness")
		p.check(hostMode != HostModeRemote, "contributions.gate readiness requires host.mode memory")
	}
}

func (m *MenusConfig) validate(p *problems) {
	p.check(len(m.Locations) > 0, "menus.locations must define at least one location")

	tokens := make([]string, 0, len(m.Locations))
	for token := range m.Locations {
		tokens = append(tokens, token)
	}
	slices.Sort(tokens)

	for _, token := range tokens {
		segments := m.Locations[token]
		p.check(len(segments) > 0, "menus.locations[%q] must have at least one segment", token)
		for i, seg := range segments {
			p.check(strings.TrimSpace(seg) != "", "menus.locations[%q][%d] must not be blank", token, i)
		}
	}
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	p.check(t.ServiceName != "", "telemetry.service_name must not be empty when telemetry is enabled")
}
