package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"host.mode":                                   HostModeMemory,
		"host.client.base_url":                        "http://localhost:8081",
		"host.client.timeout":                         "10s",
		"host.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"host.client.retry.initial_interval":          "100ms",
		"host.client.retry.max_interval":              "5s",
		"host.client.retry.multiplier":                defaultRetryMultiplier,
		"host.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"host.client.circuit_breaker.timeout":         "30s",
		"host.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"host.client.rate_limit.requests_per_second":  0,
		"host.client.rate_limit.burst_size":           0,

		"contributions.gate":              GateReadiness,
		"contributions.delay":             "2s",
		"contributions.readiness_timeout": "30s",

		"menus.locations": map[string]any{
			"editor/context":    []string{"editor_context_menu"},
			"explorer/context":  []string{"navigator-context-menu"},
			"view/item/context": []string{"view-item-context-menu"},
		},

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "plugin-menus",
	}
}
