package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides applies dotted keys (e.g. "contributions.gate") after every
// other layer, environment included.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		o.overrides = values
	}
}

// layer is one source in the precedence chain.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load builds the Config for profile from, lowest precedence first:
//
//	built-in defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	APP_* environment variables
//	WithOverrides values
//
// Environment names are matched against the keys already loaded, so an
// underscore inside a field name survives:
//
//	APP_SERVER_READ_TIMEOUT                 -> server.read_timeout
//	APP_CONTRIBUTIONS_READINESS_TIMEOUT     -> contributions.readiness_timeout
//	APP_HOST_CLIENT_RETRY_MAX_ATTEMPTS      -> host.client.retry.max_attempts
//
// Menu locations are keyed by tokens containing "/", which no environment
// name can spell; set them in YAML or through WithOverrides.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	files := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config", provider: file.Provider(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile " + profile, provider: file.Provider(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
	}
	if err := loadLayers(k, files); err != nil {
		return nil, err
	}

	// The env lookup needs the keys the file layers produced.
	late := []layer{{name: "environment", provider: envProvider(k.Keys())}}
	if len(o.overrides) > 0 {
		late = append(late, layer{name: "overrides", provider: confmap.Provider(o.overrides, ".")})
	}
	if err := loadLayers(k, late); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func loadLayers(k *koanf.Koanf, layers []layer) error {
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	return nil
}

// envProvider maps APP_* variables onto known koanf keys, falling back to
// replacing every underscore with a dot.
func envProvider(knownKeys []string) koanf.Provider {
	lookup := buildEnvLookup(knownKeys)

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if known, ok := lookup[key]; ok {
				return known, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects profile names that could escape the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup indexes koanf keys by their env spelling:
// "server.read_timeout" is found under "server_read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
