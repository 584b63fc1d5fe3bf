package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile finds the config file to use.
// Priority: explicit path > prestoql.yaml > prestoql.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("prestoql.yaml"); err == nil {
		return "prestoql.yaml"
	}
	if _, err := os.Stat("prestoql.yml"); err == nil {
		return "prestoql.yml"
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	return LoadConfigWithTarget(cfgFile, "", flags)
}

// LoadConfigWithTarget loads configuration with an optional target override.
// The targetOverride parameter specifies which environment's target to use.
// The flags parameter allows CLI flags to override config file and env var values.
func LoadConfigWithTarget(cfgFile string, targetOverride string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"environment": DefaultEnv,
		"verbose":     false,
		"output":      DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (PRESTOQL_ prefix)
	// Transform: PRESTOQL_TARGET_HOST -> target.host
	if err := k.Load(env.Provider("PRESTOQL_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PRESTOQL_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}

			// Connection flags live under the target key
			switch f.Name {
			case "host", "port", "user", "catalog", "schema", "url":
				return "target." + f.Name, posflag.FlagVal(flags, f)
			}

			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Determine which environment to use for target selection
	envForTarget := cfg.Environment
	if targetOverride != "" {
		envForTarget = targetOverride
	}

	// Apply environment-specific target overrides
	if envForTarget != "" && cfg.Environments != nil {
		if envCfg, ok := cfg.Environments[envForTarget]; ok && envCfg.Target != nil {
			cfg.Target = MergeTargetConfig(cfg.Target, envCfg.Target)
		}
	}

	// Initialize default target if not specified
	if cfg.Target == nil {
		cfg.Target = &core.TargetConfig{Type: "presto"}
	}

	applyTargetDefaults(cfg.Target)

	// Expand environment variables in target
	expandTargetEnvVars(cfg.Target)

	if err := validateTarget(cfg.Target); err != nil {
		return nil, fmt.Errorf("invalid target configuration: %w", err)
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig or LoadConfigWithTarget is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// applyTargetDefaults fills in defaults for fields the target omits. A
// connection URL supplies its own location, so discrete-field defaults only
// apply when no URL is set.
func applyTargetDefaults(t *core.TargetConfig) {
	if t.Type == "" {
		t.Type = "presto"
	}
	if t.URL != "" {
		return
	}
	if t.Host == "" {
		t.Host = DefaultHost
	}
	if t.Port == 0 {
		t.Port = DefaultPort
	}
	if t.Schema == "" {
		t.Schema = DefaultSchema
	}
}

// validateTarget rejects target types no adapter serves. Whether the
// target is complete enough to open is checked at connect time, so
// commands that never touch the network still work unconfigured.
func validateTarget(t *core.TargetConfig) error {
	if t.Type != "presto" {
		return fmt.Errorf("unsupported target type %q (check target.type in prestoql.yaml)", t.Type)
	}
	return nil
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if not found
	})
}

// expandTargetEnvVars expands environment variables in sensitive target fields.
func expandTargetEnvVars(t *core.TargetConfig) {
	if t == nil {
		return
	}
	t.User = expandEnvVars(t.User)
	t.Password = expandEnvVars(t.Password)
	t.Host = expandEnvVars(t.Host)
	t.URL = expandEnvVars(t.URL)
}

// MergeTargetConfig merges two target configs, with override taking precedence.
func MergeTargetConfig(base, override *core.TargetConfig) *core.TargetConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a copy of base
	merged := &core.TargetConfig{
		Type:     base.Type,
		Host:     base.Host,
		Port:     base.Port,
		User:     base.User,
		Password: base.Password,
		Catalog:  base.Catalog,
		Schema:   base.Schema,
		URL:      base.URL,
		Options:  make(map[string]string),
	}

	// Copy base options
	for k, v := range base.Options {
		merged.Options[k] = v
	}

	// Apply overrides
	if override.Type != "" {
		merged.Type = override.Type
	}
	if override.Host != "" {
		merged.Host = override.Host
	}
	if override.Port != 0 {
		merged.Port = override.Port
	}
	if override.User != "" {
		merged.User = override.User
	}
	if override.Password != "" {
		merged.Password = override.Password
	}
	if override.Catalog != "" {
		merged.Catalog = override.Catalog
	}
	if override.Schema != "" {
		merged.Schema = override.Schema
	}
	if override.URL != "" {
		merged.URL = override.URL
	}

	// Merge options
	for k, v := range override.Options {
		merged.Options[k] = v
	}

	return merged
}
