// Package commands implements the prestoql subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/prestoql/internal/cli/config"
	"github.com/leapstack-labs/prestoql/pkg/adapter"
	"github.com/leapstack-labs/prestoql/pkg/adapters/presto"
	"github.com/leapstack-labs/prestoql/pkg/core"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Adapter adapter.Adapter
}

// NewCommandContext creates a CommandContext with a connected adapter.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	acfg, err := ResolveAdapterConfig(cfg.Target)
	if err != nil {
		return nil, nil, err
	}

	a, err := adapter.NewAdapter(acfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := a.Connect(cmd.Context(), acfg); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s:%d: %w", acfg.Host, acfg.Port, err)
	}

	cleanup := func() {
		_ = a.Close()
	}

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Adapter: a,
	}, cleanup, nil
}

// ResolveAdapterConfig turns a target into connection parameters. A
// connection URL, when set, takes precedence over the discrete fields.
func ResolveAdapterConfig(t *config.TargetConfig) (core.AdapterConfig, error) {
	if t == nil {
		return core.AdapterConfig{}, fmt.Errorf("no target configured")
	}
	if t.URL != "" {
		return presto.ConnectArgs(t.URL)
	}
	if t.Catalog == "" {
		return core.AdapterConfig{}, fmt.Errorf("target requires a catalog (or a connection url)")
	}
	return core.AdapterConfig{
		Type:     t.Type,
		Host:     t.Host,
		Port:     t.Port,
		Username: t.User,
		Password: t.Password,
		Catalog:  t.Catalog,
		Schema:   t.Schema,
		Options:  t.Options,
	}, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		Environment:  getEnvOrDefault("PRESTOQL_ENVIRONMENT", config.DefaultEnv),
		Verbose:      os.Getenv("PRESTOQL_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("PRESTOQL_OUTPUT", config.DefaultOutput),
		Target: &config.TargetConfig{
			Type:    "presto",
			Host:    getEnvOrDefault("PRESTOQL_TARGET_HOST", config.DefaultHost),
			User:    os.Getenv("PRESTOQL_TARGET_USER"),
			Catalog: os.Getenv("PRESTOQL_TARGET_CATALOG"),
			Schema:  getEnvOrDefault("PRESTOQL_TARGET_SCHEMA", config.DefaultSchema),
			URL:     os.Getenv("PRESTOQL_TARGET_URL"),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// outputFormat resolves the effective output format for a command: the
// command's own --output flag when set, else the global configuration.
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		return f.Value.String()
	}
	if cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return config.DefaultOutput
}

// schemaArg resolves the schema a command should introspect: the command's
// --schema flag when set, else the target's configured schema.
func schemaArg(cmd *cobra.Command, cfg *config.Config) string {
	if f := cmd.Flags().Lookup("schema"); f != nil && f.Changed {
		return f.Value.String()
	}
	if cfg.Target != nil {
		return cfg.Target.Schema
	}
	return ""
}
