// Package config provides configuration management for the prestoql CLI.
//
// The shared target type is defined in pkg/core and re-exported here via a
// type alias for convenience.
package config

import (
	"github.com/leapstack-labs/prestoql/pkg/core"
)

// TargetConfig is an alias for the shared target configuration.
// This allows CLI code to use config.TargetConfig without importing pkg/core.
type TargetConfig = core.TargetConfig

// Config holds all CLI configuration options.
type Config struct {
	Environment  string               `koanf:"environment"`
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	Target       *TargetConfig        `koanf:"target"`
	Environments map[string]EnvConfig `koanf:"environments"`
}

// EnvConfig holds environment-specific configuration overrides.
type EnvConfig struct {
	Target *TargetConfig `koanf:"target"`
}

// Default configuration values
const (
	DefaultEnv    = "dev"
	DefaultOutput = "table"
	DefaultHost   = "localhost"
	DefaultPort   = 8080
	DefaultSchema = "default"
)
