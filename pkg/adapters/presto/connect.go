package presto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// ConfigError reports a malformed connection URL. It carries the offending
// database path so the caller can see exactly what failed to parse.
type ConfigError struct {
	Database string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unexpected database format %q", e.Database)
}

// ConnectArgs derives client connection parameters from a connection URL,
// e.g. presto://user@coordinator:8080/hive/default?source=prestoql.
//
// The URL's database path must split into exactly one segment (catalog) or
// two segments (catalog/schema); any other arity is a ConfigError. All URL
// query parameters are merged into Options verbatim.
func ConnectArgs(rawURL string) (core.AdapterConfig, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return core.AdapterConfig{}, fmt.Errorf("invalid connection URL: %w", err)
	}

	cfg := core.AdapterConfig{
		Type: "presto",
		Host: u.Hostname(),
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return core.AdapterConfig{}, fmt.Errorf("invalid port %q: %w", p, err)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.Username = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			cfg.Password = pw
		}
	}

	for key, values := range u.Query() {
		if cfg.Options == nil {
			cfg.Options = make(map[string]string)
		}
		cfg.Options[key] = values[len(values)-1]
	}

	database := strings.TrimPrefix(u.Path, "/")
	switch parts := strings.Split(database, "/"); len(parts) {
	case 1:
		cfg.Catalog = parts[0]
	case 2:
		cfg.Catalog = parts[0]
		cfg.Schema = parts[1]
	default:
		return core.AdapterConfig{}, &ConfigError{Database: database}
	}

	return cfg, nil
}

// DSN renders the wire client's connection string from adapter config.
// The presto driver expects http(s)://user@host:port?catalog=...&schema=...
func DSN(cfg core.AdapterConfig) string {
	scheme := "http"
	if cfg.Options["scheme"] == "https" {
		scheme = "https"
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", host, port),
	}
	if cfg.Username != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			u.User = url.User(cfg.Username)
		}
	}

	q := url.Values{}
	if cfg.Catalog != "" {
		q.Set("catalog", cfg.Catalog)
	}
	if cfg.Schema != "" {
		q.Set("schema", cfg.Schema)
	}
	for key, value := range cfg.Options {
		if key == "scheme" {
			continue
		}
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
