package core

import (
	"database/sql"
)

// AdapterConfig holds the parameters an adapter needs to open a connection.
// For network engines it is typically derived from a connection URL.
type AdapterConfig struct {
	Type     string
	Host     string
	Port     int
	Username string
	Password string
	Catalog  string
	Schema   string
	Options  map[string]string
}

// TargetConfig holds database target configuration as it appears in the
// CLI config file.
type TargetConfig struct {
	Type string `koanf:"type"` // presto

	// Network location of the coordinator
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Two-level namespace: catalog outermost, then schema
	Catalog string `koanf:"catalog"`
	Schema  string `koanf:"schema"`

	// URL takes precedence over the discrete fields when set,
	// e.g. presto://user@coordinator:8080/hive/default
	URL string `koanf:"url"`

	// Additional session/client options passed through verbatim
	Options map[string]string `koanf:"options"`
}

// Rows wraps sql.Rows to provide a consistent interface.
type Rows struct {
	*sql.Rows
}
