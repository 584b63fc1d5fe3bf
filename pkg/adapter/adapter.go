// Package adapter provides database adapter interfaces and implementations
// for prestoql's metadata toolkit.
//
// This package contains the public contract that all database adapters must
// implement. Concrete adapter implementations are in pkg/adapters/
// subdirectories.
package adapter

import (
	"context"

	"github.com/leapstack-labs/prestoql/pkg/core"
	"github.com/leapstack-labs/prestoql/pkg/dialect"
)

// Type aliases so adapter implementations and callers can use the shared
// core types without importing pkg/core directly.
type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Column is an alias for core.Column.
	Column = core.Column

	// Index is an alias for core.Index.
	Index = core.Index

	// Rows is an alias for core.Rows.
	Rows = core.Rows
)

// Adapter defines the interface that all database adapters must implement.
// It provides methods for connecting to databases, executing SQL, and the
// dialect operation set the generic toolkit drives metadata reflection with.
//
// Every metadata operation is stateless: it performs at most one synchronous
// round trip through the connection and retains nothing between calls.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// HasTable reports whether the table exists. A missing table is a false
	// return, not an error; any other backend failure is returned unchanged.
	HasTable(ctx context.Context, table, schema string) (bool, error)

	// Columns lists the table's columns with portable type descriptors.
	Columns(ctx context.Context, table, schema string) ([]Column, error)

	// Indexes lists the table's indexes.
	Indexes(ctx context.Context, table, schema string) ([]Index, error)

	// TableNames lists the tables visible in the schema (or the connection's
	// default schema when schema is empty).
	TableNames(ctx context.Context, schema string) ([]string, error)

	// ForeignKeys lists the table's foreign key constraints.
	ForeignKeys(ctx context.Context, table, schema string) ([]core.ForeignKey, error)

	// PrimaryKey returns the table's primary key constraint. The zero value
	// means the table has none.
	PrimaryKey(ctx context.Context, table, schema string) (core.PrimaryKey, error)

	// Rollback rolls back the current transaction, if the engine has any
	// such notion. Engines without transactions implement this as a no-op.
	Rollback() error

	// Capabilities returns the engine's static capability declarations.
	Capabilities() core.Capabilities

	// Dialect returns the SQL dialect configuration for this adapter,
	// used for identifier quoting and reserved-word decisions.
	Dialect() *dialect.Dialect
}
