package presto

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// showColumnsRow mirrors one row of SHOW COLUMNS output:
// Column, Type, Null, Partition Key.
type showColumnsRow struct {
	name         string
	typeName     string
	nullable     bool
	partitionKey bool
}

// showColumns runs SHOW COLUMNS against a fully qualified, quoted table
// reference and materializes the result.
//
// The engine's client reports a missing table only while the result's
// column description is read, after the execute call has apparently
// succeeded. Classification therefore happens at that single point; an
// execute-time failure is not where this condition surfaces and propagates
// untouched.
func (a *Adapter) showColumns(ctx context.Context, table, schema string) ([]showColumnsRow, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	ref := a.Dialect().QualifyTable(table, schema)
	rows, err := a.DB.QueryContext(ctx, "SHOW COLUMNS FROM "+ref)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []showColumnsRow
	for rows.Next() {
		var r showColumnsRow
		if err := rows.Scan(&r.name, &r.typeName, &r.nullable, &r.partitionKey); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyTableError(err, table)
	}
	return out, nil
}

// Columns lists the table's columns with portable type descriptors.
//
// An unrecognized type name never fails the call: it is logged as a warning
// and mapped to TypeUnknown, so a single odd column cannot block
// introspection of the whole table.
func (a *Adapter) Columns(ctx context.Context, table, schema string) ([]core.Column, error) {
	rows, err := a.showColumns(ctx, table, schema)
	if err != nil {
		return nil, err
	}

	result := make([]core.Column, 0, len(rows))
	for _, r := range rows {
		kind, ok := typeFor(r.typeName)
		if !ok {
			a.Logger.Warn("did not recognize column type",
				slog.String("type", r.typeName),
				slog.String("column", r.name))
		}
		result = append(result, core.Column{
			Name:         r.name,
			Type:         kind,
			TypeName:     r.typeName,
			Nullable:     r.nullable,
			Default:      nil, // Presto has no column defaults
			PartitionKey: r.partitionKey,
		})
	}
	return result, nil
}

// HasTable reports whether the table exists. A classified "table does not
// exist" failure is recovered into false; any other backend error is
// returned unchanged so callers can tell "table absent" from "introspection
// broke".
func (a *Adapter) HasTable(ctx context.Context, table, schema string) (bool, error) {
	_, err := a.showColumns(ctx, table, schema)
	if err != nil {
		var missing *NoSuchTableError
		if errors.As(err, &missing) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Indexes lists the table's indexes. Presto has no native indexes; when any
// columns are partition keys, a single synthetic non-unique index named
// "partition" covering all of them is reported.
func (a *Adapter) Indexes(ctx context.Context, table, schema string) ([]core.Index, error) {
	rows, err := a.showColumns(ctx, table, schema)
	if err != nil {
		return nil, err
	}

	var colNames []string
	for _, r := range rows {
		if r.partitionKey {
			colNames = append(colNames, r.name)
		}
	}
	if len(colNames) == 0 {
		return []core.Index{}, nil
	}
	return []core.Index{{
		Name:        "partition",
		ColumnNames: colNames,
		Unique:      false,
	}}, nil
}

// TableNames lists the tables visible in the schema (or the connection's
// default schema when schema is empty), via SHOW TABLES. Only the first
// field of each returned row is the table name.
func (a *Adapter) TableNames(ctx context.Context, schema string) ([]string, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	query := "SHOW TABLES"
	if schema != "" {
		query += " FROM " + a.Dialect().QuoteIdentifier(schema)
	}

	rows, err := a.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read table listing description: %w", err)
	}

	var names []string
	for rows.Next() {
		var name string
		dest := make([]any, len(cols))
		dest[0] = &name
		for i := 1; i < len(dest); i++ {
			dest[i] = new(sql.RawBytes)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}
	return names, nil
}

// ForeignKeys always reports none: Presto has no support for foreign keys.
// This is a documented absence, not an error.
func (a *Adapter) ForeignKeys(_ context.Context, _, _ string) ([]core.ForeignKey, error) {
	return []core.ForeignKey{}, nil
}

// PrimaryKey always reports no constraint: Presto has no support for
// primary keys.
func (a *Adapter) PrimaryKey(_ context.Context, _, _ string) (core.PrimaryKey, error) {
	return core.PrimaryKey{}, nil
}
