package presto

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// showColumnsHeader mirrors the field names of SHOW COLUMNS output.
var showColumnsHeader = []string{"Column", "Type", "Null", "Partition Key"}

func newTestAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var logs bytes.Buffer
	a := New(slog.New(slog.NewTextHandler(&logs, nil)))
	a.DB = db
	return a, mock, &logs
}

func TestColumns(t *testing.T) {
	a, mock, logs := newTestAdapter(t)

	rows := sqlmock.NewRows(showColumnsHeader).
		AddRow("id", "bigint", true, false).
		AddRow("weird", "frobnicate", true, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SHOW COLUMNS FROM "orders"`)).WillReturnRows(rows)

	cols, err := a.Columns(context.Background(), "orders", "")
	require.NoError(t, err, "an unrecognized type name must not fail the call")
	require.Len(t, cols, 2)

	assert.Equal(t, "id", cols[0].Name)
	assert.Equal(t, core.TypeBigInt, cols[0].Type)
	assert.True(t, cols[0].Nullable)
	assert.Nil(t, cols[0].Default)

	assert.Equal(t, "weird", cols[1].Name)
	assert.Equal(t, core.TypeUnknown, cols[1].Type, "unknown type names map to the fallback descriptor")
	assert.Equal(t, "frobnicate", cols[1].TypeName)

	assert.Contains(t, logs.String(), "did not recognize column type")
	assert.Contains(t, logs.String(), "frobnicate")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumns_SchemaQualified(t *testing.T) {
	a, mock, _ := newTestAdapter(t)

	rows := sqlmock.NewRows(showColumnsHeader).
		AddRow("id", "bigint", false, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SHOW COLUMNS FROM "sales"."orders"`)).WillReturnRows(rows)

	cols, err := a.Columns(context.Background(), "orders", "sales")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.False(t, cols[0].Nullable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumns_ReservedTableNameIsQuoted(t *testing.T) {
	a, mock, _ := newTestAdapter(t)

	rows := sqlmock.NewRows(showColumnsHeader).
		AddRow("id", "bigint", true, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SHOW COLUMNS FROM "table"`)).WillReturnRows(rows)

	_, err := a.Columns(context.Background(), "table", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTable(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false)
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		ok, err := a.HasTable(context.Background(), "orders", "")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing table recovers to false", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		// The engine reports the missing table while the result is
		// materialized, after the execute call apparently succeeded.
		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false).
			RowError(0, errors.New("Table 'orders' does not exist"))
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		ok, err := a.HasTable(context.Background(), "orders", "")
		require.NoError(t, err, "a classified missing table is a boolean, not an error")
		assert.False(t, ok)
	})

	t.Run("structured missing-table payload recovers to false", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false).
			RowError(0, errors.New(`{"message":"Table 'orders' does not exist","errorCode":16777224}`))
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		ok, err := a.HasTable(context.Background(), "orders", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other backend failure re-raises", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false).
			RowError(0, errors.New("Access Denied"))
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		_, err := a.HasTable(context.Background(), "orders", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Access Denied")
	})
}

func TestColumns_MissingTableIsTypedError(t *testing.T) {
	a, mock, _ := newTestAdapter(t)

	rows := sqlmock.NewRows(showColumnsHeader).
		AddRow("id", "bigint", true, false).
		RowError(0, errors.New("Table 'orders' does not exist"))
	mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

	_, err := a.Columns(context.Background(), "orders", "")
	require.Error(t, err)

	var missing *NoSuchTableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "orders", missing.Table)
}

func TestShowColumns_ExecuteTimeErrorPropagatesUntouched(t *testing.T) {
	a, mock, _ := newTestAdapter(t)

	// Classification happens only at result materialization; an execute-time
	// failure is never reinterpreted, even if its text looks similar.
	backendErr := errors.New("Query exceeded maximum time limit")
	mock.ExpectQuery("SHOW COLUMNS").WillReturnError(backendErr)

	_, err := a.Columns(context.Background(), "orders", "")
	require.Error(t, err)
	assert.Equal(t, backendErr, err)
}

func TestIndexes(t *testing.T) {
	t.Run("partition keys synthesize one index", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false).
			AddRow("region", "varchar", true, true).
			AddRow("day", "varchar", true, true)
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		idxs, err := a.Indexes(context.Background(), "orders", "")
		require.NoError(t, err)
		require.Len(t, idxs, 1)

		assert.Equal(t, "partition", idxs[0].Name)
		assert.Equal(t, []string{"region", "day"}, idxs[0].ColumnNames)
		assert.False(t, idxs[0].Unique)
	})

	t.Run("no partition keys means no indexes", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows(showColumnsHeader).
			AddRow("id", "bigint", true, false)
		mock.ExpectQuery("SHOW COLUMNS").WillReturnRows(rows)

		idxs, err := a.Indexes(context.Background(), "orders", "")
		require.NoError(t, err)
		assert.Empty(t, idxs)
	})
}

func TestTableNames(t *testing.T) {
	t.Run("default schema", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows([]string{"tab_name"}).
			AddRow("orders").
			AddRow("customers")
		mock.ExpectQuery(regexp.QuoteMeta("SHOW TABLES")).WillReturnRows(rows)

		names, err := a.TableNames(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, []string{"orders", "customers"}, names)
	})

	t.Run("explicit schema is quoted", func(t *testing.T) {
		a, mock, _ := newTestAdapter(t)

		rows := sqlmock.NewRows([]string{"tab_name"}).
			AddRow("orders")
		mock.ExpectQuery(regexp.QuoteMeta(`SHOW TABLES FROM "sales"`)).WillReturnRows(rows)

		names, err := a.TableNames(context.Background(), "sales")
		require.NoError(t, err)
		assert.Equal(t, []string{"orders"}, names)
	})
}

func TestForeignKeysAndPrimaryKey_AlwaysEmpty(t *testing.T) {
	a, _, _ := newTestAdapter(t)

	fks, err := a.ForeignKeys(context.Background(), "orders", "sales")
	require.NoError(t, err)
	assert.Empty(t, fks)

	pk, err := a.PrimaryKey(context.Background(), "orders", "sales")
	require.NoError(t, err)
	assert.Empty(t, pk.ColumnNames)
	assert.Empty(t, pk.Name)
}

func TestRollback_NeverErrors(t *testing.T) {
	// Regardless of connection state: never connected, or connected.
	assert.NoError(t, New(nil).Rollback())

	a, _, _ := newTestAdapter(t)
	assert.NoError(t, a.Rollback())
}

func TestCapabilities(t *testing.T) {
	caps := New(nil).Capabilities()

	assert.False(t, caps.Transactions)
	assert.False(t, caps.PrimaryKeys)
	assert.False(t, caps.ForeignKeys)
	assert.False(t, caps.DefaultValues)
	assert.True(t, caps.UnicodeStatements)
	assert.True(t, caps.UnicodeResults)
}

func TestIntrospection_RequiresConnection(t *testing.T) {
	a := New(nil)

	_, err := a.Columns(context.Background(), "orders", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")

	_, err = a.TableNames(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}
