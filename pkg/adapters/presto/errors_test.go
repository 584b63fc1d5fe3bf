package presto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageShapes(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		text, ok := PlainMessage("Table 'orders' does not exist").Text()
		assert.True(t, ok)
		assert.Equal(t, "Table 'orders' does not exist", text)
	})

	t.Run("structured with message", func(t *testing.T) {
		text, ok := StructuredMessage{"message": "Table 'orders' does not exist", "errorCode": 1}.Text()
		assert.True(t, ok)
		assert.Equal(t, "Table 'orders' does not exist", text)
	})

	t.Run("structured without message", func(t *testing.T) {
		_, ok := StructuredMessage{"errorCode": 1}.Text()
		assert.False(t, ok)
	})
}

func TestExtractMessage(t *testing.T) {
	t.Run("plain text error", func(t *testing.T) {
		m := extractMessage(errors.New("Access Denied"))
		_, plain := m.(PlainMessage)
		assert.True(t, plain)
	})

	t.Run("structured payload error", func(t *testing.T) {
		m := extractMessage(errors.New(`{"message":"Table 'orders' does not exist","errorCode":16777224}`))
		structured, ok := m.(StructuredMessage)
		require.True(t, ok)
		text, ok := structured.Text()
		require.True(t, ok)
		assert.Equal(t, "Table 'orders' does not exist", text)
	})

	t.Run("malformed json falls back to plain", func(t *testing.T) {
		m := extractMessage(errors.New(`{"message": truncated`))
		_, plain := m.(PlainMessage)
		assert.True(t, plain)
	})
}

func TestClassifyTableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		table     string
		wantTyped bool
	}{
		{
			name:      "exact plain message",
			err:       errors.New("Table 'orders' does not exist"),
			table:     "orders",
			wantTyped: true,
		},
		{
			name:      "qualified table name in message",
			err:       errors.New("Table 'hive.default.orders' does not exist"),
			table:     "orders",
			wantTyped: true,
		},
		{
			name:      "structured payload",
			err:       errors.New(`{"message":"Table 'orders' does not exist"}`),
			table:     "orders",
			wantTyped: true,
		},
		{
			name:      "different table",
			err:       errors.New("Table 'customers' does not exist"),
			table:     "orders",
			wantTyped: false,
		},
		{
			name:      "prefixed message is not a match",
			err:       errors.New("error: Table 'orders' does not exist"),
			table:     "orders",
			wantTyped: false,
		},
		{
			name:      "suffixed message is not a match",
			err:       errors.New("Table 'orders' does not exist yet"),
			table:     "orders",
			wantTyped: false,
		},
		{
			name:      "unrelated backend failure",
			err:       errors.New("Access Denied: Cannot select from table orders"),
			table:     "orders",
			wantTyped: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTableError(tt.err, tt.table)

			var missing *NoSuchTableError
			if tt.wantTyped {
				require.ErrorAs(t, got, &missing)
				assert.Equal(t, tt.table, missing.Table)
			} else {
				assert.False(t, errors.As(got, &missing))
				assert.Equal(t, tt.err, got, "unmatched errors pass through opaque")
			}
		})
	}
}

func TestClassifyTableError_NameEscapedLiterally(t *testing.T) {
	// A table name containing regexp metacharacters must match literally.
	err := errors.New("Table 'a.b+c' does not exist")
	got := classifyTableError(err, "a.b+c")

	var missing *NoSuchTableError
	require.ErrorAs(t, got, &missing)

	// And must not match some other name the unescaped pattern would accept.
	other := classifyTableError(errors.New("Table 'aXbbc' does not exist"), "a.b+c")
	assert.False(t, errors.As(other, &missing))
}

func TestNoSuchTableError_Message(t *testing.T) {
	err := &NoSuchTableError{Table: "orders"}
	assert.Equal(t, "no such table: orders", err.Error())
}
