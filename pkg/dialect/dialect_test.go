package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

func TestIsReservedWord(t *testing.T) {
	d := NewDialect("test").
		WithReservedWords("select", "from", "table").
		Build()

	tests := []struct {
		word string
		want bool
	}{
		{"select", true},
		{"SELECT", true}, // case insensitive
		{"Table", true},
		{"my_column", false},
		{"users", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsReservedWord(tt.word))
		})
	}
}

func TestRequiresQuoting(t *testing.T) {
	d := NewDialect("test").
		WithReservedWords("order").
		Build()

	tests := []struct {
		name string
		want bool
	}{
		{"my_column", false},
		{"_internal", false},
		{"col2", false},
		{"order", true},      // reserved
		{"ORDER", true},      // reserved, case insensitive
		{"weird name", true}, // space
		{"dash-ed", true},    // punctuation
		{"2abc", true},       // leading digit
		{"", true},           // empty never passes unquoted
		{"sürname", true},    // non-ASCII
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.RequiresQuoting(tt.name))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	d := NewDialect("test").Build()

	assert.Equal(t, `"users"`, d.QuoteIdentifier("users"))
	// Embedded quotes are escaped, not terminated
	assert.Equal(t, `"a""b"`, d.QuoteIdentifier(`a"b`))
}

func TestQuote(t *testing.T) {
	d := NewDialect("test").
		WithReservedWords("table").
		Build()

	assert.Equal(t, "my_column", d.Quote("my_column"))
	assert.Equal(t, `"table"`, d.Quote("table"))
	assert.Equal(t, `"has space"`, d.Quote("has space"))
}

func TestQualifyTable(t *testing.T) {
	d := NewDialect("test").Build()

	assert.Equal(t, `"orders"`, d.QualifyTable("orders", ""))
	assert.Equal(t, `"sales"."orders"`, d.QualifyTable("orders", "sales"))
}

func TestNormalizationStrategies(t *testing.T) {
	tests := []struct {
		name  string
		norm  core.NormalizationStrategy
		input string
		want  string
	}{
		{"lowercase", core.NormLowercase, "FooBar", "foobar"},
		{"uppercase", core.NormUppercase, "FooBar", "FOOBAR"},
		{"case sensitive", core.NormCaseSensitive, "FooBar", "FooBar"},
		{"case insensitive", core.NormCaseInsensitive, "FooBar", "foobar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDialect("test").
				Identifiers(`"`, `"`, `""`, tt.norm).
				Build()

			assert.Equal(t, tt.want, d.NormalizeName(tt.input))
		})
	}
}

func TestFormatPlaceholder(t *testing.T) {
	question := NewDialect("q").PlaceholderStyle(core.PlaceholderQuestion).Build()
	dollar := NewDialect("d").PlaceholderStyle(core.PlaceholderDollar).Build()

	assert.Equal(t, "?", question.FormatPlaceholder(1))
	assert.Equal(t, "?", question.FormatPlaceholder(2))
	assert.Equal(t, "$1", dollar.FormatPlaceholder(1))
	assert.Equal(t, "$2", dollar.FormatPlaceholder(2))
}

func TestBuildFromConfig(t *testing.T) {
	cfg := &core.DialectConfig{
		Name:          "engine",
		DefaultSchema: "default",
		Identifiers: core.IdentifierConfig{
			Quote:         "`",
			QuoteEnd:      "`",
			Escape:        "``",
			Normalization: core.NormCaseInsensitive,
		},
		ReservedWords: []string{"SELECT", "stratify"},
		DataTypes:     []string{"bigint", "varchar"},
	}

	d := New(cfg).Build()
	require.NotNil(t, d)

	assert.Equal(t, "engine", d.Name)
	assert.Equal(t, "engine", d.GetName())
	assert.Equal(t, "default", d.DefaultSchema)
	assert.True(t, d.IsReservedWord("select"))
	assert.True(t, d.IsReservedWord("STRATIFY"))
	assert.Equal(t, []string{"bigint", "varchar"}, d.DataTypes())
	assert.Equal(t, "`order`", d.QuoteIdentifier("order"))
}

func TestConfigRoundTrip(t *testing.T) {
	d := NewDialect("test").
		DefaultSchema("main").
		WithReservedWords("select").
		WithDataTypes("bigint").
		Build()

	cfg := d.Config()
	assert.Equal(t, "test", cfg.Name)
	assert.Equal(t, "main", cfg.DefaultSchema)
	assert.Equal(t, []string{"select"}, cfg.ReservedWords)
	assert.Equal(t, []string{"bigint"}, cfg.DataTypes)
}
