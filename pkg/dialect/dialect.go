// Package dialect provides SQL dialect configuration for metadata operations.
//
// This package contains the public contract for dialect definitions used by
// adapters and the CLI. Concrete dialect implementations are registered from
// pkg/dialects/*/ packages.
package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// DefaultSchema is the schema assumed when a table reference carries none
	DefaultSchema string

	// Placeholder defines how query parameters are formatted
	Placeholder core.PlaceholderStyle

	// Words that need quoting as identifiers (normalized)
	reservedWords map[string]struct{}
	dataTypes     []string
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	reserved := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		reserved = append(reserved, w)
	}

	return &core.DialectConfig{
		Name:          d.Name,
		Identifiers:   d.Identifiers,
		DefaultSchema: d.DefaultSchema,
		Placeholder:   d.Placeholder,
		ReservedWords: reserved,
		DataTypes:     d.dataTypes,
	}
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word is a grammar keyword that needs
// quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	normalized := d.NormalizeName(word)
	_, ok := d.reservedWords[normalized]
	return ok
}

// RequiresQuoting returns true if the identifier must be quoted: it is a
// reserved word, or it contains characters outside the plain identifier
// grammar (letters, digits, underscore, not starting with a digit).
func (d *Dialect) RequiresQuoting(name string) bool {
	if name == "" {
		return true
	}
	if d.IsReservedWord(name) {
		return true
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., " -> "")
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// Quote quotes an identifier only when the dialect requires it.
func (d *Dialect) Quote(name string) string {
	if d.RequiresQuoting(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// QualifyTable builds a quoted table reference, prefixing the schema when
// one is given. Schema and table are quoted independently.
func (d *Dialect) QualifyTable(table, schema string) string {
	ref := d.QuoteIdentifier(table)
	if schema != "" {
		ref = d.QuoteIdentifier(schema) + "." + ref
	}
	return ref
}

// DataTypes returns all type names the engine reports.
func (d *Dialect) DataTypes() []string {
	return d.dataTypes
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// GetName returns the dialect name.
// This method allows Dialect to satisfy interfaces that require Name() string.
func (d *Dialect) GetName() string {
	return d.Name
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			reservedWords: make(map[string]struct{}),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
// This is the preferred constructor for dialects defined as pure data.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{
		config: cfg,
		dialect: &Dialect{
			Name:          cfg.Name,
			Identifiers:   cfg.Identifiers,
			DefaultSchema: cfg.DefaultSchema,
			Placeholder:   cfg.Placeholder,
			reservedWords: make(map[string]struct{}),
		},
	}
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// PlaceholderStyle sets how query parameters are formatted.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[b.dialect.NormalizeName(w)] = struct{}{}
	}
	return b
}

// WithDataTypes registers supported data types.
func (b *Builder) WithDataTypes(types ...string) *Builder {
	b.dialect.dataTypes = append(b.dialect.dataTypes, types...)
	return b
}

// Build returns the constructed dialect.
// If the builder was created with New(cfg), config tables are folded in.
func (b *Builder) Build() *Dialect {
	cfg := b.config
	if cfg == nil {
		return b.dialect
	}

	for _, w := range cfg.ReservedWords {
		b.dialect.reservedWords[b.dialect.NormalizeName(w)] = struct{}{}
	}
	b.dialect.dataTypes = append(b.dialect.dataTypes, cfg.DataTypes...)

	return b.dialect
}
