package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data, with no handler functions and no driver dependencies,
// so it is safe to use from tools that never open a connection.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "presto")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// DefaultSchema is the schema assumed when a table reference carries none
	DefaultSchema string

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// ReservedWords are grammar keywords that must be quoted when used as
	// identifiers. Declared per dialect as a literal table, never computed.
	ReservedWords []string

	// DataTypes are the type names the engine reports for columns
	DataTypes []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly.
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (Presto, Hive).
	NormCaseInsensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (Presto, MySQL, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}

// Capabilities declares what an engine supports. The generic toolkit consults
// these instead of probing the connection with test queries.
type Capabilities struct {
	// Transactions reports whether the engine has transactional semantics.
	// When false, Rollback is a documented no-op.
	Transactions bool

	// PrimaryKeys and ForeignKeys report whether the engine models key
	// constraints at all. When false, the corresponding introspection
	// operations return empty results rather than errors.
	PrimaryKeys bool
	ForeignKeys bool

	// DefaultValues reports whether columns can carry default expressions.
	DefaultValues bool

	// Alter reports whether ALTER TABLE is supported.
	Alter bool

	// UnicodeStatements and UnicodeResults assert that the wire client
	// accepts and returns Unicode-decoded text. Declared statically so the
	// toolkit skips its runtime detection probes.
	UnicodeStatements bool
	UnicodeResults    bool
}
