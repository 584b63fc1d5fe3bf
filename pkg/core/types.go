package core

// TypeKind is the portable column type system.
//
// Engines report type names as free-form strings; adapters map those strings
// onto this closed set. TypeUnknown is the designed fallback for names an
// adapter does not recognize; hitting it is not an error path.
type TypeKind int

const (
	// TypeUnknown is the fallback for unrecognized engine type names.
	TypeUnknown TypeKind = iota
	// TypeBigInt is a 64-bit signed integer.
	TypeBigInt
	// TypeBoolean is a true/false value.
	TypeBoolean
	// TypeDouble is a 64-bit floating point number.
	TypeDouble
	// TypeVarchar is variable-length character data.
	TypeVarchar
)

// String returns the portable name of the type kind.
func (t TypeKind) String() string {
	switch t {
	case TypeBigInt:
		return "bigint"
	case TypeBoolean:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeVarchar:
		return "varchar"
	default:
		return "unknown"
	}
}

// Column describes a single column of a table, as reported by introspection.
type Column struct {
	// Name is the column name as the engine reports it.
	Name string

	// Type is the portable type descriptor mapped from TypeName.
	Type TypeKind

	// TypeName is the raw type name string reported by the engine.
	TypeName string

	// Nullable reports whether the column accepts NULL.
	Nullable bool

	// Default is the column default expression. Presto has no notion of
	// column defaults, so this is always nil for the Presto adapter.
	Default *string

	// PartitionKey reports whether the engine uses this column to
	// physically partition table storage.
	PartitionKey bool
}

// Index describes an index over a table.
//
// Presto has no native indexes. The adapter synthesizes a single non-unique
// index named "partition" covering all partition-key columns, when any exist.
type Index struct {
	Name        string
	ColumnNames []string
	Unique      bool
}

// ForeignKey describes a foreign key constraint.
//
// Presto does not support foreign keys; its adapter always reports none.
type ForeignKey struct {
	Name            string
	ColumnNames     []string
	ReferredTable   string
	ReferredColumns []string
	ReferredSchema  string
}

// PrimaryKey describes a primary key constraint. The zero value means the
// table has no primary key, which for Presto is always the case.
type PrimaryKey struct {
	Name        string
	ColumnNames []string
}

// TableDef is a fully reflected table definition.
type TableDef struct {
	Catalog string
	Schema  string
	Name    string
	Columns []Column
	Indexes []Index
}
