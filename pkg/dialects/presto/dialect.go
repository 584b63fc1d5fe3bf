// Package presto provides the Presto SQL dialect definition.
package presto

import (
	"github.com/leapstack-labs/prestoql/pkg/dialect"
)

func init() {
	dialect.Register(Presto)
}

// prestoReservedWords contains the keywords of the Presto statement grammar.
// This is a literal, grammar-derived table: declared, never computed.
var prestoReservedWords = []string{
	"all",
	"and",
	"as",
	"asc",
	"between",
	"bigint",
	"boolean",
	"by",
	"case",
	"cast",
	"char",
	"character",
	"coalesce",
	"constraint",
	"create",
	"cross",
	"current_date",
	"current_time",
	"current_timestamp",
	"dec",
	"decimal",
	"desc",
	"describe",
	"distinct",
	"double",
	"drop",
	"else",
	"end",
	"escape",
	"except",
	"exists",
	"extract",
	"false",
	"first",
	"for",
	"from",
	"full",
	"group",
	"having",
	"if",
	"in",
	"inner",
	"int",
	"integer",
	"intersect",
	"is",
	"join",
	"last",
	"left",
	"like",
	"limit",
	"natural",
	"not",
	"null",
	"nullif",
	"nulls",
	"number",
	"numeric",
	"on",
	"or",
	"order",
	"outer",
	"recursive",
	"right",
	"select",
	"stratify",
	"substring",
	"table",
	"then",
	"true",
	"unbounded",
	"union",
	"using",
	"varchar",
	"varying",
	"when",
	"where",
	"with",
}

// prestoTypes are the column type names the engine reports.
var prestoTypes = []string{
	"bigint", "boolean", "double", "varchar",
}

// Presto is the Presto SQL dialect.
var Presto = dialect.New(Config).Build()
