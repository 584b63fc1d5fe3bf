// Package presto provides the Presto SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package presto

import "github.com/leapstack-labs/prestoql/pkg/core"

// Config is the Presto SQL dialect configuration.
// This is pure data, accessible by both the adapter and the CLI.
var Config = &core.DialectConfig{
	Name:          "presto",
	DefaultSchema: "default",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},

	ReservedWords: prestoReservedWords,
	DataTypes:     prestoTypes,
}
