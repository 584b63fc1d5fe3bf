// Package presto provides a Presto database adapter for prestoql.
//
// This file registers the Presto adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/leapstack-labs/prestoql/pkg/adapters/presto"
package presto

import (
	"log/slog"

	"github.com/leapstack-labs/prestoql/pkg/adapter"

	// Import dialect to ensure it's registered
	_ "github.com/leapstack-labs/prestoql/pkg/dialects/presto"
)

func init() {
	adapter.Register("presto", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
