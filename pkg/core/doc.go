// Package core defines the shared language of the prestoql system.
//
// This package contains:
//   - The portable column type system (TypeKind, Column, Index)
//   - Dialect configuration data (DialectConfig, IdentifierConfig)
//   - Engine capability declarations (Capabilities)
//   - Connection configuration types (AdapterConfig, TargetConfig)
//
// The Golden Rule: pkg/core imports ONLY the stdlib.
// All other packages depend on core, not the reverse.
package core
