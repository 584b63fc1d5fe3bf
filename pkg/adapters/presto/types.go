package presto

import (
	"strings"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// typeMap maps the engine's lowercase type names onto the portable type
// system. Static, loaded once, never mutated; safe for unsynchronized
// concurrent reads.
var typeMap = map[string]core.TypeKind{
	"bigint":  core.TypeBigInt,
	"boolean": core.TypeBoolean,
	"double":  core.TypeDouble,
	"varchar": core.TypeVarchar,
}

// typeFor looks up the portable type for an engine-reported type name.
// Absence from the map is not an error; callers substitute TypeUnknown
// and warn.
func typeFor(name string) (core.TypeKind, bool) {
	kind, ok := typeMap[strings.ToLower(name)]
	if !ok {
		return core.TypeUnknown, false
	}
	return kind, true
}
