package adapter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

// legacyReflectionThreshold is the toolkit version below which table
// reflection is routed through a backported Inspector instead of the
// adapter's own metadata operations.
const legacyReflectionThreshold = "v0.6.0"

// Inspector is the backported table-reflection collaborator used with
// toolkit versions older than the threshold. It is an external component;
// this package only delegates to it.
type Inspector interface {
	ReflectTable(ctx context.Context, table, schema string) (*core.TableDef, error)
}

// Reflector reflects a full table definition through an adapter.
type Reflector interface {
	ReflectTable(ctx context.Context, a Adapter, table, schema string) (*core.TableDef, error)
}

// NewReflector selects a table-reflection implementation for the given
// toolkit version. The selection happens once, here; the version string is
// never parsed again on the reflection path.
//
// backport may be nil for current toolkit versions; it is required when
// toolkitVersion is below the legacy threshold.
func NewReflector(toolkitVersion string, backport Inspector) Reflector {
	v := toolkitVersion
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if semver.IsValid(v) && semver.Compare(v, legacyReflectionThreshold) < 0 {
		return &legacyReflector{inspector: backport}
	}
	return &standardReflector{}
}

// standardReflector drives the adapter's own metadata operations.
type standardReflector struct{}

func (r *standardReflector) ReflectTable(ctx context.Context, a Adapter, table, schema string) (*core.TableDef, error) {
	cols, err := a.Columns(ctx, table, schema)
	if err != nil {
		return nil, err
	}
	idxs, err := a.Indexes(ctx, table, schema)
	if err != nil {
		return nil, err
	}

	resolved := schema
	if resolved == "" {
		resolved = a.Dialect().DefaultSchema
	}
	return &core.TableDef{
		Schema:  resolved,
		Name:    table,
		Columns: cols,
		Indexes: idxs,
	}, nil
}

// legacyReflector delegates to the backported Inspector.
type legacyReflector struct {
	inspector Inspector
}

func (r *legacyReflector) ReflectTable(ctx context.Context, _ Adapter, table, schema string) (*core.TableDef, error) {
	if r.inspector == nil {
		return nil, fmt.Errorf("legacy reflection requires a backport inspector")
	}
	return r.inspector.ReflectTable(ctx, table, schema)
}
