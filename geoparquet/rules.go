package geoparquet

import (
	geometa "github.com/geoparq/geometa"
	"github.com/geoparq/geometa/ruleset"
)

// Version is the schema version the canonical rule set tracks. A document's
// own version field is just a required string; picking a rule set for a given
// version is the caller's configuration concern.
const Version = "1.0.0-beta.1"

var current = buildCurrent()

// Current returns the canonical rule set for GeoParquet geo metadata. The
// returned value is shared, process-wide state and must not be mutated.
func Current() *ruleset.RuleSet { return current }

func buildCurrent() *ruleset.RuleSet {
	return &ruleset.RuleSet{
		Version: Version,
		Rules: []ruleset.Rule{
			// document level
			{Target: "version", Kind: ruleset.Required,
				Description: "schema version of the geo metadata"},
			{Target: "version", Kind: ruleset.Type, Want: kinds(geometa.KindString)},
			{Target: "primary_column", Kind: ruleset.Required,
				Description: "name of the primary geometry column"},
			{Target: "primary_column", Kind: ruleset.Type, Want: kinds(geometa.KindString)},
			{Target: "primary_column", Kind: ruleset.Custom, Check: "non-empty-string"},
			{Target: "columns", Kind: ruleset.Required,
				Description: "per-column geometry metadata"},
			{Target: "columns", Kind: ruleset.Type, Want: kinds(geometa.KindObject)},
			{Target: "columns", Kind: ruleset.Custom, Check: "non-empty-object",
				Description: "at least one geometry column is required"},
			{Target: "columns", Kind: ruleset.Custom, Check: "object-keys-non-empty"},

			// per column
			{Target: "columns.*.encoding", Kind: ruleset.Required},
			{Target: "columns.*.encoding", Kind: ruleset.Type, Want: kinds(geometa.KindString)},
			{Target: "columns.*.encoding", Kind: ruleset.Enum, Values: Encodings,
				Description: "geometry encoding; only WKB is defined"},
			{Target: "columns.*.geometry_types", Kind: ruleset.Required,
				Description: "geometry types that may appear in the column; empty means unconstrained"},
			{Target: "columns.*.geometry_types", Kind: ruleset.Type, Want: kinds(geometa.KindArray)},
			{Target: "columns.*.geometry_types", Kind: ruleset.Type, Want: kinds(geometa.KindString), Elementwise: true},
			{Target: "columns.*.geometry_types", Kind: ruleset.Enum, Values: GeometryTypes, Elementwise: true,
				Description: `3-D types use a space before the Z suffix ("Point Z", not "PointZ")`},
			{Target: "columns.*.geometry_types", Kind: ruleset.UniqueItems},
			{Target: "columns.*.crs", Kind: ruleset.Type, Want: kinds(geometa.KindObject, geometa.KindNull),
				Description: "PROJJSON object, or null when no CRS applies"},
			{Target: "columns.*.bbox", Kind: ruleset.Type, Want: kinds(geometa.KindArray)},
			{Target: "columns.*.bbox", Kind: ruleset.Length, Lengths: []int{4, 6},
				Description: "xmin, ymin, xmax, ymax with optional zmin and zmax"},
			{Target: "columns.*.bbox", Kind: ruleset.Type, Want: kinds(geometa.KindNumber), Elementwise: true},
			{Target: "columns.*.orientation", Kind: ruleset.Type, Want: kinds(geometa.KindString)},
			{Target: "columns.*.orientation", Kind: ruleset.Enum, Values: Orientations,
				Description: "winding order of polygon rings"},
			{Target: "columns.*.edges", Kind: ruleset.Type, Want: kinds(geometa.KindString)},
			{Target: "columns.*.edges", Kind: ruleset.Enum, Values: Edges,
				Description: "how edges between vertices are interpolated"},
			{Target: "columns.*.epoch", Kind: ruleset.Type, Want: kinds(geometa.KindNumber),
				Description: "coordinate epoch of a dynamic CRS, as a number"},
		},
	}
}

func kinds(ks ...geometa.Kind) []geometa.Kind { return ks }
