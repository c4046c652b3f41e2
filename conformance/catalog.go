// Package conformance owns the fixture corpus for the canonical GeoParquet
// rule set: one named metadata fragment per constraint, tagged with its
// expected outcome. The catalog is the executable contract of the rule set;
// any rule change updates it in lock-step.
package conformance

import (
	geometa "github.com/geoparq/geometa"
)

// Case is one conformance fixture.
type Case struct {
	Name     string
	Valid    bool
	Metadata geometa.Value
}

var catalog = buildCatalog()

// Catalog returns every fixture in a fixed order, valid cases first.
func Catalog() []Case {
	out := make([]Case, len(catalog))
	copy(out, catalog)
	return out
}

// ValidCases returns the fixtures expected to produce zero violations.
func ValidCases() []Case { return filter(true) }

// InvalidCases returns the fixtures expected to produce at least one violation.
func InvalidCases() []Case { return filter(false) }

func filter(valid bool) []Case {
	var out []Case
	for _, c := range catalog {
		if c.Valid == valid {
			out = append(out, c)
		}
	}
	return out
}

// template is the minimum valid metadata document; every case is a small
// mutation of it, mirroring how producers actually assemble the footer.
func template() geometa.Value {
	return geometa.Obj(
		geometa.F("version", geometa.Str("0.5.0-dev")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
}

func buildCatalog() []Case {
	var cases []Case
	valid := func(name string, m geometa.Value) {
		cases = append(cases, Case{Name: name, Valid: true, Metadata: m})
	}
	invalid := func(name string, m geometa.Value) {
		cases = append(cases, Case{Name: name, Valid: false, Metadata: m})
	}

	// minimum required metadata
	valid("minimal", template())
	valid("custom_key", setKey(template(), "custom_key", geometa.Str("value")))
	valid("custom_key_column", setColumnField(template(), "geometry", "custom_key", geometa.Str("value")))

	// geometry columns
	valid("geometry_columns_multiple", setColumn(template(), "other_geom", column(template(), "geometry")))
	valid("geometry_column_name", func() geometa.Value {
		doc := setKey(template(), "primary_column", geometa.Str("geom"))
		return setKey(doc, "columns", geometa.Obj(geometa.F("geom", column(doc, "geometry"))))
	}())

	// per-column fields
	valid("geometry_type_list", setColumnField(template(), "geometry", "geometry_types",
		geometa.Arr(geometa.Str("Point"))))
	valid("crs_null", setColumnField(template(), "geometry", "crs", geometa.Null()))
	valid("bbox_4_element", setColumnField(template(), "geometry", "bbox", bbox(4)))
	valid("bbox_6_element", setColumnField(template(), "geometry", "bbox", bbox(6)))
	valid("orientation", setColumnField(template(), "geometry", "orientation", geometa.Str("counterclockwise")))
	valid("edges_planar", setColumnField(template(), "geometry", "edges", geometa.Str("planar")))
	valid("edges_spherical", setColumnField(template(), "geometry", "edges", geometa.Str("spherical")))
	valid("epoch", setColumnField(template(), "geometry", "epoch", geometa.Num(2015.1)))

	// required keys
	invalid("missing_version", dropKey(template(), "version"))
	invalid("missing_primary_column", dropKey(template(), "primary_column"))
	invalid("missing_columns", dropKey(template(), "columns"))
	invalid("missing_columns_entry", setKey(template(), "columns", geometa.Obj()))
	invalid("missing_geometry_encoding", dropColumnField(template(), "geometry", "encoding"))
	invalid("missing_geometry_type", dropColumnField(template(), "geometry", "geometry_types"))

	// column shape and names
	invalid("geometry_columns_invalid_object", setColumn(template(), "invalid_column_object", geometa.Str("foo")))
	invalid("geometry_column_name_primary_empty", setKey(template(), "primary_column", geometa.Str("")))
	invalid("geometry_column_name_empty", setColumn(template(), "", column(template(), "geometry")))

	// enumerations
	invalid("encoding", setColumnField(template(), "geometry", "encoding", geometa.Str("WKT")))
	invalid("geometry_type_string", setColumnField(template(), "geometry", "geometry_types", geometa.Str("Point")))
	invalid("geometry_type_nonexistent", setColumnField(template(), "geometry", "geometry_types",
		geometa.Arr(geometa.Str("Curve"))))
	invalid("geometry_type_uniqueness", setColumnField(template(), "geometry", "geometry_types",
		geometa.Arr(geometa.Str("Point"), geometa.Str("Point"))))
	invalid("geometry_type_z_missing_space", setColumnField(template(), "geometry", "geometry_types",
		geometa.Arr(geometa.Str("PointZ"))))

	// crs must be structured or null, never a bare string
	invalid("crs_string", setColumnField(template(), "geometry", "crs", geometa.Str("EPSG:4326")))

	// bbox cardinality and element types
	invalid("bbox_3_element", setColumnField(template(), "geometry", "bbox", bbox(3)))
	invalid("bbox_5_element", setColumnField(template(), "geometry", "bbox", bbox(5)))
	invalid("bbox_7_element", setColumnField(template(), "geometry", "bbox", bbox(7)))
	invalid("bbox_invalid_type", setColumnField(template(), "geometry", "bbox",
		geometa.Arr(geometa.Str("0"), geometa.Str("0"), geometa.Str("0"), geometa.Str("0"))))

	// remaining enumerated and numeric fields
	invalid("orientation", setColumnField(template(), "geometry", "orientation", geometa.Str("clockwise")))
	invalid("edges", setColumnField(template(), "geometry", "edges", geometa.Str("ellipsoid")))
	invalid("epoch_string", setColumnField(template(), "geometry", "epoch", geometa.Str("2015.1")))

	return cases
}

func bbox(n int) geometa.Value {
	items := make([]geometa.Value, n)
	for i := range items {
		items[i] = geometa.Int(0)
	}
	return geometa.Arr(items...)
}

// ---- fragment mutation helpers (Values are immutable; mutations rebuild) ----

func setKey(doc geometa.Value, key string, v geometa.Value) geometa.Value {
	obj, ok := doc.AsObject()
	if !ok {
		return doc
	}
	members := make([]geometa.Member, 0, obj.Len()+1)
	replaced := false
	for _, k := range obj.Keys() {
		cur, _ := obj.Get(k)
		if k == key {
			members = append(members, geometa.F(k, v))
			replaced = true
			continue
		}
		members = append(members, geometa.F(k, cur))
	}
	if !replaced {
		members = append(members, geometa.F(key, v))
	}
	return geometa.Obj(members...)
}

func dropKey(doc geometa.Value, key string) geometa.Value {
	obj, ok := doc.AsObject()
	if !ok {
		return doc
	}
	members := make([]geometa.Member, 0, obj.Len())
	for _, k := range obj.Keys() {
		if k == key {
			continue
		}
		cur, _ := obj.Get(k)
		members = append(members, geometa.F(k, cur))
	}
	return geometa.Obj(members...)
}

func column(doc geometa.Value, name string) geometa.Value {
	obj, _ := doc.AsObject()
	cols, _ := obj.Get("columns")
	colsObj, _ := cols.AsObject()
	col, _ := colsObj.Get(name)
	return col
}

func setColumn(doc geometa.Value, name string, col geometa.Value) geometa.Value {
	obj, _ := doc.AsObject()
	cols, _ := obj.Get("columns")
	return setKey(doc, "columns", setKey(cols, name, col))
}

func setColumnField(doc geometa.Value, name, field string, v geometa.Value) geometa.Value {
	return setColumn(doc, name, setKey(column(doc, name), field, v))
}

func dropColumnField(doc geometa.Value, name, field string) geometa.Value {
	return setColumn(doc, name, dropKey(column(doc, name), field))
}
