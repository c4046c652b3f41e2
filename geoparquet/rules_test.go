package geoparquet_test

import (
	"errors"
	"strings"
	"testing"

	geometa "github.com/geoparq/geometa"
	"github.com/geoparq/geometa/geoparquet"
)

// minimal returns the smallest document the canonical rule set accepts.
func minimal() geometa.Value {
	return geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
}

// withColumnField returns minimal() with one extra field on the geometry
// column.
func withColumnField(name string, v geometa.Value) geometa.Value {
	return geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Arr()),
				geometa.F(name, v),
			)),
		)),
	)
}

func strArr(ss ...string) geometa.Value {
	items := make([]geometa.Value, len(ss))
	for i, s := range ss {
		items[i] = geometa.Str(s)
	}
	return geometa.Arr(items...)
}

func numArr(n int) geometa.Value {
	items := make([]geometa.Value, n)
	for i := range items {
		items[i] = geometa.Int(0)
	}
	return geometa.Arr(items...)
}

func TestValidate_MinimalDocumentPasses(t *testing.T) {
	if vs := geoparquet.Validate(minimal()); len(vs) != 0 {
		t.Fatalf("expected a clean pass, got %v", vs)
	}
	if !geoparquet.IsValid(minimal()) {
		t.Fatalf("IsValid must agree with Validate")
	}
}

func TestValidate_MissingRequiredKeyIdentifiesIt(t *testing.T) {
	full := minimal()
	root, _ := full.AsObject()
	for _, key := range []string{"version", "primary_column", "columns"} {
		var members []geometa.Member
		for _, k := range root.Keys() {
			if k == key {
				continue
			}
			v, _ := root.Get(k)
			members = append(members, geometa.F(k, v))
		}
		vs := geoparquet.Validate(geometa.Obj(members...))
		if len(vs) != 1 {
			t.Fatalf("dropping %s: expected exactly one violation, got %v", key, vs)
		}
		if vs[0].Path != key || vs[0].Code != geometa.CodeRequired {
			t.Fatalf("dropping %s: unexpected violation %+v", key, vs[0])
		}
	}
}

func TestValidate_GeometryTypesAsStringReportsOnce(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Str("Point")),
			)),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 {
		t.Fatalf("expected exactly one violation, got %v", vs)
	}
	if vs[0].Path != "columns.geometry.geometry_types" || vs[0].Code != geometa.CodeInvalidType {
		t.Fatalf("unexpected violation %+v", vs[0])
	}
}

func TestValidate_DuplicateGeometryType(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", strArr("Point", "Point")),
			)),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 {
		t.Fatalf("expected exactly one violation, got %v", vs)
	}
	if vs[0].Path != "columns.geometry.geometry_types[1]" || vs[0].Code != geometa.CodeDuplicateItem {
		t.Fatalf("unexpected violation %+v", vs[0])
	}
}

func TestValidate_GeometryTypeVocabularyIsExactCase(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"Point", true},
		{"Point Z", true},
		{"GeometryCollection Z", true},
		{"PointZ", false},
		{"point", false},
		{"Curve", false},
	}
	for _, tc := range cases {
		doc := geometa.Obj(
			geometa.F("version", geometa.Str("1.0.0-beta.1")),
			geometa.F("primary_column", geometa.Str("geometry")),
			geometa.F("columns", geometa.Obj(
				geometa.F("geometry", geometa.Obj(
					geometa.F("encoding", geometa.Str("WKB")),
					geometa.F("geometry_types", strArr(tc.value)),
				)),
			)),
		)
		vs := geoparquet.Validate(doc)
		if tc.valid && len(vs) != 0 {
			t.Fatalf("%q: expected a pass, got %v", tc.value, vs)
		}
		if !tc.valid {
			if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidEnum {
				t.Fatalf("%q: expected one enum violation, got %v", tc.value, vs)
			}
			if vs[0].Path != "columns.geometry.geometry_types[0]" {
				t.Fatalf("%q: unexpected path %q", tc.value, vs[0].Path)
			}
		}
	}
}

func TestValidate_Bbox(t *testing.T) {
	cases := []struct {
		n     int
		valid bool
	}{
		{4, true}, {6, true},
		{3, false}, {5, false}, {7, false},
	}
	for _, tc := range cases {
		vs := geoparquet.Validate(withColumnField("bbox", numArr(tc.n)))
		if tc.valid {
			if len(vs) != 0 {
				t.Fatalf("bbox of %d: expected a pass, got %v", tc.n, vs)
			}
			continue
		}
		if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidLength {
			t.Fatalf("bbox of %d: expected one length violation, got %v", tc.n, vs)
		}
		if vs[0].Path != "columns.geometry.bbox" {
			t.Fatalf("bbox of %d: unexpected path %q", tc.n, vs[0].Path)
		}
	}
}

func TestValidate_BboxElementType(t *testing.T) {
	bad := geometa.Arr(geometa.Int(0), geometa.Str("oops"), geometa.Int(0), geometa.Int(0))
	vs := geoparquet.Validate(withColumnField("bbox", bad))
	if len(vs) != 1 {
		t.Fatalf("expected exactly one violation, got %v", vs)
	}
	if vs[0].Path != "columns.geometry.bbox[1]" || vs[0].Code != geometa.CodeInvalidType {
		t.Fatalf("unexpected violation %+v", vs[0])
	}
}

func TestValidate_Crs(t *testing.T) {
	if vs := geoparquet.Validate(withColumnField("crs", geometa.Null())); len(vs) != 0 {
		t.Fatalf("null crs: expected a pass, got %v", vs)
	}
	if vs := geoparquet.Validate(withColumnField("crs", geometa.Obj())); len(vs) != 0 {
		t.Fatalf("object crs: expected a pass, got %v", vs)
	}
	vs := geoparquet.Validate(withColumnField("crs", geometa.Str("EPSG:4326")))
	if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidType || vs[0].Path != "columns.geometry.crs" {
		t.Fatalf("string crs: expected one type violation, got %v", vs)
	}
}

func TestValidate_Orientation(t *testing.T) {
	if vs := geoparquet.Validate(withColumnField("orientation", geometa.Str("counterclockwise"))); len(vs) != 0 {
		t.Fatalf("expected a pass, got %v", vs)
	}
	vs := geoparquet.Validate(withColumnField("orientation", geometa.Str("clockwise")))
	if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidEnum {
		t.Fatalf("expected one enum violation, got %v", vs)
	}
}

func TestValidate_Edges(t *testing.T) {
	for _, ok := range []string{"planar", "spherical"} {
		if vs := geoparquet.Validate(withColumnField("edges", geometa.Str(ok))); len(vs) != 0 {
			t.Fatalf("%q: expected a pass, got %v", ok, vs)
		}
	}
	vs := geoparquet.Validate(withColumnField("edges", geometa.Str("ellipsoid")))
	if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidEnum {
		t.Fatalf("expected one enum violation, got %v", vs)
	}
}

func TestValidate_Epoch(t *testing.T) {
	if vs := geoparquet.Validate(withColumnField("epoch", geometa.Num(2015.1))); len(vs) != 0 {
		t.Fatalf("expected a pass, got %v", vs)
	}
	vs := geoparquet.Validate(withColumnField("epoch", geometa.Str("2015.1")))
	if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidType {
		t.Fatalf("expected one type violation, got %v", vs)
	}
}

func TestValidate_EncodingVocabulary(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKT")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 || vs[0].Code != geometa.CodeInvalidEnum {
		t.Fatalf("expected one enum violation, got %v", vs)
	}
	if vs[0].Message != `expected one of [WKB], found "WKT"` {
		t.Fatalf("unexpected message %q", vs[0].Message)
	}
	if vs[0].Description == "" {
		t.Fatalf("expected the rule description to be carried")
	}
}

func TestValidate_EmptyColumnsAndEmptyNames(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj()),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 || vs[0].Code != geometa.CodeTooShort || vs[0].Path != "columns" {
		t.Fatalf("empty columns: expected one too_short violation, got %v", vs)
	}

	doc = geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
	vs = geoparquet.Validate(doc)
	found := false
	for _, vi := range vs {
		if vi.Code == geometa.CodeInvalidName && vi.Path == "columns" {
			found = true
		}
	}
	if !found {
		t.Fatalf("empty column name: expected an invalid_name violation, got %v", vs)
	}
}

func TestValidate_EmptyPrimaryColumn(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKB")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 || vs[0].Code != geometa.CodeTooShort || vs[0].Path != "primary_column" {
		t.Fatalf("expected one too_short violation, got %v", vs)
	}
}

func TestValidate_ColumnEntryMustBeObject(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("version", geometa.Str("1.0.0-beta.1")),
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Str("not an object")),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 1 {
		t.Fatalf("expected exactly one violation, got %v", vs)
	}
	if vs[0].Path != "columns.geometry" || vs[0].Code != geometa.CodeInvalidType {
		t.Fatalf("unexpected violation %+v", vs[0])
	}
}

func TestValidate_DocumentViolationsComeBeforeColumnViolations(t *testing.T) {
	doc := geometa.Obj(
		geometa.F("primary_column", geometa.Str("geometry")),
		geometa.F("columns", geometa.Obj(
			geometa.F("geometry", geometa.Obj(
				geometa.F("encoding", geometa.Str("WKT")),
				geometa.F("geometry_types", geometa.Arr()),
			)),
		)),
	)
	vs := geoparquet.Validate(doc)
	if len(vs) != 2 {
		t.Fatalf("expected two violations, got %v", vs)
	}
	if vs[0].Path != "version" || vs[1].Path != "columns.geometry.encoding" {
		t.Fatalf("unexpected ordering: %q then %q", vs[0].Path, vs[1].Path)
	}
}

func TestDecodeMetadata(t *testing.T) {
	bare := `{"version": "1.0.0-beta.1", "primary_column": "geometry", "columns": {"geometry": {"encoding": "WKB", "geometry_types": []}}}`
	wrapped := `{"geo": ` + bare + `}`

	for _, data := range []string{bare, wrapped} {
		doc, err := geoparquet.DecodeMetadata([]byte(data))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		obj, ok := doc.AsObject()
		if !ok || !obj.Has("version") {
			t.Fatalf("expected the metadata object, got %v", doc.Interface())
		}
		if vs := geoparquet.Validate(doc); len(vs) != 0 {
			t.Fatalf("expected a pass, got %v", vs)
		}
	}
}

func TestDecodeMetadata_MalformedIsFormatFault(t *testing.T) {
	_, err := geoparquet.DecodeMetadata([]byte(`{"geo": `))
	if !errors.Is(err, geometa.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("unexpected error text: %v", err)
	}
}
