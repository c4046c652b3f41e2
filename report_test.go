package geometa_test

import (
	"testing"

	geometa "github.com/geoparq/geometa"
)

func TestRender_PassesDescriptionThroughVerbatim(t *testing.T) {
	vi := geometa.Violation{
		Path:        "columns.geometry.encoding",
		Code:        geometa.CodeInvalidEnum,
		Message:     `expected one of [WKB], found "WKT"`,
		Description: "geometry encoding; only WKB is defined",
	}
	r := geometa.Render(vi)
	if r.Path != vi.Path || r.Message != vi.Message || r.Description != vi.Description {
		t.Fatalf("unexpected report: %+v", r)
	}
	want := `columns.geometry.encoding: expected one of [WKB], found "WKT". geometry encoding; only WKB is defined`
	if got := r.String(); got != want {
		t.Fatalf("unexpected rendering:\n got %q\nwant %q", got, want)
	}
}

func TestRender_OmitsAbsentDescription(t *testing.T) {
	r := geometa.Render(geometa.Violation{Path: "version", Message: "required property \"version\" is missing"})
	if got := r.String(); got != `version: required property "version" is missing` {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestRenderAll_PreservesOrder(t *testing.T) {
	vs := geometa.Violations{
		{Path: "version", Message: "a"},
		{Path: "columns", Message: "b"},
	}
	rs := geometa.RenderAll(vs)
	if len(rs) != 2 || rs[0].Path != "version" || rs[1].Path != "columns" {
		t.Fatalf("unexpected reports: %+v", rs)
	}
	if geometa.RenderAll(nil) != nil {
		t.Fatalf("no violations must render to no reports")
	}
}
