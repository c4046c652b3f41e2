// Package geoparquet carries the canonical rule set for GeoParquet "geo"
// metadata: the vocabularies, the constraint list, and helpers for decoding
// and validating the footer blob.
package geoparquet

// Vocabulary tables are built once at init and never mutated afterwards.

// Encodings lists the accepted geometry encodings.
var Encodings = []string{"WKB"}

// GeometryTypes lists the accepted geometry_types vocabulary: the seven base
// types plus their 3-D variants. The 3-D suffix is " Z" with a space
// ("Point Z", never "PointZ").
var GeometryTypes = geometryTypes()

// Orientations lists the accepted polygon winding orders.
var Orientations = []string{"counterclockwise"}

// Edges lists the accepted edge interpolation models.
var Edges = []string{"planar", "spherical"}

func geometryTypes() []string {
	base := []string{
		"Point",
		"LineString",
		"Polygon",
		"MultiPoint",
		"MultiLineString",
		"MultiPolygon",
		"GeometryCollection",
	}
	out := make([]string, 0, 2*len(base))
	out = append(out, base...)
	for _, b := range base {
		out = append(out, b+" Z")
	}
	return out
}
