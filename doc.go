package geometa

// Package geometa validates the "geo" metadata that columnar geospatial files
// (GeoParquet) embed in their footer to declare geometry columns.
//
// It provides:
//
// - A closed document model (Object/Array/String/Number/Bool/Null) with typed,
//   non-throwing accessors and order-preserving objects
// - A stable violation model (dotted path, code, message) that accumulates
//   every defect in one pass instead of failing fast
// - A diagnostics reporter that renders violations into location-tagged,
//   human-actionable records
//
// Design policy:
// - Keep only core types in the root package; the rule interpreter lives under
//   ruleset/, the canonical GeoParquet rules under geoparquet/, the fixture
//   corpus under conformance/, and the CLI under cmd/geometa.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := geoparquet.DecodeMetadata(raw)
//	violations := geoparquet.Validate(doc)
//	for _, r := range geometa.RenderAll(violations) {
//		fmt.Println(r)
//	}
