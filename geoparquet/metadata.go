package geoparquet

import (
	geometa "github.com/geoparq/geometa"
	"github.com/geoparq/geometa/ruleset"
)

// DecodeMetadata decodes the raw bytes stored under the reserved "geo" key of
// a Parquet footer. Both the bare metadata object and a {"geo": {...}} wrapper
// are accepted; a wrapper is recognized by a lone "geo" key, which never
// collides with a bare document since that shape misses every required field
// anyway. Decode failures are format faults (geometa.ErrFormat), distinct from
// validation results.
func DecodeMetadata(data []byte) (geometa.Value, error) {
	v, err := geometa.DecodeJSON(data)
	if err != nil {
		return geometa.Value{}, err
	}
	if obj, ok := v.AsObject(); ok && obj.Len() == 1 {
		if inner, ok := obj.Get("geo"); ok {
			return inner, nil
		}
	}
	return v, nil
}

// Validate checks doc against the canonical rule set.
func Validate(doc geometa.Value) geometa.Violations {
	return ruleset.Validate(doc, Current())
}

// IsValid reports whether doc satisfies the canonical rule set.
func IsValid(doc geometa.Value) bool {
	return Validate(doc).Valid()
}
