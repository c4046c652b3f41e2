package ruleset

import (
	"sync"

	geometa "github.com/geoparq/geometa"
)

// CheckFunc evaluates a custom predicate against the value found at a rule
// target. p identifies the target location for any minted violations. A check
// only sees present values; absence is the Required kind's concern.
type CheckFunc func(p geometa.Path, v geometa.Value) geometa.Violations

var (
	checksMu sync.RWMutex
	checks   = map[string]CheckFunc{
		"non-empty-string":      checkNonEmptyString,
		"non-empty-object":      checkNonEmptyObject,
		"object-keys-non-empty": checkObjectKeysNonEmpty,
		"object-or-null":        checkObjectOrNull,
	}
)

// RegisterCheck makes a named predicate available to rule-set files. Intended
// for process startup; later registrations replace earlier ones.
func RegisterCheck(name string, fn CheckFunc) {
	if name == "" || fn == nil {
		return
	}
	checksMu.Lock()
	checks[name] = fn
	checksMu.Unlock()
}

func lookupCheck(name string) (CheckFunc, bool) {
	checksMu.RLock()
	fn, ok := checks[name]
	checksMu.RUnlock()
	return fn, ok
}

func checkNonEmptyString(p geometa.Path, v geometa.Value) geometa.Violations {
	// non-strings are the type rule's job
	if s, ok := v.AsString(); ok && s == "" {
		return geometa.Violations{p.Violation(geometa.CodeTooShort, "must not be an empty string", "minLength", 1)}
	}
	return nil
}

func checkNonEmptyObject(p geometa.Path, v geometa.Value) geometa.Violations {
	if o, ok := v.AsObject(); ok && o.Len() == 0 {
		return geometa.Violations{p.Violation(geometa.CodeTooShort, "at least one entry is required", "minProperties", 1)}
	}
	return nil
}

// checkObjectOrNull is the structured-or-absent-CRS shape as a named predicate,
// for rule-set files that prefer a check over a two-kind type rule.
func checkObjectOrNull(p geometa.Path, v geometa.Value) geometa.Violations {
	if v.Kind() == geometa.KindObject || v.Kind() == geometa.KindNull {
		return nil
	}
	return geometa.Violations{p.Violation(geometa.CodeInvalidType,
		"expected object or null, found "+v.Kind().String(),
		"expected", "object or null", "found", v.Kind().String())}
}

func checkObjectKeysNonEmpty(p geometa.Path, v geometa.Value) geometa.Violations {
	o, ok := v.AsObject()
	if !ok {
		return nil
	}
	var out geometa.Violations
	for _, k := range o.Keys() {
		if k == "" {
			out = append(out, p.Violation(geometa.CodeInvalidName, "entry names must be non-empty strings"))
		}
	}
	return out
}
