// Package ruleset models validation constraints as data and interprets them
// against a document. A RuleSet is immutable after construction; one generic
// interpreter (Validate) evaluates any rule set, so schema versions can be
// swapped without touching engine code.
package ruleset

import (
	"strings"

	geometa "github.com/geoparq/geometa"
)

// Kind enumerates the constraint kinds the engine knows how to interpret.
type Kind string

const (
	Required    Kind = "required"
	Type        Kind = "type"
	Enum        Kind = "enum"
	UniqueItems Kind = "unique-items"
	Length      Kind = "array-length"
	Custom      Kind = "custom"
)

// Rule is one declarative constraint against a target path.
type Rule struct {
	// Target is a dotted path. A single "*" segment wildcards over the keys of
	// the object it follows (for example "columns.*.encoding").
	Target string
	Kind   Kind
	// Want lists acceptable kinds for Type rules; any match passes.
	Want []geometa.Kind
	// Values is the Enum vocabulary, compared case-sensitive and exact.
	Values []string
	// Lengths lists accepted array lengths for Length rules.
	Lengths []int
	// Elementwise applies a Type or Enum rule to each array element instead of
	// the value itself.
	Elementwise bool
	// Check names a registered predicate for Custom rules.
	Check string
	// Description is surfaced verbatim on every violation this rule produces.
	Description string
}

func (r Rule) segments() []string { return strings.Split(r.Target, ".") }

// wildcardIndex returns the position of the "*" segment, or -1 for
// document-level rules.
func (r Rule) wildcardIndex() int {
	for i, s := range r.segments() {
		if s == "*" {
			return i
		}
	}
	return -1
}

// RuleSet is an immutable, versioned bundle of rules. Declaration order is
// evaluation order, which keeps violation ordering deterministic.
type RuleSet struct {
	Version string
	Rules   []Rule
}
