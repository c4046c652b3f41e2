package geometa

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by
// convention). The taxonomy maps onto four families: structural (required,
// invalid_name), type (invalid_type), enum (invalid_enum), and cardinality
// (invalid_length, duplicate_item, too_short).
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidLength = "invalid_length"
	CodeDuplicateItem = "duplicate_item"
	CodeTooShort      = "too_short"
	CodeInvalidName   = "invalid_name"
	CodeParseError    = "parse_error"
)

// Violation represents a single constraint failure.
type Violation struct {
	Path    string // Dotted location (for example: columns.geometry.bbox[2]).
	Code    string // One of the codes listed above.
	Message string
	// Description carries the originating rule's explanation verbatim when the
	// rule supplies one.
	Description string
	// Params carries structured parameters (e.g., {"expected":"WKB",
	// "found":"WKT"}) for i18n and observability.
	Params map[string]any
	// Rule optionally records the rule target that produced this violation.
	Rule string
}

// Violations is an ordered collection of constraint failures that implements
// error. An empty collection means the document is valid.
type Violations []Violation

// Valid reports whether the collection is empty.
func (vs Violations) Valid() bool { return len(vs) == 0 }

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(vs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := vs[i]
		// e.g. invalid_type at columns.geometry.crs
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	return append(dst, more...)
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
