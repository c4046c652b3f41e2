package geometa

// Report is the rendered, human-facing form of a Violation: where it happened,
// what constraint failed, and the rule's own explanation when it has one.
type Report struct {
	Path        string `json:"path"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// String renders "path: message. description" with the description omitted
// when the rule supplied none.
func (r Report) String() string {
	s := r.Path + ": " + r.Message
	if r.Description != "" {
		s += ". " + r.Description
	}
	return s
}

// Render converts one violation into a report. The description is a
// pass-through from the originating rule, never inferred.
func Render(v Violation) Report {
	return Report{Path: v.Path, Message: v.Message, Description: v.Description}
}

// RenderAll converts a violation list into reports, preserving order.
func RenderAll(vs Violations) []Report {
	if len(vs) == 0 {
		return nil
	}
	out := make([]Report, len(vs))
	for i, v := range vs {
		out[i] = Render(v)
	}
	return out
}
