package ruleset

import (
	"strconv"
	"strings"

	geometa "github.com/geoparq/geometa"
	"github.com/geoparq/geometa/i18n"
)

// Validate walks doc against rs and accumulates every violation in one pass;
// no check short-circuits its siblings, so a caller can fix all defects from a
// single invocation. The engine is total over any well-formed Value: malformed
// documents produce violations, never errors or panics.
//
// Ordering is deterministic: document-level rules in declaration order, then
// wildcard groups entry by entry in object key order, with rules in declaration
// order within each entry.
func Validate(doc geometa.Value, rs *RuleSet) geometa.Violations {
	root, ok := doc.AsObject()
	if !ok {
		return geometa.Violations{typeViolation(geometa.Root(), doc.Kind(), []geometa.Kind{geometa.KindObject})}
	}
	var out geometa.Violations
	for _, r := range rs.Rules {
		if r.wildcardIndex() >= 0 {
			continue
		}
		out = append(out, applyAt(geometa.Root(), root, r.segments(), r)...)
	}
	return append(out, applyWildcards(root, rs)...)
}

// applyWildcards evaluates every "prefix.*" rule group. Entries that are not
// objects get exactly one invalid-entry violation and no field-level checks,
// since the engine cannot descend into a scalar.
func applyWildcards(root *geometa.Object, rs *RuleSet) geometa.Violations {
	type group struct {
		prefix []string
		rules  []Rule
	}
	var groups []group
	index := map[string]int{}
	for _, r := range rs.Rules {
		wi := r.wildcardIndex()
		if wi < 0 {
			continue
		}
		segs := r.segments()
		key := strings.Join(segs[:wi], ".")
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, group{prefix: segs[:wi]})
		}
		groups[gi].rules = append(groups[gi].rules, r)
	}

	var out geometa.Violations
	for _, g := range groups {
		container, base, ok := descend(root, geometa.Root(), g.prefix)
		if !ok {
			// missing or mistyped container; document-level rules already
			// reported it and nested checks cannot run
			continue
		}
		for _, key := range container.Keys() {
			entry, _ := container.Get(key)
			entryPath := base.Field(key)
			entryObj, isObj := entry.AsObject()
			if !isObj {
				out = append(out, typeViolation(entryPath, entry.Kind(), []geometa.Kind{geometa.KindObject}))
				continue
			}
			for _, r := range g.rules {
				rel := r.segments()[r.wildcardIndex()+1:]
				if len(rel) == 0 {
					continue // entry shape is enforced above
				}
				out = append(out, applyAt(entryPath, entryObj, rel, r)...)
			}
		}
	}
	return out
}

// descend resolves a dotted prefix to the object it names, failing quietly
// when a hop is absent or not an object.
func descend(o *geometa.Object, p geometa.Path, segs []string) (*geometa.Object, geometa.Path, bool) {
	cur := o
	for _, s := range segs {
		v, ok := cur.Get(s)
		if !ok {
			return nil, nil, false
		}
		next, ok := v.AsObject()
		if !ok {
			return nil, nil, false
		}
		cur = next
		p = p.Field(s)
	}
	return cur, p, true
}

// applyAt evaluates one rule with target path rel, relative to scope.
func applyAt(base geometa.Path, scope *geometa.Object, rel []string, r Rule) geometa.Violations {
	p := base
	cur := scope
	for i := 0; i < len(rel)-1; i++ {
		v, ok := cur.Get(rel[i])
		if !ok {
			return nil
		}
		obj, ok := v.AsObject()
		if !ok {
			return nil
		}
		p = p.Field(rel[i])
		cur = obj
	}
	leaf := rel[len(rel)-1]
	p = p.Field(leaf)
	v, present := cur.Get(leaf)

	if r.Kind == Required {
		if present {
			return nil
		}
		msg := i18n.T(geometa.CodeRequired, map[string]string{"key": leaf})
		return geometa.Violations{tag(p.Violation(geometa.CodeRequired, msg, "key", leaf), r)}
	}
	if !present {
		return nil // presence is the Required kind's concern
	}

	switch r.Kind {
	case Type:
		return checkType(p, v, r)
	case Enum:
		return checkEnum(p, v, r)
	case UniqueItems:
		return checkUnique(p, v, r)
	case Length:
		return checkLength(p, v, r)
	case Custom:
		fn, ok := lookupCheck(r.Check)
		if !ok {
			return nil
		}
		return tagAll(fn(p, v), r)
	}
	return nil
}

func checkType(p geometa.Path, v geometa.Value, r Rule) geometa.Violations {
	if r.Elementwise {
		items, ok := v.AsArray()
		if !ok {
			return nil // the array-shape rule reports mistyped containers
		}
		var out geometa.Violations
		for i, it := range items {
			if !kindAllowed(it.Kind(), r.Want) {
				out = append(out, tag(typeViolation(p.Index(i), it.Kind(), r.Want), r))
			}
		}
		return out
	}
	if kindAllowed(v.Kind(), r.Want) {
		return nil
	}
	return geometa.Violations{tag(typeViolation(p, v.Kind(), r.Want), r)}
}

func checkEnum(p geometa.Path, v geometa.Value, r Rule) geometa.Violations {
	if r.Elementwise {
		items, ok := v.AsArray()
		if !ok {
			return nil
		}
		var out geometa.Violations
		for i, it := range items {
			s, ok := it.AsString()
			if !ok {
				continue // the element-type rule reports non-strings
			}
			if !stringIn(r.Values, s) {
				out = append(out, tag(enumViolation(p.Index(i), s, r.Values), r))
			}
		}
		return out
	}
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	if stringIn(r.Values, s) {
		return nil
	}
	return geometa.Violations{tag(enumViolation(p, s, r.Values), r)}
}

// checkUnique reports every repeated element, each cited at the index of its
// duplicate occurrence. Elements compare by exact value equality.
func checkUnique(p geometa.Path, v geometa.Value, r Rule) geometa.Violations {
	items, ok := v.AsArray()
	if !ok {
		return nil
	}
	seen := map[string]int{}
	var out geometa.Violations
	for i, it := range items {
		key := elementKey(it)
		if first, dup := seen[key]; dup {
			msg := i18n.T(geometa.CodeDuplicateItem, map[string]string{
				"value": renderScalar(it),
				"index": strconv.Itoa(i),
			})
			out = append(out, tag(p.Index(i).Violation(geometa.CodeDuplicateItem, msg,
				"first", first, "index", i, "value", renderScalar(it)), r))
		} else {
			seen[key] = i
		}
	}
	return out
}

// checkLength evaluates length membership independently of element
// type-correctness; a wrong-length, wrong-type array reports both defects.
func checkLength(p geometa.Path, v geometa.Value, r Rule) geometa.Violations {
	items, ok := v.AsArray()
	if !ok {
		return nil
	}
	for _, n := range r.Lengths {
		if len(items) == n {
			return nil
		}
	}
	expected := joinInts(r.Lengths, " or ")
	msg := i18n.T(geometa.CodeInvalidLength, map[string]string{
		"expected": expected,
		"found":    strconv.Itoa(len(items)),
	})
	return geometa.Violations{tag(p.Violation(geometa.CodeInvalidLength, msg,
		"expected", r.Lengths, "found", len(items)), r)}
}

// ---- violation construction helpers ----

func tag(vi geometa.Violation, r Rule) geometa.Violation {
	vi.Description = r.Description
	vi.Rule = r.Target
	return vi
}

func tagAll(vs geometa.Violations, r Rule) geometa.Violations {
	for i := range vs {
		vs[i].Description = r.Description
		vs[i].Rule = r.Target
	}
	return vs
}

func typeViolation(p geometa.Path, got geometa.Kind, want []geometa.Kind) geometa.Violation {
	expected := kindList(want)
	msg := i18n.T(geometa.CodeInvalidType, map[string]string{"expected": expected, "found": got.String()})
	return p.Violation(geometa.CodeInvalidType, msg, "expected", expected, "found", got.String())
}

func enumViolation(p geometa.Path, got string, values []string) geometa.Violation {
	expected := strings.Join(values, ", ")
	msg := i18n.T(geometa.CodeInvalidEnum, map[string]string{
		"expected": expected,
		"found":    strconv.Quote(got),
	})
	return p.Violation(geometa.CodeInvalidEnum, msg, "expected", values, "found", got)
}

func stringIn(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func kindAllowed(k geometa.Kind, want []geometa.Kind) bool {
	for _, w := range want {
		if k == w {
			return true
		}
	}
	return false
}

func kindList(ks []geometa.Kind) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}
	return strings.Join(parts, " or ")
}

func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

// elementKey builds an equality key for uniqueness checks. Scalars compare by
// kind plus raw payload; composite elements compare by their rendered form.
func elementKey(v geometa.Value) string {
	return v.Kind().String() + ":" + renderScalar(v)
}

func renderScalar(v geometa.Value) string {
	switch v.Kind() {
	case geometa.KindString:
		s, _ := v.AsString()
		return s
	case geometa.KindNumber:
		n, _ := v.AsNumber()
		return n.String()
	case geometa.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case geometa.KindNull:
		return "null"
	default:
		data, err := geometa.EncodeJSONIndent(v)
		if err != nil {
			return v.Kind().String()
		}
		return string(data)
	}
}
