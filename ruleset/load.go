package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	geometa "github.com/geoparq/geometa"
)

// ruleSpec is the on-disk form of one rule. The file is YAML, which also
// covers JSON documents:
//
//	version: "1.0.0"
//	rules:
//	  - target: columns.*.encoding
//	    kind: enum
//	    values: [WKB]
//	    description: geometry encoding
type ruleSpec struct {
	Target      string   `yaml:"target"`
	Kind        string   `yaml:"kind"`
	Types       []string `yaml:"types,omitempty"`
	Values      []string `yaml:"values,omitempty"`
	Lengths     []int    `yaml:"lengths,omitempty"`
	Elementwise bool     `yaml:"elementwise,omitempty"`
	Check       string   `yaml:"check,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

type ruleFile struct {
	Version string     `yaml:"version"`
	Rules   []ruleSpec `yaml:"rules"`
}

// Load reads a versioned rule-set document from r. Unknown constraint kinds,
// unknown type names, and unregistered custom checks are load errors; this is
// startup-time configuration, not the validation hot path.
func Load(r io.Reader) (*RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read: %w", err)
	}
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ruleset: decode: %w", err)
	}
	if f.Version == "" {
		return nil, errors.New("ruleset: missing version")
	}
	rs := &RuleSet{Version: f.Version, Rules: make([]Rule, 0, len(f.Rules))}
	for i, spec := range f.Rules {
		rule, err := spec.rule()
		if err != nil {
			return nil, fmt.Errorf("ruleset: rule %d (%q): %w", i, spec.Target, err)
		}
		rs.Rules = append(rs.Rules, rule)
	}
	return rs, nil
}

// LoadFile reads a rule-set document from path.
func LoadFile(path string) (*RuleSet, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: open: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

func (s ruleSpec) rule() (Rule, error) {
	if s.Target == "" {
		return Rule{}, errors.New("missing target")
	}
	r := Rule{
		Target:      s.Target,
		Values:      s.Values,
		Lengths:     s.Lengths,
		Elementwise: s.Elementwise,
		Check:       s.Check,
		Description: s.Description,
	}
	switch Kind(s.Kind) {
	case Required:
		r.Kind = Required
	case Type:
		r.Kind = Type
		if len(s.Types) == 0 {
			return Rule{}, errors.New("type rule needs at least one type name")
		}
		for _, name := range s.Types {
			k, err := kindFromName(name)
			if err != nil {
				return Rule{}, err
			}
			r.Want = append(r.Want, k)
		}
	case Enum:
		r.Kind = Enum
		if len(s.Values) == 0 {
			return Rule{}, errors.New("enum rule needs a non-empty vocabulary")
		}
	case UniqueItems:
		r.Kind = UniqueItems
	case Length:
		r.Kind = Length
		if len(s.Lengths) == 0 {
			return Rule{}, errors.New("array-length rule needs accepted lengths")
		}
	case Custom:
		r.Kind = Custom
		if _, ok := lookupCheck(s.Check); !ok {
			return Rule{}, fmt.Errorf("unknown check %q", s.Check)
		}
	default:
		return Rule{}, fmt.Errorf("unknown kind %q", s.Kind)
	}
	return r, nil
}

func kindFromName(name string) (geometa.Kind, error) {
	switch name {
	case "object":
		return geometa.KindObject, nil
	case "array":
		return geometa.KindArray, nil
	case "string":
		return geometa.KindString, nil
	case "number":
		return geometa.KindNumber, nil
	case "bool", "boolean":
		return geometa.KindBool, nil
	case "null":
		return geometa.KindNull, nil
	default:
		return geometa.KindInvalid, fmt.Errorf("unknown type name %q", name)
	}
}
