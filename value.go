package geometa

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind enumerates the closed set of document value variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Value is one node of a metadata document: a JSON-like tagged variant. The
// zero Value is invalid; a Value never mutates after construction. Numbers are
// carried as json.Number text so integers and floats validate uniformly.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	arr  []Value
	obj  *Object
}

// Kind reports the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload when the value is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number payload as json.Number text.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.num, true
}

// AsFloat returns the number payload as a float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsBool returns the bool payload when the value is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsArray returns the element slice when the value is an array. Callers must
// not mutate the returned slice.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the object payload when the value is an object.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Interface converts the value back into a generic Go tree (map[string]any,
// []any, string, json.Number, bool, nil). Object key order is not carried over;
// consumers needing order keep the Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindObject:
		m := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.keys {
			m[k] = v.obj.vals[k].Interface()
		}
		return m
	case KindArray:
		out := make([]any, len(v.arr))
		for i, it := range v.arr {
			out[i] = it.Interface()
		}
		return out
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Object is an order-preserving map of string keys to Values. Key order is
// what makes violation ordering deterministic, so objects never degrade to a
// plain Go map.
type Object struct {
	keys []string
	vals map[string]Value
}

// Len reports the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the entry keys in insertion order. The returned slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Member pairs a key with its value for object construction.
type Member struct {
	Key   string
	Value Value
}

// F builds one object member.
func F(key string, v Value) Member { return Member{Key: key, Value: v} }

// Obj builds an object value. A repeated key keeps its first position and
// takes the last value, matching JSON decoder behavior.
func Obj(members ...Member) Value {
	o := &Object{vals: make(map[string]Value, len(members))}
	for _, m := range members {
		if _, dup := o.vals[m.Key]; !dup {
			o.keys = append(o.keys, m.Key)
		}
		o.vals[m.Key] = m.Value
	}
	return Value{kind: KindObject, obj: o}
}

// Arr builds an array value.
func Arr(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Str builds a string value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Num builds a number value from a float64.
func Num(f float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// Int builds a number value from an int64.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(n, 10))}
}

// Bool builds a bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null builds an explicit null value.
func Null() Value { return Value{kind: KindNull} }

func numberValue(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// FromAny converts a generic decoded tree (as produced by encoding/json-style
// Unmarshal into any) to a Value. Map keys are sorted so that documents built
// from unordered Go maps still validate deterministically; callers that need
// the original key order should decode with DecodeJSON instead.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return numberValue(t), nil
	case float64:
		return Num(t), nil
	case float32:
		return Num(float64(t)), nil
	case int:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(int64(t)), nil
	case uint64:
		return numberValue(json.Number(strconv.FormatUint(t, 10))), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, it := range t {
			cv, err := FromAny(it)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, cv)
		}
		return Arr(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			cv, err := FromAny(t[k])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			members = append(members, F(k, cv))
		}
		return Obj(members...), nil
	default:
		return Value{}, fmt.Errorf("geometa: unsupported value type %T", v)
	}
}
