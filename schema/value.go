// Package schema implements the static type inference engine: it merges the
// structural shapes of a set of per-environment configuration documents,
// validates that the environments agree on structure, and synthesizes a
// TypeScript interface body whose members are literal/union types derived
// from the values actually observed across environments.
package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/confgen/confgen/errors"
)

// Kind discriminates the closed set of value shapes a configuration
// document can contain. The kind is decided once at decode time; every
// downstream component switches on it instead of re-deriving it.
type Kind int

const (
	KindNull Kind = iota
	KindUndefined
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
	KindUnknown
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single node of a configuration document: a tagged variant of
// exactly one of null, string, number, boolean, array or object. Values are
// built by the loader and treated as read-only by every engine component.
type Value struct {
	Kind Kind
	Str  string
	Num  json.Number
	Bool bool
	Arr  []Value
	Obj  map[string]Value
}

// Constructors, mainly for tests and fixtures.

func Null() Value             { return Value{Kind: KindNull} }
func Undefined() Value        { return Value{Kind: KindUndefined} }
func String(s string) Value   { return Value{Kind: KindString, Str: s} }
func Number(n string) Value   { return Value{Kind: KindNumber, Num: json.Number(n)} }
func Bool(b bool) Value       { return Value{Kind: KindBool, Bool: b} }
func Array(elems ...Value) Value {
	return Value{Kind: KindArray, Arr: elems}
}
func Object(fields map[string]Value) Value {
	return Value{Kind: KindObject, Obj: fields}
}

// DefaultEnvironment is the base document that every other environment
// layers over. The consistency validator excludes it from peer comparison.
const DefaultEnvironment = "default"

// EnvironmentSet maps environment names (filename stems) to their decoded
// documents. Ordering is irrelevant; components sort names before iterating
// so that output is deterministic.
type EnvironmentSet map[string]Value

// Names returns the environment names in sorted order.
func (e EnvironmentSet) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeJSON decodes a single JSON document into a Value tree. Numbers are
// kept as json.Number so literal rendering reproduces the source text.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, errors.Wrap(err, "failed to decode JSON document")
	}
	return FromAny(raw), nil
}

// FromAny converts a decoded interface{} tree (encoding/json or yaml.v3
// output) into a Value tree. Shapes outside the closed set map to
// KindUnknown.
func FromAny(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case json.Number:
		return Value{Kind: KindNumber, Num: v}
	case int:
		return Number(strconv.Itoa(v))
	case int64:
		return Number(strconv.FormatInt(v, 10))
	case uint64:
		return Number(strconv.FormatUint(v, 10))
	case float64:
		return Number(strconv.FormatFloat(v, 'f', -1, 64))
	case []interface{}:
		elems := make([]Value, len(v))
		for i, e := range v {
			elems[i] = FromAny(e)
		}
		return Value{Kind: KindArray, Arr: elems}
	case map[string]interface{}:
		fields := make(map[string]Value, len(v))
		for k, e := range v {
			fields[k] = FromAny(e)
		}
		return Value{Kind: KindObject, Obj: fields}
	default:
		return Value{Kind: KindUnknown}
	}
}

// Classify returns the discriminant of a value. Callers route containers
// (arrays, objects) elsewhere; this is total over the whole domain.
func Classify(v Value) Kind {
	return v.Kind
}

// RenderLiteral renders a non-container value as a TypeScript literal type
// token. String literals are single-quoted with embedded single quotes
// backslash-escaped; no other characters are altered. Containers passed
// here render as the fallback token "unknown".
func RenderLiteral(v Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindString:
		return "'" + strings.ReplaceAll(v.Str, "'", `\'`) + "'"
	case KindNumber:
		return v.Num.String()
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "unknown"
	}
}

// Equal reports deep structural equality between two values. Numbers compare
// by their source literal, arrays element-wise in order, objects key-wise.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num.String() == o.Num.String()
	case KindBool:
		return v.Bool == o.Bool
	case KindArray:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(o.Arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Obj) != len(o.Obj) {
			return false
		}
		for k, a := range v.Obj {
			b, ok := o.Obj[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	default:
		// Null, Undefined and Unknown carry no payload.
		return true
	}
}

// ValueSet is the deduplicated set of leaf values observed at one property
// path across all environments that define it. Insertion order is preserved
// so that union rendering is stable across runs.
type ValueSet struct {
	values []Value
}

// Add appends v unless a structurally equal value is already present.
// Returns true if the value was added.
func (s *ValueSet) Add(v Value) bool {
	for _, existing := range s.values {
		if existing.Equal(v) {
			return false
		}
	}
	s.values = append(s.values, v)
	return true
}

// Values returns the members in insertion order. The returned slice is the
// set's backing storage; callers must not mutate it.
func (s *ValueSet) Values() []Value {
	return s.values
}

// Len returns the number of distinct values in the set.
func (s *ValueSet) Len() int {
	return len(s.values)
}

// joinPath extends a dotted property path with one more key.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
