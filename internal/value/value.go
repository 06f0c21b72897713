// Package value implements ObjectIR's tagged Value variant and its
// numeric/string/bool coercion rules.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tag discriminates the variant held by a Value.
type Tag int

const (
	TagNull Tag = iota
	TagInt32
	TagInt64
	TagFloat32
	TagFloat64
	TagBool
	TagString
	TagObject
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagInt32:
		return "int32"
	case TagInt64:
		return "int64"
	case TagFloat32:
		return "float32"
	case TagFloat64:
		return "float64"
	case TagBool:
		return "bool"
	case TagString:
		return "string"
	case TagObject:
		return "object"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference to a heap-allocated Object or Array. The
// value package never dereferences it; internal/object owns that.
type Handle interface {
	// ClassName distinguishes objects from arrays for isinst/castclass
	// without importing internal/object (would create an import cycle,
	// the same IClassInfo-style seam the teacher uses between
	// interp/runtime and interp/types).
	ClassName() string
}

// Value is ObjectIR's tagged variant: null | int32 | int64 | float32 |
// float64 | bool | string | object-handle.
type Value struct {
	tag Tag
	i   int64
	f   float64
	s   string
	obj Handle
}

// Null is the zero Value.
var Null = Value{tag: TagNull}

func Int32(v int32) Value   { return Value{tag: TagInt32, i: int64(v)} }
func Int64(v int64) Value   { return Value{tag: TagInt64, i: v} }
func Float32(v float32) Value { return Value{tag: TagFloat32, f: float64(v)} }
func Float64(v float64) Value { return Value{tag: TagFloat64, f: v} }
func Bool(v bool) Value {
	if v {
		return Value{tag: TagBool, i: 1}
	}
	return Value{tag: TagBool, i: 0}
}
func String(v string) Value  { return Value{tag: TagString, s: v} }
func Object(h Handle) Value {
	if h == nil {
		return Null
	}
	return Value{tag: TagObject, obj: h}
}

func (v Value) Tag() Tag     { return v.tag }
func (v Value) IsNull() bool { return v.tag == TagNull }

func (v Value) AsInt32() int32     { return int32(v.i) }
func (v Value) AsInt64() int64     { return v.i }
func (v Value) AsFloat32() float32 { return float32(v.f) }
func (v Value) AsFloat64() float64 { return v.f }
func (v Value) AsBool() bool       { return v.i != 0 }
func (v Value) AsString() string   { return v.s }
func (v Value) AsObject() Handle   { return v.obj }

// String renders v for diagnostics and for the console sink's default
// representation (null prints as empty).
func (v Value) String() string {
	switch v.tag {
	case TagNull:
		return ""
	case TagInt32:
		return strconv.FormatInt(v.i, 10)
	case TagInt64:
		return strconv.FormatInt(v.i, 10)
	case TagFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case TagFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TagBool:
		return strconv.FormatBool(v.AsBool())
	case TagString:
		return v.s
	case TagObject:
		if v.obj == nil {
			return ""
		}
		return fmt.Sprintf("<%s>", v.obj.ClassName())
	default:
		return ""
	}
}

const floatEpsilon = 1e-9

// ToBool coerces v to bool: numbers are truthy away from zero, strings
// truthy when non-empty, objects truthy when non-null.
func ToBool(v Value) bool {
	switch v.tag {
	case TagNull:
		return false
	case TagBool:
		return v.AsBool()
	case TagInt32, TagInt64:
		return v.i != 0
	case TagFloat32, TagFloat64:
		return math.Abs(v.f) > floatEpsilon
	case TagString:
		return v.s != ""
	case TagObject:
		return v.obj != nil
	default:
		return false
	}
}

// ToInt64 coerces v to int64, parsing strings and truncating floats.
func ToInt64(v Value) (int64, error) {
	switch v.tag {
	case TagNull:
		return 0, nil
	case TagBool:
		if v.AsBool() {
			return 1, nil
		}
		return 0, nil
	case TagInt32, TagInt64:
		return v.i, nil
	case TagFloat32, TagFloat64:
		return int64(v.f), nil
	case TagString:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as int64: %w", v.s, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot coerce %s to int64", v.tag)
	}
}

// ToFloat64 coerces v to float64, parsing strings.
func ToFloat64(v Value) (float64, error) {
	switch v.tag {
	case TagNull:
		return 0, nil
	case TagBool:
		if v.AsBool() {
			return 1, nil
		}
		return 0, nil
	case TagInt32, TagInt64:
		return float64(v.i), nil
	case TagFloat32, TagFloat64:
		return v.f, nil
	case TagString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as float64: %w", v.s, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot coerce %s to float64", v.tag)
	}
}

// IsNumeric reports whether v's tag is one of the four numeric variants.
func IsNumeric(v Value) bool {
	switch v.tag {
	case TagInt32, TagInt64, TagFloat32, TagFloat64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether v's tag is float32 or float64.
func IsFloat(v Value) bool {
	return v.tag == TagFloat32 || v.tag == TagFloat64
}

// Equal is component-wise equality. Values of different tags are never
// equal, except that numeric tags compare by coerced value so that e.g.
// int32(1) equals int64(1) under `ceq` in mixed arithmetic.
func Equal(a, b Value) bool {
	if a.tag == b.tag {
		switch a.tag {
		case TagNull:
			return true
		case TagBool:
			return a.AsBool() == b.AsBool()
		case TagString:
			return a.s == b.s
		case TagObject:
			return a.obj == b.obj
		default:
			return numericEqual(a, b)
		}
	}
	if IsNumeric(a) && IsNumeric(b) {
		return numericEqual(a, b)
	}
	return false
}

func numericEqual(a, b Value) bool {
	if IsFloat(a) || IsFloat(b) {
		af, _ := ToFloat64(a)
		bf, _ := ToFloat64(b)
		return math.Abs(af-bf) <= floatEpsilon
	}
	ai, _ := ToInt64(a)
	bi, _ := ToInt64(b)
	return ai == bi
}

// Hash returns a hash suitable for use as a hashed-set/keyed-mapping key.
func Hash(v Value) uint64 {
	const fnvOffset = 14695981039346656037
	const fnvPrime = 1099511628211
	h := uint64(fnvOffset)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= fnvPrime
	}
	mixString := func(s string) {
		for i := 0; i < len(s); i++ {
			mix(s[i])
		}
	}
	switch v.tag {
	case TagNull:
		mixString("null")
	case TagBool:
		mixString("bool")
		if v.AsBool() {
			mix(1)
		} else {
			mix(0)
		}
	case TagString:
		mixString("string")
		mixString(v.s)
	case TagObject:
		mixString("object")
		mixString(fmt.Sprintf("%p", v.obj))
	default:
		// All numeric tags hash on their float64 representation so that
		// Equal's cross-tag numeric equality is respected by hashed
		// collections.
		f, _ := ToFloat64(v)
		mixString("num")
		mixString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return h
}
