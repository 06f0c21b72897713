package module

import (
	"strings"

	"github.com/charlie-sans/ObjectRuntime/pkg/ident"
)

// Primitive enumerates the built-in scalar kinds a TypeReference may name.
type Primitive string

const (
	Void    Primitive = "void"
	Bool    Primitive = "bool"
	Int8    Primitive = "int8"
	UInt8   Primitive = "uint8"
	Int16   Primitive = "int16"
	UInt16  Primitive = "uint16"
	Int32   Primitive = "int32"
	UInt32  Primitive = "uint32"
	Int64   Primitive = "int64"
	UInt64  Primitive = "uint64"
	Float32 Primitive = "float32"
	Float64 Primitive = "float64"
	Char    Primitive = "char"
	String  Primitive = "string"
	Object  Primitive = "object"
)

// TypeReference names a type: either a Primitive or a reference to a Class
// by its canonical (normalized) name, optionally as an array-of-T.
type TypeReference struct {
	// Name is the normalized spelling: a Primitive value, or a class's
	// normalized qualified name.
	Name    string
	IsArray bool
}

// ElementType returns the TypeReference of a single element, dropping the
// array-ness. Valid to call regardless of IsArray; callers check IsArray
// first.
func (t TypeReference) ElementType() TypeReference {
	return TypeReference{Name: t.Name, IsArray: false}
}

func (t TypeReference) String() string {
	if t.IsArray {
		return t.Name + "[]"
	}
	return t.Name
}

// aliasTable maps recognized spellings (already case-folded) to their
// canonical primitive name.
var aliasTable = map[string]string{
	"system.void":    string(Void),
	"void":           string(Void),
	"system.string":  string(String),
	"string":         string(String),
	"system.boolean": string(Bool),
	"boolean":        string(Bool),
	"bool":           string(Bool),
	"system.int32":   string(Int32),
	"int32":          string(Int32),
	"int":            string(Int32),
	"system.int64":   string(Int64),
	"int64":          string(Int64),
	"long":           string(Int64),
	"system.single":  string(Float32),
	"single":         string(Float32),
	"float":          string(Float32),
	"float32":        string(Float32),
	"system.double":  string(Float64),
	"double":         string(Float64),
	"float64":        string(Float64),
	"system.byte":    string(UInt8),
	"byte":           string(UInt8),
	"uint8":          string(UInt8),
	"system.sbyte":   string(Int8),
	"sbyte":          string(Int8),
	"int8":           string(Int8),
	"system.int16":   string(Int16),
	"int16":          string(Int16),
	"short":          string(Int16),
	"system.uint16":  string(UInt16),
	"uint16":         string(UInt16),
	"system.uint32":  string(UInt32),
	"uint32":         string(UInt32),
	"system.uint64":  string(UInt64),
	"uint64":         string(UInt64),
	"system.char":    string(Char),
	"char":           string(Char),
	"system.object":  string(Object),
	"object":         string(Object),
}

// NormalizeTypeName maps a textual type spelling to its canonical form.
// Normalization is idempotent: NormalizeTypeName(NormalizeTypeName(s)) ==
// NormalizeTypeName(s). Names not present in the alias table (user class
// names) are returned case-folded via ident.Normalize, which is itself
// idempotent.
func NormalizeTypeName(name string) string {
	folded := ident.Normalize(strings.TrimSpace(name))
	array := strings.HasSuffix(folded, "[]")
	base := strings.TrimSuffix(folded, "[]")
	if canon, ok := aliasTable[base]; ok {
		base = canon
	}
	if array {
		return base + "[]"
	}
	return base
}

// ParseTypeReference normalizes a textual type spelling into a
// TypeReference, splitting off a trailing "[]" array marker.
func ParseTypeReference(spelling string) TypeReference {
	folded := ident.Normalize(strings.TrimSpace(spelling))
	array := strings.HasSuffix(folded, "[]")
	base := strings.TrimSuffix(folded, "[]")
	if canon, ok := aliasTable[base]; ok {
		base = canon
	}
	return TypeReference{Name: base, IsArray: array}
}

// IsPrimitive reports whether name (already normalized) names a Primitive
// rather than a class.
func IsPrimitive(name string) bool {
	switch Primitive(name) {
	case Void, Bool, Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64,
		Float32, Float64, Char, String, Object:
		return true
	default:
		return false
	}
}
