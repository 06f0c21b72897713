package module

import (
	"fmt"

	"github.com/charlie-sans/ObjectRuntime/pkg/ident"
)

// Kind is the declared kind of a Type entry. Only Class is executable;
// Interface/Struct/Enum are parsed and registered but never instantiated or
// dispatched to by this core.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindStruct    Kind = "struct"
	KindEnum      Kind = "enum"
)

// Access is a field or method's declared visibility. The core does not
// enforce access control; it is carried through for tooling (disassembly,
// diagnostics) only.
type Access string

const (
	AccessPublic    Access = "public"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
)

// Field is a named, typed slot on a Class.
type Field struct {
	Name     string
	Type     TypeReference
	Static   bool
	ReadOnly bool
	Access   Access
}

// Parameter is a named, typed method argument.
type Parameter struct {
	Name string
	Type TypeReference
}

// LocalVariable is a named, typed method-local slot.
type LocalVariable struct {
	Name string
	Type TypeReference
}

// NativeFunc is a host-implemented method body. self is nil for static
// calls. args is positional, already coerced per the declared parameter
// types is NOT guaranteed — host functions must coerce themselves via the
// value package.
type NativeFunc func(self interface{}, args []interface{}, interp interface{}) (interface{}, error)

// Method is a named routine: either an interpreted instruction list or a
// host-native implementation.
type Method struct {
	Name          string
	ReturnType    TypeReference
	Parameters    []Parameter
	Locals        []LocalVariable
	Instructions  []Instruction
	LabelMap      map[string]int
	Static        bool
	Virtual       bool
	Override      bool
	Abstract      bool
	Constructor   bool
	Native        NativeFunc

	// DeclaringClass is set by the registry when the method is attached to
	// a Class; it lets overload resolution and error reporting name the
	// owner without threading a separate parameter everywhere.
	DeclaringClass *Class
}

// Signature returns the normalized parameter-type list used as a key
// component for overload resolution caching.
func (m *Method) Signature() []string {
	sig := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		sig[i] = p.Type.String()
	}
	return sig
}

// Class is a nominal reference type: fields, methods, an optional base
// class, and implemented interfaces (by name; the core never dispatches
// through an interface, it only uses the name for isinst/castclass).
type Class struct {
	Name       string
	Namespace  string
	BaseName   string // empty if no base class
	Interfaces []string
	Fields     []Field
	Methods    []Method
	Abstract   bool
	Sealed     bool

	// base is resolved lazily by the registry once all classes are
	// registered, so declaration order does not matter.
	base *Class
}

// QualifiedName returns "Namespace.Name", or just Name if Namespace is empty.
func (c *Class) QualifiedName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + "." + c.Name
}

// Base returns the resolved base class, or nil if c has none or the
// registry has not yet resolved it.
func (c *Class) Base() *Class {
	return c.base
}

// Module is the top-level unit loaded into the interpreter.
type Module struct {
	Name    string
	Version string
	Types   []*Class

	registry *ClassRegistry
}

// ClassRegistry indexes classes by simple name and qualified name, and
// resolves base-class back-pointers. It is process-local to one Module,
// mirroring the teacher's ClassRegistry keyed by lower-cased name.
type ClassRegistry struct {
	bySimple     *ident.Map[*Class]
	byQualified  *ident.Map[*Class]
	ordered      []*Class
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		bySimple:    ident.NewMap[*Class](),
		byQualified: ident.NewMap[*Class](),
	}
}

// Register adds c to the registry under both its simple and qualified
// names. Registering the same simple name twice keeps the qualified-name
// entry resolvable, since Lookup tries exact, then qualified, then suffix
// match in that order.
func (r *ClassRegistry) Register(c *Class) {
	r.ordered = append(r.ordered, c)
	if !r.bySimple.Has(c.Name) {
		r.bySimple.Set(c.Name, c)
	}
	r.byQualified.Set(c.QualifiedName(), c)
}

// ResolveBases links every registered class's base pointer once all
// classes are known, so declaration order never matters.
func (r *ClassRegistry) ResolveBases() {
	for _, c := range r.ordered {
		if c.BaseName == "" {
			continue
		}
		if base, ok := r.Lookup(c.BaseName); ok {
			c.base = base
		}
	}
}

// Lookup resolves a class name by, in order: exact simple-name match,
// exact qualified-name match, or suffix match on ".Name".
func (r *ClassRegistry) Lookup(name string) (*Class, bool) {
	if c, ok := r.bySimple.Get(name); ok {
		return c, true
	}
	if c, ok := r.byQualified.Get(name); ok {
		return c, true
	}
	suffix := "." + ident.Normalize(name)
	for _, c := range r.ordered {
		if len(ident.Normalize(c.QualifiedName())) > len(suffix) &&
			hasNormalizedSuffix(c.QualifiedName(), suffix) {
			return c, true
		}
	}
	return nil, false
}

func hasNormalizedSuffix(s, normalizedSuffix string) bool {
	n := ident.Normalize(s)
	if len(n) < len(normalizedSuffix) {
		return false
	}
	return n[len(n)-len(normalizedSuffix):] == normalizedSuffix
}

// Ancestors returns c and every base class above it, nearest first.
func (c *Class) Ancestors() []*Class {
	chain := []*Class{c}
	for cur := c.base; cur != nil; cur = cur.base {
		chain = append(chain, cur)
	}
	return chain
}

// NewModule builds a Module from a flat class list, registering every
// class and resolving base-class links.
func NewModule(name, version string, types []*Class) *Module {
	m := &Module{Name: name, Version: version, Types: types, registry: NewClassRegistry()}
	for _, c := range types {
		for i := range c.Methods {
			c.Methods[i].DeclaringClass = c
		}
		m.registry.Register(c)
	}
	m.registry.ResolveBases()
	return m
}

// Registry exposes the module's class registry.
func (m *Module) Registry() *ClassRegistry {
	return m.registry
}

// EntryPoint locates the conventional `Program.Main` static method.
func (m *Module) EntryPoint() (*Method, error) {
	class, ok := m.registry.Lookup("Program")
	if !ok {
		return nil, fmt.Errorf("entry point not found: no class named Program")
	}
	for i := range class.Methods {
		meth := &class.Methods[i]
		if meth.Static && ident.Equal(meth.Name, "Main") {
			return meth, nil
		}
	}
	return nil, fmt.Errorf("entry point not found: Program has no static Main method")
}
