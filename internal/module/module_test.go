package module

import "testing"

func newTestModule() *Module {
	base := &Class{
		Name: "Base",
		Methods: []Method{
			{Name: "Greet", Static: false, Parameters: nil},
		},
	}
	program := &Class{
		Name:     "Program",
		BaseName: "Base",
		Methods: []Method{
			{Name: "Main", Static: true},
			{Name: "Helper", Static: true, Parameters: []Parameter{{Name: "x", Type: ParseTypeReference("int32")}}},
		},
	}
	other := &Class{Namespace: "System", Name: "Console"}
	return NewModule("Test", "1.0", []*Class{base, program, other})
}

func TestClassRegistryLookup(t *testing.T) {
	m := newTestModule()

	if _, ok := m.Registry().Lookup("Program"); !ok {
		t.Error("expected to find Program by simple name")
	}
	if _, ok := m.Registry().Lookup("System.Console"); !ok {
		t.Error("expected to find System.Console by qualified name")
	}
	if _, ok := m.Registry().Lookup("Console"); !ok {
		t.Error("expected to find System.Console by suffix match")
	}
	if _, ok := m.Registry().Lookup("Nope"); ok {
		t.Error("expected Nope to be absent")
	}
}

func TestClassRegistryResolveBases(t *testing.T) {
	m := newTestModule()
	program, _ := m.Registry().Lookup("Program")
	if program.Base() == nil {
		t.Fatal("expected Program.Base() to resolve to Base")
	}
	if program.Base().Name != "Base" {
		t.Errorf("Base().Name = %q, want Base", program.Base().Name)
	}
	ancestors := program.Ancestors()
	if len(ancestors) != 2 || ancestors[0].Name != "Program" || ancestors[1].Name != "Base" {
		t.Errorf("unexpected ancestor chain: %+v", ancestors)
	}
}

func TestEntryPoint(t *testing.T) {
	m := newTestModule()
	entry, err := m.EntryPoint()
	if err != nil {
		t.Fatalf("EntryPoint() error = %v", err)
	}
	if entry.Name != "Main" || !entry.Static {
		t.Errorf("unexpected entry point: %+v", entry)
	}
}

func TestEntryPointMissing(t *testing.T) {
	m := NewModule("Empty", "1.0", nil)
	if _, err := m.EntryPoint(); err == nil {
		t.Error("expected error when Program is missing")
	}
}

func TestMethodSignature(t *testing.T) {
	m := newTestModule()
	program, _ := m.Registry().Lookup("Program")
	for _, meth := range program.Methods {
		if meth.Name == "Helper" {
			sig := meth.Signature()
			if len(sig) != 1 || sig[0] != "int32" {
				t.Errorf("Signature() = %v", sig)
			}
		}
	}
}

func TestDisassembleNative(t *testing.T) {
	meth := &Method{Name: "WriteLine", Native: func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
		return nil, nil
	}}
	out := Disassemble(meth)
	if out == "" {
		t.Error("expected non-empty disassembly")
	}
}

func TestDisassembleInterpreted(t *testing.T) {
	meth := &Method{
		Name: "Main",
		Instructions: []Instruction{
			{Op: OpLdStr, Str: "hi"},
			{Op: OpIf, Condition: &Condition{Kind: ConditionEmpty},
				Then: []Instruction{{Op: OpPop}},
				Else: []Instruction{{Op: OpNop}},
			},
			{Op: OpRet},
		},
	}
	out := Disassemble(meth)
	if out == "" {
		t.Error("expected non-empty disassembly")
	}
}
