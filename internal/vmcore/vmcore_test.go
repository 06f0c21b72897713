package vmcore

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/hostlib"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

func intRef() module.TypeReference    { return module.ParseTypeReference("int32") }
func floatRef() module.TypeReference  { return module.ParseTypeReference("float64") }
func stringRef() module.TypeReference { return module.ParseTypeReference("string") }
func voidRef() module.TypeReference   { return module.ParseTypeReference("void") }

func newProgram(t *testing.T, mainInstructions []module.Instruction, locals []module.LocalVariable) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	main := module.Method{
		Name:         "Main",
		ReturnType:   voidRef(),
		Static:       true,
		Locals:       locals,
		Instructions: mainInstructions,
	}
	program := &module.Class{Name: "Program", Methods: []module.Method{main}}
	mod := module.NewModule("T", "1", []*module.Class{program})

	var out bytes.Buffer
	interp := New(mod, &out, 0)
	hostlib.RegisterAll(interp.Registry, interp.Statics, &out)
	return interp, &out
}

func writeLineCall(paramType module.TypeReference) module.Instruction {
	return module.Instruction{
		Op: module.OpCall,
		Method: module.CallTarget{
			DeclaringType:  "System.Console",
			Name:           "WriteLine",
			ReturnType:     voidRef(),
			ParameterTypes: []module.TypeReference{paramType},
		},
	}
}

// S1 Hello.
func TestScenarioHello(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdStr, Str: "Hello from Text IR!"},
		writeLineCall(stringRef()),
		{Op: module.OpRet},
	}, nil)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "Hello from Text IR!\n" {
		t.Errorf("output = %q", got)
	}
}

// S2 Arithmetic.
func TestScenarioArithmetic(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 2},
		{Op: module.OpLdc, TypeName: "int32", IntVal: 3},
		{Op: module.OpAdd},
		writeLineCall(intRef()),
		{Op: module.OpRet},
	}, nil)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "5\n" {
		t.Errorf("output = %q", got)
	}
}

// S3 Locals and conditional.
func TestScenarioLocalsAndConditional(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 7},
		{Op: module.OpStLoc, Str: "n"},
		{
			Op: module.OpIf,
			Condition: &module.Condition{
				Kind: module.ConditionBlock,
				Block: []module.Instruction{
					{Op: module.OpLdLoc, Str: "n"},
					{Op: module.OpLdc, TypeName: "int32", IntVal: 5},
					{Op: module.OpCGt},
				},
			},
			Then: []module.Instruction{
				{Op: module.OpLdStr, Str: "big"},
				writeLineCall(stringRef()),
			},
			Else: []module.Instruction{
				{Op: module.OpLdStr, Str: "small"},
				writeLineCall(stringRef()),
			},
		},
		{Op: module.OpRet},
	}, []module.LocalVariable{{Name: "n", Type: intRef()}})

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "big\n" {
		t.Errorf("output = %q", got)
	}
}

// S4 Loop.
func TestScenarioLoop(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 0},
		{Op: module.OpStLoc, Str: "i"},
		{
			Op: module.OpWhile,
			Condition: &module.Condition{
				Kind: module.ConditionBinary,
				Op:   "lt",
				Left: []module.Instruction{
					{Op: module.OpLdLoc, Str: "i"},
				},
				Right: []module.Instruction{
					{Op: module.OpLdc, TypeName: "int32", IntVal: 3},
				},
			},
			Body: []module.Instruction{
				{Op: module.OpLdLoc, Str: "i"},
				writeLineCall(intRef()),
				{Op: module.OpLdLoc, Str: "i"},
				{Op: module.OpLdc, TypeName: "int32", IntVal: 1},
				{Op: module.OpAdd},
				{Op: module.OpStLoc, Str: "i"},
			},
		},
		{Op: module.OpRet},
	}, []module.LocalVariable{{Name: "i", Type: intRef()}})

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "0\n1\n2\n" {
		t.Errorf("output = %q", got)
	}
}

// S5 Static call with overload.
func TestScenarioStaticOverloadCall(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "float64", FloatVal: 5.2},
		{
			Op: module.OpCall,
			Method: module.CallTarget{
				DeclaringType:  "System.Math",
				Name:           "Sqrt",
				ReturnType:     floatRef(),
				ParameterTypes: []module.TypeReference{floatRef()},
			},
		},
		writeLineCall(floatRef()),
		{Op: module.OpRet},
	}, nil)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := strings.TrimSpace(out.String())
	if got == "" || got == "null" {
		t.Errorf("output = %q, want a non-empty numeric representation of sqrt(5.2)", got)
	}
}

// S6 Uncaught error.
func TestScenarioUncaughtDivisionByZero(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 1},
		{Op: module.OpLdc, TypeName: "int32", IntVal: 0},
		{Op: module.OpDiv},
		{Op: module.OpRet},
	}, nil)

	_, err := interp.Run()
	if err == nil {
		t.Fatal("expected a DivisionByZero error")
	}
	if !vmerrors.Sentinel(vmerrors.DivisionByZero).Is(err) && !errorIsKind(err, vmerrors.DivisionByZero) {
		t.Errorf("error = %v, want DivisionByZero", err)
	}
	if out.String() != "" {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func errorIsKind(err error, kind vmerrors.Kind) bool {
	rerr, ok := err.(*vmerrors.RuntimeError)
	return ok && rerr.Kind == kind
}

func TestTryCatchFinally(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{
			Op: module.OpTry,
			TryBlock: []module.Instruction{
				{Op: module.OpLdc, TypeName: "int32", IntVal: 1},
				{Op: module.OpLdc, TypeName: "int32", IntVal: 0},
				{Op: module.OpDiv},
				{Op: module.OpPop},
			},
			Catches: []module.CatchClause{
				{
					ExceptionType: "DivisionByZero",
					Block: []module.Instruction{
						{Op: module.OpPop},
						{Op: module.OpLdStr, Str: "caught"},
						writeLineCall(stringRef()),
					},
				},
			},
			Finally: []module.Instruction{
				{Op: module.OpLdStr, Str: "finally"},
				writeLineCall(stringRef()),
			},
		},
		{Op: module.OpRet},
	}, nil)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "caught\nfinally\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBreakExitsLoop(t *testing.T) {
	interp, out := newProgram(t, []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 0},
		{Op: module.OpStLoc, Str: "i"},
		{
			Op: module.OpWhile,
			Condition: &module.Condition{
				Kind: module.ConditionBinary,
				Op:   "lt",
				Left: []module.Instruction{
					{Op: module.OpLdLoc, Str: "i"},
				},
				Right: []module.Instruction{
					{Op: module.OpLdc, TypeName: "int32", IntVal: 10},
				},
			},
			Body: []module.Instruction{
				{
					Op: module.OpIf,
					Condition: &module.Condition{
						Kind: module.ConditionBlock,
						Block: []module.Instruction{
							{Op: module.OpLdLoc, Str: "i"},
							{Op: module.OpLdc, TypeName: "int32", IntVal: 2},
							{Op: module.OpCEq},
						},
					},
					Then: []module.Instruction{{Op: module.OpBreak}},
				},
				{Op: module.OpLdLoc, Str: "i"},
				writeLineCall(intRef()),
				{Op: module.OpLdLoc, Str: "i"},
				{Op: module.OpLdc, TypeName: "int32", IntVal: 1},
				{Op: module.OpAdd},
				{Op: module.OpStLoc, Str: "i"},
			},
		},
		{Op: module.OpRet},
	}, []module.LocalVariable{{Name: "i", Type: intRef()}})

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "0\n1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBranchLabelLoop(t *testing.T) {
	// Equivalent to the structured while-loop scenario, expressed instead
	// with classical label branches, exercising the br/bge opcodes.
	instrs := []module.Instruction{
		{Op: module.OpLdc, TypeName: "int32", IntVal: 0},
		{Op: module.OpStLoc, Str: "i"},
		{Op: module.OpLdLoc, Str: "i"}, // loop:
		{Op: module.OpLdc, TypeName: "int32", IntVal: 3},
		{Op: module.OpBge, Str: "end"},
		{Op: module.OpLdLoc, Str: "i"},
		writeLineCall(intRef()),
		{Op: module.OpLdLoc, Str: "i"},
		{Op: module.OpLdc, TypeName: "int32", IntVal: 1},
		{Op: module.OpAdd},
		{Op: module.OpStLoc, Str: "i"},
		{Op: module.OpBr, Str: "loop"},
		{Op: module.OpRet}, // end:
	}
	labels := map[string]int{"loop": 2, "end": 12}
	main := module.Method{
		Name:         "Main",
		ReturnType:   voidRef(),
		Static:       true,
		Locals:       []module.LocalVariable{{Name: "i", Type: intRef()}},
		Instructions: instrs,
		LabelMap:     labels,
	}
	program := &module.Class{Name: "Program", Methods: []module.Method{main}}
	mod := module.NewModule("T", "1", []*module.Class{program})
	var out bytes.Buffer
	interp := New(mod, &out, 0)
	hostlib.RegisterAll(interp.Registry, interp.Statics, &out)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "0\n1\n2\n" {
		t.Errorf("output = %q", got)
	}
}
