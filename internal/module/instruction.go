package module

// OpCode names one interpreter operation. Unlike the teacher's packed
// 32-bit bytecode format, ObjectIR's Module is already a parsed, in-memory
// tree, so there is no encoding-size pressure to pack operands into a
// fixed-width word. Each Instruction instead carries named operand fields;
// only the fields relevant to its OpCode are populated.
type OpCode int

const (
	OpNop OpCode = iota

	// Stack/constants.
	OpDup     // Stack: [v] -> [v, v]
	OpPop     // Stack: [v] -> []
	OpLdNull  // Stack: [] -> [null]
	OpLdStr   // Stack: [] -> [string]      operand: Str
	OpLdc     // Stack: [] -> [value]       operand: TypeName, IntVal/FloatVal/Str
	OpLdTrue  // Stack: [] -> [true]
	OpLdFalse // Stack: [] -> [false]
	OpLdI4    // Stack: [] -> [int32]       operand: IntVal
	OpLdI8    // Stack: [] -> [int64]       operand: IntVal
	OpLdR4    // Stack: [] -> [float32]     operand: FloatVal
	OpLdR8    // Stack: [] -> [float64]     operand: FloatVal

	// Locals/args/fields.
	OpLdLoc  // Stack: [] -> [v]           operand: Str (local name)
	OpStLoc  // Stack: [v] -> []           operand: Str (local name)
	OpLdArg  // Stack: [] -> [v]           operand: Str or Index
	OpStArg  // Stack: [v] -> []           operand: Str (argument name)
	OpLdFld  // Stack: [obj?] -> [v]       operand: Field.Name
	OpStFld  // Stack: [obj?, v] -> []     operand: Field.Name
	OpLdSFld // Stack: [] -> [v]           operand: Field{DeclaringType, Name}
	OpStSFld // Stack: [v] -> []           operand: Field{DeclaringType, Name}

	// Arithmetic/logic.
	OpAdd // Stack: [l, r] -> [l+r]
	OpSub // Stack: [l, r] -> [l-r]
	OpMul // Stack: [l, r] -> [l*r]
	OpDiv // Stack: [l, r] -> [l/r]
	OpRem // Stack: [l, r] -> [l%r]
	OpNeg // Stack: [v] -> [-v]
	OpNot // Stack: [v] -> [!v]

	// Comparisons.
	OpCEq // Stack: [l, r] -> [bool]
	OpCNe // Stack: [l, r] -> [bool]
	OpCLt // Stack: [l, r] -> [bool]
	OpCLe // Stack: [l, r] -> [bool]
	OpCGt // Stack: [l, r] -> [bool]
	OpCGe // Stack: [l, r] -> [bool]

	// Object/array.
	OpNewObj     // Stack: [] -> [object]          operand: TypeName
	OpNewArr     // Stack: [] -> [array]            operand: TypeName (element type)
	OpLdElem     // Stack: [array, index] -> [v]
	OpStElem     // Stack: [array, index, v] -> []
	OpCastClass  // Stack: [v] -> [v]               operand: TypeName
	OpIsInst     // Stack: [v] -> [bool]             operand: TypeName

	// Calls/returns.
	OpCall     // Stack: [args...] -> [result?]      operand: Method (CallTarget)
	OpCallVirt // Stack: [obj, args...] -> [result?]  operand: Method (CallTarget)
	OpRet      // Stack: [v?] -> []

	// Structured control flow.
	OpIf       // operand: Condition, Then, Else
	OpWhile    // operand: Condition, Body
	OpBreak    //
	OpContinue //
	OpTry      // operand: TryBlock, Catches, Finally
	OpThrow    // Stack: [v] -> []

	// Label branches.
	OpBr     // operand: Str (label) or Index
	OpBrTrue // Stack: [bool] -> []   operand: Str or Index
	OpBrFalse
	OpBeq // Stack: [l, r] -> []
	OpBne
	OpBgt
	OpBge
	OpBlt
	OpBle
)

var opCodeNames = [...]string{
	OpNop: "nop", OpDup: "dup", OpPop: "pop", OpLdNull: "ldnull", OpLdStr: "ldstr",
	OpLdc: "ldc", OpLdTrue: "ldtrue", OpLdFalse: "ldfalse", OpLdI4: "ldi4",
	OpLdI8: "ldi8", OpLdR4: "ldr4", OpLdR8: "ldr8", OpLdLoc: "ldloc", OpStLoc: "stloc",
	OpLdArg: "ldarg", OpStArg: "starg", OpLdFld: "ldfld", OpStFld: "stfld",
	OpLdSFld: "ldsfld", OpStSFld: "stsfld", OpAdd: "add", OpSub: "sub", OpMul: "mul",
	OpDiv: "div", OpRem: "rem", OpNeg: "neg", OpNot: "not", OpCEq: "ceq", OpCNe: "cne",
	OpCLt: "clt", OpCLe: "cle", OpCGt: "cgt", OpCGe: "cge", OpNewObj: "newobj",
	OpNewArr: "newarr", OpLdElem: "ldelem", OpStElem: "stelem", OpCastClass: "castclass",
	OpIsInst: "isinst", OpCall: "call", OpCallVirt: "callvirt", OpRet: "ret",
	OpIf: "if", OpWhile: "while", OpBreak: "break", OpContinue: "continue",
	OpTry: "try", OpThrow: "throw", OpBr: "br", OpBrTrue: "brtrue", OpBrFalse: "brfalse",
	OpBeq: "beq", OpBne: "bne", OpBgt: "bgt", OpBge: "bge", OpBlt: "blt", OpBle: "ble",
}

// String returns the canonical textual spelling of op, after the parse-time
// alias normalization (`ldc.i4`/`ldc.i8` -> `ldc`) has already happened.
func (op OpCode) String() string {
	if int(op) >= 0 && int(op) < len(opCodeNames) && opCodeNames[op] != "" {
		return opCodeNames[op]
	}
	return "unknown"
}

// ConditionKind selects among the four condition shapes an `if`/`while`
// can carry.
type ConditionKind string

const (
	ConditionEmpty      ConditionKind = "empty"
	ConditionBinary     ConditionKind = "binary"
	ConditionExpression ConditionKind = "expression"
	ConditionBlock      ConditionKind = "block"
)

// Condition is the test evaluated by `if`/`while`. Exactly the fields for
// Kind are meaningful:
//   - empty: none; the bool is already on the evaluation stack.
//   - binary: Op plus Left/Right instruction sequences, each producing one
//     operand value.
//   - expression: Expr, a short instruction sequence that pushes one bool.
//   - block: Block, an instruction sequence that leaves a bool on the
//     stack, identical in shape to Expr but named separately to mirror the
//     source's own vocabulary.
type Condition struct {
	Kind  ConditionKind
	Op    string
	Left  []Instruction
	Right []Instruction
	Expr  []Instruction
	Block []Instruction
}

// FieldRef names a field access. DeclaringType is required for
// ldsfld/stsfld (static fields are keyed by qualified type name) and
// ignored for ldfld/stfld, which resolve against the instance on the
// stack or F.this.
type FieldRef struct {
	DeclaringType string
	Name          string
}

// CallTarget is the tuple {declaringType, name, returnType, parameterTypes}
// naming a call site, resolved against the class registry by overload
// resolution.
type CallTarget struct {
	DeclaringType  string
	Name           string
	ReturnType     TypeReference
	ParameterTypes []TypeReference
}

// CatchClause is one entry of a `try`'s catch list. An empty ExceptionType
// means "catch any".
type CatchClause struct {
	ExceptionType string
	Block         []Instruction
}

// Instruction is one step of a method body. Only the fields relevant to Op
// are populated; the rest are zero values.
type Instruction struct {
	Op OpCode

	// Generic operand fields used by several opcodes.
	Str      string // ldstr value, ldloc/stloc/ldarg/starg name, br* label
	HasIndex bool
	Index    int // ldarg positional index, br* direct instruction index
	IntVal   int64
	FloatVal float64
	TypeName string // ldc's type, newobj/newarr/castclass/isinst target type

	Field  FieldRef
	Method CallTarget

	// Structured control flow.
	Condition *Condition
	Then      []Instruction
	Else      []Instruction
	Body      []Instruction
	TryBlock  []Instruction
	Catches   []CatchClause
	Finally   []Instruction
}
