package moduleio

import "github.com/charlie-sans/ObjectRuntime/internal/module"

// opCodeByName is the reverse of module.OpCode.String(), used to parse the
// textual "op" field of an instructionDoc.
var opCodeByName = map[string]module.OpCode{
	"nop":       module.OpNop,
	"dup":       module.OpDup,
	"pop":       module.OpPop,
	"ldnull":    module.OpLdNull,
	"ldstr":     module.OpLdStr,
	"ldc":       module.OpLdc,
	"ldtrue":    module.OpLdTrue,
	"ldfalse":   module.OpLdFalse,
	"ldi4":      module.OpLdI4,
	"ldi8":      module.OpLdI8,
	"ldr4":      module.OpLdR4,
	"ldr8":      module.OpLdR8,
	"ldloc":     module.OpLdLoc,
	"stloc":     module.OpStLoc,
	"ldarg":     module.OpLdArg,
	"starg":     module.OpStArg,
	"ldfld":     module.OpLdFld,
	"stfld":     module.OpStFld,
	"ldsfld":    module.OpLdSFld,
	"stsfld":    module.OpStSFld,
	"add":       module.OpAdd,
	"sub":       module.OpSub,
	"mul":       module.OpMul,
	"div":       module.OpDiv,
	"rem":       module.OpRem,
	"neg":       module.OpNeg,
	"not":       module.OpNot,
	"ceq":       module.OpCEq,
	"cne":       module.OpCNe,
	"clt":       module.OpCLt,
	"cle":       module.OpCLe,
	"cgt":       module.OpCGt,
	"cge":       module.OpCGe,
	"newobj":    module.OpNewObj,
	"newarr":    module.OpNewArr,
	"ldelem":    module.OpLdElem,
	"stelem":    module.OpStElem,
	"castclass": module.OpCastClass,
	"isinst":    module.OpIsInst,
	"call":      module.OpCall,
	"callvirt":  module.OpCallVirt,
	"ret":       module.OpRet,
	"if":        module.OpIf,
	"while":     module.OpWhile,
	"break":     module.OpBreak,
	"continue":  module.OpContinue,
	"try":       module.OpTry,
	"throw":     module.OpThrow,
	"br":        module.OpBr,
	"brtrue":    module.OpBrTrue,
	"brfalse":   module.OpBrFalse,
	"beq":       module.OpBeq,
	"bne":       module.OpBne,
	"bgt":       module.OpBgt,
	"bge":       module.OpBge,
	"blt":       module.OpBlt,
	"ble":       module.OpBle,
}

func parseOpCode(name string) (module.OpCode, bool) {
	op, ok := opCodeByName[name]
	return op, ok
}
