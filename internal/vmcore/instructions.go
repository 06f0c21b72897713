package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// execSimple handles every opcode with no signal of its own: stack
// shuffling, constant loads, local/argument/field access, arithmetic,
// comparisons, and object/array/call opcodes delegated to objects.go and
// calls.go.
func (interp *Interpreter) execSimple(f *frame.CallFrame, inst module.Instruction) error {
	switch inst.Op {
	case module.OpDup:
		v, err := f.Peek()
		if err != nil {
			return err
		}
		f.Push(v)
		return nil
	case module.OpPop:
		_, err := f.Pop()
		return err
	case module.OpLdNull:
		f.Push(value.Null)
		return nil
	case module.OpLdStr:
		f.Push(value.String(inst.Str))
		return nil
	case module.OpLdTrue:
		f.Push(value.Bool(true))
		return nil
	case module.OpLdFalse:
		f.Push(value.Bool(false))
		return nil
	case module.OpLdI4:
		f.Push(value.Int32(int32(inst.IntVal)))
		return nil
	case module.OpLdI8:
		f.Push(value.Int64(inst.IntVal))
		return nil
	case module.OpLdR4:
		f.Push(value.Float32(float32(inst.FloatVal)))
		return nil
	case module.OpLdR8:
		f.Push(value.Float64(inst.FloatVal))
		return nil
	case module.OpLdc:
		return interp.execLdc(f, inst)

	case module.OpLdLoc:
		v, err := f.GetLocal(inst.Str)
		if err != nil {
			return err
		}
		f.Push(v)
		return nil
	case module.OpStLoc:
		v, err := f.Pop()
		if err != nil {
			return err
		}
		return f.SetLocal(inst.Str, v)

	case module.OpLdArg:
		return interp.execLdArg(f, inst)
	case module.OpStArg:
		v, err := f.Pop()
		if err != nil {
			return err
		}
		return f.SetArg(inst.Str, v)

	case module.OpLdFld:
		return interp.execLdFld(f, inst)
	case module.OpStFld:
		return interp.execStFld(f, inst)
	case module.OpLdSFld:
		f.Push(interp.Statics.Get(inst.Field.DeclaringType, inst.Field.Name))
		return nil
	case module.OpStSFld:
		v, err := f.Pop()
		if err != nil {
			return err
		}
		interp.Statics.Set(inst.Field.DeclaringType, inst.Field.Name, v)
		return nil

	case module.OpAdd, module.OpSub, module.OpMul, module.OpDiv, module.OpRem:
		return interp.execArithBinary(f, inst.Op)
	case module.OpNeg:
		v, err := f.Pop()
		if err != nil {
			return err
		}
		result, err := arithNeg(v)
		if err != nil {
			return err
		}
		f.Push(result)
		return nil
	case module.OpNot:
		v, err := f.Pop()
		if err != nil {
			return err
		}
		f.Push(value.Bool(!value.ToBool(v)))
		return nil

	case module.OpCEq, module.OpCNe, module.OpCLt, module.OpCLe, module.OpCGt, module.OpCGe:
		return interp.execCompare(f, inst.Op)

	case module.OpNewObj:
		return interp.execNewObj(f, inst)
	case module.OpNewArr:
		return interp.execNewArr(f, inst)
	case module.OpLdElem:
		return interp.execLdElem(f)
	case module.OpStElem:
		return interp.execStElem(f)
	case module.OpCastClass:
		return interp.execCastClass(f, inst)
	case module.OpIsInst:
		return interp.execIsInst(f, inst)

	case module.OpCall:
		return interp.execCall(f, inst)
	case module.OpCallVirt:
		return interp.execCallVirt(f, inst)

	default:
		return vmerrors.UnknownOpcodeError(inst.Op.String())
	}
}

func (interp *Interpreter) execLdc(f *frame.CallFrame, inst module.Instruction) error {
	typeName := module.NormalizeTypeName(inst.TypeName)
	switch module.Primitive(typeName) {
	case module.Int32:
		f.Push(value.Int32(int32(inst.IntVal)))
	case module.Int64:
		f.Push(value.Int64(inst.IntVal))
	case module.Float32:
		f.Push(value.Float32(float32(inst.FloatVal)))
	case module.Float64:
		f.Push(value.Float64(inst.FloatVal))
	case module.Bool:
		f.Push(value.Bool(inst.IntVal != 0))
	case module.String:
		f.Push(value.String(inst.Str))
	default:
		return vmerrors.MalformedOperandError("ldc", inst.TypeName)
	}
	return nil
}

func (interp *Interpreter) execLdArg(f *frame.CallFrame, inst module.Instruction) error {
	var v value.Value
	var err error
	if inst.HasIndex {
		v, err = f.GetArgByIndex(inst.Index)
	} else {
		v, err = f.GetArgByName(inst.Str)
	}
	if err != nil {
		return err
	}
	f.Push(v)
	return nil
}

// execLdFld implements the ldfld target rule: if the top of stack is an
// object, use it as the target; otherwise use F.this.
func (interp *Interpreter) execLdFld(f *frame.CallFrame, inst module.Instruction) error {
	obj, err := interp.resolveFieldTargetForLoad(f)
	if err != nil {
		return err
	}
	v, ok := obj.GetField(inst.Field.Name)
	if !ok {
		return vmerrors.FieldNotFoundError(obj.ClassName(), inst.Field.Name)
	}
	f.Push(v)
	return nil
}

func (interp *Interpreter) execStFld(f *frame.CallFrame, inst module.Instruction) error {
	v, err := f.Pop()
	if err != nil {
		return err
	}
	obj, err := interp.resolveFieldTargetForLoad(f)
	if err != nil {
		return err
	}
	if !obj.SetField(inst.Field.Name, v) {
		return vmerrors.FieldNotFoundError(obj.ClassName(), inst.Field.Name)
	}
	return nil
}

func (interp *Interpreter) execArithBinary(f *frame.CallFrame, op module.OpCode) error {
	r, err := f.Pop()
	if err != nil {
		return err
	}
	l, err := f.Pop()
	if err != nil {
		return err
	}
	result, err := arithBinary(opName(op), l, r)
	if err != nil {
		return err
	}
	f.Push(result)
	return nil
}

func (interp *Interpreter) execCompare(f *frame.CallFrame, op module.OpCode) error {
	r, err := f.Pop()
	if err != nil {
		return err
	}
	l, err := f.Pop()
	if err != nil {
		return err
	}
	switch op {
	case module.OpCEq:
		f.Push(value.Bool(value.Equal(l, r)))
		return nil
	case module.OpCNe:
		f.Push(value.Bool(!value.Equal(l, r)))
		return nil
	default:
		result, err := compareOp(opName(op), l, r)
		if err != nil {
			return err
		}
		f.Push(value.Bool(result))
		return nil
	}
}

func opName(op module.OpCode) string {
	switch op {
	case module.OpAdd:
		return "add"
	case module.OpSub:
		return "sub"
	case module.OpMul:
		return "mul"
	case module.OpDiv:
		return "div"
	case module.OpRem:
		return "rem"
	case module.OpCLt:
		return "lt"
	case module.OpCLe:
		return "le"
	case module.OpCGt:
		return "gt"
	case module.OpCGe:
		return "ge"
	default:
		return op.String()
	}
}
