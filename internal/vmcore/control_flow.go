package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
	"github.com/charlie-sans/ObjectRuntime/pkg/ident"
)

// execInstruction dispatches one instruction, shared by runMethodBody (the
// method top-level driver) and execSequential (nested structured blocks).
// Label/index branch opcodes are only meaningful against a flat top-level
// instruction list with a mutable IP, so they are rejected here and handled
// separately by execBranch in branches.go.
func (interp *Interpreter) execInstruction(f *frame.CallFrame, inst module.Instruction) (signal, value.Value, error) {
	switch inst.Op {
	case module.OpNop:
		return sigNone, value.Null, nil
	case module.OpIf:
		return interp.execIf(f, inst)
	case module.OpWhile:
		return interp.execWhile(f, inst)
	case module.OpTry:
		return interp.execTry(f, inst)
	case module.OpBreak:
		return sigBreak, value.Null, nil
	case module.OpContinue:
		return sigContinue, value.Null, nil
	case module.OpThrow:
		v, err := f.Pop()
		if err != nil {
			return sigNone, value.Null, err
		}
		return sigNone, value.Null, vmerrors.HostError(v.String())
	case module.OpRet:
		return interp.execRet(f)
	default:
		if isBranchOp(inst.Op) {
			return sigNone, value.Null, vmerrors.BranchOutOfRangeError("branch opcode " + inst.Op.String() + " used outside a method's top-level body")
		}
		if err := interp.execSimple(f, inst); err != nil {
			return sigNone, value.Null, err
		}
		return sigNone, value.Null, nil
	}
}

func (interp *Interpreter) execRet(f *frame.CallFrame) (signal, value.Value, error) {
	var rv value.Value = value.Null
	if f.StackLen() > 0 {
		v, err := f.Pop()
		if err != nil {
			return sigNone, value.Null, err
		}
		rv = v
	}
	return sigReturn, rv, nil
}

// execSequential runs instrs in order, stopping at the first instruction
// that produces a non-sigNone signal or an error. It is the interpreter for
// every nested structured block (if/while/try bodies), which do not support
// label/index branches — br* is confined to the method's flat top-level
// list, dispatched by runMethodBody instead.
func (interp *Interpreter) execSequential(f *frame.CallFrame, instrs []module.Instruction) (signal, value.Value, error) {
	for _, inst := range instrs {
		sig, retVal, err := interp.execInstruction(f, inst)
		if err != nil {
			return sigNone, value.Null, err
		}
		if sig != sigNone {
			return sig, retVal, nil
		}
	}
	return sigNone, value.Null, nil
}

func (interp *Interpreter) execIf(f *frame.CallFrame, inst module.Instruction) (signal, value.Value, error) {
	taken, err := interp.evalCondition(f, inst.Condition)
	if err != nil {
		return sigNone, value.Null, err
	}
	if taken {
		return interp.execSequential(f, inst.Then)
	}
	return interp.execSequential(f, inst.Else)
}

func (interp *Interpreter) execWhile(f *frame.CallFrame, inst module.Instruction) (signal, value.Value, error) {
	for {
		taken, err := interp.evalCondition(f, inst.Condition)
		if err != nil {
			return sigNone, value.Null, err
		}
		if !taken {
			return sigNone, value.Null, nil
		}
		sig, retVal, err := interp.execSequential(f, inst.Body)
		if err != nil {
			return sigNone, value.Null, err
		}
		switch sig {
		case sigBreak:
			return sigNone, value.Null, nil
		case sigContinue:
			continue
		case sigReturn:
			return sigReturn, retVal, nil
		}
	}
}

// execTry runs the try block; on a raised error, walks the catch list in
// order and runs the first match (an empty ExceptionType catches
// anything); the finally block always runs exactly once, and a
// return/break/continue/error raised by finally supersedes whatever the
// try/catch produced.
func (interp *Interpreter) execTry(f *frame.CallFrame, inst module.Instruction) (signal, value.Value, error) {
	sig, retVal, err := interp.execSequential(f, inst.TryBlock)

	if err != nil {
		rerr := asRuntimeError(err)
		for _, c := range inst.Catches {
			if c.ExceptionType != "" && !ident.Equal(c.ExceptionType, string(rerr.Kind)) {
				continue
			}
			f.Push(value.String(rerr.Message))
			sig, retVal, err = interp.execSequential(f, c.Block)
			break
		}
	}

	fsig, fretVal, ferr := interp.execSequential(f, inst.Finally)
	if ferr != nil {
		return sigNone, value.Null, ferr
	}
	if fsig != sigNone {
		return fsig, fretVal, nil
	}
	return sig, retVal, err
}

func asRuntimeError(err error) *vmerrors.RuntimeError {
	if rerr, ok := err.(*vmerrors.RuntimeError); ok {
		return rerr
	}
	return vmerrors.HostError(err.Error())
}

// evalCondition implements the four Condition encodings: empty pops a
// bool already left on the stack by preceding instructions; binary
// evaluates two single-value instruction sequences and applies Op; Block
// and Expression both run a short instruction sequence that leaves exactly
// one bool on the stack.
func (interp *Interpreter) evalCondition(f *frame.CallFrame, cond *module.Condition) (bool, error) {
	if cond == nil {
		return false, vmerrors.MalformedOperandError("if/while", "missing condition")
	}
	switch cond.Kind {
	case module.ConditionEmpty:
		v, err := f.Pop()
		if err != nil {
			return false, err
		}
		return value.ToBool(v), nil
	case module.ConditionBinary:
		left, err := interp.evalSingleValue(f, cond.Left)
		if err != nil {
			return false, err
		}
		right, err := interp.evalSingleValue(f, cond.Right)
		if err != nil {
			return false, err
		}
		switch cond.Op {
		case "eq":
			return value.Equal(left, right), nil
		case "ne":
			return !value.Equal(left, right), nil
		default:
			return compareOp(cond.Op, left, right)
		}
	case module.ConditionExpression:
		v, err := interp.evalSingleValue(f, cond.Expr)
		if err != nil {
			return false, err
		}
		return value.ToBool(v), nil
	case module.ConditionBlock:
		v, err := interp.evalSingleValue(f, cond.Block)
		if err != nil {
			return false, err
		}
		return value.ToBool(v), nil
	default:
		return false, vmerrors.MalformedOperandError("if/while", "unknown condition kind")
	}
}

// evalSingleValue runs a short instruction sequence expected to push
// exactly one value, and pops it.
func (interp *Interpreter) evalSingleValue(f *frame.CallFrame, instrs []module.Instruction) (value.Value, error) {
	sig, _, err := interp.execSequential(f, instrs)
	if err != nil {
		return value.Null, err
	}
	if sig != sigNone {
		return value.Null, vmerrors.MalformedOperandError("condition", "return/break/continue inside a condition operand")
	}
	return f.Pop()
}
