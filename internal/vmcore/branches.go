package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

func isBranchOp(op module.OpCode) bool {
	switch op {
	case module.OpBr, module.OpBrTrue, module.OpBrFalse,
		module.OpBeq, module.OpBne, module.OpBgt, module.OpBge, module.OpBlt, module.OpBle:
		return true
	default:
		return false
	}
}

// execBranch resolves and, if taken, applies a label/index branch against
// the method's flat top-level instruction list. f.IP has already been
// advanced past inst when this is called; a taken branch overwrites it
// with the resolved target.
func (interp *Interpreter) execBranch(f *frame.CallFrame, instrs []module.Instruction, inst module.Instruction) error {
	taken, err := interp.branchCondition(f, inst.Op)
	if err != nil {
		return err
	}
	if !taken {
		return nil
	}
	target, err := resolveTarget(f.Method, inst)
	if err != nil {
		return err
	}
	if target < 0 || target > len(instrs) {
		return vmerrors.BranchOutOfRangeError(inst.Op.String())
	}
	f.IP = target
	return nil
}

func (interp *Interpreter) branchCondition(f *frame.CallFrame, op module.OpCode) (bool, error) {
	switch op {
	case module.OpBr:
		return true, nil
	case module.OpBrTrue:
		v, err := f.Pop()
		if err != nil {
			return false, err
		}
		return value.ToBool(v), nil
	case module.OpBrFalse:
		v, err := f.Pop()
		if err != nil {
			return false, err
		}
		return !value.ToBool(v), nil
	case module.OpBeq, module.OpBne, module.OpBgt, module.OpBge, module.OpBlt, module.OpBle:
		r, err := f.Pop()
		if err != nil {
			return false, err
		}
		l, err := f.Pop()
		if err != nil {
			return false, err
		}
		switch op {
		case module.OpBeq:
			return value.Equal(l, r), nil
		case module.OpBne:
			return !value.Equal(l, r), nil
		default:
			return compareOp(branchCompareOp(op), l, r)
		}
	default:
		return false, vmerrors.UnknownOpcodeError(op.String())
	}
}

func branchCompareOp(op module.OpCode) string {
	switch op {
	case module.OpBgt:
		return "gt"
	case module.OpBge:
		return "ge"
	case module.OpBlt:
		return "lt"
	case module.OpBle:
		return "le"
	default:
		return ""
	}
}

// resolveTarget resolves a branch's operand to an absolute instruction
// index: HasIndex names it directly, otherwise Str names a label looked up
// in the method's LabelMap.
func resolveTarget(method *module.Method, inst module.Instruction) (int, error) {
	if inst.HasIndex {
		return inst.Index, nil
	}
	if method.LabelMap == nil {
		return 0, vmerrors.LabelNotFoundError(inst.Str)
	}
	target, ok := method.LabelMap[inst.Str]
	if !ok {
		return 0, vmerrors.LabelNotFoundError(inst.Str)
	}
	return target, nil
}
