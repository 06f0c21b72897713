package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/overload"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// execCall implements `call`: pop args right-to-left into a temporary
// array, resolve a static candidate, and invoke it.
func (interp *Interpreter) execCall(f *frame.CallFrame, inst module.Instruction) error {
	method, err := interp.Resolver.Resolve(inst.Method, overload.Static)
	if err != nil {
		return err
	}
	args, err := popArgs(f, len(method.Parameters))
	if err != nil {
		return err
	}
	result, err := interp.Invoke(method, nil, args)
	if err != nil {
		return err
	}
	if !isVoid(method.ReturnType) {
		f.Push(result)
	}
	return nil
}

// execCallVirt implements `callvirt`: resolve an instance candidate against
// the CallTarget's declaring type (callvirt is restricted to
// virtual/instance candidates; the receiver's own class is not consulted),
// pop args right-to-left, then pop the receiving instance, and invoke the
// method with that instance as `this`.
func (interp *Interpreter) execCallVirt(f *frame.CallFrame, inst module.Instruction) error {
	method, err := interp.Resolver.Resolve(inst.Method, overload.Virtual)
	if err != nil {
		return err
	}
	args, err := popArgs(f, len(method.Parameters))
	if err != nil {
		return err
	}
	instVal, err := f.Pop()
	if err != nil {
		return err
	}
	obj, ok := instVal.AsObject().(*object.Object)
	if !ok {
		return vmerrors.InvalidOperandError("callvirt", instVal.Tag().String())
	}
	result, err := interp.Invoke(method, obj, args)
	if err != nil {
		return err
	}
	if !isVoid(method.ReturnType) {
		f.Push(result)
	}
	return nil
}

func popArgs(f *frame.CallFrame, n int) ([]value.Value, error) {
	args := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := f.Pop()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
