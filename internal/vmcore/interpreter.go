// Package vmcore implements the ObjectIR dispatch loop: the instruction
// interpreter, structured control flow, label/index branches, and call
// dispatch.
package vmcore

import (
	"io"

	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/overload"
	"github.com/charlie-sans/ObjectRuntime/internal/staticstore"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// DefaultRecursionLimit bounds call-stack depth absent an explicit override,
// guarding against runaway recursion in a malformed or adversarial module.
const DefaultRecursionLimit = 4096

// Interpreter drives one Module's execution: a class registry, an overload
// resolver, the process-wide static-field store, and a single active call
// stack. It is not safe for concurrent Run calls; callers sharing classes
// and statics across goroutines must serialize at a higher level.
type Interpreter struct {
	Module   *module.Module
	Registry *module.ClassRegistry
	Resolver *overload.Resolver
	Statics  *staticstore.Store
	Output   io.Writer

	stack *frame.CallStack
}

// New creates an Interpreter over mod, writing Console output to output and
// bounding recursion at recursionLimit (0 uses DefaultRecursionLimit).
func New(mod *module.Module, output io.Writer, recursionLimit int) *Interpreter {
	if recursionLimit <= 0 {
		recursionLimit = DefaultRecursionLimit
	}
	registry := mod.Registry()
	return &Interpreter{
		Module:   mod,
		Registry: registry,
		Resolver: overload.NewResolver(registry),
		Statics:  staticstore.New(),
		Output:   output,
		stack:    frame.NewStack(recursionLimit),
	}
}

// Run locates the module's conventional entry point and invokes it with no
// arguments.
func (interp *Interpreter) Run() (value.Value, error) {
	entry, err := interp.Module.EntryPoint()
	if err != nil {
		return value.Null, vmerrors.EntryPointNotFoundError()
	}
	return interp.Invoke(entry, nil, nil)
}

// Invoke runs method with the given `this` (nil for static calls) and
// positional args, pushing a new CallFrame and running it to completion.
// It is the single entry point shared by Run, `call`/`callvirt` dispatch,
// and any host function that calls back into interpreted code.
func (interp *Interpreter) Invoke(method *module.Method, this *object.Object, args []value.Value) (value.Value, error) {
	if method.Native != nil {
		return interp.invokeNative(method, this, args)
	}

	f := frame.New(method, this, args)
	if err := interp.stack.Push(f); err != nil {
		return value.Null, interp.attachTrace(err)
	}
	defer interp.stack.Pop()

	retVal, err := interp.runMethodBody(f)
	if err != nil {
		return value.Null, interp.attachTrace(err)
	}
	return retVal, nil
}

func (interp *Interpreter) invokeNative(method *module.Method, this *object.Object, args []value.Value) (value.Value, error) {
	nativeArgs := make([]interface{}, len(args))
	for i, a := range args {
		nativeArgs[i] = a
	}
	var self interface{}
	if this != nil {
		self = this
	}
	result, err := method.Native(self, nativeArgs, interp)
	if err != nil {
		if rerr, ok := err.(*vmerrors.RuntimeError); ok {
			return value.Null, interp.attachTrace(rerr)
		}
		return value.Null, interp.attachTrace(vmerrors.HostError(err.Error()))
	}
	if result == nil {
		return value.Null, nil
	}
	v, ok := result.(value.Value)
	if !ok {
		return value.Null, interp.attachTrace(vmerrors.HostError("native method returned a non-Value result"))
	}
	return v, nil
}

func (interp *Interpreter) attachTrace(err error) error {
	rerr, ok := err.(*vmerrors.RuntimeError)
	if !ok {
		return err
	}
	if len(rerr.Trace) > 0 {
		return rerr
	}
	return rerr.WithTrace(interp.stack.Trace())
}

// runMethodBody drives the classical fetch-increment-dispatch loop over a
// method's flat top-level instruction list, the only scope in which
// label/index branch opcodes are resolved; nested structured blocks are
// interpreted by direct sub-interpretation instead, see execSequential in
// control_flow.go.
func (interp *Interpreter) runMethodBody(f *frame.CallFrame) (value.Value, error) {
	instrs := f.Method.Instructions
	for {
		if f.IP >= len(instrs) {
			return finalValue(f), nil
		}
		inst := instrs[f.IP]
		f.IP++

		if isBranchOp(inst.Op) {
			if err := interp.execBranch(f, instrs, inst); err != nil {
				return value.Null, err
			}
			continue
		}

		sig, retVal, err := interp.execInstruction(f, inst)
		if err != nil {
			return value.Null, err
		}
		switch sig {
		case sigReturn:
			return coerceReturn(f, retVal), nil
		case sigBreak:
			return value.Null, vmerrors.BreakOutsideLoopError()
		case sigContinue:
			return value.Null, vmerrors.ContinueOutsideLoopError()
		}
	}
}

// finalValue handles falling off the end of a method body without an
// explicit ret: pop a trailing value for a non-void method, else null.
func finalValue(f *frame.CallFrame) value.Value {
	if isVoid(f.Method.ReturnType) {
		return value.Null
	}
	if f.StackLen() == 0 {
		return value.Null
	}
	v, _ := f.Pop()
	return v
}

func coerceReturn(f *frame.CallFrame, rv value.Value) value.Value {
	if isVoid(f.Method.ReturnType) {
		return value.Null
	}
	return rv
}

func isVoid(t module.TypeReference) bool {
	return t.Name == string(module.Void) && !t.IsArray
}
