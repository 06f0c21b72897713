// Package frame implements the per-invocation CallFrame and the
// interpreter-wide CallStack.
package frame

import (
	"strconv"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// CallFrame owns one method invocation's IP, evaluation stack, argument
// buffer, local buffer, and optional `this`.
type CallFrame struct {
	Method *module.Method
	This   *object.Object

	IP int

	evalStack []value.Value
	args      map[string]value.Value
	argOrder  []string
	locals    map[string]value.Value
}

// New creates a CallFrame for method, binding positional args to its
// declared parameters in order, with the special name "this" resolving to
// the frame's implicit instance.
func New(method *module.Method, this *object.Object, args []value.Value) *CallFrame {
	f := &CallFrame{
		Method: method,
		This:   this,
		args:   make(map[string]value.Value, len(args)),
		locals: make(map[string]value.Value, len(method.Locals)),
	}
	for i, p := range method.Parameters {
		var v value.Value
		if i < len(args) {
			v = args[i]
		}
		f.args[p.Name] = v
		f.argOrder = append(f.argOrder, p.Name)
	}
	for _, l := range method.Locals {
		f.locals[l.Name] = value.Null
	}
	return f
}

// Push pushes v onto the evaluation stack.
func (f *CallFrame) Push(v value.Value) {
	f.evalStack = append(f.evalStack, v)
}

// Pop removes and returns the top of the evaluation stack.
func (f *CallFrame) Pop() (value.Value, error) {
	if len(f.evalStack) == 0 {
		return value.Null, vmerrors.StackUnderflowError("pop")
	}
	n := len(f.evalStack) - 1
	v := f.evalStack[n]
	f.evalStack = f.evalStack[:n]
	return v, nil
}

// Peek returns the top of the evaluation stack without removing it.
func (f *CallFrame) Peek() (value.Value, error) {
	if len(f.evalStack) == 0 {
		return value.Null, vmerrors.StackUnderflowError("peek")
	}
	return f.evalStack[len(f.evalStack)-1], nil
}

// StackLen returns the current evaluation-stack depth.
func (f *CallFrame) StackLen() int {
	return len(f.evalStack)
}

// GetLocal resolves a local variable by name.
func (f *CallFrame) GetLocal(name string) (value.Value, error) {
	v, ok := f.locals[name]
	if !ok {
		return value.Null, vmerrors.LocalNotFoundError(name)
	}
	return v, nil
}

// SetLocal stores v under a declared local name.
func (f *CallFrame) SetLocal(name string, v value.Value) error {
	if _, ok := f.locals[name]; !ok {
		return vmerrors.LocalNotFoundError(name)
	}
	f.locals[name] = v
	return nil
}

// GetArgByName resolves an argument by name, with "this" resolving to the
// frame's implicit instance boxed as a Value.
func (f *CallFrame) GetArgByName(name string) (value.Value, error) {
	if name == "this" {
		if f.This == nil {
			return value.Null, nil
		}
		return value.Object(f.This), nil
	}
	v, ok := f.args[name]
	if !ok {
		return value.Null, vmerrors.ArgumentNotFoundError(name)
	}
	return v, nil
}

// GetArgByIndex resolves an argument by its positional index.
func (f *CallFrame) GetArgByIndex(index int) (value.Value, error) {
	if index < 0 || index >= len(f.argOrder) {
		return value.Null, vmerrors.ArgumentNotFoundError(indexName(index))
	}
	return f.args[f.argOrder[index]], nil
}

// SetArg stores v under a declared argument name (`starg`).
func (f *CallFrame) SetArg(name string, v value.Value) error {
	if _, ok := f.args[name]; !ok {
		return vmerrors.ArgumentNotFoundError(name)
	}
	f.args[name] = v
	return nil
}

func indexName(i int) string {
	return "#" + strconv.Itoa(i)
}

// CallStack is the interpreter's LIFO of CallFrames; the top frame is the
// active one.
type CallStack struct {
	frames []*CallFrame
	limit  int
}

// NewStack creates an empty CallStack bounded by limit frames (0 means
// unbounded). Push returns a RecursionLimit error once limit is exceeded.
func NewStack(limit int) *CallStack {
	return &CallStack{limit: limit}
}

// Push adds a new frame to the top of the stack.
func (s *CallStack) Push(f *CallFrame) error {
	if s.limit > 0 && len(s.frames) >= s.limit {
		return vmerrors.RecursionLimitError(s.limit)
	}
	s.frames = append(s.frames, f)
	return nil
}

// Pop removes and returns the top frame.
func (s *CallStack) Pop() *CallFrame {
	if len(s.frames) == 0 {
		return nil
	}
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]
	return f
}

// Top returns the active frame, or nil if the stack is empty.
func (s *CallStack) Top() *CallFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Len returns the number of frames currently on the stack.
func (s *CallStack) Len() int {
	return len(s.frames)
}

// Trace renders the current stack as a vmerrors.StackTrace, bottom (oldest
// call) first.
func (s *CallStack) Trace() vmerrors.StackTrace {
	trace := make(vmerrors.StackTrace, 0, len(s.frames))
	for _, f := range s.frames {
		trace = append(trace, vmerrors.StackFrame{
			MethodName: f.Method.Name,
			ClassName:  declaringClassName(f.Method),
			IP:         f.IP,
		})
	}
	return trace
}

func declaringClassName(m *module.Method) string {
	if m.DeclaringClass == nil {
		return "?"
	}
	return m.DeclaringClass.QualifiedName()
}
