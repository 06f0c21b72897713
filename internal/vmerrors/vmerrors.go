// Package vmerrors defines the error taxonomy raised by the interpreter and
// its supporting components, and the call-stack trace attached to them.
package vmerrors

import (
	"fmt"
	"strings"
)

// Kind classifies a runtime error. Kind is a taxonomy, not a Go type: every
// error raised by the core carries exactly one Kind alongside its message.
type Kind string

const (
	UnknownOpcode     Kind = "UnknownOpcode"
	MalformedOperand  Kind = "MalformedOperand"
	StackUnderflow    Kind = "StackUnderflow"
	NotFound          Kind = "NotFound"
	AmbiguousOverload Kind = "AmbiguousOverload"
	NoMatchingOverload Kind = "NoMatchingOverload"
	TypeMismatch      Kind = "TypeMismatch"
	DivisionByZero    Kind = "DivisionByZero"
	BranchOutOfRange  Kind = "BranchOutOfRange"
	RecursionLimit    Kind = "RecursionLimit"
	Host              Kind = "Host"
)

// StackFrame captures one call frame at the moment an error was raised.
type StackFrame struct {
	MethodName string
	ClassName  string
	IP         int
}

// String renders a frame as "ClassName.MethodName [ip: N]".
func (f StackFrame) String() string {
	return fmt.Sprintf("%s.%s [ip: %d]", f.ClassName, f.MethodName, f.IP)
}

// StackTrace is a call stack captured bottom-to-top (oldest call first).
type StackTrace []StackFrame

// String renders the trace most-recent-frame-first, one per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RuntimeError is the error type raised by every core component. It carries
// a Kind from the taxonomy above, a human-readable message, and the call
// stack active when the error was raised.
type RuntimeError struct {
	Kind    Kind
	Message string
	Trace   StackTrace
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Trace) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s\nstack trace:\n%s", e.Kind, e.Message, e.Trace.String())
}

// Is supports errors.Is against a Kind sentinel: errors.Is(err,
// vmerrors.Sentinel(vmerrors.DivisionByZero)).
func (e *RuntimeError) Is(target error) bool {
	other, ok := target.(*RuntimeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New creates a RuntimeError of the given kind with a formatted message. The
// trace is attached separately via WithTrace once the caller has access to
// the active call stack.
func New(kind Kind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithTrace returns a copy of e with trace attached.
func (e *RuntimeError) WithTrace(trace StackTrace) *RuntimeError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Trace = trace
	return &cp
}

// Sentinel returns a zero-message RuntimeError of kind k, suitable for use
// as an errors.Is target: errors.Is(err, vmerrors.Sentinel(vmerrors.NotFound)).
func Sentinel(k Kind) *RuntimeError {
	return &RuntimeError{Kind: k}
}
