package vmerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestRuntimeErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *RuntimeError
		want string
	}{
		{
			name: "no trace",
			err:  New(DivisionByZero, ErrMsgDivisionByZero),
			want: "DivisionByZero: division by zero",
		},
		{
			name: "with trace",
			err: New(NotFound, ErrMsgMethodNotFound, "Program", "Main").
				WithTrace(StackTrace{{ClassName: "Program", MethodName: "Main", IP: 3}}),
			want: "NotFound: method not found: Program.Main\nstack trace:\nProgram.Main [ip: 3]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeErrorIsKind(t *testing.T) {
	err := DivisionByZeroError()
	if !errors.Is(err, Sentinel(DivisionByZero)) {
		t.Error("expected errors.Is to match on Kind")
	}
	if errors.Is(err, Sentinel(TypeMismatch)) {
		t.Error("expected errors.Is to not match a different Kind")
	}
}

func TestStackTraceString(t *testing.T) {
	trace := StackTrace{
		{ClassName: "Program", MethodName: "Main", IP: 1},
		{ClassName: "Program", MethodName: "Helper", IP: 5},
	}
	got := trace.String()
	if !strings.HasPrefix(got, "Program.Helper") {
		t.Errorf("expected most-recent frame first, got %q", got)
	}
}

func TestCatalogHelpersSetKind(t *testing.T) {
	tests := []struct {
		name string
		err  *RuntimeError
		kind Kind
	}{
		{"UnknownOpcode", UnknownOpcodeError("xyz"), UnknownOpcode},
		{"StackUnderflow", StackUnderflowError("pop"), StackUnderflow},
		{"ClassNotFound", ClassNotFoundError("Foo"), NotFound},
		{"AmbiguousOverload", AmbiguousOverloadError("Foo", "Bar"), AmbiguousOverload},
		{"NoMatchingOverload", NoMatchingOverloadError("Foo", "Bar", "int32"), NoMatchingOverload},
		{"TypeMismatch", TypeMismatchError("detail"), TypeMismatch},
		{"DivisionByZero", DivisionByZeroError(), DivisionByZero},
		{"BranchOutOfRange", BranchOutOfRangeError("L1"), BranchOutOfRange},
		{"RecursionLimit", RecursionLimitError(1024), RecursionLimit},
		{"Host", HostError("boom"), Host},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", tt.err.Kind, tt.kind)
			}
		})
	}
}
