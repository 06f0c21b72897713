package vmerrors

// Error Message Catalog
//
// Standardized message formats for each error Kind, grouped by category.
// All messages:
//   - start with lowercase
//   - use present tense
//   - include relevant context (names, values, types)

// ----------------------------------------------------------------------------
// Dispatch errors
// ----------------------------------------------------------------------------

const (
	ErrMsgUnknownOpcode    = "unknown opcode: %s"
	ErrMsgMalformedOperand = "malformed operand for %s: %s"
	ErrMsgStackUnderflow   = "stack underflow: %s on an empty evaluation stack"
)

// ----------------------------------------------------------------------------
// Lookup errors
// ----------------------------------------------------------------------------

const (
	ErrMsgClassNotFound       = "class not found: %s"
	ErrMsgMethodNotFound      = "method not found: %s.%s"
	ErrMsgFieldNotFound       = "field not found: %s.%s"
	ErrMsgLocalNotFound       = "local not found: %s"
	ErrMsgArgumentNotFound    = "argument not found: %s"
	ErrMsgLabelNotFound       = "label not found: %s"
	ErrMsgEntryPointNotFound  = "entry point not found: expected a static Program.Main method"
)

// ----------------------------------------------------------------------------
// Overload resolution errors
// ----------------------------------------------------------------------------

const (
	ErrMsgAmbiguousOverload        = "ambiguous overload: %s.%s matches more than one candidate"
	ErrMsgAmbiguousOverloadExplain = "ambiguous, provide parameterTypes: %s.%s has more than one candidate"
	ErrMsgNoMatchingOverload       = "no matching overload: %s.%s(%s)"
)

// ----------------------------------------------------------------------------
// Type errors
// ----------------------------------------------------------------------------

const (
	ErrMsgTypeMismatch    = "type mismatch: %s"
	ErrMsgCannotCoerce    = "cannot coerce %s to %s"
	ErrMsgCannotCast      = "cannot cast %s to %s"
	ErrMsgInvalidOperand  = "invalid operand type for %s: %s"
)

// ----------------------------------------------------------------------------
// Arithmetic errors
// ----------------------------------------------------------------------------

const (
	ErrMsgDivisionByZero = "division by zero"
	ErrMsgRemainderFloat = "remainder is not supported on floating-point operands"
)

// ----------------------------------------------------------------------------
// Control flow errors
// ----------------------------------------------------------------------------

const (
	ErrMsgBranchOutOfRange  = "branch target out of range: %s"
	ErrMsgBreakOutsideLoop  = "break used outside of a loop"
	ErrMsgContinueOutsideLoop = "continue used outside of a loop"
)

// ----------------------------------------------------------------------------
// Resource errors
// ----------------------------------------------------------------------------

const (
	ErrMsgRecursionLimit = "recursion limit exceeded: call stack depth exceeded %d frames"
)

// ----------------------------------------------------------------------------
// Host bridge errors
// ----------------------------------------------------------------------------

const (
	ErrMsgHostFailed        = "host function failed: %s"
	ErrMsgIndexOutOfBounds  = "index out of bounds: %d (length is %d)"
)

// Helper constructors mirror the catalog's "ErrX" convenience functions,
// binding a Kind and message format together at the call site.

func UnknownOpcodeError(opcode string) *RuntimeError {
	return New(UnknownOpcode, ErrMsgUnknownOpcode, opcode)
}

func MalformedOperandError(opcode, detail string) *RuntimeError {
	return New(MalformedOperand, ErrMsgMalformedOperand, opcode, detail)
}

func StackUnderflowError(opcode string) *RuntimeError {
	return New(StackUnderflow, ErrMsgStackUnderflow, opcode)
}

func ClassNotFoundError(name string) *RuntimeError {
	return New(NotFound, ErrMsgClassNotFound, name)
}

func MethodNotFoundError(class, method string) *RuntimeError {
	return New(NotFound, ErrMsgMethodNotFound, class, method)
}

func FieldNotFoundError(class, field string) *RuntimeError {
	return New(NotFound, ErrMsgFieldNotFound, class, field)
}

func LocalNotFoundError(name string) *RuntimeError {
	return New(NotFound, ErrMsgLocalNotFound, name)
}

func ArgumentNotFoundError(name string) *RuntimeError {
	return New(NotFound, ErrMsgArgumentNotFound, name)
}

func LabelNotFoundError(name string) *RuntimeError {
	return New(BranchOutOfRange, ErrMsgLabelNotFound, name)
}

func EntryPointNotFoundError() *RuntimeError {
	return New(NotFound, ErrMsgEntryPointNotFound)
}

func AmbiguousOverloadError(class, method string) *RuntimeError {
	return New(AmbiguousOverload, ErrMsgAmbiguousOverload, class, method)
}

func AmbiguousOverloadExplainError(class, method string) *RuntimeError {
	return New(AmbiguousOverload, ErrMsgAmbiguousOverloadExplain, class, method)
}

func NoMatchingOverloadError(class, method, params string) *RuntimeError {
	return New(NoMatchingOverload, ErrMsgNoMatchingOverload, class, method, params)
}

func TypeMismatchError(detail string) *RuntimeError {
	return New(TypeMismatch, ErrMsgTypeMismatch, detail)
}

func CannotCoerceError(from, to string) *RuntimeError {
	return New(TypeMismatch, ErrMsgCannotCoerce, from, to)
}

func CannotCastError(from, to string) *RuntimeError {
	return New(TypeMismatch, ErrMsgCannotCast, from, to)
}

func InvalidOperandError(opcode, actual string) *RuntimeError {
	return New(TypeMismatch, ErrMsgInvalidOperand, opcode, actual)
}

func DivisionByZeroError() *RuntimeError {
	return New(DivisionByZero, ErrMsgDivisionByZero)
}

func RemainderFloatError() *RuntimeError {
	return New(TypeMismatch, ErrMsgRemainderFloat)
}

func BranchOutOfRangeError(target string) *RuntimeError {
	return New(BranchOutOfRange, ErrMsgBranchOutOfRange, target)
}

func BreakOutsideLoopError() *RuntimeError {
	return New(BranchOutOfRange, ErrMsgBreakOutsideLoop)
}

func ContinueOutsideLoopError() *RuntimeError {
	return New(BranchOutOfRange, ErrMsgContinueOutsideLoop)
}

func RecursionLimitError(limit int) *RuntimeError {
	return New(RecursionLimit, ErrMsgRecursionLimit, limit)
}

func HostError(detail string) *RuntimeError {
	return New(Host, ErrMsgHostFailed, detail)
}

func IndexOutOfBoundsError(index, length int) *RuntimeError {
	return New(TypeMismatch, ErrMsgIndexOutOfBounds, index, length)
}
