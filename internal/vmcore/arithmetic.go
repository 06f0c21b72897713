package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// promoteKind picks the result type of a binary arithmetic op: the
// operation is computed in float64 if either side is a float, a double or
// a string, otherwise in int64. The result is then narrowed to float32 when
// a float32 operand is present and neither side is a double or a string,
// and to int32 when both operands are int32 (or null/bool coerced to int32)
// so that e.g. `ldc 2:int32; ldc 3:int32; add` still yields an int32
// matching an int32-typed overload.
type promoteKind int

const (
	promoteInt32 promoteKind = iota
	promoteInt64
	promoteFloat32
	promoteFloat64
)

func promote(a, b value.Value) promoteKind {
	if a.Tag() == value.TagString || b.Tag() == value.TagString || a.Tag() == value.TagFloat64 || b.Tag() == value.TagFloat64 {
		return promoteFloat64
	}
	if a.Tag() == value.TagFloat32 || b.Tag() == value.TagFloat32 {
		return promoteFloat32
	}
	if a.Tag() == value.TagInt64 || b.Tag() == value.TagInt64 {
		return promoteInt64
	}
	return promoteInt32
}

func arithBinary(op string, l, r value.Value) (value.Value, error) {
	kind := promote(l, r)
	switch kind {
	case promoteFloat64, promoteFloat32:
		lf, err := value.ToFloat64(l)
		if err != nil {
			return value.Null, vmerrors.CannotCoerceError(l.Tag().String(), "float64")
		}
		rf, err := value.ToFloat64(r)
		if err != nil {
			return value.Null, vmerrors.CannotCoerceError(r.Tag().String(), "float64")
		}
		result, err := applyFloat(op, lf, rf)
		if err != nil {
			return value.Null, err
		}
		if kind == promoteFloat32 {
			return value.Float32(float32(result)), nil
		}
		return value.Float64(result), nil
	default:
		li, err := value.ToInt64(l)
		if err != nil {
			return value.Null, vmerrors.CannotCoerceError(l.Tag().String(), "int64")
		}
		ri, err := value.ToInt64(r)
		if err != nil {
			return value.Null, vmerrors.CannotCoerceError(r.Tag().String(), "int64")
		}
		result, err := applyInt(op, li, ri)
		if err != nil {
			return value.Null, err
		}
		if kind == promoteInt32 {
			return value.Int32(int32(result)), nil
		}
		return value.Int64(result), nil
	}
}

func applyFloat(op string, l, r float64) (float64, error) {
	switch op {
	case "add":
		return l + r, nil
	case "sub":
		return l - r, nil
	case "mul":
		return l * r, nil
	case "div":
		return l / r, nil
	case "rem":
		return 0, vmerrors.RemainderFloatError()
	default:
		return 0, vmerrors.InvalidOperandError(op, "float")
	}
}

func applyInt(op string, l, r int64) (int64, error) {
	switch op {
	case "add":
		return l + r, nil
	case "sub":
		return l - r, nil
	case "mul":
		return l * r, nil
	case "div":
		if r == 0 {
			return 0, vmerrors.DivisionByZeroError()
		}
		return l / r, nil
	case "rem":
		if r == 0 {
			return 0, vmerrors.DivisionByZeroError()
		}
		return l % r, nil
	default:
		return 0, vmerrors.InvalidOperandError(op, "int")
	}
}

func arithNeg(v value.Value) (value.Value, error) {
	switch promote(v, v) {
	case promoteFloat64:
		f, _ := value.ToFloat64(v)
		return value.Float64(-f), nil
	case promoteFloat32:
		f, _ := value.ToFloat64(v)
		return value.Float32(float32(-f)), nil
	case promoteInt64:
		i, _ := value.ToInt64(v)
		return value.Int64(-i), nil
	default:
		i, _ := value.ToInt64(v)
		return value.Int32(int32(-i)), nil
	}
}

// compareOp implements clt/cle/cgt/cge, shared with the branch opcodes'
// bgt/bge/blt/ble compare step (beq/bne use value.Equal instead).
func compareOp(op string, l, r value.Value) (bool, error) {
	if l.Tag() == value.TagString && r.Tag() == value.TagString {
		switch op {
		case "lt":
			return l.AsString() < r.AsString(), nil
		case "le":
			return l.AsString() <= r.AsString(), nil
		case "gt":
			return l.AsString() > r.AsString(), nil
		case "ge":
			return l.AsString() >= r.AsString(), nil
		default:
			return false, vmerrors.InvalidOperandError(op, "string")
		}
	}
	lf, err := value.ToFloat64(l)
	if err != nil {
		return false, vmerrors.CannotCoerceError(l.Tag().String(), "float64")
	}
	rf, err := value.ToFloat64(r)
	if err != nil {
		return false, vmerrors.CannotCoerceError(r.Tag().String(), "float64")
	}
	switch op {
	case "lt":
		return lf < rf, nil
	case "le":
		return lf <= rf, nil
	case "gt":
		return lf > rf, nil
	case "ge":
		return lf >= rf, nil
	default:
		return false, vmerrors.InvalidOperandError(op, "number")
	}
}
