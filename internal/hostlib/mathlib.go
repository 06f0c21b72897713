package hostlib

import (
	"math"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// newMathClass builds System.Math: PI/E/Tau as zero-arg functions, the
// trig/exponential/rounding family, and Min/Max/Abs/Sign.
func newMathClass() *module.Class {
	unary := func(name string, f func(float64) float64) module.Method {
		return staticMethod(name, []module.Parameter{param("x", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, err := value.ToFloat64(arg(args, 0))
				if err != nil {
					return nil, vmerrors.CannotCoerceError(arg(args, 0).Tag().String(), "float64")
				}
				return value.Float64(f(x)), nil
			})
	}
	constant := func(name string, c float64) module.Method {
		return staticMethod(name, nil, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.Float64(c), nil
			})
	}

	methods := []module.Method{
		constant("PI", math.Pi),
		constant("E", math.E),
		constant("Tau", 2*math.Pi),
		unary("Sin", math.Sin),
		unary("Cos", math.Cos),
		unary("Tan", math.Tan),
		unary("Asin", math.Asin),
		unary("Acos", math.Acos),
		unary("Atan", math.Atan),
		unary("Sinh", math.Sinh),
		unary("Cosh", math.Cosh),
		unary("Tanh", math.Tanh),
		unary("Exp", math.Exp),
		unary("Log10", math.Log10),
		unary("Sqrt", math.Sqrt),
		unary("Ceiling", math.Ceil),
		unary("Floor", math.Floor),
		unary("Truncate", math.Trunc),
		unary("Abs", math.Abs),
		staticMethod("Sign", []module.Parameter{param("x", "float64")}, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, err := value.ToFloat64(arg(args, 0))
				if err != nil {
					return nil, vmerrors.CannotCoerceError(arg(args, 0).Tag().String(), "float64")
				}
				switch {
				case x > 0:
					return value.Int32(1), nil
				case x < 0:
					return value.Int32(-1), nil
				default:
					return value.Int32(0), nil
				}
			}),
		staticMethod("Log", []module.Parameter{param("x", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, _ := value.ToFloat64(arg(args, 0))
				return value.Float64(math.Log(x)), nil
			}),
		staticMethod("Log", []module.Parameter{param("x", "float64"), param("newBase", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, _ := value.ToFloat64(arg(args, 0))
				base, _ := value.ToFloat64(arg(args, 1))
				return value.Float64(math.Log(x) / math.Log(base)), nil
			}),
		staticMethod("Atan2", []module.Parameter{param("y", "float64"), param("x", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				y, _ := value.ToFloat64(arg(args, 0))
				x, _ := value.ToFloat64(arg(args, 1))
				return value.Float64(math.Atan2(y, x)), nil
			}),
		staticMethod("Pow", []module.Parameter{param("x", "float64"), param("y", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, _ := value.ToFloat64(arg(args, 0))
				y, _ := value.ToFloat64(arg(args, 1))
				return value.Float64(math.Pow(x, y)), nil
			}),
		staticMethod("Round", []module.Parameter{param("x", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, _ := value.ToFloat64(arg(args, 0))
				return value.Float64(math.Round(x)), nil
			}),
		staticMethod("Round", []module.Parameter{param("x", "float64"), param("digits", "int32")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				x, _ := value.ToFloat64(arg(args, 0))
				digits, _ := value.ToInt64(arg(args, 1))
				scale := math.Pow(10, float64(digits))
				return value.Float64(math.Round(x*scale) / scale), nil
			}),
		staticMethod("Min", []module.Parameter{param("a", "float64"), param("b", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				a, _ := value.ToFloat64(arg(args, 0))
				b, _ := value.ToFloat64(arg(args, 1))
				return value.Float64(math.Min(a, b)), nil
			}),
		staticMethod("Max", []module.Parameter{param("a", "float64"), param("b", "float64")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				a, _ := value.ToFloat64(arg(args, 0))
				b, _ := value.ToFloat64(arg(args, 1))
				return value.Float64(math.Max(a, b)), nil
			}),
	}

	return &module.Class{Namespace: "System", Name: "Math", Methods: methods}
}
