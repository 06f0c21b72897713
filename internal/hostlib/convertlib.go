package hostlib

import (
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// newConvertClass builds System.Convert: numeric/string/bool conversions
// between the scalar tags, reusing value's own coercion rules so the
// alias/parsing behavior stays identical to ldc/if-condition coercion.
func newConvertClass() *module.Class {
	toInt64 := func(name string, project func(int64) interface{}) module.Method {
		return staticMethod(name, []module.Parameter{param("value", "object")}, ret("int64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				i, err := value.ToInt64(arg(args, 0))
				if err != nil {
					return nil, vmerrors.CannotCoerceError(arg(args, 0).Tag().String(), "int64")
				}
				return project(i), nil
			})
	}

	methods := []module.Method{
		toInt64("ToInt32", func(i int64) interface{} { return value.Int32(int32(i)) }),
		toInt64("ToInt64", func(i int64) interface{} { return value.Int64(i) }),
		staticMethod("ToFloat32", []module.Parameter{param("value", "object")}, ret("float32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				f, err := value.ToFloat64(arg(args, 0))
				if err != nil {
					return nil, vmerrors.CannotCoerceError(arg(args, 0).Tag().String(), "float32")
				}
				return value.Float32(float32(f)), nil
			}),
		staticMethod("ToFloat64", []module.Parameter{param("value", "object")}, ret("float64"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				f, err := value.ToFloat64(arg(args, 0))
				if err != nil {
					return nil, vmerrors.CannotCoerceError(arg(args, 0).Tag().String(), "float64")
				}
				return value.Float64(f), nil
			}),
		staticMethod("ToBoolean", []module.Parameter{param("value", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.Bool(value.ToBool(arg(args, 0))), nil
			}),
		staticMethod("ToString", []module.Parameter{param("value", "object")}, ret("string"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.String(arg(args, 0).String()), nil
			}),
	}
	return &module.Class{Namespace: "System", Name: "Convert", Methods: methods}
}
