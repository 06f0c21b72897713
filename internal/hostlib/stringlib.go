package hostlib

import (
	"strings"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
)

// newStringClass builds System.String's static helper set: concatenation,
// length, substring, and the null-or-empty predicate.
func newStringClass() *module.Class {
	methods := []module.Method{
		staticMethod("Concat", []module.Parameter{param("a", "string"), param("b", "string")}, ret("string"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.String(arg(args, 0).AsString() + arg(args, 1).AsString()), nil
			}),
		staticMethod("Length", []module.Parameter{param("s", "string")}, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.Int32(int32(len(arg(args, 0).AsString()))), nil
			}),
		staticMethod("Substring", []module.Parameter{param("s", "string"), param("start", "int32"), param("length", "int32")}, ret("string"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				s := arg(args, 0).AsString()
				start := int(arg(args, 1).AsInt32())
				length := int(arg(args, 2).AsInt32())
				if start < 0 || start > len(s) {
					return value.String(""), nil
				}
				end := start + length
				if end > len(s) || length < 0 {
					end = len(s)
				}
				return value.String(s[start:end]), nil
			}),
		staticMethod("IsNullOrEmpty", []module.Parameter{param("s", "string")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				v := arg(args, 0)
				return value.Bool(v.IsNull() || v.AsString() == ""), nil
			}),
		staticMethod("ToUpper", []module.Parameter{param("s", "string")}, ret("string"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.String(strings.ToUpper(arg(args, 0).AsString())), nil
			}),
		staticMethod("ToLower", []module.Parameter{param("s", "string")}, ret("string"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				return value.String(strings.ToLower(arg(args, 0).AsString())), nil
			}),
	}
	return &module.Class{Namespace: "System", Name: "String", Methods: methods}
}
