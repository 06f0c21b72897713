package hostlib

import (
	"fmt"
	"io"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
)

// newConsoleClass builds System.Console: a line-terminated sink over a
// replaceable output writer so tests may redirect output, overloaded per
// primitive type plus a parameterless WriteLine for a bare newline.
func newConsoleClass(output io.Writer) *module.Class {
	writeLine := func(nl bool) module.NativeFunc {
		return func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
			if len(args) > 0 {
				fmt.Fprint(output, arg(args, 0).String())
			}
			if nl {
				fmt.Fprint(output, "\n")
			}
			return nil, nil
		}
	}

	var methods []module.Method
	for _, t := range []string{"string", "int32", "int64", "float32", "float64", "bool", "object"} {
		methods = append(methods,
			staticMethod("WriteLine", []module.Parameter{param("value", t)}, ret("void"), writeLine(true)),
			staticMethod("Write", []module.Parameter{param("value", t)}, ret("void"), writeLine(false)),
		)
	}
	methods = append(methods, staticMethod("WriteLine", nil, ret("void"), writeLine(true)))

	return &module.Class{Namespace: "System", Name: "Console", Methods: methods}
}
