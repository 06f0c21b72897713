package vmcore

import (
	"github.com/charlie-sans/ObjectRuntime/internal/frame"
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
	"github.com/charlie-sans/ObjectRuntime/pkg/ident"
)

// resolveFieldTargetForLoad implements the ldfld/stfld target rule: if the
// top of stack is an object, pop and use it; otherwise use F.this.
func (interp *Interpreter) resolveFieldTargetForLoad(f *frame.CallFrame) (*object.Object, error) {
	if f.StackLen() > 0 {
		top, err := f.Peek()
		if err == nil && top.Tag() == value.TagObject {
			if obj, ok := top.AsObject().(*object.Object); ok {
				f.Pop()
				return obj, nil
			}
		}
	}
	if f.This == nil {
		return nil, vmerrors.TypeMismatchError("ldfld/stfld requires an object operand or an instance-method context")
	}
	return f.This, nil
}

func (interp *Interpreter) execNewObj(f *frame.CallFrame, inst module.Instruction) error {
	class, ok := interp.Registry.Lookup(inst.TypeName)
	if !ok {
		return vmerrors.ClassNotFoundError(inst.TypeName)
	}
	obj := object.New(class)
	f.Push(value.Object(obj))
	return nil
}

// execNewArr pushes a new, empty resizable ordered sequence; stelem grows
// it with null padding (object.Array.Set).
func (interp *Interpreter) execNewArr(f *frame.CallFrame, inst module.Instruction) error {
	elementType := module.NormalizeTypeName(inst.TypeName)
	f.Push(value.Object(object.NewArray(elementType)))
	return nil
}

func (interp *Interpreter) execLdElem(f *frame.CallFrame) error {
	idxVal, err := f.Pop()
	if err != nil {
		return err
	}
	arrVal, err := f.Pop()
	if err != nil {
		return err
	}
	arr, ok := arrVal.AsObject().(*object.Array)
	if !ok {
		return vmerrors.InvalidOperandError("ldelem", arrVal.Tag().String())
	}
	index, err := value.ToInt64(idxVal)
	if err != nil {
		return vmerrors.CannotCoerceError(idxVal.Tag().String(), "int64")
	}
	f.Push(arr.Get(int(index)))
	return nil
}

func (interp *Interpreter) execStElem(f *frame.CallFrame) error {
	v, err := f.Pop()
	if err != nil {
		return err
	}
	idxVal, err := f.Pop()
	if err != nil {
		return err
	}
	arrVal, err := f.Pop()
	if err != nil {
		return err
	}
	arr, ok := arrVal.AsObject().(*object.Array)
	if !ok {
		return vmerrors.InvalidOperandError("stelem", arrVal.Tag().String())
	}
	index, err := value.ToInt64(idxVal)
	if err != nil {
		return vmerrors.CannotCoerceError(idxVal.Tag().String(), "int64")
	}
	arr.Set(int(index), v)
	return nil
}

func (interp *Interpreter) execCastClass(f *frame.CallFrame, inst module.Instruction) error {
	v, err := f.Pop()
	if err != nil {
		return err
	}
	if v.IsNull() {
		f.Push(value.Null)
		return nil
	}
	if !objectMatchesType(v, inst.TypeName) {
		return vmerrors.CannotCastError(v.Tag().String(), inst.TypeName)
	}
	f.Push(v)
	return nil
}

func (interp *Interpreter) execIsInst(f *frame.CallFrame, inst module.Instruction) error {
	v, err := f.Pop()
	if err != nil {
		return err
	}
	f.Push(value.Bool(!v.IsNull() && objectMatchesType(v, inst.TypeName)))
	return nil
}

// objectMatchesType reports whether v is an Object whose class, or one of
// its ancestors, matches target (compared as normalized class names).
func objectMatchesType(v value.Value, target string) bool {
	if v.Tag() != value.TagObject {
		return false
	}
	obj, ok := v.AsObject().(*object.Object)
	if !ok {
		return ident.Equal(v.AsObject().ClassName(), target)
	}
	if obj.Class == nil {
		return false
	}
	for _, ancestor := range obj.Class.Ancestors() {
		if ident.Equal(ancestor.Name, target) || ident.Equal(ancestor.QualifiedName(), target) {
			return true
		}
	}
	return false
}
