package frame

import (
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
)

func testMethod() *module.Method {
	return &module.Method{
		Name:       "Add",
		Parameters: []module.Parameter{{Name: "a"}, {Name: "b"}},
		Locals:     []module.LocalVariable{{Name: "sum"}},
	}
}

func TestCallFrameArgBinding(t *testing.T) {
	f := New(testMethod(), nil, []value.Value{value.Int32(1), value.Int32(2)})

	a, err := f.GetArgByName("a")
	if err != nil || a.AsInt32() != 1 {
		t.Fatalf("GetArgByName(a) = %v, %v", a, err)
	}
	b, err := f.GetArgByIndex(1)
	if err != nil || b.AsInt32() != 2 {
		t.Fatalf("GetArgByIndex(1) = %v, %v", b, err)
	}
}

func TestCallFrameThisArg(t *testing.T) {
	obj := object.New(&module.Class{Name: "Foo"})
	f := New(&module.Method{Name: "M"}, obj, nil)

	v, err := f.GetArgByName("this")
	if err != nil {
		t.Fatalf("GetArgByName(this) error = %v", err)
	}
	if v.AsObject() != obj {
		t.Error("this should resolve to the frame's instance")
	}
}

func TestCallFrameStack(t *testing.T) {
	f := New(&module.Method{}, nil, nil)
	f.Push(value.Int32(1))
	f.Push(value.Int32(2))

	v, err := f.Pop()
	if err != nil || v.AsInt32() != 2 {
		t.Fatalf("Pop() = %v, %v, want 2", v, err)
	}
	if f.StackLen() != 1 {
		t.Fatalf("StackLen() = %d, want 1", f.StackLen())
	}
}

func TestCallFramePopEmptyIsStackUnderflow(t *testing.T) {
	f := New(&module.Method{}, nil, nil)
	if _, err := f.Pop(); err == nil {
		t.Error("expected StackUnderflow error on empty pop")
	}
}

func TestCallFrameLocals(t *testing.T) {
	f := New(testMethod(), nil, nil)
	if err := f.SetLocal("sum", value.Int32(9)); err != nil {
		t.Fatalf("SetLocal error = %v", err)
	}
	v, err := f.GetLocal("sum")
	if err != nil || v.AsInt32() != 9 {
		t.Fatalf("GetLocal(sum) = %v, %v", v, err)
	}
	if _, err := f.GetLocal("missing"); err == nil {
		t.Error("expected NotFound for undeclared local")
	}
}

func TestCallStackPushPopRecursionLimit(t *testing.T) {
	s := NewStack(2)
	f1 := New(&module.Method{Name: "A"}, nil, nil)
	f2 := New(&module.Method{Name: "B"}, nil, nil)
	f3 := New(&module.Method{Name: "C"}, nil, nil)

	if err := s.Push(f1); err != nil {
		t.Fatalf("Push 1 error = %v", err)
	}
	if err := s.Push(f2); err != nil {
		t.Fatalf("Push 2 error = %v", err)
	}
	if err := s.Push(f3); err == nil {
		t.Error("expected RecursionLimit error on third push")
	}
	if s.Top() != f2 {
		t.Error("Top() should be the most recently pushed frame")
	}
	s.Pop()
	if s.Top() != f1 {
		t.Error("Top() should be f1 after popping f2")
	}
}
