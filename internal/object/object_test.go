package object

import (
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
)

func TestNewObjectDefaultsFieldsToNull(t *testing.T) {
	class := &module.Class{Name: "Point", Fields: []module.Field{{Name: "X"}, {Name: "Y"}}}
	obj := New(class)

	x, ok := obj.GetField("X")
	if !ok || !x.IsNull() {
		t.Errorf("GetField(X) = %v, %v, want Null, true", x, ok)
	}
}

func TestObjectFieldCaseInsensitive(t *testing.T) {
	class := &module.Class{Name: "Point", Fields: []module.Field{{Name: "X"}}}
	obj := New(class)

	if !obj.SetField("x", value.Int32(5)) {
		t.Fatal("SetField(x) should resolve to field X")
	}
	got, ok := obj.GetField("X")
	if !ok || got.AsInt32() != 5 {
		t.Errorf("GetField(X) = %v, %v, want 5, true", got, ok)
	}
}

func TestObjectBaseFieldFallback(t *testing.T) {
	base := &module.Class{Name: "Base", Fields: []module.Field{{Name: "Id"}}}
	derived := &module.Class{Name: "Derived", BaseName: "Base"}
	// simulate registry resolution
	derivedWithBase := derived
	m := module.NewModule("T", "1", []*module.Class{base, derivedWithBase})
	d, _ := m.Registry().Lookup("Derived")

	obj := New(d)
	if !obj.SetField("Id", value.Int32(9)) {
		t.Fatal("SetField(Id) should resolve through Base")
	}
	got, ok := obj.GetField("Id")
	if !ok || got.AsInt32() != 9 {
		t.Errorf("GetField(Id) = %v, %v, want 9, true", got, ok)
	}
}

func TestObjectRefCounting(t *testing.T) {
	obj := New(&module.Class{Name: "X"})
	obj.IncRef()
	obj.IncRef()
	if obj.RefCount() != 2 {
		t.Fatalf("RefCount() = %d, want 2", obj.RefCount())
	}
	if obj.DecRef() != 1 {
		t.Fatal("DecRef should return 1")
	}
	obj.DecRef()
	if obj.RefCount() != 0 {
		t.Fatal("RefCount should not go negative")
	}
	obj.DecRef()
	if obj.RefCount() != 0 {
		t.Fatal("DecRef below zero should clamp at zero")
	}
}

func TestArrayGetSetGrowsWithNullPadding(t *testing.T) {
	arr := NewArray("int32")
	arr.Set(3, value.Int32(42))
	if arr.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", arr.Len())
	}
	for i := 0; i < 3; i++ {
		if !arr.Get(i).IsNull() {
			t.Errorf("Get(%d) should be null padding", i)
		}
	}
	if arr.Get(3).AsInt32() != 42 {
		t.Error("Get(3) should be 42")
	}
}

func TestArrayOutOfRangeReadReturnsNull(t *testing.T) {
	arr := NewArray("int32")
	if !arr.Get(10).IsNull() {
		t.Error("out-of-range Get should return null")
	}
}

func TestArrayResize(t *testing.T) {
	arr := NewArray("int32")
	arr.Resize(2)
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	arr.Resize(0)
	if arr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", arr.Len())
	}
}
