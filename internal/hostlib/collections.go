package hostlib

import (
	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/object"
	"github.com/charlie-sans/ObjectRuntime/internal/value"
	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
)

// selfObject recovers the receiving *object.Object from a native call's
// self parameter, which is nil only for static methods.
func selfObject(self interface{}) (*object.Object, error) {
	obj, ok := self.(*object.Object)
	if !ok || obj == nil {
		return nil, vmerrors.HostError("instance method called without a receiver")
	}
	return obj, nil
}

// newListClass builds System.Collections.List: an ordered sequence backed
// by a []value.Value stored in the instance's HostData slot, with the
// usual Count/Add/Remove/Contains/Clear operations.
func newListClass() *module.Class {
	elements := func(obj *object.Object) []value.Value {
		if s, ok := obj.HostData.([]value.Value); ok {
			return s
		}
		return nil
	}

	methods := []module.Method{
		instanceMethod("Add", []module.Parameter{param("item", "object")}, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = append(elements(obj), arg(args, 0))
				return nil, nil
			}),
		instanceMethod("Remove", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				target := arg(args, 0)
				list := elements(obj)
				for i, v := range list {
					if value.Equal(v, target) {
						obj.HostData = append(list[:i], list[i+1:]...)
						return value.Bool(true), nil
					}
				}
				return value.Bool(false), nil
			}),
		instanceMethod("Contains", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				target := arg(args, 0)
				for _, v := range elements(obj) {
					if value.Equal(v, target) {
						return value.Bool(true), nil
					}
				}
				return value.Bool(false), nil
			}),
		instanceMethod("Clear", nil, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = nil
				return nil, nil
			}),
		instanceMethod("Count", nil, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				return value.Int32(int32(len(elements(obj)))), nil
			}),
		instanceMethod("Get", []module.Parameter{param("index", "int32")}, ret("object"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				list := elements(obj)
				i := int(arg(args, 0).AsInt32())
				if i < 0 || i >= len(list) {
					return nil, vmerrors.IndexOutOfBoundsError(i, len(list))
				}
				return list[i], nil
			}),
	}
	return &module.Class{Namespace: "System.Collections", Name: "List", Methods: methods}
}

// newDictionaryClass builds System.Collections.Dictionary: a keyed-mapping
// backed by map[value.Value]value.Value. Keys compare by Go's native
// struct equality (tag and raw payload), not the component-wise numeric
// coercion value.Equal applies elsewhere — a deliberate simplification
// documented in DESIGN.md.
func newDictionaryClass() *module.Class {
	entries := func(obj *object.Object) map[value.Value]value.Value {
		m, ok := obj.HostData.(map[value.Value]value.Value)
		if !ok {
			m = make(map[value.Value]value.Value)
			obj.HostData = m
		}
		return m
	}

	methods := []module.Method{
		instanceMethod("Add", []module.Parameter{param("key", "object"), param("value", "object")}, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				entries(obj)[arg(args, 0)] = arg(args, 1)
				return nil, nil
			}),
		instanceMethod("Remove", []module.Parameter{param("key", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				m := entries(obj)
				key := arg(args, 0)
				if _, ok := m[key]; !ok {
					return value.Bool(false), nil
				}
				delete(m, key)
				return value.Bool(true), nil
			}),
		instanceMethod("Contains", []module.Parameter{param("key", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				_, ok := entries(obj)[arg(args, 0)]
				return value.Bool(ok), nil
			}),
		instanceMethod("Get", []module.Parameter{param("key", "object")}, ret("object"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				v, ok := entries(obj)[arg(args, 0)]
				if !ok {
					return value.Null, nil
				}
				return v, nil
			}),
		instanceMethod("Clear", nil, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = nil
				return nil, nil
			}),
		instanceMethod("Count", nil, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				return value.Int32(int32(len(entries(obj)))), nil
			}),
	}
	return &module.Class{Namespace: "System.Collections", Name: "Dictionary", Methods: methods}
}

// newQueueClass builds System.Collections.Queue: FIFO semantics over the
// same []value.Value HostData shape as List.
func newQueueClass() *module.Class {
	elements := func(obj *object.Object) []value.Value {
		if s, ok := obj.HostData.([]value.Value); ok {
			return s
		}
		return nil
	}
	methods := []module.Method{
		instanceMethod("Add", []module.Parameter{param("item", "object")}, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = append(elements(obj), arg(args, 0))
				return nil, nil
			}),
		instanceMethod("Remove", nil, ret("object"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				list := elements(obj)
				if len(list) == 0 {
					return value.Null, nil
				}
				head := list[0]
				obj.HostData = list[1:]
				return head, nil
			}),
		instanceMethod("Contains", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				target := arg(args, 0)
				for _, v := range elements(obj) {
					if value.Equal(v, target) {
						return value.Bool(true), nil
					}
				}
				return value.Bool(false), nil
			}),
		instanceMethod("Clear", nil, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = nil
				return nil, nil
			}),
		instanceMethod("Count", nil, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				return value.Int32(int32(len(elements(obj)))), nil
			}),
	}
	return &module.Class{Namespace: "System.Collections", Name: "Queue", Methods: methods}
}

// newStackClass builds System.Collections.Stack: LIFO semantics, Remove
// pops from the end (matching Add's append-at-end).
func newStackClass() *module.Class {
	elements := func(obj *object.Object) []value.Value {
		if s, ok := obj.HostData.([]value.Value); ok {
			return s
		}
		return nil
	}
	methods := []module.Method{
		instanceMethod("Add", []module.Parameter{param("item", "object")}, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = append(elements(obj), arg(args, 0))
				return nil, nil
			}),
		instanceMethod("Remove", nil, ret("object"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				list := elements(obj)
				if len(list) == 0 {
					return value.Null, nil
				}
				top := list[len(list)-1]
				obj.HostData = list[:len(list)-1]
				return top, nil
			}),
		instanceMethod("Contains", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				target := arg(args, 0)
				for _, v := range elements(obj) {
					if value.Equal(v, target) {
						return value.Bool(true), nil
					}
				}
				return value.Bool(false), nil
			}),
		instanceMethod("Clear", nil, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = nil
				return nil, nil
			}),
		instanceMethod("Count", nil, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				return value.Int32(int32(len(elements(obj)))), nil
			}),
	}
	return &module.Class{Namespace: "System.Collections", Name: "Stack", Methods: methods}
}

// newHashSetClass builds System.Collections.HashSet over
// map[value.Value]struct{}, subject to the same native-equality
// simplification as Dictionary.
func newHashSetClass() *module.Class {
	entries := func(obj *object.Object) map[value.Value]struct{} {
		m, ok := obj.HostData.(map[value.Value]struct{})
		if !ok {
			m = make(map[value.Value]struct{})
			obj.HostData = m
		}
		return m
	}
	methods := []module.Method{
		instanceMethod("Add", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				m := entries(obj)
				key := arg(args, 0)
				if _, ok := m[key]; ok {
					return value.Bool(false), nil
				}
				m[key] = struct{}{}
				return value.Bool(true), nil
			}),
		instanceMethod("Remove", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				m := entries(obj)
				key := arg(args, 0)
				if _, ok := m[key]; !ok {
					return value.Bool(false), nil
				}
				delete(m, key)
				return value.Bool(true), nil
			}),
		instanceMethod("Contains", []module.Parameter{param("item", "object")}, ret("bool"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				_, ok := entries(obj)[arg(args, 0)]
				return value.Bool(ok), nil
			}),
		instanceMethod("Clear", nil, ret("void"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				obj.HostData = nil
				return nil, nil
			}),
		instanceMethod("Count", nil, ret("int32"),
			func(self interface{}, args []interface{}, interp interface{}) (interface{}, error) {
				obj, err := selfObject(self)
				if err != nil {
					return nil, err
				}
				return value.Int32(int32(len(entries(obj)))), nil
			}),
	}
	return &module.Class{Namespace: "System.Collections", Name: "HashSet", Methods: methods}
}
