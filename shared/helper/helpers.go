package helper

import (
	"reflect"
)

// TypedValueOf asserts v to T. It reports false for a nil v or a type
// mismatch.
func TypedValueOf[T any](v any) (res T, ok bool) {
	res, ok = v.(T)
	return
}

// IsNil reports whether v is nil or a typed nil of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsZero reports whether v is the zero value of T.
func IsZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
