package render

import (
	"reflect"
)

// Panic describes a String or Error method that panicked while a
// value was being rendered.
type Panic struct {
	Method   string
	TypeName string
	Reason   string
}

// Text renders a value through its own String method in preference
// to any structural rendering. A nil value, including a typed nil
// pointer held in T, renders as `null` without calling String. A
// panicking String method is reported in place of the value and
// passed to Config.OnPanic.
func Text[T Textual](opts ...Option) Renderer[T] {
	name := TypeName[T]()
	onPanic := newConfig(opts).OnPanic
	return func(v T) string {
		if isNil(v) {
			return nullText
		}
		return callMethod("String", name, func() string { return v.String() }, onPanic)
	}
}

// TextRef is Text for pointer receivers: the nil check happens
// before String is called.
func TextRef[V any, P interface {
	*V
	Textual
}](opts ...Option) Renderer[P] {
	name := TypeName[P]()
	onPanic := newConfig(opts).OnPanic
	return func(p P) string {
		if p == nil {
			return nullText
		}
		return callMethod("String", name, func() string { return p.String() }, onPanic)
	}
}

// Error renders err.Error(), or `null` for a nil error or a typed
// nil held in err.
func Error(opts ...Option) Renderer[error] {
	onPanic := newConfig(opts).OnPanic
	return func(err error) string {
		if isNil(err) {
			return nullText
		}
		return callMethod("Error", nameOf(reflect.TypeOf(err)),
			func() string { return err.Error() }, onPanic)
	}
}

// isNil reports whether v is nil or holds a nil pointer, map,
// slice, func, channel or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func callMethod(
	method, typeName string,
	call func() string,
	onPanic func(Panic),
) (s string) {
	defer func() {
		if r := recover(); r != nil {
			p := Panic{Method: method, TypeName: typeName, Reason: panicReason(r)}
			s = p.placeholder()
			if onPanic != nil {
				onPanic(p)
			}
		}
	}()
	return call()
}

func (p Panic) placeholder() string {
	return "<" + p.Method + `() failed: "` + p.Reason +
		`", called on ` + p.TypeName + ">"
}

// panicReason describes a recovered panic value. Describing it may
// run user code again, so a second panic falls back to the type.
func panicReason(r any) (reason string) {
	defer func() {
		if recover() != nil {
			reason = "panic of type " + nameOf(reflect.TypeOf(r))
		}
	}()

	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	case Textual:
		return v.String()
	default:
		return "panic of type " + nameOf(reflect.TypeOf(r))
	}
}
