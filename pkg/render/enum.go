package render

import "slices"

// Member associates an enumeration constant with its name.
type Member[T comparable] struct {
	Name  string
	Value T
}

// Enum is the name table of one enumeration type. It is built once
// and reused by every render of that type.
type Enum[T comparable] struct {
	name    string
	base    Renderer[T]
	members []Member[T]
}

// NewEnum builds the table for an enumeration. base renders values
// that match no member; name defaults to the name of T.
//
//	colors := render.NewEnum("Color", render.Int[Color](),
//	    render.Member[Color]{"Red", Red},
//	    render.Member[Color]{"Green", Green},
//	)
func NewEnum[T comparable](
	name string,
	base Renderer[T],
	members ...Member[T],
) *Enum[T] {
	if name == "" {
		name = TypeName[T]()
	}
	if base == nil {
		base = Opaque[T]()
	}
	return &Enum[T]{
		name:    name,
		base:    base,
		members: slices.Clone(members),
	}
}

// Render returns the name of the first member equal to v, or
// "cast(<Name>) <base rendering>" when v is not a member.
func (e *Enum[T]) Render(v T) string {
	for _, m := range e.members {
		if m.Value == v {
			return m.Name
		}
	}
	return cast(e.name, e.base(v))
}

// Renderer returns Render as a Renderer.
func (e *Enum[T]) Renderer() Renderer[T] {
	return e.Render
}

// Lookup returns the value of the member called name.
func (e *Enum[T]) Lookup(name string) (T, bool) {
	for _, m := range e.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	var zero T
	return zero, false
}

// Name returns the enumeration type name used in cast notation.
func (e *Enum[T]) Name() string { return e.name }

// Members returns a copy of the member table in declaration order.
func (e *Enum[T]) Members() []Member[T] {
	return slices.Clone(e.members)
}
