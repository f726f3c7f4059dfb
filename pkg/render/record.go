package render

// Field renders one member of a record of type T.
type Field[T any] struct {
	render  func(T) string
	context bool
}

// FieldOf describes a record member read by get and rendered by r.
func FieldOf[T, F any](get func(T) F, r Renderer[F]) Field[T] {
	return Field[T]{
		render: func(v T) string { return r(get(v)) },
	}
}

// ContextOf describes the captured environment of a closure-like
// record. It is always rendered last, as "<context>: <value>".
func ContextOf[T, F any](get func(T) F, r Renderer[F]) Field[T] {
	return Field[T]{
		render:  func(v T) string { return r(get(v)) },
		context: true,
	}
}

// Record renders "<Name>(<field1>, <field2>, ...)" with fields in
// declaration order. An empty name defaults to the name of T.
func Record[T any](name string, fields ...Field[T]) Renderer[T] {
	if name == "" {
		name = TypeName[T]()
	}

	ordered := make([]Field[T], 0, len(fields))
	for _, f := range fields {
		if !f.context {
			ordered = append(ordered, f)
		}
	}
	for _, f := range fields {
		if f.context {
			ordered = append(ordered, f)
		}
	}

	open := name + "("
	return func(v T) string {
		parts := make([]string, len(ordered))
		for i, f := range ordered {
			if f.context {
				parts[i] = contextMarker + f.render(v)
				continue
			}
			parts[i] = f.render(v)
		}
		return join(open, parts, false, ")")
	}
}

// Deref renders the value p points to, or `null` for a nil p.
func Deref[T any](elem Renderer[T]) Renderer[*T] {
	return func(p *T) string {
		if p == nil {
			return nullText
		}
		return elem(*p)
	}
}

// Atomic renders a value shared between goroutines by reading it
// through its Load method, so the read never races a concurrent
// Store:
//
//	hits := render.Atomic[atomic.Int64](render.Int[int64]())
//	hits(&counter)
func Atomic[V, T any, P interface {
	*V
	Load() T
}](elem Renderer[T]) Renderer[P] {
	return func(p P) string {
		if p == nil {
			return nullText
		}
		return elem(p.Load())
	}
}

// Shared is the best-effort rendering of a shared value that offers
// no atomic load. The read is unsynchronized.
func Shared[T any](elem Renderer[T]) Renderer[*T] {
	return Deref(elem)
}
