package render

import (
	"cmp"
	"maps"
	"slices"
)

// String renders a string double-quoted and verbatim.
func String[S ~string]() Renderer[S] {
	return func(s S) string {
		return `"` + string(s) + `"`
	}
}

// Runes renders a rune slice as a double-quoted UTF-8 string.
func Runes[S ~[]rune]() Renderer[S] {
	return func(s S) string {
		return `"` + string(s) + `"`
	}
}

// Slice renders "[e1, e2, ...]". After MaxElements elements the
// rest is replaced by "...".
func Slice[T any](elem Renderer[T], opts ...Option) Renderer[[]T] {
	limit := newConfig(opts).MaxElements
	return func(s []T) string {
		n := min(len(s), limit)
		parts := make([]string, n)
		for i := range n {
			parts[i] = elem(s[i])
		}
		return join("[", parts, len(s) > limit, "]")
	}
}

// Vector renders every lane of a fixed-width vector as
// "[l1, l2, ...]". Vectors are never truncated.
func Vector[T any](elem Renderer[T]) Renderer[[]T] {
	return func(lanes []T) string {
		parts := make([]string, len(lanes))
		for i, l := range lanes {
			parts[i] = elem(l)
		}
		return join("[", parts, false, "]")
	}
}

// Vec2 renders a two-lane vector.
func Vec2[T any](elem Renderer[T]) Renderer[[2]T] {
	v := Vector(elem)
	return func(a [2]T) string { return v(a[:]) }
}

// Vec4 renders a four-lane vector.
func Vec4[T any](elem Renderer[T]) Renderer[[4]T] {
	v := Vector(elem)
	return func(a [4]T) string { return v(a[:]) }
}

// Vec8 renders an eight-lane vector.
func Vec8[T any](elem Renderer[T]) Renderer[[8]T] {
	v := Vector(elem)
	return func(a [8]T) string { return v(a[:]) }
}

// Vec16 renders a sixteen-lane vector.
func Vec16[T any](elem Renderer[T]) Renderer[[16]T] {
	v := Vector(elem)
	return func(a [16]T) string { return v(a[:]) }
}

// Map renders "[k1: v1, k2: v2, ...]" in map iteration order with
// the same element cap as Slice.
func Map[K comparable, V any](
	key Renderer[K],
	val Renderer[V],
	opts ...Option,
) Renderer[map[K]V] {
	limit := newConfig(opts).MaxElements
	return func(m map[K]V) string {
		parts := make([]string, 0, min(len(m), limit))
		for k, v := range m {
			if len(parts) == limit {
				break
			}
			parts = append(parts, key(k)+": "+val(v))
		}
		return join("[", parts, len(m) > limit, "]")
	}
}

// SortedMap is Map with keys visited in ascending order, which makes
// the output reproducible.
func SortedMap[K cmp.Ordered, V any](
	key Renderer[K],
	val Renderer[V],
	opts ...Option,
) Renderer[map[K]V] {
	limit := newConfig(opts).MaxElements
	return func(m map[K]V) string {
		keys := slices.Sorted(maps.Keys(m))
		n := min(len(keys), limit)
		parts := make([]string, n)
		for i, k := range keys[:n] {
			parts[i] = key(k) + ": " + val(m[k])
		}
		return join("[", parts, len(keys) > limit, "]")
	}
}
