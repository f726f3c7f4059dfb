// Package assertion synthesizes the diagnostic shown when a boolean
// comparison in an assertion fails.
//
// The operands of the failed comparison are wrapped in Operands at
// the call site, where their static types pick a renderer:
//
//	msg := assertion.Binary(ctx, operator.Equal,
//	    []assertion.Operand{assertion.Int(5)},
//	    []assertion.Operand{assertion.Int(6)},
//	) // "5 != 6"
//
// Rendering runs only after the synthesizer has checked that ctx is
// not a finalization context; see package guard.
package assertion

import (
	"digital.vasic.failmsg/pkg/render"
)

// Operand is one side value of a failed comparison together with
// the renderer selected for its type. It is rendered lazily, with
// the tunables of the synthesizer that receives it. The zero
// Operand renders as `null`.
type Operand struct {
	render func(opts []render.Option) string
}

func (o Operand) text(opts []render.Option) string {
	if o.render == nil {
		return nullOperand
	}
	return o.render(opts)
}

var nullOperand = render.Null[any]()(nil)

// Of pairs v with an explicit renderer.
func Of[T any](r render.Renderer[T], v T) Operand {
	return Operand{render: func([]render.Option) string {
		return r(v)
	}}
}

// Raw is an operand whose text is already known.
func Raw(text string) Operand {
	return Operand{render: func([]render.Option) string {
		return text
	}}
}

// Int renders any integer in decimal.
func Int[T render.Integer](v T) Operand {
	return Of(render.Int[T](), v)
}

// Uint is Int restricted to unsigned types.
func Uint[T render.Unsigned](v T) Operand {
	return Of(render.Int[T](), v)
}

// Float renders with the synthesizer's float precision.
func Float[T render.Floating](v T) Operand {
	return Operand{render: func(opts []render.Option) string {
		return render.Float[T](opts...)(v)
	}}
}

// Complex renders a complex number as "re + imi".
func Complex[T render.ComplexNumber](v T) Operand {
	return Operand{render: func(opts []render.Option) string {
		return render.Complex[T](opts...)(v)
	}}
}

func Bool[T ~bool](v T) Operand {
	return Of(render.Bool[T](), v)
}

func String[S ~string](v S) Operand {
	return Of(render.String[S](), v)
}

// Char renders a single byte character.
func Char[T ~uint8](v T) Operand {
	return Of(render.Char[T](), v)
}

// Rune renders a Unicode code point.
func Rune[T ~int32](v T) Operand {
	return Of(render.Rune[T](), v)
}

// Nil is the operand for a literal nil.
func Nil() Operand {
	return Raw(nullOperand)
}

// Text renders v through its String method.
func Text[T render.Textual](v T) Operand {
	return Operand{render: func(opts []render.Option) string {
		return render.Text[T](opts...)(v)
	}}
}

// Err renders err through its Error method.
func Err(err error) Operand {
	return Operand{render: func(opts []render.Option) string {
		return render.Error(opts...)(err)
	}}
}

// Enum renders v by its member name in e.
func Enum[T comparable](e *render.Enum[T], v T) Operand {
	return Of(e.Renderer(), v)
}

// Slice renders v with the synthesizer's element cap.
func Slice[T any](elem render.Renderer[T], v []T) Operand {
	return Operand{render: func(opts []render.Option) string {
		return render.Slice(elem, opts...)(v)
	}}
}

// Operands is a shorthand for building one side of a comparison.
func Operands(ops ...Operand) []Operand {
	return ops
}
