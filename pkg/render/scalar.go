package render

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Bool renders true or false.
func Bool[T ~bool]() Renderer[T] {
	return func(v T) string {
		if v {
			return "true"
		}
		return "false"
	}
}

// Int renders an integer in decimal, honouring its signedness.
func Int[T Integer]() Renderer[T] {
	return formatInt[T]
}

func formatInt[T Integer](v T) string {
	var zero T
	if ^zero < zero {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// Char renders a single-byte character as a quoted literal when it
// is printable ASCII and as "cast(<type>) <decimal>" otherwise.
func Char[T ~uint8]() Renderer[T] {
	name := TypeName[T]()
	return func(c T) string {
		if c >= 0x20 && c < 0x7F {
			return string([]byte{'\'', byte(c), '\''})
		}
		return cast(name, strconv.FormatUint(uint64(c), 10))
	}
}

// Rune renders a code point as a quoted literal when it is a valid
// Unicode scalar value and as "cast(<type>) <decimal>" otherwise.
func Rune[T ~int32]() Renderer[T] {
	name := TypeName[T]()
	return func(r T) string {
		if utf8.ValidRune(rune(r)) {
			return "'" + string(rune(r)) + "'"
		}
		return cast(name, strconv.FormatInt(int64(r), 10))
	}
}

// Float renders a floating point value with FloatPrecision
// significant digits, trailing zeros trimmed.
func Float[T Floating](opts ...Option) Renderer[T] {
	prec := newConfig(opts).FloatPrecision
	return func(v T) string {
		return formatFloat(float64(v), prec)
	}
}

// Imaginary renders a purely imaginary quantity given by its
// coefficient, e.g. "2.5i".
func Imaginary[T Floating](opts ...Option) Renderer[T] {
	prec := newConfig(opts).FloatPrecision
	return func(v T) string {
		return formatFloat(float64(v), prec) + "i"
	}
}

// Complex renders "<re> + <im>i".
func Complex[T ComplexNumber](opts ...Option) Renderer[T] {
	prec := newConfig(opts).FloatPrecision
	return func(v T) string {
		c := complex128(v)
		return formatFloat(real(c), prec) + " + " +
			formatFloat(imag(c), prec) + "i"
	}
}

func formatFloat(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', prec, 64)
}

// Null renders every value as `null`. It is meant for operands
// whose static type is the nil literal itself.
func Null[T any]() Renderer[T] {
	return func(T) string {
		return nullText
	}
}

// Pointer renders the address held by p as uppercase hexadecimal,
// or `null` when p is nil.
func Pointer[T any]() Renderer[*T] {
	return func(p *T) string {
		if p == nil {
			return nullText
		}
		return hexAddress(uint64(uintptr(unsafe.Pointer(p))))
	}
}

// Address renders a raw address as uppercase hexadecimal.
func Address[T ~uintptr]() Renderer[T] {
	return func(a T) string {
		return hexAddress(uint64(a))
	}
}

func hexAddress(a uint64) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(a, 16))
}

// Opaque renders only the name of T. It is the fallback for values
// that have no better description.
func Opaque[T any]() Renderer[T] {
	name := TypeName[T]()
	return func(T) string {
		return name
	}
}
