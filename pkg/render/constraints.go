package render

// Signed matches every signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches every integer type.
type Integer interface {
	Signed | Unsigned
}

// Floating matches the real floating point types.
type Floating interface {
	~float32 | ~float64
}

// ComplexNumber matches the complex types.
type ComplexNumber interface {
	~complex64 | ~complex128
}

// Textual is implemented by values that describe themselves.
type Textual interface {
	String() string
}
