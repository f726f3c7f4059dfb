// Package render turns assertion operands into text.
//
// A Renderer is chosen per operand type when the call site is
// compiled: the generic constructors in this package are constrained
// by small type sets (integers, floats, textual values, pointers...)
// so the shape of a value is decided by its static type and never by
// inspecting it at run time. Composite renderers (slices, maps,
// records) take the renderers of their parts, which keeps the
// recursion explicit:
//
//	points := render.Slice(render.Record("Point",
//	    render.FieldOf(func(p Point) int { return p.X }, render.Int[int]()),
//	    render.FieldOf(func(p Point) int { return p.Y }, render.Int[int]()),
//	))
//	points([]Point{{1, 2}}) // "[Point(1, 2)]"
//
// Renderers never panic. A value that cannot be described falls back
// to its type name, invalid enum members and code points fall back to
// cast notation.
package render

import (
	"reflect"
	"strings"
)

// Renderer converts one operand into its textual form. It may read
// the operand but never modifies it.
type Renderer[T any] func(v T) string

const (
	// DefaultMaxElements is how many elements of a slice or map are
	// rendered before the rest is replaced by "...".
	DefaultMaxElements = 30

	// DefaultFloatPrecision is the number of significant digits used
	// for floating point values.
	DefaultFloatPrecision = 6
)

const (
	nullText      = "`null`"
	ellipsis      = "..."
	listSeparator = ", "
	contextMarker = "<context>: "
)

// Config holds the tunables shared by the renderers.
type Config struct {
	// MaxElements caps the rendered length of slices and maps.
	MaxElements int `yaml:"max_elements" json:"max_elements"`

	// FloatPrecision is the number of significant digits for
	// floating point and complex values.
	FloatPrecision int `yaml:"float_precision" json:"float_precision"`

	// OnPanic, when set, is told about every String or Error panic
	// recovered by the textual renderers built with this config.
	OnPanic func(Panic) `yaml:"-" json:"-"`
}

// DefaultConfig returns the built-in tunables.
func DefaultConfig() Config {
	return Config{
		MaxElements:    DefaultMaxElements,
		FloatPrecision: DefaultFloatPrecision,
	}
}

// Option configures a renderer at construction time.
type Option func(*Config)

// WithMaxElements sets the element cap for slices and maps.
func WithMaxElements(n int) Option {
	return func(c *Config) {
		c.MaxElements = n
	}
}

// WithFloatPrecision sets the significant digits for floats.
func WithFloatPrecision(p int) Option {
	return func(c *Config) {
		c.FloatPrecision = p
	}
}

// WithPanicHook sets Config.OnPanic.
func WithPanicHook(fn func(Panic)) Option {
	return func(c *Config) {
		c.OnPanic = fn
	}
}

// WithConfig replaces all tunables at once.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxElements < 1 {
		cfg.MaxElements = DefaultMaxElements
	}
	if cfg.FloatPrecision < 1 {
		cfg.FloatPrecision = DefaultFloatPrecision
	}
	return cfg
}

// TypeName returns the unqualified name of T, or its full type
// literal when T is unnamed. It only reads type metadata.
func TypeName[T any]() string {
	return nameOf(reflect.TypeFor[T]())
}

func nameOf(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func cast(typeName, value string) string {
	return "cast(" + typeName + ") " + value
}

// join writes open, the parts separated by ", ", an optional
// truncation marker and close into a buffer of exactly the right
// size.
func join(open string, parts []string, truncated bool, close string) string {
	n := len(open) + len(close)
	for i, p := range parts {
		if i > 0 {
			n += len(listSeparator)
		}
		n += len(p)
	}
	if truncated {
		if len(parts) > 0 {
			n += len(listSeparator)
		}
		n += len(ellipsis)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(open)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(listSeparator)
		}
		b.WriteString(p)
	}
	if truncated {
		if len(parts) > 0 {
			b.WriteString(listSeparator)
		}
		b.WriteString(ellipsis)
	}
	b.WriteString(close)
	return b.String()
}
