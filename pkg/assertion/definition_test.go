package assertion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.failmsg/pkg/render"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colors = render.NewEnum("Color", render.Int[Color](),
	render.Member[Color]{Name: "Red", Value: Red},
	render.Member[Color]{Name: "Green", Value: Green},
	render.Member[Color]{Name: "Blue", Value: Blue},
)

type bomb struct{}

func (bomb) String() string { panic("boom") }

type faultyErr struct{}

func (faultyErr) Error() string { panic("no message") }

type label string

func (l label) String() string { return "label:" + string(l) }

func TestOperand_Helpers(t *testing.T) {
	tests := []struct {
		name     string
		operand  Operand
		expected string
	}{
		{"int", Int(-5), "-5"},
		{"uint", Uint(uint8(200)), "200"},
		{"float", Float(0.5), "0.5"},
		{"float32", Float(float32(1.5)), "1.5"},
		{"complex", Complex(complex(1, 2)), "1 + 2i"},
		{"bool", Bool(true), "true"},
		{"string", String("abc"), `"abc"`},
		{"char", Char(byte('x')), "'x'"},
		{"rune", Rune('é'), "'é'"},
		{"nil", Nil(), "`null`"},
		{"raw", Raw("anything"), "anything"},
		{"text", Text(label("a")), "label:a"},
		{"err", Err(errors.New("bad")), "bad"},
		{"nil err", Err(nil), "`null`"},
		{"enum member", Enum(colors, Green), "Green"},
		{"enum cast", Enum(colors, Color(5)), "cast(Color) 5"},
		{"slice", Slice(render.Int[int](), []int{1, 2}), "[1, 2]"},
		{"of", Of(render.Opaque[struct{}](), struct{}{}), "struct {}"},
		{"zero", Operand{}, "`null`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.operand.text(nil))
		})
	}
}

func TestOperand_HonoursRenderOptions(t *testing.T) {
	opts := []render.Option{
		render.WithMaxElements(2),
		render.WithFloatPrecision(3),
	}

	assert.Equal(t, "3.14", Float(3.14159).text(opts))
	assert.Equal(t, "[1, 2, ...]",
		Slice(render.Int[int](), []int{1, 2, 3}).text(opts))

	// Explicit renderers keep their own configuration.
	fixed := Of(render.Float[float64](), 3.14159)
	assert.Equal(t, "3.14159", fixed.text(opts))
}

func TestOperand_PanickingString(t *testing.T) {
	var seen []render.Panic
	hook := render.WithPanicHook(func(p render.Panic) { seen = append(seen, p) })

	got := Text(bomb{}).text([]render.Option{hook})
	assert.Equal(t, `<String() failed: "boom", called on bomb>`, got)
	require.Len(t, seen, 1)
	assert.Equal(t, "boom", seen[0].Reason)

	// A user-built renderer does not see the call's hook.
	seen = nil
	Of(render.Text[bomb](), bomb{}).text([]render.Option{hook})
	assert.Empty(t, seen)
}

func TestOperand_ErrUsesCallOptions(t *testing.T) {
	var seen []render.Panic
	hook := render.WithPanicHook(func(p render.Panic) { seen = append(seen, p) })

	assert.Equal(t, "`null`", Err(nil).text([]render.Option{hook}))
	assert.Empty(t, seen)

	got := Err(faultyErr{}).text([]render.Option{hook})
	assert.Contains(t, got, `<Error() failed:`)
	require.Len(t, seen, 1)
	assert.Equal(t, "Error", seen[0].Method)
}

func TestOperands(t *testing.T) {
	ops := Operands(Int(1), Int(2))
	assert.Len(t, ops, 2)
	assert.Empty(t, Operands())
}
