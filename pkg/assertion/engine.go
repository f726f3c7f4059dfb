package assertion

import (
	"context"
	"slices"
	"time"

	"digital.vasic.failmsg/pkg/combine"
	"digital.vasic.failmsg/pkg/guard"
	"digital.vasic.failmsg/pkg/logging"
	"digital.vasic.failmsg/pkg/metrics"
	"digital.vasic.failmsg/pkg/operator"
	"digital.vasic.failmsg/pkg/render"
)

// UnaryNegation is the operator of a failed "assert(!x)".
const UnaryNegation = "!"

// unaryRight is the implicit right operand of a unary assertion.
var unaryRight = []string{"true"}

// Synthesizer builds failure messages. It is immutable after
// construction and safe for concurrent use.
type Synthesizer struct {
	logger     logging.Logger
	metrics    metrics.SynthesizerMetrics
	renderOpts []render.Option
}

// NewSynthesizer creates a Synthesizer with a silent logger and
// no-op metrics unless options say otherwise.
func NewSynthesizer(opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Binary returns the message for a failed "left token right". Each
// side holds one or more operands; several operands form a tuple.
// The message states the relation that actually holds, so token is
// inverted: "5 == 6" failing yields "5 != 6".
//
// Binary panics with an *operator.InvalidTokenError when token is
// not a comparison operator.
func (s *Synthesizer) Binary(
	ctx context.Context,
	token operator.Token,
	left, right []Operand,
) string {
	if guard.InFinalizer(ctx) {
		s.metrics.RecordFallback()
		return guard.FallbackMessage
	}
	start := time.Now()

	inverted := operator.Invert(token)
	opts := s.callOptions(inverted)
	l := renderAll(left, opts)
	r := renderAll(right, opts)
	msg := combine.Combine(l, string(inverted), r)

	s.observe(metrics.KindBinary, inverted, msg, start)
	return msg
}

// Unary returns the message for a failed single-operand assertion.
// The operand is compared against the literal true: op "!" (a
// failed "assert(!x)") yields "x == true", any other op yields
// "x != true".
func (s *Synthesizer) Unary(ctx context.Context, op string, x Operand) string {
	if guard.InFinalizer(ctx) {
		s.metrics.RecordFallback()
		return guard.FallbackMessage
	}
	start := time.Now()

	token := operator.NotEqual
	if op == UnaryNegation {
		token = operator.Equal
	}
	l := renderAll([]Operand{x}, s.callOptions(token))
	msg := combine.Combine(l, string(token), unaryRight)

	s.observe(metrics.KindUnary, token, msg, start)
	return msg
}

// callOptions returns the render options for one message: the
// configured tunables plus a hook that reports String and Error
// panics recovered while rendering its operands.
func (s *Synthesizer) callOptions(token operator.Token) []render.Option {
	hook := render.WithPanicHook(func(p render.Panic) {
		s.metrics.RecordRenderPanic()
		s.logger.Warn("operand rendering panicked",
			logging.TokenField(string(token)),
			logging.StringField("method", p.Method),
			logging.StringField("type", p.TypeName),
			logging.StringField("reason", p.Reason))
	})
	return append(slices.Clip(s.renderOpts), hook)
}

func renderAll(ops []Operand, opts []render.Option) []string {
	fns := make([]func() string, len(ops))
	for i, op := range ops {
		fns[i] = func() string { return op.text(opts) }
	}
	return guard.TrustedAll(fns)
}

func (s *Synthesizer) observe(
	kind string,
	token operator.Token,
	msg string,
	start time.Time,
) {
	s.metrics.RecordMessage(kind, string(token), time.Since(start))
	s.logger.Debug("synthesized failure message",
		logging.StringField("kind", kind),
		logging.TokenField(string(token)),
		logging.MessageField(msg))
}

var defaultSynthesizer = NewSynthesizer()

// Binary builds a message with the default synthesizer.
func Binary(ctx context.Context, token operator.Token, left, right []Operand) string {
	return defaultSynthesizer.Binary(ctx, token, left, right)
}

// Unary builds a message with the default synthesizer.
func Unary(ctx context.Context, op string, x Operand) string {
	return defaultSynthesizer.Unary(ctx, op, x)
}
