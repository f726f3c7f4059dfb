package assertion

import (
	"context"
	"errors"

	"digital.vasic.failmsg/pkg/operator"
)

// ErrAssertionFailed is matched by every *Failure.
var ErrAssertionFailed = errors.New("assertion failed")

// Failure is a failed assertion as an error value.
type Failure struct {
	// Token is the operator that was asserted, or the unary op.
	Token string
	// Message is the synthesized explanation.
	Message string
}

func (f *Failure) Error() string {
	if f == nil || f.Message == "" {
		return ErrAssertionFailed.Error()
	}
	return ErrAssertionFailed.Error() + ": " + f.Message
}

func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// Check returns nil when ok, otherwise a *Failure carrying the
// Binary message.
func (s *Synthesizer) Check(
	ctx context.Context,
	ok bool,
	token operator.Token,
	left, right []Operand,
) error {
	if ok {
		return nil
	}
	return &Failure{
		Token:   string(token),
		Message: s.Binary(ctx, token, left, right),
	}
}

// CheckUnary returns nil when ok, otherwise a *Failure carrying the
// Unary message.
func (s *Synthesizer) CheckUnary(ctx context.Context, ok bool, op string, x Operand) error {
	if ok {
		return nil
	}
	return &Failure{Token: op, Message: s.Unary(ctx, op, x)}
}

// Check is Synthesizer.Check on the default synthesizer.
func Check(ctx context.Context, ok bool, token operator.Token, left, right []Operand) error {
	return defaultSynthesizer.Check(ctx, ok, token, left, right)
}

// CheckUnary is Synthesizer.CheckUnary on the default synthesizer.
func CheckUnary(ctx context.Context, ok bool, op string, x Operand) error {
	return defaultSynthesizer.CheckUnary(ctx, ok, op, x)
}
