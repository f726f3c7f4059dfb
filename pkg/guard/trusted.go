package guard

// Trusted runs a rendering step whose behaviour cannot be checked by
// the caller (operand renderers may call user String methods) and
// returns its text.
//
// Trusted is the only place the message synthesizer invokes operand
// renderers. Calling it asserts, without re-checking, that fn does
// not mutate the operand, does not block and returns in bounded
// time. Renderers from the render package meet that contract; a
// custom renderer passed to Trusted must too.
func Trusted(fn func() string) string {
	return fn()
}

// TrustedAll applies Trusted to every function, in order, writing
// into a slice sized exactly once.
func TrustedAll(fns []func() string) []string {
	out := make([]string, len(fns))
	for i, fn := range fns {
		out[i] = Trusted(fn)
	}
	return out
}
