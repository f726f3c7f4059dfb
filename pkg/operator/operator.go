// Package operator holds the closed set of comparison tokens that
// can appear in a failed assertion and their logical negations.
package operator

import "errors"

// Token is the textual symbol of a comparison operator.
type Token string

const (
	Equal        Token = "=="
	NotEqual     Token = "!="
	Less         Token = "<"
	LessEqual    Token = "<="
	Greater      Token = ">"
	GreaterEqual Token = ">="
	In           Token = "in"
	NotIn        Token = "!in"
	Is           Token = "is"
	NotIs        Token = "!is"
)

// ErrInvalidToken is the sentinel matched by every
// InvalidTokenError.
var ErrInvalidToken = errors.New("invalid comparison operator")

// InvalidTokenError reports a token outside the supported set.
type InvalidTokenError struct {
	Token Token
}

// Error returns the diagnostic for the rejected token.
func (e *InvalidTokenError) Error() string {
	if e == nil {
		return ErrInvalidToken.Error()
	}
	return ErrInvalidToken.Error() + " '" + string(e.Token) + "'"
}

// Unwrap returns ErrInvalidToken for errors.Is.
func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}

var inverse = map[Token]Token{
	Equal:        NotEqual,
	NotEqual:     Equal,
	Less:         GreaterEqual,
	GreaterEqual: Less,
	LessEqual:    Greater,
	Greater:      LessEqual,
	In:           NotIn,
	NotIn:        In,
	Is:           NotIs,
	NotIs:        Is,
}

// Invert returns the token describing the condition that holds
// when t evaluated to false. Invert(Invert(t)) == t for every
// supported token.
//
// An unsupported token is a contract violation by the caller and
// Invert panics with an *InvalidTokenError.
func Invert(t Token) Token {
	inv, ok := inverse[t]
	if !ok {
		panic(&InvalidTokenError{Token: t})
	}
	return inv
}

// Lookup validates s against the supported set without
// panicking.
func Lookup(s string) (Token, bool) {
	t := Token(s)
	if _, ok := inverse[t]; !ok {
		return "", false
	}
	return t, true
}

// Valid reports whether t is a supported token.
func (t Token) Valid() bool {
	_, ok := inverse[t]
	return ok
}

// String returns the token text.
func (t Token) String() string { return string(t) }

// All returns every supported token in a stable order.
func All() []Token {
	return []Token{
		Equal, NotEqual,
		Less, LessEqual,
		Greater, GreaterEqual,
		In, NotIn,
		Is, NotIs,
	}
}
