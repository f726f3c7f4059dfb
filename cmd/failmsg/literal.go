package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"digital.vasic.failmsg/pkg/assertion"
)

// parseLiteral turns a command-line literal into an operand. Integers
// (any base strconv accepts), floats, true, false and null keep their
// type; 'c' is a character; "..." and anything else is a string.
func parseLiteral(s string) (assertion.Operand, error) {
	switch s {
	case "null":
		return assertion.Nil(), nil
	case "true":
		return assertion.Bool(true), nil
	case "false":
		return assertion.Bool(false), nil
	}

	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return assertion.Int(n), nil
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return assertion.Uint(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return assertion.Float(f), nil
	}

	switch {
	case len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'"):
		return parseChar(s)
	case len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`):
		text, err := strconv.Unquote(s)
		if err != nil {
			return assertion.Operand{}, fmt.Errorf("invalid string literal %s: %w", s, err)
		}
		return assertion.String(text), nil
	}
	return assertion.String(s), nil
}

func parseChar(s string) (assertion.Operand, error) {
	text, err := strconv.Unquote(s)
	if err != nil {
		return assertion.Operand{}, fmt.Errorf("invalid character literal %s: %w", s, err)
	}
	r, size := utf8.DecodeRuneInString(text)
	if size != len(text) {
		return assertion.Operand{}, fmt.Errorf("invalid character literal %s", s)
	}
	if r < utf8.RuneSelf {
		return assertion.Char(byte(r)), nil
	}
	return assertion.Rune(r), nil
}

func parseLiterals(lits []string) ([]assertion.Operand, error) {
	ops := make([]assertion.Operand, len(lits))
	for i, lit := range lits {
		op, err := parseLiteral(lit)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}
