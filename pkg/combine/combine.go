// Package combine assembles the final "<left> <op> <right>" failure
// message from already rendered operand groups.
//
// The output buffer is sized once from the fragment lengths before
// any byte is written, so a message costs exactly one allocation.
package combine

import (
	"strconv"
	"strings"
)

const separator = ", "

// Braced reports whether groups of the given sizes are wrapped in
// parentheses. Only the plain two-operand comparison is printed
// bare; tuples and empty groups always get braces.
func Braced(left, right int) bool {
	return left+right != 2 || left == 0 || right == 0
}

// Len returns the exact length of Combine(left, token, right).
func Len(left []string, token string, right []string) int {
	braces := Braced(len(left), len(right))
	return groupLen(left, braces) + 1 + len(token) + 1 +
		groupLen(right, braces)
}

// Combine renders "<left> <token> <right>". Groups are joined with
// ", " and enclosed in parentheses when Braced says so.
//
// Combine panics if the bytes written differ from Len; that is a
// defect in this package, not a recoverable condition.
func Combine(left []string, token string, right []string) string {
	total := Len(left, token, right)
	braces := Braced(len(left), len(right))

	var b strings.Builder
	b.Grow(total)

	writeGroup(&b, left, braces)
	b.WriteByte(' ')
	b.WriteString(token)
	b.WriteByte(' ')
	writeGroup(&b, right, braces)

	if b.Len() != total {
		panic("combine: wrote " + strconv.Itoa(b.Len()) +
			" bytes into a buffer sized " + strconv.Itoa(total))
	}
	return b.String()
}

func groupLen(vals []string, braces bool) int {
	n := 0
	for i, v := range vals {
		if i > 0 {
			n += len(separator)
		}
		n += len(v)
	}
	if braces {
		n += 2
	}
	return n
}

func writeGroup(b *strings.Builder, vals []string, braces bool) {
	if braces {
		b.WriteByte('(')
	}
	for i, v := range vals {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(v)
	}
	if braces {
		b.WriteByte(')')
	}
}
