package operator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert_Table(t *testing.T) {
	tests := []struct {
		in       Token
		expected Token
	}{
		{Equal, NotEqual},
		{NotEqual, Equal},
		{Less, GreaterEqual},
		{LessEqual, Greater},
		{Greater, LessEqual},
		{GreaterEqual, Less},
		{In, NotIn},
		{NotIn, In},
		{Is, NotIs},
		{NotIs, Is},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.expected, Invert(tt.in))
		})
	}
}

func TestInvert_Involutive(t *testing.T) {
	for _, tok := range All() {
		assert.Equal(t, tok, Invert(Invert(tok)),
			"double inversion of %s", tok)
	}
}

func TestInvert_DoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Invert(LessEqual)
	})
	assert.Zero(t, allocs)
}

func TestInvert_UnknownPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error")
		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.Equal(t,
			"invalid comparison operator '<>'", err.Error())
	}()

	Invert("<>")
}

func TestLookup(t *testing.T) {
	tok, ok := Lookup(">=")
	assert.True(t, ok)
	assert.Equal(t, GreaterEqual, tok)

	_, ok = Lookup("=>")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestToken_Valid(t *testing.T) {
	for _, tok := range All() {
		assert.True(t, tok.Valid(), tok.String())
	}
	assert.False(t, Token("===").Valid())
}

func TestAll_MatchesInverseTable(t *testing.T) {
	assert.Len(t, All(), len(inverse))
	for _, tok := range All() {
		assert.Equal(t, inverse[tok], Invert(tok))
	}
}

func TestInvalidTokenError_Nil(t *testing.T) {
	var e *InvalidTokenError
	assert.Equal(t, "invalid comparison operator", e.Error())
}
