package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolEquality(t *testing.T) {
	assert.Equal(t, Terminal("a"), Terminal("a"))
	assert.NotEqual(t, Terminal("a"), Terminal("b"))
	assert.NotEqual(t, Terminal("a"), NonTerminal("a"))
	assert.Equal(t, Epsilon, Epsilon)
	assert.Equal(t, EndMarker, EndMarker)
}

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{Terminal("id"), "id"},
		{NonTerminal("EXPR"), "EXPR"},
		{Epsilon, "ε"},
		{EndMarker, "#"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sym.String())
	}
}

func TestSymbolIsTerminalLike(t *testing.T) {
	assert.True(t, Terminal("a").IsTerminalLike())
	assert.True(t, EndMarker.IsTerminalLike())
	assert.False(t, NonTerminal("A").IsTerminalLike())
	assert.False(t, Epsilon.IsTerminalLike())
}
