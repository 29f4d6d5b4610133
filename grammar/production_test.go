package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionEqual(t *testing.T) {
	p1 := NewProduction(NonTerminal("E"), []Symbol{Terminal("("), NonTerminal("E"), Terminal(")")})
	p2 := NewProduction(NonTerminal("E"), []Symbol{Terminal("("), NonTerminal("E"), Terminal(")")})
	p3 := NewProduction(NonTerminal("E"), []Symbol{NonTerminal("F")})

	assert.True(t, p1.Equal(p2))
	assert.False(t, p1.Equal(p3))
}

func TestProductionString(t *testing.T) {
	empty := NewProduction(NonTerminal("A"), nil)
	assert.Equal(t, "A -> ", empty.String())

	p := NewProduction(NonTerminal("E"), []Symbol{NonTerminal("E"), Terminal("+"), NonTerminal("E")})
	assert.Equal(t, "E -> E + E", p.String())
}

func TestProductionIsEmpty(t *testing.T) {
	assert.True(t, NewProduction(NonTerminal("A"), nil).IsEmpty())
	assert.False(t, NewProduction(NonTerminal("A"), []Symbol{Terminal("a")}).IsEmpty())
}
