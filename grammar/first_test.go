package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstOfNestedBalancedGrammar(t *testing.T) {
	g, err := New("E", []RawProduction{
		{LHS: "E", RHS: []string{"(", "L", ",", "E", ")"}},
		{LHS: "E", RHS: []string{"F"}},
		{LHS: "L", RHS: []string{"L", ",", "E"}},
		{LHS: "L", RHS: []string{"E"}},
		{LHS: "F", RHS: []string{"(", "F", ")"}},
		{LHS: "F", RHS: []string{"d"}},
	}, nil)
	require.NoError(t, err)

	first := g.First()

	tests := []struct {
		sym  Symbol
		want []Symbol
	}{
		{NonTerminal("F"), []Symbol{Terminal("("), Terminal("d")}},
		{NonTerminal("E"), []Symbol{Terminal("("), Terminal("d")}},
		{NonTerminal("L"), []Symbol{Terminal("("), Terminal("d")}},
	}

	for _, tt := range tests {
		for _, want := range tt.want {
			assert.True(t, first.Contains(tt.sym, want), "FIRST(%v) should contain %v", tt.sym, want)
		}
		assert.False(t, first.Contains(tt.sym, Epsilon), "FIRST(%v) should not contain ε", tt.sym)
	}
}

func TestFirstWithEpsilonProduction(t *testing.T) {
	g, err := New("S", []RawProduction{
		{LHS: "S", RHS: []string{"A", "b"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: nil},
	}, nil)
	require.NoError(t, err)

	first := g.First()

	assert.True(t, first.Contains(NonTerminal("A"), Terminal("a")))
	assert.True(t, first.Contains(NonTerminal("A"), Epsilon))
	assert.True(t, first.Contains(NonTerminal("S"), Terminal("a")))
	assert.True(t, first.Contains(NonTerminal("S"), Terminal("b")))
	assert.False(t, first.Contains(NonTerminal("S"), Epsilon))
}

func TestFirstOfSequence(t *testing.T) {
	g, err := New("S", []RawProduction{
		{LHS: "S", RHS: []string{"A", "B"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: nil},
		{LHS: "B", RHS: []string{"b"}},
	}, nil)
	require.NoError(t, err)

	first := g.First()

	seq := first.FirstOfSequence([]Symbol{NonTerminal("A"), NonTerminal("B")}, EndMarker)
	assert.True(t, seq[Terminal("a")])
	assert.True(t, seq[Terminal("b")])
	assert.False(t, seq[EndMarker], "EndMarker only propagates when the whole sequence can derive ε")

	emptySeq := first.FirstOfSequence(nil, EndMarker)
	assert.True(t, emptySeq[EndMarker])
}
