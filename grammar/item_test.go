package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosureOfAugmentedStart(t *testing.T) {
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
	seed := Item{
		Production:  NewProduction(NonTerminal(FakeStart), []Symbol{g.Start}),
		DotPosition: 0,
		Lookahead:   EndMarker,
	}

	closure := Closure([]Item{seed}, g, first)

	items := closure.Items()
	require.NotEmpty(t, items)

	var sawSeed, sawEProds bool
	for _, it := range items {
		if it.Production.LHS.Name() == FakeStart {
			sawSeed = true
		}
		if it.Production.LHS == NonTerminal("E") {
			sawEProds = true
		}
	}
	assert.True(t, sawSeed, "closure must retain the seed item")
	assert.True(t, sawEProds, "closure must expand E's own productions")
}

func TestItemAdvancedAndAtEnd(t *testing.T) {
	p := NewProduction(NonTerminal("E"), []Symbol{Terminal("("), NonTerminal("E"), Terminal(")")})
	it := Item{Production: p, DotPosition: 0, Lookahead: EndMarker}

	assert.False(t, it.AtEnd())
	sym, ok := it.NextSymbol()
	require.True(t, ok)
	assert.Equal(t, Terminal("("), sym)

	it = it.Advanced().Advanced().Advanced()
	assert.True(t, it.AtEnd())
	_, ok = it.NextSymbol()
	assert.False(t, ok)
}

func TestItemSetDeduplicates(t *testing.T) {
	p := NewProduction(NonTerminal("E"), []Symbol{Terminal("a")})
	it := Item{Production: p, DotPosition: 0, Lookahead: EndMarker}

	s := NewItemSet()
	assert.True(t, s.Add(it))
	assert.False(t, s.Add(it))
	assert.Equal(t, 1, s.Len())
}
