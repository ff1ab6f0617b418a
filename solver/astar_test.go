package solver

import (
	"testing"

	"github.com/matryer/is"
)

func TestAStarFindsMinimumWordCount(t *testing.T) {
	is := is.New(t)
	p := nov6(t, 6)

	soln, ok := NewAStar(solverWords).Solve(p)
	is.True(ok)
	is.Equal(len(soln), 2)
	is.NoErr(p.ValidateSolution(soln))
}

func TestAStarRespectsMaxWords(t *testing.T) {
	is := is.New(t)
	p := nov6(t, 1)

	// No single word covers the board, so a one-word budget exhausts.
	soln, ok := NewAStar(solverWords).Solve(p)
	is.True(!ok)
	is.Equal(soln, nil)
}

func TestAStarLowEdgeWeight(t *testing.T) {
	is := is.New(t)
	p := nov6(t, 6)

	// Weight 1 gives up the optimality guarantee but solutions must
	// still be valid.
	soln, ok := NewAStarWeighted(solverWords, 1).Solve(p)
	is.True(ok)
	is.NoErr(p.ValidateSolution(soln))
}

func TestAStarClampsEdgeWeight(t *testing.T) {
	is := is.New(t)
	p := nov6(t, 6)

	// An out-of-range weight falls back to the board size, which keeps
	// the admissibility guarantee.
	soln, ok := NewAStarWeighted(solverWords, 99).Solve(p)
	is.True(ok)
	is.Equal(len(soln), 2)
}

func TestAStarExhaustion(t *testing.T) {
	is := is.New(t)
	p := nov6(t, 6)

	// No covering chain exists in this list.
	_, ok := NewAStar([]string{"jive", "elm"}).Solve(p)
	is.True(!ok)
}

func TestVertexKeyStructural(t *testing.T) {
	is := is.New(t)

	a := &vertex{letter: 'e', coverage: 0b1011, path: []int{1, 2}}
	b := &vertex{letter: 'e', coverage: 0b1011, path: []int{1, 2}}
	is.Equal(a.key(), b.key())

	// A different path is a different vertex even at the same letter
	// and coverage.
	c := &vertex{letter: 'e', coverage: 0b1011, path: []int{2, 1}}
	is.True(a.key() != c.key())

	d := &vertex{letter: 'r', coverage: 0b1011, path: []int{1, 2}}
	is.True(a.key() != d.key())
}
