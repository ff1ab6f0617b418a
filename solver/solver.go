// Package solver implements the three Letter Boxed solving strategies:
// a brute-force baseline over the unfiltered word list, a greedy
// depth-first search over the per-puzzle dictionary, and the primary A*
// search.
package solver

import (
	"fmt"

	"github.com/domino14/letterbox/puzzle"
)

// Solution is an ordered sequence of words answering a puzzle. Each
// word's first letter equals the previous word's last letter.
type Solution []string

// Strategy solves a puzzle. The boolean return is false when the search
// exhausted its space without finding a solution; that is a legitimate
// outcome, not an error. Any solution a strategy returns passes the
// puzzle's ValidateSolution.
type Strategy interface {
	Solve(p *puzzle.Puzzle) (Solution, bool)
}

// FromName builds the named strategy over a raw word list. Valid names
// are "astar", "predict" and "brute".
func FromName(name string, words []string) (Strategy, error) {
	switch name {
	case "astar":
		return NewAStar(words), nil
	case "predict":
		return NewPreDict(words), nil
	case "brute":
		return NewBruteForce(words), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
