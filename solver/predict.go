package solver

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/dictionary"
	"github.com/domino14/letterbox/puzzle"
)

// PreDict is the greedy depth-first strategy. It searches the per-puzzle
// SmartDictionary, whose groups are already sorted longest-first, and
// commits to the first full-coverage sequence it completes. Fast, but
// not guaranteed to use the minimum number of words.
type PreDict struct {
	words []string
}

// NewPreDict builds the greedy strategy over a raw word list.
func NewPreDict(words []string) *PreDict {
	return &PreDict{words: words}
}

// Solve builds the filtered dictionary for the puzzle and backtracks
// over word sequences.
func (s *PreDict) Solve(p *puzzle.Puzzle) (Solution, bool) {
	dict := dictionary.NewSmart(p, s.words)
	return s.search(dict, p, nil)
}

func (s *PreDict) search(dict *dictionary.SmartDictionary, p *puzzle.Puzzle,
	words Solution) (Solution, bool) {

	// Out of words.
	if len(words) > p.MaxWords() {
		return nil, false
	}

	log.Debug().Msgf("evaluating %v", words)

	// Full coverage: the validator's walk is the success test.
	if len(words) > 0 && p.ValidateSolution(words) == nil {
		return words, true
	}

	// Candidates are the words chaining off the previous word's last
	// letter; every word is a candidate for the first slot.
	var candidates []string
	if len(words) == 0 {
		flat := dict.GetFlatIndexed()
		candidates = make([]string, len(flat))
		for i, iw := range flat {
			candidates[i] = iw.Word
		}
	} else {
		last := []rune(words[len(words)-1])
		candidates = dict.Get(last[len(last)-1])
		if candidates == nil {
			// Nothing chains off this letter; dead end.
			return nil, false
		}
	}

	for _, w := range candidates {
		// Repeated words can never add new coverage.
		if slices.Contains(words, w) {
			continue
		}
		next := append(slices.Clone(words), w)
		if soln, ok := s.search(dict, p, next); ok {
			return soln, true
		}
	}
	return nil, false
}
