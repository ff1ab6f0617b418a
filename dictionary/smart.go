package dictionary

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/letterbox/puzzle"
)

// IndexedWord pairs a word with its stable dictionary-wide index.
type IndexedWord struct {
	Index int
	Word  string
}

// SmartDictionary is a per-puzzle view of a raw word list containing
// only the words that are legal on that specific board: at least 3
// letters long, with every consecutive letter pair on different sides.
// Words are grouped by first letter, each group sorted longest-first (a
// greedy search-order heuristic: longer words tend to cover more new
// letters per word). Every word also carries a stable global index,
// assigned once at construction; indices are only meaningful relative to
// the SmartDictionary instance that produced them.
type SmartDictionary struct {
	groups map[rune][]string
	flat   []IndexedWord
	// index into flat of each group's first word
	starts map[rune]int
}

// NewSmart builds the filtered dictionary for a puzzle from a raw word
// list.
func NewSmart(p *puzzle.Puzzle, words []string) *SmartDictionary {
	// Precompute the valid-successor set for each side, plus the
	// unrestricted set for "no previous letter".
	perSide := p.LettersPerSide()
	sideValids := make([]map[rune]bool, p.NumSides())
	for s := range sideValids {
		sideValids[s] = p.ValidLetters(s * perSide)
	}
	allValids := p.ValidLetters(-1)
	validsFor := func(prevIdx int) map[rune]bool {
		if prevIdx < 0 {
			return allValids
		}
		return sideValids[prevIdx/perSide]
	}

	groups := make(map[rune][]string)
	kept := 0
	for _, raw := range words {
		w := strings.TrimSpace(raw)
		rs := []rune(w)
		if len(rs) < 3 {
			continue
		}
		legal := true
		prevIdx := -1
		for _, r := range rs {
			if !validsFor(prevIdx)[r] {
				legal = false
				break
			}
			prevIdx = p.LetterIndex(r)
		}
		if !legal {
			continue
		}
		groups[rs[0]] = append(groups[rs[0]], w)
		kept++
	}

	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return len(g[i]) > len(g[j])
		})
	}

	// Flatten groups in sorted letter order so that rebuilding from the
	// same inputs assigns identical indices.
	letters := lo.Keys(groups)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	flat := make([]IndexedWord, 0, kept)
	starts := make(map[rune]int, len(letters))
	for _, l := range letters {
		starts[l] = len(flat)
		for _, w := range groups[l] {
			flat = append(flat, IndexedWord{Index: len(flat), Word: w})
		}
	}

	log.Debug().Int("kept", kept).Int("raw", len(words)).
		Msg("smart dictionary built")
	return &SmartDictionary{groups: groups, flat: flat, starts: starts}
}

// Get returns the words starting with the given letter, longest first,
// or nil if no retained word starts with it. The returned slice is owned
// by the dictionary and must not be modified.
func (d *SmartDictionary) Get(letter rune) []string {
	return d.groups[letter]
}

// GetFlatIndexed returns every word alongside its stable index, in the
// same order used to assign indices. The returned slice is owned by the
// dictionary and must not be modified.
func (d *SmartDictionary) GetFlatIndexed() []IndexedWord {
	return d.flat
}

// GetIndexed returns the words starting with the given letter alongside
// their stable global indices, or nil if no retained word starts with
// it.
func (d *SmartDictionary) GetIndexed(letter rune) []IndexedWord {
	group, ok := d.groups[letter]
	if !ok {
		return nil
	}
	start := d.starts[letter]
	return d.flat[start : start+len(group)]
}

// WordByIndex returns the word at a stable index, per GetFlatIndexed.
func (d *SmartDictionary) WordByIndex(idx int) string {
	return d.flat[idx].Word
}

// Len returns the total number of retained words. It is always at most
// the raw word count.
func (d *SmartDictionary) Len() int { return len(d.flat) }
