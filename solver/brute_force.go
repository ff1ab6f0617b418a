package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/dictionary"
	"github.com/domino14/letterbox/puzzle"
)

// BruteForce enumerates candidates letter by letter, breadth-first,
// against the unfiltered word list loaded into a trie. It is the
// reference baseline: it returns the first full-coverage candidate it
// reaches, enforces no max-words bound, and on real word lists it may
// effectively never terminate. Prefer AStar or PreDict.
type BruteForce struct {
	words []string
}

// NewBruteForce builds the brute-force strategy over a raw word list.
func NewBruteForce(words []string) *BruteForce {
	return &BruteForce{words: words}
}

// bruteCandidate is one in-progress enumeration: the words built so far
// (the last one possibly partial), the board position of the last placed
// letter, and the positions visited so far.
type bruteCandidate struct {
	words   []string
	lastIdx int
	visited []bool
}

func (c *bruteCandidate) clone() *bruteCandidate {
	words := make([]string, len(c.words))
	copy(words, c.words)
	visited := make([]bool, len(c.visited))
	copy(visited, c.visited)
	return &bruteCandidate{words: words, lastIdx: c.lastIdx, visited: visited}
}

// endWord closes the current word and starts the next one from the same
// letter, per the chaining rule.
func (c *bruteCandidate) endWord(last rune) *bruteCandidate {
	next := c.clone()
	next.words = append(next.words, string(last))
	return next
}

func (c *bruteCandidate) covered() bool {
	for _, v := range c.visited {
		if !v {
			return false
		}
	}
	return true
}

// Solve runs the breadth-first enumeration. The queue is seeded with a
// one-letter candidate per board position; a candidate is expanded by
// appending every letter that both legally follows on the board and
// continues toward some dictionary word. The first candidate to achieve
// full coverage at the end of a complete dictionary word wins.
func (b *BruteForce) Solve(p *puzzle.Puzzle) (Solution, bool) {
	trie := dictionary.NewTrie(b.words)

	queue := make([]*bruteCandidate, 0, 1024)
	for i, letter := range p.AllLetters() {
		queue = append(queue, &bruteCandidate{
			words:   []string{string(letter)},
			lastIdx: i,
			visited: make([]bool, p.Size()),
		})
	}

	var popped uint64
	for len(queue) > 0 {
		cand := queue[0]
		queue = queue[1:]
		cand.visited[cand.lastIdx] = true
		popped++
		if popped%100000 == 0 {
			log.Debug().Uint64("candidates", popped).
				Msgf("visiting %v", cand.words)
		}

		cur := []rune(cand.words[len(cand.words)-1])
		if len(cur) >= 3 && trie.ExactMatch(string(cur)) {
			if cand.covered() {
				log.Debug().Uint64("candidates", popped).
					Msgf("solution found: %v", cand.words)
				return Solution(cand.words), true
			}
			// The word ends here and the next one starts from the same
			// letter.
			queue = expand(queue, trie, p, cand.endWord(cur[len(cur)-1]))
		}
		// Either way, try continuing the current word.
		queue = expand(queue, trie, p, cand)
	}
	return nil, false
}

// expand pushes one successor per letter that can extend the candidate's
// current word: the letter must lie on a side other than the last placed
// letter's, and the extended prefix must still lead to some word in the
// trie.
func expand(queue []*bruteCandidate, trie *dictionary.Trie, p *puzzle.Puzzle,
	cand *bruteCandidate) []*bruteCandidate {

	cur := cand.words[len(cand.words)-1]
	fromDict := trie.NextLetters(cur)
	if len(fromDict) == 0 {
		return queue
	}
	valid := p.ValidLetters(cand.lastIdx)
	for r := range fromDict {
		if !valid[r] {
			continue
		}
		idx := p.NextIndex(cand.lastIdx, r)
		if idx < 0 {
			continue
		}
		next := cand.clone()
		next.words[len(next.words)-1] += string(r)
		next.lastIdx = idx
		queue = append(queue, next)
	}
	return queue
}
