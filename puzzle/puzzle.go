// Package puzzle contains the Letter Boxed board model and the solution
// validator. The validator is the canonical definition of a correct
// solution; every solver's output must pass it.
package puzzle

import (
	"fmt"
	"strings"
)

// The standard NYT board is a square with 3 letters per side.
const (
	NYTSides          = 4
	NYTLettersPerSide = 3
)

// Puzzle is the immutable definition of one board: the letters arranged
// into sides, plus the maximum number of words a solution may use. It
// does not contain the answer to the puzzle, merely its definition.
type Puzzle struct {
	maxWords       int
	lettersPerSide int
	sides          [][]rune
	// side-major flattening of sides; position i lives on side
	// i / lettersPerSide.
	all []rune
}

// BadSolutionError is returned by ValidateSolution when a candidate word
// sequence breaks one of the puzzle rules. Reason is human-readable.
type BadSolutionError struct {
	Reason string
}

func (e *BadSolutionError) Error() string {
	return "bad solution: " + e.Reason
}

func badSolution(format string, args ...any) *BadSolutionError {
	return &BadSolutionError{Reason: fmt.Sprintf(format, args...)}
}

// New builds a puzzle from an already-parsed side arrangement. Every side
// must hold the same positive number of letters.
func New(maxWords int, sides [][]rune) (*Puzzle, error) {
	if maxWords < 1 {
		return nil, fmt.Errorf("max words must be positive, got %d", maxWords)
	}
	if len(sides) == 0 {
		return nil, fmt.Errorf("puzzle must have at least one side")
	}
	perSide := len(sides[0])
	if perSide == 0 {
		return nil, fmt.Errorf("sides cannot be empty")
	}
	all := make([]rune, 0, len(sides)*perSide)
	copied := make([][]rune, len(sides))
	for i, side := range sides {
		if len(side) != perSide {
			return nil, fmt.Errorf("side %d has %d letters, want %d",
				i, len(side), perSide)
		}
		copied[i] = append([]rune(nil), side...)
		all = append(all, side...)
	}
	return &Puzzle{
		maxWords:       maxWords,
		lettersPerSide: perSide,
		sides:          copied,
		all:            all,
	}, nil
}

// FromString constructs a puzzle from a whitespace-separated string of
// sides, e.g. "erb uln imk jav" for a 4-side, 3-letter board. It fails
// with an input error if the token count does not match numSides or any
// token is not exactly lettersPerSide letters long.
func FromString(maxWords, numSides, lettersPerSide int, s string) (*Puzzle, error) {
	tokens := strings.Fields(s)
	if len(tokens) != numSides {
		return nil, fmt.Errorf("wrong number of sides: got %d, want %d",
			len(tokens), numSides)
	}
	sides := make([][]rune, numSides)
	for i, tok := range tokens {
		rs := []rune(tok)
		if len(rs) != lettersPerSide {
			return nil, fmt.Errorf("side %q has %d letters, want %d",
				tok, len(rs), lettersPerSide)
		}
		sides[i] = rs
	}
	return New(maxWords, sides)
}

// NYTFromString constructs a standard 4x3 NYT puzzle.
func NYTFromString(maxWords int, s string) (*Puzzle, error) {
	return FromString(maxWords, NYTSides, NYTLettersPerSide, s)
}

// MaxWords returns the maximum number of words allowed in a solution.
func (p *Puzzle) MaxWords() int { return p.maxWords }

// NumSides returns the number of sides on the board.
func (p *Puzzle) NumSides() int { return len(p.sides) }

// LettersPerSide returns the number of letters on each side.
func (p *Puzzle) LettersPerSide() int { return p.lettersPerSide }

// Size returns the total number of letter positions on the board.
func (p *Puzzle) Size() int { return len(p.all) }

// AllLetters returns every board letter in side-major order.
func (p *Puzzle) AllLetters() []rune {
	return append([]rune(nil), p.all...)
}

// Sides returns a copy of the side arrangement.
func (p *Puzzle) Sides() [][]rune {
	out := make([][]rune, len(p.sides))
	for i, s := range p.sides {
		out[i] = append([]rune(nil), s...)
	}
	return out
}

func (p *Puzzle) String() string {
	strs := make([]string, len(p.sides))
	for i, s := range p.sides {
		strs[i] = string(s)
	}
	return strings.Join(strs, " ")
}

// sideOf maps a board position to its side, or -1 for out-of-range
// positions (which represent "no previous letter").
func (p *Puzzle) sideOf(idx int) int {
	if idx < 0 || idx >= len(p.all) {
		return -1
	}
	return idx / p.lettersPerSide
}

// ValidLetters returns the set of letters that may legally follow the
// letter at board position prevIdx, i.e. every letter on a different
// side. An out-of-range prevIdx means "start of a new word" and yields
// every board letter.
func (p *Puzzle) ValidLetters(prevIdx int) map[rune]bool {
	prevSide := p.sideOf(prevIdx)
	set := make(map[rune]bool, len(p.all))
	for i, l := range p.all {
		if i/p.lettersPerSide != prevSide {
			set[l] = true
		}
	}
	return set
}

// LetterIndex returns the first board position holding the letter, or -1
// if the letter is not on the board.
func (p *Puzzle) LetterIndex(r rune) int {
	for i, l := range p.all {
		if l == r {
			return i
		}
	}
	return -1
}

// NextIndex returns the first board position holding r on a side other
// than prevIdx's side, or -1 if no such position exists. An out-of-range
// prevIdx places no side restriction.
func (p *Puzzle) NextIndex(prevIdx int, r rune) int {
	prevSide := p.sideOf(prevIdx)
	for i, l := range p.all {
		if l == r && i/p.lettersPerSide != prevSide {
			return i
		}
	}
	return -1
}

// ValidateSolution checks a candidate word sequence against the four
// puzzle rules, in order: every word is at least 3 letters; each word
// starts with the previous word's last letter; the concatenated letter
// sequence never uses the same side twice in a row; and every board
// letter is used at least once. A nil return means the solution is
// correct.
func (p *Puzzle) ValidateSolution(words []string) error {
	for _, w := range words {
		if len([]rune(w)) < 3 {
			return badSolution("word %q is less than 3 letters", w)
		}
	}
	for i := 1; i < len(words); i++ {
		prev := []rune(words[i-1])
		cur := []rune(words[i])
		if prev[len(prev)-1] != cur[0] {
			return badSolution("start & end letters don't match")
		}
	}
	visited, err := p.walk(words)
	if err != nil {
		return err
	}
	for _, v := range visited {
		if !v {
			return badSolution("not all letters were used")
		}
	}
	return nil
}

// walk traces the solution's letters around the board and reports which
// positions were visited. Chained words share their boundary letter, so
// each word after the first starts walking from its second letter.
func (p *Puzzle) walk(words []string) ([]bool, error) {
	visited := make([]bool, len(p.all))
	prevIdx := -1
	for wi, w := range words {
		rs := []rune(w)
		start := 0
		if wi > 0 {
			start = 1
		}
		for _, r := range rs[start:] {
			idx := p.NextIndex(prevIdx, r)
			if idx < 0 {
				return nil, badSolution("failed to find letter %c", r)
			}
			visited[idx] = true
			prevIdx = idx
		}
	}
	return visited, nil
}
