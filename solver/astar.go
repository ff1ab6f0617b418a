package solver

import (
	"container/heap"
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/letterbox/dictionary"
	"github.com/domino14/letterbox/puzzle"
)

// AStar is the primary strategy. It expresses the puzzle as a weighted
// graph search: a vertex is (last letter, coverage so far, words used),
// an edge is a word connecting its first letter to its last, and the
// heuristic is the number of board letters still uncovered.
//
// Every edge costs the same configurable weight. At the default weight
// of the full board size the heuristic is admissible: one more word can
// cover at most the whole board, so the remaining-letters estimate never
// exceeds the true remaining cost, and the solution found uses the
// minimum possible number of words. Lower weights find solutions faster
// but give up the optimality guarantee.
type AStar struct {
	words      []string
	edgeWeight int
}

// NewAStar builds the A* strategy over a raw word list, with the
// admissible default edge weight (the full board size).
func NewAStar(words []string) *AStar {
	return &AStar{words: words}
}

// NewAStarWeighted builds the A* strategy with an explicit edge weight.
// Valid weights range from 1 to the board size; out-of-range weights are
// clamped at solve time.
func NewAStarWeighted(words []string, edgeWeight int) *AStar {
	return &AStar{words: words, edgeWeight: edgeWeight}
}

// vertex is a value type: two vertices with the same letter, coverage
// and path are the same search node. Coverage is a bitmask over board
// positions.
type vertex struct {
	letter   rune // 0 for the start vertex
	coverage uint64
	path     []int // dictionary indices of the words used to get here
}

// key hashes the vertex structurally, over all three fields.
func (v *vertex) key() uint64 {
	buf := make([]byte, 0, 12+4*len(v.path))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(v.letter))
	buf = binary.LittleEndian.AppendUint64(buf, v.coverage)
	for _, idx := range v.path {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(idx))
	}
	return xxhash.Sum64(buf)
}

// openItem is an entry in the open list.
type openItem struct {
	v   *vertex
	g   int
	f   int
	seq int // insertion order, the tie-break
}

type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(*openItem)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Solve runs the search. It panics if the final cost accounting and path
// length disagree; that would be an implementation bug, never a puzzle
// input problem, and must not produce a silently wrong answer.
func (a *AStar) Solve(p *puzzle.Puzzle) (Solution, bool) {
	size := p.Size()
	if size > 64 {
		// Coverage is a 64-bit mask.
		log.Error().Int("size", size).Msg("board too large for A* solver")
		return nil, false
	}
	weight := a.edgeWeight
	if weight < 1 || weight > size {
		if a.edgeWeight != 0 {
			log.Warn().Int("edge-weight", a.edgeWeight).
				Msgf("edge weight out of [1, %d], using %d", size, size)
		}
		weight = size
	}

	dict := dictionary.NewSmart(p, a.words)
	full := uint64(1)<<uint(size) - 1

	h := func(v *vertex) int {
		return size - bits.OnesCount64(v.coverage)
	}

	start := &vertex{}
	open := &openHeap{{v: start, g: 0, f: h(start), seq: 0}}
	heap.Init(open)
	gScore := map[uint64]int{start.key(): 0}

	var nodesVisited, edgesTraversed uint64
	seq := 1

	for open.Len() > 0 {
		item := heap.Pop(open).(*openItem)
		v := item.v
		if best, ok := gScore[v.key()]; ok && item.g > best {
			// Stale open-list entry.
			continue
		}
		nodesVisited++
		if nodesVisited%1000 == 0 {
			log.Debug().Uint64("nodes", nodesVisited).
				Int("words", len(v.path)).Msg("searching")
		}

		if v.coverage == full {
			return a.finish(dict, v, item.g, weight, nodesVisited,
				edgesTraversed)
		}

		// A vertex that has used up the word budget is a dead end.
		if len(v.path) == p.MaxWords() {
			continue
		}

		for _, iw := range a.successors(dict, v) {
			edgesTraversed++
			nv := &vertex{
				letter:   lastRune(iw.Word),
				coverage: v.coverage | wordMask(p, iw.Word),
				path:     appendPath(v.path, iw.Index),
			}
			tentative := item.g + weight
			if best, ok := gScore[nv.key()]; ok && tentative >= best {
				continue
			}
			gScore[nv.key()] = tentative
			heap.Push(open, &openItem{
				v: nv, g: tentative, f: tentative + h(nv), seq: seq,
			})
			seq++
		}
	}

	log.Info().Uint64("nodes", nodesVisited).
		Uint64("edges", edgesTraversed).Msg("search exhausted")
	return nil, false
}

// finish checks the cost/path-length invariant, resolves the index path
// to words and returns the solution.
func (a *AStar) finish(dict *dictionary.SmartDictionary, v *vertex, cost,
	weight int, nodes, edges uint64) (Solution, bool) {

	if len(v.path) != cost/weight {
		panic(fmt.Sprintf(
			"cost (%d, weight %d) disagrees with path length (%d) -- the algo isn't working right",
			cost, weight, len(v.path)))
	}
	words := lo.Map(v.path, func(idx int, _ int) string {
		return dict.WordByIndex(idx)
	})
	log.Info().Uint64("nodes", nodes).Uint64("edges", edges).
		Msgf("solution: %v", words)
	return Solution(words), true
}

// successors are all dictionary words chaining off the vertex's letter;
// the start vertex chains off everything.
func (a *AStar) successors(dict *dictionary.SmartDictionary,
	v *vertex) []dictionary.IndexedWord {

	if v.letter == 0 {
		return dict.GetFlatIndexed()
	}
	return dict.GetIndexed(v.letter)
}

func lastRune(s string) rune {
	rs := []rune(s)
	return rs[len(rs)-1]
}

// wordMask marks the board position of every letter in the word.
// SmartDictionary words only contain board letters.
func wordMask(p *puzzle.Puzzle, word string) uint64 {
	var mask uint64
	for _, r := range word {
		if idx := p.LetterIndex(r); idx >= 0 {
			mask |= 1 << uint(idx)
		}
	}
	return mask
}

func appendPath(path []int, idx int) []int {
	next := make([]int, len(path), len(path)+1)
	copy(next, path)
	return append(next, idx)
}
