package dictionary

// Trie is an in-memory prefix tree over a word list. It supports the two
// queries the brute-force solver needs: exact-match lookup, and
// enumerating the letters that extend a prefix toward at least one real
// word.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	arcs     map[rune]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{arcs: make(map[rune]*trieNode)}
}

// NewTrie builds a trie over the given words.
func NewTrie(words []string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

func (t *Trie) insert(word string) {
	node := t.root
	for _, r := range word {
		next, ok := node.arcs[r]
		if !ok {
			next = newTrieNode()
			node.arcs[r] = next
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int { return t.size }

// node walks the trie along s, returning nil if s is not a prefix of any
// word.
func (t *Trie) node(s string) *trieNode {
	node := t.root
	for _, r := range s {
		next, ok := node.arcs[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// ExactMatch reports whether word is in the trie.
func (t *Trie) ExactMatch(word string) bool {
	node := t.node(word)
	return node != nil && node.terminal
}

// NextLetters returns the set of letters l such that prefix+l is still a
// prefix of some word in the trie.
func (t *Trie) NextLetters(prefix string) map[rune]bool {
	node := t.node(prefix)
	if node == nil {
		return nil
	}
	letters := make(map[rune]bool, len(node.arcs))
	for r := range node.arcs {
		letters[r] = true
	}
	return letters
}
