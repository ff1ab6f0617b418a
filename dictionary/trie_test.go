package dictionary

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoadWords(t *testing.T) {
	is := is.New(t)

	in := "juvenile\nembark\n\n  jive  \nran\n"
	words, err := LoadWords(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(words, []string{"juvenile", "embark", "jive", "ran"})
}

func TestTrieExactMatch(t *testing.T) {
	is := is.New(t)

	trie := NewTrie([]string{"juvenile", "jive", "embark", "elm", "elm"})
	is.Equal(trie.Len(), 4) // duplicate insert counts once

	is.True(trie.ExactMatch("jive"))
	is.True(trie.ExactMatch("embark"))
	is.True(!trie.ExactMatch("juv"))     // prefix, not a word
	is.True(!trie.ExactMatch("jives"))   // past a word
	is.True(!trie.ExactMatch("unknown")) // not in trie
}

func TestTrieNextLetters(t *testing.T) {
	is := is.New(t)

	trie := NewTrie([]string{"juvenile", "jive", "embark", "elm"})

	next := trie.NextLetters("j")
	is.Equal(len(next), 2)
	is.True(next['u'])
	is.True(next['i'])

	// The empty prefix enumerates every first letter.
	first := trie.NextLetters("")
	is.Equal(len(first), 2)
	is.True(first['j'])
	is.True(first['e'])

	// A completed word with no continuations has no next letters.
	is.Equal(len(trie.NextLetters("jive")), 0)

	// A string that is not a prefix of anything yields nil.
	is.Equal(trie.NextLetters("zz"), nil)
}
