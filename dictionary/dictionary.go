// Package dictionary loads raw word lists and builds the per-puzzle
// filtered and indexed views that the solvers search over.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadWords reads a newline-delimited word list from r. Words are
// trimmed of surrounding whitespace and blank lines are skipped.
func LoadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	words := make([]string, 0, 1<<15)
	longest := 0
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		if len(w) > longest {
			longest = len(w)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	log.Debug().Int("words", len(words)).Int("longest", longest).
		Msg("loaded word list")
	return words, nil
}

// LoadWordsFile reads a newline-delimited word list from the file at
// path.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadWords(f)
}
