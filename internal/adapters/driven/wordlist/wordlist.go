// Package wordlist provides the random search term source.
package wordlist

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
	"github.com/custodia-labs/undiscovered/internal/core/ports/driven"
)

// Ensure WordList implements the interface.
var _ driven.TermSource = (*WordList)(nil)

//go:embed words.txt
var defaultWords string

// Chooser returns an index in [0, n).
type Chooser func(n int) int

// WordList draws terms uniformly at random from a fixed list.
type WordList struct {
	words  []string
	choose Chooser
}

// New builds a word list from newline-delimited text.
// Blank lines and lines starting with # are skipped.
func New(text string, choose Chooser) (*WordList, error) {
	if choose == nil {
		choose = rand.IntN
	}

	var words []string
	for _, line := range strings.Split(text, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, domain.ErrEmptyWordList
	}

	return &WordList{words: words, choose: choose}, nil
}

// Default returns the embedded word list.
func Default() (*WordList, error) {
	return New(defaultWords, nil)
}

// Load reads the word list at path, or the embedded list when path is empty.
func Load(path string) (*WordList, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	wl, err := New(string(data), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// Next returns a random word.
func (w *WordList) Next() string {
	return w.words[w.choose(len(w.words))]
}

// Len returns the number of words.
func (w *WordList) Len() int {
	return len(w.words)
}
