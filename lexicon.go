package jaundice

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexicon is an immutable set of charged canonical lemmas. It is loaded
// once at process start and shared read-only across all concurrent
// analyses, so it requires no locking.
type Lexicon struct {
	lemmas map[string]struct{}
}

// NewLexicon builds a Lexicon from already-canonical lemmas.
func NewLexicon(lemmas []string) *Lexicon {
	set := make(map[string]struct{}, len(lemmas))
	for _, lemma := range lemmas {
		set[lemma] = struct{}{}
	}
	return &Lexicon{lemmas: set}
}

// LoadLexicon reads one charged word per line from r and normalizes each
// entry with n, so dictionary entries live in the same lemma space as
// article text. Blank lines and lines starting with '#' are skipped.
func LoadLexicon(r io.Reader, n Normalizer) (*Lexicon, error) {
	set := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lemmas, _ := n.Normalize(line)
		for _, lemma := range lemmas {
			set[lemma] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}

	return &Lexicon{lemmas: set}, nil
}

// Contains reports whether the lemma belongs to the lexicon.
func (l *Lexicon) Contains(lemma string) bool {
	_, ok := l.lemmas[lemma]
	return ok
}

// Len returns the number of lemmas in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.lemmas)
}
