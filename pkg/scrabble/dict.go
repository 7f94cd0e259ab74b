package scrabble

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// WordGenerator lists the words a hand can form through an anchor letter
// already on the board. The result must be finite and its order must only
// depend on the hand and the anchor.
type WordGenerator interface {
	GenerateWords(hand []rune, anchor rune) []string
}

// WordChecker tells whether a word is playable.
type WordChecker interface {
	IsWord(word string) bool
}

type Dictionary struct {
	Words []string
}

// NewDictionary reads one word per line. Words are upper-cased; blank lines,
// '#' comments, duplicates and words with characters outside A-Z are dropped.
func NewDictionary(r io.Reader) (*Dictionary, error) {
	var words []string

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanLines)

	for sc.Scan() {
		word := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if strings.IndexFunc(word, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	return &Dictionary{Words: lo.Uniq(words)}, nil
}

func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewDictionary(f)
}

// NewWordList is a convenience for small in-memory dictionaries.
func NewWordList(words ...string) *Dictionary {
	d, _ := NewDictionary(strings.NewReader(strings.Join(words, "\n")))
	return d
}
