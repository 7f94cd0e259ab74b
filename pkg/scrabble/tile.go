package scrabble

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Blank is the identifier of the blank tile. It can stand for any letter.
const Blank rune = '?'

var ErrInvalidLetter = errors.New("invalid letter")

type Tile struct {
	Letter rune
	Value  int
}

// TileSet is the closed enumeration of letters used in a game, with the
// number of tiles of each letter and their point values.
type TileSet struct {
	Name   string
	Count  map[rune]int
	Values map[rune]int
}

func initTileSet() *TileSet {
	tileCount := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, Blank: 2,
	}

	tileValue := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10, Blank: 0,
	}

	return &TileSet{Name: "English", Count: tileCount, Values: tileValue}
}

// DefaultTileSet is the standard English set: 98 letters and 2 blanks.
var DefaultTileSet = initTileSet()

// NewTileSet builds a tile set from count and value tables. The tables are
// copied and the result is validated.
func NewTileSet(name string, count, values map[rune]int) (*TileSet, error) {
	ts := &TileSet{
		Name:   name,
		Count:  maps.Clone(count),
		Values: maps.Clone(values),
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Validate checks that every letter is a valid identifier with a
// non-negative count and a point value.
func (ts *TileSet) Validate() error {
	if len(ts.Count) == 0 {
		return fmt.Errorf("tile set %q: no letters", ts.Name)
	}
	for _, letter := range ts.Letters() {
		if !validIdentifier(letter) {
			return fmt.Errorf("tile set %q: %w: %q", ts.Name, ErrInvalidLetter, letter)
		}
		if ts.Count[letter] < 0 {
			return fmt.Errorf("tile set %q: negative count for %c", ts.Name, letter)
		}
		if _, ok := ts.Values[letter]; !ok {
			return fmt.Errorf("tile set %q: no value for %c", ts.Name, letter)
		}
	}
	return nil
}

// Letters returns the distinct letters of the set in sorted order.
func (ts *TileSet) Letters() []rune {
	letters := maps.Keys(ts.Count)
	slices.Sort(letters)
	return letters
}

// Has reports whether the letter belongs to the enumeration.
func (ts *TileSet) Has(letter rune) bool {
	_, ok := ts.Count[letter]
	return ok
}

func (ts *TileSet) Value(letter rune) int {
	return ts.Values[letter]
}

// Total is the number of tiles in a fresh bag.
func (ts *TileSet) Total() int {
	total := 0
	for _, c := range ts.Count {
		total += c
	}
	return total
}

func NewTile(ts *TileSet, letter rune) *Tile {
	if unicode.IsLower(letter) {
		// A designated blank keeps its letter but scores nothing
		return &Tile{Letter: unicode.ToUpper(letter), Value: 0}
	}
	return &Tile{
		Letter: letter,
		Value:  ts.Value(letter),
	}
}

func validIdentifier(r rune) bool {
	return r == Blank || ('A' <= r && r <= 'Z')
}

// ParseLetters turns user or dictionary text into letter identifiers.
// Spaces and commas are ignored; letters are upper-cased.
func ParseLetters(s string) ([]rune, error) {
	var letters []rune
	for _, r := range strings.ToUpper(s) {
		switch {
		case r == ' ' || r == ',':
			continue
		case r == '*':
			letters = append(letters, Blank)
		case validIdentifier(r):
			letters = append(letters, r)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
	}
	return letters, nil
}
