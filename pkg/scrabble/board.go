package scrabble

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const BoardSize int = 15

var (
	ErrInvalidPosition = errors.New("position is out of bounds")
	ErrExistingTile    = errors.New("a tile already exist on that square")
	ErrMoveRejected    = errors.New("move rejected")
)

// BoardView is the read-only part of a board that move search and renderers
// are allowed to see.
type BoardView interface {
	Size() int
	IsClear() bool
	LetterAt(p Position) (rune, bool)
}

// Board is the board collaborator the engine plays against. Placement
// geometry, word validation and scoring all live behind it.
//
// A word is laid through its anchor: when the anchor square already holds a
// letter the word is aligned on its first occurrence of that letter,
// otherwise the word starts on the anchor. Lower-case letters in a word are
// blanks designated as that letter.
type Board interface {
	BoardView
	// Needs returns the indexes of the word's letters that must come from
	// the player's hand. It does not change the board.
	Needs(word string, anchor Position, dir Direction) ([]int, error)
	// Place lays the word and returns the points it scored. A refusal wraps
	// ErrMoveRejected.
	Place(word string, anchor Position, dir Direction) (int, error)
}

type Position struct {
	Row, Col int
}

type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

func (p Position) InBounds() bool {
	if p.Row < 0 ||
		p.Row >= BoardSize ||
		p.Col < 0 ||
		p.Col >= BoardSize {
		return false
	}

	return true
}

// Step moves n squares along the direction; n may be negative.
func (p Position) Step(dir Direction, n int) Position {
	if dir == Down {
		return Position{Row: p.Row + n, Col: p.Col}
	}
	return Position{Row: p.Row, Col: p.Col + n}
}

// Coords renders the position in board-game notation: "8H" is row 8,
// column H, played across; "H8" is the same square played down.
func (p Position) Coords(dir Direction) string {
	col := string(rune('A' + p.Col))
	row := strconv.Itoa(p.Row + 1)
	if dir == Down {
		return col + row
	}
	return row + col
}

var (
	reAcross = regexp.MustCompile(`^([0-9]{1,2})([A-Za-z])$`)
	reDown   = regexp.MustCompile(`^([A-Za-z])([0-9]{1,2})$`)
)

// ParseCoords does the inverse of Coords.
func ParseCoords(c string) (Position, Direction, error) {
	c = strings.TrimSpace(c)
	var rowPart, colPart string
	dir := Across
	if m := reDown.FindStringSubmatch(c); m != nil {
		colPart, rowPart, dir = m[1], m[2], Down
	} else if m := reAcross.FindStringSubmatch(c); m != nil {
		rowPart, colPart = m[1], m[2]
	} else {
		return Position{}, Across, fmt.Errorf("%w: bad coordinates %q", ErrInvalidPosition, c)
	}

	row, _ := strconv.Atoi(rowPart)
	p := Position{
		Row: row - 1,
		Col: int(strings.ToUpper(colPart)[0] - 'A'),
	}
	if !p.InBounds() {
		return Position{}, Across, fmt.Errorf("%w: %q", ErrInvalidPosition, c)
	}
	return p, dir, nil
}

func rejected(reason string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMoveRejected, fmt.Sprintf(reason, args...))
}
