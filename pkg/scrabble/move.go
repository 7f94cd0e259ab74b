package scrabble

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

type MoveKind int

const (
	Pass MoveKind = iota
	Swap
	Place
)

func (k MoveKind) String() string {
	switch k {
	case Place:
		return "place"
	case Swap:
		return "swap"
	default:
		return "pass"
	}
}

// MoveIntent is what a player wants to do on their turn. It is only a
// proposal; the session validates and applies it.
type MoveIntent struct {
	Kind MoveKind
	// Word, Anchor and Direction are set for Place
	Word      string
	Anchor    Position
	Direction Direction
	// Letters are the tiles to give back for Swap
	Letters []rune
}

func NewPlaceMove(word string, anchor Position, dir Direction) MoveIntent {
	return MoveIntent{
		Kind:      Place,
		Word:      strings.ToUpper(word),
		Anchor:    anchor,
		Direction: dir,
	}
}

func NewSwapMove(letters []rune) MoveIntent {
	return MoveIntent{Kind: Swap, Letters: letters}
}

// NewPassMove returns a move that does nothing and scores nothing.
func NewPassMove() MoveIntent {
	return MoveIntent{Kind: Pass}
}

// String gives the textual form of the move: "WORD 8H", "SWAP ABC" or
// "PASS". ParseMove reads it back.
func (m MoveIntent) String() string {
	switch m.Kind {
	case Place:
		return m.Word + " " + m.Anchor.Coords(m.Direction)
	case Swap:
		return "SWAP " + string(m.Letters)
	default:
		return "PASS"
	}
}

// ParseMove reads a move typed by a player.
func ParseMove(s string) (MoveIntent, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return MoveIntent{}, fmt.Errorf("%w: empty move", ErrInvalidMove)
	}

	switch strings.ToUpper(fields[0]) {
	case "PASS":
		if len(fields) != 1 {
			return MoveIntent{}, fmt.Errorf("%w: PASS takes no arguments", ErrInvalidMove)
		}
		return NewPassMove(), nil
	case "SWAP", "EXCHANGE":
		if len(fields) < 2 {
			return MoveIntent{}, fmt.Errorf("%w: SWAP needs the letters to swap", ErrInvalidMove)
		}
		letters, err := ParseLetters(strings.Join(fields[1:], ""))
		if err != nil {
			return MoveIntent{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
		return NewSwapMove(letters), nil
	}

	if len(fields) != 2 {
		return MoveIntent{}, fmt.Errorf("%w: expected WORD POSITION, SWAP LETTERS or PASS", ErrInvalidMove)
	}
	word, coords := fields[0], fields[1]
	for _, r := range word {
		if !('A' <= r && r <= 'Z') && !('a' <= r && r <= 'z') {
			return MoveIntent{}, fmt.Errorf("%w: %w: %q", ErrInvalidMove, ErrInvalidLetter, r)
		}
	}
	anchor, dir, err := ParseCoords(coords)
	if err != nil {
		return MoveIntent{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return NewPlaceMove(word, anchor, dir), nil
}
