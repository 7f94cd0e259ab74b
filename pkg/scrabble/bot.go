package scrabble

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	// DefaultStride is how far apart, in rows and columns, the search
	// windows are
	DefaultStride = 3
	// hardLetterValue is the point value from which a letter is considered
	// hard to place and worth swapping
	hardLetterValue = 8
)

// MoveSearch is the computer player's heuristic. It scans the board in
// Stride x Stride windows, left to right and top to bottom, and plays the
// first word the generator offers through the first usable anchor it finds.
//
// On an empty board it never tries to open; it swaps to improve its hand
// instead.
type MoveSearch struct {
	Stride  int
	TileSet *TileSet
}

func NewMoveSearch(ts *TileSet) *MoveSearch {
	return &MoveSearch{
		Stride:  DefaultStride,
		TileSet: ts,
	}
}

// Propose picks a move for the rack. It does not change the rack or the
// board, and it looks at no more than (size/stride)^2 windows.
func (s *MoveSearch) Propose(r *Rack, b BoardView, g WordGenerator) MoveIntent {
	if b.IsClear() {
		return NewSwapMove(s.SelectSwap(r))
	}

	stride := s.Stride
	if stride <= 0 {
		stride = DefaultStride
	}
	size := b.Size()
	hand := r.Letters()

	for row := 0; row < size; row += stride {
		for col := 0; col < size; col += stride {
			anchor, dir, ok := s.candidate(b, row, col, stride)
			if !ok {
				continue
			}
			letter, _ := b.LetterAt(anchor)
			words := g.GenerateWords(hand, letter)
			log.Debug().
				Str("anchor", anchor.Coords(dir)).
				Str("letter", string(letter)).
				Int("words", len(words)).
				Msg("search window")
			if len(words) > 0 {
				return NewPlaceMove(words[0], anchor, dir)
			}
		}
	}

	if !r.IsEmpty() {
		return NewSwapMove(s.SelectSwap(r))
	}
	return NewPassMove()
}

// candidate finds the first occupied square in the window with room for at
// least two more tiles to its right or below it.
func (s *MoveSearch) candidate(b BoardView, row, col, stride int) (Position, Direction, bool) {
	size := b.Size()
	for r := row; r < row+stride && r < size; r++ {
		for c := col; c < col+stride && c < size; c++ {
			pos := Position{Row: r, Col: c}
			if _, ok := b.LetterAt(pos); !ok {
				continue
			}
			for _, dir := range []Direction{Across, Down} {
				if open(b, pos, dir, 2) {
					return pos, dir, true
				}
			}
		}
	}
	return Position{}, Across, false
}

func open(b BoardView, pos Position, dir Direction, n int) bool {
	for i := 1; i <= n; i++ {
		next := pos.Step(dir, i)
		if next.Row >= b.Size() || next.Col >= b.Size() {
			return false
		}
		if _, ok := b.LetterAt(next); ok {
			return false
		}
	}
	return true
}

// SelectSwap chooses the tiles to throw back: every duplicate beyond the
// first copy and every hard letter. Blanks are kept. If nothing qualifies the
// single most valuable tile goes, so a non-empty rack always swaps something.
func (s *MoveSearch) SelectSwap(r *Rack) []rune {
	ts := s.TileSet
	if ts == nil {
		ts = DefaultTileSet
	}

	var picks []rune
	seen := make(map[rune]bool, r.Size())
	for _, letter := range r.Tiles {
		if letter == Blank {
			continue
		}
		if seen[letter] || ts.Value(letter) >= hardLetterValue {
			picks = append(picks, letter)
		}
		seen[letter] = true
	}

	if len(picks) == 0 && !r.IsEmpty() {
		best := lo.MaxBy(r.Tiles, func(a, b rune) bool {
			return ts.Value(a) > ts.Value(b)
		})
		picks = []rune{best}
	}
	return picks
}

// Escape is the bot's fallback when its move is refused: swap if there is
// anything to swap, pass otherwise.
func (s *MoveSearch) Escape(r *Rack) MoveIntent {
	if r.IsEmpty() {
		return NewPassMove()
	}
	return NewSwapMove(s.SelectSwap(r))
}

// Bot drives an AI seat.
type Bot struct {
	*Player
	Search *MoveSearch
}

var _ Controller = (*Bot)(nil)

func NewBot(p *Player, s *MoveSearch) *Bot {
	return &Bot{
		Player: p,
		Search: s,
	}
}

// NextMove runs the search against the current position.
func (b *Bot) NextMove(t *TurnContext) (MoveIntent, error) {
	return b.Search.Propose(t.Player.Rack, t.Board, t.Words), nil
}
