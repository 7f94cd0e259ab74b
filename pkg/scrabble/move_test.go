package scrabble

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want MoveIntent
	}{
		{"cat 8h", NewPlaceMove("CAT", Position{Row: 7, Col: 7}, Across)},
		{"CAT H8", NewPlaceMove("CAT", Position{Row: 7, Col: 7}, Down)},
		{"quiz 15A", NewPlaceMove("QUIZ", Position{Row: 14, Col: 0}, Across)},
		{"pass", NewPassMove()},
		{"SWAP q x z", NewSwapMove([]rune("QXZ"))},
		{"exchange AE?", NewSwapMove([]rune("AE?"))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseMove(tt.in)
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, in := range []string{"", "PASS NOW", "SWAP", "SWAP 12", "CAT", "CAT 16A", "CAT 8", "C4T 8H"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMove(in)
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("ParseMove(%q) = %v, want ErrInvalidMove", in, err)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	is := is.New(t)

	m := NewPlaceMove("cat", Position{Row: 7, Col: 7}, Down)
	is.Equal(m.String(), "CAT H8")
	back, err := ParseMove(m.String())
	is.NoErr(err)
	is.Equal(back, m)

	is.Equal(NewSwapMove([]rune("QX")).String(), "SWAP QX")
	is.Equal(NewPassMove().String(), "PASS")
}

func TestCoords(t *testing.T) {
	is := is.New(t)

	p := Position{Row: 0, Col: 14}
	is.Equal(p.Coords(Across), "1O")
	is.Equal(p.Coords(Down), "O1")

	got, dir, err := ParseCoords("o1")
	is.NoErr(err)
	is.Equal(got, p)
	is.Equal(dir, Down)

	_, _, err = ParseCoords("P1")
	is.True(errors.Is(err, ErrInvalidPosition))
}
