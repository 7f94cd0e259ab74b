package scrabble

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func rackOf(t *testing.T, letters string) *Rack {
	t.Helper()
	r := NewRack(RackSize)
	if err := r.Add([]rune(letters)...); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestProposeSwapsOnClearBoard(t *testing.T) {
	is := is.New(t)

	s := NewMoveSearch(DefaultTileSet)
	g := NewGrid(DefaultTileSet, nil)
	r := rackOf(t, "CATSEQZ")

	m := s.Propose(r, g, testWords())
	is.Equal(m.Kind, Swap)
	is.True(len(m.Letters) > 0)
	is.True(r.Contains(m.Letters))
	is.Equal(r.AsString(), "CATSEQZ") // the rack is left alone
}

func TestProposePlacesFirstWord(t *testing.T) {
	is := is.New(t)

	g := NewGrid(DefaultTileSet, nil)
	_, err := g.Place("CA", Position{Row: 7, Col: 7}, Across)
	is.NoErr(err)

	s := NewMoveSearch(DefaultTileSet)
	m := s.Propose(rackOf(t, "ATSEIOU"), g, testWords())

	// C has A to its right, so the window offers it downwards
	is.Equal(m, NewPlaceMove("CATS", Position{Row: 7, Col: 7}, Down))

	// And the play is one the board accepts
	_, err = g.Place(m.Word, m.Anchor, m.Direction)
	is.NoErr(err)
}

func TestProposeIsDeterministic(t *testing.T) {
	g := NewGrid(DefaultTileSet, nil)
	_, err := g.Place("TAX", Position{Row: 7, Col: 6}, Across)
	assert.NoError(t, err)

	s := NewMoveSearch(DefaultTileSet)
	words := testWords()
	first := s.Propose(rackOf(t, "CATSDOG"), g, words)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Propose(rackOf(t, "CATSDOG"), g, words))
	}
	assert.Equal(t, Place, first.Kind)
}

func TestProposeFallback(t *testing.T) {
	is := is.New(t)

	g := NewGrid(DefaultTileSet, nil)
	_, err := g.Place("DOG", Position{Row: 7, Col: 7}, Across)
	is.NoErr(err)
	s := NewMoveSearch(DefaultTileSet)

	m := s.Propose(rackOf(t, "QZJ"), g, testWords())
	is.Equal(m.Kind, Swap)
	is.Equal(string(m.Letters), "QZJ")

	m = s.Propose(NewRack(RackSize), g, testWords())
	is.Equal(m.Kind, Pass)
}

func TestSelectSwap(t *testing.T) {
	s := NewMoveSearch(DefaultTileSet)

	tests := []struct {
		rack string
		want string
	}{
		{"AABCDEE", "AE"},
		{"ABCDEFX", "X"},
		{"ABCDEFG", "F"},
		{"??A", "A"},
		{"QUEEN", "QE"},
	}
	for _, tt := range tests {
		t.Run(tt.rack, func(t *testing.T) {
			assert.Equal(t, tt.want, string(s.SelectSwap(rackOf(t, tt.rack))))
		})
	}

	assert.Empty(t, s.SelectSwap(NewRack(RackSize)))
}

func TestBotNextMove(t *testing.T) {
	is := is.New(t)

	p := NewPlayer("Robot", AI, RackSize)
	is.NoErr(p.Rack.Add([]rune("ABCDEFG")...))
	bot := NewBot(p, NewMoveSearch(DefaultTileSet))

	m, err := bot.NextMove(&TurnContext{
		Player: p,
		Board:  NewGrid(DefaultTileSet, nil),
		Words:  testWords(),
	})
	is.NoErr(err)
	is.Equal(m.Kind, Swap)
}
