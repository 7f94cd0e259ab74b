package scrabble

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T, n int, rules Rules) *Engine {
	t.Helper()
	bag := NewBag(DefaultTileSet, NewSeededRand(5))
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer(string(rune('A'+i)), AI, rules.HandCapacity)
		players[i].Rack.Fill(bag)
	}
	return NewEngine(players, bag, rules)
}

func TestEngineRotatesSeats(t *testing.T) {
	is := is.New(t)

	e := newTestEngine(t, 3, DefaultRules())
	is.Equal(e.State(), AwaitingTurn)

	var order []string
	for i := 0; i < 4; i++ {
		turn, err := e.Begin()
		is.NoErr(err)
		is.Equal(e.State(), TurnInProgress)
		is.Equal(turn.Number, i+1)
		order = append(order, turn.Player.Username)
		is.NoErr(e.Resolve(turn))
		is.Equal(e.State(), AwaitingTurn)
	}
	is.Equal(order, []string{"A", "B", "C", "A"})
}

func TestEngineStartingPlayer(t *testing.T) {
	is := is.New(t)

	rules := DefaultRules()
	rules.StartingPlayer = 1
	e := newTestEngine(t, 2, rules)
	turn, err := e.Begin()
	is.NoErr(err)
	is.Equal(turn.Player.Username, "B")
}

func TestEngineEndsAfterPasses(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		e := newTestEngine(t, n, DefaultRules())
		turns := 0
		for !e.IsOver() {
			turn, err := e.Begin()
			assert.NoError(t, err)
			turn.Passed = true
			assert.NoError(t, e.Resolve(turn))
			turns++
			if turns > n*MaxPassMoves {
				t.Fatalf("%d players: game still running after %d passes", n, turns)
			}
		}
		assert.Equal(t, MaxPassMoves, turns)
		assert.Equal(t, TooManyPasses, e.EndReason())
		assert.Equal(t, GameOver, e.State())
	}
}

func TestEngineScoringResetsPasses(t *testing.T) {
	is := is.New(t)

	e := newTestEngine(t, 2, DefaultRules())
	for i := 0; i < MaxPassMoves-1; i++ {
		turn, err := e.Begin()
		is.NoErr(err)
		turn.Passed = true
		is.NoErr(e.Resolve(turn))
	}
	is.Equal(e.NumPassMoves(), MaxPassMoves-1)

	turn, err := e.Begin()
	is.NoErr(err)
	turn.Swapped = 2
	is.NoErr(e.Resolve(turn))
	is.Equal(e.NumPassMoves(), 0)
	is.True(!e.IsOver())
}

func TestEnginePassLimitPerPlayerCount(t *testing.T) {
	is := is.New(t)

	rules := DefaultRules()
	rules.PassLimits = map[int]int{3: 2}
	is.Equal(rules.PassThreshold(3), 2)
	is.Equal(rules.PassThreshold(2), MaxPassMoves)
	is.Equal(Rules{}.PassThreshold(2), MaxPassMoves)

	e := newTestEngine(t, 3, rules)
	for i := 0; i < 2; i++ {
		turn, err := e.Begin()
		is.NoErr(err)
		turn.Passed = true
		is.NoErr(e.Resolve(turn))
	}
	is.True(e.IsOver())
	is.Equal(e.EndReason(), TooManyPasses)
}

func TestEngineEndsOutOfTiles(t *testing.T) {
	is := is.New(t)

	e := newTestEngine(t, 2, DefaultRules())
	for e.Bag.TileCount() > 0 {
		_, err := e.Bag.DrawTile()
		is.NoErr(err)
	}

	// The first player still has tiles, so play goes on
	turn, err := e.Begin()
	is.NoErr(err)
	is.NoErr(e.Resolve(turn))
	is.True(!e.IsOver())

	turn, err = e.Begin()
	is.NoErr(err)
	turn.Player.Rack.Remove(turn.Player.Rack.Letters())
	turn.Score = 12
	is.NoErr(e.Resolve(turn))
	is.True(e.IsOver())
	is.Equal(e.EndReason(), OutOfTiles)
}

func TestEngineStateErrors(t *testing.T) {
	is := is.New(t)

	rules := DefaultRules()
	rules.PassLimit = 1
	e := newTestEngine(t, 2, rules)

	is.True(errors.Is(e.Resolve(&Turn{}), ErrNoTurn))

	turn, err := e.Begin()
	is.NoErr(err)
	_, err = e.Begin()
	is.True(errors.Is(err, ErrTurnInProgress))
	is.True(errors.Is(e.Resolve(&Turn{}), ErrNoTurn))

	turn.Passed = true
	is.NoErr(e.Resolve(turn))
	is.True(e.IsOver())

	_, err = e.Begin()
	is.True(errors.Is(err, ErrGameOver))
	is.Equal(len(e.History()), 1)
}

func TestStandings(t *testing.T) {
	is := is.New(t)

	e := newTestEngine(t, 4, DefaultRules())
	e.Players[0].AddScore(10)
	e.Players[1].AddScore(30)
	e.Players[2].AddScore(10)
	e.Players[3].AddScore(-5)

	got := e.Standings()
	is.Equal(len(got), 4)
	is.Equal(got[0].Player.Username, "B")
	is.Equal(got[0].Rank, 1)
	is.Equal(got[1].Player.Username, "A")
	is.Equal(got[1].Rank, 2)
	is.Equal(got[2].Player.Username, "C")
	is.Equal(got[2].Rank, 2)
	is.Equal(got[3].Player.Username, "D")
	is.Equal(got[3].Score, 0)
	is.Equal(got[3].Rank, 4)
}
