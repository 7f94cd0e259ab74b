package scrabble

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// MaxPassMoves is the default number of consecutive passes that ends a game.
const MaxPassMoves int = 6

var (
	ErrGameOver       = errors.New("game is over")
	ErrTurnInProgress = errors.New("a turn is already in progress")
	ErrNoTurn         = errors.New("no turn in progress")
)

type State int

const (
	AwaitingTurn State = iota
	TurnInProgress
	TurnResolved
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingTurn:
		return "awaiting turn"
	case TurnInProgress:
		return "turn in progress"
	case TurnResolved:
		return "turn resolved"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EndReason says why a game finished.
type EndReason int

const (
	NotEnded EndReason = iota
	// OutOfTiles: the bag is empty and the player who just moved has no
	// tiles left
	OutOfTiles
	// TooManyPasses: the consecutive pass limit was reached
	TooManyPasses
)

func (r EndReason) String() string {
	switch r {
	case OutOfTiles:
		return "out of tiles"
	case TooManyPasses:
		return "too many passes"
	}
	return "not ended"
}

// Rules are the tunable parts of the game.
type Rules struct {
	HandCapacity int
	// PassLimit is the number of consecutive passes that ends the game.
	// PassLimits overrides it for a given number of players.
	PassLimit  int
	PassLimits map[int]int
	// StartingPlayer is the seat that moves first
	StartingPlayer int
	// SwapCountsAsPass makes swaps count toward the pass limit, as in
	// tournament play where any scoreless turn does.
	SwapCountsAsPass bool
}

func DefaultRules() Rules {
	return Rules{
		HandCapacity: RackSize,
		PassLimit:    MaxPassMoves,
	}
}

// PassThreshold is the pass limit for a game with n players.
func (r Rules) PassThreshold(n int) int {
	if limit, ok := r.PassLimits[n]; ok && limit > 0 {
		return limit
	}
	if r.PassLimit > 0 {
		return r.PassLimit
	}
	return MaxPassMoves
}

// Turn is one player's turn. The engine keeps resolved turns as an audit
// log.
type Turn struct {
	Number int
	Player *Player
	Intent MoveIntent
	// Score is what the turn added to the player's score
	Score int
	// Passed is true for a pass, or anything that ended up as one
	Passed bool
	// Swapped is the number of tiles exchanged
	Swapped int
	// Err is why the intended move was refused, if it was
	Err error
}

// Standing is a player's final (or current) position.
type Standing struct {
	Player *Player
	Score  int
	Rank   int
}

// Engine runs the turn order and decides when the game is over. It does not
// apply moves itself; a Session does, between Begin and Resolve.
type Engine struct {
	Players []*Player
	Bag     *Bag
	Rules   Rules

	state        State
	current      int
	started      bool
	numPassMoves int
	turn         *Turn
	history      []*Turn
	endReason    EndReason
}

func NewEngine(players []*Player, bag *Bag, rules Rules) *Engine {
	start := 0
	if rules.StartingPlayer > 0 && rules.StartingPlayer < len(players) {
		start = rules.StartingPlayer
	}
	return &Engine{
		Players: players,
		Bag:     bag,
		Rules:   rules,
		state:   AwaitingTurn,
		current: start,
	}
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) IsOver() bool {
	return e.state == GameOver
}

func (e *Engine) EndReason() EndReason {
	return e.endReason
}

// NumPassMoves is the current number of consecutive passes.
func (e *Engine) NumPassMoves() int {
	return e.numPassMoves
}

// PlayerToMoveIndex returns the seat whose turn it is, or who moves next.
func (e *Engine) PlayerToMoveIndex() int {
	return e.current
}

func (e *Engine) PlayerToMove() *Player {
	return e.Players[e.current]
}

// Begin starts the next turn, moving to the next player in seat order.
func (e *Engine) Begin() (*Turn, error) {
	switch e.state {
	case GameOver:
		return nil, ErrGameOver
	case TurnInProgress:
		return nil, ErrTurnInProgress
	}

	if e.started {
		e.current = (e.current + 1) % len(e.Players)
	}
	e.started = true
	e.state = TurnInProgress
	e.turn = &Turn{
		Number: len(e.history) + 1,
		Player: e.Players[e.current],
	}
	return e.turn, nil
}

// Resolve folds the outcome of the current turn into the pass count and
// checks whether the game is over.
func (e *Engine) Resolve(t *Turn) error {
	if e.state != TurnInProgress || t != e.turn {
		return ErrNoTurn
	}
	e.state = TurnResolved

	if t.Passed {
		e.numPassMoves++
	} else {
		e.numPassMoves = 0
	}
	e.history = append(e.history, t)
	e.turn = nil

	log.Debug().
		Int("turn", t.Number).
		Str("player", t.Player.Username).
		Str("move", t.Intent.String()).
		Int("score", t.Score).
		Bool("passed", t.Passed).
		Int("passes", e.numPassMoves).
		Msg("turn resolved")

	switch {
	case e.Bag.TileCount() == 0 && t.Player.Rack.IsEmpty():
		e.endReason = OutOfTiles
	case e.numPassMoves >= e.Rules.PassThreshold(len(e.Players)):
		e.endReason = TooManyPasses
	default:
		e.state = AwaitingTurn
		return nil
	}

	e.state = GameOver
	log.Info().Str("reason", e.endReason.String()).Int("turns", len(e.history)).Msg("game over")
	return nil
}

// History returns the resolved turns, oldest first.
func (e *Engine) History() []*Turn {
	return append([]*Turn(nil), e.history...)
}

// Standings ranks the players by score; equal scores share a rank and keep
// seat order.
func (e *Engine) Standings() []Standing {
	standings := lo.Map(e.Players, func(p *Player, _ int) Standing {
		return Standing{Player: p, Score: p.Score()}
	})
	slices.SortStableFunc(standings, func(a, b Standing) bool {
		return a.Score > b.Score
	})
	for i := range standings {
		if i > 0 && standings[i].Score == standings[i-1].Score {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}
