package scrabble

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Seat describes one player at the table. Human seats need a Controller;
// AI seats get a Bot when they have none.
type Seat struct {
	Name       string
	Control    Control
	Controller Controller
}

type SessionOptions struct {
	Seats   []Seat
	TileSet *TileSet
	Rules   Rules
	Board   Board
	Words   WordGenerator
	// Rand defaults to DefaultRand
	Rand Rand
	// SearchStride overrides the bots' search stride when positive
	SearchStride int
}

// Session is one game: the bag, the players, the board and the turn engine.
// It is not safe for concurrent use; callers sharing a session must
// serialize their calls.
type Session struct {
	ID uuid.UUID

	engine      *Engine
	bag         *Bag
	board       Board
	words       WordGenerator
	search      *MoveSearch
	controllers []Controller
	lastErr     []error
	pending     *Turn
}

// NewSession validates the options, seats the players and deals their
// racks.
func NewSession(opts SessionOptions) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	ts := opts.TileSet
	if ts == nil {
		ts = DefaultTileSet
	}
	rules := opts.Rules
	if rules.HandCapacity == 0 {
		rules.HandCapacity = RackSize
	}
	if rules.PassLimit == 0 {
		rules.PassLimit = MaxPassMoves
	}

	search := NewMoveSearch(ts)
	if opts.SearchStride > 0 {
		search.Stride = opts.SearchStride
	}

	s := &Session{
		ID:      uuid.New(),
		bag:     NewBag(ts, opts.Rand),
		board:   opts.Board,
		words:   opts.Words,
		search:  search,
		lastErr: make([]error, len(opts.Seats)),
	}

	players := make([]*Player, len(opts.Seats))
	for i, seat := range opts.Seats {
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		p := NewPlayer(name, seat.Control, rules.HandCapacity)
		players[i] = p

		ctrl := seat.Controller
		if ctrl == nil {
			ctrl = NewBot(p, search)
		}
		s.controllers = append(s.controllers, ctrl)
	}
	s.engine = NewEngine(players, s.bag, rules)

	for _, p := range players {
		p.Rack.Fill(s.bag)
	}

	log.Info().
		Str("session", s.ID.String()).
		Strs("players", lo.Map(players, func(p *Player, _ int) string { return p.Username })).
		Int("bag", s.bag.TileCount()).
		Msg("session started")

	return s, nil
}

func (opts SessionOptions) validate() error {
	n := len(opts.Seats)
	names := make(map[string]bool, n)
	switch {
	case n < MinPlayers || n > MaxPlayers:
		return fmt.Errorf("%d players, want between %d and %d", n, MinPlayers, MaxPlayers)
	case opts.Rules.HandCapacity < 0:
		return fmt.Errorf("negative hand capacity")
	case opts.Rules.PassLimit < 0:
		return fmt.Errorf("negative pass limit")
	case opts.Board == nil:
		return fmt.Errorf("board required")
	case opts.Words == nil:
		return fmt.Errorf("word generator required")
	}
	if opts.TileSet != nil {
		if err := opts.TileSet.Validate(); err != nil {
			return err
		}
	}
	for i, seat := range opts.Seats {
		if seat.Control == Human && seat.Controller == nil {
			return fmt.Errorf("seat %d is human but has no controller", i+1)
		}
		if seat.Name == "" {
			continue
		}
		if names[seat.Name] {
			return fmt.Errorf("player name %q used twice", seat.Name)
		}
		names[seat.Name] = true
	}
	return nil
}

// Step plays one turn. If the controller fails, the turn stays open and the
// next Step asks the same player again.
func (s *Session) Step() (*Turn, error) {
	if s.pending == nil {
		t, err := s.engine.Begin()
		if err != nil {
			return nil, err
		}
		s.pending = t
	}
	t := s.pending
	seat := s.engine.PlayerToMoveIndex()

	intent, err := s.controllers[seat].NextMove(s.turnContext(seat))
	if err != nil {
		return nil, fmt.Errorf("getting move from %s: %w", t.Player, err)
	}
	t.Intent = intent

	s.apply(t, seat)
	s.lastErr[seat] = t.Err

	if err := s.engine.Resolve(t); err != nil {
		return nil, err
	}
	s.pending = nil
	return t, nil
}

// Run plays turns until the game is over and returns the final standings.
func (s *Session) Run() ([]Standing, error) {
	for !s.engine.IsOver() {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}
	return s.engine.Standings(), nil
}

func (s *Session) turnContext(seat int) *TurnContext {
	return &TurnContext{
		Player:       s.engine.Players[seat],
		Board:        s.board,
		Words:        s.words,
		BagRemaining: s.bag.TileCount(),
		Scores:       s.Scores(),
		LastError:    s.lastErr[seat],
	}
}

// apply carries out the intent. A refused placement counts as a pass; an AI
// player then falls back to its own swap.
func (s *Session) apply(t *Turn, seat int) {
	p := t.Player
	switch t.Intent.Kind {
	case Place:
		score, err := s.place(p, t.Intent)
		if err == nil {
			t.Score = score
			return
		}
		t.Err = err
		t.Passed = true
		log.Warn().Err(err).Str("player", p.Username).Str("move", t.Intent.String()).Msg("move rejected")
		if n, ok := s.controllers[seat].(Notifier); ok {
			n.Rejected(p, t.Intent, err)
		}
		if p.IsAI() {
			if escape := s.search.Escape(p.Rack); escape.Kind == Swap {
				t.Swapped, _ = p.Rack.Swap(escape.Letters, s.bag)
			}
		}

	case Swap:
		n, err := p.Rack.Swap(t.Intent.Letters, s.bag)
		t.Swapped = n
		if err != nil {
			t.Err = err
			log.Error().Err(err).Str("player", p.Username).Msg("swap failed")
		}
		t.Passed = n == 0 || s.engine.Rules.SwapCountsAsPass

	default:
		t.Passed = true
	}
}

func (s *Session) place(p *Player, intent MoveIntent) (int, error) {
	needs, err := s.board.Needs(intent.Word, intent.Anchor, intent.Direction)
	if err != nil {
		return 0, err
	}

	word := []rune(strings.ToUpper(intent.Word))
	letters := lo.Map(needs, func(i int, _ int) rune { return word[i] })
	tiles, ok := p.Rack.Resolve(letters)
	if !ok {
		return 0, rejected("%s needs %s, rack has %s", intent.Word, string(letters), p.Rack.AsString())
	}
	// Blanks are marked by writing the letter they stand for in lower case
	for k, i := range needs {
		if tiles[k] == Blank {
			word[i] = unicode.ToLower(word[i])
		}
	}

	score, err := s.board.Place(string(word), intent.Anchor, intent.Direction)
	if err != nil {
		return 0, err
	}
	p.Rack.Remove(tiles)
	p.AddScore(score)
	p.Rack.Fill(s.bag)
	return score, nil
}

func (s *Session) Players() []*Player {
	return s.engine.Players
}

// Scores maps player names to their scores.
func (s *Session) Scores() map[string]int {
	return lo.SliceToMap(s.engine.Players, func(p *Player) (string, int) {
		return p.Username, p.Score()
	})
}

func (s *Session) Board() BoardView {
	return s.board
}

func (s *Session) Bag() *Bag {
	return s.bag
}

func (s *Session) State() State {
	return s.engine.State()
}

func (s *Session) IsOver() bool {
	return s.engine.IsOver()
}

func (s *Session) EndReason() EndReason {
	return s.engine.EndReason()
}

func (s *Session) History() []*Turn {
	return s.engine.History()
}

func (s *Session) Standings() []Standing {
	return s.engine.Standings()
}
