package scrabble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Control says who picks a player's moves.
type Control int

const (
	Human Control = iota
	AI
)

func (c Control) String() string {
	if c == AI {
		return "ai"
	}
	return "human"
}

func ParseControl(s string) (Control, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "ai", "bot", "robot":
		return AI, nil
	}
	return Human, fmt.Errorf("unknown control %q", s)
}

type Player struct {
	ID       uuid.UUID
	Username string
	Control  Control
	Rack     *Rack

	score int
}

func NewPlayer(username string, control Control, rackCapacity int) *Player {
	return &Player{
		ID:       uuid.New(),
		Username: username,
		Control:  control,
		Rack:     NewRack(rackCapacity),
	}
}

func (p *Player) Score() int {
	return p.score
}

// AddScore credits points for a scored word. Scores never go down, so
// negative deltas are ignored.
func (p *Player) AddScore(delta int) {
	if delta > 0 {
		p.score += delta
	}
}

func (p *Player) IsAI() bool {
	return p.Control == AI
}

func (p *Player) String() string {
	return p.Username
}

func (p *Player) StringScore() string {
	return strconv.Itoa(p.score)
}

// TurnContext is everything a controller may look at to choose a move.
type TurnContext struct {
	Player       *Player
	Board        BoardView
	Words        WordGenerator
	BagRemaining int
	Scores       map[string]int
	// LastError is set when the previous move of this player was rejected
	LastError error
}

// Controller picks moves for a player. AI seats are driven by a Bot; human
// seats by whatever collects input.
type Controller interface {
	NextMove(t *TurnContext) (MoveIntent, error)
}

// Notifier is implemented by controllers that want to hear about rejected
// moves, e.g. to tell a human why their word was refused.
type Notifier interface {
	Rejected(p *Player, intent MoveIntent, err error)
}
