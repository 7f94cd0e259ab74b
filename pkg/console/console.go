// Package console lets a person play a seat from a terminal.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"scrabblescrabble/pkg/scrabble"
)

// ErrQuit is returned when the player leaves the game.
var ErrQuit = errors.New("player quit")

const helpText = `Moves:
  WORD POS      place WORD through POS; 8H plays across, H8 plays down
  SWAP LETTERS  swap tiles with the bag, e.g. SWAP QXZ
  PASS          do nothing this turn
Commands: board, rack, scores, help, quit`

// LineReader is the part of readline.Instance the prompter uses.
type LineReader interface {
	Readline() (string, error)
}

// Prompter is a scrabble.Controller that asks a person for moves.
type Prompter struct {
	in  LineReader
	out io.Writer
}

var (
	_ scrabble.Controller = (*Prompter)(nil)
	_ scrabble.Notifier   = (*Prompter)(nil)
)

func NewPrompter(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// NewReadline opens an interactive terminal prompt. Close the returned
// instance when the game is done.
func NewReadline(prompt string) (*Prompter, *readline.Instance, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",

		HistorySearchFold: true,
	})
	if err != nil {
		return nil, nil, err
	}
	return NewPrompter(l, l.Stderr()), l, nil
}

func (c *Prompter) NextMove(t *scrabble.TurnContext) (scrabble.MoveIntent, error) {
	c.showBoard(t)
	fmt.Fprintf(c.out, "%s to play. Rack: %s (%d tiles in the bag)\n",
		t.Player, t.Player.Rack, t.BagRemaining)
	if t.LastError != nil {
		fmt.Fprintf(c.out, "Your last move was refused: %v\n", t.LastError)
	}

	for {
		line, err := c.in.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return scrabble.MoveIntent{}, ErrQuit
		} else if err != nil {
			return scrabble.MoveIntent{}, err
		}

		fields, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "help", "?":
			fmt.Fprintln(c.out, helpText)
			continue
		case "board":
			c.showBoard(t)
			continue
		case "rack":
			fmt.Fprintf(c.out, "Rack: %s\n", t.Player.Rack)
			continue
		case "scores":
			c.showScores(t)
			continue
		case "quit", "exit":
			return scrabble.MoveIntent{}, ErrQuit
		}

		move, err := scrabble.ParseMove(strings.Join(fields, " "))
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		if move.Kind == scrabble.Swap && !t.Player.Rack.Contains(move.Letters) {
			fmt.Fprintf(c.out, "Error: your rack does not hold %s\n", string(move.Letters))
			continue
		}
		return move, nil
	}
}

func (c *Prompter) Rejected(p *scrabble.Player, intent scrabble.MoveIntent, err error) {
	fmt.Fprintf(c.out, "%s: %s was refused, turn passed: %v\n", p, intent, err)
}

func (c *Prompter) showBoard(t *scrabble.TurnContext) {
	if s, ok := t.Board.(fmt.Stringer); ok {
		fmt.Fprintln(c.out, s.String())
	}
}

func (c *Prompter) showScores(t *scrabble.TurnContext) {
	names := maps.Keys(t.Scores)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(c.out, "%-12s %d\n", name, t.Scores[name])
	}
}
