package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"scrabblescrabble/pkg/scrabble"
)

type lines []string

func (l *lines) Readline() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}

func turnFor(t *testing.T, rack string) *scrabble.TurnContext {
	t.Helper()
	p := scrabble.NewPlayer("Ann", scrabble.Human, scrabble.RackSize)
	if err := p.Rack.Add([]rune(rack)...); err != nil {
		t.Fatal(err)
	}
	return &scrabble.TurnContext{
		Player:       p,
		Board:        scrabble.NewGrid(scrabble.DefaultTileSet, nil),
		BagRemaining: 86,
		Scores:       map[string]int{"Ann": 12, "Bob": 30},
	}
}

func TestPrompterReadsMove(t *testing.T) {
	is := is.New(t)

	in := &lines{"", "help", "scores", "cat 8h"}
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	m, err := p.NextMove(turnFor(t, "CATEEIO"))
	is.NoErr(err)
	is.Equal(m, scrabble.NewPlaceMove("CAT", scrabble.Position{Row: 7, Col: 7}, scrabble.Across))

	text := out.String()
	is.True(strings.Contains(text, "Ann to play. Rack: C A T E E I O"))
	is.True(strings.Contains(text, "SWAP LETTERS"))
	is.True(strings.Contains(text, "Ann          12"))
	is.True(strings.Index(text, "Ann          12") < strings.Index(text, "Bob          30"))
}

func TestPrompterRetriesBadInput(t *testing.T) {
	is := is.New(t)

	in := &lines{"cat", `"unterminated`, "swap QZ", "swap E E"}
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	m, err := p.NextMove(turnFor(t, "CATEEIO"))
	is.NoErr(err)
	is.Equal(m.Kind, scrabble.Swap)
	is.Equal(string(m.Letters), "EE")
	is.Equal(strings.Count(out.String(), "Error:"), 3)
}

func TestPrompterQuit(t *testing.T) {
	for _, in := range []*lines{{"quit"}, {}} {
		p := NewPrompter(in, io.Discard)
		_, err := p.NextMove(turnFor(t, "A"))
		if !errors.Is(err, ErrQuit) {
			t.Errorf("got %v, want ErrQuit", err)
		}
	}
}

func TestPrompterShowsRejection(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	p := NewPrompter(&lines{"pass"}, &out)
	tc := turnFor(t, "A")
	tc.LastError = scrabble.ErrMoveRejected

	m, err := p.NextMove(tc)
	is.NoErr(err)
	is.Equal(m.Kind, scrabble.Pass)
	is.True(strings.Contains(out.String(), "refused"))

	out.Reset()
	p.Rejected(tc.Player, scrabble.NewPassMove(), scrabble.ErrMoveRejected)
	is.True(strings.Contains(out.String(), "Ann: PASS was refused"))
}
