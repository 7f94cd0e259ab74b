package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"scrabblescrabble/pkg/config"
	"scrabblescrabble/pkg/console"
	"scrabblescrabble/pkg/scrabble"
)

//go:embed words.txt
var builtinWords string

var (
	numGames    = flag.Int("n", 0, "Number of games to simulate (overrides the config)")
	configFile  = flag.String("config", "", "Path to a YAML config file")
	interactive = flag.Bool("interactive", false, "Play the human seats from this terminal")
)

type result struct {
	winner string
	reason scrabble.EndReason
	turns  int
}

func main() {
	start := time.Now()
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *numGames > 0 {
		cfg.Games = *numGames
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	tileSet, err := cfg.TileSet()
	if err != nil {
		log.Fatal().Err(err).Msg("loading tile set")
	}
	dict, err := loadDictionary(cfg.DictionaryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading dictionary")
	}
	dawg := scrabble.NewDawg(dict)
	log.Info().Int("words", dawg.NumWords()).Str("tileset", tileSet.Name).Msg("loaded")

	if *interactive {
		err = play(cfg, tileSet, dawg)
	} else {
		err = simulate(cfg, tileSet, dawg)
	}
	if err != nil && !errors.Is(err, console.ErrQuit) {
		log.Fatal().Err(err).Msg("game failed")
	}
	fmt.Println("Took", time.Since(start))
}

func loadDictionary(path string) (*scrabble.Dictionary, error) {
	if path == "" {
		return scrabble.NewDictionary(strings.NewReader(builtinWords))
	}
	return scrabble.LoadDictionary(path)
}

func newSession(cfg *config.Config, ts *scrabble.TileSet, dawg *scrabble.DAWG, seats []scrabble.Seat, game int) (*scrabble.Session, error) {
	return scrabble.NewSession(scrabble.SessionOptions{
		Seats:        seats,
		TileSet:      ts,
		Rules:        cfg.Rules(),
		Board:        scrabble.NewGrid(ts, dawg),
		Words:        dawg,
		Rand:         cfg.Rand(game),
		SearchStride: cfg.SearchStride,
	})
}

// simulate plays robot-only games in parallel and prints a summary.
func simulate(cfg *config.Config, ts *scrabble.TileSet, dawg *scrabble.DAWG) error {
	if cfg.Humans > 0 {
		return fmt.Errorf("%w: simulations need robots only, use -interactive", scrabble.ErrInvalidConfiguration)
	}
	if !cfg.SwapCountsAsPass {
		// Robots never open an empty board, so without this a game of
		// robots swaps forever
		log.Warn().Msg("counting swaps as passes for the simulation")
		cfg.SwapCountsAsPass = true
	}

	results := make([]result, cfg.Games)
	var mu sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(cfg.Concurrency)

	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			s, err := newSession(cfg, ts, dawg, cfg.Seats(), i)
			if err != nil {
				return err
			}
			standings, err := s.Run()
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			res := result{reason: s.EndReason(), turns: len(s.History())}
			if len(standings) > 1 && standings[0].Score > standings[1].Score {
				res.winner = standings[0].Player.Username
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	report(cfg, results)
	return nil
}

func report(cfg *config.Config, results []result) {
	fmt.Printf("%v games were played\n", len(results))

	wins := lo.CountValuesBy(results, func(r result) string { return r.winner })
	for _, seat := range cfg.Seats() {
		fmt.Printf("%s won %v games\n", seat.Name, wins[seat.Name])
	}
	fmt.Printf("%v games were draws\n", wins[""])

	reasons := lo.CountValuesBy(results, func(r result) scrabble.EndReason { return r.reason })
	fmt.Printf("Ended %s: %v, %s: %v\n",
		scrabble.OutOfTiles, reasons[scrabble.OutOfTiles],
		scrabble.TooManyPasses, reasons[scrabble.TooManyPasses])

	if len(results) == 0 {
		return
	}
	turns := lo.Map(results, func(r result, _ int) float64 { return float64(r.turns) })
	fmt.Println("Turns per game:")
	if err := histogram.Fprint(os.Stdout, histogram.Hist(10, turns), histogram.Linear(40)); err != nil {
		log.Err(err).Msg("printing histogram")
	}
}

// play runs a single game with the human seats read from the terminal.
func play(cfg *config.Config, ts *scrabble.TileSet, dawg *scrabble.DAWG) error {
	prompter, rl, err := console.NewReadline("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	seats := cfg.Seats()
	if cfg.Humans == 0 {
		seats[0].Control = scrabble.Human
	}
	for i := range seats {
		if seats[i].Control == scrabble.Human {
			seats[i].Controller = prompter
		}
	}

	s, err := newSession(cfg, ts, dawg, seats, 0)
	if err != nil {
		return err
	}
	standings, err := s.Run()
	if err != nil {
		return err
	}

	fmt.Println(s.Board())
	fmt.Printf("Game over: %s\n", s.EndReason())
	for _, st := range standings {
		fmt.Printf("%d. %-12s %d\n", st.Rank, st.Player, st.Score)
	}
	return nil
}
