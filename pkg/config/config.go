// Package config loads the settings of a game from a YAML file, SCRABBLE_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"scrabblescrabble/pkg/scrabble"
)

type Config struct {
	Players          int         `mapstructure:"players"`
	Humans           int         `mapstructure:"humans"`
	Names            []string    `mapstructure:"names"`
	HandCapacity     int         `mapstructure:"hand_capacity"`
	PassLimit        int         `mapstructure:"pass_limit"`
	PassLimits       map[int]int `mapstructure:"pass_limits"`
	SwapCountsAsPass bool        `mapstructure:"swap_counts_as_pass"`
	SearchStride     int         `mapstructure:"search_stride"`
	TileSetFile      string      `mapstructure:"tileset_file"`

	// DictionaryFile is a word list, one word per line. The binary falls
	// back to its built-in list when it is empty.
	DictionaryFile string `mapstructure:"dictionary_file"`

	// Seed makes games reproducible when non-zero
	Seed uint64 `mapstructure:"seed"`

	LogLevel    string `mapstructure:"log_level"`
	Games       int    `mapstructure:"games"`
	Concurrency int    `mapstructure:"concurrency"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("players", 2)
	v.SetDefault("humans", 0)
	v.SetDefault("hand_capacity", scrabble.RackSize)
	v.SetDefault("pass_limit", scrabble.MaxPassMoves)
	v.SetDefault("swap_counts_as_pass", false)
	v.SetDefault("search_stride", scrabble.DefaultStride)
	v.SetDefault("tileset_file", "")
	v.SetDefault("dictionary_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("games", 10)
	v.SetDefault("concurrency", 4)
}

// Load reads the config file at path, if any, then applies environment
// overrides such as SCRABBLE_PLAYERS=3.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("scrabble")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration has no errors.
func (c *Config) Validate() error {
	var err error
	switch {
	case c.Players < scrabble.MinPlayers || c.Players > scrabble.MaxPlayers:
		err = fmt.Errorf("players must be between %d and %d, got %d",
			scrabble.MinPlayers, scrabble.MaxPlayers, c.Players)
	case c.Humans < 0 || c.Humans > c.Players:
		err = fmt.Errorf("humans must be between 0 and %d, got %d", c.Players, c.Humans)
	case len(c.Names) > c.Players:
		err = fmt.Errorf("%d names given for %d players", len(c.Names), c.Players)
	case c.HandCapacity <= 0:
		err = errors.New("positive hand capacity required")
	case c.PassLimit <= 0:
		err = errors.New("positive pass limit required")
	case c.SearchStride <= 0:
		err = errors.New("positive search stride required")
	case c.Games < 0:
		err = errors.New("games cannot be negative")
	case c.Concurrency <= 0:
		err = errors.New("positive concurrency required")
	}
	if err == nil {
		for n, limit := range c.PassLimits {
			if limit <= 0 {
				err = fmt.Errorf("pass limit for %d players must be positive", n)
				break
			}
		}
	}
	if err == nil {
		if _, perr := zerolog.ParseLevel(c.LogLevel); perr != nil {
			err = fmt.Errorf("log level: %w", perr)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", scrabble.ErrInvalidConfiguration, err)
	}
	return nil
}

// Rules maps the configuration onto the game rules.
func (c *Config) Rules() scrabble.Rules {
	return scrabble.Rules{
		HandCapacity:     c.HandCapacity,
		PassLimit:        c.PassLimit,
		PassLimits:       c.PassLimits,
		SwapCountsAsPass: c.SwapCountsAsPass,
	}
}

// Seats lays out the table: the first Humans seats are human, the rest AI.
// Human seats are left without a controller for the caller to fill in.
func (c *Config) Seats() []scrabble.Seat {
	seats := make([]scrabble.Seat, c.Players)
	for i := range seats {
		control := scrabble.AI
		name := fmt.Sprintf("Robot %d", i+1)
		if i < c.Humans {
			control = scrabble.Human
			name = fmt.Sprintf("Player %d", i+1)
		}
		if i < len(c.Names) && c.Names[i] != "" {
			name = c.Names[i]
		}
		seats[i] = scrabble.Seat{Name: name, Control: control}
	}
	return seats
}

// TileSet returns the configured tile set, or the default English one.
func (c *Config) TileSet() (*scrabble.TileSet, error) {
	if c.TileSetFile == "" {
		return scrabble.DefaultTileSet, nil
	}
	return scrabble.LoadTileSetFile(c.TileSetFile)
}

// Rand returns a seeded source when a seed is configured.
func (c *Config) Rand(game int) scrabble.Rand {
	if c.Seed == 0 {
		return scrabble.DefaultRand()
	}
	return scrabble.NewSeededRand(c.Seed + uint64(game))
}

// Level is the zerolog level to log at.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
