package scrabble

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"lukechampine.com/frand"
)

var (
	ErrBagEmpty = errors.New("bag is empty")
	ErrBagFull  = errors.New("bag already holds every tile of that letter")
)

// Rand is the source of randomness for drawing tiles.
type Rand interface {
	Intn(n int) int
}

type cryptoRand struct{}

func (cryptoRand) Intn(n int) int { return frand.Intn(n) }

// DefaultRand draws from frand's global CSPRNG.
func DefaultRand() Rand {
	return cryptoRand{}
}

// NewSeededRand returns a deterministic source, so that a game can be
// replayed from its seed.
func NewSeededRand(seed uint64) Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Bag holds the tiles that have not been drawn yet, as a count per letter.
// A letter with no tiles left has no entry.
type Bag struct {
	counts    map[rune]int
	remaining int

	// letters is the sorted enumeration, used to walk cumulative counts
	letters []rune
	TileSet *TileSet
	rng     Rand
}

func NewBag(tileSet *TileSet, rng Rand) *Bag {
	if rng == nil {
		rng = DefaultRand()
	}
	b := &Bag{
		counts:  make(map[rune]int, len(tileSet.Count)),
		letters: tileSet.Letters(),
		TileSet: tileSet,
		rng:     rng,
	}

	for letter, count := range tileSet.Count {
		if count > 0 {
			b.counts[letter] = count
			b.remaining += count
		}
	}

	return b
}

// TileCount is the total number of tiles left in the bag.
func (b *Bag) TileCount() int {
	return b.remaining
}

// DrawTile picks one of the remaining tiles uniformly, so a letter with five
// tiles left is five times more likely than a letter with one.
func (b *Bag) DrawTile() (rune, error) {
	if b.remaining == 0 {
		return 0, ErrBagEmpty
	}

	// # nosec
	i := b.rng.Intn(b.remaining)
	for _, letter := range b.letters {
		i -= b.counts[letter]
		if i < 0 {
			b.RemoveTile(letter)
			log.Debug().Str("letter", string(letter)).Int("left", b.remaining).Msg("drew tile")
			return letter, nil
		}
	}

	// Counts and remaining disagree; that is a bug in the bag itself
	panic(fmt.Sprintf("bag: %d tiles remaining but none found", b.remaining))
}

// RemoveTile takes one tile of the given letter out of the bag.
func (b *Bag) RemoveTile(letter rune) {
	switch b.counts[letter] {
	case 0:
		return
	case 1:
		delete(b.counts, letter)
	default:
		b.counts[letter]--
	}
	b.remaining--
}

// ReturnTile puts a tile back in the bag.
func (b *Bag) ReturnTile(letter rune) error {
	if !b.TileSet.Has(letter) {
		return fmt.Errorf("returning %q: %w", letter, ErrInvalidLetter)
	}
	if b.counts[letter] >= b.TileSet.Count[letter] {
		return fmt.Errorf("returning %c: %w", letter, ErrBagFull)
	}
	b.counts[letter]++
	b.remaining++
	log.Debug().Str("letter", string(letter)).Int("left", b.remaining).Msg("returned tile")
	return nil
}

// Count is the number of tiles of one letter left in the bag.
func (b *Bag) Count(letter rune) int {
	return b.counts[letter]
}

// Counts returns a copy of the remaining counts.
func (b *Bag) Counts() map[rune]int {
	return maps.Clone(b.counts)
}

// Peek lists the remaining tiles in sorted order without drawing them.
func (b *Bag) Peek() []rune {
	tiles := make([]rune, 0, b.remaining)
	for _, letter := range b.letters {
		for i := 0; i < b.counts[letter]; i++ {
			tiles = append(tiles, letter)
		}
	}
	return tiles
}

// ExchangeAllowed reports whether a full hand could be exchanged.
func (b *Bag) ExchangeAllowed(handCapacity int) bool {
	return b.TileCount() >= handCapacity
}
