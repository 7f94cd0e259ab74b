package scrabble

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

const (
	RackSize = 7
)

var ErrRackFull = errors.New("rack is full")

// Rack is a player's hand: a bounded multiset of letters. Order carries no
// meaning, it is only kept stable for display.
type Rack struct {
	Tiles    []rune
	capacity int
}

func NewRack(capacity int) *Rack {
	if capacity <= 0 {
		capacity = RackSize
	}
	return &Rack{
		Tiles:    make([]rune, 0, capacity),
		capacity: capacity,
	}
}

// Fill draws from the bag until the rack is full or the bag is empty, and
// returns how many tiles were drawn.
func (r *Rack) Fill(b *Bag) int {
	drawn := 0
	for len(r.Tiles) < r.capacity && b.TileCount() > 0 {
		tile, err := b.DrawTile()
		if err != nil {
			break
		}
		r.Tiles = append(r.Tiles, tile)
		drawn++
	}
	return drawn
}

// Add puts letters on the rack without touching a bag.
func (r *Rack) Add(letters ...rune) error {
	if len(r.Tiles)+len(letters) > r.capacity {
		return ErrRackFull
	}
	r.Tiles = append(r.Tiles, letters...)
	return nil
}

func (r *Rack) Index(letter rune) int {
	for i, t := range r.Tiles {
		if letter == t {
			return i
		}
	}
	return -1
}

// Contains reports whether the rack holds every requested letter at least as
// many times as it is requested.
func (r *Rack) Contains(letters []rune) bool {
	have := lo.CountValues(r.Tiles)
	for letter, n := range lo.CountValues(letters) {
		if have[letter] < n {
			return false
		}
	}
	return true
}

// Remove takes one occurrence off the rack per requested occurrence. Letters
// the rack does not hold are skipped; the return value counts the letters
// actually removed.
func (r *Rack) Remove(letters []rune) int {
	removed := 0
	for _, letter := range letters {
		i := r.Index(letter)
		if i == -1 {
			continue
		}
		// Keep order when deleting so that the player sees the same order as before
		r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
		removed++
	}
	return removed
}

// Swap returns the requested letters that are on the rack to the bag, then
// refills. The rack ends up smaller if the bag runs dry.
func (r *Rack) Swap(letters []rune, b *Bag) (int, error) {
	swapped := 0
	for _, letter := range letters {
		i := r.Index(letter)
		if i == -1 {
			continue
		}
		if err := b.ReturnTile(letter); err != nil {
			r.Fill(b)
			return swapped, err
		}
		r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
		swapped++
	}
	r.Fill(b)
	return swapped, nil
}

// Resolve maps the letters a play needs onto the tiles that would pay for
// them: the letter itself while the rack has it, a blank otherwise. The
// second return is false if the rack cannot cover the letters.
func (r *Rack) Resolve(letters []rune) ([]rune, bool) {
	have := lo.CountValues(r.Tiles)
	tiles := make([]rune, len(letters))
	var short []int
	for i, letter := range letters {
		if have[letter] > 0 {
			have[letter]--
			tiles[i] = letter
			continue
		}
		short = append(short, i)
	}
	for _, i := range short {
		if have[Blank] == 0 {
			return nil, false
		}
		have[Blank]--
		tiles[i] = Blank
	}
	return tiles, true
}

func (r *Rack) Letters() []rune {
	letters := make([]rune, len(r.Tiles))
	copy(letters, r.Tiles)
	return letters
}

func (r *Rack) Size() int {
	return len(r.Tiles)
}

func (r *Rack) Capacity() int {
	return r.capacity
}

func (r *Rack) RemainingCapacity() int {
	return r.capacity - len(r.Tiles)
}

func (r *Rack) IsEmpty() bool {
	return len(r.Tiles) == 0
}

func (r *Rack) AsString() string {
	return string(r.Tiles)
}

// String renders the rack the way it is shown to a player, e.g. "L M N O P ".
func (r *Rack) String() string {
	var sb strings.Builder
	for _, t := range r.Tiles {
		sb.WriteRune(t)
		sb.WriteByte(' ')
	}
	return sb.String()
}
