package scrabble

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFill(t *testing.T) {
	is := is.New(t)

	bag := NewBag(DefaultTileSet, NewSeededRand(3))
	r := NewRack(0)
	is.Equal(r.Capacity(), RackSize)
	is.Equal(r.Fill(bag), 7)
	is.Equal(r.Size(), 7)
	is.Equal(bag.TileCount(), 93)

	// Full rack draws nothing
	is.Equal(r.Fill(bag), 0)
	is.Equal(bag.TileCount(), 93)
}

func TestRackFillFromShortBag(t *testing.T) {
	is := is.New(t)

	ts, err := NewTileSet("tiny", map[rune]int{'A': 2, 'B': 1}, map[rune]int{'A': 1, 'B': 3})
	is.NoErr(err)
	bag := NewBag(ts, NewSeededRand(3))
	r := NewRack(7)
	is.Equal(r.Fill(bag), 3)
	is.Equal(r.Size(), 3)
	is.Equal(bag.TileCount(), 0)
	is.Equal(r.Fill(bag), 0)
}

func TestRackContainsCountsMultiplicity(t *testing.T) {
	is := is.New(t)

	r := NewRack(7)
	is.NoErr(r.Add('A', 'B', 'C'))
	is.True(r.Contains([]rune("A")))
	is.True(r.Contains([]rune("CAB")))
	is.True(!r.Contains([]rune("AA")))
	is.True(!r.Contains([]rune("Z")))
	is.True(r.Contains(nil))

	is.NoErr(r.Add('A'))
	is.True(r.Contains([]rune("AA")))
}

func TestRackAddOverCapacity(t *testing.T) {
	is := is.New(t)

	r := NewRack(2)
	is.NoErr(r.Add('A', 'B'))
	err := r.Add('C')
	is.True(errors.Is(err, ErrRackFull))
	is.Equal(r.AsString(), "AB")
}

func TestRackRemoveSkipsMissing(t *testing.T) {
	is := is.New(t)

	r := NewRack(7)
	is.NoErr(r.Add([]rune("LMNOP")...))
	n := r.Remove([]rune("MZO"))
	is.Equal(n, 2)
	is.Equal(r.AsString(), "LNP")
	is.Equal(r.String(), "L N P ")
}

func TestRackSwapKeepsTileCount(t *testing.T) {
	is := is.New(t)

	bag := NewBag(DefaultTileSet, NewSeededRand(4))
	r := NewRack(7)
	r.Fill(bag)
	total := bag.TileCount() + r.Size()

	give := r.Letters()[:3]
	n, err := r.Swap(give, bag)
	is.NoErr(err)
	is.Equal(n, 3)
	is.Equal(r.Size(), 7)
	is.Equal(bag.TileCount()+r.Size(), total)

	// Letters not on the rack are ignored
	n, err = r.Swap([]rune("#"), bag)
	is.NoErr(err)
	is.Equal(n, 0)
	is.Equal(bag.TileCount()+r.Size(), total)
}

func TestRackResolve(t *testing.T) {
	r := NewRack(7)
	assert.NoError(t, r.Add([]rune("CA?T")...))

	tiles, ok := r.Resolve([]rune("CAT"))
	assert.True(t, ok)
	assert.Equal(t, []rune("CAT"), tiles)

	tiles, ok = r.Resolve([]rune("CART"))
	assert.True(t, ok)
	assert.Equal(t, []rune("CA?T"), tiles)

	_, ok = r.Resolve([]rune("CARTS"))
	assert.False(t, ok)
}
