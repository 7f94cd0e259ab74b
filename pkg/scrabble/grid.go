package scrabble

import (
	"fmt"
	"strings"
	"unicode"
)

// BingoBonus is the number of extra points awarded for laying down
// a full rack in one move
const BingoBonus = 50

var (
	wordMultipliers = [BoardSize]string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}

	letterMultipliers = [BoardSize]string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}

	boardCenter = Position{Row: BoardSize / 2, Col: BoardSize / 2}
)

// Grid is the standard 15x15 premium-square board. It implements Board.
type Grid struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize][4]*Square

	// BingoSize is the number of tiles laid in one move that earns the
	// bingo bonus
	BingoSize int

	tileSet  *TileSet
	words    WordChecker
	numTiles int
}

type Square struct {
	Tile             *Tile
	LetterMultiplier int
	WordMultiplier   int
	Position         Position
}

type side = int

const (
	sideAbove side = iota
	sideLeft
	sideRight
	sideBelow
)

var _ Board = (*Grid)(nil)

// NewGrid creates an empty board. Words are checked against words unless it
// is nil.
func NewGrid(ts *TileSet, words WordChecker) *Grid {
	b := &Grid{
		BingoSize: RackSize,
		tileSet:   ts,
		words:     words,
	}

	const zeroUnicode = '0'
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			b.Squares[i][j] = Square{
				LetterMultiplier: int(letterMultipliers[i][j] - zeroUnicode),
				WordMultiplier:   int(wordMultipliers[i][j] - zeroUnicode),
				Position: Position{
					Row: i,
					Col: j,
				},
			}
		}
	}

	// Initialize the adjacent square lists
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &b.Adjacents[row][col]
			if row > 0 {
				adj[sideAbove] = &b.Squares[row-1][col]
			}
			if row < BoardSize-1 {
				adj[sideBelow] = &b.Squares[row+1][col]
			}
			if col > 0 {
				adj[sideLeft] = &b.Squares[row][col-1]
			}
			if col < BoardSize-1 {
				adj[sideRight] = &b.Squares[row][col+1]
			}
		}
	}

	return b
}

func (b *Grid) Size() int {
	return BoardSize
}

func (b *Grid) IsClear() bool {
	return b.numTiles == 0
}

func (b *Grid) LetterAt(p Position) (rune, bool) {
	if !p.InBounds() {
		return 0, false
	}
	sq := b.GetSquare(p)
	if sq.Tile == nil {
		return 0, false
	}
	return sq.Tile.Letter, true
}

func (b *Grid) GetSquare(p Position) *Square {
	return &b.Squares[p.Row][p.Col]
}

func (b *Grid) PlaceTile(t *Tile, p Position) error {
	if !p.InBounds() {
		return ErrInvalidPosition
	}
	sq := b.GetSquare(p)

	if sq.Tile != nil {
		return ErrExistingTile
	}
	sq.Tile = t
	b.numTiles++
	return nil
}

// layout works out where the word goes and which of its letters are new.
func (b *Grid) layout(word []rune, anchor Position, dir Direction) (start Position, needs []int, err error) {
	if len(word) < 2 {
		return start, nil, rejected("word %q is too short", string(word))
	}
	if !anchor.InBounds() {
		return start, nil, fmt.Errorf("%w: %w", ErrMoveRejected, ErrInvalidPosition)
	}

	start = anchor
	if letter, ok := b.LetterAt(anchor); ok {
		idx := strings.IndexRune(strings.ToUpper(string(word)), letter)
		if idx < 0 {
			return start, nil, rejected("%s does not use the %c at %s", string(word), letter, anchor.Coords(dir))
		}
		// IndexRune counts bytes; letters are ASCII
		start = anchor.Step(dir, -idx)
	}
	end := start.Step(dir, len(word)-1)
	if !start.InBounds() || !end.InBounds() {
		return start, nil, rejected("%s does not fit on the board", string(word))
	}

	touches := false
	for i, r := range word {
		pos := start.Step(dir, i)
		letter, occupied := b.LetterAt(pos)
		if occupied {
			if letter != unicode.ToUpper(r) {
				return start, nil, rejected("%c at %s conflicts with %c", r, pos.Coords(dir), letter)
			}
			touches = true
			continue
		}
		needs = append(needs, i)
		if b.NumAdjacentTiles(pos) > 0 {
			touches = true
		}
	}
	if len(needs) == 0 {
		return start, nil, rejected("%s lays no new tiles", string(word))
	}
	if _, ok := b.LetterAt(start.Step(dir, -1)); ok {
		return start, nil, rejected("%s runs into the tiles before it", string(word))
	}
	if _, ok := b.LetterAt(end.Step(dir, 1)); ok {
		return start, nil, rejected("%s runs into the tiles after it", string(word))
	}

	if b.IsClear() {
		// The first tile move must go through the center
		covers := false
		for _, i := range needs {
			if start.Step(dir, i) == boardCenter {
				covers = true
			}
		}
		if !covers {
			return start, nil, rejected("the first word must cover the center square")
		}
	} else if !touches {
		return start, nil, rejected("%s does not touch any tile on the board", string(word))
	}

	return start, needs, nil
}

func (b *Grid) Needs(word string, anchor Position, dir Direction) ([]int, error) {
	_, needs, err := b.layout([]rune(word), anchor, dir)
	return needs, err
}

func (b *Grid) Place(word string, anchor Position, dir Direction) (int, error) {
	w := []rune(word)
	start, needs, err := b.layout(w, anchor, dir)
	if err != nil {
		return 0, err
	}

	played := strings.ToUpper(word)
	if b.words != nil && !b.words.IsWord(played) {
		return 0, rejected("%s is not in the dictionary", played)
	}

	horizontal := dir == Across
	score := 0
	crossScores := 0
	wordMultiplier := 1
	newTiles := make(map[int]*Tile, len(needs))
	for _, i := range needs {
		pos := start.Step(dir, i)
		sq := b.GetSquare(pos)
		tile := NewTile(b.tileSet, w[i])
		newTiles[i] = tile

		// Cross words run perpendicular to the play
		prev, after := b.CrossWordFragments(pos, !horizontal)
		if prev == "" && after == "" {
			continue
		}
		cross := prev + string(tile.Letter) + after
		if b.words != nil && !b.words.IsWord(cross) {
			return 0, rejected("%s is not in the dictionary", cross)
		}
		_, fragScore := b.CrossScore(pos, !horizontal)
		crossScores += (fragScore + tile.Value*sq.LetterMultiplier) * sq.WordMultiplier
	}

	for i := range w {
		pos := start.Step(dir, i)
		sq := b.GetSquare(pos)
		tile, isNew := newTiles[i]
		if !isNew {
			score += sq.Tile.Value
			continue
		}
		score += tile.Value * sq.LetterMultiplier
		wordMultiplier *= sq.WordMultiplier
	}
	score = score*wordMultiplier + crossScores
	if len(needs) >= b.BingoSize {
		score += BingoBonus
	}

	for _, i := range needs {
		if err := b.PlaceTile(newTiles[i], start.Step(dir, i)); err != nil {
			// layout already checked every square
			return 0, err
		}
	}

	return score, nil
}

// TileFragment returns a list of the tiles that extend from the square
// at given pos in the direction specified.
func (b *Grid) TileFragment(pos Position, s side) []*Tile {
	if !pos.InBounds() {
		return nil
	}
	if s < sideAbove || s > sideBelow {
		return nil
	}

	frag := make([]*Tile, 0, BoardSize-1)
	for {
		sq := b.Adjacents[pos.Row][pos.Col][s]
		// If there is no adjacent square in direction, than can't be
		// more letters in that direction
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		pos = sq.Position
	}

	return frag
}

// WordFragment returns the word formed by the tile sequence emanating
// from the given square in the indicated direction, not including the
// square itself.
func (b *Grid) WordFragment(pos Position, s side) string {
	result := ""
	frag := b.TileFragment(pos, s)

	if s == sideLeft || s == sideAbove {
		// We need to reverse the order of the fragment
		for _, tile := range frag {
			result = string(tile.Letter) + result
		}
	} else {
		// The fragment is in correct reading order
		for _, tile := range frag {
			result += string(tile.Letter)
		}
	}
	return result
}

// CrossWordFragments returns the word fragments above and below (vertical),
// or to the left and right (horizontal), of the given position on the board.
func (b *Grid) CrossWordFragments(pos Position, horizontal bool) (prev, after string) {
	if horizontal {
		return b.WordFragment(pos, sideLeft), b.WordFragment(pos, sideRight)
	}
	return b.WordFragment(pos, sideAbove), b.WordFragment(pos, sideBelow)
}

// NumAdjacentTiles returns the number of tiles on the
// Board that are adjacent to the given coordinate
func (b *Grid) NumAdjacentTiles(pos Position) int {
	if !pos.InBounds() {
		return 0
	}
	adj := &b.Adjacents[pos.Row][pos.Col]
	count := 0
	for _, sq := range adj {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// CrossScore returns the sum of the scores of the tiles crossing
// the given tile, either horizontally or vertically. If there are no
// crossings, returns false, 0. (Note that true, 0 is a valid return
// value, if a crossing has only blank tiles.)
func (b *Grid) CrossScore(pos Position, horizontal bool) (hasCrossing bool, score int) {
	before, after := sideAbove, sideBelow
	if horizontal {
		before, after = sideLeft, sideRight
	}

	for _, s := range []side{before, after} {
		for _, tile := range b.TileFragment(pos, s) {
			score += tile.Value
			hasCrossing = true
		}
	}
	return hasCrossing, score
}

// String represents a Board as a string
func (b *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(string(rune('A'+i)) + " ")
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2d ", i+1))
		for j := 0; j < BoardSize; j++ {
			sq := b.GetSquare(Position{i, j})
			sb.WriteString(fmt.Sprintf("%v ", sq))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s *Square) String() string {
	if s.Tile == nil {
		return "-"
	}
	return string(s.Tile.Letter)
}

func (s *Square) IsEmpty() bool {
	return s.Tile == nil
}
