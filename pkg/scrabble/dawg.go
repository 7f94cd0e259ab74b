package scrabble

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DAWG is the word graph built from a Dictionary. It answers both IsWord and
// GenerateWords.
type DAWG struct {
	Root     *Node
	numWords int
}

type Node struct {
	IsWord bool
	Edges  map[rune]*Node

	// letters holds the sorted edge keys, so walks are deterministic
	letters []rune
}

var (
	_ WordGenerator = (*DAWG)(nil)
	_ WordChecker   = (*DAWG)(nil)
)

func NewNode() *Node {
	return &Node{
		Edges: make(map[rune]*Node),
	}
}

func NewDawg(dict *Dictionary) *DAWG {
	d := &DAWG{
		Root: NewNode(),
	}

	for _, word := range dict.Words {
		d.insert(word)
	}
	d.Root.seal()

	return d
}

func (d *DAWG) insert(word string) {
	curr := d.Root
	for _, letter := range word {
		next, ok := curr.Edges[letter]
		if !ok {
			next = NewNode()
			curr.Edges[letter] = next
		}
		curr = next
	}

	if !curr.IsWord {
		d.numWords++
	}
	curr.IsWord = true
}

func (n *Node) seal() {
	n.letters = maps.Keys(n.Edges)
	slices.Sort(n.letters)
	for _, next := range n.Edges {
		next.seal()
	}
}

func (d *DAWG) NumWords() int {
	return d.numWords
}

// IsWord attempts to find a word in a DAWG, returning true if
// found or false if not.
func (d *DAWG) IsWord(word string) bool {
	curr := d.Root
	for _, letter := range strings.ToUpper(word) {
		next, ok := curr.Edges[letter]
		if !ok {
			return false
		}
		curr = next
	}
	return curr.IsWord
}

// genState is the letter pool of one GenerateWords walk.
type genState struct {
	pool      map[rune]int
	anchor    rune
	anchorSet bool
	used      int
	prefix    []rune
	found     map[string]struct{}
}

// GenerateWords returns every word that can be spelled with the hand plus
// one anchor letter, using the anchor at least once and at least one tile
// from the hand. Blanks in the hand stand for any letter. The result is
// ordered longest first, then alphabetically.
func (d *DAWG) GenerateWords(hand []rune, anchor rune) []string {
	if len(hand) == 0 {
		return nil
	}

	st := &genState{
		pool:   make(map[rune]int, len(hand)+1),
		anchor: anchor,
		found:  make(map[string]struct{}),
	}
	for _, letter := range hand {
		st.pool[letter]++
	}

	d.walk(d.Root, st)

	words := maps.Keys(st.found)
	slices.SortFunc(words, func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return words
}

func (d *DAWG) walk(n *Node, st *genState) {
	if n.IsWord && st.anchorSet && st.used > 0 {
		st.found[string(st.prefix)] = struct{}{}
	}

	for _, letter := range n.letters {
		next := n.Edges[letter]
		st.prefix = append(st.prefix, letter)

		if letter == st.anchor && !st.anchorSet {
			st.anchorSet = true
			d.walk(next, st)
			st.anchorSet = false
		}
		if st.pool[letter] > 0 {
			st.pool[letter]--
			st.used++
			d.walk(next, st)
			st.used--
			st.pool[letter]++
		} else if st.pool[Blank] > 0 {
			st.pool[Blank]--
			st.used++
			d.walk(next, st)
			st.used--
			st.pool[Blank]++
		}

		st.prefix = st.prefix[:len(st.prefix)-1]
	}
}
