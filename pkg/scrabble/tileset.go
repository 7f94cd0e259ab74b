package scrabble

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// tileSetFile is the on-disk layout of a tile set:
//
//	name: English
//	tiles:
//	  - {letter: A, count: 9, value: 1}
//	  - {letter: "?", count: 2, value: 0}
type tileSetFile struct {
	Name  string `yaml:"name"`
	Tiles []struct {
		Letter string `yaml:"letter"`
		Count  int    `yaml:"count"`
		Value  int    `yaml:"value"`
	} `yaml:"tiles"`
}

// LoadTileSet decodes a YAML tile set.
func LoadTileSet(r io.Reader) (*TileSet, error) {
	var f tileSetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding tile set: %w", err)
	}

	count := make(map[rune]int, len(f.Tiles))
	values := make(map[rune]int, len(f.Tiles))
	for _, t := range f.Tiles {
		letters, err := ParseLetters(t.Letter)
		if err != nil || len(letters) != 1 || utf8.RuneCountInString(t.Letter) != 1 {
			return nil, fmt.Errorf("tile set %q: %w: %q", f.Name, ErrInvalidLetter, t.Letter)
		}
		letter := letters[0]
		if _, dup := count[letter]; dup {
			return nil, fmt.Errorf("tile set %q: letter %c listed twice", f.Name, letter)
		}
		count[letter] = t.Count
		values[letter] = t.Value
	}

	return NewTileSet(f.Name, count, values)
}

func LoadTileSetFile(path string) (*TileSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadTileSet(f)
}
