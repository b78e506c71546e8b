package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

const (
	PatternRandom  = "random"
	PatternEmpty   = "empty"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
)

// ErrUnknownPattern is returned for a pattern name Seed does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small stamp of cells, 'O' alive and anything else dead
type Pattern []string

var (
	Glider = Pattern{
		".O.",
		"..O",
		"OOO",
	}
	Blinker = Pattern{
		"OOO",
	}
)

// Stamp copies p onto the board with its top-left corner at (col, row).
// Parts of the pattern that fall off the grid are dropped.
func (b *Board) Stamp(p Pattern, col, row int) {
	for dy, line := range p {
		for dx, ch := range line {
			b.Set(col+dx, row+dy, ch == 'O')
		}
	}
}

// Seed builds the initial board for the named pattern
func Seed(pattern string, width, height int, rng *rand.Rand) (*Board, error) {
	switch strings.ToLower(pattern) {
	case PatternRandom, "":
		return NewBoard(width, height, rng), nil
	case PatternEmpty:
		return NewEmptyBoard(width, height), nil
	case PatternGlider:
		b := NewEmptyBoard(width, height)
		b.Stamp(Glider, 1, 1)
		if width >= 20 && height >= 15 {
			b.Stamp(Glider, width-8, 5)
		}
		return b, nil
	case PatternBlinker:
		b := NewEmptyBoard(width, height)
		b.Stamp(Blinker, width/2-1, height/2)
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPattern, "[Seed] pattern: %+v", pattern)
	}
}
