package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sheikhrachel/lifestyle/rules"
)

// Board is a fixed-size bounded grid of cells. Positions outside
// [0,width) x [0,height) do not exist and count as dead neighbors.
type Board struct {
	width  int
	height int
	cells  [][]Cell // indexed [row][col]
}

// NewEmptyBoard creates a board with every cell dead
func NewEmptyBoard(width, height int) *Board {
	b := &Board{}
	b.reset(width, height)
	return b
}

// NewBoard creates a board where each cell is alive with probability 1/2,
// drawing from rng in row-major order
func NewBoard(width, height int, rng *rand.Rand) *Board {
	b := NewEmptyBoard(width, height)
	for row := range b.height {
		for col := range b.width {
			b.cells[row][col].Alive = rng.IntN(2) == 1
		}
	}
	return b
}

// reset resizes the board, clears every cell and rewrites the coordinates
func (b *Board) reset(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width = width
	b.height = height

	if len(b.cells) != height {
		b.cells = make([][]Cell, height)
	}
	for row := range b.cells {
		if len(b.cells[row]) != width {
			b.cells[row] = make([]Cell, width)
		}
		for col := range b.cells[row] {
			b.cells[row][col] = Cell{Col: col, Row: row}
		}
	}
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// Alive reports whether the cell at (col, row) is alive; off-grid positions are dead
func (b *Board) Alive(col, row int) bool {
	if !b.inBounds(col, row) {
		return false
	}
	return b.cells[row][col].Alive
}

// Cell returns the cell at (col, row) and whether that position exists
func (b *Board) Cell(col, row int) (Cell, bool) {
	if !b.inBounds(col, row) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// Set changes the state of the cell at (col, row). Off-grid positions are ignored.
func (b *Board) Set(col, row int, alive bool) {
	if b.inBounds(col, row) {
		b.cells[row][col].Alive = alive
	}
}

// Cells yields every cell of the board in row-major order without modifying it
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, row := range b.cells {
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	out := &Board{width: b.width, height: b.height, cells: make([][]Cell, b.height)}
	for row := range b.cells {
		out.cells[row] = append([]Cell(nil), b.cells[row]...)
	}
	return out
}

// Tally counts the live neighbors of (col, row). Neighbors that fall off the
// grid contribute nothing.
func (b *Board) Tally(col, row int) int {
	tally := 0
	for _, d := range neighborOffsets {
		nc, nr := col+d.Col, row+d.Row
		if b.inBounds(nc, nr) && b.cells[nr][nc].Alive {
			tally++
		}
	}
	return tally
}

// Next computes the following generation under Conway's rule. The receiver is
// not modified.
func (b *Board) Next() *Board {
	return b.NextWithRule(rules.Conway)
}

// NextWithRule computes the following generation under rule into a fresh board
func (b *Board) NextWithRule(rule rules.Rule) *Board {
	next := NewEmptyBoard(b.width, b.height)
	b.NextInto(next, rule)
	return next
}

// NextInto writes the following generation into dst, which must have the same
// dimensions as b and must not be b itself.
func (b *Board) NextInto(dst *Board, rule rules.Rule) {
	if dst == b {
		panic("model: NextInto would overwrite the generation it reads")
	}
	if dst.width != b.width || dst.height != b.height {
		panic(fmt.Sprintf("model: NextInto size mismatch %dx%d into %dx%d",
			b.width, b.height, dst.width, dst.height))
	}
	b.stepRows(dst, rule, 0, b.height)
}

// stepRows computes rows [startRow, endRow) of the next generation into dst.
// All reads come from b, all writes go to dst.
func (b *Board) stepRows(dst *Board, rule rules.Rule, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range b.width {
			cur := b.cells[row][col]
			dst.cells[row][col] = Cell{
				Alive: rule.Apply(cur.Alive, b.Tally(col, row)),
				Col:   cur.Col,
				Row:   cur.Row,
			}
		}
	}
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for c := range b.Cells() {
		if c.Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the board dimensions and cell states
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.width, b.height)
	for c := range b.Cells() {
		if c.Alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same dimensions and cell states
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
