package model

// Offset is a relative (column, row) step to a neighboring position
type Offset struct {
	Col, Row int
}

// neighborOffsets lists the eight positions around a cell, the cell itself excluded
var neighborOffsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborOffsets returns a copy of the neighbor offset table
func NeighborOffsets() [8]Offset {
	return neighborOffsets
}
