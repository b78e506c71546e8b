package model

// Cell is a single grid position. Col and Row always match the cell's slot in
// the owning Board, so renderers can draw straight from an iteration.
type Cell struct {
	Alive bool
	Col   int
	Row   int
}
