package model

import "slices"

// DefaultCycleDepth catches still lifes and oscillators up to period 3
const DefaultCycleDepth = 3

// CycleDetector remembers the hashes of the most recent generations to spot a
// simulation that has settled into a still life or a short oscillation
type CycleDetector struct {
	depth   int
	history []string
}

func NewCycleDetector(depth int) *CycleDetector {
	if depth <= 0 {
		depth = DefaultCycleDepth
	}
	return &CycleDetector{depth: depth}
}

// Observe records b and reports whether it repeats one of the remembered generations
func (d *CycleDetector) Observe(b *Board) bool {
	hash := b.Hash()
	stagnant := slices.Contains(d.history, hash)

	d.history = append(d.history, hash)
	if len(d.history) > d.depth {
		d.history = d.history[len(d.history)-d.depth:]
	}
	return stagnant
}

// Reset forgets every remembered generation
func (d *CycleDetector) Reset() {
	d.history = nil
}
