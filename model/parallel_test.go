package model

import (
	"testing"

	"github.com/sheikhrachel/lifestyle/rules"
)

func TestNextParallelMatchesSequential(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 2}, {17, 5}, {40, 33}} {
		b := NewBoard(size[0], size[1], testRand(uint64(size[0]*size[1])))
		want := b.Next()
		for _, workers := range []int{0, 1, 2, 3, 8, 64} {
			got := b.NextParallel(rules.Conway, workers, nil)
			if !got.Equal(want) {
				t.Fatalf("%dx%d with %d workers differs from the sequential step", size[0], size[1], workers)
			}
		}
	}
}

func TestNextGenerationWithPool(t *testing.T) {
	pool := NewBoardPool()
	b := NewBoard(20, 20, testRand(3))
	expected := b.Next().Next().Next()

	for range 3 {
		next := b.NextGeneration(rules.Conway, 4, pool)
		BoardToPool(b, pool)
		b = next
	}
	if !b.Equal(expected) {
		t.Fatal("pooled generations diverged from fresh allocations")
	}
}

func TestBoardPoolResets(t *testing.T) {
	pool := NewBoardPool()
	b := boardFromRows("OOO", "OOO")
	pool.Put(b)

	got := pool.Get(4, 2)
	if got.Width() != 4 || got.Height() != 2 || got.Population() != 0 {
		t.Fatalf("pooled board is %dx%d with %d live cells", got.Width(), got.Height(), got.Population())
	}
	for c := range got.Cells() {
		if cell, _ := got.Cell(c.Col, c.Row); cell != c {
			t.Fatalf("pooled board has stale coordinates at %+v", c)
		}
	}
	BoardToPool(nil, pool)
	BoardToPool(got, nil)
}
