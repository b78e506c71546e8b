package model

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifestyle/rules"
)

// NextParallel computes the following generation by splitting the rows into
// bands, one per worker. The result is identical to NextWithRule. When pool is
// non-nil the new board is taken from it.
func (b *Board) NextParallel(rule rules.Rule, workers int, pool *BoardPool) *Board {
	next := newBoardFrom(pool, b.width, b.height)
	if workers < 1 {
		workers = 1
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = max(1, (b.height+workers-1)/workers) // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			b.stepRows(next, rule, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(fmt.Sprintf("model: parallel step failed: %v", err))
	}

	return next
}

// NextGeneration picks the sequential or the parallel step depending on the
// worker count and draws the result from pool when one is given
func (b *Board) NextGeneration(rule rules.Rule, workers int, pool *BoardPool) *Board {
	if workers > 1 {
		return b.NextParallel(rule, workers, pool)
	}
	next := newBoardFrom(pool, b.width, b.height)
	b.NextInto(next, rule)
	return next
}

func newBoardFrom(pool *BoardPool, width, height int) *Board {
	if pool != nil {
		return pool.Get(width, height)
	}
	return NewEmptyBoard(width, height)
}
