package controller

import (
	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/rules"
)

// DefaultTickInterval is used when a non-positive interval is requested
const DefaultTickInterval = 0.5

// Controller owns the current board and advances it one generation each time
// the accumulated elapsed time reaches the tick interval
type Controller struct {
	board       *model.Board
	rule        rules.Rule
	interval    float64
	accumulator float64
	generation  int

	workers int
	pool    *model.BoardPool
}

// New constructs a Controller for board that ticks every interval seconds
func New(board *model.Board, interval float64) *Controller {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Controller{
		board:    board,
		rule:     rules.Conway,
		interval: interval,
		workers:  1,
	}
}

// UseRule replaces the rule applied on each generation
func (c *Controller) UseRule(rule rules.Rule) {
	c.rule = rule
}

// UseWorkers spreads each generation over n goroutines; n <= 1 keeps it sequential
func (c *Controller) UseWorkers(n int) {
	c.workers = max(1, n)
}

// UsePool makes the controller draw new boards from pool and return replaced
// ones to it. Boards obtained from Board must not be kept across an Update.
func (c *Controller) UsePool(pool *model.BoardPool) {
	c.pool = pool
}

// Update adds elapsedSeconds to the accumulator. Once the accumulator reaches
// the tick interval exactly one generation is computed and the interval is
// subtracted, so surplus time carries into the next call. It reports whether
// a generation was computed.
func (c *Controller) Update(elapsedSeconds float64) bool {
	c.accumulator += max(0, elapsedSeconds)
	if c.accumulator < c.interval {
		return false
	}
	c.accumulator -= c.interval
	c.Step()
	return true
}

// Step advances the board by one generation without touching the accumulator
func (c *Controller) Step() {
	next := c.board.NextGeneration(c.rule, c.workers, c.pool)
	model.BoardToPool(c.board, c.pool)
	c.board = next
	c.generation++
}

// Reset installs a new board, clearing the accumulator and generation count.
// Passing the current board keeps it and only clears the counters.
func (c *Controller) Reset(board *model.Board) {
	if board != c.board {
		model.BoardToPool(c.board, c.pool)
	}
	c.board = board
	c.accumulator = 0
	c.generation = 0
}

// Board returns the current generation for reading
func (c *Controller) Board() *model.Board {
	return c.board
}

// Generation returns the number of generations computed since the last reset
func (c *Controller) Generation() int {
	return c.generation
}

// Accumulated returns the elapsed time not yet consumed by a generation
func (c *Controller) Accumulated() float64 {
	return c.accumulator
}

// Interval returns the tick interval in seconds
func (c *Controller) Interval() float64 {
	return c.interval
}
