package controller

import (
	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/utils"
)

// NewFromConfig seeds the initial board described by cfg and wraps it in a
// Controller with the configured rule, workers and pooling. It returns the
// seed that was used so a frontend can report or reuse it.
func NewFromConfig(cfg utils.Config) (*Controller, int64, error) {
	rng, seed := utils.NewRand(cfg.Seed)
	board, err := model.Seed(cfg.Pattern, cfg.Width, cfg.Height, rng)
	if err != nil {
		return nil, seed, err
	}

	c := New(board, cfg.TickInterval)
	c.UseRule(cfg.ParsedRule())
	c.UseWorkers(cfg.Workers)
	if cfg.UseMemoryPool {
		c.UsePool(model.NewBoardPool())
	}
	return c, seed, nil
}
