package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles discarded generations so a running simulation alternates
// between a small set of buffers instead of allocating a grid per step
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() any {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board with the given dimensions
func (p *BoardPool) Get(width, height int) *Board {
	b := p.pool.Get().(*Board)
	b.reset(width, height)
	return b
}

// Put hands a board back to the pool. The caller must not use it afterwards.
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
