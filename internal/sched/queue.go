package sched

import (
	"sync"

	"github.com/Paralands/maze-searcher/internal/core"
)

// Queue is a FIFO of draw-command batches. The scheduler pushes one batch per
// engine step and a renderer drains one batch per frame. Hand-off is atomic at
// batch granularity: a consumer sees a whole batch or nothing, in push order.
// The mutex keeps the contract intact if a renderer ever runs on its own
// goroutine, even though the stock hosts are single-threaded.
type Queue struct {
	mu      sync.Mutex
	batches [][]core.DrawCommand
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends one batch. Empty batches are dropped.
func (q *Queue) Push(batch []core.DrawCommand) {
	if len(batch) == 0 {
		return
	}
	q.mu.Lock()
	q.batches = append(q.batches, batch)
	q.mu.Unlock()
}

// Drain removes and returns the oldest batch, or nil when the queue is empty.
func (q *Queue) Drain() []core.DrawCommand {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.batches) == 0 {
		return nil
	}
	batch := q.batches[0]
	q.batches = q.batches[1:]
	return batch
}

// Len reports the number of pending batches.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.batches)
}
