package gen

import "github.com/Paralands/maze-searcher/internal/core"

// Axis moves on the full-resolution grid.
var walkDirs = [4]core.Cell{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// RandomWalk carves corridors with a self-avoiding random walk. Candidate
// moves are unvisited axis neighbors whose own carved-neighbor count stays
// under a threshold, which keeps corridors one cell thin; the threshold is
// relaxed from 1 to 2 to 3 only when no stricter candidate exists. The result
// is a possibly braided corridor network rather than a spanning tree, and the
// carved region (not the whole grid) is connected.
type RandomWalk struct {
	size    int
	rng     core.Rand
	grid    *core.Grid
	stack   []core.Cell
	started bool
}

// NewRandomWalk returns a random-walk generator for an n×n grid.
func NewRandomWalk(n int, rng core.Rand) *RandomWalk {
	return &RandomWalk{size: n, rng: rng, grid: core.NewGrid(n)}
}

// Next advances the walk by one carve. Backtrack pops are worked through
// internally so every snapshot shows a new corridor cell.
func (w *RandomWalk) Next() (*core.Grid, bool) {
	if !w.started {
		w.started = true
		start := core.Cell{Row: w.rng.IntN(w.size), Col: w.rng.IntN(w.size)}
		w.grid.Set(start.Row, start.Col, core.Path)
		w.stack = append(w.stack, start)
		return w.grid.Clone(), true
	}
	for len(w.stack) > 0 {
		cur := w.stack[len(w.stack)-1]
		cands := w.candidates(cur)
		if len(cands) == 0 {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		next := cands[w.rng.IntN(len(cands))]
		w.grid.Set(next.Row, next.Col, core.Path)
		w.stack = append(w.stack, next)
		return w.grid.Clone(), true
	}
	return nil, false
}

// candidates lists the admissible moves from c at the strictest threshold
// that yields any.
func (w *RandomWalk) candidates(c core.Cell) []core.Cell {
	for threshold := 1; threshold <= 3; threshold++ {
		var out []core.Cell
		for _, d := range walkDirs {
			nr, nc := c.Row+d.Row, c.Col+d.Col
			if !w.grid.In(nr, nc) || w.grid.At(nr, nc) != core.Wall {
				continue
			}
			if w.carvedNeighbors(nr, nc) <= threshold {
				out = append(out, core.Cell{Row: nr, Col: nc})
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func (w *RandomWalk) carvedNeighbors(row, col int) int {
	n := 0
	for _, d := range walkDirs {
		nr, nc := row+d.Row, col+d.Col
		if w.grid.In(nr, nc) && w.grid.At(nr, nc) != core.Wall {
			n++
		}
	}
	return n
}

func init() {
	core.RegisterGenerator("random", func(size int, rng core.Rand) core.Stepper {
		return NewRandomWalk(size, rng)
	})
}
