package gen

import "github.com/Paralands/maze-searcher/internal/core"

// DFS carves a maze with an iterative depth-first backtracker. It keeps an
// explicit stack of lattice cells; each step either carves into a random
// unvisited neighbor of the stack top or pops exhausted cells. Backtrack pops
// advance internally without emitting, so every snapshot differs from the one
// before it.
type DFS struct {
	size    int
	rng     core.Rand
	grid    *core.Grid
	stack   []core.Cell
	started bool
}

// NewDFS returns a DFS carver for an n×n grid.
func NewDFS(n int, rng core.Rand) *DFS {
	return &DFS{size: n, rng: rng, grid: core.NewGrid(n)}
}

// Next advances the carve by one step.
func (d *DFS) Next() (*core.Grid, bool) {
	if !d.started {
		d.started = true
		start := latticeStart(d.rng, d.size)
		d.grid.Set(start.Row, start.Col, core.Path)
		d.stack = append(d.stack, start)
		return d.grid.Clone(), true
	}
	for len(d.stack) > 0 {
		cell := d.stack[len(d.stack)-1]
		neighbors := unvisitedLatticeNeighbors(d.grid, cell)
		if len(neighbors) == 0 {
			d.stack = d.stack[:len(d.stack)-1]
			continue
		}
		next := neighbors[d.rng.IntN(len(neighbors))]
		// Carve the wall slot between the two lattice cells, then the
		// cell itself. Only unvisited cells are entered, so the carved
		// region stays a spanning tree.
		d.grid.Set((cell.Row+next.Row)/2, (cell.Col+next.Col)/2, core.Path)
		d.grid.Set(next.Row, next.Col, core.Path)
		d.stack = append(d.stack, next)
		return d.grid.Clone(), true
	}
	return nil, false
}

func init() {
	core.RegisterGenerator("dfs", func(size int, rng core.Rand) core.Stepper {
		return NewDFS(size, rng)
	})
}
