package gen

import "github.com/Paralands/maze-searcher/internal/core"

type frontierEdge struct {
	cell, parent core.Cell
}

// Prim grows a maze from a random seed cell by repeatedly picking a uniform
// random entry from the frontier of candidate cells. A snapshot is emitted on
// every frontier pop, including pops whose candidate was already claimed, so
// stepping cadence stays uniform with the other engines.
type Prim struct {
	size     int
	rng      core.Rand
	grid     *core.Grid
	frontier []frontierEdge
	started  bool
}

// NewPrim returns a Prim generator for an n×n grid.
func NewPrim(n int, rng core.Rand) *Prim {
	return &Prim{size: n, rng: rng, grid: core.NewGrid(n)}
}

// Next advances the generation by one frontier pop.
func (p *Prim) Next() (*core.Grid, bool) {
	if !p.started {
		p.started = true
		start := latticeStart(p.rng, p.size)
		p.grid.Set(start.Row, start.Col, core.Path)
		p.push(start)
		return p.grid.Clone(), true
	}
	if len(p.frontier) == 0 {
		return nil, false
	}
	i := p.rng.IntN(len(p.frontier))
	e := p.frontier[i]
	p.frontier[i] = p.frontier[len(p.frontier)-1]
	p.frontier = p.frontier[:len(p.frontier)-1]

	if p.grid.At(e.cell.Row, e.cell.Col) == core.Wall {
		p.grid.Set(e.cell.Row, e.cell.Col, core.Path)
		p.grid.Set((e.cell.Row+e.parent.Row)/2, (e.cell.Col+e.parent.Col)/2, core.Path)
		p.push(e.cell)
	}
	return p.grid.Clone(), true
}

// push queues every still-unvisited lattice neighbor of c with c as parent.
func (p *Prim) push(c core.Cell) {
	for _, nb := range unvisitedLatticeNeighbors(p.grid, c) {
		p.frontier = append(p.frontier, frontierEdge{cell: nb, parent: c})
	}
}

func init() {
	core.RegisterGenerator("prim", func(size int, rng core.Rand) core.Stepper {
		return NewPrim(size, rng)
	})
}
