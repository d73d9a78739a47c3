// Package gen implements the maze generator engines. Each engine is a
// resumable state machine: one call to Next performs one visible unit of work
// and returns a snapshot of the working grid, so a scheduler can interleave
// generation with input handling and rendering.
//
// Generators operate on a half-resolution lattice: odd-indexed cells are the
// traversable rooms, even-indexed cells are the wall slots between them.
package gen

import "github.com/Paralands/maze-searcher/internal/core"

// Lattice moves jump two cells to skip over the intervening wall slot.
var latticeDirs = [4]core.Cell{{Row: 2}, {Row: -2}, {Col: 2}, {Col: -2}}

// oddIndex returns a random odd index in [1, n-1).
func oddIndex(rng core.Rand, n int) int {
	return 2*rng.IntN(n/2) + 1
}

// latticeStart picks a random lattice cell to seed a generator.
func latticeStart(rng core.Rand, n int) core.Cell {
	return core.Cell{Row: oddIndex(rng, n), Col: oddIndex(rng, n)}
}

// unvisitedLatticeNeighbors lists the lattice neighbors of c that are still
// walls, in the fixed direction order. The interior bound excludes index 0 so
// a one-cell wall border survives on the low edges.
func unvisitedLatticeNeighbors(g *core.Grid, c core.Cell) []core.Cell {
	var out []core.Cell
	for _, d := range latticeDirs {
		nr, nc := c.Row+d.Row, c.Col+d.Col
		if nr > 0 && nr < g.N && nc > 0 && nc < g.N && g.At(nr, nc) == core.Wall {
			out = append(out, core.Cell{Row: nr, Col: nc})
		}
	}
	return out
}
