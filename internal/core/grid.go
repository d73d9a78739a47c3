package core

// CellState is the value stored in one grid cell.
type CellState uint8

// Cell states. The numeric values double as palette indices for renderers.
const (
	Wall CellState = iota
	Path
	Visited
	Start
	Goal
	Solution
)

// Cell addresses one grid position as (row, col).
type Cell struct {
	Row, Col int
}

// DrawCommand sets a single cell to a target render state. Commands are
// emitted only for cells whose value actually changed.
type DrawCommand struct {
	Row, Col int
	State    CellState
}

// Grid stores an N×N matrix of cell states in row-major order. Engines work
// on private copies and yield snapshots; only the owning facade mutates the
// live grid.
type Grid struct {
	N    int
	data []CellState
}

// NewGrid allocates an all-wall grid with the given side length.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{N: n, data: make([]CellState, n*n)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.N + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// At returns the state of cell (row, col).
func (g *Grid) At(row, col int) CellState { return g.data[row*g.N+col] }

// Set writes the state of cell (row, col).
func (g *Grid) Set(row, col int, s CellState) { g.data[row*g.N+col] = s }

// Fill sets every cell to the given state.
func (g *Grid) Fill(s CellState) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Clone returns an independent copy of the grid. Engines use clones as
// immutable snapshots.
func (g *Grid) Clone() *Grid {
	data := make([]CellState, len(g.data))
	copy(data, g.data)
	return &Grid{N: g.N, data: data}
}

// Find returns the first cell holding the given state, scanning row-major.
func (g *Grid) Find(s CellState) (Cell, bool) {
	for i, v := range g.data {
		if v == s {
			return Cell{Row: i / g.N, Col: i % g.N}, true
		}
	}
	return Cell{}, false
}
