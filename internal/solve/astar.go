// Package solve implements the maze solver engines. Like the generators,
// a solver is a resumable stepper: each Next settles one node of the search
// (or one cell of the reconstructed path) and returns a snapshot, so the
// search can be animated one cell at a time.
package solve

import (
	"container/heap"

	"github.com/Paralands/maze-searcher/internal/core"
)

var neighborDirs = [4]core.Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

const (
	modeSearch = iota
	modeTrace
	modeDone
)

// AStar runs A* over the 4-connected non-wall cells of a grid, with the
// Manhattan distance to the goal as heuristic. During the search phase each
// Next settles one new node and marks it Visited; already-closed pops are
// skipped internally. Once the goal is popped the engine switches to tracing:
// each Next walks one predecessor step from goal back to start, marking the
// cell Solution unless it carries the Start or Goal marker.
type AStar struct {
	grid        *core.Grid
	start, goal core.Cell

	open     frontier
	gScore   map[core.Cell]int
	cameFrom map[core.Cell]core.Cell
	closed   map[core.Cell]bool
	seq      int

	mode  int
	trace core.Cell
}

// New builds an A* stepper over a private copy of the grid.
func New(g *core.Grid, start, goal core.Cell) *AStar {
	a := &AStar{
		grid:     g.Clone(),
		start:    start,
		goal:     goal,
		gScore:   map[core.Cell]int{start: 0},
		cameFrom: map[core.Cell]core.Cell{},
		closed:   map[core.Cell]bool{},
	}
	heap.Init(&a.open)
	heap.Push(&a.open, &frontierItem{cell: start, g: 0, f: manhattan(start, goal), seq: a.seq})
	a.seq++
	return a
}

// Next advances the solve by one settled node or one path step.
func (a *AStar) Next() (*core.Grid, bool) {
	switch a.mode {
	case modeSearch:
		return a.searchStep()
	case modeTrace:
		return a.traceStep()
	default:
		return nil, false
	}
}

func (a *AStar) searchStep() (*core.Grid, bool) {
	for a.open.Len() > 0 {
		item := heap.Pop(&a.open).(*frontierItem)
		cur := item.cell
		if cur == a.goal {
			a.mode = modeTrace
			a.trace = a.goal
			return a.traceStep()
		}
		if a.closed[cur] {
			continue
		}
		a.closed[cur] = true
		if s := a.grid.At(cur.Row, cur.Col); s != core.Start && s != core.Goal {
			a.grid.Set(cur.Row, cur.Col, core.Visited)
		}
		a.expand(cur, item.g)
		return a.grid.Clone(), true
	}
	// Frontier exhausted before the goal: no path exists.
	a.mode = modeDone
	return nil, false
}

func (a *AStar) traceStep() (*core.Grid, bool) {
	if a.trace == a.start {
		a.mode = modeDone
		return nil, false
	}
	if s := a.grid.At(a.trace.Row, a.trace.Col); s != core.Start && s != core.Goal {
		a.grid.Set(a.trace.Row, a.trace.Col, core.Solution)
	}
	a.trace = a.cameFrom[a.trace]
	return a.grid.Clone(), true
}

func (a *AStar) expand(cur core.Cell, g int) {
	for _, d := range neighborDirs {
		nb := core.Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		if !a.grid.In(nb.Row, nb.Col) || a.grid.At(nb.Row, nb.Col) == core.Wall {
			continue
		}
		tentative := g + 1
		if prev, ok := a.gScore[nb]; ok && tentative >= prev {
			continue
		}
		a.gScore[nb] = tentative
		a.cameFrom[nb] = cur
		heap.Push(&a.open, &frontierItem{
			cell: nb,
			g:    tentative,
			f:    tentative + manhattan(nb, a.goal),
			seq:  a.seq,
		})
		a.seq++
	}
}

// Solution runs A* to completion without snapshot emission and returns the
// ordered path from start to goal inclusive, or nil if goal is unreachable.
func Solution(g *core.Grid, start, goal core.Cell) []core.Cell {
	a := New(g, start, goal)
	for {
		item, ok := a.pop()
		if !ok {
			return nil
		}
		cur := item.cell
		if cur == a.goal {
			var path []core.Cell
			for cur != a.start {
				path = append(path, cur)
				cur = a.cameFrom[cur]
			}
			path = append(path, a.start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		if a.closed[cur] {
			continue
		}
		a.closed[cur] = true
		a.expand(cur, item.g)
	}
}

func (a *AStar) pop() (*frontierItem, bool) {
	if a.open.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&a.open).(*frontierItem), true
}

func manhattan(a, b core.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	core.RegisterSolver("astar", core.SolverEntry{
		New: func(g *core.Grid, start, goal core.Cell) core.Stepper {
			return New(g, start, goal)
		},
		Solution: Solution,
	})
}
