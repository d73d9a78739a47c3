package solve

import (
	"testing"

	"github.com/Paralands/maze-searcher/internal/core"
	"github.com/Paralands/maze-searcher/internal/gen"
)

// gridFromRows builds a grid from an ASCII sketch where '#' is a wall and
// anything else is carved.
func gridFromRows(t *testing.T, rows []string) *core.Grid {
	t.Helper()
	g := core.NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != g.N {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), g.N)
		}
		for c, ch := range row {
			if ch != '#' {
				g.Set(r, c, core.Path)
			}
		}
	}
	return g
}

// bfsDistance is the reference shortest path length (cell count inclusive),
// or 0 if the goal is unreachable.
func bfsDistance(g *core.Grid, start, goal core.Cell) int {
	dist := map[core.Cell]int{start: 1}
	queue := []core.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range neighborDirs {
			nb := core.Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !g.In(nb.Row, nb.Col) || g.At(nb.Row, nb.Col) == core.Wall {
				continue
			}
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}
	return 0
}

func TestSolutionOnFixture(t *testing.T) {
	g := gridFromRows(t, []string{
		"#######",
		"#.#...#",
		"#.#.#.#",
		"#.#.#.#",
		"#.#.#.#",
		"#...#.#",
		"#######",
	})
	start := core.Cell{Row: 1, Col: 1}
	goal := core.Cell{Row: 5, Col: 5}

	path := Solution(g, start, goal)
	if path == nil {
		t.Fatal("no path found on connected fixture")
	}
	if len(path) != 17 {
		t.Fatalf("path has %d cells, want 17", len(path))
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path runs %v..%v, want %v..%v", path[0], path[len(path)-1], start, goal)
	}
	for i := 1; i < len(path); i++ {
		if manhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("path step %d jumps from %v to %v", i, path[i-1], path[i])
		}
		if g.At(path[i].Row, path[i].Col) == core.Wall {
			t.Fatalf("path step %d enters wall at %v", i, path[i])
		}
	}
}

// TestSolutionMatchesBFS cross-checks A* path lengths against breadth-first
// search on generated mazes.
func TestSolutionMatchesBFS(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		var final *core.Grid
		s := gen.NewDFS(25, core.NewRNG(seed))
		for {
			snap, ok := s.Next()
			if !ok {
				break
			}
			final = snap
		}
		start := core.Cell{Row: 1, Col: 1}
		goal := core.Cell{Row: 23, Col: 23}
		path := Solution(final, start, goal)
		want := bfsDistance(final, start, goal)
		if want == 0 {
			t.Fatalf("seed %d: generated maze is disconnected", seed)
		}
		if len(path) != want {
			t.Fatalf("seed %d: path has %d cells, BFS says %d", seed, len(path), want)
		}
	}
}

func TestSolutionUnreachable(t *testing.T) {
	g := gridFromRows(t, []string{
		"#####",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#####",
	})
	if path := Solution(g, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 1, Col: 3}); path != nil {
		t.Fatalf("found a path across a solid wall: %v", path)
	}
}

// TestStepperMarksSolution drives the animated stepper to completion and
// checks the marked cells agree with the non-animated path.
func TestStepperMarksSolution(t *testing.T) {
	rows := []string{
		"#######",
		"#.#...#",
		"#.#.#.#",
		"#.#.#.#",
		"#.#.#.#",
		"#...#.#",
		"#######",
	}
	g := gridFromRows(t, rows)
	start := core.Cell{Row: 1, Col: 1}
	goal := core.Cell{Row: 5, Col: 5}
	g.Set(start.Row, start.Col, core.Start)
	g.Set(goal.Row, goal.Col, core.Goal)

	a := New(g, start, goal)
	var final *core.Grid
	for i := 0; ; i++ {
		if i > 10_000 {
			t.Fatal("stepper did not terminate")
		}
		snap, ok := a.Next()
		if !ok {
			break
		}
		final = snap
	}
	if final == nil {
		t.Fatal("stepper produced no snapshots")
	}

	path := Solution(gridFromRows(t, rows), start, goal)
	marked := map[core.Cell]bool{}
	for r := 0; r < final.N; r++ {
		for c := 0; c < final.N; c++ {
			if final.At(r, c) == core.Solution {
				marked[core.Cell{Row: r, Col: c}] = true
			}
		}
	}
	// Endpoints keep their markers, every interior path cell is marked.
	if final.At(start.Row, start.Col) != core.Start {
		t.Fatal("start marker overwritten")
	}
	if final.At(goal.Row, goal.Col) != core.Goal {
		t.Fatal("goal marker overwritten")
	}
	for _, cell := range path[1 : len(path)-1] {
		if !marked[cell] {
			t.Fatalf("path cell %v not marked as solution", cell)
		}
	}
	if len(marked) != len(path)-2 {
		t.Fatalf("%d cells marked, want %d", len(marked), len(path)-2)
	}
}

// TestStepperUnreachable expects the animated search to end without tracing
// when the goal sits in a sealed pocket.
func TestStepperUnreachable(t *testing.T) {
	g := gridFromRows(t, []string{
		"#####",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#####",
	})
	a := New(g, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 1, Col: 3})
	for i := 0; ; i++ {
		if i > 1000 {
			t.Fatal("stepper did not terminate")
		}
		snap, ok := a.Next()
		if !ok {
			break
		}
		for r := 0; r < snap.N; r++ {
			for c := 0; c < snap.N; c++ {
				if snap.At(r, c) == core.Solution {
					t.Fatal("solution cell marked with unreachable goal")
				}
			}
		}
	}
}
