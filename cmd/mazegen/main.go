// Headless maze generator. It drives the same facade and scheduler as the
// interactive viewers, runs the named engine to completion, optionally solves
// the result, and prints the maze as ASCII.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Paralands/maze-searcher/internal/core"
	_ "github.com/Paralands/maze-searcher/internal/gen"
	"github.com/Paralands/maze-searcher/internal/maze"
	"github.com/Paralands/maze-searcher/internal/sched"
	_ "github.com/Paralands/maze-searcher/internal/solve"
)

func main() {
	size := flag.Int("size", 35, "maze side length in cells")
	seed := flag.Int64("seed", 42, "seed for the maze generators")
	algorithm := flag.String("algorithm", "dfs", "generator to run (see -list)")
	solveMaze := flag.Bool("solve", false, "place corner markers and print the shortest path length")
	list := flag.Bool("list", false, "list available generators and exit")
	flag.Parse()

	if *list {
		names := make([]string, 0, len(core.Generators()))
		for name := range core.Generators() {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	m, err := maze.New(maze.Config{Size: *size, Seed: *seed})
	if err != nil {
		log.Fatalf("maze: %v", err)
	}
	if _, err := m.Generate(*algorithm, sched.Immediate()); err != nil {
		log.Fatalf("maze: %v", err)
	}
	steps := 0
	for m.Generating() {
		if err := m.Tick(); err != nil {
			log.Fatalf("maze: %v", err)
		}
		steps++
	}
	fmt.Printf("%s: %d steps on a %dx%d grid\n", *algorithm, steps, *size, *size)

	var path []core.Cell
	if *solveMaze {
		placeMarkers(m)
		path, err = m.Solution("astar")
		if err != nil {
			log.Fatalf("maze: %v", err)
		}
		if path == nil {
			fmt.Println("unsolvable: start and goal are disconnected")
		} else {
			fmt.Printf("shortest path: %d cells\n", len(path))
		}
	}

	printGrid(m.Grid(), path, os.Stdout)
}

// placeMarkers puts the start on the first carved cell and the goal on the
// last, scanning row-major.
func placeMarkers(m *maze.Maze) {
	grid := m.Grid()
	cells := grid.Cells()
	for i, v := range cells {
		if v == core.Path {
			m.SetStart(i/grid.N, i%grid.N)
			break
		}
	}
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i] == core.Path {
			m.SetGoal(i/grid.N, i%grid.N)
			break
		}
	}
}

func printGrid(grid *core.Grid, path []core.Cell, out *os.File) {
	onPath := make(map[core.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var b strings.Builder
	for row := 0; row < grid.N; row++ {
		for col := 0; col < grid.N; col++ {
			switch {
			case grid.At(row, col) == core.Start:
				b.WriteByte('S')
			case grid.At(row, col) == core.Goal:
				b.WriteByte('G')
			case onPath[core.Cell{Row: row, Col: col}]:
				b.WriteByte('*')
			case grid.At(row, col) == core.Wall:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(out, b.String())
}
