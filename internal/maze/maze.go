// Package maze is the facade owning the live grid. It wires named engines to
// the step scheduler, enforces the grid invariants (size bounds, unique start
// and goal markers, mutual exclusion of generation and solving) and exposes
// the draw-command stream renderers consume.
package maze

import (
	"errors"
	"fmt"

	"github.com/Paralands/maze-searcher/internal/core"
	"github.com/Paralands/maze-searcher/internal/sched"
)

// Size bounds for interactive use.
const (
	MinSize = 20
	MaxSize = 100
)

var (
	// ErrSize reports a grid side length outside [MinSize, MaxSize].
	ErrSize = errors.New("maze: size out of bounds")
	// ErrCoordinate reports a cell address outside the grid.
	ErrCoordinate = errors.New("maze: coordinate out of range")
	// ErrNoStartOrGoal reports a solve request without both markers set.
	ErrNoStartOrGoal = errors.New("maze: no start or goal found")
	// ErrUnknownAlgorithm reports an engine name missing from the registry.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)

// Config parameterizes a Maze.
type Config struct {
	// Size is the grid side length.
	Size int
	// Seed initializes the random source feeding the generator engines.
	Seed int64
	// Clock gates timed stepping; nil selects the system clock.
	Clock core.Clock
	// Input feeds manual stepping; may be nil for non-interactive hosts.
	Input sched.Input
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 35, Seed: 42}
}

// Maze owns the live grid, the scheduler, and the draw queue.
type Maze struct {
	grid  *core.Grid
	rng   core.Rand
	queue *sched.Queue
	sched *sched.Scheduler

	algorithm string
}

// New validates the configuration and constructs a Maze.
func New(cfg Config) (*Maze, error) {
	if cfg.Size < MinSize || cfg.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrSize, cfg.Size, MinSize, MaxSize)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	m := &Maze{
		grid:  core.NewGrid(cfg.Size),
		rng:   core.NewRNG(cfg.Seed),
		queue: sched.NewQueue(),
	}
	m.sched = sched.New(m.grid, m.queue, clock, cfg.Input)
	return m, nil
}

// Size returns the grid side length.
func (m *Maze) Size() int { return m.grid.N }

// Grid returns the live grid. Callers outside the facade must treat it as
// read-only; all mutation goes through the scheduler or the setters below.
func (m *Maze) Grid() *core.Grid { return m.grid }

// Algorithm returns the engine name of the most recent session.
func (m *Maze) Algorithm() string { return m.algorithm }

// Generating reports whether a generation session is live.
func (m *Maze) Generating() bool { return m.sched.Running(sched.KindGenerate) }

// Solving reports whether a solving session is live.
func (m *Maze) Solving() bool { return m.sched.Running(sched.KindSolve) }

// Generate resets the grid and starts a generation session using the named
// engine. Any running session is cancelled first.
func (m *Maze) Generate(algorithm string, policy sched.Policy) (*sched.Session, error) {
	factory, ok := core.Generators()[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	m.Reset()
	m.algorithm = algorithm
	return m.sched.Start(factory(m.grid.N, m.rng), sched.KindGenerate, policy), nil
}

// Solve clears prior solving marks and starts a solving session using the
// named engine. It returns ErrNoStartOrGoal, creating no session, when either
// marker is missing.
func (m *Maze) Solve(algorithm string, policy sched.Policy) (*sched.Session, error) {
	entry, ok := core.Solvers()[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	start, goal, err := m.markers()
	if err != nil {
		return nil, err
	}
	m.sched.CancelActive()
	m.ClearSolving()
	m.algorithm = algorithm
	return m.sched.Start(entry.New(m.grid, start, goal), sched.KindSolve, policy), nil
}

// Solution runs the named solver to completion without animation and returns
// the ordered start-to-goal path inclusive, or nil when unreachable.
func (m *Maze) Solution(algorithm string) ([]core.Cell, error) {
	entry, ok := core.Solvers()[algorithm]
	if !ok || entry.Solution == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	start, goal, err := m.markers()
	if err != nil {
		return nil, err
	}
	return entry.Solution(m.grid, start, goal), nil
}

func (m *Maze) markers() (start, goal core.Cell, err error) {
	start, okS := m.grid.Find(core.Start)
	goal, okG := m.grid.Find(core.Goal)
	if !okS || !okG {
		return core.Cell{}, core.Cell{}, ErrNoStartOrGoal
	}
	return start, goal, nil
}

// Cancel stops the running session, if any, leaving the grid as-is.
func (m *Maze) Cancel() { m.sched.CancelActive() }

// Reset cancels any session and restores the all-wall grid, emitting a full
// redraw batch.
func (m *Maze) Reset() {
	m.sched.CancelActive()
	m.grid.Fill(core.Wall)
	batch := make([]core.DrawCommand, 0, m.grid.N*m.grid.N)
	for row := 0; row < m.grid.N; row++ {
		for col := 0; col < m.grid.N; col++ {
			batch = append(batch, core.DrawCommand{Row: row, Col: col, State: core.Wall})
		}
	}
	m.queue.Push(batch)
}

// ClearSolving strips Visited and Solution marks back to Path, emitting one
// batch for the changed cells.
func (m *Maze) ClearSolving() {
	var batch []core.DrawCommand
	for row := 0; row < m.grid.N; row++ {
		for col := 0; col < m.grid.N; col++ {
			if s := m.grid.At(row, col); s == core.Visited || s == core.Solution {
				m.grid.Set(row, col, core.Path)
				batch = append(batch, core.DrawCommand{Row: row, Col: col, State: core.Path})
			}
		}
	}
	m.queue.Push(batch)
}

// SetStart relocates the unique start marker, restoring any previous start
// cell to Path.
func (m *Maze) SetStart(row, col int) error {
	return m.setMarker(row, col, core.Start)
}

// SetGoal relocates the unique goal marker, restoring any previous goal cell
// to Path.
func (m *Maze) SetGoal(row, col int) error {
	return m.setMarker(row, col, core.Goal)
}

func (m *Maze) setMarker(row, col int, marker core.CellState) error {
	if !m.grid.In(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrCoordinate, row, col)
	}
	var batch []core.DrawCommand
	if prev, ok := m.grid.Find(marker); ok {
		m.grid.Set(prev.Row, prev.Col, core.Path)
		batch = append(batch, core.DrawCommand{Row: prev.Row, Col: prev.Col, State: core.Path})
	}
	m.grid.Set(row, col, marker)
	batch = append(batch, core.DrawCommand{Row: row, Col: col, State: marker})
	m.queue.Push(batch)
	return nil
}

// SetCell paints one cell, the surface behind mouse drawing and erasing.
// Start and Goal are routed through the unique-marker setters; identical
// values are a no-op.
func (m *Maze) SetCell(row, col int, s core.CellState) error {
	if !m.grid.In(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrCoordinate, row, col)
	}
	switch s {
	case core.Start:
		return m.SetStart(row, col)
	case core.Goal:
		return m.SetGoal(row, col)
	}
	if m.grid.At(row, col) == s {
		return nil
	}
	m.grid.Set(row, col, s)
	m.queue.Push([]core.DrawCommand{{Row: row, Col: col, State: s}})
	return nil
}

// Tick advances the scheduler by at most one queued task. Hosts call it once
// per loop iteration.
func (m *Maze) Tick() error { return m.sched.Tick() }

// Drain removes and returns the oldest pending draw batch, or nil. Renderers
// call it once per frame.
func (m *Maze) Drain() []core.DrawCommand { return m.queue.Drain() }
