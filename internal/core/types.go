package core

// Stepper is the contract every resumable engine implements. Each call to
// Next advances the engine by one step and returns an immutable snapshot of
// its working grid. It returns (nil, false) once the engine is exhausted; a
// finished engine is never resumed.
type Stepper interface {
	Next() (*Grid, bool)
}

// GeneratorFactory constructs a maze generator engine for an N×N grid using
// the provided random source.
type GeneratorFactory func(size int, rng Rand) Stepper

// SolverEntry bundles the two entry points of a solving algorithm: the
// animated stepper and the direct solution used by tests and headless tools.
type SolverEntry struct {
	// New builds a stepper over a copy of the grid. The returned engine
	// yields visitation snapshots and finally the reconstructed path.
	New func(g *Grid, start, goal Cell) Stepper
	// Solution runs the same algorithm without snapshot emission and
	// returns the ordered path from start to goal inclusive, or nil if the
	// goal is unreachable.
	Solution func(g *Grid, start, goal Cell) []Cell
}

var generators = map[string]GeneratorFactory{}
var solvers = map[string]SolverEntry{}

// RegisterGenerator adds a generator factory under the provided name.
func RegisterGenerator(name string, f GeneratorFactory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]GeneratorFactory {
	return generators
}

// RegisterSolver adds a solver entry under the provided name.
func RegisterSolver(name string, e SolverEntry) {
	if name == "" || e.New == nil {
		return
	}
	solvers[name] = e
}

// Solvers exposes the registry of available solver entries.
func Solvers() map[string]SolverEntry {
	return solvers
}
