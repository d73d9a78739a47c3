package sched

import (
	"strings"
	"testing"

	"github.com/Paralands/maze-searcher/internal/core"
)

// scriptInput is a programmable key source for exercising the gates.
type scriptInput struct {
	pressed bool
	held    bool
}

func (i *scriptInput) StepPressed() bool { return i.pressed }
func (i *scriptInput) StepHeld() bool    { return i.held }

// countStepper carves one cell along the top row per step, then finishes.
type countStepper struct {
	n     int
	steps int
	done  int
}

func (c *countStepper) Next() (*core.Grid, bool) {
	if c.done >= c.steps {
		return nil, false
	}
	c.done++
	g := core.NewGrid(c.n)
	for i := 0; i < c.done; i++ {
		g.Set(0, i, core.Path)
	}
	return g, true
}

// panicStepper blows up on its first step.
type panicStepper struct{}

func (panicStepper) Next() (*core.Grid, bool) { panic("index out of range") }

// wrongSizeStepper yields a snapshot smaller than the live grid.
type wrongSizeStepper struct{}

func (wrongSizeStepper) Next() (*core.Grid, bool) { return core.NewGrid(3), true }

func newTestScheduler(input Input) (*Scheduler, *Queue, *core.ManualClock, *core.Grid) {
	grid := core.NewGrid(5)
	queue := NewQueue()
	clock := core.NewManualClock()
	return New(grid, queue, clock, input), queue, clock, grid
}

func TestImmediateStepsEveryTick(t *testing.T) {
	s, queue, _, _ := newTestScheduler(nil)
	sess := s.Start(&countStepper{n: 5, steps: 3}, KindGenerate, Immediate())
	for i := 0; i < 3; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if queue.Len() != 1 {
			t.Fatalf("tick %d produced %d batches, want 1", i, queue.Len())
		}
		queue.Drain()
	}
	if err := s.Tick(); err != nil {
		t.Fatalf("final tick: %v", err)
	}
	if sess.State() != StateFinished {
		t.Fatalf("session state %d, want finished", sess.State())
	}
	if s.Active() != nil {
		t.Fatal("finished session still active")
	}
	if queue.Len() != 0 {
		t.Fatal("exhaustion tick pushed a batch")
	}
}

func TestFixedDelayGate(t *testing.T) {
	s, queue, clock, _ := newTestScheduler(nil)
	s.Start(&countStepper{n: 5, steps: 10}, KindGenerate, FixedDelay(50))

	// The first step is armed by Start and fires immediately.
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatalf("first tick produced %d batches, want 1", queue.Len())
	}
	queue.Drain()

	clock.Advance(49)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 0 {
		t.Fatal("stepped 49ms after the last step")
	}

	clock.Advance(1)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("did not step once 50ms had elapsed")
	}
}

func TestManualPressEdges(t *testing.T) {
	input := &scriptInput{}
	s, queue, _, _ := newTestScheduler(input)
	s.Start(&countStepper{n: 5, steps: 10}, KindGenerate, Manual(25))

	// Start arms the first step; after that only press edges advance.
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	queue.Drain()

	for i := 0; i < 5; i++ {
		if err := s.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if queue.Len() != 0 {
		t.Fatal("manual session stepped without a press")
	}

	input.pressed = true
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("press edge did not trigger a step")
	}
}

func TestManualHoldAutoSteps(t *testing.T) {
	input := &scriptInput{}
	s, queue, clock, _ := newTestScheduler(input)
	s.Start(&countStepper{n: 5, steps: 100}, KindGenerate, Manual(25))

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	queue.Drain()

	// Hold the key; before the threshold elapses only the press edge counts.
	input.held = true
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(999)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 0 {
		t.Fatal("stepped before the hold threshold")
	}

	// Past the threshold the session auto-steps at the delay pace.
	clock.Advance(1)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("did not auto-step once the hold threshold elapsed")
	}
	queue.Drain()

	clock.Advance(25)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("held auto-stepping did not honor the delay pace")
	}
	queue.Drain()

	// Releasing the key stops auto-stepping.
	input.held = false
	clock.Advance(100)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 0 {
		t.Fatal("kept auto-stepping after release")
	}
}

// TestFixedDelayLatchesToManual presses the step key during a fixed-delay run
// and expects the session to switch to manual pacing for the rest of its life.
func TestFixedDelayLatchesToManual(t *testing.T) {
	input := &scriptInput{}
	s, queue, clock, _ := newTestScheduler(input)
	s.Start(&countStepper{n: 5, steps: 100}, KindGenerate, FixedDelay(50))

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	queue.Drain()

	input.pressed = true
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("press during fixed-delay run did not step")
	}
	queue.Drain()

	// Time alone no longer advances the latched session.
	input.pressed = false
	clock.Advance(500)
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 0 {
		t.Fatal("latched session stepped on elapsed time")
	}

	input.pressed = true
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if queue.Len() != 1 {
		t.Fatal("latched session ignored a press edge")
	}
}

func TestStartCancelsActiveSession(t *testing.T) {
	s, queue, _, _ := newTestScheduler(nil)
	first := s.Start(&countStepper{n: 5, steps: 100}, KindGenerate, Immediate())
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	queue.Drain()

	second := s.Start(&countStepper{n: 5, steps: 2}, KindSolve, Immediate())
	if first.State() != StateCancelled {
		t.Fatalf("first session state %d, want cancelled", first.State())
	}
	if s.Active() != second {
		t.Fatal("second session is not active")
	}
	if !s.Running(KindSolve) || s.Running(KindGenerate) {
		t.Fatal("running kind does not reflect the new session")
	}

	// Ticks only advance the replacement.
	for i := 0; i < 5; i++ {
		if err := s.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if second.State() != StateFinished {
		t.Fatalf("second session state %d, want finished", second.State())
	}
}

// TestApplyCoalescesDiff checks that one engine step yields exactly one batch
// holding only the changed cells, and that the grid matches the snapshot after.
func TestApplyCoalescesDiff(t *testing.T) {
	s, queue, _, grid := newTestScheduler(nil)
	s.Start(&countStepper{n: 5, steps: 2}, KindGenerate, Immediate())

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	batch := queue.Drain()
	if len(batch) != 1 {
		t.Fatalf("first step batch has %d commands, want 1", len(batch))
	}
	want := core.DrawCommand{Row: 0, Col: 0, State: core.Path}
	if batch[0] != want {
		t.Fatalf("first command %v, want %v", batch[0], want)
	}
	if grid.At(0, 0) != core.Path {
		t.Fatal("grid not updated alongside the batch")
	}

	// The second snapshot repeats cell (0,0); only (0,1) differs.
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	batch = queue.Drain()
	if len(batch) != 1 || batch[0].Col != 1 {
		t.Fatalf("second step batch %v, want only cell (0,1)", batch)
	}
}

func TestPanickingEngineCancelsSession(t *testing.T) {
	s, queue, _, grid := newTestScheduler(nil)
	before := grid.Clone()
	sess := s.Start(panicStepper{}, KindGenerate, Immediate())

	err := s.Tick()
	if err == nil {
		t.Fatal("tick swallowed the engine panic")
	}
	if !strings.Contains(err.Error(), "engine step failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.State() != StateCancelled {
		t.Fatalf("session state %d, want cancelled", sess.State())
	}
	if s.Active() != nil {
		t.Fatal("failed session still active")
	}
	if queue.Len() != 0 {
		t.Fatal("failed step pushed a batch")
	}
	for i, v := range grid.Cells() {
		if v != before.Cells()[i] {
			t.Fatal("failed step mutated the grid")
		}
	}

	// The scheduler keeps ticking afterwards.
	if err := s.Tick(); err != nil {
		t.Fatalf("tick after failure: %v", err)
	}
}

func TestSnapshotSizeMismatch(t *testing.T) {
	s, _, _, _ := newTestScheduler(nil)
	sess := s.Start(wrongSizeStepper{}, KindGenerate, Immediate())
	err := s.Tick()
	if err == nil {
		t.Fatal("size mismatch not reported")
	}
	if sess.State() != StateCancelled {
		t.Fatalf("session state %d, want cancelled", sess.State())
	}
}

func TestCancelledSessionIsDropped(t *testing.T) {
	s, queue, _, _ := newTestScheduler(nil)
	s.Start(&countStepper{n: 5, steps: 100}, KindGenerate, Immediate())
	s.CancelActive()
	for i := 0; i < 3; i++ {
		if err := s.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if queue.Len() != 0 {
		t.Fatal("cancelled session kept stepping")
	}
}
