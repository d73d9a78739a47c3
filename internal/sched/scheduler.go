// Package sched contains the cooperative step scheduler. One logical tick
// runs at most one queued task; an engine step re-enqueues its session as a
// continuation, gated by a timing policy, so algorithm progress interleaves
// with input handling and rendering without ever blocking.
package sched

import (
	"fmt"

	"github.com/Paralands/maze-searcher/internal/core"
)

// Mode selects how the gate decides when the next engine step may fire.
type Mode uint8

const (
	// ModeImmediate allows a step on every tick.
	ModeImmediate Mode = iota
	// ModeFixedDelay allows a step once DelayMS has elapsed since the last.
	ModeFixedDelay
	// ModeManual allows one step per key-press edge; holding the key past
	// HoldThresholdMS switches to fixed-delay auto-stepping until release.
	ModeManual
)

// DefaultDelayMS is the stock per-step delay.
const DefaultDelayMS = 25

// DefaultHoldThresholdMS is how long the step key must be held before manual
// stepping turns into automatic stepping.
const DefaultHoldThresholdMS = 1000

// Policy is the timing rule governing a session's visible stepping rate.
type Policy struct {
	Mode            Mode
	DelayMS         int64
	HoldThresholdMS int64
}

// Immediate returns a policy that steps on every tick.
func Immediate() Policy { return Policy{Mode: ModeImmediate} }

// FixedDelay returns a policy that steps every delayMS milliseconds.
func FixedDelay(delayMS int64) Policy {
	return Policy{Mode: ModeFixedDelay, DelayMS: delayMS, HoldThresholdMS: DefaultHoldThresholdMS}
}

// Manual returns a policy that steps on key-press edges, falling back to
// delayMS auto-stepping while the key is held.
func Manual(delayMS int64) Policy {
	return Policy{Mode: ModeManual, DelayMS: delayMS, HoldThresholdMS: DefaultHoldThresholdMS}
}

// Kind distinguishes generation sessions from solving sessions.
type Kind uint8

const (
	// KindGenerate marks a maze-generation session.
	KindGenerate Kind = iota
	// KindSolve marks a maze-solving session.
	KindSolve
)

// State is the lifecycle phase of a session.
type State uint8

const (
	// StateStepping means the session is live and advancing.
	StateStepping State = iota
	// StateFinished means the engine ran to exhaustion.
	StateFinished
	// StateCancelled means the session was discarded before exhaustion.
	StateCancelled
)

// Input exposes the key signals the manual gate reads once per tick.
type Input interface {
	// StepPressed reports a discrete press edge since the previous tick.
	StepPressed() bool
	// StepHeld reports whether the step key is currently down.
	StepHeld() bool
}

// Session is the transient per-run state of one generate or solve: the engine,
// its timing bookkeeping, and a cooperative cancellation flag. A session is
// also the scheduler's task value; it re-enters the task queue as its own
// continuation until the engine is exhausted or the session is cancelled.
type Session struct {
	stepper core.Stepper
	kind    Kind
	policy  Policy

	state    State
	ready    bool
	lastStep int64

	holdSince int64
	holding   bool
	// manual latches a fixed-delay session into manual stepping after the
	// first press edge, so a viewer can take over pacing mid-run.
	manual bool
}

// Kind returns the session's kind.
func (s *Session) Kind() Kind { return s.kind }

// State returns the session's lifecycle phase.
func (s *Session) State() State { return s.state }

// Cancel discards the session. Its queued continuation becomes a no-op on the
// next pull and its engine is never resumed.
func (s *Session) Cancel() {
	if s.state == StateStepping {
		s.state = StateCancelled
	}
}

// Scheduler owns the task queue and applies engine snapshots to the live
// grid. It performs no rendering; changed cells are handed off through the
// draw queue.
type Scheduler struct {
	grid  *core.Grid
	queue *Queue
	clock core.Clock
	input Input

	tasks  []*Session
	active *Session
}

// New constructs a scheduler over the given grid and draw queue. input may be
// nil for hosts without interactive stepping.
func New(grid *core.Grid, queue *Queue, clock core.Clock, input Input) *Scheduler {
	return &Scheduler{grid: grid, queue: queue, clock: clock, input: input}
}

// Start cancels any active session, drains the task queue, and enqueues a new
// session for the given engine. The first step fires on the next tick.
func (s *Scheduler) Start(stepper core.Stepper, kind Kind, policy Policy) *Session {
	s.CancelActive()
	s.tasks = s.tasks[:0]
	sess := &Session{
		stepper:  stepper,
		kind:     kind,
		policy:   policy,
		ready:    true,
		lastStep: s.clock.NowMillis(),
	}
	s.active = sess
	s.tasks = append(s.tasks, sess)
	return sess
}

// CancelActive cancels the running session, if any.
func (s *Scheduler) CancelActive() {
	if s.active != nil {
		s.active.Cancel()
		s.active = nil
	}
}

// Active returns the running session, or nil.
func (s *Scheduler) Active() *Session { return s.active }

// Running reports whether a session of the given kind is live.
func (s *Scheduler) Running(kind Kind) bool {
	return s.active != nil && s.active.kind == kind && s.active.state == StateStepping
}

// Tick pulls and runs at most one task, then returns control to the caller.
// An unexpected engine fault cancels the session and is returned as the
// single diagnostic; the grid is never left with a partial step applied.
func (s *Scheduler) Tick() error {
	if len(s.tasks) == 0 {
		return nil
	}
	sess := s.tasks[0]
	s.tasks = s.tasks[1:]
	if sess.state != StateStepping {
		return nil
	}

	s.gate(sess)

	if sess.ready {
		snap, done, err := s.step(sess)
		if err != nil {
			sess.Cancel()
			if s.active == sess {
				s.active = nil
			}
			return err
		}
		if done {
			sess.state = StateFinished
			if s.active == sess {
				s.active = nil
			}
			return nil
		}
		s.apply(snap)
		sess.ready = false
		sess.lastStep = s.clock.NowMillis()
	}

	s.tasks = append(s.tasks, sess)
	return nil
}

// step pulls one snapshot from the engine, converting a panic into an error.
func (s *Scheduler) step(sess *Session) (snap *core.Grid, done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			snap, done = nil, false
			err = fmt.Errorf("engine step failed: %v", r)
		}
	}()
	snap, ok := sess.stepper.Next()
	if !ok {
		return nil, true, nil
	}
	if snap.N != s.grid.N {
		return nil, false, fmt.Errorf("engine snapshot size %d does not match grid size %d", snap.N, s.grid.N)
	}
	return snap, false, nil
}

// apply diffs the snapshot against the live grid, updates the grid, and
// pushes one coalesced batch holding only the changed cells.
func (s *Scheduler) apply(snap *core.Grid) {
	live := s.grid.Cells()
	next := snap.Cells()
	var batch []core.DrawCommand
	for i, v := range next {
		if live[i] == v {
			continue
		}
		batch = append(batch, core.DrawCommand{Row: i / s.grid.N, Col: i % s.grid.N, State: v})
	}
	for _, cmd := range batch {
		s.grid.Set(cmd.Row, cmd.Col, cmd.State)
	}
	s.queue.Push(batch)
}

// gate re-arms the session according to its timing policy. It runs once per
// tick so press edges are observed even while a delay is pending.
func (s *Scheduler) gate(sess *Session) {
	if sess.ready {
		return
	}
	now := s.clock.NowMillis()
	switch {
	case sess.policy.Mode == ModeImmediate:
		sess.ready = true
	case sess.policy.Mode == ModeManual || sess.manual:
		s.manualGate(sess, now)
	default:
		if s.input != nil && s.input.StepPressed() {
			// First press during an auto run hands pacing to the key.
			sess.manual = true
			sess.ready = true
			return
		}
		if now-sess.lastStep >= sess.policy.DelayMS {
			sess.ready = true
		}
	}
}

func (s *Scheduler) manualGate(sess *Session, now int64) {
	if s.input == nil {
		return
	}
	if s.input.StepHeld() {
		if !sess.holding {
			sess.holding = true
			sess.holdSince = now
		}
		if now-sess.holdSince >= sess.policy.HoldThresholdMS {
			if now-sess.lastStep >= sess.policy.DelayMS {
				sess.ready = true
			}
			return
		}
	} else {
		sess.holding = false
	}
	if s.input.StepPressed() {
		sess.ready = true
	}
}
