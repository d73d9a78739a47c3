// Terminal viewer for the maze engines, rendered with tcell. Cells are drawn
// two columns wide so they come out roughly square.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Paralands/maze-searcher/internal/core"
	_ "github.com/Paralands/maze-searcher/internal/gen"
	"github.com/Paralands/maze-searcher/internal/maze"
	"github.com/Paralands/maze-searcher/internal/render"
	"github.com/Paralands/maze-searcher/internal/sched"
	_ "github.com/Paralands/maze-searcher/internal/solve"

	"github.com/gdamore/tcell/v2"
)

// tuiInput adapts key events to the scheduler's Input contract. Terminals
// deliver no key-release events, so held-key auto-stepping is unavailable
// here; only press edges drive manual stepping. The edge is latched by the
// event handler and cleared after the scheduler has observed it.
type tuiInput struct {
	pressed bool
}

func (t *tuiInput) StepPressed() bool { return t.pressed }
func (t *tuiInput) StepHeld() bool    { return false }

type viewer struct {
	m       *maze.Maze
	painter *render.Painter
	screen  tcell.Screen
	input   *tuiInput
	policy  sched.Policy

	// pending routes the next mouse click to a marker setter; zero means
	// clicks paint walls as usual.
	pending core.CellState
}

func main() {
	size := flag.Int("size", 35, "maze side length in cells")
	seed := flag.Int64("seed", 42, "seed for the maze generators")
	delay := flag.Int64("delay", 25, "delay between algorithm steps in milliseconds")
	flag.Parse()

	input := &tuiInput{}
	m, err := maze.New(maze.Config{Size: *size, Seed: *seed, Input: input})
	if err != nil {
		log.Fatalf("maze: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	v := &viewer{
		m:       m,
		painter: render.NewPainter(*size, nil),
		screen:  screen,
		input:   input,
		policy:  sched.FixedDelay(*delay),
	}
	v.run()
	screen.Fini()
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v.redrawAll()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if err := v.m.Tick(); err != nil {
				v.status(fmt.Sprintf("error: %v", err))
			}
			v.input.pressed = false
			if batch := v.m.Drain(); batch != nil {
				v.drawBatch(batch)
			}
			v.status(v.statusLine())
			v.screen.Show()
		}
	}
}

// handleEvent processes one terminal event; it returns false to quit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.redrawAll()
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return true
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'd':
		v.generate("dfs")
	case 'k':
		v.generate("kruskal")
	case 'p':
		v.generate("prim")
	case 'l':
		v.generate("random")
	case 'y':
		if _, err := v.m.Solve("astar", v.policy); err != nil {
			v.status(fmt.Sprintf("error: %v", err))
		}
	case 'r':
		v.m.Reset()
	case 'c':
		v.m.Cancel()
	case 's':
		v.pending = core.Start
	case 'g':
		v.pending = core.Goal
	case ' ':
		v.input.pressed = true
	}
	return true
}

func (v *viewer) generate(algorithm string) {
	if _, err := v.m.Generate(algorithm, v.policy); err != nil {
		v.status(fmt.Sprintf("error: %v", err))
	}
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col := y, x/2
	if !v.m.Grid().In(row, col) {
		return
	}
	switch {
	case ev.Buttons()&tcell.Button1 != 0 && v.pending == core.Start:
		v.pending = 0
		v.m.SetStart(row, col)
	case ev.Buttons()&tcell.Button1 != 0 && v.pending == core.Goal:
		v.pending = 0
		v.m.SetGoal(row, col)
	case ev.Buttons()&tcell.Button1 != 0:
		v.m.SetCell(row, col, core.Wall)
	case ev.Buttons()&tcell.Button3 != 0:
		v.m.SetCell(row, col, core.Path)
	}
}

func (v *viewer) redrawAll() {
	v.screen.Clear()
	grid := v.m.Grid()
	for row := 0; row < grid.N; row++ {
		for col := 0; col < grid.N; col++ {
			v.drawCell(row, col, grid.At(row, col))
		}
	}
	v.screen.Show()
}

func (v *viewer) drawBatch(batch []core.DrawCommand) {
	for _, cmd := range batch {
		v.drawCell(cmd.Row, cmd.Col, cmd.State)
	}
}

func (v *viewer) drawCell(row, col int, s core.CellState) {
	c := v.painter.Color(s)
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	v.screen.SetContent(col*2, row, ' ', nil, style)
	v.screen.SetContent(col*2+1, row, ' ', nil, style)
}

func (v *viewer) statusLine() string {
	switch {
	case v.m.Generating():
		return fmt.Sprintf("generating (%s)  [space: step, c: stop]", v.m.Algorithm())
	case v.m.Solving():
		return fmt.Sprintf("solving (%s)  [space: step, c: stop]", v.m.Algorithm())
	default:
		return "d/k/p/l: generate  y: solve  s/g+click: markers  r: reset  q: quit"
	}
}

func (v *viewer) status(msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	y := v.m.Size()
	width, _ := v.screen.Size()
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	for i, r := range msg {
		v.screen.SetContent(i, y, r, nil, style)
	}
}
