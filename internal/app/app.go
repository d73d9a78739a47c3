//go:build ebiten

package app

import (
	"log"

	"github.com/Paralands/maze-searcher/internal/core"
	"github.com/Paralands/maze-searcher/internal/maze"
	"github.com/Paralands/maze-searcher/internal/render"
	"github.com/Paralands/maze-searcher/internal/sched"
	"github.com/Paralands/maze-searcher/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput adapts ebiten's space-bar state to the scheduler's Input contract.
// refresh must run once per Update, before the maze ticks.
type KeyInput struct {
	pressed bool
	held    bool
}

// NewKeyInput constructs the input adapter.
func NewKeyInput() *KeyInput { return &KeyInput{} }

func (k *KeyInput) refresh() {
	k.pressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	k.held = ebiten.IsKeyPressed(ebiten.KeySpace)
}

// StepPressed reports a space-bar press edge this frame.
func (k *KeyInput) StepPressed() bool { return k.pressed }

// StepHeld reports whether the space bar is currently down.
func (k *KeyInput) StepHeld() bool { return k.held }

// Game adapts a maze facade to the ebiten.Game interface.
type Game struct {
	m       *maze.Maze
	painter *render.Painter
	overlay *ui.Overlay
	input   *KeyInput

	img    *ebiten.Image
	scale  int
	policy sched.Policy
}

// New constructs a Game for the provided maze.
func New(m *maze.Maze, input *KeyInput, scale int, delayMS int64) *Game {
	p := render.NewPainter(m.Size(), nil)
	p.Reset(m.Grid().Cells())
	return &Game{
		m:       m,
		painter: p,
		overlay: ui.NewOverlay(m),
		input:   input,
		img:     ebiten.NewImage(m.Size(), m.Size()),
		scale:   scale,
		policy:  sched.FixedDelay(delayMS),
	}
}

// Update handles per-frame input, advances the scheduler by one tick, and
// drains one draw batch into the painter.
func (g *Game) Update() error {
	g.input.refresh()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	g.overlay.Update()

	if err := g.m.Tick(); err != nil {
		log.Printf("maze: %v", err)
	}
	if batch := g.m.Drain(); batch != nil {
		g.painter.Apply(batch)
	}
	return nil
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if ctrl {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyD):
			g.generate("dfs")
		case inpututil.IsKeyJustPressed(ebiten.KeyK):
			g.generate("kruskal")
		case inpututil.IsKeyJustPressed(ebiten.KeyP):
			g.generate("prim")
		case inpututil.IsKeyJustPressed(ebiten.KeyL):
			g.generate("random")
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			g.m.Cancel()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		if _, err := g.m.Solve("astar", g.policy); err != nil {
			log.Printf("maze: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.m.Reset()
	}
}

func (g *Game) generate(algorithm string) {
	if _, err := g.m.Generate(algorithm, g.policy); err != nil {
		log.Printf("maze: %v", err)
	}
}

// handleMouse paints cells: left button draws walls, right button erases to
// path, and holding S or G places the start or goal marker instead.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale
	if !g.m.Grid().In(row, col) {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyS):
		g.m.SetStart(row, col)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyG):
		g.m.SetGoal(row, col)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.m.SetCell(row, col, core.Wall)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.m.SetCell(row, col, core.Path)
	}
}

// Draw blits the painter's pixel buffer scaled to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.WritePixels(g.painter.Pixels())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.m.Size() * g.scale, g.m.Size() * g.scale
}
