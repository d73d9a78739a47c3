//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/Paralands/maze-searcher/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"ctrl+d/k/p/l  generate (dfs/kruskal/prim/random)",
	"y  solve    r  reset    ctrl+s  stop",
	"s/g + click  place start/goal",
	"space  step manually (hold to auto-step)",
	"h  toggle help    q/esc  quit",
}

// Overlay draws the status line and an optional key-help panel on top of the
// maze view.
type Overlay struct {
	m        *maze.Maze
	showHelp bool
}

// NewOverlay constructs an overlay for the provided maze.
func NewOverlay(m *maze.Maze) *Overlay {
	return &Overlay{m: m, showHelp: true}
}

// Update toggles the help panel.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 255, G: 220, B: 80, A: 255}

	text.Draw(screen, o.status(), face, 4, 13, fg)
	if !o.showHelp {
		return
	}
	dim := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	for i, line := range helpLines {
		text.Draw(screen, line, face, 4, 13+(i+1)*14, dim)
	}
}

func (o *Overlay) status() string {
	switch {
	case o.m.Generating():
		return fmt.Sprintf("generating (%s)", o.m.Algorithm())
	case o.m.Solving():
		return fmt.Sprintf("solving (%s)", o.m.Algorithm())
	default:
		return "idle"
	}
}
