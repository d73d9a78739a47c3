package render

import (
	"image/color"

	"github.com/Paralands/maze-searcher/internal/core"
)

// DefaultPalette maps each cell state to its stock color: black walls, white
// paths, blue visited cells, green start, red goal, olive solution.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		core.Wall:     {R: 0, G: 0, B: 0, A: 255},
		core.Path:     {R: 255, G: 255, B: 255, A: 255},
		core.Visited:  {R: 100, G: 100, B: 255, A: 255},
		core.Start:    {R: 0, G: 255, B: 0, A: 255},
		core.Goal:     {R: 255, G: 0, B: 0, A: 255},
		core.Solution: {R: 128, G: 128, B: 0, A: 255},
	}
}

// Painter keeps an N×N RGBA pixel buffer in sync with the maze by applying
// draw-command batches incrementally. Hosts blit the buffer at whatever scale
// they like.
type Painter struct {
	n       int
	palette []color.RGBA
	buf     []byte
}

// NewPainter allocates a painter for an n×n grid. A nil palette selects the
// default one.
func NewPainter(n int, palette []color.RGBA) *Painter {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Painter{n: n, palette: palette, buf: make([]byte, 4*n*n)}
}

// Reset repaints the whole buffer from a full cell slice.
func (p *Painter) Reset(cells []core.CellState) {
	last := len(p.palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		p.put(i*4, p.palette[idx])
	}
}

// Apply paints one batch of cell updates.
func (p *Painter) Apply(batch []core.DrawCommand) {
	last := len(p.palette) - 1
	for _, cmd := range batch {
		idx := int(cmd.State)
		if idx > last {
			idx = last
		}
		p.put((cmd.Row*p.n+cmd.Col)*4, p.palette[idx])
	}
}

func (p *Painter) put(base int, col color.RGBA) {
	p.buf[base+0] = col.R
	p.buf[base+1] = col.G
	p.buf[base+2] = col.B
	p.buf[base+3] = col.A
}

// Pixels exposes the RGBA buffer, one pixel per cell in row-major order.
func (p *Painter) Pixels() []byte { return p.buf }

// Color returns the palette entry for a state, for hosts that draw cells
// themselves.
func (p *Painter) Color(s core.CellState) color.RGBA {
	idx := int(s)
	if idx >= len(p.palette) {
		idx = len(p.palette) - 1
	}
	return p.palette[idx]
}
