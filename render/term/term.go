// Package term plots gizmos into a tcell screen, one cell per pixel.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/render/wire"
)

// DefaultRune is the glyph used to plot line cells.
const DefaultRune = '•'

// Overlay is a tcell-backed wire.ScreenSink.
type Overlay struct {
	Rune rune

	screen tcell.Screen
}

var _ wire.ScreenSink = (*Overlay)(nil)

func NewOverlay(screen tcell.Screen) *Overlay {
	return &Overlay{Rune: DefaultRune, screen: screen}
}

// NewRenderer returns a gizmos.Renderer plotting into o as seen through vp.
// Build vp with the screen's column and row counts.
func NewRenderer(o *Overlay, vp wire.Viewport) *wire.Renderer {
	return wire.New(wire.Projected{Viewport: vp, Screen: o})
}

func Style(c gizmos.Color) tcell.Style {
	n := c.NRGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
}

func (o *Overlay) Segment(x0, y0, x1, y1 float32, c gizmos.Color) {
	w, h := o.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	fx0, fy0, fx1, fy1, ok := clipSegment(float64(x0), float64(y0), float64(x1), float64(y1), float64(w-1), float64(h-1))
	if !ok {
		return
	}

	style := Style(c)
	plotLine(int(math.Round(fx0)), int(math.Round(fy0)), int(math.Round(fx1)), int(math.Round(fy1)), func(x, y int) {
		o.screen.SetContent(x, y, o.Rune, nil, style)
	})
}

func (o *Overlay) Clear() { o.screen.Clear() }
func (o *Overlay) Show()  { o.screen.Show() }

// plotLine is Bresenham over integer cells, endpoints included.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment is Liang-Barsky against [0,maxX]x[0,maxY].
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
