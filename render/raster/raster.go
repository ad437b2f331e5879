// Package raster draws gizmos as an anti-aliased 2D overlay image using gg.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gekko3d/gizmos"
	"github.com/gekko3d/gizmos/render/wire"
	"github.com/gogpu/gg"
)

// Canvas is a gg-backed wire.ScreenSink.
type Canvas struct {
	LineWidth  float64
	Background gizmos.Color // zero clears to transparent

	dc  *gg.Context
	err error
}

var _ wire.ScreenSink = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		LineWidth: 1.5,
		dc:        gg.NewContext(width, height),
	}
}

// NewRenderer returns a gizmos.Renderer drawing into c as seen through vp.
func NewRenderer(c *Canvas, vp wire.Viewport) *wire.Renderer {
	return wire.New(wire.Projected{Viewport: vp, Screen: c})
}

func (c *Canvas) Segment(x0, y0, x1, y1 float32, col gizmos.Color) {
	c.dc.SetRGBA(float64(col[0]), float64(col[1]), float64(col[2]), float64(col[3]))
	c.dc.SetLineWidth(c.LineWidth)
	c.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	if err := c.dc.Stroke(); err != nil {
		c.err = errors.Join(c.err, err)
	}
}

// Clear wipes the canvas to Background ahead of a new frame.
func (c *Canvas) Clear() {
	if c.Background.IsZero() {
		c.dc.Clear()
		return
	}
	bg := c.Background
	c.dc.ClearWithColor(gg.RGBA2(float64(bg[0]), float64(bg[1]), float64(bg[2]), float64(bg[3])))
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Err returns the stroke failures collected since the last call, and resets them.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
