// Package gui draws frames into an ebiten window
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/render"
)

// Canvas draws onto the ebiten image of the current Draw call.
// The window layout equals the logical surface, so coordinates pass through unscaled
type Canvas struct {
	surface core.Surface
	target  *ebiten.Image
}

func NewCanvas(surface core.Surface) *Canvas {
	return &Canvas{surface: surface}
}

// SetTarget binds the image for the next frame
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

func (c *Canvas) Size() (w, h float64) {
	return c.surface.Width(), c.surface.Height()
}

func (c *Canvas) Clear() {
	if c.target == nil {
		return
	}
	c.target.Fill(render.RgbBackground)
}

func (c *Canvas) FillRect(x, y, w, h float64, col render.RGB) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col render.RGB) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), col, true)
}

// Show is a no-op; ebiten presents the image after Draw returns
func (c *Canvas) Show() {}
