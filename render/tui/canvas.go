// Package tui rasterizes frames onto a terminal using half-block cells
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/render"
)

// halfBlock paints the upper pixel with the foreground and the lower with the background
const halfBlock = '▀'

// supersample is the per-axis sample count used to antialias edges
const supersample = 2

// Canvas maps the logical surface onto cols × 2·rows pixels of a tcell screen
type Canvas struct {
	screen  tcell.Screen
	surface core.Surface

	cols, rows int
	pixels     []render.RGB // row-major, cols × 2·rows
}

// NewCanvas creates a canvas drawing the logical surface onto screen
func NewCanvas(screen tcell.Screen, surface core.Surface) *Canvas {
	c := &Canvas{screen: screen, surface: surface}
	c.resize()
	return c
}

// Size returns the logical surface extent
func (c *Canvas) Size() (w, h float64) {
	return c.surface.Width(), c.surface.Height()
}

// Clear re-reads the terminal size and fills every pixel with the background
func (c *Canvas) Clear() {
	c.resize()
	for i := range c.pixels {
		c.pixels[i] = render.RgbBackground
	}
}

func (c *Canvas) resize() {
	cols, rows := c.screen.Size()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]render.RGB, cols*rows*2)
	for i := range c.pixels {
		c.pixels[i] = render.RgbBackground
	}
}

// scale returns pixels per logical unit on each axis
func (c *Canvas) scale() (sx, sy float64) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(c.cols) / w, float64(c.rows*2) / h
}

// FillRect fills the logical rectangle [x, x+w) × [y, y+h)
func (c *Canvas) FillRect(x, y, w, h float64, col render.RGB) {
	c.fill(x, y, x+w, y+h, col, func(lx, ly float64) bool {
		return lx >= x && lx < x+w && ly >= y && ly < y+h
	})
}

// FillCircle fills the logical disc centered at (cx, cy)
func (c *Canvas) FillCircle(cx, cy, r float64, col render.RGB) {
	r2 := r * r
	c.fill(cx-r, cy-r, cx+r, cy+r, col, func(lx, ly float64) bool {
		dx, dy := lx-cx, ly-cy
		return dx*dx+dy*dy <= r2
	})
}

// fill blends col into every pixel overlapping the logical box, weighted by sample coverage
func (c *Canvas) fill(x0, y0, x1, y1 float64, col render.RGB, inside func(lx, ly float64) bool) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	height := c.rows * 2

	px0 := max(int(math.Floor(x0*sx)), 0)
	py0 := max(int(math.Floor(y0*sy)), 0)
	px1 := min(int(math.Ceil(x1*sx)), c.cols)
	py1 := min(int(math.Ceil(y1*sy)), height)

	const total = supersample * supersample
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			hits := 0
			for j := 0; j < supersample; j++ {
				ly := (float64(py) + (float64(j)+0.5)/supersample) / sy
				for i := 0; i < supersample; i++ {
					lx := (float64(px) + (float64(i)+0.5)/supersample) / sx
					if inside(lx, ly) {
						hits++
					}
				}
			}
			if hits == 0 {
				continue
			}
			idx := py*c.cols + px
			c.pixels[idx] = render.Blend(c.pixels[idx], col, float64(hits)/total)
		}
	}
}

// Show writes each pixel pair as one half-block cell and flushes the screen
func (c *Canvas) Show() {
	for row := 0; row < c.rows; row++ {
		top := c.pixels[(row*2)*c.cols:]
		bottom := c.pixels[(row*2+1)*c.cols:]
		for col := 0; col < c.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(render.RGBToTcell(top[col])).
				Background(render.RGBToTcell(bottom[col]))
			c.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	c.screen.Show()
}

// pixel returns the rasterized color at pixel (px, py); out-of-range reads return the background
func (c *Canvas) pixel(px, py int) render.RGB {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return render.RgbBackground
	}
	return c.pixels[py*c.cols+px]
}
