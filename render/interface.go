package render

import "github.com/lixenwraith/multipong/components"

// Canvas is the drawing backend contract: anything that can fill a rectangle and a circle.
// Coordinates are logical surface units
type Canvas interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c RGB)
	FillCircle(cx, cy, r float64, c RGB)
	// Show presents the frame
	Show()
}

// Scene is the read-only view of entity state a frame is drawn from; engine.Game implements it
type Scene interface {
	Balls() []*components.Ball
	Left() *components.Paddle
	Right() *components.Paddle
}
