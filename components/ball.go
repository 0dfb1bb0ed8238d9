package components

import (
	"math"

	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/vmath"
)

// Ball is a moving circle. Balls are pooled: a miss resets a ball in place instead of replacing it
type Ball struct {
	X, Y     float64 // Center in surface units
	Radius   float64 // Fixed at creation, always > 0
	VX, VY   float64 // Surface units per tick
	VX0, VY0 float64 // Launch template, only read by Reset
	Color    string  // Palette entry, opaque to the simulation
}

// NewBall creates a ball at (x, y) whose launch template equals its initial velocity
func NewBall(x, y, radius, vx, vy float64, color string) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: radius,
		VX:     vx,
		VY:     vy,
		VX0:    vx,
		VY0:    vy,
		Color:  color,
	}
}

// NewRandomBall creates a ball at the surface center with radius in [5,15),
// speed in [2,5) and a direction angle in [0,2π), drawn from rng in that order
func NewRandomBall(s core.Surface, rng vmath.Rand, color string) *Ball {
	radius := vmath.Range(rng, constants.BallRadiusMin, constants.BallRadiusRange)
	speed := vmath.Range(rng, constants.BallSpeedMin, constants.BallSpeedRange)
	angle := rng.Float64() * 2 * math.Pi

	cx, cy := core.Center(s)
	return NewBall(cx, cy, radius, math.Cos(angle)*speed, math.Sin(angle)*speed, color)
}

// Move integrates one tick and reflects vertical velocity at the top and bottom edges.
// Position is not corrected, so a ball may overshoot an edge by one tick of travel.
// Returns true if the ball bounced
func (b *Ball) Move(s core.Surface) bool {
	b.X += b.VX
	b.Y += b.VY

	if b.Y-b.Radius <= 0 || b.Y+b.Radius >= s.Height() {
		b.VY = -b.VY
		return true
	}
	return false
}

// Reset recenters the ball and relaunches it with the template magnitudes and an independent random sign per axis
func (b *Ball) Reset(s core.Surface, rng vmath.Rand) {
	b.X, b.Y = core.Center(s)
	b.VX = b.VX0 * vmath.Sign(rng)
	b.VY = b.VY0 * vmath.Sign(rng)
}

// Left and RightEdge return the horizontal extent of the ball
func (b *Ball) Left() float64      { return b.X - b.Radius }
func (b *Ball) RightEdge() float64 { return b.X + b.Radius }
