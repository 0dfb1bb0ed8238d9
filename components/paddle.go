package components

import (
	"errors"
	"math"

	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/core"
)

// ErrNoBalls is returned when paddle tracking or game construction sees an empty ball collection
var ErrNoBalls = errors.New("no balls to track")

// Control tags who drives a paddle; fixed per instance
type Control int

const (
	ControlPlayer Control = iota // Driven by the held-key mapping
	ControlAuto                  // Chases the nearest ball
)

func (c Control) String() string {
	switch c {
	case ControlPlayer:
		return "player"
	case ControlAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Direction of a paddle step
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Paddle is a vertical bar moving in a fixed column
type Paddle struct {
	X, Y          float64 // Top-left corner; X never changes
	Width, Height float64
	Speed         float64 // Fixed step per move
	Control       Control
}

// NewPaddle creates a paddle with the default size and speed, vertically centered on the surface
func NewPaddle(s core.Surface, x float64, control Control) *Paddle {
	return &Paddle{
		X:       x,
		Y:       s.Height()/2 - constants.PaddleHeight/2,
		Width:   constants.PaddleWidth,
		Height:  constants.PaddleHeight,
		Speed:   constants.PaddleSpeed,
		Control: control,
	}
}

// Move steps the paddle once. Bounds are checked against the pre-move position,
// so the paddle can end up to one step past an edge
func (p *Paddle) Move(dir Direction, s core.Surface) {
	switch dir {
	case DirectionUp:
		if p.Y > 0 {
			p.Y -= p.Speed
		}
	case DirectionDown:
		if p.Y+p.Height < s.Height() {
			p.Y += p.Speed
		}
	}
}

// AutoMove steps one Speed toward the ball horizontally closest to the paddle.
// Ties go to the earliest ball in slice order. No bounds clamp is applied
func (p *Paddle) AutoMove(balls []*Ball) error {
	target := p.Nearest(balls)
	if target == nil {
		return ErrNoBalls
	}

	center := p.CenterY()
	if target.Y < center {
		p.Y -= p.Speed
	} else if target.Y > center {
		p.Y += p.Speed
	}
	return nil
}

// Nearest returns the ball with minimum |ball.X - paddle.X|, or nil for an empty slice
func (p *Paddle) Nearest(balls []*Ball) *Ball {
	if len(balls) == 0 {
		return nil
	}
	nearest := balls[0]
	minDistance := math.Inf(1)
	for _, b := range balls {
		if d := math.Abs(b.X - p.X); d < minDistance {
			minDistance = d
			nearest = b
		}
	}
	return nearest
}

func (p *Paddle) Right() float64   { return p.X + p.Width }
func (p *Paddle) Bottom() float64  { return p.Y + p.Height }
func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// SpansY reports whether y lies within [Y, Bottom()]
func (p *Paddle) SpansY(y float64) bool {
	return y >= p.Y && y <= p.Bottom()
}
