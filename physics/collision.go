package physics

import (
	"github.com/lixenwraith/multipong/components"
	"github.com/lixenwraith/multipong/core"
)

// Side identifies a surface edge or the paddle guarding it
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// LeftPaddleContact reports whether the ball's left edge has reached the paddle's right edge
// while the ball's center lies within the paddle's vertical span
func LeftPaddleContact(b *components.Ball, p *components.Paddle) bool {
	return b.Left() <= p.Right() && p.SpansY(b.Y)
}

// RightPaddleContact is the mirror of LeftPaddleContact against the paddle's left edge
func RightPaddleContact(b *components.Ball, p *components.Paddle) bool {
	return b.RightEdge() >= p.X && p.SpansY(b.Y)
}

// Missed reports whether the ball has touched or crossed a vertical surface edge, and which one.
// The left edge is tested first
func Missed(b *components.Ball, s core.Surface) (Side, bool) {
	if b.Left() <= 0 {
		return SideLeft, true
	}
	if b.RightEdge() >= s.Width() {
		return SideRight, true
	}
	return SideLeft, false
}

// Reflect flips horizontal velocity. No positional correction is applied,
// so a ball still overlapping the paddle on the next tick flips again
func Reflect(b *components.Ball) {
	b.VX = -b.VX
}
