package core

// Surface exposes the drawing area geometry. Bound checks read it live,
// so a surface that changes size affects bounce and collision math immediately
type Surface interface {
	Width() float64
	Height() float64
}

// Size is a fixed-geometry Surface
type Size struct {
	W, H float64
}

func (s Size) Width() float64  { return s.W }
func (s Size) Height() float64 { return s.H }

// Center returns the midpoint of the surface
func Center(s Surface) (x, y float64) {
	return s.Width() / 2, s.Height() / 2
}
