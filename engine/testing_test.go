package engine

import (
	"github.com/lixenwraith/multipong/components"
	"github.com/lixenwraith/multipong/core"
)

var testSurface = core.Size{W: 800, H: 600}

// scriptRand replays a scripted sequence of draws
type scriptRand struct {
	vals []float64
	i    int
}

func (r *scriptRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newScenario builds a game with default paddles around the given balls
func newScenario(balls []*components.Ball, draws ...float64) *Game {
	if len(draws) == 0 {
		draws = []float64{0.9}
	}
	left := components.NewPaddle(testSurface, 0, components.ControlPlayer)
	right := components.NewPaddle(testSurface, testSurface.W-10, components.ControlAuto)
	g, err := NewGameWithEntities(testSurface, &scriptRand{vals: draws}, balls, left, right)
	if err != nil {
		panic(err)
	}
	return g
}
