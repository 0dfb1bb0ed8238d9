package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/multipong/components"
)

type call struct {
	op         string
	x, y, w, h float64
	c          RGB
}

type recordCanvas struct {
	calls []call
}

func (r *recordCanvas) Size() (float64, float64) { return 800, 600 }
func (r *recordCanvas) Clear()                   { r.calls = append(r.calls, call{op: "clear"}) }
func (r *recordCanvas) Show()                    { r.calls = append(r.calls, call{op: "show"}) }
func (r *recordCanvas) FillRect(x, y, w, h float64, c RGB) {
	r.calls = append(r.calls, call{op: "rect", x: x, y: y, w: w, h: h, c: c})
}
func (r *recordCanvas) FillCircle(cx, cy, rad float64, c RGB) {
	r.calls = append(r.calls, call{op: "circle", x: cx, y: cy, w: rad, c: c})
}

type scene struct {
	balls       []*components.Ball
	left, right *components.Paddle
}

func (s scene) Balls() []*components.Ball { return s.balls }
func (s scene) Left() *components.Paddle  { return s.left }
func (s scene) Right() *components.Paddle { return s.right }

func testScene(colors ...string) scene {
	s := scene{
		left:  &components.Paddle{X: 0, Y: 250, Width: 10, Height: 100},
		right: &components.Paddle{X: 790, Y: 100, Width: 10, Height: 100},
	}
	for i, c := range colors {
		s.balls = append(s.balls, &components.Ball{X: float64(100 * (i + 1)), Y: 300, Radius: 7, Color: c})
	}
	return s
}

func TestDrawFrameOrder(t *testing.T) {
	rc := &recordCanvas{}
	if err := DrawFrame(rc, testScene("#FF5252", "#4CAF50")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ops := make([]string, len(rc.calls))
	for i, c := range rc.calls {
		ops[i] = c.op
	}
	want := []string{"clear", "circle", "circle", "rect", "rect", "show"}
	if len(ops) != len(want) {
		t.Fatalf("Expected ops %v, got %v", want, ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("Expected ops %v, got %v", want, ops)
		}
	}

	if rc.calls[1].c != (RGB{0xFF, 0x52, 0x52}) || rc.calls[1].x != 100 || rc.calls[1].w != 7 {
		t.Errorf("Expected first ball red at x=100 r=7, got %+v", rc.calls[1])
	}
	right := rc.calls[4]
	if right.c != RgbPaddle || right.x != 790 || right.y != 100 || right.h != 100 {
		t.Errorf("Expected right paddle white at (790,100), got %+v", right)
	}
}

func TestDrawFrameInvalidColorSkipsShow(t *testing.T) {
	rc := &recordCanvas{}
	err := DrawFrame(rc, testScene("#FF5252", "purple"))
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("Expected ErrInvalidColor, got %v", err)
	}
	for _, c := range rc.calls {
		if c.op == "show" {
			t.Error("Expected no Show after invalid color")
		}
	}
}
