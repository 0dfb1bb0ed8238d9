package physics

import (
	"testing"

	"github.com/lixenwraith/multipong/components"
	"github.com/lixenwraith/multipong/core"
)

var testSurface = core.Size{W: 800, H: 600}

func leftPaddle() *components.Paddle {
	return &components.Paddle{X: 0, Y: 250, Width: 10, Height: 100, Speed: 5, Control: components.ControlPlayer}
}

func rightPaddle() *components.Paddle {
	return &components.Paddle{X: 790, Y: 250, Width: 10, Height: 100, Speed: 5, Control: components.ControlAuto}
}

func TestLeftPaddleContact(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Overlapping inside span", 8, 300, true},
		{"Edge touching", 20, 300, true},
		{"Just clear", 20.5, 300, false},
		{"At span top", 15, 250, true},
		{"At span bottom", 15, 350, true},
		{"Above span", 15, 249, false},
		{"Below span", 15, 351, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.NewBall(tt.x, tt.y, 10, -3, 0, "")
			if got := LeftPaddleContact(b, leftPaddle()); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRightPaddleContact(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Edge touching", 780, 300, true},
		{"Overlapping", 795, 300, true},
		{"Just clear", 779.5, 300, false},
		{"Outside span", 785, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.NewBall(tt.x, tt.y, 10, 3, 0, "")
			if got := RightPaddleContact(b, rightPaddle()); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMissed(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		wantSide Side
		wantMiss bool
	}{
		{"Center", 400, SideLeft, false},
		{"Left edge touching", 10, SideLeft, true},
		{"Past left", -1, SideLeft, true},
		{"Right edge touching", 790, SideRight, true},
		{"Past right", 805, SideRight, true},
		{"Near left", 10.5, SideLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.NewBall(tt.x, 300, 10, 0, 0, "")
			side, missed := Missed(b, testSurface)
			if missed != tt.wantMiss {
				t.Fatalf("Expected missed=%v, got %v", tt.wantMiss, missed)
			}
			if missed && side != tt.wantSide {
				t.Errorf("Expected side %s, got %s", tt.wantSide, side)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	b := components.NewBall(8, 300, 10, -3, 1, "")
	Reflect(b)
	if b.VX != 3 || b.VY != 1 {
		t.Errorf("Expected velocity (3,1), got (%v,%v)", b.VX, b.VY)
	}
	if b.X != 8 {
		t.Errorf("Expected no position correction, got X %v", b.X)
	}
}
