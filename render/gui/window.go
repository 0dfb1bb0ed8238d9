package gui

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/multipong/engine"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/input"
	"github.com/lixenwraith/multipong/render"
	"github.com/lixenwraith/multipong/status"
)

const helpText = "Up/Down or W/S: move   M: mute   Esc/Q: quit"

// Window adapts the simulation to ebiten.Game. Ebiten calls Update and Draw on one goroutine
type Window struct {
	game   *engine.Game
	router *events.Router[*engine.Game]
	canvas *Canvas
	keys   *KeyPoller

	onMute func()
	err    error // Frame error surfaced on the next Update

	stats *engine.FrameStats
	now   func() time.Time
}

// NewWindow builds the window around game. router and reg may be nil
func NewWindow(game *engine.Game, router *events.Router[*engine.Game], reg *status.Registry) *Window {
	w := &Window{
		game:   game,
		router: router,
		canvas: NewCanvas(game.Surface()),
		stats:  engine.NewFrameStats(reg),
		now:    time.Now,
	}
	w.keys = NewKeyPoller(ebiten.IsKeyPressed, game, DefaultBindings())
	return w
}

// OnMute sets the callback for the mute key
func (w *Window) OnMute(fn func()) {
	w.onMute = fn
}

// Update polls keys and advances the simulation one tick
func (w *Window) Update() error {
	if w.err != nil {
		return w.err
	}

	switch w.keys.Poll() {
	case input.IntentQuit:
		return ebiten.Termination
	case input.IntentToggleMute:
		if w.onMute != nil {
			w.onMute()
		}
	}

	start := w.now()
	if err := engine.Step(w.game, w.router, nil); err != nil {
		return err
	}
	w.stats.Record(w.now().Sub(start))
	return nil
}

// Draw renders the current state and the help line
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.SetTarget(screen)
	if err := render.DrawFrame(w.canvas, w.game); err != nil {
		w.err = err
		return
	}
	text.Draw(screen, helpText, basicfont.Face7x13, 8, 16, render.RgbHelpText)
}

// Layout fixes the logical resolution to the surface; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := w.game.Surface()
	return int(s.Width()), int(s.Height())
}

// Run opens the window and blocks until it closes. interval sets the tick rate
func (w *Window) Run(title string, interval time.Duration) error {
	s := w.game.Surface()
	ebiten.SetWindowSize(int(s.Width()), int(s.Height()))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TicksPerSecond(interval))

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		log.Printf("window closed with error: %v", err)
	}
	return err
}

// TicksPerSecond converts a frame interval to an ebiten tick rate, at least 1
func TicksPerSecond(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/interval), 1)
}
