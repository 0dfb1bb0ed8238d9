package main

import (
	"time"

	"github.com/lixenwraith/multipong/engine"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/input"
	"github.com/lixenwraith/multipong/render"
)

// session is the per-frame work of the terminal front end. It runs on the loop goroutine only;
// key events reach it through keyChan from the input poller
type session struct {
	game    *engine.Game
	router  *events.Router[*engine.Game]
	canvas  render.Canvas
	tracker *input.ReleaseTracker
	keyChan <-chan input.KeyEntry

	toggleMute func() bool
	now        func() time.Time
}

// frame drains pending keys, releases timed-out keys, then steps and draws
func (s *session) frame() error {
	now := s.now()

drain:
	for {
		select {
		case e := <-s.keyChan:
			switch e.Intent {
			case input.IntentQuit:
				return engine.ErrQuit
			case input.IntentToggleMute:
				if s.toggleMute != nil {
					s.toggleMute()
				}
			case input.IntentHold:
				s.tracker.Press(e.Name, now)
			case input.IntentReleaseAll:
				s.tracker.ReleaseAll()
			}
		default:
			break drain
		}
	}

	s.tracker.Expire(now)

	var drawErr error
	err := engine.Step(s.game, s.router, func(g *engine.Game) {
		drawErr = render.DrawFrame(s.canvas, g)
	})
	if err != nil {
		return err
	}
	return drawErr
}
