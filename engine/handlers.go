package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/physics"
	"github.com/lixenwraith/multipong/status"
)

// MetricsHandler counts game events into the status registry
type MetricsHandler struct {
	leftHits  *atomic.Int64
	rightHits *atomic.Int64
	bounces   *atomic.Int64
	misses    *atomic.Int64
}

func NewMetricsHandler(reg *status.Registry) *MetricsHandler {
	return &MetricsHandler{
		leftHits:  reg.Ints.Get("game.paddle_hits.left"),
		rightHits: reg.Ints.Get("game.paddle_hits.right"),
		bounces:   reg.Ints.Get("game.wall_bounces"),
		misses:    reg.Ints.Get("game.misses"),
	}
}

func (h *MetricsHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventWallBounce, events.EventPaddleHit, events.EventBallMissed}
}

func (h *MetricsHandler) HandleEvent(_ *Game, ev events.GameEvent) {
	switch ev.Type {
	case events.EventWallBounce:
		h.bounces.Add(1)
	case events.EventPaddleHit:
		if p, ok := ev.Payload.(*events.PaddleHitPayload); ok && p.Side == physics.SideRight {
			h.rightHits.Add(1)
		} else {
			h.leftHits.Add(1)
		}
	case events.EventBallMissed:
		h.misses.Add(1)
	}
}

// LogHandler writes lifecycle and miss events to the standard logger
type LogHandler struct{}

func (LogHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameStarted, events.EventBallMissed}
}

func (LogHandler) HandleEvent(g *Game, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.GameStartedPayload:
		log.Printf("game started: %d balls on %.0fx%.0f", p.Balls, p.Width, p.Height)
	case *events.BallMissedPayload:
		b := g.Balls()[p.Ball]
		log.Printf("tick %d: ball %d missed %s edge, relaunched with v=(%.2f,%.2f)", ev.Tick, p.Ball, p.Side, b.VX, b.VY)
	}
}
