package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/multipong/components"
	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/physics"
	"github.com/lixenwraith/multipong/vmath"
)

// ErrPaddleControl is returned when explicit paddles carry the wrong control tags
var ErrPaddleControl = errors.New("left paddle must be player-controlled and right paddle automatic")

// Game is the simulation controller. It owns every ball and both paddles.
// Not safe for concurrent use: input, update and draw must run on one goroutine
type Game struct {
	surface core.Surface
	rng     vmath.Rand
	queue   *events.EventQueue

	balls []*components.Ball // Fixed after construction, creation order
	left  *components.Paddle // Player
	right *components.Paddle // Automatic

	keys map[string]bool // Held-key mapping, written by the input collaborator
	tick uint64
}

type gameOptions struct {
	ballCount int
	queue     *events.EventQueue
}

// Option configures NewGame
type Option func(*gameOptions)

// WithBallCount overrides constants.BallCount
func WithBallCount(n int) Option {
	return func(o *gameOptions) { o.ballCount = n }
}

// WithEventQueue makes Update push collision and miss events to q
func WithEventQueue(q *events.EventQueue) Option {
	return func(o *gameOptions) { o.queue = q }
}

// NewGame builds the balls and both paddles. Random draws happen in ball order:
// radius, speed, angle per ball
func NewGame(s core.Surface, rng vmath.Rand, opts ...Option) (*Game, error) {
	o := gameOptions{ballCount: constants.BallCount}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ballCount < 1 {
		return nil, fmt.Errorf("ball count %d: %w", o.ballCount, components.ErrNoBalls)
	}

	balls := make([]*components.Ball, o.ballCount)
	for i := range balls {
		color := constants.BallPalette[i%len(constants.BallPalette)]
		balls[i] = components.NewRandomBall(s, rng, color)
	}

	left := components.NewPaddle(s, 0, components.ControlPlayer)
	right := components.NewPaddle(s, s.Width()-constants.PaddleWidth, components.ControlAuto)

	g := newGame(s, rng, o.queue, balls, left, right)
	g.emit(events.EventGameStarted, &events.GameStartedPayload{
		Balls:  len(balls),
		Width:  s.Width(),
		Height: s.Height(),
	})
	return g, nil
}

// NewGameWithEntities builds a controller around explicit entities
func NewGameWithEntities(s core.Surface, rng vmath.Rand, balls []*components.Ball, left, right *components.Paddle, opts ...Option) (*Game, error) {
	if len(balls) == 0 {
		return nil, components.ErrNoBalls
	}
	if left == nil || right == nil || left.Control != components.ControlPlayer || right.Control != components.ControlAuto {
		return nil, ErrPaddleControl
	}

	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}
	return newGame(s, rng, o.queue, balls, left, right), nil
}

func newGame(s core.Surface, rng vmath.Rand, q *events.EventQueue, balls []*components.Ball, left, right *components.Paddle) *Game {
	return &Game{
		surface: s,
		rng:     rng,
		queue:   q,
		balls:   balls,
		left:    left,
		right:   right,
		keys:    make(map[string]bool),
	}
}

// Update advances the simulation by one tick. Order matters:
// balls move, the player paddle follows held keys, the automatic paddle tracks,
// then each ball is checked against the left paddle, the right paddle and the vertical edges
func (g *Game) Update() error {
	g.tick++

	for i, b := range g.balls {
		if b.Move(g.surface) {
			g.emit(events.EventWallBounce, &events.BallPayload{Ball: i})
		}
	}

	// Both may apply in one tick
	if g.keys[constants.KeyArrowUp] {
		g.left.Move(components.DirectionUp, g.surface)
	}
	if g.keys[constants.KeyArrowDown] {
		g.left.Move(components.DirectionDown, g.surface)
	}

	if err := g.right.AutoMove(g.balls); err != nil {
		return fmt.Errorf("tick %d: auto paddle: %w", g.tick, err)
	}

	for i, b := range g.balls {
		if physics.LeftPaddleContact(b, g.left) {
			physics.Reflect(b)
			g.emit(events.EventPaddleHit, &events.PaddleHitPayload{Ball: i, Side: physics.SideLeft})
		}
		if physics.RightPaddleContact(b, g.right) {
			physics.Reflect(b)
			g.emit(events.EventPaddleHit, &events.PaddleHitPayload{Ball: i, Side: physics.SideRight})
		}
		if side, missed := physics.Missed(b, g.surface); missed {
			g.emit(events.EventBallMissed, &events.BallMissedPayload{Ball: i, Side: side})
			b.Reset(g.surface, g.rng)
		}
	}

	return nil
}

func (g *Game) emit(t events.EventType, payload any) {
	if g.queue == nil {
		return
	}
	g.queue.Push(events.GameEvent{Type: t, Payload: payload, Tick: g.tick})
}

// KeyDown marks key as held. Any identifier is stored; only the arrow keys affect play
func (g *Game) KeyDown(key string) { g.keys[key] = true }

// KeyUp marks key as released
func (g *Game) KeyUp(key string) { g.keys[key] = false }

// Held reports the last state set for key
func (g *Game) Held(key string) bool { return g.keys[key] }

// Balls returns the ball collection in creation order. Callers must not append or remove
func (g *Game) Balls() []*components.Ball { return g.balls }

func (g *Game) Left() *components.Paddle  { return g.left }
func (g *Game) Right() *components.Paddle { return g.right }
func (g *Game) Surface() core.Surface     { return g.surface }

// Tick returns the number of completed Update calls
func (g *Game) Tick() uint64 { return g.tick }
