package events

// EventType represents the type of game event
type EventType int

const (
	// EventWallBounce signals a ball reflecting off the top or bottom edge
	// Trigger: Ball.Move | Payload: *BallPayload
	EventWallBounce EventType = iota

	// EventPaddleHit signals a ball's horizontal velocity flipping on paddle contact
	// Trigger: Game.Update collision pass | Payload: *PaddleHitPayload
	// Fires on every overlapping tick, not only the first
	EventPaddleHit

	// EventBallMissed signals a ball touching a vertical edge, just before its reset
	// Trigger: Game.Update collision pass | Payload: *BallMissedPayload
	EventBallMissed

	// EventGameStarted signals controller construction
	// Trigger: engine.NewGame | Payload: *GameStartedPayload
	EventGameStarted

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventWallBounce:  "wall_bounce",
	EventPaddleHit:   "paddle_hit",
	EventBallMissed:  "ball_missed",
	EventGameStarted: "game_started",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Tick that produced the event
}
