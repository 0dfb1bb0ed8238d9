package events

import "github.com/lixenwraith/multipong/physics"

// BallPayload identifies a ball by creation index
type BallPayload struct {
	Ball int
}

// PaddleHitPayload describes a paddle contact
type PaddleHitPayload struct {
	Ball int
	Side physics.Side
}

// BallMissedPayload describes a miss; Side is the edge the ball crossed
type BallMissedPayload struct {
	Ball int
	Side physics.Side
}

// GameStartedPayload carries the initial configuration
type GameStartedPayload struct {
	Balls         int
	Width, Height float64
}
