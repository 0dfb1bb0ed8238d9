package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS); one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval and MaxFrameInterval bound the configurable frame interval
	MinFrameInterval = 4 * time.Millisecond
	MaxFrameInterval = 250 * time.Millisecond
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
