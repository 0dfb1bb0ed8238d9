package constants

// Logical surface, in surface units. Front ends scale it to their output
const (
	SurfaceWidth  = 800
	SurfaceHeight = 600
)

// Ball construction
const (
	// BallCount is the number of balls created at game start
	BallCount = 5

	// Radius is drawn from [BallRadiusMin, BallRadiusMin+BallRadiusRange)
	BallRadiusMin   = 5.0
	BallRadiusRange = 10.0

	// Speed magnitude is drawn from [BallSpeedMin, BallSpeedMin+BallSpeedRange)
	BallSpeedMin   = 2.0
	BallSpeedRange = 3.0
)

// BallPalette colors cycle by ball index
var BallPalette = []string{"#FF5252", "#FFEB3B", "#4CAF50", "#2196F3", "#9C27B0"}

// Paddles
const (
	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	PaddleSpeed  = 5.0

	// PaddleColor is the fixed fill for both paddles
	PaddleColor = "#FFFFFF"
)
