package input

// Intent classifies what a key press asks for
type Intent uint8

const (
	IntentNone       Intent = iota
	IntentHold              // Key is forwarded to the held-key mapping
	IntentQuit              // Exit the game
	IntentToggleMute        // Toggle sound effects
	IntentReleaseAll        // Release every held key; sent when the terminal loses focus
)

// Sink receives held-key transitions; engine.Game implements it
type Sink interface {
	KeyDown(key string)
	KeyUp(key string)
}
