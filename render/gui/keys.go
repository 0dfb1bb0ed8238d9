package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/input"
)

// KeyBinding ties a physical key to a held-key identifier or an action
type KeyBinding struct {
	Key    ebiten.Key
	Name   string
	Intent input.Intent
}

// DefaultBindings mirrors the terminal key table
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{ebiten.KeyArrowUp, constants.KeyArrowUp, input.IntentHold},
		{ebiten.KeyK, constants.KeyArrowUp, input.IntentHold},
		{ebiten.KeyW, constants.KeyArrowUp, input.IntentHold},
		{ebiten.KeyArrowDown, constants.KeyArrowDown, input.IntentHold},
		{ebiten.KeyJ, constants.KeyArrowDown, input.IntentHold},
		{ebiten.KeyS, constants.KeyArrowDown, input.IntentHold},
		{ebiten.KeyEscape, constants.KeyEscape, input.IntentQuit},
		{ebiten.KeyQ, constants.KeyEscape, input.IntentQuit},
		{ebiten.KeyM, "m", input.IntentToggleMute},
	}
}

// KeyPoller turns level-triggered key state into held-key transitions.
// Several physical keys may share one identifier; it stays held while any of them is down
type KeyPoller struct {
	pressed  func(ebiten.Key) bool
	sink     input.Sink
	bindings []KeyBinding

	held map[string]bool // Identifier state after the last poll
	down map[ebiten.Key]bool
}

// NewKeyPoller polls through pressed, which is ebiten.IsKeyPressed outside tests
func NewKeyPoller(pressed func(ebiten.Key) bool, sink input.Sink, bindings []KeyBinding) *KeyPoller {
	return &KeyPoller{
		pressed:  pressed,
		sink:     sink,
		bindings: bindings,
		held:     make(map[string]bool),
		down:     make(map[ebiten.Key]bool),
	}
}

// Poll reads every bound key once, forwards changed held identifiers to the sink,
// and returns the first action whose key went down since the last poll
func (kp *KeyPoller) Poll() input.Intent {
	action := input.IntentNone
	now := make(map[string]bool, len(kp.held))

	for _, b := range kp.bindings {
		isDown := kp.pressed(b.Key)
		wasDown := kp.down[b.Key]
		kp.down[b.Key] = isDown

		switch b.Intent {
		case input.IntentHold:
			now[b.Name] = now[b.Name] || isDown
		case input.IntentQuit, input.IntentToggleMute:
			if isDown && !wasDown && action == input.IntentNone {
				action = b.Intent
			}
		}
	}

	for name, isHeld := range now {
		if isHeld == kp.held[name] {
			continue
		}
		kp.held[name] = isHeld
		if isHeld {
			kp.sink.KeyDown(name)
		} else {
			kp.sink.KeyUp(name)
		}
	}
	return action
}
