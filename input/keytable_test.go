package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/multipong/constants"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name       string
		key        tcell.Key
		r          rune
		wantName   string
		wantIntent Intent
	}{
		{"Arrow up", tcell.KeyUp, 0, constants.KeyArrowUp, IntentHold},
		{"Arrow down", tcell.KeyDown, 0, constants.KeyArrowDown, IntentHold},
		{"Vim up", tcell.KeyRune, 'k', constants.KeyArrowUp, IntentHold},
		{"Vim down", tcell.KeyRune, 'j', constants.KeyArrowDown, IntentHold},
		{"WASD up", tcell.KeyRune, 'w', constants.KeyArrowUp, IntentHold},
		{"Escape", tcell.KeyEscape, 0, constants.KeyEscape, IntentQuit},
		{"Ctrl-C", tcell.KeyCtrlC, 0, constants.KeyEscape, IntentQuit},
		{"q quits", tcell.KeyRune, 'q', constants.KeyEscape, IntentQuit},
		{"Mute", tcell.KeyRune, 'm', "m", IntentToggleMute},
		{"Unbound rune", tcell.KeyRune, 'x', "x", IntentHold},
		{"Unbound special", tcell.KeyF5, 0, "F5", IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kt.LookupKey(tt.key, tt.r, tt.wantName)
			if got.Name != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, got.Name)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Expected intent %d, got %d", tt.wantIntent, got.Intent)
			}
		})
	}
}
