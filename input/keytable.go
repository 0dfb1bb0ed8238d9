package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/multipong/constants"
)

// KeyEntry describes a key's identifier and intent
type KeyEntry struct {
	Name   string // Identifier stored in the held-key mapping
	Intent Intent
}

// KeyTable maps terminal keys to entries
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: arrows plus k/j and w/s aliases
func DefaultKeyTable() *KeyTable {
	up := KeyEntry{constants.KeyArrowUp, IntentHold}
	down := KeyEntry{constants.KeyArrowDown, IntentHold}
	quit := KeyEntry{constants.KeyEscape, IntentQuit}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
			tcell.KeyCtrlQ:  quit,
		},
		Runes: map[rune]KeyEntry{
			'k': up,
			'w': up,
			'j': down,
			's': down,
			'q': quit,
			'm': {"m", IntentToggleMute},
		},
	}
}

// Lookup resolves a tcell key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	return kt.LookupKey(ev.Key(), ev.Rune(), ev.Name())
}

// LookupKey resolves a key code, its rune for tcell.KeyRune, and its display name.
// Unbound printable runes map to their own string with IntentHold, so they populate
// the held-key mapping without effect. Other unbound keys resolve to IntentNone
func (kt *KeyTable) LookupKey(k tcell.Key, r rune, name string) KeyEntry {
	if k == tcell.KeyRune {
		if e, ok := kt.Runes[r]; ok {
			return e
		}
		return KeyEntry{Name: string(r), Intent: IntentHold}
	}
	if e, ok := kt.SpecialKeys[k]; ok {
		return e
	}
	return KeyEntry{Name: name, Intent: IntentNone}
}
