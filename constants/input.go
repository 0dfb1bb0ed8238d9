package constants

import "time"

// Key identifiers stored in the held-key mapping
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyEscape    = "Escape"
)

// KeyReleaseTimeout is how long a terminal key stays held without a repeat.
// Terminals never report releases; the first auto-repeat usually arrives within
// 250-500ms, subsequent ones every 30-50ms
const KeyReleaseTimeout = 550 * time.Millisecond

// KeyRepeatReleaseTimeout applies once a key has repeated at least once
const KeyRepeatReleaseTimeout = 120 * time.Millisecond
