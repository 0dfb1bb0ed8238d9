package input

import (
	"time"

	"github.com/lixenwraith/multipong/constants"
)

// ReleaseTracker emulates key-up notifications for terminals, which only report presses and auto-repeats.
// A key is held from its first press until no repeat arrives within the timeout.
// Not safe for concurrent use; drive it from the frame goroutine
type ReleaseTracker struct {
	sink        Sink
	first       time.Duration // Timeout before the first repeat
	repeat      time.Duration // Timeout once repeating
	lastPress   map[string]time.Time
	repeatCount map[string]int
}

// NewReleaseTracker creates a tracker with the default timeouts
func NewReleaseTracker(sink Sink) *ReleaseTracker {
	return &ReleaseTracker{
		sink:        sink,
		first:       constants.KeyReleaseTimeout,
		repeat:      constants.KeyRepeatReleaseTimeout,
		lastPress:   make(map[string]time.Time),
		repeatCount: make(map[string]int),
	}
}

// Press records a press or repeat at now; the sink sees KeyDown only on the first press
func (rt *ReleaseTracker) Press(key string, now time.Time) {
	if _, held := rt.lastPress[key]; held {
		rt.repeatCount[key]++
	} else {
		rt.sink.KeyDown(key)
	}
	rt.lastPress[key] = now
}

// Expire releases keys whose timeout elapsed at now and returns how many were released
func (rt *ReleaseTracker) Expire(now time.Time) int {
	released := 0
	for key, last := range rt.lastPress {
		timeout := rt.first
		if rt.repeatCount[key] > 0 {
			timeout = rt.repeat
		}
		if now.Sub(last) >= timeout {
			rt.release(key)
			released++
		}
	}
	return released
}

// ReleaseAll releases every held key, e.g. on focus loss
func (rt *ReleaseTracker) ReleaseAll() {
	for key := range rt.lastPress {
		rt.release(key)
	}
}

func (rt *ReleaseTracker) release(key string) {
	delete(rt.lastPress, key)
	delete(rt.repeatCount, key)
	rt.sink.KeyUp(key)
}
