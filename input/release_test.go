package input

import (
	"testing"
	"time"
)

type recordingSink struct {
	held  map[string]bool
	downs int
	ups   int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{held: make(map[string]bool)}
}

func (s *recordingSink) KeyDown(key string) { s.held[key] = true; s.downs++ }
func (s *recordingSink) KeyUp(key string)   { s.held[key] = false; s.ups++ }

func TestReleaseTrackerSinglePress(t *testing.T) {
	sink := newRecordingSink()
	rt := NewReleaseTracker(sink)
	t0 := time.Unix(0, 0)

	rt.Press("ArrowUp", t0)
	if !sink.held["ArrowUp"] || sink.downs != 1 {
		t.Fatal("Expected KeyDown on first press")
	}

	if n := rt.Expire(t0.Add(rt.first - time.Millisecond)); n != 0 {
		t.Errorf("Expected key still held before timeout, released %d", n)
	}
	if n := rt.Expire(t0.Add(rt.first)); n != 1 {
		t.Errorf("Expected 1 release at timeout, got %d", n)
	}
	if sink.held["ArrowUp"] || sink.ups != 1 {
		t.Error("Expected KeyUp after timeout")
	}
	if n := rt.Expire(t0.Add(time.Hour)); n != 0 {
		t.Errorf("Expected tracker to forget released key, released %d", n)
	}
}

func TestReleaseTrackerRepeatsKeepHeld(t *testing.T) {
	sink := newRecordingSink()
	rt := NewReleaseTracker(sink)
	t0 := time.Unix(0, 0)

	rt.Press("ArrowDown", t0)
	now := t0.Add(400 * time.Millisecond)
	for i := 0; i < 10; i++ {
		rt.Press("ArrowDown", now)
		if n := rt.Expire(now.Add(30 * time.Millisecond)); n != 0 {
			t.Fatalf("Repeat %d: key released while repeating", i)
		}
		now = now.Add(40 * time.Millisecond)
	}
	if sink.downs != 1 {
		t.Errorf("Expected a single KeyDown across repeats, got %d", sink.downs)
	}

	// Repeating keys release on the shorter timeout
	if n := rt.Expire(now.Add(rt.repeat)); n != 1 {
		t.Errorf("Expected release after repeat timeout, got %d", n)
	}
}

func TestReleaseTrackerReleaseAll(t *testing.T) {
	sink := newRecordingSink()
	rt := NewReleaseTracker(sink)
	t0 := time.Unix(0, 0)

	rt.Press("ArrowUp", t0)
	rt.Press("ArrowDown", t0)
	rt.ReleaseAll()

	if sink.ups != 2 || sink.held["ArrowUp"] || sink.held["ArrowDown"] {
		t.Error("Expected both keys released")
	}
}
