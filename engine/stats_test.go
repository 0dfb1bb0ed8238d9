package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/multipong/status"
)

func TestFrameStatsRecord(t *testing.T) {
	reg := status.NewRegistry()
	s := NewFrameStats(reg)

	s.Record(4 * time.Millisecond)
	if n := reg.Ints.Get("engine.ticks").Load(); n != 1 {
		t.Errorf("Expected engine.ticks 1, got %d", n)
	}
	if ms := reg.Floats.Get("engine.frame_ms").Get(); ms != 4 {
		t.Errorf("Expected first sample stored as-is, got %v", ms)
	}

	s.Record(14 * time.Millisecond)
	if ms := reg.Floats.Get("engine.frame_ms").Get(); ms < 4.99 || ms > 5.01 {
		t.Errorf("Expected smoothed frame_ms 5, got %v", ms)
	}
	if n := reg.Ints.Get("engine.ticks").Load(); n != 2 {
		t.Errorf("Expected engine.ticks 2, got %d", n)
	}
}

func TestFrameStatsNilRegistry(t *testing.T) {
	s := NewFrameStats(nil)
	if s != nil {
		t.Fatal("Expected nil stats without a registry")
	}
	s.Record(time.Millisecond) // must not panic
}
