package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/multipong/status"
)

// frameTimeAlpha is the smoothing weight for the engine.frame_ms metric
const frameTimeAlpha = 0.1

// FrameStats records engine.ticks and the smoothed engine.frame_ms for any frame driver.
// A nil *FrameStats records nothing
type FrameStats struct {
	ticks   *atomic.Int64
	frameMs *status.AtomicFloat
}

// NewFrameStats caches the metric pointers; nil reg yields nil
func NewFrameStats(reg *status.Registry) *FrameStats {
	if reg == nil {
		return nil
	}
	return &FrameStats{
		ticks:   reg.Ints.Get("engine.ticks"),
		frameMs: reg.Floats.Get("engine.frame_ms"),
	}
}

// Record counts one frame that took d
func (s *FrameStats) Record(d time.Duration) {
	if s == nil {
		return
	}
	s.ticks.Add(1)
	s.frameMs.Smooth(float64(d.Microseconds())/1000, frameTimeAlpha)
}
