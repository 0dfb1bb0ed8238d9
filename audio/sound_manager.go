package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/multipong/constants"
	"github.com/lixenwraith/multipong/engine"
	"github.com/lixenwraith/multipong/events"
)

// SoundManager plays game sound effects through the beep speaker.
// Every method is safe before Initialize and after Cleanup; playback is then skipped
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
	output     func(beep.Streamer) // Defaults to adding to the speaker mixer
}

// NewSoundManager creates a manager for cfg; nil uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	sm.output = sm.addToMixer
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker; repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.config.SampleRate <= 0 {
		return fmt.Errorf("%d: %w", sm.config.SampleRate, ErrInvalidSampleRate)
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// ToggleMute flips the mute state and reports whether sound is now muted
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether playback is suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Play queues soundType unless muted, uninitialized, or the same sound played within MinSoundGap.
// Returns whether the sound was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	if soundType < 0 || soundType >= soundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	// Several balls can collide in one tick
	now := sm.now()
	if last := sm.lastPlayed[soundType]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[soundType] = now

	streamer := GetSoundEffect(soundType, sm.config)
	if streamer == nil {
		return false
	}
	sm.output(streamer)
	return true
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventPaddleHit, events.EventWallBounce, events.EventBallMissed}
}

// HandleEvent maps game events to sounds
func (sm *SoundManager) HandleEvent(_ *engine.Game, ev events.GameEvent) {
	switch ev.Type {
	case events.EventPaddleHit:
		sm.Play(SoundHit)
	case events.EventWallBounce:
		sm.Play(SoundBounce)
	case events.EventBallMissed:
		sm.Play(SoundMiss)
	}
}
