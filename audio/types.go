package audio

import (
	"errors"

	"github.com/lixenwraith/multipong/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit    SoundType = iota // Ball reflected by a paddle
	SoundBounce                  // Ball reflected by the top or bottom edge
	SoundMiss                    // Ball left the surface and was relaunched
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundBounce:
		return "bounce"
	case SoundMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// ErrInvalidSampleRate is returned by Initialize for a non-positive sample rate
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundHit:    0.6,
			SoundBounce: 0.25,
			SoundMiss:   0.5,
		},
	}
}
