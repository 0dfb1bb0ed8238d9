package constants

import "time"

// Audio defaults
const (
	DefaultSampleRate   = 48000
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap throttles repeats of the same sound (several balls can hit in one tick)
	MinSoundGap = 40 * time.Millisecond
)

// Paddle Hit Sound Timing
const (
	HitSoundDuration = 70 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 50 * time.Millisecond
	HitSoundFreq     = 660.0
)

// Wall Bounce Sound Timing
const (
	BounceSoundDuration = 30 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 20 * time.Millisecond
	BounceSoundFreq     = 330.0
)

// Miss Sound Timing
const (
	MissSoundDuration = 180 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 80 * time.Millisecond
	MissSoundFreq     = 110.0
)
