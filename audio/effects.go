package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/multipong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator producing duration worth of samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shapedTone(cfg *AudioConfig, t SoundType, freq float64, wave WaveType, dur, attack, release time.Duration) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(freq, dur, wave, rate)
	shaped := NewEnvelope(osc, dur, attack, release, rate)
	return newVolume(shaped, cfg.EffectVolumes[t]*cfg.MasterVolume)
}

// CreateHitSound generates a short sine blip with a fifth above for paddle reflections
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	fund := shapedTone(cfg, SoundHit, constants.HitSoundFreq, WaveSine,
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease)
	fifth := shapedTone(cfg, SoundHit, constants.HitSoundFreq*1.5, WaveSine,
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease)

	return beep.Mix(newVolume(fund, 0.7), newVolume(fifth, 0.3))
}

// CreateBounceSound generates a quiet square tick for edge reflections
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	return shapedTone(cfg, SoundBounce, constants.BounceSoundFreq, WaveSquare,
		constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease)
}

// CreateMissSound generates a low saw buzz followed by a lower step for a lost ball
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	half := constants.MissSoundDuration / 2
	first := shapedTone(cfg, SoundMiss, constants.MissSoundFreq, WaveSaw,
		half, constants.MissSoundAttack, constants.MissSoundAttack)
	second := shapedTone(cfg, SoundMiss, constants.MissSoundFreq*0.75, WaveSaw,
		half, constants.MissSoundAttack, constants.MissSoundRelease)

	return beep.Seq(first, second)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	default:
		return nil
	}
}
