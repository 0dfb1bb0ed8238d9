package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/multipong/constants"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorWaveRanges verifies every wave stays within [-1, 1]
func TestOscillatorWaveRanges(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("Wave %d: Expected 100 samples ok, got %d %v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("Wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("Wave %d: sample %d channels differ", wave, i)
			}
		}
	}
}

// TestOscillatorSquare verifies square samples are exactly ±1
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(osc) {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

// TestOscillatorDuration verifies the stream ends after the requested length
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	got := len(drain(osc))
	if want := rate.N(10 * time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return (0, false), got (%d, %v)", n, ok)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Expected half volume mid-attack, got %f", samples[5][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Expected near-silent final sample, got %f", last)
	}
}

// TestSoundEffectsProduceAudio verifies every effect yields bounded, non-silent output
func TestSoundEffectsProduceAudio(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1.0

	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %v", st)
		}

		var peak float64
		for _, v := range drain(s) {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		if peak == 0 {
			t.Errorf("%v: Expected audible output", st)
		}
		if peak > 1.0 {
			t.Errorf("%v: Expected peak <= 1, got %f", st, peak)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestZeroVolumeIsSilent verifies muted effect volumes produce silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	for _, v := range drain(CreateBounceSound(cfg)) {
		if v[0] != 0 {
			t.Fatalf("Expected silence at zero volume, got %f", v[0])
		}
	}
}

func TestMissSoundLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	got := len(drain(CreateMissSound(cfg)))
	want := 2 * rate.N(constants.MissSoundDuration/2)
	if got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}
