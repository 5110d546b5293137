package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/klondike/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf, so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreatePlaceSound generates a short wooden tap for a committed move
func CreatePlaceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(523.25, constants.PlaceSoundDuration, WaveSine, rate) // C5
	click := NewOscillator(0, constants.PlaceSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(
		NewEnvelope(tone, constants.PlaceSoundDuration, constants.PlaceSoundAttack, constants.PlaceSoundRelease, rate),
		newVolume(NewEnvelope(click, constants.PlaceSoundDuration, constants.PlaceSoundAttack, constants.PlaceSoundRelease/4, rate), 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundPlace))
}

// CreateRejectSound generates a low buzz for an illegal drop
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.RejectSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.RejectSoundDuration, constants.RejectSoundAttack, constants.RejectSoundRelease, rate)
	return newVolume(shaped, effectVolume(cfg, SoundReject))
}

// CreateDrawSound generates a soft swish for cards sliding off the stock
func CreateDrawSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.DrawSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.DrawSoundDuration, constants.DrawSoundAttack, constants.DrawSoundRelease, rate)
	return newVolume(shaped, effectVolume(cfg, SoundDraw))
}

// CreateShuffleSound generates three riffle bursts back to back
func CreateShuffleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	burst := func() beep.Streamer {
		noise := NewOscillator(0, constants.ShuffleSoundDuration, WaveNoise, rate)
		return NewEnvelope(noise, constants.ShuffleSoundDuration, constants.ShuffleSoundAttack, constants.ShuffleSoundRelease, rate)
	}
	sequence := beep.Seq(burst(), burst(), burst())
	return newVolume(sequence, effectVolume(cfg, SoundShuffle))
}

// CreateWinSound generates a rising major arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	streams := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		osc := NewOscillator(freq, constants.WinSoundNoteDuration, WaveSquare, rate)
		streams[i] = NewEnvelope(osc, constants.WinSoundNoteDuration, constants.WinSoundAttack, constants.WinSoundRelease, rate)
	}
	return newVolume(beep.Seq(streams...), effectVolume(cfg, SoundWin))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPlace:
		return CreatePlaceSound(cfg)
	case SoundReject:
		return CreateRejectSound(cfg)
	case SoundDraw:
		return CreateDrawSound(cfg)
	case SoundShuffle:
		return CreateShuffleSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
