package audio

import (
	"errors"

	"github.com/lixenwraith/klondike/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPlace   SoundType = iota // Card committed to a pile
	SoundReject                   // Illegal drop
	SoundDraw                     // Stock click
	SoundShuffle                  // New deal or waste recycled
	SoundWin                      // All foundations complete
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPlace:
		return "place"
	case SoundReject:
		return "reject"
	case SoundDraw:
		return "draw"
	case SoundShuffle:
		return "shuffle"
	case SoundWin:
		return "win"
	}
	return "unknown"
}

// AudioConfig holds the playback settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.SampleRate,
		MasterVolume: constants.MasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundPlace:   0.8,
			SoundReject:  0.5,
			SoundDraw:    0.6,
			SoundShuffle: 0.5,
			SoundWin:     0.9,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
