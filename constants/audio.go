package constants

import "time"

// Audio Output
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// MasterVolume scales every effect (0.0-1.0)
	MasterVolume = 0.5
)

// Reject Sound Timing
const (
	RejectSoundDuration = 80 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 20 * time.Millisecond
)

// Place Sound Timing
const (
	PlaceSoundDuration = 90 * time.Millisecond
	PlaceSoundAttack   = 2 * time.Millisecond
	PlaceSoundRelease  = 70 * time.Millisecond
)

// Draw Sound Timing
const (
	DrawSoundDuration = 120 * time.Millisecond
	DrawSoundAttack   = 40 * time.Millisecond
	DrawSoundRelease  = 60 * time.Millisecond
)

// Shuffle Sound Timing
const (
	ShuffleSoundDuration = 300 * time.Millisecond
	ShuffleSoundAttack   = 150 * time.Millisecond
	ShuffleSoundRelease  = 150 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundNoteDuration = 150 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 100 * time.Millisecond
)
