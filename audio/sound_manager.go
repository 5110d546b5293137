package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/events"
)

// SoundManager plays short cues for game events through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *slog.Logger
}

// NewSoundManager creates a new sound manager; a nil config selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger replaces the discard logger
func (sm *SoundManager) SetLogger(l *slog.Logger) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if l != nil {
		sm.logger = l
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return ErrAudioDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "sample_rate", sm.config.SampleRate)
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; clearing the mixer silences every cue
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports whether playback is silenced
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue on the mixer; a no-op until Initialize succeeds
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		sm.logger.Warn("unknown sound", "type", int(st))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// HandleEvent maps a routed game event to its cue
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if st, ok := soundForEvent(ev.Type); ok {
		sm.Play(st)
	}
}

// EventTypes returns the events that have a cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDealt,
		events.EventDrawn,
		events.EventRecycled,
		events.EventMoved,
		events.EventRejected,
		events.EventWon,
	}
}

func soundForEvent(t events.EventType) (SoundType, bool) {
	switch t {
	case events.EventMoved:
		return SoundPlace, true
	case events.EventRejected:
		return SoundReject, true
	case events.EventDrawn:
		return SoundDraw, true
	case events.EventRecycled, events.EventDealt:
		return SoundShuffle, true
	case events.EventWon:
		return SoundWin, true
	}
	return 0, false
}
