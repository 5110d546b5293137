package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lixenwraith/klondike/engine"
	"github.com/lixenwraith/klondike/events"
)

// Recorder builds journal entries from routed game events. A deal is open from its
// Dealt event until it is won, replaced by the next deal, or the recorder is closed
type Recorder struct {
	repo    Repository
	clock   engine.Clock
	current *Entry
	logger  *slog.Logger
}

// NewRecorder creates a recorder writing finished deals to repo
func NewRecorder(repo Repository, clock engine.Clock) *Recorder {
	return &Recorder{
		repo:   repo,
		clock:  clock,
		logger: engine.NopLogger(),
	}
}

// SetLogger replaces the nop logger; nil restores it
func (r *Recorder) SetLogger(l *slog.Logger) {
	if l == nil {
		l = engine.NopLogger()
	}
	r.logger = l
}

// Current returns a copy of the open entry, or nil between deals
func (r *Recorder) Current() *Entry {
	if r.current == nil {
		return nil
	}
	cp := *r.current
	return &cp
}

// HandleEvent updates the open entry
func (r *Recorder) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventDealt:
		r.finish(OutcomeAbandoned)
		r.open(ev.Payload)
	case events.EventMoved:
		if r.current != nil {
			r.current.Moves++
		}
	case events.EventDrawn:
		if r.current != nil {
			r.current.Draws++
		}
	case events.EventRecycled:
		if r.current != nil {
			r.current.Recycles++
		}
	case events.EventWon:
		r.finish(OutcomeWon)
	}
}

// EventTypes returns the events the recorder counts
func (r *Recorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDealt,
		events.EventMoved,
		events.EventDrawn,
		events.EventRecycled,
		events.EventWon,
	}
}

// Close records the open deal as abandoned
func (r *Recorder) Close() {
	r.finish(OutcomeAbandoned)
}

func (r *Recorder) open(payload any) {
	e := &Entry{StartedAt: r.clock.Now()}
	if p, ok := payload.(*events.DealtPayload); ok {
		e.ID = p.GameID
		e.Mode = p.DrawMode
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.current = e
}

func (r *Recorder) finish(outcome Outcome) {
	if r.current == nil {
		return
	}
	e := r.current
	r.current = nil

	e.EndedAt = r.clock.Now()
	e.Outcome = outcome
	if err := r.repo.Save(context.Background(), e); err != nil {
		r.logger.Error("journal save failed", "id", e.ID, "error", err)
		return
	}
	r.logger.Info("deal recorded", "id", e.ID, "outcome", string(outcome), "moves", e.Moves)
}
