package journal

import "time"

// Outcome is how a deal ended
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeAbandoned Outcome = "abandoned"
)

// Entry records one finished deal
type Entry struct {
	ID        string
	Mode      int // Draw mode, 1 or 3
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   Outcome
	Moves     int // Committed moves
	Draws     int // Stock clicks that showed cards
	Recycles  int // Waste returned to the stock
}

// Duration returns the wall time spent on the deal
func (e *Entry) Duration() time.Duration {
	return e.EndedAt.Sub(e.StartedAt)
}

// Summary aggregates every stored entry
type Summary struct {
	Played int
	Won    int
}

// WinRate returns the fraction of deals won, or 0 with no history
func (s Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}
