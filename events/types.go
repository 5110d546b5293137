package events

// EventType represents the type of game event
type EventType int

const (
	// EventDealt signals a fresh shuffled deal
	// Trigger: Game construction, Reset, mode switch
	// Consumer: SoundManager, journal Recorder | Payload: *DealtPayload
	EventDealt EventType = iota

	// EventDrawn signals a stock click that moved cards into the show pile
	// Trigger: PointerDown on the stock with a non-empty stock
	// Consumer: SoundManager, journal Recorder | Payload: *DrawnPayload
	EventDrawn

	// EventRecycled signals the waste returning to the stock face-down
	// Trigger: PointerDown on an empty stock
	// Consumer: SoundManager, journal Recorder | Payload: *DrawnPayload
	EventRecycled

	// EventPicked signals the start of a drag
	// Trigger: PointerDown on a draggable card | Payload: *MovePayload (To unset)
	EventPicked

	// EventMoved signals a committed move
	// Trigger: PointerUp over an accepting drop zone
	// Consumer: SoundManager, journal Recorder | Payload: *MovePayload
	EventMoved

	// EventRejected signals a drop that no zone accepted
	// Trigger: PointerUp with no accepting zone
	// Consumer: SoundManager | Payload: *MovePayload (To unset)
	EventRejected

	// EventWon signals the first frame on which every foundation is complete
	// Trigger: Game.CheckWin | Consumer: SoundManager, journal Recorder | Payload: nil
	EventWon
)

var eventNames = map[EventType]string{
	EventDealt:    "Dealt",
	EventDrawn:    "Drawn",
	EventRecycled: "Recycled",
	EventPicked:   "Picked",
	EventMoved:    "Moved",
	EventRejected: "Rejected",
	EventWon:      "Won",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
}
