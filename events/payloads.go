package events

// DealtPayload identifies a new deal
type DealtPayload struct {
	GameID   string
	DrawMode int // 1 or 3
}

// DrawnPayload reports the stock/show transfer of one stock click
type DrawnPayload struct {
	Count int // Cards newly shown (0 on recycle)
	Stock int // Stock size after the click
}

// PileLocation names a pile as a kind plus index, as plain data so that consumers
// need not import the engine
type PileLocation struct {
	Kind  string // "show", "foundation", "tableau"
	Index int
}

// MovePayload describes a pick, a committed move or a rejected drop
type MovePayload struct {
	From  PileLocation
	To    PileLocation
	Cards int
}
