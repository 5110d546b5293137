package input

import "github.com/lixenwraith/klondike/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Menu actions
	IntentReset // r, RESET button
	IntentRules // h, ?, RULES button
	IntentMode  // m, MODE button
	IntentDraw  // Space
	IntentAuto  // f, send one card to a foundation

	// Pointer
	IntentPointerDown // Left button press on the board
	IntentPointerMove // Motion with the left button held
	IntentPointerUp   // Left button release
)

// Intent is a parsed input event. Point is set for pointer intents only
type Intent struct {
	Type  IntentType
	Point core.Point
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentReset:
		return "reset"
	case IntentRules:
		return "rules"
	case IntentMode:
		return "mode"
	case IntentDraw:
		return "draw"
	case IntentAuto:
		return "auto"
	case IntentPointerDown:
		return "pointer-down"
	case IntentPointerMove:
		return "pointer-move"
	case IntentPointerUp:
		return "pointer-up"
	}
	return "none"
}
