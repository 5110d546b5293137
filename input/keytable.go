package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlR:  IntentReset,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'r': IntentReset,
			'R': IntentReset,
			'h': IntentRules,
			'H': IntentRules,
			'?': IntentRules,
			'm': IntentMode,
			'M': IntentMode,
			' ': IntentDraw,
			'f': IntentAuto,
			'F': IntentAuto,
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (IntentType, bool) {
	if ev.Key() == tcell.KeyRune {
		t, ok := kt.Runes[ev.Rune()]
		return t, ok
	}
	t, ok := kt.SpecialKeys[ev.Key()]
	return t, ok
}
