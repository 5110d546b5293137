package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/core"
)

// Machine turns raw tcell events into intents. Terminals report the mouse as a
// button mask per event, so press and release are derived from mask transitions
type Machine struct {
	buttons  []Button
	keyTable *KeyTable

	pressed  bool // Left button currently held
	menuHold bool // Current press started on a menu button
}

// NewMachine creates a machine with the default menu
func NewMachine() *Machine {
	return &Machine{
		buttons:  MenuButtons(),
		keyTable: DefaultKeyTable(),
	}
}

// Buttons returns the menu the machine hit-tests against
func (m *Machine) Buttons() []Button {
	return m.buttons
}

// Reset forgets any held button
func (m *Machine) Reset() {
	m.pressed = false
	m.menuHold = false
}

// Process parses a terminal event and returns an Intent
// Returns nil when the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if t, ok := m.keyTable.Lookup(ev); ok && t != IntentNone {
		return &Intent{Type: t}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	pt := core.Point{X: x, Y: y}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.pressed:
		m.pressed = true
		if intent, ok := hitButton(m.buttons, pt); ok {
			m.menuHold = true
			return &Intent{Type: intent}
		}
		return &Intent{Type: IntentPointerDown, Point: pt}

	case down && m.pressed:
		if m.menuHold {
			return nil
		}
		return &Intent{Type: IntentPointerMove, Point: pt}

	case !down && m.pressed:
		m.pressed = false
		if m.menuHold {
			m.menuHold = false
			return nil
		}
		return &Intent{Type: IntentPointerUp, Point: pt}
	}

	// Motion without a held button
	return nil
}
