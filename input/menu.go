package input

import (
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
)

// Button is a clickable menu entry
type Button struct {
	Label  string
	Area   core.Area
	Intent IntentType
}

// MenuButtons returns the menu column to the right of the board, top to bottom
func MenuButtons() []Button {
	button := func(label string, y int, intent IntentType) Button {
		return Button{
			Label:  label,
			Area:   core.Area{X: constants.ButtonX, Y: y, Width: constants.ButtonWidth, Height: constants.ButtonHeight},
			Intent: intent,
		}
	}
	return []Button{
		button("RESET", constants.ButtonResetY, IntentReset),
		button("RULES", constants.ButtonRulesY, IntentRules),
		button("MODE", constants.ButtonModeY, IntentMode),
	}
}

// hitButton returns the intent of the button under pt
func hitButton(buttons []Button, pt core.Point) (IntentType, bool) {
	for _, b := range buttons {
		if b.Area.Contains(pt) {
			return b.Intent, true
		}
	}
	return IntentNone, false
}
