package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/core"
)

// Painter is the drawing surface the board is rendered onto. Coordinates are in
// the units of the layout the painter was created with
type Painter interface {
	// Size returns the drawable width and height
	Size() (int, int)

	// FillArea paints a rectangle with a solid background color
	FillArea(area core.Area, color tcell.Color)

	// DrawCard paints a full card, face or back according to its orientation
	DrawCard(card *core.Card, at core.Point)

	// DrawCardTop paints only the visible top strip of a covered card
	DrawCardTop(card *core.Card, at core.Point)

	// DrawPlaceholder paints the outline of an empty pile slot
	DrawPlaceholder(at core.Point)

	// DrawText paints a single line of text
	DrawText(at core.Point, text string, style tcell.Style)

	// Show flushes pending changes
	Show()

	// Sync repaints the whole surface, used after a resize
	Sync()
}
