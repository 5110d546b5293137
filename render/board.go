package render

import (
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/engine"
)

// BoardRenderer paints the piles of a game incrementally. A full repaint happens
// only on a new deal, a resize or when an overlay is removed; otherwise each frame
// clears the rectangle the dragged unit occupied on the previous frame, repaints
// what the damage tracker finds underneath, repaints regions the game marked as
// changed, then draws the dragged unit at its current position
type BoardRenderer struct {
	painter Painter
	layout  core.Layout
	tracker *DamageTracker

	dragRect core.Area
	dragging bool
}

// NewBoardRenderer creates a renderer drawing onto p
func NewBoardRenderer(p Painter, l core.Layout) *BoardRenderer {
	return &BoardRenderer{
		painter: p,
		layout:  l,
		tracker: NewDamageTracker(l),
	}
}

// Render paints one frame of the board
func (r *BoardRenderer) Render(game *engine.Game) {
	damage := game.TakeDamage()
	piles := game.Piles()

	if damage.Full {
		r.DrawAll(piles)
	} else {
		if r.dragging {
			r.RepaintRect(r.dragRect, piles)
		}
		r.repaintDamage(damage, piles)
	}
	r.dragging = false

	if d := game.Drag(); d != nil {
		r.drawRun(d.Cards, d.Anchor)
		r.dragRect = d.Area(r.layout)
		r.dragging = true
	}
}

// DrawAll clears the surface and paints every pile
func (r *BoardRenderer) DrawAll(piles *engine.Piles) {
	w, h := r.painter.Size()
	r.painter.FillArea(core.Area{Width: w, Height: h}, RgbBoard)

	r.drawStock(piles)
	r.drawShow(piles)
	for i := 0; i < constants.FoundationCount; i++ {
		r.drawFoundation(piles, i)
	}
	for col := 0; col < constants.TableauCount; col++ {
		r.drawColumn(piles, col)
	}
}

// RepaintRect clears rect to the board color and restores the piles beneath it
func (r *BoardRenderer) RepaintRect(rect core.Area, piles *engine.Piles) {
	r.painter.FillArea(rect, RgbBoard)
	r.Apply(r.tracker.Plan(rect, piles), piles)
}

// Apply executes a repaint plan. The caller has already cleared the region
func (r *BoardRenderer) Apply(plan RepaintPlan, piles *engine.Piles) {
	if plan.Stock {
		r.drawStock(piles)
	}
	if plan.Show {
		r.drawShow(piles)
	}
	if plan.Foundations {
		for i := 0; i < constants.FoundationCount; i++ {
			r.drawFoundation(piles, i)
		}
	}

	for _, cr := range plan.Columns {
		if cr.Empty {
			r.painter.DrawPlaceholder(r.layout.TableauOrigin(cr.Column))
			continue
		}
		column := piles.Tableau[cr.Column]
		last := len(column) - 1
		for i := cr.From; i <= cr.To && i < last; i++ {
			r.painter.DrawCardTop(column[i], r.layout.TableauCardAt(cr.Column, i))
		}
		r.painter.DrawCard(column[last], r.layout.TableauCardAt(cr.Column, last))
	}
}

// repaintDamage redraws the regions the game changed since the last frame
func (r *BoardRenderer) repaintDamage(d engine.Damage, piles *engine.Piles) {
	l := r.layout
	if d.Stock {
		r.painter.FillArea(l.StockArea(), RgbBoard)
		r.drawStock(piles)
	}
	if d.Show {
		r.painter.FillArea(l.ShowArea(), RgbBoard)
		r.drawShow(piles)
	}
	for i, changed := range d.Foundations {
		if changed {
			r.painter.FillArea(l.FoundationArea(i), RgbBoard)
			r.drawFoundation(piles, i)
		}
	}
	for col, changed := range d.Tableau {
		if changed {
			r.painter.FillArea(l.TableauColumnArea(col, max(d.TableauExtent[col], 1)), RgbBoard)
			r.drawColumn(piles, col)
		}
	}
}

func (r *BoardRenderer) drawStock(piles *engine.Piles) {
	at := r.layout.StockOrigin()
	if len(piles.Stock) == 0 {
		r.painter.DrawPlaceholder(at)
		return
	}
	r.painter.DrawCard(piles.Stock[0], at)
}

// drawShow paints the show fan, deepest card first
func (r *BoardRenderer) drawShow(piles *engine.Piles) {
	if len(piles.Show) == 0 {
		r.painter.DrawPlaceholder(r.layout.ShowOrigin())
		return
	}
	for i, c := range piles.Show {
		r.painter.DrawCard(c, r.layout.ShowCardAt(i))
	}
}

func (r *BoardRenderer) drawFoundation(piles *engine.Piles, i int) {
	at := r.layout.FoundationOrigin(i)
	if t := piles.FoundationTop(i); t != nil {
		r.painter.DrawCard(t, at)
		return
	}
	r.painter.DrawPlaceholder(at)
}

// drawColumn paints a whole column: covered cards as strips, the last card in full
func (r *BoardRenderer) drawColumn(piles *engine.Piles, col int) {
	column := piles.Tableau[col]
	if len(column) == 0 {
		r.painter.DrawPlaceholder(r.layout.TableauOrigin(col))
		return
	}
	r.Apply(RepaintPlan{Columns: []ColumnRepaint{{Column: col, From: 0, To: len(column) - 1}}}, piles)
}

// drawRun paints a dragged unit stacked with the tableau step
func (r *BoardRenderer) drawRun(cards []*core.Card, at core.Point) {
	for i, c := range cards {
		pos := at.Add(core.Point{Y: r.layout.TableauStep * i})
		if i < len(cards)-1 {
			r.painter.DrawCardTop(c, pos)
		} else {
			r.painter.DrawCard(c, pos)
		}
	}
}
