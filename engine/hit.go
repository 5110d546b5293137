package engine

import (
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
)

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Pick resolves a pointer-down location to a draggable selection and the anchor
// (top-left) of its first card. Priority: frontmost show card, foundation tops left
// to right, then the tableau. Within a column the top card answers on its whole
// face, a covered face-up card on its visible strip.
func (p *Piles) Pick(l core.Layout, pt core.Point) (Selection, core.Point, bool) {
	if n := len(p.Show); n > 0 {
		anchor := l.ShowCardAt(n - 1)
		if l.CardArea(anchor).Contains(pt) {
			return Selection{From: PileRef{Kind: PileShow}, Start: n - 1}, anchor, true
		}
	}

	for i := range p.Foundations {
		n := len(p.Foundations[i])
		if n > 0 && l.FoundationArea(i).Contains(pt) {
			return Selection{From: PileRef{Kind: PileFoundation, Index: i}, Start: n - 1}, l.FoundationOrigin(i), true
		}
	}

	dx := pt.X - l.TableauLeft()
	col := floorDiv(dx, l.Pitch())
	if col < 0 || col >= constants.TableauCount || dx-col*l.Pitch() >= l.CardWidth {
		return Selection{}, core.Point{}, false
	}

	column := p.Tableau[col]
	n := len(column)
	if n == 0 {
		return Selection{}, core.Point{}, false
	}

	topAnchor := l.TableauCardAt(col, n-1)
	if rel := pt.Y - topAnchor.Y; rel >= 0 && rel < l.CardHeight {
		return Selection{From: PileRef{Kind: PileTableau, Index: col}, Start: n - 1}, topAnchor, true
	}

	idx := floorDiv(pt.Y-l.TableauTop(), l.TableauStep)
	if idx >= 0 && idx < n-1 && column[idx].FaceUp() {
		return Selection{From: PileRef{Kind: PileTableau, Index: col}, Start: idx}, l.TableauCardAt(col, idx), true
	}

	return Selection{}, core.Point{}, false
}

// DropTarget maps the centre of a dragged card to the zone it was released over.
// Foundation zones are tested before tableau zones; a tableau zone only answers
// when the centre sits within one card height below the column's last card.
// The zone is a candidate only: legality is decided by CanMove
func (p *Piles) DropTarget(l core.Layout, center core.Point) (PileRef, bool) {
	fa := l.FoundationsArea()
	foundations := core.Area{X: fa.X, Y: fa.Y, Width: l.Pitch() * constants.FoundationCount, Height: fa.Height}
	if foundations.ContainsClosed(center) {
		i := min(floorDiv(center.X-fa.X, l.Pitch()), constants.FoundationCount-1)
		return PileRef{Kind: PileFoundation, Index: i}, true
	}

	tx, ty := l.TableauLeft(), l.TableauTop()
	col := max(0, min(floorDiv(center.X-tx, l.Pitch()), constants.TableauCount-1))
	n := len(p.Tableau[col])
	// Rows n .. n+strips-1 below the column origin, in strips of TableauStep cells
	zone := core.Area{
		X:      tx,
		Y:      ty + n*l.TableauStep,
		Width:  l.Pitch() * constants.TableauCount,
		Height: l.Strips()*l.TableauStep - 1,
	}
	if zone.ContainsClosed(center) {
		return PileRef{Kind: PileTableau, Index: col}, true
	}

	return PileRef{}, false
}
