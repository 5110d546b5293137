package render

import (
	"math"

	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/engine"
)

// ColumnRepaint describes the draws that restore one tableau column.
// Strips From..To (inclusive) are repainted as top strips; the last card of the
// column is always repainted in full afterwards so it covers them
type ColumnRepaint struct {
	Column int
	From   int
	To     int  // Below From when no strip is needed
	Empty  bool // Column holds no card; repaint the placeholder
}

// StripCount returns the number of top strips to repaint
func (c ColumnRepaint) StripCount() int {
	if c.To < c.From {
		return 0
	}
	return c.To - c.From + 1
}

// RepaintPlan is the set of pile draws needed after a rectangle was cleared
type RepaintPlan struct {
	Stock       bool
	Show        bool
	Foundations bool
	Columns     []ColumnRepaint
}

// Empty reports whether the plan schedules nothing
func (p RepaintPlan) Empty() bool {
	return !p.Stock && !p.Show && !p.Foundations && len(p.Columns) == 0
}

// DamageTracker maps a screen rectangle vacated by a moving card to the pile draws
// that restore what was underneath
type DamageTracker struct {
	layout core.Layout
}

// NewDamageTracker creates a tracker over the given geometry
func NewDamageTracker(l core.Layout) *DamageTracker {
	return &DamageTracker{layout: l}
}

// Plan computes the repaint plan for rect against the current piles.
// Stock, show and foundation regions are scheduled whole on any overlap. Tableau
// columns are resolved one by one, each from the rectangle's vertical extent
func (t *DamageTracker) Plan(rect core.Area, piles *engine.Piles) RepaintPlan {
	l := t.layout
	plan := RepaintPlan{
		Stock:       rect.Overlaps(l.StockArea()),
		Show:        rect.Overlaps(l.ShowArea()),
		Foundations: rect.Overlaps(l.FoundationsArea()),
	}

	if rect.Bottom() < l.TableauTop() {
		return plan
	}

	for col := 0; col < constants.TableauCount; col++ {
		x := l.TableauOrigin(col).X
		if !core.SpanOverlaps(x, x+l.Pitch(), rect.X, rect.Right()) {
			continue
		}
		plan.Columns = append(plan.Columns, t.resolveColumn(col, rect, len(piles.Tableau[col])))
	}
	return plan
}

// resolveColumn converts the rectangle's vertical extent into a strip range of a
// column holding n cards. Counters are fractional strip positions relative to the
// tableau top
func (t *DamageTracker) resolveColumn(col int, rect core.Area, n int) ColumnRepaint {
	cr := ColumnRepaint{Column: col, From: 0, To: -1}
	if n == 0 {
		cr.Empty = true
		return cr
	}

	l := t.layout
	step := float64(l.TableauStep)
	top := float64(rect.Y-l.TableauTop()) / step
	bottom := float64(rect.Bottom()-l.TableauTop()) / step

	switch {
	case top > float64(n+l.Strips()-1) || bottom < 0:
		// Rectangle entirely below the last card or above the column
	case top >= float64(n-1):
		cr.From, cr.To = n-1, n-1
	default:
		cr.From = clampIndex(int(math.Floor(top)), n)
		cr.To = clampIndex(int(math.Floor(bottom)), n)
	}
	return cr
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
