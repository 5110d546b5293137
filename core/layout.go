package core

import "github.com/lixenwraith/klondike/constants"

// Layout is the static board geometry. All pile rectangles, hit zones and repaint
// ranges derive from these fields, so hit-testing and damage tracking agree as long
// as both are fed the same Layout.
type Layout struct {
	CardWidth   int // Full card width
	CardHeight  int // Full card height
	MarginX     int // Left margin of the board
	MarginY     int // Top margin of the board
	Gap         int // Space between neighbouring piles
	ShowStep    int // Horizontal offset between fanned show cards
	TableauStep int // Vertical offset between stacked tableau cards (visible strip)
}

// TerminalLayout returns the cell-based geometry used by the terminal renderer
func TerminalLayout() Layout {
	return Layout{
		CardWidth:   constants.CardWidth,
		CardHeight:  constants.CardHeight,
		MarginX:     constants.BoardMarginX,
		MarginY:     constants.BoardMarginY,
		Gap:         constants.PileGap,
		ShowStep:    constants.ShowStep,
		TableauStep: constants.TableauStep,
	}
}

// ClassicLayout returns the 100x150 pixel geometry of the desktop board
func ClassicLayout() Layout {
	return Layout{
		CardWidth:   100,
		CardHeight:  150,
		MarginX:     30,
		MarginY:     15,
		Gap:         15,
		ShowStep:    25,
		TableauStep: 30,
	}
}

// Pitch is the horizontal distance between the left edges of neighbouring piles
func (l Layout) Pitch() int { return l.CardWidth + l.Gap }

// Strips is the number of tableau steps covered by one full card
func (l Layout) Strips() int { return l.CardHeight / l.TableauStep }

// CardArea returns the full card rectangle anchored at p
func (l Layout) CardArea(p Point) Area {
	return Area{X: p.X, Y: p.Y, Width: l.CardWidth, Height: l.CardHeight}
}

// RunArea returns the rectangle covered by n cards stacked with the tableau step
func (l Layout) RunArea(p Point, n int) Area {
	a := l.CardArea(p)
	if n > 1 {
		a.Height += l.TableauStep * (n - 1)
	}
	return a
}

// StockOrigin is the stock anchor
func (l Layout) StockOrigin() Point { return Point{X: l.MarginX, Y: l.MarginY} }

// StockArea is the stock rectangle
func (l Layout) StockArea() Area { return l.CardArea(l.StockOrigin()) }

// ShowOrigin is the anchor of the deepest show card
func (l Layout) ShowOrigin() Point { return Point{X: l.MarginX + l.Pitch(), Y: l.MarginY} }

// ShowCardAt is the anchor of the i-th show card
func (l Layout) ShowCardAt(i int) Point {
	return l.ShowOrigin().Add(Point{X: l.ShowStep * i})
}

// ShowArea covers a full three-card fan
func (l Layout) ShowArea() Area {
	a := l.CardArea(l.ShowOrigin())
	a.Width += 2 * l.ShowStep
	return a
}

// FoundationOrigin is the anchor of foundation i
func (l Layout) FoundationOrigin(i int) Point {
	return Point{X: l.MarginX + l.Pitch()*(3+i), Y: l.MarginY}
}

// FoundationArea is the card slot of foundation i
func (l Layout) FoundationArea(i int) Area { return l.CardArea(l.FoundationOrigin(i)) }

// FoundationsArea spans all four foundation slots
func (l Layout) FoundationsArea() Area {
	o := l.FoundationOrigin(0)
	return Area{X: o.X, Y: o.Y, Width: l.CardWidth*4 + l.Gap*3, Height: l.CardHeight}
}

// TableauTop is the y coordinate of the first tableau card
func (l Layout) TableauTop() int { return l.MarginY + l.CardHeight + 2*l.Gap }

// TableauLeft is the x coordinate of the first tableau column
func (l Layout) TableauLeft() int { return l.MarginX }

// TableauOrigin is the anchor of column col's first card
func (l Layout) TableauOrigin(col int) Point {
	return Point{X: l.TableauLeft() + l.Pitch()*col, Y: l.TableauTop()}
}

// TableauCardAt is the anchor of the card at index idx in column col
func (l Layout) TableauCardAt(col, idx int) Point {
	return l.TableauOrigin(col).Add(Point{Y: l.TableauStep * idx})
}

// TableauColumnArea covers a column holding n cards (at least one card slot)
func (l Layout) TableauColumnArea(col, n int) Area {
	return l.RunArea(l.TableauOrigin(col), n)
}
