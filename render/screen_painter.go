package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/core"
)

// Card glyphs
const (
	glyphTopLeft     = '┌'
	glyphTopRight    = '┐'
	glyphBottomLeft  = '└'
	glyphBottomRight = '┘'
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphBack        = '░'
	glyphPlaceholder = '·'
)

// ScreenPainter draws cards as box-drawing cells on a tcell screen
type ScreenPainter struct {
	screen tcell.Screen
	layout core.Layout
}

// NewScreenPainter creates a painter for the given screen and cell layout
func NewScreenPainter(screen tcell.Screen, l core.Layout) *ScreenPainter {
	return &ScreenPainter{screen: screen, layout: l}
}

func (p *ScreenPainter) Size() (int, int) {
	return p.screen.Size()
}

func (p *ScreenPainter) FillArea(area core.Area, color tcell.Color) {
	w, h := p.screen.Size()
	style := tcell.StyleDefault.Background(color)
	for y := max(area.Y, 0); y < min(area.Bottom(), h); y++ {
		for x := max(area.X, 0); x < min(area.Right(), w); x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (p *ScreenPainter) DrawCard(card *core.Card, at core.Point) {
	p.drawRows(card, at, p.layout.CardHeight)
}

func (p *ScreenPainter) DrawCardTop(card *core.Card, at core.Point) {
	p.drawRows(card, at, p.layout.TableauStep)
}

func (p *ScreenPainter) DrawPlaceholder(at core.Point) {
	style := tcell.StyleDefault.Background(RgbBoard).Foreground(RgbPlaceholder)
	rows := cardFrame(p.layout.CardWidth, p.layout.CardHeight, glyphPlaceholder)
	for y, row := range rows {
		for x, ch := range row {
			if ch == glyphPlaceholder {
				ch = ' '
			}
			p.set(at.X+x, at.Y+y, ch, style)
		}
	}
}

func (p *ScreenPainter) DrawText(at core.Point, text string, style tcell.Style) {
	x := at.X
	for _, ch := range text {
		p.set(x, at.Y, ch, style)
		x++
	}
}

func (p *ScreenPainter) Show() { p.screen.Show() }

func (p *ScreenPainter) Sync() { p.screen.Sync() }

// drawRows paints the first n rows of a card
func (p *ScreenPainter) drawRows(card *core.Card, at core.Point, n int) {
	var style tcell.Style
	if card.FaceUp() {
		style = tcell.StyleDefault.Background(RgbCardFace).Foreground(SuitColor(card))
	} else {
		style = tcell.StyleDefault.Background(RgbCardBack).Foreground(RgbCardBackPattern)
	}

	rows := CardGlyphs(card, p.layout.CardWidth, p.layout.CardHeight)
	for y := 0; y < n && y < len(rows); y++ {
		for x, ch := range rows[y] {
			p.set(at.X+x, at.Y+y, ch, style)
		}
	}
}

// set writes one cell, discarding anything off screen
func (p *ScreenPainter) set(x, y int, ch rune, style tcell.Style) {
	w, h := p.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	p.screen.SetContent(x, y, ch, nil, style)
}

// cardFrame builds a w x h box with the given interior fill
func cardFrame(w, h int, fill rune) [][]rune {
	rows := make([][]rune, h)
	for y := range rows {
		row := make([]rune, w)
		for x := range row {
			switch {
			case y == 0 && x == 0:
				row[x] = glyphTopLeft
			case y == 0 && x == w-1:
				row[x] = glyphTopRight
			case y == h-1 && x == 0:
				row[x] = glyphBottomLeft
			case y == h-1 && x == w-1:
				row[x] = glyphBottomRight
			case y == 0 || y == h-1:
				row[x] = glyphHorizontal
			case x == 0 || x == w-1:
				row[x] = glyphVertical
			default:
				row[x] = fill
			}
		}
		rows[y] = row
	}
	return rows
}

// CardGlyphs returns the cell runes of a card. A face-up card carries its label in
// the top border, so a one-row strip still identifies it, and again bottom right
func CardGlyphs(card *core.Card, w, h int) [][]rune {
	if !card.FaceUp() {
		return cardFrame(w, h, glyphBack)
	}

	rows := cardFrame(w, h, ' ')
	label := []rune(card.String())
	if len(label)+2 > w {
		return rows
	}
	copy(rows[0][1:], label)
	if h > 1 {
		copy(rows[h-1][w-1-len(label):], label)
	}
	if h > 2 {
		rows[h/2][w/2] = card.Suit().Symbol()
	}
	return rows
}
