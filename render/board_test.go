package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/engine"
	"github.com/lixenwraith/klondike/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPainter struct {
	mock.Mock
}

func (m *mockPainter) Size() (int, int) {
	args := m.Called()
	return args.Int(0), args.Int(1)
}

func (m *mockPainter) FillArea(area core.Area, color tcell.Color) { m.Called(area, color) }
func (m *mockPainter) DrawCard(card *core.Card, at core.Point)    { m.Called(card, at) }
func (m *mockPainter) DrawCardTop(card *core.Card, at core.Point) { m.Called(card, at) }
func (m *mockPainter) DrawPlaceholder(at core.Point)              { m.Called(at) }
func (m *mockPainter) DrawText(at core.Point, text string, style tcell.Style) {
	m.Called(at, text, style)
}
func (m *mockPainter) Show() { m.Called() }
func (m *mockPainter) Sync() { m.Called() }

func newMockPainter() *mockPainter {
	m := &mockPainter{}
	m.On("Size").Return(1000, 800)
	m.On("FillArea", mock.Anything, mock.Anything).Return()
	m.On("DrawCard", mock.Anything, mock.Anything).Return()
	m.On("DrawCardTop", mock.Anything, mock.Anything).Return()
	m.On("DrawPlaceholder", mock.Anything).Return()
	m.On("DrawText", mock.Anything, mock.Anything, mock.Anything).Return()
	return m
}

// calls returns the recorded calls of one method in order
func calls(m *mockPainter, method string) []mock.Call {
	var out []mock.Call
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// TestApplyColumnStrips verifies strips are drawn before the full last card
func TestApplyColumnStrips(t *testing.T) {
	l := core.ClassicLayout()
	m := newMockPainter()
	r := NewBoardRenderer(m, l)
	piles := dealOrdered()
	column := piles.Tableau[3]

	r.Apply(RepaintPlan{Columns: []ColumnRepaint{{Column: 3, From: 1, To: 2}}}, piles)

	tops := calls(m, "DrawCardTop")
	require.Len(t, tops, 2)
	assert.Same(t, column[1], tops[0].Arguments.Get(0))
	assert.Equal(t, core.Point{X: 375, Y: 225}, tops[0].Arguments.Get(1))
	assert.Same(t, column[2], tops[1].Arguments.Get(0))

	full := calls(m, "DrawCard")
	require.Len(t, full, 1)
	assert.Same(t, column[3], full[0].Arguments.Get(0))
	assert.Equal(t, core.Point{X: 375, Y: 285}, full[0].Arguments.Get(1))
	m.AssertNotCalled(t, "FillArea", mock.Anything, mock.Anything)
}

// TestApplyLastCardOnce verifies a strip range ending on the last card draws it whole only
func TestApplyLastCardOnce(t *testing.T) {
	m := newMockPainter()
	r := NewBoardRenderer(m, core.ClassicLayout())
	piles := dealOrdered()

	r.Apply(RepaintPlan{Columns: []ColumnRepaint{{Column: 3, From: 3, To: 3}}}, piles)
	assert.Empty(t, calls(m, "DrawCardTop"))
	assert.Len(t, calls(m, "DrawCard"), 1)

	m = newMockPainter()
	r = NewBoardRenderer(m, core.ClassicLayout())
	r.Apply(RepaintPlan{Columns: []ColumnRepaint{{Column: 0, From: 0, To: -1, Empty: true}}}, piles)
	m.AssertCalled(t, "DrawPlaceholder", core.Point{X: 30, Y: 195})
	assert.Empty(t, calls(m, "DrawCard"))
}

// TestApplyTopRow verifies stock, show fan and foundation slots
func TestApplyTopRow(t *testing.T) {
	m := newMockPainter()
	r := NewBoardRenderer(m, core.ClassicLayout())
	piles := dealOrdered()
	piles.Draw(engine.DrawThree)
	ace := core.NewCard(core.Ace, core.Clubs)
	piles.Foundations[1] = []*core.Card{ace}

	r.Apply(RepaintPlan{Stock: true, Show: true, Foundations: true}, piles)

	m.AssertCalled(t, "DrawCard", piles.Stock[0], core.Point{X: 30, Y: 15})
	for i, c := range piles.Show {
		m.AssertCalled(t, "DrawCard", c, core.Point{X: 145 + 25*i, Y: 15})
	}
	m.AssertCalled(t, "DrawCard", ace, core.Point{X: 490, Y: 15})
	m.AssertCalled(t, "DrawPlaceholder", core.Point{X: 375, Y: 15})
	m.AssertNumberOfCalls(t, "DrawPlaceholder", 3)
}

// TestRenderClearsPreviousDragRect verifies the drag rectangle of the last frame is restored
func TestRenderClearsPreviousDragRect(t *testing.T) {
	l := core.ClassicLayout()
	m := newMockPainter()
	r := NewBoardRenderer(m, l)
	queue := events.NewEventQueue()
	g := engine.NewGame(engine.GameConfig{Mode: engine.DrawThree, Layout: l, Seed: 5}, queue)

	// First frame is a full repaint
	r.Render(g)
	m.AssertCalled(t, "FillArea", core.Area{Width: 1000, Height: 800}, RgbBoard)

	// Pick the top card of column 6 and drag it
	top := l.TableauCardAt(6, 6)
	g.PointerDown(top.Add(core.Point{X: 10, Y: 10}))
	require.NotNil(t, g.Drag())
	g.PointerMove(core.Point{X: 500, Y: 600})

	m.Calls = nil
	r.Render(g)
	dragArea := g.Drag().Area(l)
	assert.Equal(t, core.Area{X: 490, Y: 590, Width: 100, Height: 150}, dragArea)
	m.AssertCalled(t, "DrawCard", g.Drag().Cards[0], core.Point{X: 490, Y: 590})
	m.AssertNotCalled(t, "FillArea", core.Area{Width: 1000, Height: 800}, RgbBoard)

	// Next frame clears where the card was
	g.PointerMove(core.Point{X: 520, Y: 600})
	m.Calls = nil
	r.Render(g)
	m.AssertCalled(t, "FillArea", dragArea, RgbBoard)
	m.AssertCalled(t, "DrawCard", g.Drag().Cards[0], core.Point{X: 510, Y: 590})
}

// TestRenderDamagedTopRow verifies a stock click clears and repaints stock and show
func TestRenderDamagedTopRow(t *testing.T) {
	l := core.ClassicLayout()
	m := newMockPainter()
	r := NewBoardRenderer(m, l)
	g := engine.NewGame(engine.GameConfig{Mode: engine.DrawThree, Layout: l, Seed: 5}, nil)
	r.Render(g)

	g.PointerDown(l.StockOrigin())
	m.Calls = nil
	r.Render(g)

	m.AssertCalled(t, "FillArea", l.StockArea(), RgbBoard)
	m.AssertCalled(t, "FillArea", l.ShowArea(), RgbBoard)
	assert.Len(t, calls(m, "DrawCard"), 4, "stock back and three show cards")
}

// TestFrameStats verifies the one-second FPS window
func TestFrameStats(t *testing.T) {
	var s FrameStats
	start := time.Unix(100, 0)
	for i := 0; i < 60; i++ {
		s.Record(start.Add(time.Duration(i)*time.Second/60), 2*time.Millisecond)
	}
	assert.Zero(t, s.FPS(), "window not complete")

	s.Record(start.Add(time.Second), 3*time.Millisecond)
	assert.Equal(t, 61, s.FPS())
	assert.Equal(t, 3*time.Millisecond, s.FrameTime())
}

// TestCardGlyphs verifies the label sits in the top border so a strip identifies the card
func TestCardGlyphs(t *testing.T) {
	c := core.NewCard(10, core.Hearts)
	c.SetFaceUp(true)
	rows := CardGlyphs(c, 9, 5)

	assert.Equal(t, "┌10♥────┐", string(rows[0]))
	assert.Equal(t, "│   ♥   │", string(rows[2]))
	assert.Equal(t, "└────10♥┘", string(rows[4]))

	c.SetFaceUp(false)
	rows = CardGlyphs(c, 9, 5)
	assert.Equal(t, "│░░░░░░░│", string(rows[1]))
}
