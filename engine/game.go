package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/events"
)

// State is the pointer state of the controller
type State uint8

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// GameConfig holds the settings of a Game
type GameConfig struct {
	Mode   DrawMode
	Layout core.Layout
	Seed   int64 // 0 seeds from the clock
}

// Drag is the unit in flight between pointer-down and pointer-up. Cards is a copy;
// the cards stay in their source pile until the drop commits
type Drag struct {
	Selection Selection
	Cards     []*core.Card
	Anchor    core.Point // Current top-left of the first card
	Offset    core.Point // Anchor minus pointer at pick time
}

// Area returns the screen rectangle covered by the dragged unit
func (d *Drag) Area(l core.Layout) core.Area {
	return l.RunArea(d.Anchor, len(d.Cards))
}

// Center returns the centre of the first dragged card
func (d *Drag) Center(l core.Layout) core.Point {
	return d.Anchor.Add(core.Point{X: l.CardWidth / 2, Y: l.CardHeight / 2})
}

// Damage lists the pile regions changed since the renderer last took it
type Damage struct {
	Full          bool
	Stock         bool
	Show          bool
	Foundations   [constants.FoundationCount]bool
	Tableau       [constants.TableauCount]bool
	TableauExtent [constants.TableauCount]int // Largest card count a damaged column had
}

// Any reports whether anything needs repainting
func (d *Damage) Any() bool {
	if d.Full || d.Stock || d.Show {
		return true
	}
	for _, f := range d.Foundations {
		if f {
			return true
		}
	}
	for _, t := range d.Tableau {
		if t {
			return true
		}
	}
	return false
}

// Game is the controller: it owns the piles of the current deal and turns pointer
// input into draws and moves. Not safe for concurrent use; the frame loop is its
// only caller
type Game struct {
	id     string
	mode   DrawMode
	layout core.Layout
	rng    *rand.Rand
	queue  *events.EventQueue

	piles  *Piles
	state  State
	drag   *Drag
	damage Damage

	winReported bool // EventWon already pushed for this deal
}

// NewGame creates a controller and deals the first game. Events are pushed to queue
func NewGame(cfg GameConfig, queue *events.EventQueue) *Game {
	if !cfg.Mode.Valid() {
		cfg.Mode = DrawThree
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if queue == nil {
		queue = events.NewEventQueue()
	}

	g := &Game{
		mode:   cfg.Mode,
		layout: cfg.Layout,
		rng:    rand.New(rand.NewSource(seed)),
		queue:  queue,
	}
	g.Reset()
	return g
}

// ID returns the identifier of the current deal
func (g *Game) ID() string { return g.id }

// Mode returns the draw mode of the current deal
func (g *Game) Mode() DrawMode { return g.mode }

// Layout returns the board geometry
func (g *Game) Layout() core.Layout { return g.layout }

// Piles exposes the piles for rendering. Callers must not mutate them
func (g *Game) Piles() *Piles { return g.piles }

// State returns the pointer state
func (g *Game) State() State { return g.state }

// Drag returns the unit being dragged, nil when idle
func (g *Game) Drag() *Drag { return g.drag }

// Won reports whether every foundation holds a full suit
func (g *Game) Won() bool { return g.piles.Complete() }

// Reset regenerates and shuffles the deck and deals a new game in the current mode
func (g *Game) Reset() {
	deck := core.NewDeck()
	core.Shuffle(deck, g.rng)
	g.piles = Deal(deck)
	g.id = uuid.New().String()
	g.state = StateIdle
	g.drag = nil
	g.winReported = false
	g.damage = Damage{Full: true}

	Logger().Info("deal", "game", g.id, "mode", g.mode.String())
	g.queue.Push(events.GameEvent{
		Type:    events.EventDealt,
		Payload: &events.DealtPayload{GameID: g.id, DrawMode: int(g.mode)},
	})
}

// SetMode switches the draw mode and starts a new deal
func (g *Game) SetMode(mode DrawMode) {
	if !mode.Valid() {
		panic("engine: invalid draw mode")
	}
	g.mode = mode
	g.Reset()
}

// ToggleMode swaps draw-one and draw-three and starts a new deal
func (g *Game) ToggleMode() {
	g.SetMode(g.mode.Toggle())
}

// DrawStock runs one step of the draw cycle
func (g *Game) DrawStock() DrawResult {
	res := g.piles.Draw(g.mode)
	g.damage.Stock = true
	g.damage.Show = true

	if res.Duplicates > 0 {
		Logger().Warn("recycle dropped duplicate card references", "game", g.id, "count", res.Duplicates)
	}

	payload := &events.DrawnPayload{Count: res.Drawn, Stock: len(g.piles.Stock)}
	switch {
	case res.Recycled:
		g.queue.Push(events.GameEvent{Type: events.EventRecycled, Payload: payload})
	case res.Drawn > 0:
		g.queue.Push(events.GameEvent{Type: events.EventDrawn, Payload: payload})
	}
	return res
}

// PointerDown handles a primary-button press: a stock hit draws, a hit on a
// draggable card starts a drag
func (g *Game) PointerDown(pt core.Point) {
	if g.state == StateDragging {
		return
	}

	if g.layout.StockArea().Contains(pt) {
		g.DrawStock()
		return
	}

	sel, anchor, ok := g.piles.Pick(g.layout, pt)
	if !ok {
		return
	}

	g.drag = &Drag{
		Selection: sel,
		Cards:     append([]*core.Card(nil), g.piles.Cards(sel)...),
		Anchor:    anchor,
		Offset:    anchor.Sub(pt),
	}
	g.state = StateDragging

	g.queue.Push(events.GameEvent{
		Type:    events.EventPicked,
		Payload: &events.MovePayload{From: sel.From.Location(), Cards: len(g.drag.Cards)},
	})
}

// PointerMove repositions the dragged unit by the pick offset
func (g *Game) PointerMove(pt core.Point) {
	if g.state != StateDragging {
		return
	}
	g.drag.Anchor = pt.Add(g.drag.Offset)
}

// PointerUp ends a drag: the unit is committed to the zone under its centre when
// that zone accepts it. Otherwise nothing changes; the cards never left their
// source pile. Returns true when a move was committed
func (g *Game) PointerUp(pt core.Point) bool {
	if g.state != StateDragging {
		return false
	}
	d := g.drag
	d.Anchor = pt.Add(d.Offset)
	g.drag = nil
	g.state = StateIdle

	sel := d.Selection
	srcLen := len(g.piles.Pile(sel.From))
	dst, ok := g.piles.DropTarget(g.layout, d.Center(g.layout))
	dstLen := 0
	if ok {
		dstLen = len(g.piles.Pile(dst))
	}

	if !ok || !g.piles.Move(sel, dst) {
		g.markPile(sel.From, srcLen)
		g.queue.Push(events.GameEvent{
			Type:    events.EventRejected,
			Payload: &events.MovePayload{From: sel.From.Location(), Cards: len(d.Cards)},
		})
		return false
	}

	g.markPile(sel.From, srcLen)
	g.markPile(dst, dstLen)

	if err := g.piles.Check(g.mode); err != nil {
		Logger().Error("move left piles inconsistent", "game", g.id, "from", sel.From.String(), "to", dst.String(), "error", err)
	}

	g.queue.Push(events.GameEvent{
		Type:    events.EventMoved,
		Payload: &events.MovePayload{From: sel.From.Location(), To: dst.Location(), Cards: len(d.Cards)},
	})
	return true
}

// Move commits a selection to a destination without pointer geometry. Follows the
// same rules and side effects as a drop
func (g *Game) Move(sel Selection, dst PileRef) bool {
	srcLen := len(g.piles.Pile(sel.From))
	dstLen := len(g.piles.Pile(dst))
	n := len(g.piles.Pile(sel.From)) - sel.Start
	if !g.piles.Move(sel, dst) {
		return false
	}
	g.markPile(sel.From, srcLen)
	g.markPile(dst, dstLen)
	g.queue.Push(events.GameEvent{
		Type:    events.EventMoved,
		Payload: &events.MovePayload{From: sel.From.Location(), To: dst.Location(), Cards: n},
	})
	return true
}

// AutoFoundation sends one card to a foundation: the show top first, then column
// tops left to right, each onto the first foundation that accepts it. Returns false
// when nothing fits or a drag is in progress
func (g *Game) AutoFoundation() bool {
	if g.state == StateDragging {
		return false
	}

	cands := make([]Selection, 0, 1+constants.TableauCount)
	if n := len(g.piles.Show); n > 0 {
		cands = append(cands, Selection{From: PileRef{Kind: PileShow}, Start: n - 1})
	}
	for i, t := range g.piles.Tableau {
		if n := len(t); n > 0 {
			cands = append(cands, Selection{From: PileRef{Kind: PileTableau, Index: i}, Start: n - 1})
		}
	}

	for _, sel := range cands {
		for f := 0; f < constants.FoundationCount; f++ {
			if g.Move(sel, PileRef{Kind: PileFoundation, Index: f}) {
				return true
			}
		}
	}
	return false
}

// CheckWin evaluates the win condition. EventWon is pushed the first time a deal
// completes; taking a card back off a foundation does not rearm it
func (g *Game) CheckWin() bool {
	if !g.piles.Complete() {
		return false
	}
	if !g.winReported {
		g.winReported = true
		Logger().Info("won", "game", g.id)
		g.queue.Push(events.GameEvent{Type: events.EventWon})
	}
	return true
}

// Invalidate requests a full repaint
func (g *Game) Invalidate() {
	g.damage.Full = true
}

// TakeDamage returns the regions changed since the previous call and clears them
func (g *Game) TakeDamage() Damage {
	d := g.damage
	g.damage = Damage{}
	return d
}

func (g *Game) markPile(ref PileRef, prevLen int) {
	switch ref.Kind {
	case PileStock:
		g.damage.Stock = true
	case PileShow, PileWaste:
		g.damage.Show = true
	case PileFoundation:
		g.damage.Foundations[ref.Index] = true
	case PileTableau:
		g.damage.Tableau[ref.Index] = true
		g.damage.TableauExtent[ref.Index] = max(g.damage.TableauExtent[ref.Index], prevLen, len(g.piles.Tableau[ref.Index]))
	}
}
