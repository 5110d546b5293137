package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lixenwraith/klondike/constants"
	"github.com/lixenwraith/klondike/core"
	"github.com/lixenwraith/klondike/events"
)

// ErrInvariant is wrapped by every pile consistency violation
var ErrInvariant = errors.New("pile invariant violated")

// PileKind identifies a pile group
type PileKind uint8

const (
	PileNone PileKind = iota
	PileStock
	PileWaste
	PileShow
	PileFoundation
	PileTableau
)

func (k PileKind) String() string {
	switch k {
	case PileStock:
		return "stock"
	case PileWaste:
		return "waste"
	case PileShow:
		return "show"
	case PileFoundation:
		return "foundation"
	case PileTableau:
		return "tableau"
	}
	return "none"
}

// PileRef names one pile. Index is only meaningful for foundations and tableau columns
type PileRef struct {
	Kind  PileKind
	Index int
}

func (r PileRef) String() string {
	if r.Kind == PileFoundation || r.Kind == PileTableau {
		return r.Kind.String() + "[" + strconv.Itoa(r.Index) + "]"
	}
	return r.Kind.String()
}

// Location converts the reference to the event payload form
func (r PileRef) Location() events.PileLocation {
	return events.PileLocation{Kind: r.Kind.String(), Index: r.Index}
}

// Piles holds the five pile groups of one deal. Every slice is ordered bottom to
// top: the last element is the topmost (frontmost) card.
// A card lives in exactly one slice at a time; transfers pop from the source and
// push onto the destination.
type Piles struct {
	Stock       []*core.Card // Index 0 is the next card to reveal
	Waste       []*core.Card
	Show        []*core.Card
	Foundations [constants.FoundationCount][]*core.Card
	Tableau     [constants.TableauCount][]*core.Card

	// borrowed counts the leading Show cards that were taken from the waste tail
	// by a short draw-three; they go back to the waste first on the next handoff
	borrowed int
}

// Deal splits a 52-card deck: the first 28 cards fill the tableau so that column i
// receives i+1 cards, each new card going under the ones already dealt to that
// column; the last card of every column is turned face up. The remaining 24 cards
// form the stock face-down in deck order.
func Deal(deck []*core.Card) *Piles {
	if len(deck) != core.DeckSize {
		panic("engine: deal needs a full deck, got " + strconv.Itoa(len(deck)))
	}

	p := &Piles{}
	for _, c := range deck {
		c.SetFaceUp(false)
	}

	idx := 0
	for col := 0; col < constants.TableauCount; col++ {
		column := make([]*core.Card, col+1)
		for i := col; i >= 0; i-- {
			column[i] = deck[idx]
			idx++
		}
		column[col].SetFaceUp(true)
		p.Tableau[col] = column
	}

	p.Stock = append([]*core.Card(nil), deck[idx:]...)
	return p
}

// mustFoundation panics on an out-of-range foundation index
func mustFoundation(i int) {
	if i < 0 || i >= constants.FoundationCount {
		panic("engine: foundation index out of range: " + strconv.Itoa(i))
	}
}

// mustTableau panics on an out-of-range tableau index
func mustTableau(i int) {
	if i < 0 || i >= constants.TableauCount {
		panic("engine: tableau index out of range: " + strconv.Itoa(i))
	}
}

func top(pile []*core.Card) *core.Card {
	if len(pile) == 0 {
		return nil
	}
	return pile[len(pile)-1]
}

// FoundationTop returns the top card of foundation i, nil when empty
func (p *Piles) FoundationTop(i int) *core.Card {
	mustFoundation(i)
	return top(p.Foundations[i])
}

// TableauTop returns the top card of column i, nil when empty
func (p *Piles) TableauTop(i int) *core.Card {
	mustTableau(i)
	return top(p.Tableau[i])
}

// ShowTop returns the frontmost show card, nil when empty
func (p *Piles) ShowTop() *core.Card {
	return top(p.Show)
}

// Pile returns the slice behind ref. The slice must not be modified by the caller
func (p *Piles) Pile(ref PileRef) []*core.Card {
	switch ref.Kind {
	case PileStock:
		return p.Stock
	case PileWaste:
		return p.Waste
	case PileShow:
		return p.Show
	case PileFoundation:
		mustFoundation(ref.Index)
		return p.Foundations[ref.Index]
	case PileTableau:
		mustTableau(ref.Index)
		return p.Tableau[ref.Index]
	}
	panic("engine: unknown pile " + ref.String())
}

func (p *Piles) setPile(ref PileRef, cards []*core.Card) {
	switch ref.Kind {
	case PileStock:
		p.Stock = cards
	case PileWaste:
		p.Waste = cards
	case PileShow:
		p.Show = cards
		if p.borrowed > len(cards) {
			p.borrowed = len(cards)
		}
	case PileFoundation:
		p.Foundations[ref.Index] = cards
	case PileTableau:
		p.Tableau[ref.Index] = cards
	default:
		panic("engine: unknown pile " + ref.String())
	}
}

// Count returns the number of cards across all piles
func (p *Piles) Count() int {
	n := len(p.Stock) + len(p.Waste) + len(p.Show)
	for _, f := range p.Foundations {
		n += len(f)
	}
	for _, t := range p.Tableau {
		n += len(t)
	}
	return n
}

// Complete reports whether every foundation holds a full suit
func (p *Piles) Complete() bool {
	for _, f := range p.Foundations {
		if len(f) != constants.SuitLength {
			return false
		}
	}
	return true
}

// Check verifies the pile invariants: exact 52-card partition without duplicates,
// foundations ascending from Ace in one suit, tableau face-down cards confined to a
// prefix under a face-up top, stock face-down, show face-up within capacity
func (p *Piles) Check(mode DrawMode) error {
	seen := make(map[*core.Card]string, core.DeckSize)
	visit := func(name string, pile []*core.Card) error {
		for _, c := range pile {
			if c == nil {
				return fmt.Errorf("%w: nil card in %s", ErrInvariant, name)
			}
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("%w: %s present in %s and %s", ErrInvariant, c, prev, name)
			}
			seen[c] = name
		}
		return nil
	}

	if err := visit("stock", p.Stock); err != nil {
		return err
	}
	if err := visit("waste", p.Waste); err != nil {
		return err
	}
	if err := visit("show", p.Show); err != nil {
		return err
	}
	for i, f := range p.Foundations {
		if err := visit(PileRef{Kind: PileFoundation, Index: i}.String(), f); err != nil {
			return err
		}
	}
	for i, t := range p.Tableau {
		if err := visit(PileRef{Kind: PileTableau, Index: i}.String(), t); err != nil {
			return err
		}
	}
	if len(seen) != core.DeckSize {
		return fmt.Errorf("%w: %d cards on the board, want %d", ErrInvariant, len(seen), core.DeckSize)
	}

	for i, f := range p.Foundations {
		for pos, c := range f {
			if c.Rank() != pos+1 || c.Suit() != f[0].Suit() {
				return fmt.Errorf("%w: foundation[%d] position %d holds %s", ErrInvariant, i, pos, c)
			}
		}
	}

	for i, t := range p.Tableau {
		if len(t) == 0 {
			continue
		}
		if !t[len(t)-1].FaceUp() {
			return fmt.Errorf("%w: tableau[%d] top card %s is face down", ErrInvariant, i, t[len(t)-1])
		}
		faceUp := false
		for pos, c := range t {
			if c.FaceUp() {
				faceUp = true
			} else if faceUp {
				return fmt.Errorf("%w: tableau[%d] face-down card at %d above a face-up card", ErrInvariant, i, pos)
			}
		}
	}

	for _, c := range p.Stock {
		if c.FaceUp() {
			return fmt.Errorf("%w: stock card %s is face up", ErrInvariant, c)
		}
	}
	for _, c := range p.Show {
		if !c.FaceUp() {
			return fmt.Errorf("%w: show card %s is face down", ErrInvariant, c)
		}
	}
	if len(p.Show) > mode.Capacity() {
		return fmt.Errorf("%w: show holds %d cards, capacity %d", ErrInvariant, len(p.Show), mode.Capacity())
	}

	return nil
}
