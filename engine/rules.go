package engine

import "github.com/lixenwraith/klondike/core"

// Selection is a draggable unit: the card at Start in pile From together with every
// card above it. Show and foundation selections are always a single top card.
type Selection struct {
	From  PileRef
	Start int
}

// Cards returns the selected cards, bottom first. The slice aliases the pile
func (p *Piles) Cards(sel Selection) []*core.Card {
	return p.Pile(sel.From)[sel.Start:]
}

// CanPlaceOnFoundation reports whether card may land on foundation i: an Ace on an
// empty foundation, or the next rank of the same suit
func (p *Piles) CanPlaceOnFoundation(card *core.Card, i int) bool {
	t := p.FoundationTop(i)
	if t == nil {
		return card.Rank() == core.Ace
	}
	return t.Rank() == card.Rank()-1 && t.Suit() == card.Suit()
}

// CanPlaceOnTableau reports whether card may land on column i: a King on an empty
// column, or one rank lower and of the opposite color than the column top
func (p *Piles) CanPlaceOnTableau(card *core.Card, i int) bool {
	t := p.TableauTop(i)
	if t == nil {
		return card.Rank() == core.King
	}
	return t.Rank() == card.Rank()+1 && core.OppositeColor(t, card)
}

// CanMove reports whether sel may be dropped on dst. A run is checked by its first
// card only; foundations take exactly one card, which for a tableau source must be
// the column top
func (p *Piles) CanMove(sel Selection, dst PileRef) bool {
	if sel.From == dst {
		return false
	}
	cards := p.Cards(sel)
	if len(cards) == 0 {
		return false
	}

	switch dst.Kind {
	case PileFoundation:
		return len(cards) == 1 && p.CanPlaceOnFoundation(cards[0], dst.Index)
	case PileTableau:
		return p.CanPlaceOnTableau(cards[0], dst.Index)
	}
	return false
}

// Move commits sel onto dst when legal: the cards are appended to dst and removed
// from the source, and a face-down card exposed on a tableau source is turned up.
// Returns false, leaving the piles untouched, when the move is illegal
func (p *Piles) Move(sel Selection, dst PileRef) bool {
	if !p.CanMove(sel, dst) {
		return false
	}

	src := p.Pile(sel.From)
	moved := append([]*core.Card(nil), src[sel.Start:]...)
	clear(src[sel.Start:])
	p.setPile(sel.From, src[:sel.Start])
	p.setPile(dst, append(p.Pile(dst), moved...))

	if sel.From.Kind == PileTableau {
		if t := p.TableauTop(sel.From.Index); t != nil && !t.FaceUp() {
			t.SetFaceUp(true)
		}
	}
	return true
}
