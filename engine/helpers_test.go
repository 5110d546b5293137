package engine

import (
	"github.com/lixenwraith/klondike/core"
)

func card(rank int, suit core.Suit, up bool) *core.Card {
	c := core.NewCard(rank, suit)
	c.SetFaceUp(up)
	return c
}

// labels renders a pile as card strings; every card of a deck has a unique label
func labels(cards []*core.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// dealOrdered deals an unshuffled deck
func dealOrdered() (*Piles, []*core.Card) {
	deck := core.NewDeck()
	p := Deal(deck)
	return p, deck
}

// shiftStockToWaste moves the first n stock cards onto the waste face-down
func shiftStockToWaste(p *Piles, n int) {
	p.Waste = append(p.Waste, p.Stock[:n]...)
	p.Stock = append([]*core.Card(nil), p.Stock[n:]...)
}

// completeFoundations returns piles with every suit stacked Ace to King
func completeFoundations() *Piles {
	p := &Piles{}
	for i, s := range core.Suits {
		for r := core.Ace; r <= core.King; r++ {
			p.Foundations[i] = append(p.Foundations[i], card(r, s, true))
		}
	}
	return p
}
