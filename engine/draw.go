package engine

import "github.com/lixenwraith/klondike/core"

// DrawMode selects how many cards a stock click reveals. A mode is fixed for the
// lifetime of a deal; switching modes starts a new deal
type DrawMode int

const (
	DrawOne   DrawMode = 1
	DrawThree DrawMode = 3
)

// Capacity is the maximum size of the show pile
func (m DrawMode) Capacity() int { return int(m) }

// Valid reports whether m is one of the two supported modes
func (m DrawMode) Valid() bool { return m == DrawOne || m == DrawThree }

// Toggle returns the other mode
func (m DrawMode) Toggle() DrawMode {
	if m == DrawOne {
		return DrawThree
	}
	return DrawOne
}

func (m DrawMode) String() string {
	if m == DrawOne {
		return "draw-one"
	}
	return "draw-three"
}

// DrawResult summarizes one stock click
type DrawResult struct {
	Drawn      int  // Cards newly taken from the stock
	Recycled   bool // Waste returned to the stock
	Duplicates int  // Card references dropped by the recycle identity pass
}

// Draw runs one step of the stock/show/waste cycle for the given mode
func (p *Piles) Draw(mode DrawMode) DrawResult {
	if mode == DrawOne {
		return p.drawOne()
	}
	return p.drawThree()
}

func (p *Piles) drawThree() DrawResult {
	n := len(p.Stock)
	p.handoffShow()

	if n == 0 {
		return p.recycle()
	}

	show := make([]*core.Card, 0, DrawThree.Capacity())
	switch {
	case n >= 3:
		show = append(show, p.Stock[2], p.Stock[1], p.Stock[0])
		p.Stock = p.Stock[3:]
	case n == 2:
		if w := p.popWaste(); w != nil {
			show = append(show, w)
			p.borrowed++
		}
		show = append(show, p.Stock[1], p.Stock[0])
		p.Stock = nil
	case n == 1:
		for i := 0; i < 2; i++ {
			w := p.popWaste()
			if w == nil {
				break
			}
			show = append(show, w)
			p.borrowed++
		}
		show = append(show, p.Stock[0])
		p.Stock = nil
	}

	p.Show = faceUp(show)
	return DrawResult{Drawn: min(n, 3)}
}

func (p *Piles) drawOne() DrawResult {
	p.handoffShow()

	if len(p.Stock) == 0 {
		return p.recycle()
	}

	p.Show = faceUp([]*core.Card{p.Stock[0]})
	p.Stock = p.Stock[1:]
	return DrawResult{Drawn: 1}
}

// handoffShow moves the show pile onto the waste. Cards borrowed from the waste
// tail return first in their original order, then the stock-drawn cards in reverse
// display order so the deepest shown card ends up last
func (p *Piles) handoffShow() {
	for i := p.borrowed - 1; i >= 0; i-- {
		p.Waste = append(p.Waste, p.Show[i])
	}
	for i := len(p.Show) - 1; i >= p.borrowed; i-- {
		p.Waste = append(p.Waste, p.Show[i])
	}
	p.Show = nil
	p.borrowed = 0
}

func (p *Piles) popWaste() *core.Card {
	n := len(p.Waste)
	if n == 0 {
		return nil
	}
	c := p.Waste[n-1]
	p.Waste[n-1] = nil
	p.Waste = p.Waste[:n-1]
	return c
}

// recycle turns the waste face-down into the new stock. The identity pass drops any
// card reference seen twice; with pop/push transfers it never finds one, and a
// non-zero count is reported to the caller as a defect
func (p *Piles) recycle() DrawResult {
	stock, dups := dedupe(p.Waste)
	for _, c := range stock {
		c.SetFaceUp(false)
	}
	p.Stock = stock
	p.Waste = nil
	p.Show = nil
	p.borrowed = 0
	return DrawResult{Recycled: len(stock) > 0, Duplicates: dups}
}

func dedupe(cards []*core.Card) ([]*core.Card, int) {
	seen := make(map[*core.Card]struct{}, len(cards))
	out := make([]*core.Card, 0, len(cards))
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, len(cards) - len(out)
}

func faceUp(cards []*core.Card) []*core.Card {
	for _, c := range cards {
		c.SetFaceUp(true)
	}
	return cards
}
