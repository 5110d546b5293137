package engine

import (
	"testing"

	"github.com/lixenwraith/klondike/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDrawThreeFullStock verifies the first three stock cards are shown, frontmost last
func TestDrawThreeFullStock(t *testing.T) {
	p, _ := dealOrdered()
	s := append([]*core.Card(nil), p.Stock...)

	res := p.Draw(DrawThree)
	assert.Equal(t, DrawResult{Drawn: 3}, res)
	assert.Equal(t, []*core.Card{s[2], s[1], s[0]}, p.Show)
	assert.Len(t, p.Stock, 21)
	for _, c := range p.Show {
		assert.True(t, c.FaceUp())
	}

	// The previous show goes to the waste deepest-shown first
	p.Draw(DrawThree)
	assert.Equal(t, labels([]*core.Card{s[0], s[1], s[2]}), labels(p.Waste))
	assert.Equal(t, labels([]*core.Card{s[5], s[4], s[3]}), labels(p.Show))
	assert.NoError(t, p.Check(DrawThree))
}

// TestDrawThreeTwoLeft verifies one waste card is borrowed and returned in place
func TestDrawThreeTwoLeft(t *testing.T) {
	p, _ := dealOrdered()
	shiftStockToWaste(p, 1)
	for i := 0; i < 7; i++ {
		p.Draw(DrawThree)
	}
	require.Len(t, p.Stock, 2)
	st := append([]*core.Card(nil), p.Stock...)

	// The handoff puts the previous show on the waste before the borrow
	prevShow := append([]*core.Card(nil), p.Show...)
	wasteBefore := len(p.Waste) + len(prevShow)
	borrowed := prevShow[0]

	res := p.Draw(DrawThree)
	assert.Equal(t, 2, res.Drawn)
	assert.Equal(t, []*core.Card{borrowed, st[1], st[0]}, p.Show)
	assert.Empty(t, p.Stock)
	assert.Len(t, p.Waste, wasteBefore-1)
	assert.Equal(t, 1, p.borrowed)
	require.NoError(t, p.Check(DrawThree))

	waste := append([]*core.Card(nil), p.Waste...)
	res = p.Draw(DrawThree)
	assert.True(t, res.Recycled)
	assert.Zero(t, res.Duplicates)
	assert.Empty(t, p.Show)
	assert.Empty(t, p.Waste)
	require.Len(t, p.Stock, 24)
	assert.Equal(t, labels(waste), labels(p.Stock[:21]))
	assert.Equal(t, labels([]*core.Card{borrowed, st[0], st[1]}), labels(p.Stock[21:]))
	for _, c := range p.Stock {
		assert.False(t, c.FaceUp())
	}
	assert.NoError(t, p.Check(DrawThree))
}

// TestDrawThreeOneLeft verifies two waste cards are borrowed and keep their waste order
func TestDrawThreeOneLeft(t *testing.T) {
	p, _ := dealOrdered()
	shiftStockToWaste(p, 2)
	for i := 0; i < 7; i++ {
		p.Draw(DrawThree)
	}
	require.Len(t, p.Stock, 1)
	last := p.Stock[0]

	p.handoffShow()
	n := len(p.Waste)
	w1, w2 := p.Waste[n-1], p.Waste[n-2]
	rest := append([]*core.Card(nil), p.Waste[:n-2]...)

	res := p.Draw(DrawThree)
	assert.Equal(t, 1, res.Drawn)
	assert.Equal(t, []*core.Card{w1, w2, last}, p.Show)
	assert.Equal(t, 2, p.borrowed)
	require.NoError(t, p.Check(DrawThree))

	res = p.Draw(DrawThree)
	require.True(t, res.Recycled)
	assert.Equal(t, labels(append(rest, w2, w1, last)), labels(p.Stock))
	assert.NoError(t, p.Check(DrawThree))
}

// TestDrawThreeShortWithoutWaste verifies the shortest combination when the waste is empty
func TestDrawThreeShortWithoutWaste(t *testing.T) {
	a := card(9, core.Clubs, false)
	b := card(10, core.Clubs, false)

	p := &Piles{Stock: []*core.Card{a}}
	p.Draw(DrawThree)
	assert.Equal(t, []*core.Card{a}, p.Show)
	assert.Zero(t, p.borrowed)

	p = &Piles{Stock: []*core.Card{a, b}}
	p.Draw(DrawThree)
	assert.Equal(t, []*core.Card{b, a}, p.Show)
	assert.True(t, a.FaceUp())
}

// TestDrawThreeCycling verifies a full pass through the stock restores it unchanged
func TestDrawThreeCycling(t *testing.T) {
	p, _ := dealOrdered()
	original := labels(p.Stock)

	for pass := 0; pass < 3; pass++ {
		for i := 0; i < len(original)/3; i++ {
			res := p.Draw(DrawThree)
			require.Equal(t, 3, res.Drawn)
			require.NoError(t, p.Check(DrawThree))
		}
		assert.Empty(t, p.Stock)

		res := p.Draw(DrawThree)
		require.True(t, res.Recycled, "pass %d", pass)
		assert.Zero(t, res.Duplicates)
		assert.Empty(t, p.Show)
		assert.Empty(t, p.Waste)
		assert.Equal(t, original, labels(p.Stock))
		require.NoError(t, p.Check(DrawThree))
	}
}

// TestDrawOne verifies single-card draws and the recycle
func TestDrawOne(t *testing.T) {
	p, _ := dealOrdered()
	original := labels(p.Stock)
	s := append([]*core.Card(nil), p.Stock...)

	res := p.Draw(DrawOne)
	assert.Equal(t, DrawResult{Drawn: 1}, res)
	assert.Equal(t, []*core.Card{s[0]}, p.Show)
	assert.True(t, s[0].FaceUp())

	p.Draw(DrawOne)
	assert.Equal(t, []*core.Card{s[0]}, p.Waste)
	assert.Equal(t, []*core.Card{s[1]}, p.Show)

	for len(p.Stock) > 0 {
		p.Draw(DrawOne)
		require.NoError(t, p.Check(DrawOne))
	}
	assert.Len(t, p.Waste, 23)

	res = p.Draw(DrawOne)
	assert.True(t, res.Recycled)
	assert.Equal(t, original, labels(p.Stock))
	assert.Empty(t, p.Show)
	assert.Empty(t, p.Waste)
	assert.NoError(t, p.Check(DrawOne))
}

// TestDrawEmptyBoard verifies drawing with nothing anywhere is a no-op
func TestDrawEmptyBoard(t *testing.T) {
	for _, mode := range []DrawMode{DrawOne, DrawThree} {
		p := &Piles{}
		assert.Equal(t, DrawResult{}, p.Draw(mode), mode.String())
		assert.Empty(t, p.Stock)
	}
}

// TestDrawAfterShowPicked verifies a partially consumed show hands off cleanly
func TestDrawAfterShowPicked(t *testing.T) {
	p, _ := dealOrdered()
	shiftStockToWaste(p, 2)
	for i := 0; i < 8; i++ {
		p.Draw(DrawThree)
	}
	require.Equal(t, 2, p.borrowed)

	w1 := p.Show[0]

	// Taking the frontmost card leaves both borrowed cards
	p.setPile(PileRef{Kind: PileShow}, p.Show[:2])
	assert.Equal(t, 2, p.borrowed)

	p.setPile(PileRef{Kind: PileShow}, p.Show[:1])
	assert.Equal(t, 1, p.borrowed)

	p.handoffShow()
	assert.Same(t, w1, p.Waste[len(p.Waste)-1])
	assert.Zero(t, p.borrowed)
}

// TestDedupe verifies the recycle identity pass
func TestDedupe(t *testing.T) {
	a := card(1, core.Clubs, false)
	b := card(2, core.Clubs, false)

	out, dups := dedupe([]*core.Card{a, b, a, b, a})
	assert.Equal(t, []*core.Card{a, b}, out)
	assert.Equal(t, 3, dups)
}

// TestDrawModeToggle verifies the two modes swap
func TestDrawModeToggle(t *testing.T) {
	assert.Equal(t, DrawThree, DrawOne.Toggle())
	assert.Equal(t, DrawOne, DrawThree.Toggle())
	assert.True(t, DrawOne.Valid())
	assert.False(t, DrawMode(2).Valid())
	assert.Equal(t, "draw-one", DrawOne.String())
	assert.Equal(t, 3, DrawThree.Capacity())
}
