package core

import "strconv"

// Suit identifies one of the four French suits
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck generation order
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Color is the derived red/black color of a suit
type Color uint8

const (
	Black Color = iota
	Red
)

// Rank bounds
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Color returns the suit color: clubs and spades are black, hearts and diamonds red
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Symbol returns the single-rune suit glyph
func (s Suit) Symbol() rune {
	switch s {
	case Clubs:
		return '♣'
	case Diamonds:
		return '♦'
	case Hearts:
		return '♥'
	case Spades:
		return '♠'
	}
	return '?'
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	}
	return "suit(" + strconv.Itoa(int(s)) + ")"
}

// Card is an immutable rank/suit pair with a mutable face orientation.
// Cards are always handled by pointer; the pointer is the card identity.
type Card struct {
	rank   int
	suit   Suit
	faceUp bool
}

// NewCard creates a face-down card. Panics on a rank outside 1..13
func NewCard(rank int, suit Suit) *Card {
	if rank < Ace || rank > King {
		panic("core: card rank out of range: " + strconv.Itoa(rank))
	}
	return &Card{rank: rank, suit: suit}
}

// Rank returns 1 (Ace) through 13 (King)
func (c *Card) Rank() int { return c.rank }

// Suit returns the card suit
func (c *Card) Suit() Suit { return c.suit }

// Color returns the derived suit color
func (c *Card) Color() Color { return c.suit.Color() }

// FaceUp reports the current orientation
func (c *Card) FaceUp() bool { return c.faceUp }

// SetFaceUp sets the orientation explicitly
func (c *Card) SetFaceUp(up bool) { c.faceUp = up }

// Flip toggles the orientation
func (c *Card) Flip() { c.faceUp = !c.faceUp }

// Label returns the rank label: A, 2..10, J, Q, K
func (c *Card) Label() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(c.rank)
}

// String renders rank label and suit glyph, e.g. "10♥"
func (c *Card) String() string {
	return c.Label() + string(c.suit.Symbol())
}

// OppositeColor reports whether two cards differ in color
func OppositeColor(a, b *Card) bool {
	return a.Color() != b.Color()
}
