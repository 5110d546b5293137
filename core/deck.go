package core

import "math/rand"

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// NewDeck returns 52 distinct face-down cards, rank-major: every suit of the Ace,
// then every suit of the Two, and so on
func NewDeck() []*Card {
	deck := make([]*Card, 0, DeckSize)
	for rank := Ace; rank <= King; rank++ {
		for _, suit := range Suits {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Shuffle permutes the deck in place using the provided source
func Shuffle(deck []*Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
