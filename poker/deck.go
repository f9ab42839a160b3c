package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyDeck is returned when more cards are requested than remain.
var ErrEmptyDeck = errors.New("not enough cards in deck")

// Deck is an ordered stack of cards. Draws come off the front.
type Deck struct {
	cards []Card
}

// FullDeck returns the 52 cards in suit-major order (spades first).
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range AllSuits {
		for rank := range uint8(13) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewDeck creates a shuffled 52-card deck. The rng is required so that
// deals are reproducible from a seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("poker: NewDeck requires an rng")
	}
	d := &Deck{cards: FullDeck()}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// NewStackedDeck returns a deck that deals cards in the given order.
func NewStackedDeck(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Draw removes n cards from the front of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw %d cards: negative count", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, remaining %d", ErrEmptyDeck, n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in deal order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
