package deck

import (
	rand "math/rand/v2"
)

// Deck is an ordered pile of the 52 unique cards. Dealing takes cards off
// the end of the pile; dealt cards never return.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full shuffled deck using the provided random source.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: All(),
		rng:   rng,
	}
	d.shuffle()
	return d
}

// shuffle runs Fisher-Yates over the whole pile.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the last n cards of the deck. It reports false
// and leaves the deck untouched when fewer than n cards remain; there are
// no partial deals.
func (d *Deck) Deal(n int) ([]Card, bool) {
	if n < 0 || n > len(d.cards) {
		return nil, false
	}
	cut := len(d.cards) - n
	dealt := make([]Card, n)
	copy(dealt, d.cards[cut:])
	d.cards = d.cards[:cut]
	return dealt, true
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
