package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/nutfinder/internal/deck"
)

// ErrPoolTooSmall reports a best-hand pool with fewer than five cards.
var ErrPoolTooSmall = errors.New("need at least five cards")

// BestHand returns the strongest five-card hand in the pool. Subsets are
// enumerated lexicographically over index positions and the maximum is
// replaced only on strict improvement, so ties resolve to the earliest
// subset in enumeration order.
func BestHand(pool []deck.Card) (Hand, error) {
	if len(pool) < 5 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrPoolTooSmall, len(pool))
	}

	var best Hand
	first := true
	for comb := newCombinations(len(pool), 5); comb.next(); {
		var cards [5]deck.Card
		for i, j := range comb.indices() {
			cards[i] = pool[j]
		}
		hand := NewHand(cards)
		if first || hand.Compare(best) > 0 {
			best = hand
			first = false
		}
	}
	return best, nil
}
