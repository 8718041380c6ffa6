package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/nutfinder/internal/deck"
)

// ErrDuplicateCard reports the same card appearing twice in a hand.
var ErrDuplicateCard = errors.New("duplicate card")

// CountError reports a hand string with the wrong number of cards.
type CountError struct {
	Got int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("wrong number of cards: got %d, want 5", e.Got)
}

// ParseHand parses a comma-separated list of exactly five card tokens,
// e.g. "Ah,Kh,Qh,Jh,10h".
func ParseHand(s string) (Hand, error) {
	tokens := strings.Split(s, ",")
	if len(tokens) != 5 {
		return Hand{}, &CountError{Got: len(tokens)}
	}

	var cards [5]deck.Card
	for i, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		for _, prev := range cards[:i] {
			if prev == card {
				return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
		}
		cards[i] = card
	}
	return NewHand(cards), nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	hand, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return hand
}
