package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nutfinder/internal/deck"
)

func TestParseHand(t *testing.T) {
	hand, err := ParseHand("2d,4d,4c,5d,6d")
	require.NoError(t, err)

	// Cards come back sorted descending regardless of input order.
	cards := hand.Cards()
	for i := 1; i < len(cards); i++ {
		assert.Positive(t, cards[i-1].Compare(cards[i]))
	}
	assert.Equal(t, deck.Six, cards[0].Rank)
}

func TestParseHandWrongCount(t *testing.T) {
	for input, want := range map[string]int{
		"2d,4d,4c,5d":       4,
		"2d,4d,4c,5d,6d,7d": 6,
		"2d":                1,
		"":                  1,
	} {
		_, err := ParseHand(input)
		var countErr *CountError
		require.ErrorAs(t, err, &countErr, "input %q", input)
		assert.Equal(t, want, countErr.Got, "input %q", input)
	}
}

func TestParseHandBadCard(t *testing.T) {
	_, err := ParseHand("2d,4d,1c,5d,6d")
	require.ErrorIs(t, err, deck.ErrInvalidRank)

	_, err = ParseHand("2d,4d,4x,5d,6d")
	require.ErrorIs(t, err, deck.ErrInvalidSuit)
}

func TestParseHandDuplicateCard(t *testing.T) {
	_, err := ParseHand("2d,4d,2d,5d,6d")
	require.ErrorIs(t, err, ErrDuplicateCard)
}
