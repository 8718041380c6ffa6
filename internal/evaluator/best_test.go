package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nutfinder/internal/deck"
)

func mustParseCards(t *testing.T, tokens ...string) []deck.Card {
	t.Helper()
	cards := make([]deck.Card, len(tokens))
	for i, token := range tokens {
		cards[i] = deck.MustParseCard(token)
	}
	return cards
}

func TestBestHand(t *testing.T) {
	tests := []struct {
		name string
		pool []string
		want HandType
	}{
		{
			name: "straight flush hiding in seven cards",
			pool: []string{"2d", "3d", "4d", "5d", "6d", "ah", "ac"},
			want: HandType{Category: StraightFlush, Ranks: [2]deck.Rank{deck.Six}},
		},
		{
			name: "full house beats the flush",
			pool: []string{"kd", "kc", "kh", "2d", "2c", "9d", "4d"},
			want: HandType{Category: FullHouse, Ranks: [2]deck.Rank{deck.King, deck.Two}},
		},
		{
			name: "exactly five cards",
			pool: []string{"2d", "4c", "6h", "8s", "10d"},
			want: HandType{Category: HighCard},
		},
		{
			name: "picks the higher straight",
			pool: []string{"2d", "3c", "4h", "5s", "6d", "7c", "8h"},
			want: HandType{Category: Straight, Ranks: [2]deck.Rank{deck.Eight}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := mustParseCards(t, tt.pool...)
			best, err := BestHand(pool)
			require.NoError(t, err)
			assert.Equal(t, tt.want, best.Type())
		})
	}
}

func TestBestHandDominatesEverySubset(t *testing.T) {
	pool := mustParseCards(t, "ad", "kd", "qd", "2c", "2h", "7s", "7d")
	best, err := BestHand(pool)
	require.NoError(t, err)

	subsets := 0
	for comb := newCombinations(len(pool), 5); comb.next(); {
		var cards [5]deck.Card
		for i, j := range comb.indices() {
			cards[i] = pool[j]
		}
		hand := NewHand(cards)
		assert.GreaterOrEqual(t, best.Compare(hand), 0, "subset %v beat the best hand", hand)
		subsets++
	}
	assert.Equal(t, 21, subsets)
}

func TestBestHandPoolTooSmall(t *testing.T) {
	_, err := BestHand(mustParseCards(t, "ad", "kd", "qd", "jd"))
	require.ErrorIs(t, err, ErrPoolTooSmall)
}

func TestCombinations(t *testing.T) {
	comb := newCombinations(5, 3)

	var got [][]int
	for comb.next() {
		idx := make([]int, 3)
		copy(idx, comb.indices())
		got = append(got, idx)
	}

	require.Len(t, got, 10)
	assert.Equal(t, []int{0, 1, 2}, got[0])
	assert.Equal(t, []int{0, 1, 3}, got[1])
	assert.Equal(t, []int{2, 3, 4}, got[len(got)-1])

	// Lexicographic and strictly increasing throughout.
	for i := 1; i < len(got); i++ {
		less := false
		for j := range got[i] {
			if got[i-1][j] != got[i][j] {
				less = got[i-1][j] < got[i][j]
				break
			}
		}
		assert.True(t, less, "subset %v does not follow %v", got[i], got[i-1])
	}
}

func TestCombinationsDegenerate(t *testing.T) {
	assert.False(t, newCombinations(3, 5).next(), "k > n must yield nothing")
	assert.False(t, newCombinations(3, 0).next(), "k = 0 must yield nothing")
}
