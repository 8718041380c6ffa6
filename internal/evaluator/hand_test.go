package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nutfinder/internal/deck"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want HandType
	}{
		{
			name: "high card",
			hand: "Kd,10c,7h,4s,2d",
			want: HandType{Category: HighCard},
		},
		{
			name: "pair",
			hand: "2d,4d,4c,5d,6d",
			want: HandType{Category: Pair, Ranks: [2]deck.Rank{deck.Four}},
		},
		{
			name: "pair of aces blocks the wheel",
			hand: "2d,4d,3d,ad,ac",
			want: HandType{Category: Pair, Ranks: [2]deck.Rank{deck.Ace}},
		},
		{
			name: "two pair",
			hand: "2d,4d,4c,5d,5s",
			want: HandType{Category: TwoPair, Ranks: [2]deck.Rank{deck.Five, deck.Four}},
		},
		{
			name: "three of a kind",
			hand: "4h,4d,4c,5d,as",
			want: HandType{Category: ThreeOfAKind, Ranks: [2]deck.Rank{deck.Four}},
		},
		{
			name: "straight",
			hand: "2d,4d,3d,5d,6c",
			want: HandType{Category: Straight, Ranks: [2]deck.Rank{deck.Six}},
		},
		{
			name: "ace high straight",
			hand: "10d,jc,qh,ks,ad",
			want: HandType{Category: Straight, Ranks: [2]deck.Rank{deck.Ace}},
		},
		{
			name: "wheel counts five high",
			hand: "ad,5c,4h,3s,2d",
			want: HandType{Category: Straight, Ranks: [2]deck.Rank{deck.Five}},
		},
		{
			name: "flush",
			hand: "2d,8d,3d,kd,ad",
			want: HandType{Category: Flush},
		},
		{
			name: "no wraparound straight through ace",
			hand: "2d,4d,3d,kd,ad",
			want: HandType{Category: Flush},
		},
		{
			name: "full house",
			hand: "4h,4d,4c,5d,5s",
			want: HandType{Category: FullHouse, Ranks: [2]deck.Rank{deck.Four, deck.Five}},
		},
		{
			name: "four of a kind",
			hand: "9h,9d,9c,9s,2d",
			want: HandType{Category: FourOfAKind, Ranks: [2]deck.Rank{deck.Nine}},
		},
		{
			name: "straight flush",
			hand: "2d,4d,3d,5d,6d",
			want: HandType{Category: StraightFlush, Ranks: [2]deck.Rank{deck.Six}},
		},
		{
			name: "wheel straight flush is five high",
			hand: "ad,5d,4d,3d,2d",
			want: HandType{Category: StraightFlush, Ranks: [2]deck.Rank{deck.Five}},
		},
		{
			name: "royal straight flush is ace high",
			hand: "ad,qd,jd,kd,10d",
			want: HandType{Category: StraightFlush, Ranks: [2]deck.Rank{deck.Ace}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := MustParseHand(tt.hand)
			assert.Equal(t, tt.want, hand.Type())
		})
	}
}

func TestClassifyOrderIndependent(t *testing.T) {
	base := MustParseHand("Kd,10c,7h,4s,2d")
	cards := base.Cards()

	// Rotate and swap the same five cards; classification and ordering
	// must not notice.
	permutations := [][5]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 4, 0, 3, 1},
		{1, 0, 4, 2, 3},
	}
	for _, perm := range permutations {
		var shuffled [5]deck.Card
		for i, j := range perm {
			shuffled[i] = cards[j]
		}
		hand := NewHand(shuffled)
		assert.Equal(t, base.Type(), hand.Type())
		assert.Zero(t, base.Compare(hand))
	}
}

func TestCategoryDominatesRanks(t *testing.T) {
	// Each hand must beat the next one down even though the weaker
	// category holds much higher ranks.
	ladder := []string{
		"2d,3d,4d,5d,6d", // straight flush, six high
		"2d,2c,2h,2s,5d", // quad twos
		"3d,3c,3h,2d,2c", // full house, threes over twos
		"2d,4d,7d,9d,kd", // king high flush
		"10d,jc,qh,ks,ad", // ace high straight
		"2d,2c,2h,ah,kd", // trip twos with ace king
		"2d,2c,3h,3s,ad", // two pair, threes and twos
		"2d,2c,ah,ks,qd", // pair of twos
		"ad,kc,qh,js,9d", // ace high
	}

	hands := make([]Hand, len(ladder))
	for i, s := range ladder {
		hands[i] = MustParseHand(s)
	}
	for i := 0; i < len(hands)-1; i++ {
		assert.Positive(t, hands[i].Compare(hands[i+1]),
			"%s (%s) must beat %s (%s)", hands[i], hands[i].Type(), hands[i+1], hands[i+1].Type())
	}
}

func TestTieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{
			name:     "higher pair wins",
			stronger: "kd,kc,9h,5s,2d",
			weaker:   "2d,2c,9s,5h,3d",
		},
		{
			name:     "higher second pair wins when first ties",
			stronger: "kd,kc,qh,qs,2d",
			weaker:   "kh,ks,jh,js,2c",
		},
		{
			name:     "pair kicker decides",
			stronger: "kd,kc,ah,5s,2d",
			weaker:   "kh,ks,qh,5c,2c",
		},
		{
			name:     "flush compares top card first",
			stronger: "ad,9d,7d,5d,2d",
			weaker:   "kd,qd,jd,9d,7d",
		},
		{
			name:     "high card runs down all five ranks",
			stronger: "ad,kc,qh,js,9d",
			weaker:   "ah,kd,qs,jc,8d",
		},
		{
			name:     "higher straight wins",
			stronger: "3d,4c,5h,6s,7d",
			weaker:   "2d,3c,4h,5s,6d",
		},
		{
			name:     "wheel loses to six high straight",
			stronger: "2d,3c,4h,5s,6d",
			weaker:   "ad,2c,3h,4s,5d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stronger := MustParseHand(tt.stronger)
			weaker := MustParseHand(tt.weaker)
			assert.Positive(t, stronger.Compare(weaker))
			assert.Negative(t, weaker.Compare(stronger))
		})
	}
}

func TestEqualStrengthHandsCompareEqual(t *testing.T) {
	// Different cards, same classification and kickers.
	a := MustParseHand("ah,kh,qh,jh,9h")
	b := MustParseHand("as,ks,qs,js,9s")
	require.Equal(t, a.Type(), b.Type())
	assert.Zero(t, a.Compare(b))
}

func TestHandDisplay(t *testing.T) {
	hand := MustParseHand("2d,4d,3d,5d,6d")
	assert.Equal(t, "6♦, 5♦, 4♦, 3♦, 2♦", hand.String())
	assert.Equal(t, "Straight Flush (6 high)", hand.Type().String())

	full := MustParseHand("kd,kc,kh,2s,2d")
	assert.Equal(t, "Full House (K over 2)", full.Type().String())
}
