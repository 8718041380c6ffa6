package evaluator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/nutfinder/internal/deck"
)

// Category enumerates the categories of poker hands ordered from weakest
// to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandType is a hand's category plus the ranks that break ties within it.
// Ranks is a fixed payload in per-category slot order: Pair and
// ThreeOfAKind/FourOfAKind use slot 0; TwoPair holds (high pair, low pair);
// FullHouse holds (trips, pair); Straight and StraightFlush hold the high
// card in slot 0. Unused slots stay zero, so Flush and HighCard carry no
// payload.
type HandType struct {
	Category Category
	Ranks    [2]deck.Rank
}

// Compare orders hand types by category first, then by payload ranks in
// slot order. Any hand of a stronger category beats any hand of a weaker
// one regardless of payload.
func (t HandType) Compare(o HandType) int {
	if t.Category != o.Category {
		return int(t.Category) - int(o.Category)
	}
	for i := range t.Ranks {
		if t.Ranks[i] != o.Ranks[i] {
			return int(t.Ranks[i]) - int(o.Ranks[i])
		}
	}
	return 0
}

// String returns a description like "Full House (K over 2)".
func (t HandType) String() string {
	switch t.Category {
	case Pair, ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s (%s)", t.Category, t.Ranks[0])
	case TwoPair:
		return fmt.Sprintf("%s (%s and %s)", t.Category, t.Ranks[0], t.Ranks[1])
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", t.Category, t.Ranks[0], t.Ranks[1])
	case Straight, StraightFlush:
		return fmt.Sprintf("%s (%s high)", t.Category, t.Ranks[0])
	default:
		return t.Category.String()
	}
}

// Hand is exactly five distinct cards, held sorted descending by rank.
// Ordering and equality between hands follow poker strength, not card
// identity.
type Hand struct {
	cards [5]deck.Card
}

// NewHand builds a hand from five cards. Input order is irrelevant; the
// constructor sorts.
func NewHand(cards [5]deck.Card) Hand {
	slices.SortFunc(cards[:], func(a, b deck.Card) int {
		return b.Compare(a)
	})
	return Hand{cards: cards}
}

// Cards returns the hand's cards in descending order.
func (h Hand) Cards() []deck.Card {
	return h.cards[:]
}

// String returns the hand's cards joined by ", ".
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}

func (h Hand) ranks() [5]deck.Rank {
	var ranks [5]deck.Rank
	for i, card := range h.cards {
		ranks[i] = card.Rank
	}
	return ranks
}

func (h Hand) isFlush() bool {
	suit := h.cards[0].Suit
	for _, card := range h.cards[1:] {
		if card.Suit != suit {
			return false
		}
	}
	return true
}

// straightHigh reports whether the hand is a straight and, if so, its high
// rank. The wheel (A-5-4-3-2) counts as Five high and must be checked
// before the descending walk, which refuses to wrap through the ace.
func (h Hand) straightHigh() (deck.Rank, bool) {
	ranks := h.ranks()
	if ranks == [5]deck.Rank{deck.Ace, deck.Five, deck.Four, deck.Three, deck.Two} {
		return deck.Five, true
	}
	for i := 0; i < len(ranks)-1; i++ {
		next := ranks[i+1]
		if next == deck.Ace || next.Next() != ranks[i] {
			return 0, false
		}
	}
	return ranks[0], true
}

type rankGroup struct {
	count int
	rank  deck.Rank
}

// rankGroups run-length encodes the descending ranks, then orders the
// groups by count and rank, both descending. The ranks are pre-sorted so
// equal ranks are always adjacent.
func (h Hand) rankGroups() []rankGroup {
	groups := make([]rankGroup, 0, 5)
	for _, rank := range h.ranks() {
		if n := len(groups); n > 0 && groups[n-1].rank == rank {
			groups[n-1].count++
			continue
		}
		groups = append(groups, rankGroup{count: 1, rank: rank})
	}
	slices.SortFunc(groups, func(a, b rankGroup) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return int(b.rank) - int(a.rank)
	})
	return groups
}

// Type classifies the hand. Classification depends only on the five ranks
// and whether all five cards share a suit, never on presentation order.
func (h Hand) Type() HandType {
	high, straight := h.straightHigh()
	flush := h.isFlush()

	switch {
	case straight && flush:
		return HandType{Category: StraightFlush, Ranks: [2]deck.Rank{high}}
	case straight:
		return HandType{Category: Straight, Ranks: [2]deck.Rank{high}}
	case flush:
		return HandType{Category: Flush}
	}

	groups := h.rankGroups()
	switch {
	case groups[0].count == 4:
		return HandType{Category: FourOfAKind, Ranks: [2]deck.Rank{groups[0].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandType{Category: FullHouse, Ranks: [2]deck.Rank{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3:
		return HandType{Category: ThreeOfAKind, Ranks: [2]deck.Rank{groups[0].rank}}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandType{Category: TwoPair, Ranks: [2]deck.Rank{groups[0].rank, groups[1].rank}}
	case groups[0].count == 2:
		return HandType{Category: Pair, Ranks: [2]deck.Rank{groups[0].rank}}
	default:
		return HandType{Category: HighCard}
	}
}

// Compare orders hands by strength: hand type first, then the full
// descending rank sequence. The rank sequence settles kickers and the
// categories whose HandType carries no payload (Flush, High Card).
func (h Hand) Compare(o Hand) int {
	if c := h.Type().Compare(o.Type()); c != 0 {
		return c
	}
	hr, or := h.ranks(), o.ranks()
	for i := range hr {
		if hr[i] != or[i] {
			return int(hr[i]) - int(or[i])
		}
	}
	return 0
}
