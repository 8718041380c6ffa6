package deck

import "fmt"

// Suit represents a card suit. Suits carry no hand strength; their order
// exists only so card collections sort deterministically.
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Spades
	Diamonds
)

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, Two low through Ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Next returns the rank one above r, wrapping Ace around to Two. The wrap
// exists for straight detection only; Ace stays the highest rank in every
// comparison.
func (r Rank) Next() Rank {
	if r == Ace {
		return Two
	}
	return r + 1
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card's display form (e.g., "A♠", "10♦")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Compare orders cards by rank, then suit. The suit tie-break keeps sorted
// collections deterministic and never influences hand strength.
func (c Card) Compare(o Card) int {
	if c.Rank != o.Rank {
		return int(c.Rank) - int(o.Rank)
	}
	return int(c.Suit) - int(o.Suit)
}

// All returns the full 52-card universe in rank-major order.
func All() []Card {
	cards := make([]Card, 0, 52)
	for rank := Two; rank <= Ace; rank++ {
		for suit := Hearts; suit <= Diamonds; suit++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}
