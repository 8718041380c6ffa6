package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCardTooShort reports a card token with fewer than two characters.
	ErrCardTooShort = errors.New("card token too short")
	// ErrInvalidRank reports an unrecognized rank token.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit reports an unrecognized suit token.
	ErrInvalidSuit = errors.New("invalid suit")
)

// ParseCard parses a card token like "Ah", "10d" or "Q♠".
// Rank letters are case-insensitive. Suits accept either the glyph or its
// ASCII letter alias (h, c, s, d in either case). The two-character "10"
// rank is checked before the single-character ranks.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrCardTooShort, s)
	}

	rankStr, suitStr := s[:1], s[1:]
	if strings.HasPrefix(s, "10") {
		rankStr, suitStr = s[:2], s[2:]
	}

	rank, err := parseRank(rankStr)
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(suitStr)
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", s, err))
	}
	return card
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10":
		return Ten, nil
	case "J", "j":
		return Jack, nil
	case "Q", "q":
		return Queen, nil
	case "K", "k":
		return King, nil
	case "A", "a":
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
}

func parseSuit(s string) (Suit, error) {
	switch s {
	case "♥", "h", "H":
		return Hearts, nil
	case "♣", "c", "C":
		return Clubs, nil
	case "♠", "s", "S":
		return Spades, nil
	case "♦", "d", "D":
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
	}
}
