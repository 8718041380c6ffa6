// Package holdem searches for the nuts: the strongest five-card hand any
// two concealed cards could make with a community board.
package holdem

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/nutfinder/internal/deck"
	"github.com/lox/nutfinder/internal/evaluator"
)

var (
	// ErrBoardSize reports a community board outside the 3 to 5 card window.
	ErrBoardSize = errors.New("community board must have 3 to 5 cards")
	// ErrDuplicateCard reports the same card appearing twice on the board.
	ErrDuplicateCard = errors.New("duplicate card on board")
)

// FindNuts returns the strongest hand achievable by adding any two of the
// undealt cards to the community board, along with the two cards that make
// it. Candidate pairs are scanned in lexicographic order and the best is
// replaced only on strict improvement, so ties resolve to the earliest
// pair. A 5-card board degenerates to evaluating the fixed board; the
// returned pair is then irrelevant to the hand.
func FindNuts(community []deck.Card) (evaluator.Hand, [2]deck.Card, error) {
	if err := validateBoard(community); err != nil {
		return evaluator.Hand{}, [2]deck.Card{}, err
	}

	remaining := remainingCards(community)
	pool := make([]deck.Card, len(community), len(community)+2)
	copy(pool, community)

	var (
		bestHand evaluator.Hand
		bestPair [2]deck.Card
		found    bool
	)
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			pool = append(pool[:len(community)], remaining[i], remaining[j])
			hand, err := evaluator.BestHand(pool)
			if err != nil {
				return evaluator.Hand{}, [2]deck.Card{}, err
			}
			if !found || hand.Compare(bestHand) > 0 {
				bestHand = hand
				bestPair = [2]deck.Card{remaining[i], remaining[j]}
				found = true
			}
		}
	}
	return bestHand, bestPair, nil
}

// FindNutsParallel is FindNuts with the first-card index space striped
// across workers. Candidate evaluations are independent, so the only
// coordination is the final max merge. The winning hand is identical to the
// sequential scan; the winning pair may differ only when two pairs produce
// exactly tied hands.
func FindNutsParallel(ctx context.Context, community []deck.Card, workers int) (evaluator.Hand, [2]deck.Card, error) {
	if workers < 1 {
		workers = 1
	}
	if err := validateBoard(community); err != nil {
		return evaluator.Hand{}, [2]deck.Card{}, err
	}

	remaining := remainingCards(community)

	type result struct {
		hand  evaluator.Hand
		pair  [2]deck.Card
		found bool
	}
	results := make([]result, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			pool := make([]deck.Card, len(community), len(community)+2)
			copy(pool, community)
			local := &results[w]
			for i := w; i < len(remaining); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < len(remaining); j++ {
					pool = append(pool[:len(community)], remaining[i], remaining[j])
					hand, err := evaluator.BestHand(pool)
					if err != nil {
						return err
					}
					if !local.found || hand.Compare(local.hand) > 0 {
						local.hand = hand
						local.pair = [2]deck.Card{remaining[i], remaining[j]}
						local.found = true
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return evaluator.Hand{}, [2]deck.Card{}, err
	}

	var best result
	for _, r := range results {
		if r.found && (!best.found || r.hand.Compare(best.hand) > 0) {
			best = r
		}
	}
	return best.hand, best.pair, nil
}

func validateBoard(community []deck.Card) error {
	if len(community) < 3 || len(community) > 5 {
		return fmt.Errorf("%w: got %d", ErrBoardSize, len(community))
	}
	for i, card := range community {
		for _, prev := range community[:i] {
			if prev == card {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
		}
	}
	return nil
}

// remainingCards returns the deck's complement of the community set, in
// the fixed rank-major order of deck.All.
func remainingCards(community []deck.Card) []deck.Card {
	onBoard := make(map[deck.Card]bool, len(community))
	for _, card := range community {
		onBoard[card] = true
	}

	remaining := make([]deck.Card, 0, 52-len(community))
	for _, card := range deck.All() {
		if !onBoard[card] {
			remaining = append(remaining, card)
		}
	}
	return remaining
}
