// Package simulator runs seeded batches of nut searches over randomly
// dealt boards and tallies which hand categories come up as the nuts.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/nutfinder/internal/deck"
	"github.com/lox/nutfinder/internal/evaluator"
	"github.com/lox/nutfinder/internal/holdem"
	"github.com/lox/nutfinder/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Boards    int
	BoardSize int
	Seed      int64
	Workers   int
	Logger    *log.Logger
}

// Results tallies the nut-hand categories seen across a run.
type Results struct {
	Boards     int
	Categories map[evaluator.Category]int
}

// Simulator deals boards and finds the nuts for each
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns results. Each board draws from a
// fresh deck seeded independently, so runs are reproducible from the
// configured seed alone.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	if s.config.BoardSize < 3 || s.config.BoardSize > 5 {
		return nil, fmt.Errorf("board size must be 3 to 5, got %d", s.config.BoardSize)
	}

	results := &Results{
		Categories: make(map[evaluator.Category]int),
	}

	for board := 0; board < s.config.Boards; board++ {
		// Independent seed per board
		boardSeed := s.config.Seed + int64(board)

		d := deck.New(randutil.New(boardSeed))
		community, ok := d.Deal(s.config.BoardSize)
		if !ok {
			return nil, fmt.Errorf("board %d: deal failed", board+1)
		}

		var (
			nuts evaluator.Hand
			hole [2]deck.Card
			err  error
		)
		if s.config.Workers > 1 {
			nuts, hole, err = holdem.FindNutsParallel(ctx, community, s.config.Workers)
		} else {
			nuts, hole, err = holdem.FindNuts(community)
		}
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", board+1, err)
		}

		handType := nuts.Type()
		results.Categories[handType.Category]++
		results.Boards++

		if s.config.Logger != nil {
			s.config.Logger.Debug("evaluated board",
				"board", board+1,
				"community", fmt.Sprint(community),
				"hole", fmt.Sprintf("%s %s", hole[0], hole[1]),
				"nuts", nuts.String(),
				"type", handType.String())
		}
	}

	return results, nil
}
