package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/nutfinder/internal/deck"
	"github.com/lox/nutfinder/internal/evaluator"
	"github.com/lox/nutfinder/internal/holdem"
	"github.com/lox/nutfinder/internal/randutil"
	"github.com/lox/nutfinder/internal/simulator"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	typeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

type CLI struct {
	Debug bool `help:"Enable debug logging."`

	Eval     EvalCmd     `cmd:"" help:"Classify a five-card hand."`
	Best     BestCmd     `cmd:"" help:"Pick the best five-card hand from a pool of cards."`
	Nuts     NutsCmd     `cmd:"" help:"Find the nuts for a community board."`
	Deal     DealCmd     `cmd:"" help:"Shuffle a deck, deal a board and find its nuts."`
	Simulate SimulateCmd `cmd:"" help:"Run seeded batches of boards and tally nut-hand categories."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nuts"),
		kong.Description("Texas hold'em hand evaluator and nut finder."),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(logger); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

// EvalCmd classifies a single hand.
type EvalCmd struct {
	Hand string `arg:"" help:"Five comma-separated cards, e.g. 'Ah,Kh,Qh,Jh,10h'."`
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	hand, err := evaluator.ParseHand(c.Hand)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", renderCards(hand.Cards()))
	fmt.Printf("%s\n", typeStyle.Render(hand.Type().String()))
	return nil
}

// BestCmd picks the strongest five-card hand from a larger pool.
type BestCmd struct {
	Cards []string `arg:"" help:"Five or more card tokens, e.g. Ah Kh Qh Jh 10h 2c 2d."`
}

func (c *BestCmd) Run(logger *log.Logger) error {
	pool, err := parseCards(c.Cards)
	if err != nil {
		return err
	}

	hand, err := evaluator.BestHand(pool)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", renderCards(hand.Cards()))
	fmt.Printf("%s\n", typeStyle.Render(hand.Type().String()))
	return nil
}

// NutsCmd finds the nuts for a given board.
type NutsCmd struct {
	Board    []string `arg:"" help:"Three to five community card tokens."`
	Parallel bool     `short:"p" help:"Stripe the search across workers."`
	Workers  int      `short:"w" help:"Worker count for --parallel (0 = all CPUs)." default:"0"`
}

func (c *NutsCmd) Run(logger *log.Logger) error {
	board, err := parseCards(c.Board)
	if err != nil {
		return err
	}

	start := time.Now()
	var (
		hand evaluator.Hand
		pair [2]deck.Card
	)
	if c.Parallel {
		workers := c.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		hand, pair, err = holdem.FindNutsParallel(context.Background(), board, workers)
	} else {
		hand, pair, err = holdem.FindNuts(board)
	}
	if err != nil {
		return err
	}
	logger.Debug("search complete", "duration", time.Since(start))

	printNuts(board, hand, pair)
	return nil
}

// DealCmd shuffles a deck, deals a board and finds its nuts.
type DealCmd struct {
	BoardSize int    `short:"n" help:"Number of community cards to deal (3-5)." default:"3"`
	Seed      *int64 `help:"Random seed for a reproducible deal."`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	d := deck.New(randutil.New(seed))
	board, ok := d.Deal(c.BoardSize)
	if !ok {
		return fmt.Errorf("cannot deal %d cards from a 52-card deck", c.BoardSize)
	}
	logger.Debug("dealt board", "seed", seed, "remaining", d.Remaining())

	hand, pair, err := holdem.FindNuts(board)
	if err != nil {
		return err
	}

	printNuts(board, hand, pair)
	return nil
}

// SimulateCmd runs the simulator and prints a category frequency table.
type SimulateCmd struct {
	Config    string `short:"c" help:"HCL config file." default:"sim.hcl" type:"path"`
	Boards    int    `help:"Override the number of boards to run."`
	BoardSize int    `help:"Override the board size (3-5)."`
	Seed      *int64 `help:"Override the random seed."`
	Workers   int    `help:"Override the worker count."`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := simulator.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Boards > 0 {
		cfg.Boards = c.Boards
	}
	if c.BoardSize > 0 {
		cfg.BoardSize = c.BoardSize
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}

	logger.Info("starting simulation",
		"boards", cfg.Boards,
		"board_size", cfg.BoardSize,
		"seed", cfg.Seed,
		"workers", cfg.Workers)

	sim := simulator.New(simulator.Config{
		Boards:    cfg.Boards,
		BoardSize: cfg.BoardSize,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
		Logger:    logger,
	})

	start := time.Now()
	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	printSimResults(results)
	fmt.Printf("\n%d boards in %v\n", results.Boards, time.Since(start).Truncate(time.Millisecond))
	return nil
}

func parseCards(tokens []string) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func printNuts(board []deck.Card, hand evaluator.Hand, pair [2]deck.Card) {
	fmt.Printf("%s %s\n", headerStyle.Render("board"), renderCards(board))
	fmt.Printf("%s %s %s\n", headerStyle.Render("nut cards"), renderCard(pair[0]), renderCard(pair[1]))
	fmt.Printf("%s %s\n", headerStyle.Render("nut hand"), renderCards(hand.Cards()))
	fmt.Printf("%s\n", typeStyle.Render("This is a "+hand.Type().String()))
}

func printSimResults(results *simulator.Results) {
	// Strongest category first
	categories := make([]evaluator.Category, 0, len(results.Categories))
	for category := range results.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] > categories[j] })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("nut hand"),
		headerStyle.Render("count"),
		headerStyle.Render("freq"))
	for _, category := range categories {
		count := results.Categories[category]
		pct := float64(count) / float64(results.Boards) * 100
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			category,
			count,
			percentStyle.Render(fmt.Sprintf("%.1f%%", pct)))
	}
	w.Flush()
}

func renderCard(card deck.Card) string {
	if card.IsRed() {
		return redCardStyle.Render(card.String())
	}
	return blackCardStyle.Render(card.String())
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = renderCard(card)
	}
	return strings.Join(parts, " ")
}
