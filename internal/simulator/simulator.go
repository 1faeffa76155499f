package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/scenario"
	"github.com/lox/warsim/internal/statistics"
)

const (
	// DefaultDuration is how long a scenario without a game count keeps
	// simulating
	DefaultDuration = time.Second

	// initialBudgetGames seeds the growth schedule of budgeted runs
	initialBudgetGames = 900

	// cancelCheckInterval is how many games a worker plays between context checks
	cancelCheckInterval = 1024
)

// Config holds configuration for running simulations
type Config struct {
	Setup    *scenario.Setup
	Games    int           // Overrides Setup.Games when positive
	Duration time.Duration // Time budget when no game count is set
	Seed     int64
	Workers  int
	Logger   *log.Logger
	Clock    quartz.Clock

	// OnBatch is called after each batch with the number of games completed
	OnBatch func(completed int)
}

// Summary is the outcome of simulating one scenario
type Summary struct {
	Scenario    string
	Description string
	Seed        int64
	Workers     int
	Elapsed     time.Duration
	Stats       *statistics.Statistics
}

// Simulator runs many independent games of a scenario
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in defaults for unset fields
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	if config.Duration <= 0 {
		config.Duration = DefaultDuration
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	return &Simulator{config: config}
}

// Run simulates the scenario and returns its statistics. With a game count
// exactly that many games are played. Otherwise games are added in growing
// batches (900, then steps of the largest power of ten not above the total)
// until the time budget has elapsed; at least one batch always runs.
//
// Game i is dealt and played from fork i of the seed, so results do not
// depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	setup := s.config.Setup
	if setup == nil {
		return nil, fmt.Errorf("simulator: no scenario configured")
	}

	clock := s.config.Clock
	start := clock.Now()
	root := randutil.NewSource(s.config.Seed)
	stats := &statistics.Statistics{}

	games := s.config.Games
	if games <= 0 {
		games = setup.Games
	}

	s.config.Logger.Debug("Starting scenario", "scenario", setup.Name, "games", games,
		"war_depth", setup.Params.WarDepth, "seed", s.config.Seed, "workers", s.config.Workers)

	if games > 0 {
		if err := s.playBatch(ctx, root, stats, games); err != nil {
			return nil, err
		}
	} else {
		target := initialBudgetGames
		for {
			target += pow10(target)
			if err := s.playBatch(ctx, root, stats, target); err != nil {
				return nil, err
			}
			if clock.Since(start) >= s.config.Duration {
				break
			}
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	summary := &Summary{
		Scenario:    setup.Name,
		Description: setup.Description,
		Seed:        s.config.Seed,
		Workers:     s.config.Workers,
		Elapsed:     clock.Since(start),
		Stats:       stats,
	}

	s.config.Logger.Info("Scenario complete", "scenario", setup.Name, "games", stats.Games,
		"elapsed", summary.Elapsed, "player1_score", stats.MeanScore(), "mean_turns", stats.MeanTurns())

	return summary, nil
}

// playBatch plays games stats.Games..target-1 across the workers and adds
// their results to stats in game order.
func (s *Simulator) playBatch(ctx context.Context, root *randutil.Source, stats *statistics.Statistics, target int) error {
	from := stats.Games
	n := target - from
	if n <= 0 {
		return nil
	}

	results := make([]statistics.GameResult, n)
	workers := min(s.config.Workers, n)
	perWorker := n / workers
	remainder := n % workers

	g, ctx := errgroup.WithContext(ctx)
	lo := 0
	for w := range workers {
		hi := lo + perWorker
		if w < remainder {
			hi++ // Distribute remainder games
		}

		chunk := results[lo:hi]
		first := from + lo
		g.Go(func() error {
			for i := range chunk {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				chunk[i] = s.playGame(root.ForkAt(uint64(first + i)))
			}
			return nil
		})
		lo = hi
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation of %q interrupted after %d games: %w", s.config.Setup.Name, from, err)
	}

	for _, result := range results {
		stats.Add(result)
	}

	if s.config.OnBatch != nil {
		s.config.OnBatch(stats.Games)
	}
	return nil
}

// playGame deals and plays a single game from its own stream
func (s *Simulator) playGame(rng *randutil.Source) statistics.GameResult {
	p1, p2 := s.config.Setup.Deal(rng)
	g := game.New(s.config.Setup.Params, rng, p1, p2)
	result, turns := g.Play()
	st := g.Stats()
	return statistics.GameResult{
		Result:     result,
		Turns:      turns,
		Wars:       st.Wars,
		LongestWar: st.LongestWar,
	}
}

// pow10 returns the largest power of ten not greater than n (n >= 1)
func pow10(n int) int {
	p := 1
	for p*10 <= n {
		p *= 10
	}
	return p
}
