package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/lox/warsim/internal/fileutil"
	"github.com/lox/warsim/internal/report"
	"github.com/lox/warsim/internal/scenario"
	"github.com/lox/warsim/internal/simulator"
)

type RunCmd struct {
	Config   string        `short:"c" type:"path" default:"warsim.hcl" help:"Scenario file, built-in scenarios are used when it does not exist"`
	Scenario []string      `short:"s" help:"Scenarios to run (default all)"`
	Seed     int64         `default:"${seed}" help:"RNG seed (0 for random)"`
	Workers  int           `default:"${workers}" help:"Parallel workers (0 for one per CPU, up to 8)"`
	Games    int           `short:"n" help:"Games per scenario, overriding the scenario file (0 uses the time budget)"`
	Duration time.Duration `default:"1s" help:"Time budget per scenario when no game count is set"`
	OutDir   string        `type:"path" default:"." help:"Directory for turn count JSON files"`
}

func (c *RunCmd) Run(globals *Globals) error {
	logger, err := globals.newLogger()
	if err != nil {
		return err
	}

	config, err := scenario.Load(c.Config)
	if err != nil {
		return err
	}
	setups, err := config.Select(c.Scenario...)
	if err != nil {
		return err
	}

	seed := resolveSeed(c.Seed)
	logger.Debug("Running scenarios", "count", len(setups), "seed", seed)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	for i, setup := range setups {
		sim := simulator.New(simulator.Config{
			Setup:    setup,
			Games:    c.Games,
			Duration: c.Duration,
			Seed:     seed,
			Workers:  c.Workers,
			Logger:   logger,
			OnBatch: func(completed int) {
				logger.Debug("Batch complete", "scenario", setup.Name, "games", completed)
			},
		})

		summary, err := sim.Run(ctx)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", setup.Name, err)
		}

		if i > 0 {
			fmt.Fprintln(globals.stdout)
		}
		report.Scenario(globals.stdout, summary, globals.Verbose)

		if setup.Output == "" {
			continue
		}
		path := filepath.Join(c.OutDir, setup.Output)
		if err := fileutil.WriteJSONAtomic(path, summary.Stats.Turns); err != nil {
			return fmt.Errorf("scenario %s: %w", setup.Name, err)
		}
		logger.Info("Wrote turn counts", "scenario", setup.Name, "path", path, "games", len(summary.Stats.Turns))
	}

	return nil
}

// resolveSeed picks a time-based seed for 0 so every run is replayable from
// the logged value.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
