package main

import (
	"github.com/lox/warsim/internal/report"
	"github.com/lox/warsim/internal/simulator"
)

type GridCmd struct {
	MaxN    uint8 `default:"13" help:"Largest deck size n"`
	MaxK    uint  `default:"9" help:"Largest war depth k"`
	Games   int   `default:"100000" help:"Games per cell"`
	Seed    int64 `default:"${seed}" help:"RNG seed (0 for random)"`
	Workers int   `default:"${workers}" help:"Parallel workers (0 for one per CPU, up to 8)"`
}

func (c *GridCmd) Run(globals *Globals) error {
	logger, err := globals.newLogger()
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	grid, err := simulator.RunGrid(ctx, simulator.GridConfig{
		MaxN:    c.MaxN,
		MaxK:    c.MaxK,
		Games:   c.Games,
		Seed:    resolveSeed(c.Seed),
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	report.Grid(globals.stdout, grid)
	return nil
}
