package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/scenario"
)

// GridConfig configures a sweep over small decks and war depths
type GridConfig struct {
	MaxN    uint8 // Deck sizes 1..MaxN
	MaxK    uint  // War depths 0..MaxK
	Games   int   // Games per cell
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Grid holds the mean game length for each deck size and war depth. In every
// game both players hold one copy each of ranks 0..n-1.
type Grid struct {
	Ns        []uint8
	Ks        []uint
	Games     int
	MeanTurns [][]float64 // Indexed [n][k] in the order of Ns and Ks
}

// RunGrid simulates every (n, k) cell of the grid. Each cell gets its own
// fork of the seed.
func RunGrid(ctx context.Context, config GridConfig) (*Grid, error) {
	if config.MaxN == 0 {
		return nil, fmt.Errorf("grid needs at least one deck size")
	}
	if config.Games <= 0 {
		return nil, fmt.Errorf("grid needs a positive game count, got %d", config.Games)
	}

	grid := &Grid{Games: config.Games}
	for n := uint8(1); n <= config.MaxN; n++ {
		grid.Ns = append(grid.Ns, n)
		if n == 255 {
			break
		}
	}
	for k := uint(0); k <= config.MaxK; k++ {
		grid.Ks = append(grid.Ks, k)
	}

	root := randutil.NewSource(config.Seed)
	grid.MeanTurns = make([][]float64, len(grid.Ns))
	for row, n := range grid.Ns {
		grid.MeanTurns[row] = make([]float64, len(grid.Ks))
		for col, k := range grid.Ks {
			depth := int(k)
			setup, err := scenario.Scenario{
				Name:     fmt.Sprintf("n=%d k=%d", n, k),
				Deal:     scenario.DealFixed,
				Deck:     fmt.Sprintf("0-%d", n-1),
				WarDepth: &depth,
			}.Compile()
			if err != nil {
				return nil, err
			}

			cell := uint64(row*len(grid.Ks) + col)
			summary, err := New(Config{
				Setup:   setup,
				Games:   config.Games,
				Seed:    root.ForkAt(cell).Seed(),
				Workers: config.Workers,
				Logger:  config.Logger,
			}).Run(ctx)
			if err != nil {
				return nil, err
			}
			grid.MeanTurns[row][col] = summary.Stats.MeanTurns()
		}
	}

	return grid, nil
}
