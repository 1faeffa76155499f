package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/scenario"
)

type PlayCmd struct {
	Config   string `short:"c" type:"path" default:"warsim.hcl" help:"Scenario file, built-in scenarios are used when it does not exist"`
	Scenario string `short:"s" help:"Replay a game of this scenario instead of the deck flags"`
	Seed     int64  `default:"${seed}" help:"RNG seed (0 for random)"`
	Game     uint64 `help:"Index of the game within the seed, matching the n-th game of a run"`
	WarDepth int    `short:"k" default:"3" help:"Face-down cards per player in a war"`
	Deck     string `default:"1-13x4" help:"Deck shuffled and split between the players"`
	P1       string `name:"p1" help:"Fixed deck for player 1 (uses --deck when only --p2 is set)"`
	P2       string `name:"p2" help:"Fixed deck for player 2 (uses --deck when only --p1 is set)"`
	Quiet    bool   `short:"q" help:"Only print the result, without the round trace"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger, err := globals.newLogger()
	if err != nil {
		return err
	}

	setup, err := c.setup()
	if err != nil {
		return err
	}

	seed := resolveSeed(c.Seed)
	rng := randutil.NewSource(seed).ForkAt(c.Game)
	p1, p2 := setup.Deal(rng)

	var opts []game.Option
	if !c.Quiet {
		trace := logger.WithPrefix("war")
		trace.SetLevel(log.DebugLevel)
		opts = append(opts, game.WithLogger(trace))
	}

	g := game.New(setup.Params, rng, p1, p2, opts...)
	result, turns := g.Play()
	stats := g.Stats()

	outcome := "draw"
	if result != game.Draw {
		outcome = result.String() + " wins"
	}
	fmt.Fprintf(globals.stdout, "%s: %s after %d turns (seed %d, game %d)\n",
		setup.Description, outcome, turns, seed, c.Game)
	fmt.Fprintf(globals.stdout, "  wars: %d, longest chain %d, largest pot %d cards\n",
		stats.Wars, stats.LongestWar, stats.LargestPot)
	return nil
}

// setup resolves the game to play from a named scenario or the deck flags
func (c *PlayCmd) setup() (*scenario.Setup, error) {
	if c.Scenario != "" {
		config, err := scenario.Load(c.Config)
		if err != nil {
			return nil, err
		}
		setups, err := config.Select(c.Scenario)
		if err != nil {
			return nil, err
		}
		return setups[0], nil
	}

	s := scenario.Scenario{
		Name:     "play",
		WarDepth: &c.WarDepth,
		Deal:     scenario.DealSplit,
		Deck:     c.Deck,
	}
	if c.P1 != "" || c.P2 != "" {
		s.Deal = scenario.DealFixed
		s.Player1 = c.P1
		s.Player2 = c.P2
	}
	s.Description = fmt.Sprintf("War (%s, k=%d)", s.Deal, c.WarDepth)
	return s.Compile()
}
