// Package scenario describes which games a simulation plays: how the two
// players' decks are dealt, the war depth and how many games to run.
// Scenarios come from an HCL file or from the built-in defaults.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
)

// Deal modes
const (
	// DealSplit shuffles Deck and gives each player half of it
	DealSplit = "split"
	// DealFixed gives each player the same cards every game
	DealFixed = "fixed"
)

var (
	// ErrUnknownDeal is returned for a deal mode other than split or fixed
	ErrUnknownDeal = errors.New("unknown deal mode")
	// ErrUnknownScenario is returned by Select for names not in the config
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Config is the top level of a scenario file
type Config struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario is one simulation setup as written in a scenario file
type Scenario struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	WarDepth    *int   `hcl:"war_depth,optional"`
	Deal        string `hcl:"deal,optional"`
	Deck        string `hcl:"deck,optional"`
	Player1     string `hcl:"player1,optional"`
	Player2     string `hcl:"player2,optional"`
	Games       int    `hcl:"games,optional"`
	Output      string `hcl:"output,optional"`
}

// Setup is a validated scenario ready to deal games
type Setup struct {
	Name        string
	Description string
	Params      game.Params
	Games       int    // 0 runs against the simulator's time budget
	Output      string // Turn list destination, empty for none

	deal    string
	deck    []deck.Card
	player1 *game.PlayerDeck
	player2 *game.PlayerDeck
}

// Load reads scenarios from an HCL file, falling back to the defaults if the
// file does not exist.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes scenarios from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range config.Scenarios {
		if config.Scenarios[i].Deal == "" {
			config.Scenarios[i].Deal = DealSplit
		}
	}

	return &config, nil
}

// Names lists the scenario names in file order
func (c *Config) Names() []string {
	names := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		names[i] = s.Name
	}
	return names
}

// Select returns the named scenarios compiled into setups, in the order
// given. No names selects every scenario in file order.
func (c *Config) Select(names ...string) ([]*Setup, error) {
	if len(names) == 0 {
		names = c.Names()
	}

	setups := make([]*Setup, 0, len(names))
	for _, name := range names {
		idx := slices.IndexFunc(c.Scenarios, func(s Scenario) bool { return s.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		setup, err := c.Scenarios[idx].Compile()
		if err != nil {
			return nil, err
		}
		setups = append(setups, setup)
	}
	return setups, nil
}

// Compile validates the scenario and parses its decks
func (s Scenario) Compile() (*Setup, error) {
	setup := &Setup{
		Name:        s.Name,
		Description: s.Description,
		Params:      game.DefaultParams(),
		Games:       s.Games,
		Output:      s.Output,
		deal:        s.Deal,
	}
	if setup.Description == "" {
		setup.Description = s.Name
	}
	if setup.deal == "" {
		setup.deal = DealSplit
	}
	if s.WarDepth != nil {
		if *s.WarDepth < 0 {
			return nil, fmt.Errorf("scenario %q: war_depth must not be negative, got %d", s.Name, *s.WarDepth)
		}
		setup.Params.WarDepth = uint(*s.WarDepth)
	}
	if s.Games < 0 {
		return nil, fmt.Errorf("scenario %q: games must not be negative, got %d", s.Name, s.Games)
	}

	var err error
	switch setup.deal {
	case DealSplit:
		if s.Deck == "" {
			return nil, fmt.Errorf("scenario %q: split deal requires a deck", s.Name)
		}
		if setup.deck, err = deck.Parse(s.Deck); err != nil {
			return nil, fmt.Errorf("scenario %q: deck: %w", s.Name, err)
		}

	case DealFixed:
		p1, p2 := s.Player1, s.Player2
		if p1 == "" {
			p1 = s.Deck
		}
		if p2 == "" {
			p2 = s.Deck
		}
		cards1, err := deck.Parse(p1)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: player1: %w", s.Name, err)
		}
		cards2, err := deck.Parse(p2)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: player2: %w", s.Name, err)
		}
		setup.player1 = game.NewPlayerDeck(cards1)
		setup.player2 = game.NewPlayerDeck(cards2)

	default:
		return nil, fmt.Errorf("scenario %q: %w: %q", s.Name, ErrUnknownDeal, setup.deal)
	}

	return setup, nil
}

// Deal returns the two starting decks for one game. Split deals draw from
// rng; fixed deals hand out fresh copies of the configured decks.
func (s *Setup) Deal(rng *randutil.Source) (*game.PlayerDeck, *game.PlayerDeck) {
	if s.deal == DealFixed {
		return s.player1.Clone(), s.player2.Clone()
	}

	cards := slices.Clone(s.deck)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	half := len(cards) / 2
	return game.NewPlayerDeck(cards[:half]), game.NewPlayerDeck(cards[half:])
}

// Cards returns the total number of cards dealt per game
func (s *Setup) Cards() int {
	if s.deal == DealFixed {
		return s.player1.Cards() + s.player2.Cards()
	}
	return len(s.deck)
}
