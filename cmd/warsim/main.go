package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"

	"github.com/lox/warsim/internal/report"
)

// version is set by ldflags during build
var version = "dev"

// Environment holds defaults read from WARSIM_* variables. Flags override them.
type Environment struct {
	Seed     int64  `env:"WARSIM_SEED"`
	Workers  int    `env:"WARSIM_WORKERS"`
	LogLevel string `env:"WARSIM_LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"WARSIM_NO_COLOR"`
}

// Globals are flags shared by every command
type Globals struct {
	Verbose  bool   `short:"v" help:"Debug logging"`
	NoColor  bool   `help:"Disable colored output" default:"${no_color}"`
	LogLevel string `help:"Log level (debug|info|warn|error)" default:"${log_level}" enum:"debug,info,warn,error"`

	stdout io.Writer
	stderr io.Writer
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `help:"Show version"`
	Run       RunCmd           `cmd:"" default:"1" help:"Simulate scenarios and report win rates and game lengths"`
	Grid      GridCmd          `cmd:"" help:"Print mean game length for small decks across war depths"`
	Play      PlayCmd          `cmd:"" help:"Play and trace a single game"`
	Hist      HistCmd          `cmd:"" help:"Plot the game lengths saved by run"`
	Scenarios ScenariosCmd     `cmd:"" help:"List configured scenarios"`
}

// loadEnvironment reads the WARSIM_* variables
func loadEnvironment() (Environment, error) {
	var environment Environment
	if err := env.Parse(&environment); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return environment, nil
}

// vars exposes the environment as kong interpolation variables for flag defaults
func (e Environment) vars() kong.Vars {
	if e.LogLevel == "" {
		e.LogLevel = "warn"
	}
	return kong.Vars{
		"version":   version,
		"seed":      strconv.FormatInt(e.Seed, 10),
		"workers":   strconv.Itoa(e.Workers),
		"log_level": e.LogLevel,
		"no_color":  strconv.FormatBool(e.NoColor),
	}
}

func newParser(cli *CLI, environment Environment, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("warsim"),
		kong.Description("Monte Carlo simulator for the card game War"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		environment.vars(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	environment, err := loadEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warsim: %v\n", err)
		os.Exit(1)
	}

	cli := CLI{Globals: Globals{stdout: os.Stdout, stderr: os.Stderr}}
	parser, err := newParser(&cli, environment)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if cli.NoColor {
		report.DisableColor()
	}

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
