package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/warsim/internal/scenario"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLIWithLogs(t, args...)
	return out, err
}

func runCLIWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	cli := CLI{Globals: Globals{stdout: &out, stderr: &logs}}
	parser, err := newParser(&cli, Environment{}, kong.Exit(func(int) {
		t.Fatalf("unexpected exit for %v", args)
	}))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", "", err
	}
	err = ctx.Run(&cli.Globals)
	return out.String(), logs.String(), err
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warsim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

const tinyConfig = `
scenario "tiny" {
  description = "Higher cards always win"
  deal        = "fixed"
  player1     = "3x3"
  player2     = "0-2"
  war_depth   = 0
  games       = 10
  output      = "tiny.json"
}
`

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WARSIM_SEED", "42")
	t.Setenv("WARSIM_WORKERS", "3")
	t.Setenv("WARSIM_NO_COLOR", "true")

	environment, err := loadEnvironment()
	require.NoError(t, err)
	assert.Equal(t, int64(42), environment.Seed)
	assert.Equal(t, 3, environment.Workers)
	assert.Equal(t, "warn", environment.LogLevel)
	assert.True(t, environment.NoColor)
}

func TestLoadEnvironmentInvalid(t *testing.T) {
	t.Setenv("WARSIM_SEED", "not-a-number")

	_, err := loadEnvironment()
	assert.Error(t, err)
}

func TestEnvironmentDefaultsFlags(t *testing.T) {
	var cli CLI
	parser, err := newParser(&cli, Environment{Seed: 7, Workers: 2, LogLevel: "info"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cli.Run.Seed)
	assert.Equal(t, 2, cli.Run.Workers)
	assert.Equal(t, "info", cli.LogLevel)

	_, err = parser.Parse([]string{"run", "--seed", "9"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cli.Run.Seed)
}

func TestRunWritesTurnCounts(t *testing.T) {
	config := writeConfig(t, tinyConfig)
	outDir := t.TempDir()

	out, err := runCLI(t, "run", "--config", config, "--seed", "1", "--out-dir", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Higher cards always win:")
	assert.Contains(t, out, "10 games in")
	assert.Contains(t, out, "mean score: Player 1 wins 100.0%")
	assert.Contains(t, out, "mean turns: 4.00 +/- 0.00")

	data, err := os.ReadFile(filepath.Join(outDir, "tiny.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[4,4,4,4,4,4,4,4,4,4]`, string(data))
}

func TestRunLogsBatchProgress(t *testing.T) {
	config := writeConfig(t, tinyConfig)

	_, logs, err := runCLIWithLogs(t, "--verbose", "run", "-c", config, "--out-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, logs, "Batch complete")
	assert.Contains(t, logs, "scenario=tiny")
	assert.Contains(t, logs, "games=10")
}

func TestRunQuietByDefault(t *testing.T) {
	config := writeConfig(t, tinyConfig)

	_, logs, err := runCLIWithLogs(t, "run", "-c", config, "--out-dir", t.TempDir())
	require.NoError(t, err)
	assert.NotContains(t, logs, "Batch complete")
}

func TestRunGamesOverride(t *testing.T) {
	config := writeConfig(t, tinyConfig)

	out, err := runCLI(t, "run", "-c", config, "-n", "25", "--out-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "25 games in")
}

func TestRunUnknownScenario(t *testing.T) {
	config := writeConfig(t, tinyConfig)

	_, err := runCLI(t, "run", "-c", config, "-s", "missing")
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)
}

func TestScenariosListsDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.hcl")

	out, err := runCLI(t, "scenarios", "-c", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "Standard war (shuffled) (k=3, 52 cards, time budget)")
	assert.Contains(t, out, "aces")
	assert.Contains(t, out, "twelve-deck")
}

func TestPlayFixedDecks(t *testing.T) {
	out, err := runCLI(t, "play", "--seed", "1", "--p1", "3x3", "--p2", "0-2", "-k", "0", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "War (fixed, k=0): player1 wins after 4 turns (seed 1, game 0)")
}

func TestPlayMatchesRun(t *testing.T) {
	config := writeConfig(t, `
scenario "small" {
  deck      = "1-6x2"
  war_depth = 1
  games     = 5
}
`)
	first, err := runCLI(t, "play", "-c", config, "-s", "small", "--seed", "3", "--game", "2", "-q")
	require.NoError(t, err)
	second, err := runCLI(t, "play", "-c", config, "-s", "small", "--seed", "3", "--game", "2", "-q")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "(seed 3, game 2)")
}

func TestPlayInvalidDeck(t *testing.T) {
	_, err := runCLI(t, "play", "--seed", "1", "--deck", "1-x", "-q")
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	out, err := runCLI(t, "grid", "--max-n", "2", "--max-k", "1", "--games", "10", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Small games:")
	assert.Contains(t, out, "games per cell: 10")
	assert.Contains(t, out, "n/k")
}

func TestHistReadsRunOutput(t *testing.T) {
	config := writeConfig(t, tinyConfig)
	outDir := t.TempDir()

	_, err := runCLI(t, "run", "-c", config, "--out-dir", outDir)
	require.NoError(t, err)

	out, err := runCLI(t, "hist", filepath.Join(outDir, "tiny.json"), "--width", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Game lengths (10 games):")
	assert.Contains(t, out, "4 │█████ 10")
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(12), resolveSeed(12))
	assert.NotZero(t, resolveSeed(0))
}
