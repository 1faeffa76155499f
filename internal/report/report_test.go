package report

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/simulator"
	"github.com/lox/warsim/internal/statistics"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func sampleSummary() *simulator.Summary {
	stats := &statistics.Statistics{}
	for i := range 1200 {
		result := game.Player1Wins
		if i%2 == 1 {
			result = game.Player2Wins
		}
		stats.Add(statistics.GameResult{Result: result, Turns: uint64(100 + i%3*100), Wars: 3, LongestWar: 2})
	}
	return &simulator.Summary{
		Scenario:    "standard",
		Description: "Standard war (shuffled)",
		Elapsed:     1234567 * time.Microsecond,
		Stats:       stats,
	}
}

func TestScenario(t *testing.T) {
	var buf bytes.Buffer
	Scenario(&buf, sampleSummary(), false)

	out := buf.String()
	assert.Contains(t, out, "Standard war (shuffled):")
	assert.Contains(t, out, "1,200 games in 1.234s")
	assert.Contains(t, out, "mean score: Player 1 wins 50.0%")
	assert.Contains(t, out, "mean turns: 200.00 +/- 81.65")
	assert.NotContains(t, out, "wars:")
}

func TestScenarioVerbose(t *testing.T) {
	var buf bytes.Buffer
	Scenario(&buf, sampleSummary(), true)

	out := buf.String()
	assert.Contains(t, out, "results: 600 player 1, 0 draws, 600 player 2")
	assert.Contains(t, out, "min 100")
	assert.Contains(t, out, "max 300")
	assert.Contains(t, out, "wars: 3,600 total, longest chain 2")
}

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	Grid(&buf, &simulator.Grid{
		Ns:    []uint8{1, 2},
		Ks:    []uint{0, 1},
		Games: 100000,
		MeanTurns: [][]float64{
			{1, 1},
			{2.345, 3.14},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Small games:")
	assert.Contains(t, out, "games per cell: 100,000")
	assert.Contains(t, out, "n/k")
	assert.Contains(t, out, "1.0")
	assert.Contains(t, out, "2.3")
	assert.Contains(t, out, "3.1")
}
