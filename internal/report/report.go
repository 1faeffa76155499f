// Package report renders simulation results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/lox/warsim/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	turnsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// DisableColor forces plain output, for pipes and NO_COLOR terminals
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Scenario writes the summary of one simulated scenario. Verbose adds the
// turn distribution, result tallies and war counts.
func Scenario(w io.Writer, summary *simulator.Summary, verbose bool) {
	stats := summary.Stats

	fmt.Fprintf(w, "%s\n", headerStyle.Render(summary.Description+":"))
	fmt.Fprintf(w, "  %s games in %v\n",
		countStyle.Render(humanize.Comma(int64(stats.Games))),
		summary.Elapsed.Truncate(time.Millisecond))
	fmt.Fprintf(w, "  mean score: Player 1 wins %s\n",
		scoreStyle.Render(fmt.Sprintf("%.1f%%", 100*stats.MeanScore())))
	fmt.Fprintf(w, "  mean turns: %s\n",
		turnsStyle.Render(fmt.Sprintf("%.2f +/- %.2f", stats.MeanTurns(), stats.StdDev())))

	if !verbose {
		return
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf(
		"score 95%% CI: [%.1f%%, %.1f%%]", 100*low, 100*high)))
	fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf(
		"results: %s player 1, %s draws, %s player 2",
		humanize.Comma(int64(stats.Player1Wins)),
		humanize.Comma(int64(stats.Draws)),
		humanize.Comma(int64(stats.Player2Wins)))))
	fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf(
		"turns: min %d, P5 %.0f, median %.1f, P95 %.0f, max %d",
		stats.MinTurns, stats.Percentile(0.05), stats.Median(), stats.Percentile(0.95), stats.MaxTurns)))
	fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf(
		"wars: %s total, longest chain %d",
		humanize.Comma(int64(stats.Wars)), stats.LongestWar)))
}

// Grid writes the small-games table: mean game length for every deck size n
// (rows) and war depth k (columns).
func Grid(w io.Writer, grid *simulator.Grid) {
	headers := []string{"n/k"}
	for _, k := range grid.Ks {
		headers = append(headers, strconv.FormatUint(uint64(k), 10))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return cellStyle.Inherit(headerStyle)
			default:
				return cellStyle
			}
		})

	for i, n := range grid.Ns {
		cells := []string{strconv.Itoa(int(n))}
		for _, mean := range grid.MeanTurns[i] {
			cells = append(cells, fmt.Sprintf("%.1f", mean))
		}
		t.Row(cells...)
	}

	fmt.Fprintf(w, "%s\n", headerStyle.Render("Small games:"))
	fmt.Fprintf(w, "  Each player has a deck of n unique cards, and k cards are flipped face-down in a war\n")
	fmt.Fprintf(w, "  games per cell: %s\n", countStyle.Render(humanize.Comma(int64(grid.Games))))
	fmt.Fprintf(w, "%s\n", t.Render())
}
