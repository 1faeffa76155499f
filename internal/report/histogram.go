package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

// Histogram writes a horizontal bar chart of game lengths using equal-width
// bins over [min, max]. The longest bar is width cells.
func Histogram(w io.Writer, turns []uint64, bins, width int) {
	if len(turns) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no games"))
		return
	}
	bins = max(bins, 1)
	width = max(width, 1)

	lo, hi := slices.Min(turns), slices.Max(turns)
	span := hi - lo + 1
	bins = int(min(uint64(bins), span))
	binWidth := (span + uint64(bins) - 1) / uint64(bins)
	bins = int((span + binWidth - 1) / binWidth)

	counts := make([]int, bins)
	for _, t := range turns {
		counts[(t-lo)/binWidth]++
	}
	peak := slices.Max(counts)

	labels := make([]string, bins)
	for i := range bins {
		from := lo + uint64(i)*binWidth
		to := min(from+binWidth-1, hi)
		if from == to {
			labels[i] = fmt.Sprintf("%d", from)
		} else {
			labels[i] = fmt.Sprintf("%d-%d", from, to)
		}
	}
	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, len(label))
	}

	fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("Game lengths (%s games):", humanize.Comma(int64(len(turns))))))
	for i, count := range counts {
		bar := strings.Repeat("█", count*width/peak)
		fmt.Fprintf(w, "  %*s │%s %s\n", labelWidth, labels[i],
			barStyle.Render(bar), mutedStyle.Render(humanize.Comma(int64(count))))
	}
}
