package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/merev/ds-scorekeeper/internal/match"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

// WriteResults prints one column per player with their final stats.
// The winner's name is marked with an asterisk.
func (f *Formatter) WriteResults(w io.Writer, results []match.PlayerResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Player.Name
		if r.Winner {
			names[i] += " *"
		}
	}
	writeRow(tw, f.Label(labelPlayer), names)

	row := func(label string, cell func(rec stats.FinalStatsRecord) string) {
		cells := make([]string, len(results))
		for i, r := range results {
			cells[i] = cell(r.Stats)
		}
		writeRow(tw, f.Label(label), cells)
	}

	row(labelAverage, func(s stats.FinalStatsRecord) string { return f.Average(s.ThreeDartAvg) })
	row(labelFirst9, func(s stats.FinalStatsRecord) string { return f.Average(s.First9Avg) })
	row(labelCheckout, func(s stats.FinalStatsRecord) string { return f.Percent(s.CheckoutPercentage) })
	row(labelDoubles, func(s stats.FinalStatsRecord) string {
		return f.Count(s.DoublesHit) + "/" + f.Count(s.DoublesThrown)
	})
	row(labelHighestScore, func(s stats.FinalStatsRecord) string { return f.Count(s.HighestScore) })
	row(labelHighestFinish, func(s stats.FinalStatsRecord) string { return f.Count(s.HighestFinish) })
	row(label180, func(s stats.FinalStatsRecord) string { return f.Count(s.OneEighties) })
	row(label140, func(s stats.FinalStatsRecord) string { return f.Count(s.Scores140Plus) })
	row(label100, func(s stats.FinalStatsRecord) string { return f.Count(s.Scores100Plus) })
	row(label80, func(s stats.FinalStatsRecord) string { return f.Count(s.Scores80Plus) })
	row(labelBestLeg, func(s stats.FinalStatsRecord) string { return f.OptionalInt(s.BestLeg) })
	row(labelWorstLeg, func(s stats.FinalStatsRecord) string { return f.OptionalInt(s.WorstLeg) })
	row(labelLegs, func(s stats.FinalStatsRecord) string { return f.Count(s.LegsPlayed) })
	row(labelDarts, func(s stats.FinalStatsRecord) string { return f.Count(s.TotalDarts) })

	return tw.Flush()
}

// WriteCareer prints a player's career summary as label/value lines.
func (f *Formatter) WriteCareer(w io.Writer, name string, c stats.Career) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	top := make([]string, len(c.TopFinishes))
	for i, fin := range c.TopFinishes {
		top[i] = f.Count(fin)
	}
	topCell := "-"
	if len(top) > 0 {
		topCell = strings.Join(top, ", ")
	}

	writeRow(tw, f.Label(labelPlayer), []string{name})
	writeRow(tw, f.Label(labelMatches), []string{f.Count(c.Matches)})
	writeRow(tw, f.Label(labelAverage), []string{f.Average(c.ThreeDartAvg)})
	writeRow(tw, f.Label(labelFirst9), []string{f.Average(c.First9Avg)})
	writeRow(tw, f.Label(labelTopFinishes), []string{topCell})
	writeRow(tw, f.Label(labelBestLeg), []string{f.OptionalInt(c.BestLeg)})
	writeRow(tw, f.Label(label180), []string{f.Count(c.Total180s)})
	writeRow(tw, f.Label(label140), []string{f.Count(c.Total140Plus)})
	writeRow(tw, f.Label(label100), []string{f.Count(c.Total100Plus)})
	writeRow(tw, f.Label(label80), []string{f.Count(c.Total80Plus)})
	writeRow(tw, f.Label(labelAbove100), []string{f.Count(c.FinishesAbove100)})

	return tw.Flush()
}

// WinnerLine announces the winner, e.g. "Winner: Anna".
func (f *Formatter) WinnerLine(name string) string {
	return fmt.Sprintf("%s: %s", f.Label(labelWinner), name)
}

func writeRow(w io.Writer, label string, cells []string) {
	fmt.Fprintf(w, "%s\t%s\t\n", label, strings.Join(cells, "\t"))
}
