package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const topFinishes = 5

// Career summarises every stored match record of one player.
type Career struct {
	Matches          int     `json:"matches"`
	ThreeDartAvg     float64 `json:"threeDartAvg"`
	First9Avg        float64 `json:"first9Avg"`
	TopFinishes      []int   `json:"topFinishes"`
	BestLeg          *int    `json:"bestLeg"`
	Total180s        int     `json:"total180s"`
	Total140Plus     int     `json:"total140Plus"`
	Total100Plus     int     `json:"total100Plus"`
	Total80Plus      int     `json:"total80Plus"`
	FinishesAbove100 int     `json:"finishesAbove100"`
}

// Aggregate folds match records into career stats. Averages are weighted by
// the number of visits each match contributed.
func Aggregate(records []FinalStatsRecord) Career {
	c := Career{Matches: len(records), TopFinishes: []int{}}

	var avgs, avgWeights, first9, first9Weights, bestLegs []float64
	var finishes []int

	for _, r := range records {
		if r.TotalTurns > 0 {
			avgs = append(avgs, r.ThreeDartAvg)
			avgWeights = append(avgWeights, float64(r.TotalTurns))

			// records do not carry first-9 visit counts; a match gives at most three
			first9 = append(first9, r.First9Avg)
			first9Weights = append(first9Weights, float64(min(First9Turns, r.TotalTurns)))
		}

		if r.Finish >= 2 && r.Finish <= 170 {
			finishes = append(finishes, r.Finish)
			if r.Finish > 100 {
				c.FinishesAbove100++
			}
		}

		if r.BestLeg != nil {
			bestLegs = append(bestLegs, float64(*r.BestLeg))
		}

		c.Total180s += r.OneEighties
		c.Total140Plus += r.Scores140Plus
		c.Total100Plus += r.Scores100Plus
		c.Total80Plus += r.Scores80Plus
	}

	if len(avgs) > 0 {
		c.ThreeDartAvg = stat.Mean(avgs, avgWeights)
		c.First9Avg = stat.Mean(first9, first9Weights)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(finishes)))
	if len(finishes) > topFinishes {
		finishes = finishes[:topFinishes]
	}
	c.TopFinishes = append(c.TopFinishes, finishes...)

	if len(bestLegs) > 0 {
		best := int(floats.Min(bestLegs))
		c.BestLeg = &best
	}
	return c
}
