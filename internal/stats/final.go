package stats

// FinalStatsRecord is what gets stored for one player at the end of a match.
type FinalStatsRecord struct {
	ThreeDartAvg       float64 `json:"three_dart_avg"`
	First9Avg          float64 `json:"first9_avg"`
	Finish             int     `json:"finish"`
	HighestFinish      int     `json:"highest_finish"`
	DoublesHit         int     `json:"doubles_hit"`
	DoublesThrown      int     `json:"doubles_thrown"`
	CheckoutPercentage float64 `json:"checkout_percentage"`
	DoublePercentage   float64 `json:"double_percentage"`
	HighestScore       int     `json:"highest_score"`
	OneEighties        int     `json:"one_eighties"`
	Scores140Plus      int     `json:"scores_140_plus"`
	Scores100Plus      int     `json:"scores_100_plus"`
	Scores80Plus       int     `json:"scores_80_plus"`
	TotalTurns         int     `json:"total_turns"`
	TotalDarts         int     `json:"total_darts"`
	LegDarts           []int   `json:"leg_darts"`
	BestLeg            *int    `json:"best_leg"`
	WorstLeg           *int    `json:"worst_leg"`
	LegsPlayed         int     `json:"legs_played"`
}

// Finalize derives the stored record from running stats.
//
// The three dart average is score per dart times three, so a checkout with
// fewer than three darts raises it exactly as it should.
func Finalize(s DartStats, finish, totalDarts int) FinalStatsRecord {
	rec := FinalStatsRecord{
		ThreeDartAvg:       ThreeDartAverage(s.TotalScore, totalDarts),
		First9Avg:          ratio(s.First9Score, s.First9Turns),
		Finish:             finish,
		HighestFinish:      s.HighestFinish,
		DoublesHit:         s.DoublesHit,
		DoublesThrown:      s.DoublesThrown,
		CheckoutPercentage: percentage(s.DoublesHit, s.DoublesThrown),
		HighestScore:       s.HighestScore,
		OneEighties:        s.OneEighties,
		Scores140Plus:      s.Scores140Plus,
		Scores100Plus:      s.Scores100Plus,
		Scores80Plus:       s.Scores80Plus,
		TotalTurns:         s.TotalTurns,
		TotalDarts:         totalDarts,
		LegDarts:           append([]int{}, s.LegDarts...),
		LegsPlayed:         len(s.LegDarts),
	}
	rec.DoublePercentage = rec.CheckoutPercentage

	if len(s.LegDarts) > 0 {
		best, worst := s.LegDarts[0], s.LegDarts[0]
		for _, d := range s.LegDarts[1:] {
			if d < best {
				best = d
			}
			if d > worst {
				worst = d
			}
		}
		rec.BestLeg = &best
		rec.WorstLeg = &worst
	}
	return rec
}

// ThreeDartAverage returns the mean score per three darts, or 0 when no dart was thrown.
func ThreeDartAverage(score, darts int) float64 {
	if darts <= 0 {
		return 0
	}
	return float64(score) / float64(darts) * 3
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func percentage(hit, thrown int) float64 {
	return ratio(hit, thrown) * 100
}
