package stats

// First9Turns is the number of visits in a leg that count towards the first-9 average.
const First9Turns = 3

// DartStats is a player's running match totals. It is a value type: every
// Register function returns an updated copy and never touches the argument.
type DartStats struct {
	TotalScore int `json:"totalScore"`
	TotalTurns int `json:"totalTurns"`

	First9Score int `json:"first9Score"`
	First9Turns int `json:"first9Turns"`

	DoublesHit    int `json:"doublesHit"`
	DoublesThrown int `json:"doublesThrown"`

	OneEighties   int `json:"oneEighties"`
	Scores140Plus int `json:"scores140Plus"`
	Scores100Plus int `json:"scores100Plus"`
	Scores80Plus  int `json:"scores80Plus"`

	HighestScore  int `json:"highestScore"`
	HighestFinish int `json:"highestFinish"`
	LastFinish    int `json:"lastFinish"`

	// LegDarts holds the darts used for every leg this player won, in order.
	LegDarts []int `json:"legDarts"`
}

// New returns empty stats.
func New() DartStats {
	return DartStats{LegDarts: []int{}}
}

// Clone returns a copy that shares no memory with s.
func (s DartStats) Clone() DartStats {
	out := s
	out.LegDarts = append(make([]int, 0, len(s.LegDarts)), s.LegDarts...)
	return out
}

// RegisterTurn adds a visit score. legTurn is the 1-based visit number of the
// player within the current leg; only the first three count for first-9.
func RegisterTurn(s DartStats, score, legTurn int) DartStats {
	out := s.Clone()

	out.TotalScore += score
	out.TotalTurns++

	if legTurn >= 1 && legTurn <= First9Turns {
		out.First9Score += score
		out.First9Turns++
	}

	switch {
	case score == 180:
		out.OneEighties++
	case score >= 140:
		out.Scores140Plus++
	case score >= 100:
		out.Scores100Plus++
	case score >= 80:
		out.Scores80Plus++
	}

	if score > out.HighestScore {
		out.HighestScore = score
	}
	return out
}

// RegisterDoubleAttempt records darts thrown at a double and how many of them hit.
func RegisterDoubleAttempt(s DartStats, dartsOnDouble, hits int) DartStats {
	out := s.Clone()
	out.DoublesThrown += dartsOnDouble
	out.DoublesHit += hits
	return out
}

// RegisterLeg records a won leg: the darts it took and the finishing score.
func RegisterLeg(s DartStats, darts, finish int) DartStats {
	out := s.Clone()
	out.LegDarts = append(out.LegDarts, darts)
	out.LastFinish = finish
	if finish > out.HighestFinish {
		out.HighestFinish = finish
	}
	return out
}
