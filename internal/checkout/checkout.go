package checkout

import "sort"

const (
	MinFinish = 2
	MaxFinish = 170
	Bullseye  = 50
	MaxVisit  = 180
)

// Info describes whether a remaining score can be finished with three darts
// or fewer, and how many of those darts could have been aimed at a double.
type Info struct {
	Possible      bool  `json:"possible"`
	DartsOnDouble []int `json:"dartsOnDouble"`
	Min           int   `json:"minDartsOnDouble"`
	Max           int   `json:"maxDartsOnDouble"`
}

// dartValues holds every distinct score a single dart can produce.
var dartValues = buildDartValues()

func buildDartValues() []int {
	seen := make(map[int]bool)
	var out []int
	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for i := 1; i <= 20; i++ {
		add(i)
		add(i * 2)
		add(i * 3)
	}
	add(25)
	add(Bullseye)
	sort.Ints(out)
	return out
}

// isDouble reports whether v is the value of a double segment or the bullseye.
func isDouble(v int) bool {
	return (v > 0 && v <= 40 && v%2 == 0) || v == Bullseye
}

// Analyze computes the checkout options for a remaining score.
func Analyze(remaining int) Info {
	if remaining < MinFinish || remaining > MaxFinish || remaining%2 == 1 {
		return Info{DartsOnDouble: []int{}}
	}

	options := make(map[int]bool)

	// one dart
	if isDouble(remaining) {
		options[1] = true
	}

	// two darts: the last one always lands on a double
	for _, first := range dartValues {
		if first >= remaining {
			break
		}
		if !isDouble(remaining - first) {
			continue
		}
		if isDouble(first) {
			options[2] = true
		} else {
			options[1] = true
		}
	}

	// three darts
	for _, first := range dartValues {
		if first >= remaining {
			break
		}
		for _, second := range dartValues {
			if first+second >= remaining {
				break
			}
			if !isDouble(remaining - first - second) {
				continue
			}
			n := 1
			if isDouble(first) {
				n++
			}
			if isDouble(second) {
				n++
			}
			options[n] = true
		}
	}

	darts := make([]int, 0, len(options))
	for n := range options {
		darts = append(darts, n)
	}
	sort.Ints(darts)

	info := Info{Possible: len(darts) > 0, DartsOnDouble: darts}
	if info.Possible {
		info.Min = darts[0]
		info.Max = darts[len(darts)-1]
	}
	return info
}

// SetupDarts returns the minimum number of darts needed before the finishing
// double for a finish, or -1 when no three-dart route exists.
func SetupDarts(finish int) int {
	if isDouble(finish) {
		return 0
	}
	for _, first := range dartValues {
		if first < finish && isDouble(finish-first) {
			return 1
		}
	}
	for _, first := range dartValues {
		for _, second := range dartValues {
			if first+second < finish && isDouble(finish-first-second) {
				return 2
			}
		}
	}
	return -1
}

// impossibleTotals are visit scores no combination of three darts produces.
var impossibleTotals = map[int]bool{
	159: true, 162: true, 163: true, 165: true, 166: true, 168: true,
	169: true, 172: true, 173: true, 175: true, 176: true, 178: true, 179: true,
}

// IsImpossibleTotal reports whether score cannot be thrown with three darts.
func IsImpossibleTotal(score int) bool {
	return impossibleTotals[score]
}

// ValidVisit reports whether score is a legal three-dart total.
func ValidVisit(score int) bool {
	return score >= 0 && score <= MaxVisit && !IsImpossibleTotal(score)
}
