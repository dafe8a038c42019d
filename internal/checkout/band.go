package checkout

// Band groups finishes by how many darts at a double a player could have
// needed to hit them. It drives the "darts on double" prompt after a checkout.
type Band int

const (
	// BandAutoOne finishes need set-up darts, so at most one dart was on the double.
	BandAutoOne Band = iota
	// BandOneToThree finishes are doubles themselves; any of the three darts may have been on it.
	BandOneToThree
	// BandOneOrTwo finishes need one set-up dart at most.
	BandOneOrTwo
)

func (b Band) String() string {
	switch b {
	case BandAutoOne:
		return "auto-one"
	case BandOneToThree:
		return "one-to-three"
	default:
		return "one-or-two"
	}
}

// Options lists the dart counts a player may report for a finish in this band.
func (b Band) Options() []int {
	switch b {
	case BandAutoOne:
		return []int{1}
	case BandOneToThree:
		return []int{1, 2, 3}
	default:
		return []int{1, 2}
	}
}

// Automatic reports whether the band resolves without asking the player.
func (b Band) Automatic() bool {
	return b == BandAutoOne
}

// BandFor classifies a finish.
func BandFor(finish int) Band {
	switch {
	case finish == 99 || finish >= 101:
		return BandAutoOne
	case isDouble(finish):
		return BandOneToThree
	default:
		return BandOneOrTwo
	}
}

// CheckoutDarts returns the darts used in a finishing visit given how many of
// them were aimed at the double.
func CheckoutDarts(finish, dartsOnDouble int) int {
	setup := SetupDarts(finish)
	if setup < 0 {
		setup = 0
	}
	n := setup + dartsOnDouble
	if n > 3 {
		n = 3
	}
	if n < 1 {
		n = 1
	}
	return n
}
