package match

import (
	"fmt"
)

// Mode decides how Target turns into the number of legs or sets needed to win.
type Mode string

const (
	FirstTo Mode = "first-to"
	BestOf  Mode = "best-of"
)

// Unit is what Target counts.
type Unit string

const (
	Legs Unit = "legs"
	Sets Unit = "sets"
)

// LegsPerSet is the number of legs a player has to win to take a set.
const LegsPerSet = 3

// Config is fixed for the duration of a match.
type Config struct {
	StartingScore int  `json:"startingScore"`
	Mode          Mode `json:"mode"`
	Unit          Unit `json:"unit"`
	Target        int  `json:"target"`
	TrackDoubles  bool `json:"trackDoubles"`
}

// DefaultConfig is a single leg of 501.
func DefaultConfig() Config {
	return Config{
		StartingScore: 501,
		Mode:          FirstTo,
		Unit:          Legs,
		Target:        1,
	}
}

func (c Config) Validate() error {
	switch c.StartingScore {
	case 301, 501, 701:
	default:
		return fmt.Errorf("%w: starting score must be 301, 501 or 701, got %d", ErrInvalidConfig, c.StartingScore)
	}
	if c.Mode != FirstTo && c.Mode != BestOf {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Unit != Legs && c.Unit != Sets {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidConfig, c.Unit)
	}
	if c.Target <= 0 {
		return fmt.Errorf("%w: target must be > 0", ErrInvalidConfig)
	}
	return nil
}

// WinThreshold is the number of legs or sets that wins the match.
func (c Config) WinThreshold() int {
	if c.Mode == BestOf {
		return c.Target/2 + 1
	}
	return c.Target
}
