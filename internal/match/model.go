package match

import (
	"fmt"

	"github.com/merev/ds-scorekeeper/internal/stats"
)

// Player is an external identity; the engine never changes it.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// PlayerState is a player's scoreboard.
type PlayerState struct {
	Remaining  int `json:"remaining"`
	TotalScore int `json:"totalScore"`
	TotalDarts int `json:"totalDarts"`
	LegDarts   int `json:"legDarts"`
	LegTurns   int `json:"legTurns"`
	LastTurn   int `json:"lastTurn"`
	LegsWon    int `json:"legsWon"`
	SetsWon    int `json:"setsWon"`
}

type Phase int

const (
	AwaitingStartOrder Phase = iota
	InProgress
	Complete
)

func (p Phase) String() string {
	switch p {
	case AwaitingStartOrder:
		return "awaiting-start-order"
	case InProgress:
		return "in-progress"
	default:
		return "complete"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, text, "phase", AwaitingStartOrder, InProgress, Complete)
}

// PendingKind tags the interaction the current visit is waiting on.
type PendingKind int

const (
	PendingNone PendingKind = iota
	// PendingCheckoutDarts asks how many darts of a checkout were on the double.
	PendingCheckoutDarts
	// PendingDoubles asks how many darts of a non-finishing visit were on a double.
	PendingDoubles
)

func (k PendingKind) String() string {
	switch k {
	case PendingCheckoutDarts:
		return "checkout-darts"
	case PendingDoubles:
		return "double-attempts"
	default:
		return "none"
	}
}

func (k PendingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PendingKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(k, text, "pending kind", PendingNone, PendingCheckoutDarts, PendingDoubles)
}

// Pending holds a submitted visit until the player answers the prompt.
type Pending struct {
	Kind    PendingKind `json:"kind"`
	Score   int         `json:"score,omitempty"`
	Options []int       `json:"options,omitempty"`
}

// Active reports whether a prompt blocks further visits.
func (p Pending) Active() bool {
	return p.Kind != PendingNone
}

type PersistStatus int

const (
	PersistIdle PersistStatus = iota
	PersistInFlight
	PersistDone
)

func (s PersistStatus) String() string {
	switch s {
	case PersistInFlight:
		return "in-flight"
	case PersistDone:
		return "done"
	default:
		return "idle"
	}
}

func (s PersistStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PersistStatus) UnmarshalText(text []byte) error {
	return unmarshalEnum(s, text, "persist status", PersistIdle, PersistInFlight, PersistDone)
}

// Persistence tracks whether the final result reached the store.
type Persistence struct {
	Status  PersistStatus `json:"status"`
	MatchID string        `json:"matchId,omitempty"`
}

// Snapshot is everything undo restores.
type Snapshot struct {
	Scores     []PlayerState
	Stats      []stats.DartStats
	Current    int
	LegStarter int
	SetStarter int
}

// State is a whole match. Transitions return a new State and leave the
// receiver untouched, so callers can keep old values around freely.
type State struct {
	Config      Config            `json:"config"`
	Players     []Player          `json:"players"`
	Scores      []PlayerState     `json:"scores"`
	Stats       []stats.DartStats `json:"stats"`
	Current     int               `json:"currentPlayer"`
	LegStarter  int               `json:"legStarter"`
	SetStarter  int               `json:"setStarter"`
	Phase       Phase             `json:"phase"`
	Pending     Pending           `json:"pending"`
	Winner      int               `json:"winner"`
	Persistence Persistence       `json:"persistence"`
	History     []Snapshot        `json:"-"`
}

// OutcomeKind says what a transition did.
type OutcomeKind int

const (
	OutcomeScored OutcomeKind = iota
	OutcomeBust
	OutcomeCheckout
	OutcomeAwaitingInput
	OutcomeUndone
	OutcomeStarted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeScored:
		return "scored"
	case OutcomeBust:
		return "bust"
	case OutcomeCheckout:
		return "checkout"
	case OutcomeAwaitingInput:
		return "awaiting-input"
	case OutcomeUndone:
		return "undone"
	default:
		return "started"
	}
}

func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OutcomeKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(k, text, "outcome kind",
		OutcomeScored, OutcomeBust, OutcomeCheckout, OutcomeAwaitingInput, OutcomeUndone, OutcomeStarted)
}

// Outcome describes a successful transition. Leg, set and match completion
// are reported as flags because one checkout can complete all three.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Player    int         `json:"player"`
	Score     int         `json:"score"`
	Remaining int         `json:"remaining"`
	Options   []int       `json:"options,omitempty"`
	LegWon    bool        `json:"legWon,omitempty"`
	SetWon    bool        `json:"setWon,omitempty"`
	MatchWon  bool        `json:"matchWon,omitempty"`
}

// unmarshalEnum sets dst to the value in all whose String matches text.
func unmarshalEnum[T interface {
	~int
	String() string
}](dst *T, text []byte, name string, all ...T) error {
	for _, v := range all {
		if v.String() == string(text) {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", name, text)
}
