package game

import (
	"time"

	"github.com/merev/ds-scorekeeper/internal/match"
)

// CreateMatchRequest is the body we expect on POST /api/matches.
type CreateMatchRequest struct {
	Players []match.Player   `json:"players"`
	Config  match.Config     `json:"config"`
	Start   match.StartOrder `json:"start"`
}

// TurnRequest is the body of POST /api/matches/{id}/turns.
type TurnRequest struct {
	Score *int `json:"score"`
}

// DartsRequest answers a dart count prompt.
type DartsRequest struct {
	Darts *int `json:"darts"`
}

// MatchView is what clients render. It is rebuilt after every transition.
type MatchView struct {
	ID          string               `json:"id"`
	Config      match.Config         `json:"config"`
	Players     []match.Player       `json:"players"`
	Scores      []match.PlayerState  `json:"scores"`
	Averages    []float64            `json:"averages"`
	Current     int                  `json:"currentPlayer"`
	Phase       match.Phase          `json:"phase"`
	Pending     match.Pending        `json:"pending"`
	Winner      *match.Player        `json:"winner,omitempty"`
	CanUndo     bool                 `json:"canUndo"`
	Persistence match.Persistence    `json:"persistence"`
	LastOutcome *match.Outcome       `json:"lastOutcome,omitempty"`
	Results     []match.PlayerResult `json:"results,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}
