package match

import "github.com/merev/ds-scorekeeper/internal/stats"

// PlayerResult is one player's finalized statistics.
type PlayerResult struct {
	Player Player                 `json:"player"`
	Stats  stats.FinalStatsRecord `json:"stats"`
	Winner bool                   `json:"winner"`
}

// FinalStats finalizes every player's statistics of a completed match.
func (s State) FinalStats() ([]PlayerResult, error) {
	if s.Phase != Complete {
		return nil, ErrNotComplete
	}
	out := make([]PlayerResult, len(s.Players))
	for i, p := range s.Players {
		st := s.Stats[i]
		out[i] = PlayerResult{
			Player: p,
			Stats:  stats.Finalize(st, st.LastFinish, s.Scores[i].TotalDarts),
			Winner: i == s.Winner,
		}
	}
	return out, nil
}

// BeginPersist takes the persistence latch. It fails while a save is running
// and after one succeeded, so the result is written at most once.
func (s State) BeginPersist() (State, error) {
	if s.Phase != Complete {
		return s, ErrNotComplete
	}
	switch s.Persistence.Status {
	case PersistInFlight:
		return s, ErrPersistInFlight
	case PersistDone:
		return s, ErrAlreadyPersisted
	}
	next := s.clone()
	next.Persistence = Persistence{Status: PersistInFlight}
	return next, nil
}

// FinishPersist marks the result as stored under matchID.
func (s State) FinishPersist(matchID string) State {
	next := s.clone()
	next.Persistence = Persistence{Status: PersistDone, MatchID: matchID}
	return next
}

// FailPersist releases the latch so the save can be retried.
func (s State) FailPersist() State {
	next := s.clone()
	next.Persistence = Persistence{Status: PersistIdle}
	return next
}
