package match

import "fmt"

// StartOrder is the outcome of whatever decided who throws first: a full
// ranking (bulls, manual order) or just the index of the starter (wheel,
// coin). A non-empty Ranking wins over Winner.
type StartOrder struct {
	Ranking []int `json:"ranking,omitempty"`
	Winner  int   `json:"winner"`
}

// ResolveOrder returns the seating permutation for a start order: position i
// of the result holds the old index of the player who now sits at i. A
// winner index rotates the table so everybody keeps their neighbours.
func ResolveOrder(playerCount int, order StartOrder) ([]int, error) {
	if playerCount <= 0 {
		return nil, ErrNoPlayers
	}

	if len(order.Ranking) > 0 {
		if len(order.Ranking) != playerCount {
			return nil, fmt.Errorf("%w: ranking has %d entries for %d players", ErrInvalidOrder, len(order.Ranking), playerCount)
		}
		seen := make([]bool, playerCount)
		for _, idx := range order.Ranking {
			if idx < 0 || idx >= playerCount || seen[idx] {
				return nil, fmt.Errorf("%w: ranking %v is not a permutation", ErrInvalidOrder, order.Ranking)
			}
			seen[idx] = true
		}
		return append([]int(nil), order.Ranking...), nil
	}

	if order.Winner < 0 || order.Winner >= playerCount {
		return nil, fmt.Errorf("%w: starter %d out of range", ErrInvalidOrder, order.Winner)
	}
	perm := make([]int, playerCount)
	for i := range perm {
		perm[i] = (order.Winner + i) % playerCount
	}
	return perm, nil
}

// Start seats the players for the given order and opens the first leg.
// Current, leg and set starter all point at the new index 0.
func (s State) Start(order StartOrder) (State, Outcome, error) {
	if s.Phase != AwaitingStartOrder {
		return s, Outcome{}, ErrAlreadyStarted
	}
	perm, err := ResolveOrder(len(s.Players), order)
	if err != nil {
		return s, Outcome{}, err
	}

	next := s.clone()
	for i, old := range perm {
		next.Players[i] = s.Players[old]
		next.Scores[i] = s.Scores[old]
		next.Stats[i] = s.Stats[old].Clone()
	}
	next.Current, next.LegStarter, next.SetStarter = 0, 0, 0
	next.Phase = InProgress

	return next, Outcome{Kind: OutcomeStarted, Remaining: s.Config.StartingScore}, nil
}
