package match

import (
	"fmt"
	"slices"
	"strings"

	"github.com/merev/ds-scorekeeper/internal/checkout"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

// dartsPerVisit is what a visit that does not finish a leg costs.
const dartsPerVisit = 3

// New creates a match waiting for its starting order.
func New(players []Player, cfg Config) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}
	if len(players) == 0 {
		return State{}, ErrNoPlayers
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return State{}, fmt.Errorf("%w: player without id", ErrNoPlayers)
		}
		if seen[id] {
			return State{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seen[id] = true
	}

	s := State{
		Config:  cfg,
		Players: append([]Player(nil), players...),
		Scores:  make([]PlayerState, len(players)),
		Stats:   make([]stats.DartStats, len(players)),
		Phase:   AwaitingStartOrder,
		Winner:  -1,
	}
	for i := range players {
		s.Scores[i] = PlayerState{Remaining: cfg.StartingScore}
		s.Stats[i] = stats.New()
	}
	return s, nil
}

func (s State) clone() State {
	out := s
	out.Players = append([]Player(nil), s.Players...)
	out.Scores = append([]PlayerState(nil), s.Scores...)
	out.Stats = make([]stats.DartStats, len(s.Stats))
	for i, st := range s.Stats {
		out.Stats[i] = st.Clone()
	}
	out.History = append([]Snapshot(nil), s.History...)
	return out
}

// CurrentPlayer returns the player whose visit it is.
func (s State) CurrentPlayer() Player {
	return s.Players[s.Current]
}

// IsBust reports whether a visit leaving newRemaining from remaining is a bust:
// overshooting, leaving 1, or "finishing" from above the highest checkout.
func IsBust(remaining, newRemaining int) bool {
	switch {
	case newRemaining < 0:
		return true
	case newRemaining == 1:
		return true
	case newRemaining == 0 && remaining > checkout.MaxFinish:
		return true
	}
	return false
}

// SubmitTurn records a visit of the current player.
func (s State) SubmitTurn(score int) (State, Outcome, error) {
	if s.Phase != InProgress {
		return s, Outcome{}, ErrNotInProgress
	}
	if s.Pending.Active() {
		return s, Outcome{}, ErrAwaitingInput
	}
	if !checkout.ValidVisit(score) {
		return s, Outcome{}, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}

	next := s.clone()
	next.pushHistory()

	p := next.Current
	remaining := next.Scores[p].Remaining
	newRemaining := remaining - score

	if IsBust(remaining, newRemaining) {
		next.applyBust()
		return next, Outcome{Kind: OutcomeBust, Player: p, Score: score, Remaining: remaining}, nil
	}

	if newRemaining == 0 {
		if !next.Config.TrackDoubles {
			out := next.applyCheckout(score, dartsPerVisit, 0)
			return next, out, nil
		}
		band := checkout.BandFor(score)
		if band.Automatic() {
			out := next.applyCheckout(score, checkout.CheckoutDarts(score, 1), 1)
			return next, out, nil
		}
		next.Pending = Pending{Kind: PendingCheckoutDarts, Score: score, Options: band.Options()}
		return next, Outcome{Kind: OutcomeAwaitingInput, Player: p, Score: score, Remaining: remaining, Options: band.Options()}, nil
	}

	if next.Config.TrackDoubles {
		if info := checkout.Analyze(newRemaining); info.Possible {
			options := append([]int{0}, info.DartsOnDouble...)
			next.Pending = Pending{Kind: PendingDoubles, Score: score, Options: options}
			return next, Outcome{Kind: OutcomeAwaitingInput, Player: p, Score: score, Remaining: remaining, Options: options}, nil
		}
	}

	next.applyScore(score)
	return next, Outcome{Kind: OutcomeScored, Player: p, Score: score, Remaining: newRemaining}, nil
}

// ConfirmCheckoutDartCount answers the prompt raised by a checkout: how many
// of the finishing visit's darts were thrown at the double.
func (s State) ConfirmCheckoutDartCount(n int) (State, Outcome, error) {
	if s.Phase != InProgress {
		return s, Outcome{}, ErrNotInProgress
	}
	if s.Pending.Kind != PendingCheckoutDarts {
		return s, Outcome{}, ErrNoPendingInput
	}
	if !slices.Contains(s.Pending.Options, n) {
		return s, Outcome{}, fmt.Errorf("%w: %d not in %v", ErrInvalidDartCount, n, s.Pending.Options)
	}

	next := s.clone()
	finish := next.Pending.Score
	next.Pending = Pending{}
	out := next.applyCheckout(finish, checkout.CheckoutDarts(finish, n), n)
	return next, out, nil
}

// ConfirmDoubleDisambiguation answers the prompt raised by a visit that left a
// finishable score: how many darts, possibly none, were thrown at a double.
func (s State) ConfirmDoubleDisambiguation(n int) (State, Outcome, error) {
	if s.Phase != InProgress {
		return s, Outcome{}, ErrNotInProgress
	}
	if s.Pending.Kind != PendingDoubles {
		return s, Outcome{}, ErrNoPendingInput
	}
	if !slices.Contains(s.Pending.Options, n) {
		return s, Outcome{}, fmt.Errorf("%w: %d not in %v", ErrInvalidDartCount, n, s.Pending.Options)
	}

	next := s.clone()
	score := next.Pending.Score
	next.Pending = Pending{}
	p := next.Current
	if n > 0 {
		next.Stats[p] = stats.RegisterDoubleAttempt(next.Stats[p], n, 0)
	}
	next.applyScore(score)
	return next, Outcome{Kind: OutcomeScored, Player: p, Score: score, Remaining: next.Scores[p].Remaining}, nil
}

func (s *State) advance() {
	s.Current = (s.Current + 1) % len(s.Players)
}

func (s *State) applyScore(score int) {
	p := s.Current
	ps := &s.Scores[p]
	s.Stats[p] = stats.RegisterTurn(s.Stats[p], score, ps.LegTurns+1)

	ps.Remaining -= score
	ps.TotalScore += score
	ps.TotalDarts += dartsPerVisit
	ps.LegDarts += dartsPerVisit
	ps.LegTurns++
	ps.LastTurn = score
	s.advance()
}

// applyBust counts the visit as three darts scoring nothing.
func (s *State) applyBust() {
	p := s.Current
	ps := &s.Scores[p]
	s.Stats[p] = stats.RegisterTurn(s.Stats[p], 0, ps.LegTurns+1)

	ps.TotalDarts += dartsPerVisit
	ps.LegDarts += dartsPerVisit
	ps.LegTurns++
	s.advance()
}

func (s *State) applyCheckout(finish, darts, dartsOnDouble int) Outcome {
	p := s.Current
	ps := &s.Scores[p]

	st := stats.RegisterTurn(s.Stats[p], finish, ps.LegTurns+1)
	if s.Config.TrackDoubles {
		st = stats.RegisterDoubleAttempt(st, dartsOnDouble, 1)
	}

	ps.TotalScore += finish
	ps.TotalDarts += darts
	ps.LegDarts += darts
	ps.LegTurns++
	ps.LastTurn = finish
	ps.LegsWon++

	s.Stats[p] = stats.RegisterLeg(st, ps.LegDarts, finish)

	out := Outcome{Kind: OutcomeCheckout, Player: p, Score: finish, LegWon: true}

	for i := range s.Scores {
		s.Scores[i].Remaining = s.Config.StartingScore
		s.Scores[i].LegDarts = 0
		s.Scores[i].LegTurns = 0
	}
	n := len(s.Players)
	s.LegStarter = (s.LegStarter + 1) % n

	if s.Config.Unit == Sets && s.Scores[p].LegsWon >= LegsPerSet {
		s.Scores[p].SetsWon++
		for i := range s.Scores {
			s.Scores[i].LegsWon = 0
		}
		s.SetStarter = (s.SetStarter + 1) % n
		s.LegStarter = s.SetStarter
		out.SetWon = true
	}

	won := s.Scores[p].LegsWon
	if s.Config.Unit == Sets {
		won = s.Scores[p].SetsWon
	}
	if won >= s.Config.WinThreshold() {
		s.Phase = Complete
		s.Winner = p
		out.MatchWon = true
	}

	s.Current = s.LegStarter
	out.Remaining = s.Config.StartingScore
	return out
}
