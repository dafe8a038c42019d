package match

import "github.com/merev/ds-scorekeeper/internal/stats"

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Scores:     append([]PlayerState(nil), s.Scores...),
		Stats:      make([]stats.DartStats, len(s.Stats)),
		Current:    s.Current,
		LegStarter: s.LegStarter,
		SetStarter: s.SetStarter,
	}
	for i, st := range s.Stats {
		snap.Stats[i] = st.Clone()
	}
	return snap
}

// pushHistory records the state before a visit. Once a leg is past its first
// visit, nothing below that leg's start snapshot can be undone any more, so
// those entries are dropped and History stays bounded by one leg.
func (s *State) pushHistory() {
	snap := s.snapshot()
	if !snap.legStart() {
		for i := len(s.History) - 1; i > 0; i-- {
			if s.History[i].legStart() {
				s.History = append([]Snapshot(nil), s.History[i:]...)
				break
			}
		}
	}
	s.History = append(s.History, snap)
}

// legStart reports whether a snapshot was taken before anyone threw in the leg.
func (snap Snapshot) legStart() bool {
	for _, ps := range snap.Scores {
		if ps.LegTurns != 0 {
			return false
		}
	}
	return true
}

// CanUndo reports whether Undo would succeed.
func (s State) CanUndo() bool {
	if s.Phase != InProgress || len(s.History) == 0 {
		return false
	}
	return s.Pending.Active() || !s.History[len(s.History)-1].legStart()
}

// Undo restores the state before the last visit. A visit still waiting for a
// dart count is always undoable; otherwise undo stops at the start of a leg.
func (s State) Undo() (State, Outcome, error) {
	if s.Phase != InProgress {
		return s, Outcome{}, ErrNotInProgress
	}
	if !s.CanUndo() {
		return s, Outcome{}, ErrNothingToUndo
	}

	next := s.clone()
	top := next.History[len(next.History)-1]
	next.History = next.History[:len(next.History)-1]
	if len(next.History) == 0 {
		next.History = nil
	}

	next.Scores = append([]PlayerState(nil), top.Scores...)
	for i, st := range top.Stats {
		next.Stats[i] = st.Clone()
	}
	next.Current = top.Current
	next.LegStarter = top.LegStarter
	next.SetStarter = top.SetStarter
	next.Pending = Pending{}

	p := next.Current
	return next, Outcome{Kind: OutcomeUndone, Player: p, Remaining: next.Scores[p].Remaining}, nil
}
