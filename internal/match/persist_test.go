package match

import (
	"errors"
	"math"
	"testing"
)

func completedMatch(t *testing.T) State {
	t.Helper()
	s := newStarted(t, DefaultConfig(), "a", "b")
	return submit(t, s, 180, 20, 180, 20, 101, 20, 40)
}

func TestPersistenceLatch(t *testing.T) {
	s := newStarted(t, DefaultConfig(), "a", "b")
	if _, err := s.BeginPersist(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("expected ErrNotComplete, got %v", err)
	}

	s = completedMatch(t)
	inFlight, err := s.BeginPersist()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if inFlight.Persistence.Status != PersistInFlight {
		t.Fatalf("status = %v", inFlight.Persistence.Status)
	}
	if _, err := inFlight.BeginPersist(); !errors.Is(err, ErrPersistInFlight) {
		t.Fatalf("expected ErrPersistInFlight, got %v", err)
	}

	failed := inFlight.FailPersist()
	if _, err := failed.BeginPersist(); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}

	done := inFlight.FinishPersist("m-1")
	if done.Persistence.Status != PersistDone || done.Persistence.MatchID != "m-1" {
		t.Fatalf("unexpected persistence %+v", done.Persistence)
	}
	if _, err := done.BeginPersist(); !errors.Is(err, ErrAlreadyPersisted) {
		t.Fatalf("expected ErrAlreadyPersisted, got %v", err)
	}
}

func TestFinalStats(t *testing.T) {
	s := newStarted(t, DefaultConfig(), "a", "b")
	if _, err := s.FinalStats(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("expected ErrNotComplete, got %v", err)
	}

	results, err := completedMatch(t).FinalStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}

	a, b := results[0], results[1]
	if !a.Winner || b.Winner {
		t.Fatal("wrong winner flag")
	}
	// 501 points in 12 darts
	if a.Stats.ThreeDartAvg != 125.25 {
		t.Errorf("winner average = %v, want 125.25", a.Stats.ThreeDartAvg)
	}
	if a.Stats.Finish != 40 || a.Stats.LegsPlayed != 1 || a.Stats.BestLeg == nil || *a.Stats.BestLeg != 12 {
		t.Errorf("unexpected winner record %+v", a.Stats)
	}
	if math.Abs(b.Stats.ThreeDartAvg-20) > 1e-9 {
		t.Errorf("loser average = %v, want 20", b.Stats.ThreeDartAvg)
	}
	if b.Stats.Finish != 0 || b.Stats.BestLeg != nil || b.Stats.CheckoutPercentage != 0 {
		t.Errorf("unexpected loser record %+v", b.Stats)
	}
}
