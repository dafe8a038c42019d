package match

import (
	"errors"
	"reflect"
	"testing"
)

func TestUndoRoundTrip(t *testing.T) {
	s := newStarted(t, DefaultConfig(), "a", "b")
	s = submit(t, s, 100, 60, 45)
	before := s

	after := submit(t, s, 26)
	undone, out, err := after.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if out.Kind != OutcomeUndone || out.Player != 1 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if !reflect.DeepEqual(undone, before) {
		t.Fatalf("undo did not restore state:\n got %+v\nwant %+v", undone, before)
	}

	replayed := submit(t, undone, 26)
	if !reflect.DeepEqual(replayed, after) {
		t.Fatalf("replay differs:\n got %+v\nwant %+v", replayed, after)
	}
}

func TestUndoBlockedAtLegStart(t *testing.T) {
	s := newStarted(t, DefaultConfig(), "a", "b")
	if s.CanUndo() {
		t.Fatal("fresh match must not be undoable")
	}
	if _, _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}

	s = submit(t, s, 60)
	if _, _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("first visit of a leg must not be undoable, got %v", err)
	}

	s = submit(t, s, 60)
	s, _, err := s.Undo()
	if err != nil {
		t.Fatalf("undo second visit: %v", err)
	}
	if s.Current != 1 || s.Scores[1].Remaining != 501 {
		t.Fatalf("unexpected state after undo: current %d %+v", s.Current, s.Scores[1])
	}
}

func TestUndoCheckoutAndLegBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = 2
	s := newStarted(t, cfg, "a", "b")
	s = submit(t, s, 180, 20, 180, 20, 101, 20)
	beforeCheckout := s

	s = submit(t, s, 40)
	if s.Scores[0].LegsWon != 1 {
		t.Fatal("leg not won")
	}
	undone, _, err := s.Undo()
	if err != nil {
		t.Fatalf("undo checkout: %v", err)
	}
	if !reflect.DeepEqual(undone, beforeCheckout) {
		t.Fatal("undoing a checkout must restore the previous leg")
	}

	// first visit of the new leg cannot be taken back
	s = submit(t, s, 60)
	if _, _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo across leg boundary, got %v", err)
	}
}

func TestUndoClearsPendingPrompt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrackDoubles = true
	s := newStarted(t, cfg, "a", "b")
	s = submit(t, s, 180, 20, 180, 20)
	before := s

	pending, out, err := s.SubmitTurn(101)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeAwaitingInput {
		t.Fatalf("expected prompt, got %v", out.Kind)
	}
	undone, _, err := pending.Undo()
	if err != nil {
		t.Fatalf("undo pending: %v", err)
	}
	if undone.Pending.Active() {
		t.Fatal("pending prompt survived undo")
	}
	if !reflect.DeepEqual(undone, before) {
		t.Fatal("undo of a pending visit must restore the state before it")
	}
}

func TestUndoAfterCompletion(t *testing.T) {
	s := newStarted(t, DefaultConfig(), "a", "b")
	s = submit(t, s, 180, 20, 180, 20, 101, 20, 40)
	if _, _, err := s.Undo(); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
}

func TestHistoryStaysWithinOneLeg(t *testing.T) {
	cfg := Config{StartingScore: 301, Mode: FirstTo, Unit: Legs, Target: 5}
	s := newStarted(t, cfg, "a")
	for leg := 1; leg <= 4; leg++ {
		s = submit(t, s, 180, 81, 40)
		if s.Scores[0].LegsWon != leg {
			t.Fatalf("leg %d not won", leg)
		}
		if len(s.History) > 4 {
			t.Fatalf("after leg %d history holds %d snapshots", leg, len(s.History))
		}
	}

	s = submit(t, s, 180, 60)
	if len(s.History) != 2 {
		t.Fatalf("history = %d snapshots, want 2", len(s.History))
	}
	s, _, err := s.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.Scores[0].Remaining != 121 {
		t.Fatalf("remaining = %d, want 121", s.Scores[0].Remaining)
	}
	if _, _, err := s.Undo(); err == nil {
		t.Fatal("expected undo to stop at the leg start")
	}
}

func TestUndoPendingFirstVisitThenCheckout(t *testing.T) {
	cfg := Config{StartingScore: 301, Mode: FirstTo, Unit: Legs, Target: 2, TrackDoubles: true}
	s := newStarted(t, cfg, "a", "b")
	beforeCheckout := submit(t, s, 180, 20)

	afterCheckout := submit(t, beforeCheckout, 121)
	if afterCheckout.Scores[0].LegsWon != 1 {
		t.Fatal("leg not won")
	}

	// b opens the next leg leaving 170, which asks for double attempts
	pending, out, err := afterCheckout.SubmitTurn(131)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeAwaitingInput {
		t.Fatalf("expected prompt, got %v", out.Kind)
	}

	s, _, err = pending.Undo()
	if err != nil {
		t.Fatalf("undo pending: %v", err)
	}
	if !reflect.DeepEqual(s, afterCheckout) {
		t.Fatal("undoing the pending visit must restore the state after the checkout")
	}
	s, _, err = s.Undo()
	if err != nil {
		t.Fatalf("undo checkout: %v", err)
	}
	if !reflect.DeepEqual(s, beforeCheckout) {
		t.Fatal("undoing the checkout must restore the previous leg")
	}
}
