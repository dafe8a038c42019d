package stats

import (
	"math"
	"reflect"
	"testing"
)

func TestRegisterTurnDoesNotMutateInput(t *testing.T) {
	s := New()
	s = RegisterLeg(s, 15, 40)

	out := RegisterTurn(s, 100, 1)
	out = RegisterLeg(out, 21, 32)

	if s.TotalScore != 0 || s.TotalTurns != 0 {
		t.Fatalf("input mutated: %+v", s)
	}
	if len(s.LegDarts) != 1 {
		t.Fatalf("input leg darts mutated: %v", s.LegDarts)
	}
	if out.TotalScore != 100 || out.TotalTurns != 1 {
		t.Fatalf("unexpected totals: %+v", out)
	}
}

func TestRegisterTurnFirst9OnlyCountsThreeVisits(t *testing.T) {
	s := New()
	for i, score := range []int{60, 60, 60, 100} {
		s = RegisterTurn(s, score, i+1)
	}
	if s.First9Score != 180 {
		t.Errorf("First9Score = %d, want 180", s.First9Score)
	}
	if s.First9Turns != 3 {
		t.Errorf("First9Turns = %d, want 3", s.First9Turns)
	}
	if s.TotalScore != 280 || s.TotalTurns != 4 {
		t.Errorf("totals = %d/%d, want 280/4", s.TotalScore, s.TotalTurns)
	}
}

func TestRegisterTurnTotalsAreOrderIndependent(t *testing.T) {
	a, b := New(), New()
	scores := []int{26, 140, 81, 180, 45}
	for i, s := range scores {
		a = RegisterTurn(a, s, i+10)
		b = RegisterTurn(b, scores[len(scores)-1-i], i+10)
	}
	if a.TotalScore != b.TotalScore || a.TotalTurns != b.TotalTurns {
		t.Fatalf("totals differ: %+v vs %+v", a, b)
	}
}

func TestRegisterTurnMilestones(t *testing.T) {
	tests := []struct {
		score                  int
		s180, s140, s100, s80 int
	}{
		{180, 1, 0, 0, 0},
		{179, 0, 1, 0, 0},
		{140, 0, 1, 0, 0},
		{139, 0, 0, 1, 0},
		{100, 0, 0, 1, 0},
		{99, 0, 0, 0, 1},
		{80, 0, 0, 0, 1},
		{79, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		s := RegisterTurn(New(), tt.score, 1)
		got := []int{s.OneEighties, s.Scores140Plus, s.Scores100Plus, s.Scores80Plus}
		want := []int{tt.s180, tt.s140, tt.s100, tt.s80}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("score %d: milestones = %v, want %v", tt.score, got, want)
		}
		if s.HighestScore != tt.score {
			t.Errorf("score %d: HighestScore = %d", tt.score, s.HighestScore)
		}
	}
}

func TestRegisterDoubleAttempt(t *testing.T) {
	s := RegisterDoubleAttempt(New(), 3, 1)
	s = RegisterDoubleAttempt(s, 2, 0)
	if s.DoublesThrown != 5 || s.DoublesHit != 1 {
		t.Fatalf("doubles = %d/%d, want 1/5", s.DoublesHit, s.DoublesThrown)
	}
}

func TestFinalizeZeroDivision(t *testing.T) {
	rec := Finalize(New(), 0, 0)
	for name, v := range map[string]float64{
		"three_dart_avg":      rec.ThreeDartAvg,
		"first9_avg":          rec.First9Avg,
		"checkout_percentage": rec.CheckoutPercentage,
		"double_percentage":   rec.DoublePercentage,
	} {
		if v != 0 || math.IsNaN(v) {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if rec.BestLeg != nil || rec.WorstLeg != nil {
		t.Error("best/worst leg must be nil without won legs")
	}
	if rec.LegDarts == nil {
		t.Error("leg darts must be an empty list, not nil")
	}
}

func TestFinalizeDerivedFields(t *testing.T) {
	s := New()
	s = RegisterTurn(s, 100, 1)
	s = RegisterTurn(s, 60, 2)
	s = RegisterDoubleAttempt(s, 4, 1)
	s = RegisterLeg(s, 18, 40)
	s = RegisterLeg(s, 12, 121)
	s = RegisterLeg(s, 24, 20)

	rec := Finalize(s, 20, 8)

	if rec.ThreeDartAvg != 60 {
		t.Errorf("ThreeDartAvg = %v, want 60", rec.ThreeDartAvg)
	}
	if rec.First9Avg != 80 {
		t.Errorf("First9Avg = %v, want 80", rec.First9Avg)
	}
	if rec.CheckoutPercentage != 25 || rec.DoublePercentage != 25 {
		t.Errorf("percentages = %v/%v, want 25", rec.CheckoutPercentage, rec.DoublePercentage)
	}
	if rec.BestLeg == nil || *rec.BestLeg != 12 {
		t.Errorf("BestLeg = %v, want 12", rec.BestLeg)
	}
	if rec.WorstLeg == nil || *rec.WorstLeg != 24 {
		t.Errorf("WorstLeg = %v, want 24", rec.WorstLeg)
	}
	if rec.LegsPlayed != 3 {
		t.Errorf("LegsPlayed = %d, want 3", rec.LegsPlayed)
	}
	if rec.HighestFinish != 121 {
		t.Errorf("HighestFinish = %d, want 121", rec.HighestFinish)
	}
	if rec.Finish != 20 || rec.TotalDarts != 8 || rec.TotalTurns != 2 {
		t.Errorf("unexpected record: %+v", rec)
	}
}
