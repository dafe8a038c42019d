package checkout

import (
	"reflect"
	"testing"
)

func TestAnalyzePossible(t *testing.T) {
	tests := []struct {
		remaining int
		want      bool
	}{
		{170, true},
		{40, true},
		{32, true},
		{2, true},
		{100, true},
		{1, false},
		{171, false},
		{0, false},
		{3, false},
		{-4, false},
	}
	for _, tt := range tests {
		if got := Analyze(tt.remaining).Possible; got != tt.want {
			t.Errorf("Analyze(%d).Possible = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestAnalyzeDartsOnDouble(t *testing.T) {
	tests := []struct {
		remaining int
		want      []int
	}{
		{40, []int{1, 2, 3}},
		{32, []int{1, 2, 3}},
		{2, []int{1}},
		// T20 T20 bull is the only route: three darts thrown, only the
		// bull is at a double. DartsOnDouble counts darts at a double,
		// not darts thrown, so 3 is not an option here.
		{170, []int{1}},
		{50, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		info := Analyze(tt.remaining)
		if !reflect.DeepEqual(info.DartsOnDouble, tt.want) {
			t.Errorf("Analyze(%d).DartsOnDouble = %v, want %v", tt.remaining, info.DartsOnDouble, tt.want)
		}
		if info.Min != tt.want[0] || info.Max != tt.want[len(tt.want)-1] {
			t.Errorf("Analyze(%d) min/max = %d/%d", tt.remaining, info.Min, info.Max)
		}
	}
}

func TestAnalyzeImpossibleHasEmptyOptions(t *testing.T) {
	info := Analyze(171)
	if info.DartsOnDouble == nil || len(info.DartsOnDouble) != 0 {
		t.Fatalf("expected empty non-nil options, got %#v", info.DartsOnDouble)
	}
	if info.Min != 0 || info.Max != 0 {
		t.Fatalf("expected zero min/max, got %d/%d", info.Min, info.Max)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		finish int
		want   Band
	}{
		{2, BandOneToThree},
		{40, BandOneToThree},
		{50, BandOneToThree},
		{3, BandOneOrTwo},
		{41, BandOneOrTwo},
		{98, BandOneOrTwo},
		{100, BandOneOrTwo},
		{99, BandAutoOne},
		{101, BandAutoOne},
		{160, BandAutoOne},
		{170, BandAutoOne},
	}
	for _, tt := range tests {
		if got := BandFor(tt.finish); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.finish, got, tt.want)
		}
	}
}

func TestBandOptions(t *testing.T) {
	if !reflect.DeepEqual(BandAutoOne.Options(), []int{1}) {
		t.Errorf("auto-one options = %v", BandAutoOne.Options())
	}
	if !reflect.DeepEqual(BandOneToThree.Options(), []int{1, 2, 3}) {
		t.Errorf("one-to-three options = %v", BandOneToThree.Options())
	}
	if !reflect.DeepEqual(BandOneOrTwo.Options(), []int{1, 2}) {
		t.Errorf("one-or-two options = %v", BandOneOrTwo.Options())
	}
	if !BandAutoOne.Automatic() || BandOneOrTwo.Automatic() {
		t.Error("only the auto-one band resolves automatically")
	}
}

func TestSetupDarts(t *testing.T) {
	tests := map[int]int{
		40:  0,
		50:  0,
		3:   1,
		100: 1,
		110: 1,
		99:  2,
		170: 2,
		159: -1,
	}
	for finish, want := range tests {
		if got := SetupDarts(finish); got != want {
			t.Errorf("SetupDarts(%d) = %d, want %d", finish, got, want)
		}
	}
}

func TestCheckoutDarts(t *testing.T) {
	tests := []struct {
		finish, onDouble, want int
	}{
		{40, 1, 1},
		{40, 3, 3},
		{60, 1, 2},
		{100, 2, 3},
		{170, 1, 3},
	}
	for _, tt := range tests {
		if got := CheckoutDarts(tt.finish, tt.onDouble); got != tt.want {
			t.Errorf("CheckoutDarts(%d, %d) = %d, want %d", tt.finish, tt.onDouble, got, tt.want)
		}
	}
}

func TestValidVisit(t *testing.T) {
	for _, s := range []int{159, 162, 163, 165, 166, 168, 169, 172, 173, 175, 176, 178, 179} {
		if ValidVisit(s) {
			t.Errorf("ValidVisit(%d) = true, want false", s)
		}
	}
	for _, s := range []int{0, 1, 60, 140, 160, 161, 164, 167, 170, 171, 174, 177, 180} {
		if !ValidVisit(s) {
			t.Errorf("ValidVisit(%d) = false, want true", s)
		}
	}
	if ValidVisit(-1) || ValidVisit(181) {
		t.Error("out of range visits must be invalid")
	}
}
