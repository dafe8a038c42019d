package display

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/merev/ds-scorekeeper/internal/match"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"nl", language.Dutch},
		{"nl-BE", language.Dutch},
		{"", language.English},
		{"not a tag", language.English},
	}
	for _, tt := range tests {
		if got := ParseTag(tt.in); got != tt.want {
			t.Errorf("ParseTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAverageUsesLocaleDecimalSeparator(t *testing.T) {
	if got := New(language.English).Average(60.25); got != "60.25" {
		t.Fatalf("en Average = %q, want 60.25", got)
	}
	if got := New(language.Dutch).Average(60.25); got != "60,25" {
		t.Fatalf("nl Average = %q, want 60,25", got)
	}
}

func TestOptionalInt(t *testing.T) {
	f := New(language.English)
	if got := f.OptionalInt(nil); got != "-" {
		t.Fatalf("OptionalInt(nil) = %q, want -", got)
	}
	n := 15
	if got := f.OptionalInt(&n); got != "15" {
		t.Fatalf("OptionalInt(15) = %q, want 15", got)
	}
}

func TestLabelTranslation(t *testing.T) {
	if got := New(language.Dutch).Label(labelWinner); got != "Winnaar" {
		t.Fatalf("nl winner label = %q", got)
	}
	if got := New(language.English).Label(labelWinner); got != "Winner" {
		t.Fatalf("en winner label = %q", got)
	}
	if got := New(language.Dutch).WinnerLine("Anna"); got != "Winnaar: Anna" {
		t.Fatalf("WinnerLine = %q", got)
	}
}

func TestWriteResults(t *testing.T) {
	best := 12
	results := []match.PlayerResult{
		{
			Player: match.Player{ID: "a", Name: "Anna"},
			Stats:  stats.FinalStatsRecord{ThreeDartAvg: 125.25, HighestScore: 180, OneEighties: 1, BestLeg: &best, WorstLeg: &best, LegsPlayed: 1, TotalDarts: 12},
			Winner: true,
		},
		{
			Player: match.Player{ID: "b", Name: "Bert"},
			Stats:  stats.FinalStatsRecord{ThreeDartAvg: 20, TotalDarts: 9},
		},
	}

	var buf bytes.Buffer
	if err := New(language.English).WriteResults(&buf, results); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Anna *", "Bert", "125.25", "20.00", "180", labelAverage} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 15 {
		t.Errorf("got %d lines, want 15:\n%s", lines, out)
	}
}

func TestWriteCareer(t *testing.T) {
	c := stats.Career{Matches: 3, ThreeDartAvg: 55.5, TopFinishes: []int{121, 40}, Total180s: 2}

	var buf bytes.Buffer
	if err := New(language.Dutch).WriteCareer(&buf, "Anna", c); err != nil {
		t.Fatalf("WriteCareer: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Wedstrijden", "55,50", "121, 40", "Anna"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := New(language.English).WriteCareer(&buf, "Bert", stats.Career{}); err != nil {
		t.Fatalf("WriteCareer: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.HasPrefix(line, labelTopFinishes) {
			continue
		}
		if fields := strings.Fields(line); fields[len(fields)-1] != "-" {
			t.Errorf("top finishes line = %q, want a dash", line)
		}
	}
}

func TestDutchLabelsRegistered(t *testing.T) {
	f := New(language.Dutch)
	for key, want := range dutch {
		if got := f.Label(key); got != want {
			t.Errorf("Label(%q) = %q, want %q", key, got, want)
		}
	}
}
