package utils_test

import (
	"testing"
	"time"

	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

func TestSplitWhitespace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "alpha", []string{"alpha"}},
		{"runs", "alpha  beta\tgamma\n", []string{"alpha", "beta", "gamma", ""}},
		{"leading", " alpha", []string{"", "alpha"}},
		{"only space", "   ", []string{"", ""}},
	}
	for _, c := range cases {
		got := utils.SplitWhitespace(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%s: got %q want %q", c.name, got, c.want)
			}
		}
	}
}

func TestCountWords(t *testing.T) {
	if got := utils.CountWords("  one two\nthree "); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := utils.CountWords(""); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
}

func TestDayKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2024, 3, 2, 1, 30, 0, 0, loc) // 2024-03-01T20:30Z
	if got := utils.DayKey(ts); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
}

func TestValidDay(t *testing.T) {
	if !utils.ValidDay("2024-02-29") {
		t.Fatalf("expected leap day to be valid")
	}
	if utils.ValidDay("2023-02-29") || utils.ValidDay("02/03/2024") || utils.ValidDay("") {
		t.Fatalf("expected invalid dates to be rejected")
	}
}
