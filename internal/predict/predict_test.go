package predict

import (
	"math"
	"testing"
)

func TestBlendSumsToOne(t *testing.T) {
	tests := []struct {
		name             string
		hSeason, aSeason float64
		hRecent, aRecent float64
		hForm, aForm     float64
	}{
		{"even matchup", 0.5, 0.5, 0.5, 0.5, 0, 0},
		{"home favored", 0.7, 0.4, 0.8, 0.4, 6, -3},
		{"away favored", 0.3, 0.7, 0.2, 0.8, -5, 4},
		{"all neutral inputs", Neutral, Neutral, Neutral, Neutral, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(tt.hSeason, tt.aSeason, tt.hRecent, tt.aRecent, tt.hForm, tt.aForm)
			if sum := got.Home + got.Away; math.Abs(sum-1) > 1e-9 {
				t.Errorf("Home+Away = %v, want 1", sum)
			}
			if got.Home < 0.02 || got.Home > 0.98 {
				t.Errorf("Home = %v, outside [0.02, 0.98]", got.Home)
			}
		})
	}
}

func TestBlendHomeBias(t *testing.T) {
	got := Blend(0.5, 0.5, 0.5, 0.5, 0, 0)
	if got.Home <= 0.5 {
		t.Errorf("even matchup Home = %v, want > 0.5 (home edge)", got.Home)
	}
}

func TestBlendClamps(t *testing.T) {
	got := Blend(1, 0, 1, 0, 50, -50)
	if got.Home != 0.98 {
		t.Errorf("runaway favorite Home = %v, want clamp at 0.98", got.Home)
	}
	if got.Away != 1-0.98 {
		t.Errorf("Away = %v, want %v", got.Away, 1-0.98)
	}

	got = Blend(0, 1, 0, 1, -50, 50)
	if got.Home != 0.02 {
		t.Errorf("runaway underdog Home = %v, want clamp at 0.02", got.Home)
	}
}

func TestBlendOrdering(t *testing.T) {
	weak := Blend(0.5, 0.5, 0.5, 0.5, 0, 0)
	strong := Blend(0.7, 0.5, 0.7, 0.5, 4, 0)
	if strong.Home <= weak.Home {
		t.Errorf("stronger inputs gave %v <= %v", strong.Home, weak.Home)
	}
}

func TestEdge(t *testing.T) {
	tests := []struct {
		name        string
		home, away  float64
		wantVerdict string
	}{
		{"even", 0, 0, "home"},
		{"home edge", 8, -2, "home"},
		{"away edge", -4, 6, "away"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, verdict := Edge(tt.home, tt.away)
			if verdict != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", verdict, tt.wantVerdict)
			}
			if sum := est.Home + est.Away; math.Abs(sum-1) > 1e-9 {
				t.Errorf("Home+Away = %v, want 1", sum)
			}
			if est.Home != math.Round(est.Home*1000)/1000 {
				t.Errorf("Home = %v, not rounded to 3 decimals", est.Home)
			}
		})
	}
}

func TestEdgeEvenIsHalf(t *testing.T) {
	est, _ := Edge(5, 5)
	if est.Home != 0.5 {
		t.Errorf("equal form Home = %v, want 0.5", est.Home)
	}
}

func TestWinPct(t *testing.T) {
	tests := []struct {
		record string
		sample int
		want   float64
	}{
		{"3-2", 5, 0.6},
		{"0-5", 5, 0},
		{"5-0", 5, 1},
		{"garbage", 0, Neutral},
		{"garbage", 5, 0},
		{"", 0, Neutral},
	}
	for _, tt := range tests {
		if got := WinPct(tt.record, tt.sample); got != tt.want {
			t.Errorf("WinPct(%q, %d) = %v, want %v", tt.record, tt.sample, got, tt.want)
		}
	}
}

func TestRecordPct(t *testing.T) {
	tests := []struct {
		wins, losses int
		want         float64
	}{
		{30, 10, 0.75},
		{0, 0, Neutral},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := RecordPct(tt.wins, tt.losses); got != tt.want {
			t.Errorf("RecordPct(%d, %d) = %v, want %v", tt.wins, tt.losses, got, tt.want)
		}
	}
}
