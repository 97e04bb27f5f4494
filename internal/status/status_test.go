package status

import "testing"

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		state  string
		period int
		detail string
		want   Status
	}{
		{"pregame", "pre", 0, "", NotStarted},
		{"postgame", "post", 4, "Final", Final},
		{"first quarter", "in", 1, "", Q1},
		{"fourth quarter", "in", 4, "", Q4},
		{"overtime", "in", 5, "", Overtime},
		{"double overtime", "in", 6, "", Overtime},
		{"in with zero period", "in", 0, "", Q1},
		{"in with negative period", "in", -1, "", Q1},
		{"uppercase state", "POST", 0, "", Final},
		{"unknown state", "halftime", 2, "", NotStarted},
		{"unknown state final text", "", 0, "Final/OT", Final},
		{"unknown state final mixed case", "weird", 0, "FINAL", Final},
		{"empty everything", "", 0, "", NotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.state, tt.period, tt.detail); got != tt.want {
				t.Errorf("Map(%q, %d, %q) = %q, want %q", tt.state, tt.period, tt.detail, got, tt.want)
			}
		})
	}
}

func TestLive(t *testing.T) {
	live := []Status{Q1, Q2, Q3, Q4, Overtime}
	for _, s := range live {
		if !s.Live() {
			t.Errorf("%q.Live() = false, want true", s)
		}
	}
	for _, s := range []Status{NotStarted, Final} {
		if s.Live() {
			t.Errorf("%q.Live() = true, want false", s)
		}
	}
}
