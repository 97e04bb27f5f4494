package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/mcirin3/sports-info/internal/season"
)

func TestSeasonCandidates(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		current   int
		want      []int
	}{
		{"requested equals current", 2025, 2025, []int{2025, 2024}},
		{"requested in the past", 2023, 2025, []int{2023, 2022}},
		{"requested in the future clamps", 2030, 2025, []int{2025, 2024}},
		{"zero requested uses current", 0, 2025, []int{2025, 2024}},
		{"negative requested uses current", -1, 2025, []int{2025, 2024}},
		{"floor dedupes", 2000, 2025, []int{2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeasonCandidates(tt.requested, tt.current)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SeasonCandidates(%d, %d) = %v, want %v", tt.requested, tt.current, got, tt.want)
			}
		})
	}
}

func TestFetchScheduleFallsBack(t *testing.T) {
	current := season.Label(time.Now().UTC(), season.Basketball)
	var requestedSeasons []int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		label, _ := strconv.Atoi(r.URL.Query().Get("season"))
		requestedSeasons = append(requestedSeasons, label)
		if label == current {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events": [{"id": "42"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{SiteBaseURL: srv.URL, WebBaseURL: srv.URL})
	events, effective, err := client.FetchSchedule(context.Background(), NBA, 7, current, 2)
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if effective != current-1 {
		t.Errorf("effective season = %d, want %d", effective, current-1)
	}
	if len(events) != 1 || int(events[0].ID) != 42 {
		t.Errorf("events = %v, want single event 42", events)
	}
	if want := []int{current, current - 1}; !reflect.DeepEqual(requestedSeasons, want) {
		t.Errorf("seasons tried = %v, want %v", requestedSeasons, want)
	}
}

func TestFetchScheduleAllCandidatesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{SiteBaseURL: srv.URL, WebBaseURL: srv.URL})
	if _, _, err := client.FetchSchedule(context.Background(), NBA, 7, 0, 2); err == nil {
		t.Fatal("FetchSchedule returned nil error, want failure")
	}
}
