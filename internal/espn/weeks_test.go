package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWeekSlateDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("week") != "3" {
			t.Errorf("week = %q, want 3", r.URL.Query().Get("week"))
		}
		w.Write([]byte(`{"events": [{"id": "1"}, {"id": "2"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{SiteBaseURL: srv.URL, WebBaseURL: srv.URL})
	events, note, err := client.WeekSlate(context.Background(), NFL, 2025, 2, 3, 0)
	if err != nil {
		t.Fatalf("WeekSlate: %v", err)
	}
	if note != "" {
		t.Errorf("note = %q, want empty", note)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestWeekSlateNotPublished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(Config{SiteBaseURL: srv.URL, WebBaseURL: srv.URL})
	events, note, err := client.WeekSlate(context.Background(), NFL, 2025, 2, 19, 0)
	if err != nil {
		t.Fatalf("WeekSlate: %v", err)
	}
	if events != nil {
		t.Errorf("events = %v, want nil", events)
	}
	if note == "" {
		t.Error("note is empty, want an explanation")
	}
}

func TestWeekSlateDateFallback(t *testing.T) {
	var dateCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dates") == "" {
			// Week-keyed request fails with a non-404 error.
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		dateCalls++
		if dateCalls == 1 {
			w.Write([]byte(`{"events": [{"id": "10"}]}`))
			return
		}
		w.Write([]byte(`{"events": [{"id": "10"}, {"id": "11"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{SiteBaseURL: srv.URL, WebBaseURL: srv.URL})
	events, note, err := client.WeekSlate(context.Background(), NFL, 2025, 2, 1, 0)
	if err != nil {
		t.Fatalf("WeekSlate: %v", err)
	}
	if dateCalls != 7 {
		t.Errorf("date fallback made %d calls, want 7", dateCalls)
	}
	if len(events) != 2 {
		t.Errorf("got %d events after dedupe, want 2", len(events))
	}
	if !strings.Contains(note, "fallback") {
		t.Errorf("note = %q, want fallback mention", note)
	}
}
