package espn

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mcirin3/sports-info/internal/season"
)

// WeekSlate fetches a week-keyed scoreboard. A 404 means the week simply is
// not published; other transport failures fall back to fetching each of the
// week's seven days individually.
func (c *Client) WeekSlate(ctx context.Context, league League, seasonLabel, seasonType, week, limit int) ([]Event, string, error) {
	resp, err := c.ScoreboardWeek(ctx, league, seasonLabel, seasonType, week, limit)
	if err == nil {
		return CollectEvents(resp), "", nil
	}

	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return nil, fmt.Sprintf("No scoreboard data for season %d, week %d.", seasonLabel, week), nil
	}

	events, note := c.weekByDates(ctx, league, seasonLabel, seasonType, week, limit)
	if events == nil && ctx.Err() != nil {
		return nil, "", ctx.Err()
	}
	if len(events) == 0 && note == "" {
		return nil, "", fmt.Errorf("week %d (%d) scoreboard: %w", week, seasonLabel, err)
	}
	return events, note, nil
}

func (c *Client) weekByDates(ctx context.Context, league League, seasonLabel, seasonType, week, limit int) ([]Event, string) {
	offset := week - 1
	if offset < 0 {
		offset = 0
	}
	start := season.StartDate(seasonLabel).AddDate(0, 0, offset*7)

	seen := make(map[int]struct{})
	var events []Event
	for i := 0; i < 7; i++ {
		if ctx.Err() != nil {
			break
		}
		day := start.AddDate(0, 0, i)
		resp, err := c.scoreboardByDate(ctx, league, day.Format("20060102"), seasonLabel, seasonType, limit)
		if err != nil {
			continue
		}
		for _, ev := range CollectEvents(resp) {
			id := int(ev.ID)
			if id != 0 {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
			events = append(events, ev)
		}
	}

	if len(events) == 0 {
		return events, fmt.Sprintf("Week %d (%d) not published on the scoreboard.", week, seasonLabel)
	}
	return events, fmt.Sprintf("Week %d (%d) fetched via date-based fallback", week, seasonLabel)
}
