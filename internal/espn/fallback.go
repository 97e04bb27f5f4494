package espn

import (
	"context"
	"fmt"
	"time"

	"github.com/mcirin3/sports-info/internal/logging"
	"github.com/mcirin3/sports-info/internal/season"
)

// Providers publish schedules under varying labels near season boundaries;
// a not-yet-populated upcoming season degrades to the most recent one.

const minSeasonLabel = 2000

// SeasonCandidates builds the ordered, deduplicated list of season labels to
// try: the requested label clamped to the current one, then the adjacent
// prior label floored at a sane minimum.
func SeasonCandidates(requested, current int) []int {
	primary := requested
	if primary <= 0 || primary > current {
		primary = current
	}
	fallback := primary - 1
	if fallback < minSeasonLabel {
		fallback = minSeasonLabel
	}
	candidates := []int{primary}
	if fallback != primary {
		candidates = append(candidates, fallback)
	}
	return candidates
}

// FetchSchedule requests a team's schedule, trying season candidates strictly
// in order. The first successful response wins and its label is returned as
// the effective season. Attempts are sequential because each one's necessity
// depends on the previous failure.
func (c *Client) FetchSchedule(ctx context.Context, league League, teamID, requestedSeason, seasonType int) ([]Event, int, error) {
	current := season.Label(time.Now().UTC(), league.Rules)
	var lastErr error
	for _, label := range SeasonCandidates(requestedSeason, current) {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		resp, err := c.TeamSchedule(ctx, league, teamID, label, seasonType)
		if err != nil {
			lastErr = err
			logging.Debugf("[espn] schedule team=%d season=%d failed: %v", teamID, label, err)
			continue
		}
		return resp.Events, label, nil
	}
	return nil, 0, fmt.Errorf("schedule unavailable for team %d: %w", teamID, lastErr)
}
