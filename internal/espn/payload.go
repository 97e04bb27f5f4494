package espn

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mcirin3/sports-info/internal/status"
)

// ESPN nests the same event shape under several roots and is loose about
// scalar types (ids and scores arrive as numbers, strings, or small objects).
// Every accessor here collapses to a default instead of failing.

// ScoreboardResponse covers the three roots ESPN uses for scoreboard payloads.
type ScoreboardResponse struct {
	Events  []Event `json:"events"`
	Leagues []struct {
		Events []Event `json:"events"`
	} `json:"leagues"`
	Sports []struct {
		Leagues []struct {
			Events []Event `json:"events"`
		} `json:"leagues"`
	} `json:"sports"`
}

// ScheduleResponse is the team schedule feed.
type ScheduleResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           FlexInt       `json:"id"`
	Date         string        `json:"date"`
	Season       *SeasonRef    `json:"season"`
	Competitions []Competition `json:"competitions"`
	Status       *EventStatus  `json:"status"`
	Links        []Link        `json:"links"`
}

type SeasonRef struct {
	Year int `json:"year"`
}

type Competition struct {
	ID            FlexInt      `json:"id"`
	Date          string       `json:"date"`
	Competitors   []Competitor `json:"competitors"`
	Status        *EventStatus `json:"status"`
	Broadcasts    []Broadcast  `json:"broadcasts"`
	GeoBroadcasts []Broadcast  `json:"geoBroadcasts"`
}

type Competitor struct {
	ID       FlexInt    `json:"id"`
	HomeAway string     `json:"homeAway"`
	Winner   bool       `json:"winner"`
	Score    ScoreValue `json:"score"`
	Team     *TeamRef   `json:"team"`
}

// TeamID prefers the nested team id and falls back to the competitor id,
// since some schedule payloads omit one or the other.
func (c *Competitor) TeamID() int {
	if c == nil {
		return 0
	}
	if c.Team != nil && int(c.Team.ID) != 0 {
		return int(c.Team.ID)
	}
	return int(c.ID)
}

type TeamRef struct {
	ID           FlexInt `json:"id"`
	DisplayName  string  `json:"displayName"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Logo         string  `json:"logo"`
	Logos        []struct {
		Href string `json:"href"`
	} `json:"logos"`
}

type EventStatus struct {
	Period       int         `json:"period"`
	DisplayClock string      `json:"displayClock"`
	Type         *StatusType `json:"type"`
}

type StatusType struct {
	Completed   bool   `json:"completed"`
	State       string `json:"state"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}

type Link struct {
	Text string   `json:"text"`
	Rel  []string `json:"rel"`
	Href string   `json:"href"`
}

// Broadcast name sources vary per payload; market is left raw because its
// shape is not stable.
type Broadcast struct {
	Media *struct {
		ShortName string `json:"shortName"`
		Name      string `json:"name"`
	} `json:"media"`
	Type *struct {
		ShortName   string `json:"shortName"`
		Description string `json:"description"`
	} `json:"type"`
	Market json.RawMessage `json:"market"`
}

func (b *Broadcast) Name() string {
	if b == nil {
		return ""
	}
	if b.Media != nil {
		if b.Media.ShortName != "" {
			return b.Media.ShortName
		}
		if b.Media.Name != "" {
			return b.Media.Name
		}
	}
	if b.Type != nil {
		if b.Type.ShortName != "" {
			return b.Type.ShortName
		}
		if b.Type.Description != "" {
			return b.Type.Description
		}
	}
	var market struct {
		Name string `json:"name"`
	}
	if len(b.Market) > 0 && json.Unmarshal(b.Market, &market) == nil {
		return market.Name
	}
	return ""
}

// FlexInt decodes a JSON number or a quoted numeric string; anything else
// collapses to zero.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		var str string
		if json.Unmarshal(data, &str) != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*n = FlexInt(int(f))
	}
	return nil
}

// ScoreValue decodes the three score representations ESPN uses: a bare
// number, a numeric string, or an object carrying value/displayValue.
type ScoreValue struct {
	val float64
}

func (s *ScoreValue) UnmarshalJSON(data []byte) error {
	s.val = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var obj struct {
			Value        json.RawMessage `json:"value"`
			DisplayValue json.RawMessage `json:"displayValue"`
		}
		if json.Unmarshal(data, &obj) != nil {
			return nil
		}
		if s.parseScalar(obj.Value) {
			return nil
		}
		s.parseScalar(obj.DisplayValue)
	default:
		s.parseScalar(data)
	}
	return nil
}

func (s *ScoreValue) parseScalar(data []byte) bool {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return false
	}
	raw := string(data)
	if data[0] == '"' {
		var str string
		if json.Unmarshal(data, &str) != nil {
			return false
		}
		raw = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	s.val = f
	return true
}

// Int truncates the parsed score; unparseable input is 0.
func (s ScoreValue) Int() int {
	return int(s.val)
}

// FirstCompetition returns the event's first competition, if any.
func (e *Event) FirstCompetition() *Competition {
	if e == nil || len(e.Competitions) == 0 {
		return nil
	}
	return &e.Competitions[0]
}

func (e *Event) competitionStatusType() *StatusType {
	comp := e.FirstCompetition()
	if comp == nil || comp.Status == nil {
		return nil
	}
	return comp.Status.Type
}

func (e *Event) eventStatusType() *StatusType {
	if e == nil || e.Status == nil {
		return nil
	}
	return e.Status.Type
}

// Completed classifies an event as finished. Providers nest status at both
// the competition and event level, so both are consulted, plus the free-text
// detail as a last resort.
func (e *Event) Completed() bool {
	for _, st := range []*StatusType{e.competitionStatusType(), e.eventStatusType()} {
		if st == nil {
			continue
		}
		if st.Completed || strings.EqualFold(st.State, "post") {
			return true
		}
	}
	for _, st := range []*StatusType{e.competitionStatusType(), e.eventStatusType()} {
		if st == nil {
			continue
		}
		for _, text := range []string{st.Description, st.Detail, st.ShortDetail} {
			if status.ContainsFinal(text) {
				return true
			}
		}
	}
	return false
}

// CollectEvents flattens every root ESPN may have used and deduplicates by
// event id, keeping the first occurrence.
func CollectEvents(resp *ScoreboardResponse) []Event {
	if resp == nil {
		return nil
	}
	var all []Event
	all = append(all, resp.Events...)
	for _, lg := range resp.Leagues {
		all = append(all, lg.Events...)
	}
	for _, sp := range resp.Sports {
		for _, lg := range sp.Leagues {
			all = append(all, lg.Events...)
		}
	}

	seen := make(map[int]struct{}, len(all))
	out := make([]Event, 0, len(all))
	for _, ev := range all {
		id := int(ev.ID)
		if id != 0 {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		out = append(out, ev)
	}
	return out
}
