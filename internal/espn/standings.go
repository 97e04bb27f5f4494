package espn

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mcirin3/sports-info/internal/models"
)

// StandingsResponse is the conference -> division -> entries tree.
type StandingsResponse struct {
	Children []StandingsGroup `json:"children"`
}

type StandingsGroup struct {
	Children  []StandingsGroup `json:"children"`
	Standings *StandingsTable  `json:"standings"`
}

type StandingsTable struct {
	Entries []StandingsEntry `json:"entries"`
}

type StandingsEntry struct {
	Team  *TeamRef       `json:"team"`
	Stats []StandingStat `json:"stats"`
}

type StandingStat struct {
	Name         string          `json:"name"`
	Value        json.RawMessage `json:"value"`
	DisplayValue string          `json:"displayValue"`
}

func (s *StandingStat) number() (float64, bool) {
	if len(s.Value) > 0 {
		raw := strings.TrimSpace(string(s.Value))
		if raw != "null" {
			if raw != "" && raw[0] == '"' {
				var str string
				if json.Unmarshal(s.Value, &str) == nil {
					raw = strings.TrimSpace(str)
				}
			}
			if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) {
				return f, true
			}
		}
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s.DisplayValue), 64); err == nil && !math.IsNaN(f) {
		return f, true
	}
	return 0, false
}

// FlattenStandings collapses the verbose tree into a flat map keyed by team
// id. Rank comes from the playoffSeed stat when present, then rank.
func FlattenStandings(resp *StandingsResponse) map[int]models.StandingRow {
	table := make(map[int]models.StandingRow)
	if resp == nil {
		return table
	}
	for _, conf := range resp.Children {
		collectStandings(&conf, table)
	}
	return table
}

func collectStandings(group *StandingsGroup, table map[int]models.StandingRow) {
	if group.Standings != nil {
		for _, entry := range group.Standings.Entries {
			if entry.Team == nil || int(entry.Team.ID) == 0 {
				continue
			}
			row := models.StandingRow{TeamID: int(entry.Team.ID)}
			var rank float64
			var rankOK bool
			for i := range entry.Stats {
				st := &entry.Stats[i]
				val, ok := st.number()
				if !ok {
					continue
				}
				switch st.Name {
				case "wins":
					row.Wins = int(val)
				case "losses":
					row.Losses = int(val)
				case "playoffSeed":
					rank, rankOK = val, true
				case "rank":
					if !rankOK {
						rank, rankOK = val, true
					}
				}
			}
			if rankOK {
				row.ConfRank = int(rank)
			}
			table[row.TeamID] = row
		}
	}
	for i := range group.Children {
		collectStandings(&group.Children[i], table)
	}
}
