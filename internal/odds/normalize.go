package odds

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/models"
)

// ClassifyMarket maps an arbitrary bookmaker bet-type name into one of the
// three canonical markets. Unclassifiable names are dropped.
func ClassifyMarket(name string) (string, bool) {
	key := strings.ToLower(name)
	switch {
	case strings.Contains(key, "moneyline") || key == "winner":
		return models.MarketH2H, true
	case strings.Contains(key, "spread") || strings.Contains(key, "handicap"):
		return models.MarketSpreads, true
	case strings.Contains(key, "total") || strings.Contains(key, "over/under"):
		return models.MarketTotals, true
	}
	return "", false
}

// ToAmerican converts decimal odds to the American integer convention.
// Decimal odds at or below 1, or non-finite values, have no valid conversion.
func ToAmerican(decimal float64) (int, bool) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) || decimal <= 1 {
		return 0, false
	}
	if decimal >= 2 {
		return int(math.Round((decimal - 1) * 100)), true
	}
	return int(math.Round(-100 / (decimal - 1))), true
}

// ParseNumber parses a decimal string permissively, accepting a comma as the
// decimal separator.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Normalize flattens one game's bookmaker offers into canonical quotes and
// keeps only the best price per (market, side, point) key.
func Normalize(game *apisports.OddsGame) models.GameOdds {
	var quotes []models.OddsQuote
	for _, bk := range game.Bookmakers {
		for _, bet := range bk.Bets {
			market, ok := ClassifyMarket(bet.Name)
			if !ok {
				continue
			}
			for _, v := range bet.Values {
				decimal, ok := ParseNumber(v.Odd)
				if !ok {
					continue
				}
				price, ok := ToAmerican(decimal)
				if !ok {
					continue
				}
				quote := models.OddsQuote{
					Bookmaker: bk.Name,
					Market:    market,
					Label:     v.Value,
					Price:     price,
				}
				if market != models.MarketH2H {
					if point, ok := ParseNumber(v.Handicap); ok {
						p := point
						quote.Point = &p
					}
				}
				quotes = append(quotes, quote)
			}
		}
	}

	return models.GameOdds{
		GameID: game.Game.ID,
		Home:   game.Teams.Home.Name,
		Away:   game.Teams.Away.Name,
		Best:   BestQuotes(quotes),
	}
}

// NormalizeAll maps a full odds page.
func NormalizeAll(games []apisports.OddsGame) []models.GameOdds {
	out := make([]models.GameOdds, 0, len(games))
	for i := range games {
		out = append(out, Normalize(&games[i]))
	}
	return out
}

// BestQuotes retains the single quote with the greatest absolute price per
// (market, label, point) key. The comparison is strict, so the first quote
// encountered wins ties. Output preserves first-encounter order, which makes
// the selection idempotent.
func BestQuotes(quotes []models.OddsQuote) []models.OddsQuote {
	best := make(map[string]models.OddsQuote, len(quotes))
	order := make([]string, 0, len(quotes))
	for _, q := range quotes {
		key := quoteKey(&q)
		cur, exists := best[key]
		if !exists {
			best[key] = q
			order = append(order, key)
			continue
		}
		if abs(q.Price) > abs(cur.Price) {
			best[key] = q
		}
	}

	out := make([]models.OddsQuote, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

func quoteKey(q *models.OddsQuote) string {
	point := ""
	if q.Point != nil {
		point = strconv.FormatFloat(*q.Point, 'f', -1, 64)
	}
	return fmt.Sprintf("%s:%s:%s", q.Market, q.Label, point)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
