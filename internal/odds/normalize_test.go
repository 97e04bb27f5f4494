package odds

import (
	"math"
	"reflect"
	"testing"

	"github.com/mcirin3/sports-info/internal/apisports"
	"github.com/mcirin3/sports-info/internal/models"
)

func TestClassifyMarket(t *testing.T) {
	tests := []struct {
		name   string
		market string
		ok     bool
	}{
		{"Moneyline", models.MarketH2H, true},
		{"3Way Moneyline", models.MarketH2H, true},
		{"Winner", models.MarketH2H, true},
		{"Point Spread", models.MarketSpreads, true},
		{"Asian Handicap", models.MarketSpreads, true},
		{"Total Points", models.MarketTotals, true},
		{"Over/Under", models.MarketTotals, true},
		{"Player Props", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market, ok := ClassifyMarket(tt.name)
			if market != tt.market || ok != tt.ok {
				t.Errorf("ClassifyMarket(%q) = (%q, %v), want (%q, %v)", tt.name, market, ok, tt.market, tt.ok)
			}
		})
	}
}

func TestToAmerican(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
		want    int
		ok      bool
	}{
		{"even money", 2.0, 100, true},
		{"favorite", 1.5, -200, true},
		{"underdog", 2.5, 150, true},
		{"heavy favorite", 1.05, -2000, true},
		{"rounding", 1.91, -110, true},
		{"exactly one", 1.0, 0, false},
		{"below one", 0.5, 0, false},
		{"zero", 0, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToAmerican(tt.decimal)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ToAmerican(%v) = (%d, %v), want (%d, %v)", tt.decimal, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1.83", 1.83, true},
		{"1,83", 1.83, true},
		{" 2.5 ", 2.5, true},
		{"-7.5", -7.5, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func oddsGame() apisports.OddsGame {
	var g apisports.OddsGame
	g.Game.ID = 9001
	g.Teams.Home.Name = "Lakers"
	g.Teams.Away.Name = "Bulls"
	g.Bookmakers = []apisports.Bookmaker{
		{
			Name: "BookA",
			Bets: []apisports.Bet{
				{Name: "Moneyline", Values: []apisports.BetValue{
					{Value: "Home", Odd: "1.5"},
					{Value: "Away", Odd: "2.6"},
				}},
				{Name: "Point Spread", Values: []apisports.BetValue{
					{Value: "Home", Odd: "1.91", Handicap: "-4,5"},
				}},
				{Name: "Player Props", Values: []apisports.BetValue{
					{Value: "Over", Odd: "1.8"},
				}},
			},
		},
		{
			Name: "BookB",
			Bets: []apisports.Bet{
				{Name: "Moneyline", Values: []apisports.BetValue{
					{Value: "Home", Odd: "1.83"},
					{Value: "Away", Odd: "invalid"},
				}},
			},
		},
	}
	return g
}

func TestNormalize(t *testing.T) {
	g := oddsGame()
	got := Normalize(&g)

	if got.GameID != 9001 || got.Home != "Lakers" || got.Away != "Bulls" {
		t.Fatalf("header = %+v", got)
	}
	// Moneyline Home: BookA 1.5 -> -200, BookB 1.83 -> -120; -200 wins on magnitude.
	// Moneyline Away: 2.6 -> 160. Spread Home -4.5: 1.91 -> -110. Props dropped.
	if len(got.Best) != 3 {
		t.Fatalf("got %d quotes, want 3: %+v", len(got.Best), got.Best)
	}

	h2hHome := got.Best[0]
	if h2hHome.Bookmaker != "BookA" || h2hHome.Price != -200 || h2hHome.Market != models.MarketH2H {
		t.Errorf("h2h home = %+v, want BookA -200", h2hHome)
	}
	if h2hHome.Point != nil {
		t.Errorf("h2h quote carries a point: %v", *h2hHome.Point)
	}

	h2hAway := got.Best[1]
	if h2hAway.Price != 160 || h2hAway.Label != "Away" {
		t.Errorf("h2h away = %+v, want 160", h2hAway)
	}

	spread := got.Best[2]
	if spread.Market != models.MarketSpreads || spread.Price != -110 {
		t.Errorf("spread = %+v, want spreads -110", spread)
	}
	if spread.Point == nil || *spread.Point != -4.5 {
		t.Errorf("spread point = %v, want -4.5 (comma handicap)", spread.Point)
	}
}

func TestBestQuotesFirstWinsTies(t *testing.T) {
	quotes := []models.OddsQuote{
		{Bookmaker: "First", Market: models.MarketH2H, Label: "Home", Price: -110},
		{Bookmaker: "Second", Market: models.MarketH2H, Label: "Home", Price: 110},
	}
	best := BestQuotes(quotes)
	if len(best) != 1 {
		t.Fatalf("got %d quotes, want 1", len(best))
	}
	if best[0].Bookmaker != "First" {
		t.Errorf("tie went to %q, want First", best[0].Bookmaker)
	}
}

func TestBestQuotesIdempotent(t *testing.T) {
	g := oddsGame()
	first := Normalize(&g).Best
	second := BestQuotes(first)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("BestQuotes not idempotent:\n first=%+v\nsecond=%+v", first, second)
	}
}

func TestBestQuotesSeparatesPoints(t *testing.T) {
	p1, p2 := -4.5, -5.5
	quotes := []models.OddsQuote{
		{Market: models.MarketSpreads, Label: "Home", Price: -110, Point: &p1},
		{Market: models.MarketSpreads, Label: "Home", Price: -105, Point: &p2},
	}
	best := BestQuotes(quotes)
	if len(best) != 2 {
		t.Fatalf("got %d quotes, want 2 (distinct points)", len(best))
	}
}
