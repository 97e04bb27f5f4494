package predict

import (
	"math"
	"strconv"
	"strings"

	"github.com/mcirin3/sports-info/internal/models"
)

// Neutral is what callers substitute when a season or recent-form input is
// unavailable; a missing signal is never an error.
const Neutral = 0.5

const (
	seasonWeight = 1.4
	recentWeight = 1.0
	formWeight   = 0.04
	homeBias     = 0.12
	steepness    = 3.0

	probFloor = 0.02
	probCeil  = 0.98
)

// Blend combines season win%, recent win%, and scoring differential into a
// bounded home win probability via a logistic transform.
func Blend(homeSeasonWP, awaySeasonWP, homeL5WP, awayL5WP, homePFMinusPA, awayPFMinusPA float64) models.WinProbabilityEstimate {
	seasonDiff := homeSeasonWP - awaySeasonWP
	recentDiff := homeL5WP - awayL5WP
	formPts := homePFMinusPA - awayPFMinusPA

	z := seasonWeight*seasonDiff + recentWeight*recentDiff + formWeight*formPts + homeBias
	p := 1 / (1 + math.Exp(-steepness*z))
	if p < probFloor {
		p = probFloor
	}
	if p > probCeil {
		p = probCeil
	}
	return models.WinProbabilityEstimate{Home: p, Away: 1 - p}
}

// Edge is the lighter-weight variant fed only by PF-PA differentials. It
// keeps the logistic's natural bounds and adds a textual verdict.
func Edge(homeForm, awayForm float64) (models.WinProbabilityEstimate, string) {
	diff := homeForm - awayForm
	p := 1 / (1 + math.Exp(-diff/5))
	p = math.Round(p*1000) / 1000

	verdict := "away"
	if p >= 0.5 {
		verdict = "home"
	}
	return models.WinProbabilityEstimate{Home: p, Away: math.Round((1-p)*1000) / 1000}, verdict
}

// WinPct derives a win percentage from a "W-L" record string. A sample size
// covers records whose parse fails; an empty sample is neutral.
func WinPct(record string, sample int) float64 {
	wins, losses := parseRecord(record)
	total := wins + losses
	if total == 0 {
		total = sample
	}
	if total <= 0 {
		return Neutral
	}
	return float64(wins) / float64(total)
}

// RecordPct derives a win percentage from explicit win/loss counts.
func RecordPct(wins, losses int) float64 {
	total := wins + losses
	if total <= 0 {
		return Neutral
	}
	return float64(wins) / float64(total)
}

func parseRecord(record string) (int, int) {
	parts := strings.SplitN(record, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	wins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0
	}
	losses, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return wins, 0
	}
	return wins, losses
}
