package analysis

import (
	"strconv"
	"strings"

	"github.com/universal-mcp/fpl/internal/roster"
)

// Comparison metrics in traversal order. Price is the only metric
// where lower wins.
var compareMetrics = []string{
	"points",
	"price",
	"form",
	"points_per_game",
	"minutes",
	"goals",
	"assists",
	"clean_sheets",
	"bonus",
	"ict_index",
	"selected_by_percent",
}

// FixtureScore pairs a compared player with their fixture difficulty
// score for the optional fixture-advantage tally.
type FixtureScore struct {
	Name  string
	Score float64
}

// ComparisonResult is the cross-player metric table with per-metric
// winners and an overall win tally.
type ComparisonResult struct {
	Metrics          map[string]map[string]any `json:"metrics"`
	BestPerMetric    map[string]string         `json:"best_per_metric"`
	WinTally         map[string]int            `json:"win_tally"`
	FixtureAdvantage string                    `json:"fixture_advantage,omitempty"`
	Winner           string                    `json:"overall_best"`
}

// metricValue extracts a metric from a player, keeping the raw string
// when it cannot be coerced to a number.
func metricValue(p roster.Player, metric string) any {
	switch metric {
	case "points":
		return p.Points
	case "price":
		return p.Price
	case "form":
		return coerce(p.Form)
	case "points_per_game":
		return coerce(p.PointsPerGame)
	case "minutes":
		return p.Minutes
	case "goals":
		return p.Goals
	case "assists":
		return p.Assists
	case "clean_sheets":
		return p.CleanSheets
	case "bonus":
		return p.Bonus
	case "ict_index":
		return coerce(p.ICTIndex)
	case "selected_by_percent":
		return coerce(strings.TrimSuffix(p.SelectedByPercent, "%"))
	}
	return nil
}

// coerce attempts numeric conversion, passing the original through
// when it fails.
func coerce(s string) any {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return s
}

// asFloat widens coerced metric values for comparison. Non-numeric
// values are excluded from best-value selection.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Compare builds the per-metric value table for the given players,
// determines each metric's best performer (max, except price where
// lower is better), tallies wins, and names the overall winner.
// fixtureScores, when present, contribute one extra win for the
// highest fixture score. Ties keep the first-encountered player.
func Compare(players []roster.Player, fixtureScores []FixtureScore) ComparisonResult {
	result := ComparisonResult{
		Metrics:       make(map[string]map[string]any, len(compareMetrics)),
		BestPerMetric: make(map[string]string, len(compareMetrics)),
		WinTally:      make(map[string]int, len(players)),
	}
	for _, p := range players {
		result.WinTally[p.Name] = 0
	}

	for _, metric := range compareMetrics {
		row := make(map[string]any, len(players))
		bestName := ""
		bestValue := 0.0
		for _, p := range players {
			v := metricValue(p, metric)
			row[p.Name] = v
			f, ok := asFloat(v)
			if !ok {
				continue
			}
			better := f > bestValue
			if metric == "price" {
				better = f < bestValue
			}
			if bestName == "" || better {
				bestName = p.Name
				bestValue = f
			}
		}
		result.Metrics[metric] = row
		if bestName != "" {
			result.BestPerMetric[metric] = bestName
			result.WinTally[bestName]++
		}
	}

	if len(fixtureScores) > 0 {
		bestName := ""
		bestScore := 0.0
		for _, fs := range fixtureScores {
			if bestName == "" || fs.Score > bestScore {
				bestName = fs.Name
				bestScore = fs.Score
			}
		}
		result.FixtureAdvantage = bestName
		result.WinTally[bestName]++
	}

	// Overall winner: highest tally, first-encountered on ties.
	bestTally := -1
	for _, p := range players {
		if result.WinTally[p.Name] > bestTally {
			bestTally = result.WinTally[p.Name]
			result.Winner = p.Name
		}
	}
	return result
}
