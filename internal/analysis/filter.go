// Package analysis filters, ranks, and compares the player set:
// multi-criteria conjunction filters with summary statistics, and
// cross-player metric comparison with a win tally.
package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/universal-mcp/fpl/internal/roster"
)

// Filters are conjunctive criteria over the player set. Nil/empty
// members are inactive. Position matches the normalized code exactly
// (closed set); team is a free-text substring match.
type Filters struct {
	Position     string
	Team         string
	MinPrice     *float64
	MaxPrice     *float64
	MinPoints    *int
	MinOwnership *float64
	MaxOwnership *float64
	MinForm      *float64
}

// Apply returns the players passing every active filter. Ownership
// and form values that fail to parse skip that filter for that
// player rather than excluding them.
func Apply(players []roster.Player, f Filters) []roster.Player {
	position := ""
	if f.Position != "" {
		position = roster.NormalizePosition(f.Position)
	}
	team := strings.ToLower(f.Team)

	kept := make([]roster.Player, 0, len(players))
	for _, p := range players {
		if position != "" && p.Position != position {
			continue
		}
		if team != "" &&
			!strings.Contains(strings.ToLower(p.Team), team) &&
			!strings.Contains(strings.ToLower(p.TeamShort), team) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinPoints != nil && p.Points < *f.MinPoints {
			continue
		}
		if f.MinOwnership != nil || f.MaxOwnership != nil {
			if ownership, err := parsePercent(p.SelectedByPercent); err == nil {
				if f.MinOwnership != nil && ownership < *f.MinOwnership {
					continue
				}
				if f.MaxOwnership != nil && ownership > *f.MaxOwnership {
					continue
				}
			}
		}
		if f.MinForm != nil {
			if form, err := strconv.ParseFloat(p.Form, 64); err == nil && form < *f.MinForm {
				continue
			}
		}
		kept = append(kept, p)
	}
	return kept
}

// parsePercent parses an ownership value, tolerating a trailing '%'.
func parsePercent(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
}

// Numeric sort fields and their value extractors. "value" is points
// per unit price.
var numericFields = map[string]func(roster.Player) float64{
	"points": func(p roster.Player) float64 { return float64(p.Points) },
	"price":  func(p roster.Player) float64 { return p.Price },
	"form":   func(p roster.Player) float64 { return parseOrZero(p.Form) },
	"selected_by_percent": func(p roster.Player) float64 {
		f, err := parsePercent(p.SelectedByPercent)
		if err != nil {
			return 0
		}
		return f
	},
	"value": func(p roster.Player) float64 {
		if p.Price == 0 {
			return 0
		}
		return float64(p.Points) / p.Price
	},
}

// Lexicographic sort fields.
var textFields = map[string]func(roster.Player) string{
	"name":     func(p roster.Player) string { return p.Name },
	"web_name": func(p roster.Player) string { return p.WebName },
	"team":     func(p roster.Player) string { return p.Team },
	"position": func(p roster.Player) string { return p.Position },
	"status":   func(p roster.Player) string { return p.Status },
}

// Sort orders players by the named field: numeric fields descending
// (missing values as 0), text fields ascending. Unknown fields fall
// back to descending points.
func Sort(players []roster.Player, field string) {
	field = strings.ToLower(strings.TrimSpace(field))
	if extract, ok := numericFields[field]; ok {
		sort.SliceStable(players, func(i, j int) bool {
			return extract(players[i]) > extract(players[j])
		})
		return
	}
	if extract, ok := textFields[field]; ok {
		sort.SliceStable(players, func(i, j int) bool {
			return extract(players[i]) < extract(players[j])
		})
		return
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Points > players[j].Points
	})
}

func parseOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
