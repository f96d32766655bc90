package analysis

import (
	"math"
	"sort"

	"github.com/universal-mcp/fpl/internal/roster"
)

// TeamCount is one entry of the team histogram.
type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// Summary holds aggregate statistics over a filtered player set.
type Summary struct {
	Count     int            `json:"count"`
	AvgPoints float64        `json:"avg_points"`
	AvgPrice  float64        `json:"avg_price"`
	Positions map[string]int `json:"positions"`
	TopTeams  []TeamCount    `json:"top_teams"`
}

// Summarize computes count, mean points and price (rounded to one
// decimal), a position histogram, and the top 10 teams by player
// count (ties broken by team name).
func Summarize(players []roster.Player) Summary {
	summary := Summary{
		Count:     len(players),
		Positions: make(map[string]int),
	}
	if len(players) == 0 {
		return summary
	}

	totalPoints := 0
	totalPrice := 0.0
	teamCounts := make(map[string]int)
	for _, p := range players {
		totalPoints += p.Points
		totalPrice += p.Price
		summary.Positions[p.Position]++
		teamCounts[p.Team]++
	}
	n := float64(len(players))
	summary.AvgPoints = math.Round(float64(totalPoints)/n*10) / 10
	summary.AvgPrice = math.Round(totalPrice/n*10) / 10

	teams := make([]TeamCount, 0, len(teamCounts))
	for team, count := range teamCounts {
		teams = append(teams, TeamCount{Team: team, Count: count})
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Count != teams[j].Count {
			return teams[i].Count > teams[j].Count
		}
		return teams[i].Team < teams[j].Team
	})
	if len(teams) > 10 {
		teams = teams[:10]
	}
	summary.TopTeams = teams
	return summary
}
