package fixtures

import (
	"fmt"
	"sort"
	"strings"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

// FixtureSide is one side of a formatted fixture.
type FixtureSide struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

// DifficultyPair carries both sides' difficulty ratings.
type DifficultyPair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Formatted is a fixture with team references resolved. Gameweek is
// 0 for unscheduled fixtures.
type Formatted struct {
	ID          int            `json:"id"`
	Gameweek    int            `json:"gameweek"`
	HomeTeam    FixtureSide    `json:"home_team"`
	AwayTeam    FixtureSide    `json:"away_team"`
	KickoffTime string         `json:"kickoff_time"`
	Difficulty  DifficultyPair `json:"difficulty"`
}

// Format resolves team names and strengths for every fixture and
// applies the optional gameweek and team filters. The team filter is
// a case-insensitive substring against either side's full or short
// name. Output is sorted by (gameweek, kickoff time).
func Format(all []fplapi.Fixture, teams []fplapi.Team, gameweekID int, teamName string) []Formatted {
	teamByID := make(map[int]fplapi.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	side := func(teamID int, home bool) FixtureSide {
		t, ok := teamByID[teamID]
		if !ok {
			return FixtureSide{ID: teamID, Name: fmt.Sprintf("Team %d", teamID)}
		}
		strength := t.StrengthOverallAway
		if home {
			strength = t.StrengthOverallHome
		}
		return FixtureSide{ID: teamID, Name: t.Name, ShortName: t.ShortName, Strength: strength}
	}

	formatted := make([]Formatted, 0, len(all))
	for _, f := range all {
		gw := 0
		if f.Event != nil {
			gw = *f.Event
		}
		formatted = append(formatted, Formatted{
			ID:          f.ID,
			Gameweek:    gw,
			HomeTeam:    side(f.TeamH, true),
			AwayTeam:    side(f.TeamA, false),
			KickoffTime: f.KickoffTime,
			Difficulty:  DifficultyPair{Home: f.TeamHDifficulty, Away: f.TeamADifficulty},
		})
	}

	if gameweekID > 0 {
		kept := formatted[:0]
		for _, f := range formatted {
			if f.Gameweek == gameweekID {
				kept = append(kept, f)
			}
		}
		formatted = kept
	}

	if teamName != "" {
		needle := strings.ToLower(teamName)
		matches := func(s FixtureSide) bool {
			return strings.Contains(strings.ToLower(s.Name), needle) ||
				strings.Contains(strings.ToLower(s.ShortName), needle)
		}
		kept := formatted[:0]
		for _, f := range formatted {
			if matches(f.HomeTeam) || matches(f.AwayTeam) {
				kept = append(kept, f)
			}
		}
		formatted = kept
	}

	sort.SliceStable(formatted, func(i, j int) bool {
		if formatted[i].Gameweek != formatted[j].Gameweek {
			return formatted[i].Gameweek < formatted[j].Gameweek
		}
		return formatted[i].KickoffTime < formatted[j].KickoffTime
	})
	return formatted
}
