package fixtures

import (
	"fmt"
	"sort"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

// BlankTeam identifies a team with no fixture in a gameweek.
type BlankTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// DoubleTeam identifies a team with more than one fixture in a gameweek.
type DoubleTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	FixtureCount int    `json:"fixture_count"`
}

// BlankGameweek lists the teams without a fixture in one gameweek.
type BlankGameweek struct {
	Gameweek int         `json:"gameweek"`
	Name     string      `json:"name"`
	Teams    []BlankTeam `json:"teams_without_fixtures"`
	Count    int         `json:"count"`
}

// DoubleGameweek lists the teams with multiple fixtures in one gameweek.
type DoubleGameweek struct {
	Gameweek int          `json:"gameweek"`
	Name     string       `json:"name"`
	Teams    []DoubleTeam `json:"teams_with_doubles"`
	Count    int          `json:"count"`
}

// upcomingWindow selects the events in [fromGW, fromGW+horizon).
func upcomingWindow(events []fplapi.Event, fromGW, horizon int) []fplapi.Event {
	window := make([]fplapi.Event, 0, horizon)
	for _, gw := range events {
		if gw.ID >= fromGW && gw.ID < fromGW+horizon {
			window = append(window, gw)
		}
	}
	return window
}

// fixtureCountByTeam tallies fixtures per team id for one gameweek.
func fixtureCountByTeam(all []fplapi.Fixture, gwID int) map[int]int {
	counts := make(map[int]int)
	for _, f := range all {
		if f.Event == nil || *f.Event != gwID {
			continue
		}
		counts[f.TeamH]++
		counts[f.TeamA]++
	}
	return counts
}

// Blanks reports, for each of the next horizon gameweeks starting at
// fromGW, the teams with no scheduled fixture. Teams absent from the
// fixture set entirely are blank too. Gameweeks where every team
// plays are omitted.
func Blanks(events []fplapi.Event, all []fplapi.Fixture, teams []fplapi.Team, fromGW, horizon int) []BlankGameweek {
	blanks := make([]BlankGameweek, 0, horizon)
	for _, gw := range upcomingWindow(events, fromGW, horizon) {
		counts := fixtureCountByTeam(all, gw.ID)

		blank := make([]BlankTeam, 0)
		for _, t := range teams {
			if counts[t.ID] == 0 {
				blank = append(blank, BlankTeam{ID: t.ID, Name: t.Name, ShortName: t.ShortName})
			}
		}
		if len(blank) == 0 {
			continue
		}
		sort.Slice(blank, func(i, j int) bool { return blank[i].ID < blank[j].ID })
		blanks = append(blanks, BlankGameweek{
			Gameweek: gw.ID,
			Name:     gw.Name,
			Teams:    blank,
			Count:    len(blank),
		})
	}
	return blanks
}

// Doubles reports, for each of the next horizon gameweeks starting at
// fromGW, the teams with more than one fixture and their counts.
func Doubles(events []fplapi.Event, all []fplapi.Fixture, teams []fplapi.Team, fromGW, horizon int) []DoubleGameweek {
	teamByID := make(map[int]fplapi.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	doubles := make([]DoubleGameweek, 0, horizon)
	for _, gw := range upcomingWindow(events, fromGW, horizon) {
		counts := fixtureCountByTeam(all, gw.ID)

		withDoubles := make([]DoubleTeam, 0)
		for teamID, count := range counts {
			if count <= 1 {
				continue
			}
			t, ok := teamByID[teamID]
			name := t.Name
			if !ok {
				name = fmt.Sprintf("Team %d", teamID)
			}
			withDoubles = append(withDoubles, DoubleTeam{
				ID:           teamID,
				Name:         name,
				ShortName:    t.ShortName,
				FixtureCount: count,
			})
		}
		if len(withDoubles) == 0 {
			continue
		}
		sort.Slice(withDoubles, func(i, j int) bool { return withDoubles[i].ID < withDoubles[j].ID })
		doubles = append(doubles, DoubleGameweek{
			Gameweek: gw.ID,
			Name:     gw.Name,
			Teams:    withDoubles,
			Count:    len(withDoubles),
		})
	}
	return doubles
}
