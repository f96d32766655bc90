package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

func testEvents() []fplapi.Event {
	return []fplapi.Event{
		{ID: 28, Name: "Gameweek 28"},
		{ID: 29, Name: "Gameweek 29"},
		{ID: 30, Name: "Gameweek 30"},
	}
}

func TestBlanks(t *testing.T) {
	teams := []fplapi.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{ID: 2, Name: "Brentford", ShortName: "BRE"},
		{ID: 3, Name: "Chelsea", ShortName: "CHE"},
		{ID: 4, Name: "Everton", ShortName: "EVE"},
	}
	// GW28: everyone plays. GW29: teams 3 and 4 blank.
	all := []fplapi.Fixture{
		{ID: 1, Event: gw(28), TeamH: 1, TeamA: 2},
		{ID: 2, Event: gw(28), TeamH: 3, TeamA: 4},
		{ID: 3, Event: gw(29), TeamH: 1, TeamA: 2},
	}

	got := Blanks(testEvents(), all, teams, 28, 2)
	require.Len(t, got, 1)
	require.Equal(t, 29, got[0].Gameweek)
	require.Equal(t, "Gameweek 29", got[0].Name)
	require.Equal(t, 2, got[0].Count)
	require.Equal(t, 3, got[0].Teams[0].ID)
	require.Equal(t, 4, got[0].Teams[1].ID)
}

func TestBlanksHorizonBounds(t *testing.T) {
	teams := []fplapi.Team{{ID: 1, Name: "Arsenal"}}
	// Team 1 blanks in every event, but only GWs inside the window count.
	got := Blanks(testEvents(), nil, teams, 28, 1)
	require.Len(t, got, 1)
	require.Equal(t, 28, got[0].Gameweek)
}

func TestDoubles(t *testing.T) {
	teams := []fplapi.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{ID: 2, Name: "Brentford", ShortName: "BRE"},
		{ID: 3, Name: "Chelsea", ShortName: "CHE"},
	}
	// GW29: Arsenal plays twice.
	all := []fplapi.Fixture{
		{ID: 1, Event: gw(28), TeamH: 1, TeamA: 2},
		{ID: 2, Event: gw(29), TeamH: 1, TeamA: 2},
		{ID: 3, Event: gw(29), TeamH: 3, TeamA: 1},
	}

	got := Doubles(testEvents(), all, teams, 28, 3)
	require.Len(t, got, 1)
	require.Equal(t, 29, got[0].Gameweek)
	require.Equal(t, 1, got[0].Count)
	require.Equal(t, 1, got[0].Teams[0].ID)
	require.Equal(t, 2, got[0].Teams[0].FixtureCount)
}

func TestDoublesNone(t *testing.T) {
	teams := []fplapi.Team{{ID: 1}, {ID: 2}}
	all := []fplapi.Fixture{{ID: 1, Event: gw(28), TeamH: 1, TeamA: 2}}
	require.Empty(t, Doubles(testEvents(), all, teams, 28, 3))
}
