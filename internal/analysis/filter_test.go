package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/universal-mcp/fpl/internal/roster"
)

func floatp(v float64) *float64 { return &v }
func intp(v int) *int           { return &v }

func filterPlayers() []roster.Player {
	return []roster.Player{
		{ID: 1, Name: "Mohamed Salah", Team: "Liverpool", TeamShort: "LIV", Position: "MID", Price: 13.1, Points: 211, Form: "8.5", SelectedByPercent: "45.3"},
		{ID: 2, Name: "Erling Haaland", Team: "Man City", TeamShort: "MCI", Position: "FWD", Price: 15.1, Points: 190, Form: "7.0", SelectedByPercent: "60.1"},
		{ID: 3, Name: "Jordan Pickford", Team: "Everton", TeamShort: "EVE", Position: "GKP", Price: 4.9, Points: 110, Form: "4.2", SelectedByPercent: "12.0"},
		{ID: 4, Name: "Mystery Man", Team: "Everton", TeamShort: "EVE", Position: "MID", Price: 5.0, Points: 40, Form: "n/a", SelectedByPercent: ""},
	}
}

func TestApplyConjunction(t *testing.T) {
	got := Apply(filterPlayers(), Filters{
		Position: "midfielder",
		MinPrice: floatp(10.0),
	})
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].ID)
}

func TestApplyTeamSubstring(t *testing.T) {
	got := Apply(filterPlayers(), Filters{Team: "ever"})
	require.Len(t, got, 2)

	t.Run("short name matches too", func(t *testing.T) {
		got := Apply(filterPlayers(), Filters{Team: "mci"})
		require.Len(t, got, 1)
		require.Equal(t, 2, got[0].ID)
	})
}

func TestApplyPriceAndPoints(t *testing.T) {
	got := Apply(filterPlayers(), Filters{
		MaxPrice:  floatp(14.0),
		MinPoints: intp(100),
	})
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 3, got[1].ID)
}

func TestApplyOwnership(t *testing.T) {
	got := Apply(filterPlayers(), Filters{
		MinOwnership: floatp(40.0),
		MaxOwnership: floatp(50.0),
	})
	// Player 4's ownership does not parse, so the filter is skipped
	// for them rather than excluding them.
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 4, got[1].ID)
}

func TestApplyForm(t *testing.T) {
	got := Apply(filterPlayers(), Filters{MinForm: floatp(7.0)})
	// Unparseable form skips the filter for player 4.
	require.Len(t, got, 3)
}

func TestApplyNoFilters(t *testing.T) {
	require.Len(t, Apply(filterPlayers(), Filters{}), 4)
}

func TestSortNumericDescending(t *testing.T) {
	players := filterPlayers()
	Sort(players, "price")
	require.Equal(t, 2, players[0].ID)
	require.Equal(t, 1, players[1].ID)
	require.Equal(t, 4, players[2].ID)
	require.Equal(t, 3, players[3].ID)
}

func TestSortValue(t *testing.T) {
	players := filterPlayers()
	Sort(players, "value")
	// Pickford: 110/4.9 = 22.4 points per unit price tops the list.
	require.Equal(t, 3, players[0].ID)
}

func TestSortTextAscending(t *testing.T) {
	players := filterPlayers()
	Sort(players, "name")
	require.Equal(t, 2, players[0].ID)
	require.Equal(t, 3, players[1].ID)
	require.Equal(t, 1, players[2].ID)
	require.Equal(t, 4, players[3].ID)
}

func TestSortUnknownFieldFallsBackToPoints(t *testing.T) {
	players := filterPlayers()
	Sort(players, "bogus")
	require.Equal(t, 1, players[0].ID)
	require.Equal(t, 2, players[1].ID)
}

func TestSortNonIncreasing(t *testing.T) {
	players := filterPlayers()
	Sort(players, "points")
	for i := 1; i < len(players); i++ {
		require.GreaterOrEqual(t, players[i-1].Points, players[i].Points)
	}
}
