package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/universal-mcp/fpl/internal/roster"
)

func testPlayers() []roster.Player {
	return []roster.Player{
		{ID: 1, Name: "Mohamed Salah", WebName: "M.Salah", Points: 211},
		{ID: 2, Name: "Kevin De Bruyne", WebName: "De Bruyne", Points: 140},
		{ID: 3, Name: "Erling Haaland", WebName: "Haaland", Points: 190},
		{ID: 4, Name: "Darwin Nunez", WebName: "Darwin", Points: 90},
		{ID: 5, Name: "Mohammed Kudus", WebName: "Kudus", Points: 80},
		{ID: 6, Name: "Heung-Min Son", WebName: "Son", Points: 160},
		{ID: 7, Name: "Ali Salah", WebName: "A.Salah", Points: 30},
		{ID: 8, Name: "Marco Silva", WebName: "M.Silva", Points: 50},
	}
}

func TestFindPlayersEmptyQuery(t *testing.T) {
	require.Nil(t, FindPlayers(testPlayers(), "", 5))
	require.Nil(t, FindPlayers(testPlayers(), "   ", 5))
}

func TestFindPlayersExactName(t *testing.T) {
	got := FindPlayers(testPlayers(), "Mohamed Salah", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 1, got[0].ID)
}

func TestFindPlayersLastName(t *testing.T) {
	got := FindPlayers(testPlayers(), "haaland", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 3, got[0].ID)
}

func TestFindPlayersMultiToken(t *testing.T) {
	// "mo salah": first token inside first name, last inside last name.
	got := FindPlayers(testPlayers(), "mo salah", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 1, got[0].ID)
}

func TestFindPlayersDiscriminatesSurname(t *testing.T) {
	// "Mo Salah" must rank Mohamed Salah above the other Salah, who
	// still appears further down on the shared surname.
	got := FindPlayers(testPlayers(), "Mo Salah", 5)
	require.GreaterOrEqual(t, len(got), 2)
	require.Equal(t, 1, got[0].ID)
	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	require.Contains(t, ids, 7)
}

func TestFindPlayersNickname(t *testing.T) {
	got := FindPlayers(testPlayers(), "KDB", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 2, got[0].ID)
}

func TestFindPlayersInitials(t *testing.T) {
	// "dn" matches the first letters of Darwin Nunez's name tokens.
	got := FindPlayers(testPlayers(), "dn", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 4, got[0].ID)
}

func TestFindPlayersLimit(t *testing.T) {
	got := FindPlayers(testPlayers(), "moh", 1)
	require.Len(t, got, 1)
	// Both Mohameds match "moh"; Salah's season points break the tie.
	require.Equal(t, 1, got[0].ID)
}

func TestFindPlayersPointsTiebreak(t *testing.T) {
	got := FindPlayers(testPlayers(), "moh", 5)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 5, got[1].ID)
}

func TestFindPlayersSubstring(t *testing.T) {
	got := FindPlayers(testPlayers(), "uez", 5)
	require.NotEmpty(t, got)
	require.Equal(t, 4, got[0].ID)
}

func TestFindPlayersWeakMatchFallbackMerge(t *testing.T) {
	// "m.s" only hits web names, scoring below the confidence
	// threshold for both matches. The fallback merge must keep the
	// ranked order first (points tiebreak puts Salah ahead) and
	// neither drop nor duplicate entries.
	got := FindPlayers(testPlayers(), "m.s", 5)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 8, got[1].ID)
}

func TestFindPlayersNoMatch(t *testing.T) {
	require.Empty(t, FindPlayers(testPlayers(), "zzzz", 5))
}
