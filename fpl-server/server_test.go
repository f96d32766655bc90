package main

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

func intp(v int) *int { return &v }

// fakeProvider serves a small in-memory season so tool builders can
// run without the upstream API.
type fakeProvider struct {
	bootstrap *fplapi.Bootstrap
	fixtures  []fplapi.Fixture
	summaries map[int]*fplapi.PlayerSummary

	bootstrapErr error
}

func (f *fakeProvider) BootstrapStatic(ctx context.Context) (*fplapi.Bootstrap, error) {
	if f.bootstrapErr != nil {
		return nil, f.bootstrapErr
	}
	return f.bootstrap, nil
}

func (f *fakeProvider) Players(ctx context.Context) ([]fplapi.Element, error) {
	return f.bootstrap.Elements, nil
}

func (f *fakeProvider) Teams(ctx context.Context) ([]fplapi.Team, error) {
	return f.bootstrap.Teams, nil
}

func (f *fakeProvider) Gameweeks(ctx context.Context) ([]fplapi.Event, error) {
	return f.bootstrap.Events, nil
}

func (f *fakeProvider) Fixtures(ctx context.Context) ([]fplapi.Fixture, error) {
	return f.fixtures, nil
}

func (f *fakeProvider) PlayerSummary(ctx context.Context, playerID int) (*fplapi.PlayerSummary, error) {
	if s, ok := f.summaries[playerID]; ok {
		return s, nil
	}
	return nil, errors.Newf("no summary for player %d", playerID)
}

func newFake() *fakeProvider {
	return &fakeProvider{
		bootstrap: &fplapi.Bootstrap{
			Elements: []fplapi.Element{
				{
					ID: 1, FirstName: "Mohamed", SecondName: "Salah", WebName: "M.Salah",
					Team: 1, ElementType: 3, NowCost: 131, TotalPoints: 211,
					Form: "8.5", SelectedByPercent: "45.3", Status: "a",
				},
				{
					ID: 2, FirstName: "Erling", SecondName: "Haaland", WebName: "Haaland",
					Team: 2, ElementType: 4, NowCost: 151, TotalPoints: 190,
					Form: "7.0", SelectedByPercent: "60.1", Status: "a",
				},
				{
					ID: 3, FirstName: "Jordan", SecondName: "Pickford", WebName: "Pickford",
					Team: 3, ElementType: 1, NowCost: 49, TotalPoints: 110,
					Form: "4.2", SelectedByPercent: "12.0", Status: "a",
				},
			},
			Teams: []fplapi.Team{
				{ID: 1, Name: "Liverpool", ShortName: "LIV", Position: 2, StrengthOverallHome: 1350, StrengthOverallAway: 1320},
				{ID: 2, Name: "Man City", ShortName: "MCI", Position: 1, StrengthOverallHome: 1380, StrengthOverallAway: 1360},
				{ID: 3, Name: "Everton", ShortName: "EVE", Position: 15, StrengthOverallHome: 1100, StrengthOverallAway: 1050},
			},
			ElementTypes: []fplapi.ElementType{
				{ID: 1, SingularNameShort: "GKP"},
				{ID: 3, SingularNameShort: "MID"},
				{ID: 4, SingularNameShort: "FWD"},
			},
			Events: []fplapi.Event{
				{ID: 9, Name: "Gameweek 9", Finished: true},
				{ID: 10, Name: "Gameweek 10", IsCurrent: true, DeadlineTime: "2026-10-24T10:00:00Z"},
				{ID: 11, Name: "Gameweek 11", IsNext: true, DeadlineTime: "2026-10-31T11:00:00Z"},
			},
		},
		fixtures: []fplapi.Fixture{
			{ID: 1, Event: intp(10), TeamH: 1, TeamA: 2, TeamHDifficulty: 4, TeamADifficulty: 4},
			{ID: 2, Event: intp(10), TeamH: 3, TeamA: 1, TeamHDifficulty: 4, TeamADifficulty: 2},
			{ID: 3, Event: intp(11), TeamH: 1, TeamA: 3, TeamHDifficulty: 2, TeamADifficulty: 4},
			{ID: 4, Event: intp(11), TeamH: 2, TeamA: 3, TeamHDifficulty: 2, TeamADifficulty: 5},
		},
		summaries: map[int]*fplapi.PlayerSummary{
			1: {History: []fplapi.HistoryEntry{
				{Round: 9, Minutes: 90, TotalPoints: 12, GoalsScored: 2, OpponentTeam: 3, WasHome: true, TeamHScore: 3, TeamAScore: 0, ExpectedGoals: "0.9", ExpectedAssists: "0.3", Value: 131},
				{Round: 10, Minutes: 90, TotalPoints: 6, GoalsScored: 1, OpponentTeam: 2, WasHome: false, TeamHScore: 1, TeamAScore: 1, ExpectedGoals: "0.4", ExpectedAssists: "0.1", Value: 131},
			}},
		},
	}
}

func TestBuildSearchPlayers(t *testing.T) {
	out, err := buildSearchPlayers(context.Background(), newFake(), SearchPlayersArgs{Query: "salah"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	require.Equal(t, "Mohamed Salah", out.Players[0].Name)

	t.Run("position filter excludes", func(t *testing.T) {
		out, err := buildSearchPlayers(context.Background(), newFake(), SearchPlayersArgs{
			Query: "salah", Position: "forward",
		})
		require.NoError(t, err)
		require.Zero(t, out.Count)
		require.NotNil(t, out.Players)
	})

	t.Run("upstream failure surfaces", func(t *testing.T) {
		fake := newFake()
		fake.bootstrapErr = errors.New("boom")
		_, err := buildSearchPlayers(context.Background(), fake, SearchPlayersArgs{Query: "salah"})
		require.Error(t, err)
	})
}

func TestBuildPlayerInfo(t *testing.T) {
	log := zap.NewNop()

	t.Run("by id with fixtures", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{PlayerID: 1})
		require.NoError(t, err)
		require.Empty(t, out.Error)
		require.Equal(t, "Mohamed Salah", out.Player.Name)
		require.NotNil(t, out.Fixtures)
		require.Len(t, out.Fixtures.FixturesAnalyzed, 3)
	})

	t.Run("by name", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{PlayerName: "haaland"})
		require.NoError(t, err)
		require.Equal(t, 2, out.Player.ID)
	})

	t.Run("gameweek range stats", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{
			PlayerID:      1,
			StartGameweek: intp(9),
			EndGameweek:   intp(10),
			IncludeRaw:    true,
		})
		require.NoError(t, err)
		require.NotNil(t, out.PeriodStats)
		require.Equal(t, 2, out.PeriodStats.GameweeksAnalyzed)
		require.Equal(t, 18, out.PeriodStats.TotalPoints)
		require.Len(t, out.History, 2)
	})

	t.Run("unknown id is a result error", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{PlayerID: 99})
		require.NoError(t, err)
		require.NotEmpty(t, out.Error)
		require.Nil(t, out.Player)
	})

	t.Run("missing identifier is a result error", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{})
		require.NoError(t, err)
		require.Equal(t, "player_id or player_name is required", out.Error)
	})

	t.Run("period stats failure is annotated", func(t *testing.T) {
		out, err := buildPlayerInfo(context.Background(), newFake(), log, PlayerInfoArgs{
			PlayerID:      2,
			StartGameweek: intp(9),
		})
		require.NoError(t, err)
		require.Equal(t, "Erling Haaland", out.Player.Name)
		require.Nil(t, out.PeriodStats)
		require.NotEmpty(t, out.PeriodStatsError)
	})
}

func TestBuildAnalyzePlayers(t *testing.T) {
	log := zap.NewNop()

	out, err := buildAnalyzePlayers(context.Background(), newFake(), log, AnalyzePlayersArgs{
		SortBy: "points",
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Count)
	require.Equal(t, 3, out.Summary.Count)
	require.Equal(t, "Mohamed Salah", out.Players[0].Name)

	t.Run("limit truncates but summary covers all", func(t *testing.T) {
		out, err := buildAnalyzePlayers(context.Background(), newFake(), log, AnalyzePlayersArgs{Limit: 1})
		require.NoError(t, err)
		require.Equal(t, 1, out.Count)
		require.Equal(t, 3, out.Summary.Count)
	})

	t.Run("recent form enrichment annotates per-player failures", func(t *testing.T) {
		out, err := buildAnalyzePlayers(context.Background(), newFake(), log, AnalyzePlayersArgs{
			NumGameweeks: 2,
		})
		require.NoError(t, err)
		for _, p := range out.Players {
			if p.ID == 1 {
				require.NotNil(t, p.RecentForm)
				require.Equal(t, 18, p.RecentForm.Points)
				require.Empty(t, p.RecentFormError)
			} else {
				require.Nil(t, p.RecentForm)
				require.NotEmpty(t, p.RecentFormError)
			}
		}
	})
}

func TestBuildComparePlayers(t *testing.T) {
	out, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
		Players: []string{"salah", "haaland"},
	})
	require.NoError(t, err)
	require.Len(t, out.Players, 2)
	require.Equal(t, "Mohamed Salah", out.Comparison.BestPerMetric["points"])
	require.Nil(t, out.Fixtures)

	t.Run("with fixtures", func(t *testing.T) {
		out, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players:         []string{"salah", "haaland"},
			IncludeFixtures: true,
		})
		require.NoError(t, err)
		require.Len(t, out.Fixtures, 2)
		require.NotEmpty(t, out.Comparison.FixtureAdvantage)
	})

	t.Run("too few players", func(t *testing.T) {
		_, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players: []string{"salah"},
		})
		require.Error(t, err)
	})

	t.Run("unknown name annotated, comparison proceeds", func(t *testing.T) {
		out, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players: []string{"salah", "haaland", "zzzz"},
		})
		require.NoError(t, err)
		require.Len(t, out.Players, 2)
		require.Equal(t, "no player matching name", out.Errors["zzzz"])
		require.NotEmpty(t, out.Comparison.Winner)
	})

	t.Run("duplicate annotated, comparison proceeds", func(t *testing.T) {
		out, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players: []string{"salah", "haaland", "mohamed salah"},
		})
		require.NoError(t, err)
		require.Len(t, out.Players, 2)
		require.Contains(t, out.Errors["mohamed salah"], "duplicate of")
	})

	t.Run("fewer than two resolvable names fails", func(t *testing.T) {
		_, err := buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players: []string{"salah", "zzzz"},
		})
		require.Error(t, err)

		_, err = buildComparePlayers(context.Background(), newFake(), ComparePlayersArgs{
			Players: []string{"salah", "mohamed salah"},
		})
		require.Error(t, err)
	})
}

func TestBuildPlayerFixtures(t *testing.T) {
	out, err := buildPlayerFixtures(context.Background(), newFake(), PlayerFixturesArgs{PlayerID: 1})
	require.NoError(t, err)
	require.Equal(t, "Mohamed Salah", out.Player)
	require.Equal(t, "Liverpool", out.Team)
	require.Len(t, out.FixturesAnalyzed, 3)
	require.Positive(t, out.DifficultyScore)

	t.Run("unknown player is a result error", func(t *testing.T) {
		out, err := buildPlayerFixtures(context.Background(), newFake(), PlayerFixturesArgs{PlayerID: 99})
		require.NoError(t, err)
		require.NotEmpty(t, out.Error)
	})

	t.Run("between rounds the horizon starts at next minus one", func(t *testing.T) {
		fake := newFake()
		fake.bootstrap.Events = []fplapi.Event{
			{ID: 9, Name: "Gameweek 9", Finished: true},
			{ID: 10, Name: "Gameweek 10"},
			{ID: 11, Name: "Gameweek 11", IsNext: true},
		}
		out, err := buildPlayerFixtures(context.Background(), fake, PlayerFixturesArgs{PlayerID: 1})
		require.NoError(t, err)
		// Gameweek 10 fixtures still count even though no event is
		// flagged current.
		require.Len(t, out.FixturesAnalyzed, 3)
		require.Equal(t, 10, out.FixturesAnalyzed[0].Gameweek)
	})
}

func TestBuildBlankAndDoubleGameweeks(t *testing.T) {
	fake := newFake()
	// GW10 keeps everyone busy; strip GW11 so Liverpool and Everton blank
	// there and give Man City a double in GW10.
	fake.fixtures = []fplapi.Fixture{
		{ID: 1, Event: intp(10), TeamH: 1, TeamA: 2},
		{ID: 2, Event: intp(10), TeamH: 3, TeamA: 2},
		{ID: 3, Event: intp(11), TeamH: 2, TeamA: 0},
	}

	blanks, err := buildBlankGameweeks(context.Background(), fake, GameweekHorizonArgs{NumGameweeks: 2})
	require.NoError(t, err)
	require.Equal(t, 2, blanks.GameweeksChecked)
	require.Len(t, blanks.BlankGameweeks, 1)
	require.Equal(t, 11, blanks.BlankGameweeks[0].Gameweek)
	require.Equal(t, 2, blanks.BlankGameweeks[0].Count)

	doubles, err := buildDoubleGameweeks(context.Background(), fake, GameweekHorizonArgs{NumGameweeks: 2})
	require.NoError(t, err)
	require.Len(t, doubles.DoubleGameweeks, 1)
	require.Equal(t, 10, doubles.DoubleGameweeks[0].Gameweek)
	require.Equal(t, 2, doubles.DoubleGameweeks[0].Teams[0].ID)
}

func TestBuildGameweekStatus(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	out, err := buildGameweekStatus(context.Background(), newFake(), now)
	require.NoError(t, err)
	require.Equal(t, 10, out.ID)
	require.Equal(t, "Current", out.Label)
	require.Equal(t, 2, out.FixtureCount)
	require.NotEmpty(t, out.TimeUntilDeadline)
}

func TestBuildFixtures(t *testing.T) {
	out, err := buildFixtures(context.Background(), newFake(), FixturesArgs{})
	require.NoError(t, err)
	require.Equal(t, 4, out.Count)

	t.Run("gameweek filter", func(t *testing.T) {
		out, err := buildFixtures(context.Background(), newFake(), FixturesArgs{Gameweek: 11})
		require.NoError(t, err)
		require.Equal(t, 2, out.Count)
	})

	t.Run("team filter", func(t *testing.T) {
		out, err := buildFixtures(context.Background(), newFake(), FixturesArgs{Team: "everton"})
		require.NoError(t, err)
		require.Equal(t, 3, out.Count)
	})
}

func TestBuildTeams(t *testing.T) {
	out, err := buildTeams(context.Background(), newFake(), TeamsArgs{})
	require.NoError(t, err)
	require.Equal(t, 3, out.Count)
	// League-table order.
	require.Equal(t, "Man City", out.Teams[0].Name)

	t.Run("by name", func(t *testing.T) {
		out, err := buildTeams(context.Background(), newFake(), TeamsArgs{Name: "LIV"})
		require.NoError(t, err)
		require.Equal(t, 1, out.Count)
		require.Equal(t, "Liverpool", out.Teams[0].Name)
	})

	t.Run("unknown team is a result error", func(t *testing.T) {
		out, err := buildTeams(context.Background(), newFake(), TeamsArgs{Name: "arsenal"})
		require.NoError(t, err)
		require.NotEmpty(t, out.Error)
		require.Zero(t, out.Count)
		require.Empty(t, out.Teams)
	})
}
