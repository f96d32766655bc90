// Package history fetches and formats per-gameweek snapshots for
// players over a recent range. Entries are derived, read-only data
// fetched on demand; nothing is retained between calls.
package history

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
)

// Entry is one per-player per-gameweek snapshot in canonical form.
type Entry struct {
	Gameweek    int    `json:"gameweek"`
	Minutes     int    `json:"minutes"`
	Points      int    `json:"points"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	CleanSheets int    `json:"clean_sheets"`
	Bonus       int    `json:"bonus"`
	Opponent    string `json:"opponent"`
	WasHome     bool   `json:"was_home"`

	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`

	TransfersIn   int     `json:"transfers_in"`
	TransfersOut  int     `json:"transfers_out"`
	Selected      int     `json:"selected"`
	Value         float64 `json:"value"`
	TeamScore     int     `json:"team_score"`
	OpponentScore int     `json:"opponent_score"`
}

// PlayerHistory is the per-player result of a batch fetch. Err is set
// when that player's summary could not be fetched; the batch carries
// on regardless.
type PlayerHistory struct {
	PlayerID int
	Entries  []Entry
	Err      error
}

// Result is a batch of player histories over a shared gameweek range.
type Result struct {
	Players   []PlayerHistory
	Gameweeks []int
}

// PeriodStats summarises a set of history entries. A game counts as
// started at 60 minutes or more.
type PeriodStats struct {
	GameweeksAnalyzed int     `json:"gameweeks_analyzed"`
	GamesStarted      int     `json:"games_started"`
	Minutes           int     `json:"minutes"`
	TotalPoints       int     `json:"total_points"`
	PointsPerGame     float64 `json:"points_per_game"`
	Goals             int     `json:"goals"`
	Assists           int     `json:"assists"`
	GoalInvolvements  int     `json:"goal_involvements"`
	CleanSheets       int     `json:"clean_sheets"`
	Bonus             int     `json:"bonus"`
}

// RecentTotals aggregates recent-form stats for the analysis layer.
type RecentTotals struct {
	Gameweeks       int     `json:"gameweeks"`
	Minutes         int     `json:"minutes"`
	Points          int     `json:"points"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	CleanSheets     int     `json:"clean_sheets"`
	Bonus           int     `json:"bonus"`
	ExpectedGoals   float64 `json:"expected_goals"`
	ExpectedAssists float64 `json:"expected_assists"`
}

// Recent fetches the last numGameweeks of history for each player id,
// ending at the current gameweek. Per-player upstream failures are
// recorded on that player's entry rather than aborting the batch.
func Recent(ctx context.Context, provider fplapi.Provider, log *zap.Logger, playerIDs []int, numGameweeks int) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	events, err := provider.Gameweeks(ctx)
	if err != nil {
		return nil, err
	}
	currentGW, err := gameweek.CurrentID(events)
	if err != nil {
		return nil, err
	}
	teams, err := provider.Teams(ctx)
	if err != nil {
		return nil, err
	}
	teamName := make(map[int]string, len(teams))
	for _, t := range teams {
		teamName[t.ID] = t.Name
	}

	startGW := currentGW - numGameweeks + 1
	if startGW < 1 {
		startGW = 1
	}
	gwRange := make([]int, 0, currentGW-startGW+1)
	for gw := startGW; gw <= currentGW; gw++ {
		gwRange = append(gwRange, gw)
	}

	players := make([]PlayerHistory, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		summary, err := provider.PlayerSummary(ctx, playerID)
		if err != nil {
			log.Warn("player summary fetch failed",
				zap.Int("player_id", playerID), zap.Error(err))
			players = append(players, PlayerHistory{
				PlayerID: playerID,
				Err:      errors.Wrapf(err, "history for player %d", playerID),
			})
			continue
		}
		players = append(players, PlayerHistory{
			PlayerID: playerID,
			Entries:  formatEntries(summary.History, teamName, startGW, currentGW),
		})
	}

	return &Result{Players: players, Gameweeks: gwRange}, nil
}

// Range fetches one player's history entries within [startGW, endGW].
func Range(ctx context.Context, provider fplapi.Provider, playerID, startGW, endGW int) ([]Entry, error) {
	summary, err := provider.PlayerSummary(ctx, playerID)
	if err != nil {
		return nil, errors.Wrapf(err, "history for player %d", playerID)
	}
	teams, err := provider.Teams(ctx)
	if err != nil {
		return nil, err
	}
	teamName := make(map[int]string, len(teams))
	for _, t := range teams {
		teamName[t.ID] = t.Name
	}
	return formatEntries(summary.History, teamName, startGW, endGW), nil
}

// formatEntries converts summary history rows within [startGW, endGW]
// into canonical entries, sorted by gameweek.
func formatEntries(raw []fplapi.HistoryEntry, teamName map[int]string, startGW, endGW int) []Entry {
	entries := make([]Entry, 0, endGW-startGW+1)
	for _, h := range raw {
		if h.Round < startGW || h.Round > endGW {
			continue
		}
		opponent, ok := teamName[h.OpponentTeam]
		if !ok {
			opponent = "Unknown team"
		}
		teamScore, opponentScore := h.TeamAScore, h.TeamHScore
		if h.WasHome {
			teamScore, opponentScore = h.TeamHScore, h.TeamAScore
		}
		entries = append(entries, Entry{
			Gameweek:    h.Round,
			Minutes:     h.Minutes,
			Points:      h.TotalPoints,
			Goals:       h.GoalsScored,
			Assists:     h.Assists,
			CleanSheets: h.CleanSheets,
			Bonus:       h.Bonus,
			Opponent:    opponent,
			WasHome:     h.WasHome,

			ExpectedGoals:            h.ExpectedGoals,
			ExpectedAssists:          h.ExpectedAssists,
			ExpectedGoalInvolvements: h.ExpectedGoalInvolvements,
			ExpectedGoalsConceded:    h.ExpectedGoalsConceded,

			TransfersIn:   h.TransfersIn,
			TransfersOut:  h.TransfersOut,
			Selected:      h.Selected,
			Value:         float64(h.Value) / 10.0,
			TeamScore:     teamScore,
			OpponentScore: opponentScore,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gameweek < entries[j].Gameweek
	})
	return entries
}

// Period summarises a set of entries for a gameweek range.
func Period(entries []Entry) PeriodStats {
	stats := PeriodStats{GameweeksAnalyzed: len(entries)}
	for _, e := range entries {
		stats.Minutes += e.Minutes
		stats.TotalPoints += e.Points
		stats.Goals += e.Goals
		stats.Assists += e.Assists
		stats.CleanSheets += e.CleanSheets
		stats.Bonus += e.Bonus
		if e.Minutes >= 60 {
			stats.GamesStarted++
		}
	}
	stats.GoalInvolvements = stats.Goals + stats.Assists
	if len(entries) > 0 {
		ppg := float64(stats.TotalPoints) / float64(len(entries))
		stats.PointsPerGame = math.Round(ppg*10) / 10
	}
	return stats
}

// Totals sums recent-form entries for the analysis layer. Expected
// stats that fail to parse count as zero.
func Totals(entries []Entry) RecentTotals {
	totals := RecentTotals{Gameweeks: len(entries)}
	for _, e := range entries {
		totals.Minutes += e.Minutes
		totals.Points += e.Points
		totals.Goals += e.Goals
		totals.Assists += e.Assists
		totals.CleanSheets += e.CleanSheets
		totals.Bonus += e.Bonus
		totals.ExpectedGoals += parseFloat(e.ExpectedGoals)
		totals.ExpectedAssists += parseFloat(e.ExpectedAssists)
	}
	totals.ExpectedGoals = math.Round(totals.ExpectedGoals*100) / 100
	totals.ExpectedAssists = math.Round(totals.ExpectedAssists*100) / 100
	return totals
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
