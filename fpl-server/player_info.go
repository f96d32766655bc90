package main

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/universal-mcp/fpl/internal/fixtures"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
	"github.com/universal-mcp/fpl/internal/history"
	"github.com/universal-mcp/fpl/internal/roster"
	"github.com/universal-mcp/fpl/internal/search"
)

type PlayerInfoArgs struct {
	PlayerID      int    `json:"player_id,omitempty" jsonschema:"Player element id (takes precedence over player_name)"`
	PlayerName    string `json:"player_name,omitempty" jsonschema:"Player name to search for when no id is given"`
	StartGameweek *int   `json:"start_gameweek,omitempty" jsonschema:"First gameweek of the stats period (inclusive)"`
	EndGameweek   *int   `json:"end_gameweek,omitempty" jsonschema:"Last gameweek of the stats period (inclusive, default current)"`
	IncludeRaw    bool   `json:"include_raw,omitempty" jsonschema:"Include the per-gameweek history entries, not just the period summary"`
	NumFixtures   int    `json:"num_fixtures,omitempty" jsonschema:"Upcoming fixtures to analyze (default 5)"`
}

type playerInfoResult struct {
	Error  string         `json:"error,omitempty"`
	Player *roster.Player `json:"player,omitempty"`

	PeriodStats      *history.PeriodStats `json:"period_stats,omitempty"`
	PeriodStatsError string               `json:"period_stats_error,omitempty"`
	History          []history.Entry      `json:"history,omitempty"`

	Fixtures *fixtures.Analysis `json:"upcoming_fixtures,omitempty"`
}

// buildPlayerInfo resolves a player by id or name and assembles their
// season record, an optional gameweek-range stats period, and an
// upcoming-fixture outlook. A player that cannot be resolved is a
// result-level error, not a tool failure.
func buildPlayerInfo(ctx context.Context, provider fplapi.Provider, log *zap.Logger, args PlayerInfoArgs) (*playerInfoResult, error) {
	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}

	player := resolvePlayer(snap.players, args.PlayerID, args.PlayerName)
	if player == nil {
		return &playerInfoResult{Error: playerNotFound(args.PlayerID, args.PlayerName)}, nil
	}
	result := &playerInfoResult{Player: player}

	if args.StartGameweek != nil || args.EndGameweek != nil {
		startGW, endGW, err := statsPeriod(snap.bootstrap.Events, args.StartGameweek, args.EndGameweek)
		if err != nil {
			return nil, err
		}
		entries, err := history.Range(ctx, provider, player.ID, startGW, endGW)
		if err != nil {
			log.Warn("period stats unavailable", zap.Int("player_id", player.ID), zap.Error(err))
			result.PeriodStatsError = err.Error()
		} else {
			stats := history.Period(entries)
			result.PeriodStats = &stats
			if args.IncludeRaw {
				result.History = entries
			}
		}
	}

	numFixtures := args.NumFixtures
	if numFixtures <= 0 {
		numFixtures = 5
	}
	if fromGW, err := gameweek.CurrentID(snap.bootstrap.Events); err == nil {
		all, err := provider.Fixtures(ctx)
		if err != nil {
			log.Warn("fixtures unavailable", zap.Error(err))
		} else {
			upcoming := fixtures.PlayerUpcoming(all, snap.bootstrap.Teams, player.TeamID, fromGW, numFixtures)
			analysis := fixtures.Analyze(upcoming)
			result.Fixtures = &analysis
		}
	}

	return result, nil
}

// resolvePlayer finds a player by id when given, else by name search
// taking the best match.
func resolvePlayer(players []roster.Player, playerID int, playerName string) *roster.Player {
	if playerID > 0 {
		return playerByID(players, playerID)
	}
	if playerName == "" {
		return nil
	}
	matches := search.FindPlayers(players, playerName, 1)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

func playerNotFound(playerID int, playerName string) string {
	if playerID > 0 {
		return "player not found: id " + strconv.Itoa(playerID)
	}
	if playerName != "" {
		return "no player matching name: " + playerName
	}
	return "player_id or player_name is required"
}

// statsPeriod normalizes the requested gameweek range: the end
// defaults to the current gameweek and the range is clamped to it.
func statsPeriod(events []fplapi.Event, start, end *int) (int, int, error) {
	currentGW, err := gameweek.CurrentID(events)
	if err != nil {
		return 0, 0, err
	}
	startGW := 1
	if start != nil && *start > 0 {
		startGW = *start
	}
	endGW := currentGW
	if end != nil && *end > 0 && *end < currentGW {
		endGW = *end
	}
	if startGW > endGW {
		startGW = endGW
	}
	return startGW, endGW, nil
}
