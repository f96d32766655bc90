package main

import (
	"context"

	"github.com/universal-mcp/fpl/internal/fixtures"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
)

type PlayerFixturesArgs struct {
	PlayerID    int    `json:"player_id,omitempty" jsonschema:"Player element id (takes precedence over player_name)"`
	PlayerName  string `json:"player_name,omitempty" jsonschema:"Player name to search for when no id is given"`
	NumFixtures int    `json:"num_fixtures,omitempty" jsonschema:"Upcoming fixtures to analyze (default 5)"`
}

type playerFixturesResult struct {
	Error    string `json:"error,omitempty"`
	PlayerID int    `json:"player_id,omitempty"`
	Player   string `json:"player,omitempty"`
	Team     string `json:"team,omitempty"`

	*fixtures.Analysis
}

// buildPlayerFixtures scores a player's upcoming schedule on the 1-10
// difficulty scale, with a home-balance adjustment.
func buildPlayerFixtures(ctx context.Context, provider fplapi.Provider, args PlayerFixturesArgs) (*playerFixturesResult, error) {
	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}

	player := resolvePlayer(snap.players, args.PlayerID, args.PlayerName)
	if player == nil {
		return &playerFixturesResult{Error: playerNotFound(args.PlayerID, args.PlayerName)}, nil
	}

	numFixtures := args.NumFixtures
	if numFixtures <= 0 {
		numFixtures = 5
	}
	fromGW, err := gameweek.CurrentID(snap.bootstrap.Events)
	if err != nil {
		return nil, err
	}
	all, err := provider.Fixtures(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := fixtures.PlayerUpcoming(all, snap.bootstrap.Teams, player.TeamID, fromGW, numFixtures)
	analysis := fixtures.Analyze(upcoming)

	return &playerFixturesResult{
		PlayerID: player.ID,
		Player:   player.Name,
		Team:     player.Team,
		Analysis: &analysis,
	}, nil
}
