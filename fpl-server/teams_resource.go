package main

import (
	"context"
	"fmt"

	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/roster"
)

type TeamsArgs struct {
	Name string `json:"name,omitempty" jsonschema:"Restrict to one team (full or short name, exact then substring)"`
}

type teamsResult struct {
	Error string        `json:"error,omitempty"`
	Count int           `json:"count"`
	Teams []roster.Team `json:"teams"`
}

// buildTeams lists the teams in league-table order, or a single team
// when a name is given. An unknown name is a result-level error, not
// a tool failure.
func buildTeams(ctx context.Context, provider fplapi.Provider, args TeamsArgs) (*teamsResult, error) {
	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}
	if args.Name == "" {
		return &teamsResult{Count: len(snap.teams), Teams: snap.teams}, nil
	}
	team := roster.TeamByName(snap.teams, args.Name)
	if team == nil {
		return &teamsResult{Error: fmt.Sprintf("team not found: %s", args.Name), Teams: []roster.Team{}}, nil
	}
	return &teamsResult{Count: 1, Teams: []roster.Team{*team}}, nil
}
