package main

import (
	"context"

	"github.com/universal-mcp/fpl/internal/fixtures"
	"github.com/universal-mcp/fpl/internal/fplapi"
)

type FixturesArgs struct {
	Gameweek int    `json:"gameweek,omitempty" jsonschema:"Restrict to one gameweek (0 = all)"`
	Team     string `json:"team,omitempty" jsonschema:"Restrict to a team (name or short name substring)"`
}

type fixturesResult struct {
	Count    int                  `json:"count"`
	Fixtures []fixtures.Formatted `json:"fixtures"`
}

// buildFixtures lists season fixtures with team references resolved,
// optionally narrowed to a gameweek or a team.
func buildFixtures(ctx context.Context, provider fplapi.Provider, args FixturesArgs) (*fixturesResult, error) {
	bs, err := provider.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	all, err := provider.Fixtures(ctx)
	if err != nil {
		return nil, err
	}
	formatted := fixtures.Format(all, bs.Teams, args.Gameweek, args.Team)
	return &fixturesResult{Count: len(formatted), Fixtures: formatted}, nil
}
