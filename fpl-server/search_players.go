package main

import (
	"context"

	"github.com/universal-mcp/fpl/internal/analysis"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/roster"
	"github.com/universal-mcp/fpl/internal/search"
)

type SearchPlayersArgs struct {
	Query    string `json:"query" jsonschema:"Player name or partial name (required)"`
	Position string `json:"position,omitempty" jsonschema:"Restrict to a position (GKP/DEF/MID/FWD or a common alias)"`
	Team     string `json:"team,omitempty" jsonschema:"Restrict to a team (name or short name substring)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum results (default 5)"`
}

type searchPlayersResult struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Players []roster.Player `json:"players"`
}

// buildSearchPlayers ranks players against the query, then narrows by
// the optional position and team filters. The ranked set is fetched
// wider than the limit so filtering does not starve the results.
func buildSearchPlayers(ctx context.Context, provider fplapi.Provider, args SearchPlayersArgs) (*searchPlayersResult, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 5
	}

	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}

	matches := search.FindPlayers(snap.players, args.Query, limit*2)
	if args.Position != "" || args.Team != "" {
		matches = analysis.Apply(matches, analysis.Filters{
			Position: args.Position,
			Team:     args.Team,
		})
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []roster.Player{}
	}

	return &searchPlayersResult{
		Query:   args.Query,
		Count:   len(matches),
		Players: matches,
	}, nil
}
