package main

import (
	"context"
	"fmt"

	"github.com/universal-mcp/fpl/internal/analysis"
	"github.com/universal-mcp/fpl/internal/fixtures"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
	"github.com/universal-mcp/fpl/internal/roster"
	"github.com/universal-mcp/fpl/internal/search"
)

type ComparePlayersArgs struct {
	Players         []string `json:"players" jsonschema:"Player names to compare (2 to 5)"`
	IncludeFixtures bool     `json:"include_fixtures,omitempty" jsonschema:"Also compare upcoming fixture difficulty"`
	NumFixtures     int      `json:"num_fixtures,omitempty" jsonschema:"Upcoming fixtures per player when fixtures are included (default 5)"`
}

type comparePlayersResult struct {
	Players    []roster.Player               `json:"players"`
	Errors     map[string]string             `json:"errors,omitempty"`
	Comparison analysis.ComparisonResult     `json:"comparison"`
	Fixtures   map[string]*fixtures.Analysis `json:"fixtures,omitempty"`
}

// buildComparePlayers resolves each requested name to its best match
// and compares them metric by metric, optionally folding upcoming
// fixture difficulty into the win tally. Names that cannot be
// resolved are annotated on the result and the comparison proceeds
// with the rest, as long as at least two players remain.
func buildComparePlayers(ctx context.Context, provider fplapi.Provider, args ComparePlayersArgs) (*comparePlayersResult, error) {
	if len(args.Players) < 2 {
		return nil, fmt.Errorf("at least 2 players are required")
	}
	if len(args.Players) > 5 {
		return nil, fmt.Errorf("at most 5 players can be compared")
	}

	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}

	resolved := make([]roster.Player, 0, len(args.Players))
	nameErrors := make(map[string]string)
	seen := make(map[int]bool, len(args.Players))
	for _, name := range args.Players {
		matches := search.FindPlayers(snap.players, name, 1)
		if len(matches) == 0 {
			nameErrors[name] = "no player matching name"
			continue
		}
		if seen[matches[0].ID] {
			nameErrors[name] = "duplicate of " + matches[0].Name
			continue
		}
		seen[matches[0].ID] = true
		resolved = append(resolved, matches[0])
	}
	if len(resolved) < 2 {
		return nil, fmt.Errorf("fewer than 2 of the requested players could be resolved")
	}

	result := &comparePlayersResult{Players: resolved}
	if len(nameErrors) > 0 {
		result.Errors = nameErrors
	}

	var fixtureScores []analysis.FixtureScore
	if args.IncludeFixtures {
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
		result.Fixtures = make(map[string]*fixtures.Analysis, len(resolved))
		for _, p := range resolved {
			upcoming := fixtures.PlayerUpcoming(all, snap.bootstrap.Teams, p.TeamID, fromGW, numFixtures)
			a := fixtures.Analyze(upcoming)
			result.Fixtures[p.Name] = &a
			fixtureScores = append(fixtureScores, analysis.FixtureScore{Name: p.Name, Score: a.DifficultyScore})
		}
	}

	result.Comparison = analysis.Compare(resolved, fixtureScores)
	return result, nil
}
