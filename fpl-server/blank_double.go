package main

import (
	"context"

	"github.com/universal-mcp/fpl/internal/fixtures"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
)

type GameweekHorizonArgs struct {
	NumGameweeks int `json:"num_gameweeks,omitempty" jsonschema:"How many upcoming gameweeks to scan (default 5)"`
}

type blankGameweeksResult struct {
	GameweeksChecked int                      `json:"gameweeks_checked"`
	BlankGameweeks   []fixtures.BlankGameweek `json:"blank_gameweeks"`
}

type doubleGameweeksResult struct {
	GameweeksChecked int                       `json:"gameweeks_checked"`
	DoubleGameweeks  []fixtures.DoubleGameweek `json:"double_gameweeks"`
}

// horizonInputs fetches the shared inputs for blank/double detection
// and resolves where the upcoming window starts.
func horizonInputs(ctx context.Context, provider fplapi.Provider) (*fplapi.Bootstrap, []fplapi.Fixture, int, error) {
	bs, err := provider.BootstrapStatic(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	fromGW, err := gameweek.UpcomingStart(bs.Events)
	if err != nil {
		return nil, nil, 0, err
	}
	all, err := provider.Fixtures(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	return bs, all, fromGW, nil
}

// buildBlankGameweeks finds upcoming gameweeks where teams have no
// scheduled fixture.
func buildBlankGameweeks(ctx context.Context, provider fplapi.Provider, args GameweekHorizonArgs) (*blankGameweeksResult, error) {
	horizon := args.NumGameweeks
	if horizon <= 0 {
		horizon = 5
	}
	bs, all, fromGW, err := horizonInputs(ctx, provider)
	if err != nil {
		return nil, err
	}
	blanks := fixtures.Blanks(bs.Events, all, bs.Teams, fromGW, horizon)
	if blanks == nil {
		blanks = []fixtures.BlankGameweek{}
	}
	return &blankGameweeksResult{GameweeksChecked: horizon, BlankGameweeks: blanks}, nil
}

// buildDoubleGameweeks finds upcoming gameweeks where teams play more
// than once.
func buildDoubleGameweeks(ctx context.Context, provider fplapi.Provider, args GameweekHorizonArgs) (*doubleGameweeksResult, error) {
	horizon := args.NumGameweeks
	if horizon <= 0 {
		horizon = 5
	}
	bs, all, fromGW, err := horizonInputs(ctx, provider)
	if err != nil {
		return nil, err
	}
	doubles := fixtures.Doubles(bs.Events, all, bs.Teams, fromGW, horizon)
	if doubles == nil {
		doubles = []fixtures.DoubleGameweek{}
	}
	return &doubleGameweeksResult{GameweeksChecked: horizon, DoubleGameweeks: doubles}, nil
}
