package main

import (
	"context"
	"time"

	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/gameweek"
)

type GameweekStatusArgs struct{}

// buildGameweekStatus reports the current (or next) gameweek with its
// deadline countdown, score statistics, and popular-player picks.
func buildGameweekStatus(ctx context.Context, provider fplapi.Provider, now time.Time) (*gameweek.Status, error) {
	bs, err := provider.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	allFixtures, err := provider.Fixtures(ctx)
	if err != nil {
		return nil, err
	}
	return gameweek.BuildStatus(bs.Events, bs.Elements, allFixtures, now)
}
