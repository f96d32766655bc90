package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/universal-mcp/fpl/internal/analysis"
	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/history"
	"github.com/universal-mcp/fpl/internal/roster"
)

type AnalyzePlayersArgs struct {
	Position     string   `json:"position,omitempty" jsonschema:"Restrict to a position (GKP/DEF/MID/FWD or a common alias)"`
	Team         string   `json:"team,omitempty" jsonschema:"Restrict to a team (name or short name substring)"`
	MinPrice     *float64 `json:"min_price,omitempty" jsonschema:"Minimum price in currency units"`
	MaxPrice     *float64 `json:"max_price,omitempty" jsonschema:"Maximum price in currency units"`
	MinPoints    *int     `json:"min_points,omitempty" jsonschema:"Minimum season points"`
	MinOwnership *float64 `json:"min_ownership,omitempty" jsonschema:"Minimum ownership percentage"`
	MaxOwnership *float64 `json:"max_ownership,omitempty" jsonschema:"Maximum ownership percentage"`
	MinForm      *float64 `json:"min_form,omitempty" jsonschema:"Minimum form rating"`
	SortBy       string   `json:"sort_by,omitempty" jsonschema:"Sort field: points, price, form, value, selected_by_percent, name, team, position (default points)"`
	Limit        int      `json:"limit,omitempty" jsonschema:"Maximum players returned (default 20)"`
	NumGameweeks int      `json:"num_gameweeks,omitempty" jsonschema:"When set, attach recent-form totals over this many gameweeks for the returned players"`
}

type analyzedPlayer struct {
	roster.Player
	RecentForm      *history.RecentTotals `json:"recent_form,omitempty"`
	RecentFormError string                `json:"recent_form_error,omitempty"`
}

type analyzePlayersResult struct {
	Summary analysis.Summary `json:"summary"`
	Count   int              `json:"count"`
	Players []analyzedPlayer `json:"players"`
}

// buildAnalyzePlayers filters the player set by the conjunction of the
// given criteria, sorts, and truncates. The summary covers the whole
// filtered set; recent-form enrichment applies only to the returned
// slice to bound upstream fetches.
func buildAnalyzePlayers(ctx context.Context, provider fplapi.Provider, log *zap.Logger, args AnalyzePlayersArgs) (*analyzePlayersResult, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 20
	}

	snap, err := loadSnapshot(ctx, provider)
	if err != nil {
		return nil, err
	}

	filtered := analysis.Apply(snap.players, analysis.Filters{
		Position:     args.Position,
		Team:         args.Team,
		MinPrice:     args.MinPrice,
		MaxPrice:     args.MaxPrice,
		MinPoints:    args.MinPoints,
		MinOwnership: args.MinOwnership,
		MaxOwnership: args.MaxOwnership,
		MinForm:      args.MinForm,
	})
	analysis.Sort(filtered, args.SortBy)

	summary := analysis.Summarize(filtered)
	top := filtered
	if len(top) > limit {
		top = top[:limit]
	}

	players := make([]analyzedPlayer, 0, len(top))
	for _, p := range top {
		players = append(players, analyzedPlayer{Player: p})
	}

	if args.NumGameweeks > 0 && len(players) > 0 {
		ids := make([]int, 0, len(players))
		for _, p := range players {
			ids = append(ids, p.ID)
		}
		recent, err := history.Recent(ctx, provider, log, ids, args.NumGameweeks)
		if err != nil {
			log.Warn("recent form unavailable", zap.Error(err))
			for i := range players {
				players[i].RecentFormError = err.Error()
			}
		} else {
			byID := make(map[int]history.PlayerHistory, len(recent.Players))
			for _, ph := range recent.Players {
				byID[ph.PlayerID] = ph
			}
			for i := range players {
				ph, ok := byID[players[i].ID]
				if !ok {
					continue
				}
				if ph.Err != nil {
					players[i].RecentFormError = ph.Err.Error()
					continue
				}
				totals := history.Totals(ph.Entries)
				players[i].RecentForm = &totals
			}
		}
	}

	return &analyzePlayersResult{
		Summary: summary,
		Count:   len(players),
		Players: players,
	}, nil
}
