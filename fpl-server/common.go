package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/universal-mcp/fpl/internal/fplapi"
	"github.com/universal-mcp/fpl/internal/roster"
)

// snapshot is one query's view of the upstream data. Every tool call
// rebuilds it from a fresh bootstrap fetch; nothing survives the call.
type snapshot struct {
	bootstrap *fplapi.Bootstrap
	players   []roster.Player
	teams     []roster.Team
}

// loadSnapshot fetches bootstrap-static and formats the canonical
// player and team sets.
func loadSnapshot(ctx context.Context, provider fplapi.Provider) (*snapshot, error) {
	bs, err := provider.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		bootstrap: bs,
		players:   roster.BuildPlayers(bs),
		teams:     roster.BuildTeams(bs),
	}, nil
}

// playerByID finds a canonical player by id, nil when absent.
func playerByID(players []roster.Player, id int) *roster.Player {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}

// toolMarshal renders a tool result as indented JSON content.
func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(b []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
