package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/universal-mcp/fpl/internal/fplapi"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("path", "/mcp")
	v.SetDefault("base_url", "")
	v.SetDefault("timeout_seconds", 20)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("FPL")
	v.AutomaticEnv()

	v.SetConfigName("fpl-server")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	return v
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	cfg := loadConfig()
	log := newLogger(cfg.GetString("log_level"))
	defer log.Sync()

	client := fplapi.NewClient(log)
	if base := cfg.GetString("base_url"); base != "" {
		client.BaseURL = base
	}
	if timeout := cfg.GetInt("timeout_seconds"); timeout > 0 {
		client.HTTP.Timeout = time.Duration(timeout) * time.Second
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_player_information",
		Description: "Detailed player record with optional gameweek-range stats and upcoming fixture outlook",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerInfoArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerInfo(ctx, client, log, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_players",
		Description: "Find players by name with optional position and team filters",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SearchPlayersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSearchPlayers(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_gameweek_status",
		Description: "Current/next gameweek with deadline countdown, stats, and popular picks",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GameweekStatusArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameweekStatus(ctx, client, time.Now().UTC())
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "analyze_players",
		Description: "Filter, sort, and summarize players by price, points, ownership, form, position, and team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AnalyzePlayersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildAnalyzePlayers(ctx, client, log, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "compare_players",
		Description: "Metric-by-metric comparison of 2-5 players with a win tally and overall best",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ComparePlayersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildComparePlayers(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "analyze_player_fixtures",
		Description: "Score a player's upcoming fixtures on a 1-10 difficulty scale",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerFixturesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerFixtures(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_blank_gameweeks",
		Description: "Upcoming gameweeks where teams have no fixture",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GameweekHorizonArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildBlankGameweeks(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_double_gameweeks",
		Description: "Upcoming gameweeks where teams play more than once",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GameweekHorizonArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildDoubleGameweeks(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_fixtures",
		Description: "Season fixtures with team references resolved, filterable by gameweek or team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args FixturesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildFixtures(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_teams",
		Description: "Teams in league-table order with strength ratings",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeams(ctx, client, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})

	addr := cfg.GetString("addr")
	mcpPath := cfg.GetString("path")
	http.Handle(mcpPath, handler)

	log.Info("MCP HTTP server listening",
		zap.String("addr", addr), zap.String("path", mcpPath))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}
