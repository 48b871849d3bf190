package mcpserver

import (
	"context"

	"OddsLens/internal/model"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerPolymarketTools Polymarket 工具组
func (d *Deps) registerPolymarketTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("polymarket_get_events",
			mcp.WithDescription("Get prediction-market events from Polymarket (Gamma API), ordered by volume. Outcome prices are already probabilities in [0,1]."),
			mcp.WithString("tag", mcp.Description("Tag slug to filter by (e.g. politics, nba). Optional.")),
			mcp.WithNumber("limit", mcp.Description("Max events (1-100). Default: 50")),
			mcp.WithBoolean("include_closed", mcp.Description("Include closed events. Default: false")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			events, err := d.Poly.RawEvents(ctx,
				getStr(args, "tag", ""),
				getInt(args, "limit", 50),
				getBool(args, "include_closed", false),
			)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Polymarket events", events)
		},
	)

	s.AddTool(
		mcp.NewTool("polymarket_comparable_markets",
			mcp.WithDescription("Fetch active Polymarket events and normalize them into comparable markets: probabilities in [0,1], keyword fingerprint, team names, coarse category, and vig."),
			mcp.WithString("tag", mcp.Description("Tag slug to narrow the fetch. Optional.")),
			mcp.WithString("category", mcp.Description("Keep only one category: sports, politics, crypto, business, other")),
			mcp.WithString("keywords", mcp.Description("Relevance filter; title matches rank higher than subtitle matches")),
			mcp.WithNumber("min_volume", mcp.Description("Drop markets below this volume. Default: 0")),
			mcp.WithBoolean("include_resolved", mcp.Description("Include closed markets. Default: false")),
			mcp.WithNumber("limit", mcp.Description("Max markets returned. Default: 20")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			listings, err := d.Poly.FetchListings(ctx, getStr(args, "tag", ""))
			if err != nil {
				return upstreamErr(err)
			}
			markets := d.Assembler.Assemble(listings, assembleOptsFromArgs(args))
			return comparableResult(model.PlatformPolymarket, markets)
		},
	)
}
