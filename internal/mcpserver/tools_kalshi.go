package mcpserver

import (
	"context"

	"OddsLens/internal/model"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerKalshiTools Kalshi 工具组：原始事件透传 + 可比市场
func (d *Deps) registerKalshiTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("kalshi_get_events",
			mcp.WithDescription("Get prediction-market events from Kalshi with nested binary markets. Prices are in cents (0-100); implied probability = price / 100."),
			mcp.WithString("series_ticker", mcp.Description("Series ticker to filter by (e.g. KXNBA). Optional.")),
			mcp.WithString("status", mcp.Description("Event status filter: open, closed, settled. Default: open")),
			mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous call")),
			mcp.WithNumber("limit", mcp.Description("Max events per page (1-200). Default: 100")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			resp, err := d.Kalshi.RawEvents(ctx,
				getStr(args, "series_ticker", ""),
				getStr(args, "status", "open"),
				getStr(args, "cursor", ""),
				getInt(args, "limit", 100),
			)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Kalshi events", resp)
		},
	)

	s.AddTool(
		mcp.NewTool("kalshi_comparable_markets",
			mcp.WithDescription("Fetch open Kalshi markets and normalize them into comparable markets: probabilities in [0,1], keyword fingerprint, team names, coarse category, and vig."),
			mcp.WithString("series_ticker", mcp.Description("Series ticker to narrow the fetch. Optional.")),
			mcp.WithString("category", mcp.Description("Keep only one category: sports, politics, crypto, business, other")),
			mcp.WithString("keywords", mcp.Description("Relevance filter; title matches rank higher than subtitle matches")),
			mcp.WithNumber("min_volume", mcp.Description("Drop markets below this volume. Default: 0")),
			mcp.WithBoolean("include_resolved", mcp.Description("Include closed/settled markets. Default: false")),
			mcp.WithNumber("limit", mcp.Description("Max markets returned. Default: 20")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			listings, err := d.Kalshi.FetchListings(ctx, getStr(args, "series_ticker", ""))
			if err != nil {
				return upstreamErr(err)
			}
			markets := d.Assembler.Assemble(listings, assembleOptsFromArgs(args))
			return comparableResult(model.PlatformKalshi, markets)
		},
	)
}
