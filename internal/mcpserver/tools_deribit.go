package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerDeribitTools 衍生品分析工具组（公共行情，无需鉴权）
func (d *Deps) registerDeribitTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("deribit_get_instruments",
			mcp.WithDescription("List active derivative instruments for a currency, optionally filtered by kind."),
			mcp.WithString("currency", mcp.Required(), mcp.Description("Underlying currency: BTC, ETH, SOL")),
			mcp.WithString("kind", mcp.Description("Instrument kind: option, future, spot. Default: all kinds")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			currency, ok := requireStr(args, "currency")
			if !ok {
				return missingArg("currency")
			}
			instruments, err := d.Deribit.Instruments(ctx, currency, getStr(args, "kind", ""))
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Instruments", instruments)
		},
	)

	s.AddTool(
		mcp.NewTool("deribit_get_ticker",
			mcp.WithDescription("Get the live ticker for one instrument. For options this includes mark IV and greeks (delta, gamma, vega, theta)."),
			mcp.WithString("instrument_name", mcp.Required(), mcp.Description("Full instrument name (e.g. BTC-27MAR26-100000-C)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			instrument, ok := requireStr(req.Params.Arguments, "instrument_name")
			if !ok {
				return missingArg("instrument_name")
			}
			ticker, err := d.Deribit.Ticker(ctx, instrument)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Ticker", ticker)
		},
	)

	s.AddTool(
		mcp.NewTool("deribit_book_summary",
			mcp.WithDescription("Get a book summary (bid/ask, volume, open interest) for all instruments of a currency, optionally filtered by kind."),
			mcp.WithString("currency", mcp.Required(), mcp.Description("Underlying currency: BTC, ETH, SOL")),
			mcp.WithString("kind", mcp.Description("Instrument kind: option, future. Default: all kinds")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			currency, ok := requireStr(args, "currency")
			if !ok {
				return missingArg("currency")
			}
			summaries, err := d.Deribit.BookSummary(ctx, currency, getStr(args, "kind", ""))
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Book summary", summaries)
		},
	)
}
