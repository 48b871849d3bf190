package mcpserver

import (
	"context"

	"OddsLens/internal/model"
	"OddsLens/internal/prob"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerOddsTools 体育博彩赔率聚合商工具组
func (d *Deps) registerOddsTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("odds_get_sports",
			mcp.WithDescription("List available sports on the odds aggregator, with keys usable in odds_get_odds."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			sports, err := d.Odds.FetchSports(ctx)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Available sports", sports)
		},
	)

	s.AddTool(
		mcp.NewTool("odds_get_odds",
			mcp.WithDescription("Get bookmaker odds for a sport in decimal format; implied probability = 1 / decimal odds. Each event carries per-bookmaker prices and a computed per-bookmaker vig."),
			mcp.WithString("sport", mcp.Required(), mcp.Description("Sport key from odds_get_sports (e.g. basketball_nba)")),
			mcp.WithString("regions", mcp.Description("Bookmaker regions: us, uk, eu, au. Default: us")),
			mcp.WithString("markets", mcp.Description("Market types: h2h, spreads, totals. Default: h2h")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			sport, ok := requireStr(args, "sport")
			if !ok {
				return missingArg("sport")
			}
			events, err := d.Odds.FetchOdds(ctx, sport,
				getStr(args, "regions", "us"),
				getStr(args, "markets", "h2h"),
			)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Bookmaker odds", annotateVig(events))
		},
	)

	s.AddTool(
		mcp.NewTool("odds_comparable_markets",
			mcp.WithDescription("Fetch aggregated bookmaker odds for a sport and normalize consensus prices into comparable markets with probabilities in [0,1], keywords, teams and vig."),
			mcp.WithString("sport", mcp.Required(), mcp.Description("Sport key from odds_get_sports (e.g. basketball_nba)")),
			mcp.WithString("keywords", mcp.Description("Relevance filter; title matches rank higher than subtitle matches")),
			mcp.WithBoolean("include_resolved", mcp.Description("Include completed events. Default: false")),
			mcp.WithNumber("limit", mcp.Description("Max markets returned. Default: 20")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			sport, ok := requireStr(args, "sport")
			if !ok {
				return missingArg("sport")
			}
			listings, err := d.Odds.FetchListings(ctx, sport)
			if err != nil {
				return upstreamErr(err)
			}
			markets := d.Assembler.Assemble(listings, assembleOptsFromArgs(args))
			return comparableResult(model.PlatformOddsAPI, markets)
		},
	)
}

// bookmakerVig 单博彩商 h2h 盘口的隐含概率之和超出部分
type bookmakerVig struct {
	Bookmaker string  `json:"bookmaker"`
	Vig       float64 `json:"vig"`
}

type annotatedOddsEvent struct {
	model.OddsAPIEvent
	Vigs []bookmakerVig `json:"vigs,omitempty"`
}

// annotateVig 给每个赛事补上各博彩商的 vig（只算 h2h 盘口）
func annotateVig(events []model.OddsAPIEvent) []annotatedOddsEvent {
	out := make([]annotatedOddsEvent, 0, len(events))
	for _, e := range events {
		a := annotatedOddsEvent{OddsAPIEvent: e}
		for _, b := range e.Bookmakers {
			for _, m := range b.Markets {
				if m.Key != "h2h" || len(m.Outcomes) == 0 {
					continue
				}
				probs := make([]float64, 0, len(m.Outcomes))
				for _, o := range m.Outcomes {
					if o.Price > 0 {
						probs = append(probs, prob.Normalize(o.Price, model.ReprDecimalOdds))
					}
				}
				if len(probs) > 0 {
					a.Vigs = append(a.Vigs, bookmakerVig{Bookmaker: b.Key, Vig: prob.Vig(probs...)})
				}
			}
		}
		out = append(out, a)
	}
	return out
}
