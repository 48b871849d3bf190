package mcpserver

import (
	"context"
	"strconv"

	"OddsLens/internal/model"
	"OddsLens/internal/prob"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerBinanceTools 加密交易所工具组：原始数据透传 + 轻量派生指标
func (d *Deps) registerBinanceTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("binance_get_klines",
			mcp.WithDescription("Get candlestick (kline) data for a spot symbol, with the latest close's z-score against the requested window appended."),
			mcp.WithString("symbol", mcp.Required(), mcp.Description("Trading pair symbol (e.g. BTCUSDT)")),
			mcp.WithString("interval", mcp.Description("Kline interval: 1m, 5m, 15m, 1h, 4h, 1d. Default: 1h")),
			mcp.WithNumber("limit", mcp.Description("Number of klines (1-500). Default: 100")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			symbol, ok := requireStr(args, "symbol")
			if !ok {
				return missingArg("symbol")
			}
			klines, err := d.Binance.Klines(ctx, symbol,
				getStr(args, "interval", "1h"),
				getInt(args, "limit", 100),
			)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Klines", klineStats(symbol, klines))
		},
	)

	s.AddTool(
		mcp.NewTool("binance_get_orderbook",
			mcp.WithDescription("Get the order book for a spot symbol, with best bid/ask, mid price and absolute/relative spread computed."),
			mcp.WithString("symbol", mcp.Required(), mcp.Description("Trading pair symbol (e.g. BTCUSDT)")),
			mcp.WithNumber("limit", mcp.Description("Depth levels per side (5-1000). Default: 50")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			symbol, ok := requireStr(args, "symbol")
			if !ok {
				return missingArg("symbol")
			}
			depth, err := d.Binance.Depth(ctx, symbol, getInt(args, "limit", 50))
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Order book", depthStats(symbol, depth))
		},
	)

	s.AddTool(
		mcp.NewTool("binance_get_ticker",
			mcp.WithDescription("Get 24h rolling ticker statistics for a spot symbol."),
			mcp.WithString("symbol", mcp.Required(), mcp.Description("Trading pair symbol (e.g. BTCUSDT)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			symbol, ok := requireStr(req.Params.Arguments, "symbol")
			if !ok {
				return missingArg("symbol")
			}
			ticker, err := d.Binance.Ticker24h(ctx, symbol)
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("24h ticker", ticker)
		},
	)

	s.AddTool(
		mcp.NewTool("binance_get_trades",
			mcp.WithDescription("Get recent trades for a spot symbol."),
			mcp.WithString("symbol", mcp.Required(), mcp.Description("Trading pair symbol (e.g. BTCUSDT)")),
			mcp.WithNumber("limit", mcp.Description("Number of trades (1-1000). Default: 100")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			symbol, ok := requireStr(args, "symbol")
			if !ok {
				return missingArg("symbol")
			}
			trades, err := d.Binance.Trades(ctx, symbol, getInt(args, "limit", 100))
			if err != nil {
				return upstreamErr(err)
			}
			return jsonResult("Recent trades", trades)
		},
	)
}

type klineSummary struct {
	Symbol      string               `json:"symbol"`
	Klines      []model.BinanceKline `json:"klines"`
	LastClose   float64              `json:"last_close"`
	WindowMean  float64              `json:"window_mean"`
	WindowStdev float64              `json:"window_stdev"`
	ZScore      float64              `json:"z_score"`
}

// klineStats 最新收盘价相对窗口均值的 z-score
func klineStats(symbol string, klines []model.BinanceKline) klineSummary {
	sum := klineSummary{Symbol: symbol, Klines: klines}
	if len(klines) == 0 {
		return sum
	}
	closes := make([]float64, len(klines))
	for i, k := range klines {
		closes[i] = k.Close
	}
	sum.LastClose = closes[len(closes)-1]
	sum.WindowMean, sum.WindowStdev = prob.MeanStddev(closes)
	sum.ZScore = prob.ZScore(sum.LastClose, sum.WindowMean, sum.WindowStdev)
	return sum
}

type depthSummary struct {
	Symbol    string              `json:"symbol"`
	BestBid   float64             `json:"best_bid"`
	BestAsk   float64             `json:"best_ask"`
	Mid       float64             `json:"mid"`
	Spread    float64             `json:"spread"`
	SpreadPct float64             `json:"spread_pct"`
	Book      *model.BinanceDepth `json:"book"`
}

// depthStats 买一/卖一、中间价与价差
func depthStats(symbol string, depth *model.BinanceDepth) depthSummary {
	sum := depthSummary{Symbol: symbol, Book: depth}
	if len(depth.Bids) > 0 && len(depth.Bids[0]) > 0 {
		sum.BestBid, _ = strconv.ParseFloat(depth.Bids[0][0], 64)
	}
	if len(depth.Asks) > 0 && len(depth.Asks[0]) > 0 {
		sum.BestAsk, _ = strconv.ParseFloat(depth.Asks[0][0], 64)
	}
	if sum.BestBid > 0 && sum.BestAsk > 0 {
		sum.Mid = prob.Mid(sum.BestBid, sum.BestAsk)
		sum.Spread = prob.Spread(sum.BestBid, sum.BestAsk)
		sum.SpreadPct = sum.Spread / sum.Mid * 100
	}
	return sum
}
