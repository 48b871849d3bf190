package mcpserver

import (
	"context"
	"fmt"

	"OddsLens/internal/model"
	"OddsLens/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerCompareTools 跨平台比价工具组。不依赖具体客户端，
// 走适配器注册表，因此无条件注册
func (d *Deps) registerCompareTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("compare_platforms",
			mcp.WithDescription("Fetch comparable markets from two platforms and pair up markets that describe the same real-world event (same category, keyword Jaccard similarity over threshold, team overlap bonus for sports). Each pair includes per-outcome probability gaps."),
			mcp.WithString("left_platform", mcp.Required(), mcp.Description("First platform: kalshi, polymarket, oddsapi")),
			mcp.WithString("right_platform", mcp.Required(), mcp.Description("Second platform: kalshi, polymarket, oddsapi")),
			mcp.WithString("left_query", mcp.Description("Platform-specific fetch hint for the left side (series ticker / tag slug / sport key)")),
			mcp.WithString("right_query", mcp.Description("Platform-specific fetch hint for the right side (series ticker / tag slug / sport key)")),
			mcp.WithString("category", mcp.Description("Keep only one category on both sides: sports, politics, crypto, business, other")),
			mcp.WithString("keywords", mcp.Description("Relevance filter applied to both sides before matching")),
			mcp.WithNumber("threshold", mcp.Description("Similarity threshold in (0,1]. Default: 0.5")),
			mcp.WithNumber("limit", mcp.Description("Max comparable markets per side before matching. Default: 20")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.Params.Arguments
			leftName, ok := requireStr(args, "left_platform")
			if !ok {
				return missingArg("left_platform")
			}
			rightName, ok := requireStr(args, "right_platform")
			if !ok {
				return missingArg("right_platform")
			}

			opts := assembleOptsFromArgs(args)
			left, err := d.fetchComparable(ctx, leftName, getStr(args, "left_query", ""), opts)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			right, err := d.fetchComparable(ctx, rightName, getStr(args, "right_query", ""), opts)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			matches := d.Matcher.Match(left, right, getFloat(args, "threshold", service.DefaultMatchThreshold))
			return hintedResult(
				fmt.Sprintf("Cross-platform matches %s vs %s (%d pairs, %d/%d candidates)",
					leftName, rightName, len(matches), len(left), len(right)),
				matches,
			)
		},
	)

	s.AddTool(
		mcp.NewTool("compare_list_platforms",
			mcp.WithDescription("List the platforms currently available for cross-platform comparison."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult("Comparable platforms", d.comparablePlatforms())
		},
	)
}

// fetchComparable 单侧：注册表取适配器 → 抓取 → 组装为可比市场
func (d *Deps) fetchComparable(ctx context.Context, platform, query string, opts service.AssembleOptions) ([]model.ComparableMarket, error) {
	adapterIns, err := d.Registry.GetAdapter(model.PlatformType(platform))
	if err != nil {
		return nil, err
	}
	listings, err := adapterIns.FetchListings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("抓取%s行情失败: %w", platform, err)
	}
	return d.Assembler.Assemble(listings, opts), nil
}
