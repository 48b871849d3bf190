package mcpserver

import (
	"encoding/json"
	"fmt"

	"OddsLens/internal/model"
	"OddsLens/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
)

// ========== 参数提取（兼容 Arguments 为 any 的 mcp-go 版本） ==========

func toMap(args any) map[string]interface{} {
	if m, ok := args.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func getStr(args any, key, fallback string) string {
	if v, ok := toMap(args)[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// requireStr 必填字符串缺失时返回 false，调用方应立即报错且不发起上游请求
func requireStr(args any, key string) (string, bool) {
	v, ok := toMap(args)[key].(string)
	return v, ok && v != ""
}

func getFloat(args any, key string, fallback float64) float64 {
	if v, ok := toMap(args)[key].(float64); ok {
		return v
	}
	return fallback
}

func getInt(args any, key string, fallback int) int {
	if v, ok := toMap(args)[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func getBool(args any, key string, fallback bool) bool {
	if v, ok := toMap(args)[key].(bool); ok {
		return v
	}
	return fallback
}

// ========== 结果格式化 ==========

// jsonResult 结构化结果序列化为带标题的 JSON 文本
func jsonResult(title string, v interface{}) (*mcp.CallToolResult, error) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("序列化结果失败: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s:\n\n%s", title, string(pretty))), nil
}

// missingArg 调用方错误：必填参数缺失，不触发任何上游调用
func missingArg(key string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(fmt.Sprintf("missing required parameter: %s", key)), nil
}

// upstreamErr 上游错误：状态码/超时信息已在 err 中，原样透出
func upstreamErr(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// matchingHint 随可比市场结果附带的人类可读说明（非数据契约的一部分）
const matchingHint = `How to use this result: each market carries outcomes with a ` +
	`normalized_probability in [0,1], directly comparable across platforms. ` +
	`To decide whether two markets from different platforms describe the same ` +
	`real-world event, require the same event_category, then compare keyword ` +
	`sets — a 50%+ overlap (Jaccard) suggests the same event; for sports, ` +
	`overlapping teams is a strong signal. vig is the amount by which the ` +
	`outcome probabilities sum above 1.0 (the pricer's margin).`

// hintedResult 结构化结果 + 匹配提示
func hintedResult(title string, v interface{}) (*mcp.CallToolResult, error) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("序列化结果失败: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"%s:\n\n%s\n\n%s", title, string(pretty), matchingHint,
	)), nil
}

// comparableResult 可比市场结果 + 匹配提示
func comparableResult(platform model.PlatformType, markets []model.ComparableMarket) (*mcp.CallToolResult, error) {
	return hintedResult(
		fmt.Sprintf("Comparable markets from %s (%d)", platform, len(markets)),
		markets,
	)
}

// assembleOptsFromArgs 可比市场工具的公共过滤参数
func assembleOptsFromArgs(args any) service.AssembleOptions {
	return service.AssembleOptions{
		Category:        getStr(args, "category", ""),
		Keywords:        getStr(args, "keywords", ""),
		MinVolume:       getFloat(args, "min_volume", 0),
		IncludeResolved: getBool(args, "include_resolved", false),
		Limit:           getInt(args, "limit", 0),
	}
}
