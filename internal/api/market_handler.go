package api

import (
	"net/http"
	"strconv"

	"OddsLens/internal/adapter"
	"OddsLens/internal/model"
	"OddsLens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MarketHandler 提供给前端的可比市场查询/比价接口。
// 无持久层，每次请求实时抓取上游
type MarketHandler struct {
	registry  *adapter.PlatformRegistry
	assembler *service.Assembler
	matcher   *service.Matcher
	logger    *logrus.Logger
}

// NewMarketHandler 创建 MarketHandler
func NewMarketHandler(registry *adapter.PlatformRegistry, assembler *service.Assembler, matcher *service.Matcher, logger *logrus.Logger) *MarketHandler {
	return &MarketHandler{
		registry:  registry,
		assembler: assembler,
		matcher:   matcher,
		logger:    logger,
	}
}

// ListMarkets 单平台可比市场列表
// GET /api/markets?platform=kalshi&query=KXNBA&category=sports&keywords=nba&min_volume=100&limit=20
func (h *MarketHandler) ListMarkets(c *gin.Context) {
	platform := c.Query("platform")
	if platform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform is required"})
		return
	}

	markets, err := h.fetchComparable(c, platform, c.Query("query"), h.optsFromQuery(c))
	if err != nil {
		h.logger.WithError(err).Error("ListMarkets failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"platform": platform,
		"count":    len(markets),
		"markets":  markets,
	})
}

// ListPlatforms 可参与比价的平台列表
// GET /api/platforms
func (h *MarketHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": h.registry.ListRegisteredPlatforms()})
}

// CompareRequest 跨平台比价请求体
type CompareRequest struct {
	LeftPlatform  string  `json:"left_platform" binding:"required"`
	RightPlatform string  `json:"right_platform" binding:"required"`
	LeftQuery     string  `json:"left_query"`
	RightQuery    string  `json:"right_query"`
	Category      string  `json:"category"`
	Keywords      string  `json:"keywords"`
	Threshold     float64 `json:"threshold"`
	Limit         int     `json:"limit"`
}

// Compare 跨平台同事件撮合
// POST /api/compare
func (h *MarketHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := service.AssembleOptions{
		Category: req.Category,
		Keywords: req.Keywords,
		Limit:    req.Limit,
	}

	left, err := h.fetchComparable(c, req.LeftPlatform, req.LeftQuery, opts)
	if err != nil {
		h.logger.WithError(err).Error("Compare: 左侧抓取失败")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	right, err := h.fetchComparable(c, req.RightPlatform, req.RightQuery, opts)
	if err != nil {
		h.logger.WithError(err).Error("Compare: 右侧抓取失败")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	matches := h.matcher.Match(left, right, req.Threshold)
	c.JSON(http.StatusOK, gin.H{
		"left_platform":    req.LeftPlatform,
		"right_platform":   req.RightPlatform,
		"left_candidates":  len(left),
		"right_candidates": len(right),
		"matches":          matches,
	})
}

func (h *MarketHandler) fetchComparable(c *gin.Context, platform, query string, opts service.AssembleOptions) ([]model.ComparableMarket, error) {
	adapterIns, err := h.registry.GetAdapter(model.PlatformType(platform))
	if err != nil {
		return nil, err
	}
	listings, err := adapterIns.FetchListings(c.Request.Context(), query)
	if err != nil {
		return nil, err
	}
	return h.assembler.Assemble(listings, opts), nil
}

func (h *MarketHandler) optsFromQuery(c *gin.Context) service.AssembleOptions {
	minVolume, _ := strconv.ParseFloat(c.DefaultQuery("min_volume", "0"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	includeResolved, _ := strconv.ParseBool(c.DefaultQuery("include_resolved", "false"))
	return service.AssembleOptions{
		Category:        c.Query("category"),
		Keywords:        c.Query("keywords"),
		MinVolume:       minVolume,
		IncludeResolved: includeResolved,
		Limit:           limit,
	}
}
