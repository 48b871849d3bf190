package mcpserver

import (
	"OddsLens/internal/adapter"
	"OddsLens/internal/adapter/binance"
	"OddsLens/internal/adapter/deribit"
	"OddsLens/internal/adapter/kalshi"
	"OddsLens/internal/adapter/oddsapi"
	"OddsLens/internal/adapter/polymarket"
	"OddsLens/internal/config"
	"OddsLens/internal/model"
	"OddsLens/internal/service"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// Deps MCP 工具层依赖集合。可比市场工具走适配器注册表，
// 原始数据工具用各自的具体客户端；未配置的平台对应字段为 nil，
// 工具也不会注册
type Deps struct {
	Cfg       *config.Config
	Logger    *logrus.Logger
	Registry  *adapter.PlatformRegistry
	Assembler *service.Assembler
	Matcher   *service.Matcher
	Kalshi    *kalshi.Adapter
	Poly      *polymarket.Adapter
	Odds      *oddsapi.Adapter
	Binance   *binance.Client
	Deribit   *deribit.Client
}

// New 组装 MCP server：静态声明全部工具目录并绑定处理函数。
// 工具按来源前缀分组（kalshi_ / polymarket_ / odds_ / binance_ /
// deribit_ / compare_），一个进程承载整个家族
func New(d *Deps) *server.MCPServer {
	name := d.Cfg.Server.Name
	if name == "" {
		name = "oddslens"
	}
	version := d.Cfg.Server.Version
	if version == "" {
		version = "0.1.0"
	}

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	if d.Kalshi != nil {
		d.registerKalshiTools(s)
	}
	if d.Poly != nil {
		d.registerPolymarketTools(s)
	}
	if d.Odds != nil {
		d.registerOddsTools(s)
	}
	if d.Binance != nil {
		d.registerBinanceTools(s)
	}
	if d.Deribit != nil {
		d.registerDeribitTools(s)
	}
	d.registerCompareTools(s)

	return s
}

// comparablePlatforms 当前可参与跨平台比价的平台列表
func (d *Deps) comparablePlatforms() []model.PlatformType {
	return d.Registry.ListRegisteredPlatforms()
}
