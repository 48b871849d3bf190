package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"OddsLens/internal/adapter"
	"OddsLens/internal/adapter/binance"
	"OddsLens/internal/adapter/deribit"
	"OddsLens/internal/adapter/kalshi"
	"OddsLens/internal/adapter/oddsapi"
	"OddsLens/internal/adapter/polymarket"
	"OddsLens/internal/api"
	"OddsLens/internal/config"
	"OddsLens/internal/mcpserver"
	"OddsLens/internal/model"
	"OddsLens/internal/service"
	"OddsLens/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func main() {
	transport := flag.String("transport", "sse", "MCP传输方式：sse 或 stdio")
	flag.Parse()

	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.Info("配置文件加载成功")

	// 3. 初始化平台适配器注册表（可比市场平台）
	registry := adapter.NewPlatformRegistry(cfg, logrusLogger)

	// 4. 组装服务层
	assembler := service.NewAssembler(logrusLogger)
	matcher := service.NewMatcher(logrusLogger)

	// 5. 会话注册表 + 空闲回收
	idleTTL := time.Duration(cfg.Session.IdleTimeoutSecs) * time.Second
	gcInterval := time.Duration(cfg.Session.GCIntervalSecs) * time.Second
	sessions := session.NewRegistry(idleTTL, logrusLogger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sessions.StartGC(ctx, gcInterval)

	// 6. MCP 依赖：可比市场平台从注册表取具体实例，
	// 纯原始数据源（binance/deribit）按配置直接构造
	deps := &mcpserver.Deps{
		Cfg:       cfg,
		Logger:    logrusLogger,
		Registry:  registry,
		Assembler: assembler,
		Matcher:   matcher,
	}
	if a, err := registry.GetAdapter(model.PlatformKalshi); err == nil {
		deps.Kalshi, _ = a.(*kalshi.Adapter)
	}
	if a, err := registry.GetAdapter(model.PlatformPolymarket); err == nil {
		deps.Poly, _ = a.(*polymarket.Adapter)
	}
	if a, err := registry.GetAdapter(model.PlatformOddsAPI); err == nil {
		deps.Odds, _ = a.(*oddsapi.Adapter)
	}
	if pc, ok := cfg.Platforms["binance"]; ok {
		pcCopy := pc
		deps.Binance = binance.NewClient(&pcCopy, logrusLogger)
	}
	if pc, ok := cfg.Platforms["deribit"]; ok {
		pcCopy := pc
		deps.Deribit = deribit.NewClient(&pcCopy, logrusLogger)
	}

	mcpServer := mcpserver.New(deps)

	// stdio 模式：不起 HTTP，进程由宿主（LLM 客户端）托管
	if *transport == "stdio" {
		if err := mcpsrv.ServeStdio(mcpServer); err != nil {
			logrusLogger.Fatalf("MCP stdio 服务退出: %v", err)
		}
		return
	}

	// 7. MCP SSE 服务（独立端口，后台启动）
	mcpPort := cfg.Server.MCPPort
	if mcpPort == 0 {
		mcpPort = 8081
	}
	sseServer := mcpsrv.NewSSEServer(mcpServer,
		mcpsrv.WithBaseURL(fmt.Sprintf("http://0.0.0.0:%d", mcpPort)),
	)
	go func() {
		logrusLogger.Infof("MCP SSE 服务启动，端口：%d", mcpPort)
		if err := sseServer.Start(fmt.Sprintf(":%d", mcpPort)); err != nil {
			logrusLogger.Fatalf("MCP SSE 服务退出: %v", err)
		}
	}()

	// 8. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.Default())

	// 注册pprof 方便调试和监测性能问题
	pprof.Register(r)
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 9. 注册API路由
	marketHandler := api.NewMarketHandler(registry, assembler, matcher, logrusLogger)
	r.GET("/api/platforms", marketHandler.ListPlatforms)
	r.GET("/api/markets", marketHandler.ListMarkets)
	r.POST("/api/compare", marketHandler.Compare)

	sessionHandler := api.NewSessionHandler(sessions, logrusLogger)
	r.POST("/api/sessions", sessionHandler.Create)
	r.GET("/api/sessions/:id", sessionHandler.Get)
	r.PUT("/api/sessions/:id", sessionHandler.Touch)
	r.DELETE("/api/sessions/:id", sessionHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"platforms": registry.ListRegisteredPlatforms(),
			"sessions":  sessions.Len(),
		})
	})

	// 10. 启动服务（从配置读取端口）
	port := cfg.Server.Port
	logrusLogger.Infof("服务启动成功，端口：%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("启动服务失败: %v", err)
	}
}
