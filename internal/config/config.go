package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`    // 服务器配置
	Session   SessionConfig             `mapstructure:"session"`   // 会话注册表配置
	Platforms map[string]PlatformConfig `mapstructure:"platforms"` // 多平台独立配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int    `mapstructure:"port"`     // REST 服务端口
	MCPPort int    `mapstructure:"mcp_port"` // MCP SSE 服务端口
	Mode    string `mapstructure:"mode"`     // Gin运行模式：debug/release/test
	Name    string `mapstructure:"name"`     // MCP server 名称
	Version string `mapstructure:"version"`  // MCP server 版本号
}

// SessionConfig 会话注册表配置（显式生命周期：创建/查找/逐出）
type SessionConfig struct {
	IdleTimeoutSecs int `mapstructure:"idle_timeout_secs"` // 空闲多久逐出
	GCIntervalSecs  int `mapstructure:"gc_interval_secs"`  // 巡检间隔
}

// PlatformConfig 单个平台的独立配置
type PlatformConfig struct {
	BaseURL      string `mapstructure:"base_url"`      // API基础地址
	Timeout      int    `mapstructure:"timeout"`       // 请求超时（秒）
	Proxy        string `mapstructure:"proxy"`         // 代理地址
	AuthToken    string `mapstructure:"auth_token"`    // 通用认证Token（赔率聚合商 apiKey 等）
	AuthKey      string `mapstructure:"auth_key"`      // Kalshi专属API Key ID
	AuthSecret   string `mapstructure:"auth_secret"`   // Kalshi专属RSA私钥（PEM）
	SeriesTicker string `mapstructure:"series_ticker"` // Kalshi 默认系列 ticker，可空
	SportKey     string `mapstructure:"sport_key"`     // 赔率聚合商默认运动项目
	Regions      string `mapstructure:"regions"`       // 赔率聚合商地区参数（us/uk/eu）
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if k, ok := cfg.Platforms["kalshi"]; ok {
		if v := os.Getenv("KALSHI_AUTH_KEY"); v != "" {
			k.AuthKey = v
		}
		if v := os.Getenv("KALSHI_AUTH_SECRET"); v != "" {
			k.AuthSecret = v
		}
		if v := os.Getenv("KALSHI_PROXY"); v != "" {
			k.Proxy = v
		}
		cfg.Platforms["kalshi"] = k
	}
	if o, ok := cfg.Platforms["oddsapi"]; ok {
		if v := os.Getenv("ODDS_API_KEY"); v != "" {
			o.AuthToken = v
		}
		cfg.Platforms["oddsapi"] = o
	}
}
