package interfaces

import (
	"context"

	"OddsLens/internal/config"
	"OddsLens/internal/model"

	"github.com/sirupsen/logrus"
)

// PlatformAdapter 所有可比市场来源平台必须实现的核心接口。
// 加密交易所与衍生品分析源没有概率语义，不实现本接口，
// 只作为原始数据工具的客户端存在
type PlatformAdapter interface {
	GetType() model.PlatformType
	// FetchListings 实时抓取平台在售条目并摊平为统一 Listing，
	// query 为平台原生的范围参数（series ticker、sport key 等），可为空
	FetchListings(ctx context.Context, query string) ([]model.Listing, error)
}

// Factory 平台适配器工厂函数签名
// 入参：平台配置、日志实例；出参：实现PlatformAdapter接口的适配器实例
type Factory func(cfg *config.PlatformConfig, logger *logrus.Logger) PlatformAdapter
