package adapter

import (
	"fmt"

	"OddsLens/internal/config"
	"OddsLens/internal/interfaces"
	"OddsLens/internal/model"

	"github.com/sirupsen/logrus"
)

// PlatformRegistry 平台类型→适配器实例的进程级注册表
type PlatformRegistry struct {
	cfg      *config.Config
	logger   *logrus.Logger
	adapters map[model.PlatformType]interfaces.PlatformAdapter
}

// NewPlatformRegistry 按配置中的平台块实例化各适配器
func NewPlatformRegistry(cfg *config.Config, logger *logrus.Logger) *PlatformRegistry {
	r := &PlatformRegistry{
		cfg:      cfg,
		logger:   logger,
		adapters: make(map[model.PlatformType]interfaces.PlatformAdapter),
	}

	for platformStr, platformCfg := range cfg.Platforms {
		platformType := model.PlatformType(platformStr)

		factory, ok := GetFactory(platformType)
		if !ok {
			// Binance/Deribit 等纯原始数据源没有可比市场适配器，属正常情况
			r.logger.WithField("platform", platformType).Debug("该平台未注册可比市场适配器，跳过")
			continue
		}

		cfgCopy := platformCfg
		adapterIns := factory(&cfgCopy, logger)
		if adapterIns == nil {
			r.logger.WithField("platform", platformType).Error("工厂函数返回nil适配器实例")
			continue
		}
		if adapterIns.GetType() != platformType {
			r.logger.WithFields(logrus.Fields{
				"config_platform":  platformType,
				"adapter_platform": adapterIns.GetType(),
			}).Error("适配器平台类型与配置不匹配")
			continue
		}

		r.adapters[platformType] = adapterIns
		r.logger.WithField("platform", platformType).Info("适配器实例初始化成功")
	}

	return r
}

// GetAdapter 获取适配器实例
func (r *PlatformRegistry) GetAdapter(platform model.PlatformType) (interfaces.PlatformAdapter, error) {
	adapterIns, ok := r.adapters[platform]
	if !ok {
		var registered []string
		for p := range r.adapters {
			registered = append(registered, string(p))
		}
		return nil, fmt.Errorf("平台%s未初始化适配器实例（已初始化：%v）", platform, registered)
	}
	return adapterIns, nil
}

// ListRegisteredPlatforms 获取所有已初始化的平台类型列表
func (r *PlatformRegistry) ListRegisteredPlatforms() []model.PlatformType {
	var platforms []model.PlatformType
	for p := range r.adapters {
		platforms = append(platforms, p)
	}
	return platforms
}
