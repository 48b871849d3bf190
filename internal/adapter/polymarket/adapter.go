package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"OddsLens/internal/adapter"
	"OddsLens/internal/config"
	"OddsLens/internal/interfaces"
	"OddsLens/internal/model"
	"OddsLens/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

func init() {
	adapter.Register(model.PlatformPolymarket, NewPolymarketAdapter)
}

// Adapter Polymarket 适配器：Gamma API，价格本身就是 0–1 概率
type Adapter struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewPolymarketAdapter 创建 Polymarket 适配器
func NewPolymarketAdapter(cfg *config.PlatformConfig, logger *logrus.Logger) interfaces.PlatformAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (p *Adapter) GetType() model.PlatformType {
	return model.PlatformPolymarket
}

// FetchListings 拉取 Gamma /events 并摊平。query 为平台 tag/slug 过滤，可空
func (p *Adapter) FetchListings(ctx context.Context, query string) ([]model.Listing, error) {
	events, err := p.RawEvents(ctx, query, 100, false)
	if err != nil {
		return nil, err
	}

	listings := ConvertEvents(events)
	p.logger.WithFields(logrus.Fields{
		"platform": "polymarket",
		"events":   len(events),
		"listings": len(listings),
	}).Info("Polymarket 抓取完成")
	return listings, nil
}

// RawEvents 单页 GET /events，原始数据工具与摊平路径共用
func (p *Adapter) RawEvents(ctx context.Context, tagSlug string, limit int, includeClosed bool) ([]model.PolymarketEvent, error) {
	u, err := url.Parse(fmt.Sprintf("%s/events", strings.TrimSuffix(p.cfg.BaseURL, "/")))
	if err != nil {
		return nil, fmt.Errorf("拼接Gamma地址失败: %w", err)
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	q := url.Values{}
	if !includeClosed {
		q.Set("closed", "false")
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", "volume")
	q.Set("ascending", "false")
	if tagSlug != "" {
		q.Set("tag_slug", tagSlug)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取Polymarket事件失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Gamma接口返回%d: %s", resp.StatusCode, string(body))
	}

	var events []model.PolymarketEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("解析Polymarket事件失败: %w", err)
	}
	return events, nil
}

// ConvertEvents 事件摊平为 Listing，每个选项一条。
// 多盘口事件按盘口分组，单盘口事件按事件分组
func ConvertEvents(events []model.PolymarketEvent) []model.Listing {
	var listings []model.Listing
	for _, e := range events {
		for _, m := range e.Markets {
			names, prices, err := decodeOutcomePairs(m.Outcomes, m.OutcomePrices)
			if err != nil {
				// 单个盘口解码失败只跳过，不让整批失败
				continue
			}
			eventID := e.ID
			subTitle := e.Description
			if len(e.Markets) > 1 {
				eventID = m.ID
				subTitle = m.Question
			}
			status := "open"
			if m.Closed || e.Closed {
				status = "closed"
			}
			for i, name := range names {
				listings = append(listings, model.Listing{
					Platform:       model.PlatformPolymarket,
					EventID:        eventID,
					Ticker:         m.ID,
					Title:          e.Title,
					SubTitle:       subTitle,
					OutcomeName:    name,
					RawPrice:       prices[i],
					Representation: model.ReprProbability,
					Category:       e.Category,
					Status:         status,
					CloseTime:      m.EndDate,
					Volume:         m.Volume,
					Liquidity:      m.Liquidity,
				})
			}
		}
	}
	return listings
}

// decodeOutcomePairs Gamma 的 outcomes/outcomePrices 是伪 JSON 数组字符串
// （如 "[\"Yes\",\"No\"]" / "[\"0.6\",\"0.4\"]"），需要二次解码并对齐长度
func decodeOutcomePairs(outcomes, outcomePrices string) ([]string, []float64, error) {
	var names []string
	if err := json.Unmarshal([]byte(outcomes), &names); err != nil {
		return nil, nil, fmt.Errorf("解析outcomes失败: %w", err)
	}
	var priceStrs []string
	if err := json.Unmarshal([]byte(outcomePrices), &priceStrs); err != nil {
		return nil, nil, fmt.Errorf("解析outcomePrices失败: %w", err)
	}
	if len(names) != len(priceStrs) || len(names) == 0 {
		return nil, nil, fmt.Errorf("outcomes与outcomePrices长度不一致: %d vs %d", len(names), len(priceStrs))
	}
	prices := make([]float64, len(priceStrs))
	for i, s := range priceStrs {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// 单价解析失败按 0.5 兜底，宁可近似也不整体报错
			v = 0.5
		}
		prices[i] = v
	}
	return names, prices, nil
}
