package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"OddsLens/internal/adapter"
	"OddsLens/internal/config"
	"OddsLens/internal/interfaces"
	"OddsLens/internal/model"
	"OddsLens/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// defaultYesCents 上游缺失价格时的兜底美分价。
// 注意这会把"无数据"当作五成概率上报，与来源系统行为保持一致，不要悄悄修掉
const defaultYesCents = 50

// maxPages 游标翻页上限，防止上游游标异常时打满配额
const maxPages = 5

func init() {
	adapter.Register(model.PlatformKalshi, NewKalshiAdapter)
}

// Adapter Kalshi 适配器：美分报价的二元预测市场
type Adapter struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewKalshiAdapter 创建 Kalshi 适配器
func NewKalshiAdapter(cfg *config.PlatformConfig, logger *logrus.Logger) interfaces.PlatformAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (k *Adapter) GetType() model.PlatformType {
	return model.PlatformKalshi
}

// FetchListings 拉取事件（嵌套 markets）并摊平为统一 Listing。
// query 为系列 ticker（如 KXNBA），为空时用配置默认值或全量
func (k *Adapter) FetchListings(ctx context.Context, query string) ([]model.Listing, error) {
	series := query
	if series == "" {
		series = k.cfg.SeriesTicker
	}

	var listings []model.Listing
	cursor := ""
	for page := 0; page < maxPages; page++ {
		resp, err := k.RawEvents(ctx, series, "open", cursor, 200)
		if err != nil {
			return nil, err
		}
		listings = append(listings, ConvertEvents(resp.Events)...)
		if resp.Cursor == "" || len(resp.Events) == 0 {
			break
		}
		cursor = resp.Cursor
	}

	k.logger.WithFields(logrus.Fields{
		"platform": "kalshi",
		"listings": len(listings),
	}).Info("Kalshi 抓取完成")
	return listings, nil
}

// RawEvents 单页 GET /events?with_nested_markets=true，
// 原始数据工具与摊平路径共用
func (k *Adapter) RawEvents(ctx context.Context, series, status, cursor string, limit int) (*model.KalshiEventsResponse, error) {
	u, err := url.Parse(fmt.Sprintf("%s/events", strings.TrimSuffix(k.cfg.BaseURL, "/")))
	if err != nil {
		return nil, fmt.Errorf("拼接Kalshi地址失败: %w", err)
	}
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	q := url.Values{}
	q.Set("with_nested_markets", "true")
	q.Set("limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", status)
	}
	if series != "" {
		q.Set("series_ticker", series)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	// 配了 API 凭证时附加签名头（公开行情也允许匿名访问）
	if k.cfg.AuthKey != "" && k.cfg.AuthSecret != "" {
		ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
		sig, err := SignRequest(k.cfg.AuthSecret, ts, http.MethodGet, u.Path)
		if err != nil {
			return nil, fmt.Errorf("Kalshi请求签名失败: %w", err)
		}
		req.Header.Set("KALSHI-ACCESS-KEY", k.cfg.AuthKey)
		req.Header.Set("KALSHI-ACCESS-TIMESTAMP", ts)
		req.Header.Set("KALSHI-ACCESS-SIGNATURE", sig)
	}

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取Kalshi事件失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Kalshi接口返回%d: %s", resp.StatusCode, string(body))
	}

	var out model.KalshiEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("解析Kalshi事件失败: %w", err)
	}
	return &out, nil
}

// ConvertEvents 事件（含嵌套 markets）摊平为 Listing。
// 每个 market 出一条 YES 侧记录，同事件多 market 由装配器合并为多选项市场
func ConvertEvents(events []model.KalshiEventApi) []model.Listing {
	var listings []model.Listing
	for _, e := range events {
		for _, m := range e.Markets {
			listings = append(listings, model.Listing{
				Platform:       model.PlatformKalshi,
				EventID:        e.EventTicker,
				Ticker:         m.Ticker,
				Title:          e.Title,
				SubTitle:       subtitleOf(e, m),
				OutcomeName:    outcomeOf(e, m),
				RawPrice:       yesCents(m),
				Representation: model.ReprCents,
				Category:       e.Category,
				Status:         m.Status,
				CloseTime:      m.CloseTime,
				Volume:         m.Volume,
				Liquidity:      m.Liquidity,
			})
		}
	}
	return listings
}

// yesCents YES 侧美分价：优先最新成交价，其次卖一价，都缺失则兜底 50
func yesCents(m model.KalshiMarketApi) float64 {
	if m.LastPrice > 0 {
		return m.LastPrice
	}
	if m.YesAsk > 0 {
		return m.YesAsk
	}
	return defaultYesCents
}

func subtitleOf(e model.KalshiEventApi, m model.KalshiMarketApi) string {
	if m.Subtitle != "" {
		return m.Subtitle
	}
	return e.SubTitle
}

// outcomeOf 多选项事件里用 market 自己的标题区分选项，单选项即 Yes
func outcomeOf(e model.KalshiEventApi, m model.KalshiMarketApi) string {
	if len(e.Markets) > 1 {
		if m.YesSubTitle != "" {
			return m.YesSubTitle
		}
		if m.Title != "" {
			return m.Title
		}
	}
	return "Yes"
}
