package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"OddsLens/internal/adapter"
	"OddsLens/internal/config"
	"OddsLens/internal/interfaces"
	"OddsLens/internal/model"
	"OddsLens/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

func init() {
	adapter.Register(model.PlatformOddsAPI, NewOddsAPIAdapter)
}

// Adapter 体育博彩赔率聚合商适配器：欧洲赔率（decimal odds）
type Adapter struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewOddsAPIAdapter 创建赔率聚合商适配器
func NewOddsAPIAdapter(cfg *config.PlatformConfig, logger *logrus.Logger) interfaces.PlatformAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (o *Adapter) GetType() model.PlatformType {
	return model.PlatformOddsAPI
}

// FetchListings 拉取指定运动的 h2h 盘口并摊平。query 为 sport key，
// 为空时用配置默认值
func (o *Adapter) FetchListings(ctx context.Context, query string) ([]model.Listing, error) {
	sport := query
	if sport == "" {
		sport = o.cfg.SportKey
	}
	if sport == "" {
		return nil, fmt.Errorf("缺少 sport key（配置 sport_key 或在参数中传入）")
	}

	events, err := o.FetchOdds(ctx, sport, o.cfg.Regions, "h2h")
	if err != nil {
		return nil, err
	}

	listings := ConvertEvents(events)
	o.logger.WithFields(logrus.Fields{
		"platform": "oddsapi",
		"sport":    sport,
		"listings": len(listings),
	}).Info("赔率聚合商抓取完成")
	return listings, nil
}

// FetchSports GET /sports 运动项目列表（原始数据工具直接透传）
func (o *Adapter) FetchSports(ctx context.Context) ([]model.OddsAPISport, error) {
	var sports []model.OddsAPISport
	if err := o.doGet(ctx, "/sports", url.Values{}, &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

// FetchOdds GET /sports/{sport}/odds 各博彩商报价
func (o *Adapter) FetchOdds(ctx context.Context, sport, regions, markets string) ([]model.OddsAPIEvent, error) {
	if regions == "" {
		regions = "us"
	}
	if markets == "" {
		markets = "h2h"
	}
	q := url.Values{}
	q.Set("regions", regions)
	q.Set("markets", markets)
	q.Set("oddsFormat", "decimal")

	var events []model.OddsAPIEvent
	if err := o.doGet(ctx, fmt.Sprintf("/sports/%s/odds", url.PathEscape(sport)), q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (o *Adapter) doGet(ctx context.Context, path string, q url.Values, out interface{}) error {
	u, err := url.Parse(strings.TrimSuffix(o.cfg.BaseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("拼接赔率聚合商地址失败: %w", err)
	}
	if o.cfg.AuthToken != "" {
		q.Set("apiKey", o.cfg.AuthToken)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求赔率聚合商失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("赔率聚合商接口返回%d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析赔率聚合商响应失败: %w", err)
	}
	return nil
}

// ConvertEvents 赛事摊平为 Listing：同一选项取各博彩商欧赔均值作为共识价，
// 每个选项一条，按赛事 ID 分组
func ConvertEvents(events []model.OddsAPIEvent) []model.Listing {
	var listings []model.Listing
	for _, e := range events {
		prices := consensusPrices(e)
		if len(prices.names) == 0 {
			continue
		}
		title := fmt.Sprintf("%s vs %s", e.HomeTeam, e.AwayTeam)
		status := "open"
		if e.Completed {
			status = "closed"
		}
		for i, name := range prices.names {
			listings = append(listings, model.Listing{
				Platform:       model.PlatformOddsAPI,
				EventID:        e.ID,
				Ticker:         e.ID,
				Title:          title,
				SubTitle:       e.SportTitle,
				OutcomeName:    name,
				RawPrice:       prices.avg[i],
				Representation: model.ReprDecimalOdds,
				Category:       "sports",
				Status:         status,
				CloseTime:      e.CommenceTime,
			})
		}
	}
	return listings
}

type consensus struct {
	names []string
	avg   []float64
}

// consensusPrices 汇总 h2h 盘口各博彩商对同名选项的报价均值
func consensusPrices(e model.OddsAPIEvent) consensus {
	var names []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, b := range e.Bookmakers {
		for _, m := range b.Markets {
			if m.Key != "h2h" {
				continue
			}
			for _, out := range m.Outcomes {
				if out.Price <= 0 {
					continue
				}
				if _, ok := sums[out.Name]; !ok {
					names = append(names, out.Name)
				}
				sums[out.Name] += out.Price
				counts[out.Name]++
			}
		}
	}
	c := consensus{names: names, avg: make([]float64, len(names))}
	for i, name := range names {
		c.avg[i] = sums[name] / float64(counts[name])
	}
	return c
}
