package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"OddsLens/internal/config"
	"OddsLens/internal/model"
	"OddsLens/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Client 加密货币交易所行情客户端。没有概率语义，
// 只服务原始数据工具（K线/订单簿/成交/24h行情）与派生指标
type Client struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient 创建行情客户端
func NewClient(cfg *config.PlatformConfig, logger *logrus.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

// Klines GET /api/v3/klines。上游返回混合类型数组，这里解码为结构体
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]model.BinanceKline, error) {
	q := url.Values{}
	q.Set("symbol", strings.ToUpper(symbol))
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))

	var raw [][]interface{}
	if err := c.doGet(ctx, "/api/v3/klines", q, &raw); err != nil {
		return nil, err
	}

	klines := make([]model.BinanceKline, 0, len(raw))
	for _, row := range raw {
		if len(row) < 7 {
			continue
		}
		klines = append(klines, model.BinanceKline{
			OpenTime:  asInt64(row[0]),
			Open:      asFloat(row[1]),
			High:      asFloat(row[2]),
			Low:       asFloat(row[3]),
			Close:     asFloat(row[4]),
			Volume:    asFloat(row[5]),
			CloseTime: asInt64(row[6]),
		})
	}
	return klines, nil
}

// Depth GET /api/v3/depth 订单簿快照
func (c *Client) Depth(ctx context.Context, symbol string, limit int) (*model.BinanceDepth, error) {
	q := url.Values{}
	q.Set("symbol", strings.ToUpper(symbol))
	q.Set("limit", strconv.Itoa(limit))

	var depth model.BinanceDepth
	if err := c.doGet(ctx, "/api/v3/depth", q, &depth); err != nil {
		return nil, err
	}
	return &depth, nil
}

// Ticker24h GET /api/v3/ticker/24hr
func (c *Client) Ticker24h(ctx context.Context, symbol string) (*model.BinanceTicker24h, error) {
	q := url.Values{}
	q.Set("symbol", strings.ToUpper(symbol))

	var ticker model.BinanceTicker24h
	if err := c.doGet(ctx, "/api/v3/ticker/24hr", q, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// Trades GET /api/v3/trades 最近成交
func (c *Client) Trades(ctx context.Context, symbol string, limit int) ([]model.BinanceTrade, error) {
	q := url.Values{}
	q.Set("symbol", strings.ToUpper(symbol))
	q.Set("limit", strconv.Itoa(limit))

	var trades []model.BinanceTrade
	if err := c.doGet(ctx, "/api/v3/trades", q, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (c *Client) doGet(ctx context.Context, path string, q url.Values, out interface{}) error {
	u, err := url.Parse(strings.TrimSuffix(c.cfg.BaseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("拼接交易所地址失败: %w", err)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求交易所失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("交易所接口返回%d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析交易所响应失败: %w", err)
	}
	return nil
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	case float64:
		return t
	default:
		return 0
	}
}

func asInt64(v interface{}) int64 {
	if f, ok := v.(float64); ok {
		return int64(f)
	}
	return 0
}
