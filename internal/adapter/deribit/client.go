package deribit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"OddsLens/internal/config"
	"OddsLens/internal/model"
	"OddsLens/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Client 衍生品分析客户端（公共行情接口，无需鉴权）
type Client struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient 创建衍生品分析客户端
func NewClient(cfg *config.PlatformConfig, logger *logrus.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

// Instruments GET /public/get_instruments 合约列表
func (c *Client) Instruments(ctx context.Context, currency, kind string) ([]model.DeribitInstrument, error) {
	q := url.Values{}
	q.Set("currency", strings.ToUpper(currency))
	if kind != "" {
		q.Set("kind", kind)
	}
	q.Set("expired", "false")

	var out model.DeribitInstrumentsResponse
	if err := c.doGet(ctx, "/public/get_instruments", q, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// Ticker GET /public/ticker 单合约行情（期权含 mark_iv 与希腊字母）
func (c *Client) Ticker(ctx context.Context, instrument string) (*model.DeribitTicker, error) {
	q := url.Values{}
	q.Set("instrument_name", instrument)

	var out model.DeribitTickerResponse
	if err := c.doGet(ctx, "/public/ticker", q, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

// BookSummary GET /public/get_book_summary_by_currency 盘口摘要
func (c *Client) BookSummary(ctx context.Context, currency, kind string) ([]model.DeribitBookSummary, error) {
	q := url.Values{}
	q.Set("currency", strings.ToUpper(currency))
	if kind != "" {
		q.Set("kind", kind)
	}

	var out model.DeribitBookSummaryResponse
	if err := c.doGet(ctx, "/public/get_book_summary_by_currency", q, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func (c *Client) doGet(ctx context.Context, path string, q url.Values, out interface{}) error {
	u, err := url.Parse(strings.TrimSuffix(c.cfg.BaseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("拼接衍生品分析地址失败: %w", err)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求衍生品分析接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("衍生品分析接口返回%d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析衍生品分析响应失败: %w", err)
	}
	return nil
}
