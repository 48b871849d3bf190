package kalshi

import (
	"math"
	"testing"

	"OddsLens/internal/model"
)

func TestConvertEvents(t *testing.T) {
	events := []model.KalshiEventApi{
		{
			EventTicker: "KXNBA-FINALS",
			Title:       "NBA Finals winner",
			SubTitle:    "2026 season",
			Category:    "Sports",
			Markets: []model.KalshiMarketApi{
				{
					Ticker:      "KXNBA-FINALS-LAL",
					YesSubTitle: "Lakers",
					LastPrice:   48,
					Status:      "open",
					Volume:      1200,
				},
				{
					Ticker:      "KXNBA-FINALS-BOS",
					YesSubTitle: "Celtics",
					LastPrice:   55,
					Status:      "open",
					Volume:      900,
				},
			},
		},
	}

	listings := ConvertEvents(events)
	if len(listings) != 2 {
		t.Fatalf("期望 2 条 listing，得到 %d", len(listings))
	}

	l := listings[0]
	if l.Platform != model.PlatformKalshi {
		t.Errorf("Platform = %s", l.Platform)
	}
	if l.EventID != "KXNBA-FINALS" || l.Ticker != "KXNBA-FINALS-LAL" {
		t.Errorf("分组键错误: %s/%s", l.EventID, l.Ticker)
	}
	if l.Representation != model.ReprCents {
		t.Errorf("Representation = %s, want cents", l.Representation)
	}
	if l.RawPrice != 48 {
		t.Errorf("RawPrice = %v, want 48", l.RawPrice)
	}
	// 多 market 事件用 YesSubTitle 区分选项
	if l.OutcomeName != "Lakers" || listings[1].OutcomeName != "Celtics" {
		t.Errorf("OutcomeName = %s/%s", l.OutcomeName, listings[1].OutcomeName)
	}
}

func TestConvertEventsSingleMarket(t *testing.T) {
	events := []model.KalshiEventApi{
		{
			EventTicker: "KXBTC-100K",
			Title:       "Bitcoin above 100k by March?",
			Markets: []model.KalshiMarketApi{
				{Ticker: "KXBTC-100K-T1", YesSubTitle: "ignored", LastPrice: 62, Status: "open"},
			},
		},
	}

	listings := ConvertEvents(events)
	if len(listings) != 1 {
		t.Fatalf("期望 1 条 listing，得到 %d", len(listings))
	}
	// 单 market 事件选项名固定为 Yes
	if listings[0].OutcomeName != "Yes" {
		t.Errorf("OutcomeName = %s, want Yes", listings[0].OutcomeName)
	}
}

// 价格兜底链：LastPrice → YesAsk → 50
func TestYesCents(t *testing.T) {
	tests := []struct {
		name   string
		market model.KalshiMarketApi
		want   float64
	}{
		{"有最新成交价", model.KalshiMarketApi{LastPrice: 48, YesAsk: 52}, 48},
		{"只有卖一价", model.KalshiMarketApi{YesAsk: 52}, 52},
		{"全缺失兜底50", model.KalshiMarketApi{}, 50},
		{"零价视为缺失", model.KalshiMarketApi{LastPrice: 0, YesAsk: 0}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yesCents(tt.market); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("yesCents = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtitleOf(t *testing.T) {
	e := model.KalshiEventApi{SubTitle: "event sub"}
	if got := subtitleOf(e, model.KalshiMarketApi{Subtitle: "market sub"}); got != "market sub" {
		t.Errorf("应优先 market 副标题，得到 %q", got)
	}
	if got := subtitleOf(e, model.KalshiMarketApi{}); got != "event sub" {
		t.Errorf("market 副标题缺失应退回事件副标题，得到 %q", got)
	}
}
