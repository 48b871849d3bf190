package model

// ========== Kalshi 官方 API 响应结构（GET /events?with_nested_markets=true） ==========

// KalshiEventsResponse GET /events 的根响应
type KalshiEventsResponse struct {
	Events []KalshiEventApi `json:"events"`
	Cursor string           `json:"cursor"`
}

// KalshiEventApi 单条事件的 API 结构
type KalshiEventApi struct {
	EventTicker  string            `json:"event_ticker"`
	SeriesTicker string            `json:"series_ticker"`
	Title        string            `json:"title"`
	SubTitle     string            `json:"sub_title"`
	Category     string            `json:"category"` // 平台自带分类：Sports / Politics 等
	StrikeDate   string            `json:"strike_date"`
	Markets      []KalshiMarketApi `json:"markets,omitempty"`
}

// KalshiMarketApi 单条 market 的 API 结构（binary YES/NO，价格单位为美分）
type KalshiMarketApi struct {
	Ticker      string  `json:"ticker"`
	EventTicker string  `json:"event_ticker"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	YesSubTitle string  `json:"yes_sub_title"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	Status      string  `json:"status"`
	YesBid      float64 `json:"yes_bid"`
	YesAsk      float64 `json:"yes_ask"`
	NoBid       float64 `json:"no_bid"`
	NoAsk       float64 `json:"no_ask"`
	LastPrice   float64 `json:"last_price"`
	Volume      float64 `json:"volume"`
	Liquidity   float64 `json:"liquidity"`
	Result      string  `json:"result"`
}

// KalshiMarketsResponse GET /markets 的根响应
type KalshiMarketsResponse struct {
	Markets []KalshiMarketApi `json:"markets"`
	Cursor  string            `json:"cursor"`
}
