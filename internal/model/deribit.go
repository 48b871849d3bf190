package model

// ========== 衍生品分析 API（Deribit 风格 JSON-RPC over HTTP GET） ==========

// DeribitInstrumentsResponse GET /public/get_instruments 响应包装
type DeribitInstrumentsResponse struct {
	Result []DeribitInstrument `json:"result"`
}

// DeribitInstrument GET /public/get_instruments 单个合约
type DeribitInstrument struct {
	InstrumentName      string  `json:"instrument_name"`
	Kind                string  `json:"kind"` // future / option
	BaseCurrency        string  `json:"base_currency"`
	QuoteCurrency       string  `json:"quote_currency"`
	Strike              float64 `json:"strike,omitempty"`
	OptionType          string  `json:"option_type,omitempty"`
	ExpirationTimestamp int64   `json:"expiration_timestamp"`
	IsActive            bool    `json:"is_active"`
	SettlementPeriod    string  `json:"settlement_period"`
}

// DeribitTickerResponse GET /public/ticker 响应
type DeribitTickerResponse struct {
	Result DeribitTicker `json:"result"`
}

// DeribitTicker 合约实时行情，期权含 mark_iv / greeks
type DeribitTicker struct {
	InstrumentName string        `json:"instrument_name"`
	BestBidPrice   float64       `json:"best_bid_price"`
	BestAskPrice   float64       `json:"best_ask_price"`
	LastPrice      float64       `json:"last_price"`
	MarkPrice      float64       `json:"mark_price"`
	IndexPrice     float64       `json:"index_price"`
	MarkIV         float64       `json:"mark_iv,omitempty"`
	OpenInterest   float64       `json:"open_interest"`
	Stats          DeribitStats  `json:"stats"`
	Greeks         DeribitGreeks `json:"greeks,omitempty"`
}

// DeribitStats 24h 统计
type DeribitStats struct {
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Volume      float64 `json:"volume"`
	PriceChange float64 `json:"price_change"`
}

// DeribitGreeks 期权希腊字母
type DeribitGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
}

// DeribitBookSummaryResponse GET /public/get_book_summary_by_currency 响应
type DeribitBookSummaryResponse struct {
	Result []DeribitBookSummary `json:"result"`
}

// DeribitBookSummary 单合约盘口摘要
type DeribitBookSummary struct {
	InstrumentName string  `json:"instrument_name"`
	BidPrice       float64 `json:"bid_price"`
	AskPrice       float64 `json:"ask_price"`
	MidPrice       float64 `json:"mid_price"`
	MarkPrice      float64 `json:"mark_price"`
	Volume         float64 `json:"volume"`
	OpenInterest   float64 `json:"open_interest"`
}
