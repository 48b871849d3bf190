package model

// PolymarketEvent Gamma API /events 单条事件
type PolymarketEvent struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Active      bool               `json:"active"`
	Closed      bool               `json:"closed"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Volume      float64            `json:"volume"`
	Liquidity   float64            `json:"liquidity"`
	Markets     []PolymarketMarket `json:"markets"`
}

// PolymarketMarket 事件下的盘口。Outcomes/OutcomePrices 是伪 JSON 数组字符串
// （如 "[\"Yes\",\"No\"]" / "[\"0.6\",\"0.4\"]"），需二次解码
type PolymarketMarket struct {
	ID            string  `json:"id"`
	Question      string  `json:"question"`
	Outcomes      string  `json:"outcomes"`
	OutcomePrices string  `json:"outcomePrices"`
	Volume        float64 `json:"volumeNum"`
	Liquidity     float64 `json:"liquidityNum"`
	Active        bool    `json:"active"`
	Closed        bool    `json:"closed"`
	EndDate       string  `json:"endDate"`
}
