package model

// NormalizedOutcome 归一化后的单个结果项，rawPrice 保留平台原值便于追溯
type NormalizedOutcome struct {
	Name                  string  `json:"name"`
	NormalizedProbability float64 `json:"normalized_probability"`
	RawPrice              float64 `json:"raw_price"`
}

// ComparableMarket 跨平台可比市场（§交付给下游撮合/比价的标准形态）
// 每次工具调用基于实时抓取现场构建，构建后不再修改，也不落任何存储
type ComparableMarket struct {
	MarketUUID    string              `json:"market_uuid"`
	Platform      PlatformType        `json:"platform"`
	EventID       string              `json:"event_id"`
	Title         string              `json:"title"`
	SubTitle      string              `json:"sub_title,omitempty"`
	EventCategory EventCategory       `json:"event_category"`
	Keywords      []string            `json:"keywords"`
	Teams         []string            `json:"teams"`
	Outcomes      []NormalizedOutcome `json:"outcomes"`
	Vig           float64             `json:"vig"` // 隐含概率之和超出 1.0 的部分
	Status        string              `json:"status"`
	CloseTime     string              `json:"close_time,omitempty"`
	Volume        float64             `json:"volume,omitempty"`
}
