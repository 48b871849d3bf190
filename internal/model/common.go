package model

// PlatformType 平台类型枚举
type PlatformType string

const (
	PlatformKalshi     PlatformType = "kalshi"
	PlatformPolymarket PlatformType = "polymarket"
	PlatformOddsAPI    PlatformType = "oddsapi" // 体育博彩赔率聚合商
	PlatformBinance    PlatformType = "binance" // 加密货币现货/合约交易所（仅原始数据工具）
	PlatformDeribit    PlatformType = "deribit" // 衍生品分析（仅原始数据工具）
)

// Representation 平台原生报价表示法，归一化规则按此分派
type Representation string

const (
	ReprCents       Representation = "cents"        // 0–100 美分（Kalshi 二元市场）
	ReprDecimalOdds Representation = "decimal_odds" // ≥1.0 欧洲赔率（sportsbook）
	ReprProbability Representation = "probability"  // 已是 0–1 概率（Polymarket）
)

// EventCategory 事件粗分类（封闭集合）
type EventCategory string

const (
	CategorySports   EventCategory = "sports"
	CategoryPolitics EventCategory = "politics"
	CategoryCrypto   EventCategory = "crypto"
	CategoryBusiness EventCategory = "business"
	CategoryOther    EventCategory = "other"
)

// Listing 单个平台上的一个可交易条目（归一化前的统一形态）
// Ticker 为平台原生 id，跨平台不唯一；EventID 用于同平台内多选项分组
type Listing struct {
	Platform       PlatformType
	EventID        string // 平台侧事件分组 ID，同一真实事件的多个选项共享
	Ticker         string
	Title          string
	SubTitle       string
	OutcomeName    string  // 选项名（Yes/No、队名、候选人名）
	RawPrice       float64 // 平台原生单位价格，保留原值
	Representation Representation
	Category       string // 平台自带分类，可能缺失或不准确
	Status         string // open / closed / settled
	CloseTime      string // 平台原生时间字符串，保持原样透传
	Volume         float64
	Liquidity      float64
}
