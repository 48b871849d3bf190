package model

// ========== 体育博彩赔率聚合商 API 响应结构 ==========

// OddsAPISport GET /sports 单条运动项目
type OddsAPISport struct {
	Key          string `json:"key"`
	Group        string `json:"group"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasOutrights bool   `json:"has_outrights"`
}

// OddsAPIEvent GET /sports/{sport}/odds 单条赛事，附各博彩商报价
type OddsAPIEvent struct {
	ID           string             `json:"id"`
	SportKey     string             `json:"sport_key"`
	SportTitle   string             `json:"sport_title"`
	CommenceTime string             `json:"commence_time"`
	Completed    bool               `json:"completed"`
	HomeTeam     string             `json:"home_team"`
	AwayTeam     string             `json:"away_team"`
	Bookmakers   []OddsAPIBookmaker `json:"bookmakers"`
}

// OddsAPIBookmaker 单个博彩商的盘口集合
type OddsAPIBookmaker struct {
	Key        string          `json:"key"`
	Title      string          `json:"title"`
	LastUpdate string          `json:"last_update"`
	Markets    []OddsAPIMarket `json:"markets"`
}

// OddsAPIMarket 盘口（h2h / spreads / totals），价格为欧洲赔率
type OddsAPIMarket struct {
	Key      string           `json:"key"`
	Outcomes []OddsAPIOutcome `json:"outcomes"`
}

// OddsAPIOutcome 单个选项报价
type OddsAPIOutcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point,omitempty"`
}
