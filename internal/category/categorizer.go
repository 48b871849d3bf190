package category

import (
	"strings"

	"OddsLens/internal/model"
)

// 四张有序检查词表。命中即停，顺序就是优先级：
// sports → politics → crypto → business。同时含体育词和政治词的标题
// 永远归为 sports，这是刻意的简化，下游行为依赖该顺序，不要改成打分器
var sportsTerms = []string{
	"nba", "nfl", "mlb", "nhl", "soccer", "football", "basketball",
	"baseball", "hockey", "tennis", "golf", "ufc", "boxing", "olympics",
	"super bowl", "world cup", "playoffs", "finals", "championship",
	"grand slam", "vs.", " vs ",
}

var politicsTerms = []string{
	"election", "president", "presidential", "senate", "congress",
	"governor", "trump", "biden", "harris", "democrat", "republican",
	"vote", "poll", "primary", "impeach", "parliament", "prime minister",
	"white house", "cabinet",
}

var cryptoTerms = []string{
	"bitcoin", "btc", "ethereum", "eth", "crypto", "solana", "dogecoin",
	"blockchain", "stablecoin", "defi", "halving", "airdrop", "altcoin",
}

var businessTerms = []string{
	"stock", "ipo", "earnings", "fed ", "federal reserve", "interest rate",
	"inflation", "gdp", "merger", "acquisition", "nasdaq", "s&p", "dow jones",
	"recession", "tariff", "unemployment", "ceo",
}

// Classify 给事件文本定粗分类。文本 + 固定词表的纯函数：同样的输入
// 永远得到同样的分类。词表全不命中时退回平台自带分类，仍不在封闭
// 集合内则归 other
func Classify(text, sourceCategory string) model.EventCategory {
	lowered := strings.ToLower(text)

	checks := []struct {
		terms  []string
		result model.EventCategory
	}{
		{sportsTerms, model.CategorySports},
		{politicsTerms, model.CategoryPolitics},
		{cryptoTerms, model.CategoryCrypto},
		{businessTerms, model.CategoryBusiness},
	}
	for _, c := range checks {
		for _, term := range c.terms {
			if strings.Contains(lowered, term) {
				return c.result
			}
		}
	}

	return fromSource(sourceCategory)
}

// fromSource 平台自带分类映射进封闭集合，映射不到则 other
func fromSource(sourceCategory string) model.EventCategory {
	s := strings.ToLower(strings.TrimSpace(sourceCategory))
	switch {
	case s == "":
		return model.CategoryOther
	case strings.Contains(s, "sport"):
		return model.CategorySports
	case strings.Contains(s, "politic"), strings.Contains(s, "election"):
		return model.CategoryPolitics
	case strings.Contains(s, "crypto"):
		return model.CategoryCrypto
	case strings.Contains(s, "business"), strings.Contains(s, "financ"),
		strings.Contains(s, "econom"):
		return model.CategoryBusiness
	default:
		return model.CategoryOther
	}
}
