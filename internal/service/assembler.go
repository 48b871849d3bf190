package service

import (
	"sort"
	"strings"

	"OddsLens/internal/category"
	"OddsLens/internal/descriptor"
	"OddsLens/internal/model"
	"OddsLens/internal/prob"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultLimit 未指定 limit 时返回的市场条数上限
const DefaultLimit = 20

// AssembleOptions 调用方传入的过滤参数，零值即不过滤
type AssembleOptions struct {
	Category        string  // 只保留该分类（封闭集合取值）
	Keywords        string  // 关键词相关性过滤串
	MinVolume       float64 // 成交量下限，最后应用
	IncludeResolved bool    // 是否保留已结算/已关闭的条目
	Limit           int     // 截断条数，<=0 时取 DefaultLimit
}

// Assembler 把单平台一批原始 listing 组装为标准 ComparableMarket。
// 无状态，每次工具调用现场构建，产物不落任何存储
type Assembler struct {
	logger *logrus.Logger
}

// NewAssembler 创建 Assembler
func NewAssembler(logger *logrus.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Assemble 组装 + 过滤 + 排序 + 截断。
// 过滤顺序固定：状态 → 分类 → 关键词相关性 → 成交量下限。
// 给了关键词串则按相关性得分排序，否则保持上游顺序
func (a *Assembler) Assemble(listings []model.Listing, opts AssembleOptions) []model.ComparableMarket {
	markets := a.group(listings)

	// 1. 状态过滤：默认只留 open
	if !opts.IncludeResolved {
		markets = filterInPlace(markets, func(m model.ComparableMarket) bool {
			return m.Status == "open" || m.Status == "active" || m.Status == ""
		})
	}

	// 2. 分类过滤
	if opts.Category != "" {
		want := model.EventCategory(strings.ToLower(opts.Category))
		markets = filterInPlace(markets, func(m model.ComparableMarket) bool {
			return m.EventCategory == want
		})
	}

	// 3. 关键词相关性：标题命中权重 3、副标题权重 1，
	//    得分 ≥2 或至少一次标题命中才保留
	var scores map[string]int
	if opts.Keywords != "" {
		query := descriptor.Keywords(opts.Keywords)
		scores = make(map[string]int, len(markets))
		markets = filterInPlace(markets, func(m model.ComparableMarket) bool {
			score, titleHits := relevance(m, query)
			if titleHits < 1 && score < 2 {
				return false
			}
			scores[m.MarketUUID] = score
			return true
		})
		sort.SliceStable(markets, func(i, j int) bool {
			return scores[markets[i].MarketUUID] > scores[markets[j].MarketUUID]
		})
	}

	// 4. 成交量下限，最后应用
	if opts.MinVolume > 0 {
		markets = filterInPlace(markets, func(m model.ComparableMarket) bool {
			return m.Volume >= opts.MinVolume
		})
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(markets) > limit {
		markets = markets[:limit]
	}

	if a.logger != nil {
		a.logger.WithFields(logrus.Fields{
			"listings": len(listings),
			"markets":  len(markets),
		}).Debug("assemble 完成")
	}
	return markets
}

// group 按 EventID 分组：同事件多条 listing 合并为多选项市场，
// 单条 listing 构造为二元 Yes/No 市场
func (a *Assembler) group(listings []model.Listing) []model.ComparableMarket {
	groups := make(map[string][]model.Listing)
	var order []string // 保持上游首次出现顺序
	for _, l := range listings {
		key := l.EventID
		if key == "" {
			key = l.Ticker
		}
		if key == "" {
			// 两个 id 都缺失时各成一组，避免不相关条目被并进同一市场
			key = uuid.New().String()
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], l)
	}

	markets := make([]model.ComparableMarket, 0, len(order))
	for _, key := range order {
		group := groups[key]
		first := group[0]

		var outcomes []model.NormalizedOutcome
		if len(group) > 1 {
			// 多选项事件：每条 listing 一个 outcome
			for _, l := range group {
				outcomes = append(outcomes, model.NormalizedOutcome{
					Name:                  outcomeName(l),
					NormalizedProbability: prob.Normalize(l.RawPrice, l.Representation),
					RawPrice:              l.RawPrice,
				})
			}
		} else {
			// 二元市场：Yes 为原价，No 用补集概率反推同表示法原价
			p := prob.Normalize(first.RawPrice, first.Representation)
			outcomes = []model.NormalizedOutcome{
				{Name: outcomeName(first), NormalizedProbability: p, RawPrice: first.RawPrice},
				{Name: "No", NormalizedProbability: 1 - p, RawPrice: prob.Denormalize(1-p, first.Representation)},
			}
		}

		probs := make([]float64, len(outcomes))
		for i, o := range outcomes {
			probs[i] = o.NormalizedProbability
		}

		text := first.Title + " " + first.SubTitle
		cat := category.Classify(text, first.Category)
		var teams []string
		if cat == model.CategorySports {
			teams = descriptor.Teams(text)
		}
		if teams == nil {
			teams = []string{}
		}
		keywords := descriptor.Keywords(text)
		if keywords == nil {
			keywords = []string{}
		}

		markets = append(markets, model.ComparableMarket{
			MarketUUID:    uuid.New().String(),
			Platform:      first.Platform,
			EventID:       key,
			Title:         first.Title,
			SubTitle:      first.SubTitle,
			EventCategory: cat,
			Keywords:      keywords,
			Teams:         teams,
			Outcomes:      outcomes,
			Vig:           prob.Vig(probs...),
			Status:        first.Status,
			CloseTime:     first.CloseTime,
			Volume:        sumVolume(group),
		})
	}
	return markets
}

// relevance 关键词相关性打分：每个查询词标题命中 +3、副标题命中 +1
func relevance(m model.ComparableMarket, query []string) (score, titleHits int) {
	title := strings.ToLower(m.Title)
	sub := strings.ToLower(m.SubTitle)
	for _, q := range query {
		if strings.Contains(title, q) {
			score += 3
			titleHits++
		} else if strings.Contains(sub, q) {
			score++
		}
	}
	return score, titleHits
}

func outcomeName(l model.Listing) string {
	if l.OutcomeName != "" {
		return l.OutcomeName
	}
	return "Yes"
}

func sumVolume(group []model.Listing) float64 {
	var total float64
	for _, l := range group {
		total += l.Volume
	}
	return total
}

func filterInPlace(markets []model.ComparableMarket, keep func(model.ComparableMarket) bool) []model.ComparableMarket {
	out := markets[:0]
	for _, m := range markets {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
