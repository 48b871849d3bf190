package service

import (
	"sort"
	"strings"

	"OddsLens/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultMatchThreshold 跨平台判同的默认相似度门槛（"50%+ 重合" 的可执行化）
const DefaultMatchThreshold = 0.5

// teamOverlapBonus 双方球队名单有交集时的加分
const teamOverlapBonus = 0.2

// MatchResult 一对被判定为同一真实事件的跨平台市场
type MatchResult struct {
	Left           model.ComparableMarket `json:"left"`
	Right          model.ComparableMarket `json:"right"`
	Similarity     float64                `json:"similarity"`
	SharedKeywords []string               `json:"shared_keywords"`
	// OutcomeGaps 选项名相同（忽略大小写）的概率差：left - right
	OutcomeGaps map[string]float64 `json:"outcome_gaps,omitempty"`
}

// Matcher 跨平台同事件撮合器：关键词集合的 Jaccard 相似度 +
// 球队交集加分，分类必须一致
type Matcher struct {
	logger *logrus.Logger
}

// NewMatcher 创建 Matcher
func NewMatcher(logger *logrus.Logger) *Matcher {
	return &Matcher{logger: logger}
}

// Match 为左侧每个市场在右侧找相似度最高且过门槛的配对。
// threshold <=0 时用默认值。结果按相似度降序
func (m *Matcher) Match(left, right []model.ComparableMarket, threshold float64) []MatchResult {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	var results []MatchResult
	for _, l := range left {
		bestScore := 0.0
		bestIdx := -1
		for i, r := range right {
			if l.EventCategory != r.EventCategory {
				continue
			}
			score := similarity(l, r)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 || bestScore < threshold {
			continue
		}
		r := right[bestIdx]
		results = append(results, MatchResult{
			Left:           l,
			Right:          r,
			Similarity:     bestScore,
			SharedKeywords: intersect(l.Keywords, r.Keywords),
			OutcomeGaps:    outcomeGaps(l, r),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"left":    len(left),
			"right":   len(right),
			"matched": len(results),
		}).Debug("跨平台撮合完成")
	}
	return results
}

// similarity Jaccard(keywords) + 球队交集加分，封顶 1.0
func similarity(a, b model.ComparableMarket) float64 {
	score := Jaccard(a.Keywords, b.Keywords)
	if len(a.Teams) > 0 && len(b.Teams) > 0 && len(intersect(a.Teams, b.Teams)) > 0 {
		score += teamOverlapBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Jaccard 两个词序列按集合语义的交并比。双空视为 0，不判同
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)
	inter := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// intersect 保持 a 的顺序返回交集
func intersect(a, b []string) []string {
	setB := toSet(b)
	var out []string
	seen := make(map[string]struct{})
	for _, t := range a {
		if _, ok := setB[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// outcomeGaps 同名选项（忽略大小写）的概率差
func outcomeGaps(l, r model.ComparableMarket) map[string]float64 {
	rightByName := make(map[string]float64, len(r.Outcomes))
	for _, o := range r.Outcomes {
		rightByName[strings.ToLower(o.Name)] = o.NormalizedProbability
	}
	gaps := make(map[string]float64)
	for _, o := range l.Outcomes {
		if rp, ok := rightByName[strings.ToLower(o.Name)]; ok {
			gaps[o.Name] = o.NormalizedProbability - rp
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	return gaps
}
