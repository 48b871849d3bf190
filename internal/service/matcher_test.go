package service

import (
	"math"
	"reflect"
	"testing"

	"OddsLens/internal/model"
)

func market(title string, cat model.EventCategory, keywords, teams []string) model.ComparableMarket {
	return model.ComparableMarket{
		MarketUUID:    title,
		Title:         title,
		EventCategory: cat,
		Keywords:      keywords,
		Teams:         teams,
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"完全相同", []string{"trump", "2028", "election"}, []string{"trump", "2028", "election"}, 1},
		{"部分重合", []string{"trump", "2028", "election"}, []string{"trump", "election", "winner"}, 0.5},
		{"无重合", []string{"bitcoin", "100k"}, []string{"lakers", "celtics"}, 0},
		{"单边为空", []string{"trump"}, nil, 0},
		{"双空不判同", nil, nil, 0},
		{"重复词按集合处理", []string{"trump", "trump", "election"}, []string{"trump", "election"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Jaccard(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// 交换左右两侧不改变相似度（含球队加分路径）
func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2][]string{
		{{"trump", "2028", "election"}, {"trump", "election", "winner"}},
		{{"lakers", "celtics", "game"}, {"lakers", "celtics", "finals", "winner"}},
		{{"bitcoin", "100k"}, {"lakers", "celtics"}},
		{{"trump"}, nil},
	}
	for _, p := range pairs {
		if ab, ba := Jaccard(p[0], p[1]), Jaccard(p[1], p[0]); math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Jaccard 不对称: (%v,%v) %v vs %v", p[0], p[1], ab, ba)
		}
	}

	l := market("L", model.CategorySports,
		[]string{"lakers", "celtics", "game"}, []string{"Lakers", "Celtics"})
	r := market("R", model.CategorySports,
		[]string{"lakers", "celtics", "finals", "winner"}, []string{"Lakers"})
	if lr, rl := similarity(l, r), similarity(r, l); math.Abs(lr-rl) > 1e-9 {
		t.Errorf("similarity 不对称: %v vs %v", lr, rl)
	}
}

func TestMatchThreshold(t *testing.T) {
	m := NewMatcher(nil)
	left := []model.ComparableMarket{
		market("L1", model.CategoryPolitics, []string{"trump", "2028", "election"}, nil),
	}
	// 2/4 = 0.5，恰好到达默认门槛
	right := []model.ComparableMarket{
		market("R1", model.CategoryPolitics, []string{"trump", "election", "winner"}, nil),
	}

	results := m.Match(left, right, 0)
	if len(results) != 1 {
		t.Fatalf("相似度 0.5 应命中默认门槛，得到 %d 对", len(results))
	}
	if math.Abs(results[0].Similarity-0.5) > 1e-9 {
		t.Errorf("Similarity = %v, want 0.5", results[0].Similarity)
	}
	if !reflect.DeepEqual(results[0].SharedKeywords, []string{"trump", "election"}) {
		t.Errorf("SharedKeywords = %v", results[0].SharedKeywords)
	}

	// 提高门槛则失配
	if results = m.Match(left, right, 0.6); len(results) != 0 {
		t.Errorf("门槛 0.6 不应命中，得到 %d 对", len(results))
	}
}

// 分类不一致直接不比，关键词再像也不算同一事件
func TestMatchCategoryGate(t *testing.T) {
	m := NewMatcher(nil)
	left := []model.ComparableMarket{
		market("L1", model.CategoryPolitics, []string{"trump", "election"}, nil),
	}
	right := []model.ComparableMarket{
		market("R1", model.CategoryOther, []string{"trump", "election"}, nil),
	}

	if results := m.Match(left, right, 0); len(results) != 0 {
		t.Errorf("跨分类不应判同，得到 %d 对", len(results))
	}
}

// 球队交集加分把低于门槛的体育配对抬进门槛
func TestMatchTeamBonus(t *testing.T) {
	m := NewMatcher(nil)
	// Jaccard = 2/5 = 0.4，不够 0.5；球队交集 +0.2 → 0.6
	left := []model.ComparableMarket{
		market("L1", model.CategorySports,
			[]string{"lakers", "celtics", "game"}, []string{"Lakers", "Celtics"}),
	}
	right := []model.ComparableMarket{
		market("R1", model.CategorySports,
			[]string{"lakers", "celtics", "finals", "winner"}, []string{"Lakers"}),
	}

	results := m.Match(left, right, 0)
	if len(results) != 1 {
		t.Fatalf("球队加分后应命中，得到 %d 对", len(results))
	}
	if math.Abs(results[0].Similarity-0.6) > 1e-9 {
		t.Errorf("Similarity = %v, want 0.6", results[0].Similarity)
	}
}

// 相似度封顶 1.0
func TestMatchSimilarityCap(t *testing.T) {
	m := NewMatcher(nil)
	left := []model.ComparableMarket{
		market("L1", model.CategorySports, []string{"lakers", "celtics"}, []string{"Lakers"}),
	}
	right := []model.ComparableMarket{
		market("R1", model.CategorySports, []string{"lakers", "celtics"}, []string{"Lakers"}),
	}

	results := m.Match(left, right, 0)
	if len(results) != 1 || results[0].Similarity != 1 {
		t.Fatalf("相似度应封顶 1.0: %+v", results)
	}
}

// 每个左侧市场只配相似度最高的右侧市场，结果按相似度降序
func TestMatchBestPairAndOrder(t *testing.T) {
	m := NewMatcher(nil)
	left := []model.ComparableMarket{
		market("L1", model.CategoryPolitics, []string{"trump", "2028", "election", "november"}, nil),
		market("L2", model.CategoryCrypto, []string{"bitcoin", "100k"}, nil),
	}
	right := []model.ComparableMarket{
		market("R-weak", model.CategoryPolitics, []string{"trump", "election", "winner", "poll"}, nil),
		market("R-strong", model.CategoryPolitics, []string{"trump", "2028", "election"}, nil),
		market("R-btc", model.CategoryCrypto, []string{"bitcoin", "100k"}, nil),
	}

	results := m.Match(left, right, 0)
	if len(results) != 2 {
		t.Fatalf("期望 2 对，得到 %d", len(results))
	}
	// L2/R-btc 相似度 1.0，高于 L1/R-strong 的 0.75，应排第一
	if results[0].Left.Title != "L2" || results[0].Right.Title != "R-btc" {
		t.Errorf("降序排序失败: 第一对 %s/%s", results[0].Left.Title, results[0].Right.Title)
	}
	for _, r := range results {
		if r.Left.Title == "L1" && r.Right.Title != "R-strong" {
			t.Errorf("L1 应配相似度最高的 R-strong，配到了 %s", r.Right.Title)
		}
	}
}

// 同名选项（忽略大小写）输出概率差
func TestMatchOutcomeGaps(t *testing.T) {
	m := NewMatcher(nil)
	l := market("L1", model.CategoryPolitics, []string{"trump", "election"}, nil)
	l.Outcomes = []model.NormalizedOutcome{
		{Name: "Yes", NormalizedProbability: 0.48},
		{Name: "No", NormalizedProbability: 0.52},
	}
	r := market("R1", model.CategoryPolitics, []string{"trump", "election"}, nil)
	r.Outcomes = []model.NormalizedOutcome{
		{Name: "YES", NormalizedProbability: 0.40},
		{Name: "no", NormalizedProbability: 0.60},
	}

	results := m.Match([]model.ComparableMarket{l}, []model.ComparableMarket{r}, 0)
	if len(results) != 1 {
		t.Fatalf("期望 1 对，得到 %d", len(results))
	}
	gaps := results[0].OutcomeGaps
	if math.Abs(gaps["Yes"]-0.08) > 1e-9 {
		t.Errorf("Yes gap = %v, want 0.08", gaps["Yes"])
	}
	if math.Abs(gaps["No"]-(-0.08)) > 1e-9 {
		t.Errorf("No gap = %v, want -0.08", gaps["No"])
	}
}
