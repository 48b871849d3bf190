package category

import (
	"testing"

	"OddsLens/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		source string
		want   model.EventCategory
	}{
		{"纯体育", "Lakers vs Celtics NBA Finals", "", model.CategorySports},
		{"纯政治", "Will Trump win the 2028 election?", "", model.CategoryPolitics},
		{"纯加密", "Bitcoin above $100k by March", "", model.CategoryCrypto},
		{"纯财经", "Fed interest rate decision", "", model.CategoryBusiness},
		// 体育词与政治词同现，sports 优先（检查顺序即优先级）
		{"体育压政治", "NBA players meet the President after the election", "", model.CategorySports},
		// crypto 词与 business 词同现，crypto 优先
		{"加密压财经", "Bitcoin ETF stock listing", "", model.CategoryCrypto},
		// 词表不命中时退回平台分类
		{"退回平台分类", "Something completely unrelated", "Sports", model.CategorySports},
		{"退回政治", "Something completely unrelated", "US Politics", model.CategoryPolitics},
		{"退回财经别名", "Something completely unrelated", "Finance", model.CategoryBusiness},
		// 平台分类映射不进封闭集合 → other
		{"未知平台分类", "Something completely unrelated", "Weather", model.CategoryOther},
		{"全空", "", "", model.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.source)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %s, want %s", tt.text, tt.source, got, tt.want)
			}
		})
	}
}

// 同样的输入永远得到同样的分类
func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("Super Bowl winner", ""); got != model.CategorySports {
			t.Fatalf("第 %d 次分类结果漂移: %s", i, got)
		}
	}
}
