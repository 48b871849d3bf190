package descriptor

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "选举标题",
			text: "Will Trump win the 2028 election?",
			want: []string{"trump", "win", "2028", "election"},
		},
		{
			name: "标点与大小写归一",
			text: "BITCOIN above $100,000?!",
			want: []string{"bitcoin", "above", "100", "000"},
		},
		{
			name: "空输入",
			text: "",
			want: nil,
		},
		{
			name: "全是停用词和短词",
			text: "The and of to a will",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// 同一输入两次提取结果必须一致
func TestKeywordsDeterministic(t *testing.T) {
	text := "Lakers vs Celtics NBA Finals Game 7 winner"
	a := Keywords(text)
	b := Keywords(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("两次提取不一致: %v vs %v", a, b)
	}
}

// 提取结果已是规范形态：把关键词拼回文本再提取一遍，结果不变
func TestKeywordsIdempotent(t *testing.T) {
	texts := []string{
		"Will Trump win the 2028 election?",
		"Lakers vs Celtics NBA Finals Game 7 winner",
		"BITCOIN above $100,000 by March?!",
	}
	for _, text := range texts {
		once := Keywords(text)
		twice := Keywords(strings.Join(once, " "))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("二次提取发生漂移 %q: %v vs %v", text, once, twice)
		}
	}
}

func TestKeywordsLimits(t *testing.T) {
	// 20 个合法词，只留前 15
	var parts []string
	for _, w := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	} {
		parts = append(parts, w)
	}
	got := Keywords(strings.Join(parts, " "))
	if len(got) != 15 {
		t.Fatalf("关键词应截断到 15，得到 %d", len(got))
	}
	if got[0] != "alpha" || got[14] != "oscar" {
		t.Errorf("应保留原文顺序的前 15 个，得到 %v", got)
	}

	for _, tok := range got {
		if len(tok) <= 2 {
			t.Errorf("不应出现长度≤2 的词: %q", tok)
		}
		if _, ok := stopwords[tok]; ok {
			t.Errorf("不应出现停用词: %q", tok)
		}
	}
}

func TestTeams(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"双队命中", "Lakers vs Celtics", []string{"Lakers", "Celtics"}},
		{"大小写不敏感", "LAKERS at CELTICS tonight", []string{"Lakers", "Celtics"}},
		{"别名去重", "Sixers aka 76ers", []string{"76ers"}},
		{"跨项目", "Yankees and Chiefs parlay", []string{"Chiefs", "Yankees"}},
		{"无命中", "Will it rain in Paris tomorrow?", nil},
		{"空输入", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Teams(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Teams(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
