package descriptor

import (
	"regexp"
	"strings"
)

// maxKeywords 指纹最多保留的关键词个数
const maxKeywords = 15

// stopwords 固定英文停用词表，命中即丢弃
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "will": {}, "with": {}, "from": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "have": {}, "has": {},
	"had": {}, "was": {}, "were": {}, "been": {}, "being": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "whom": {}, "how": {},
	"why": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"than": {}, "then": {}, "there": {}, "their": {}, "they": {}, "them": {},
	"into": {}, "over": {}, "under": {}, "before": {}, "after": {},
}

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Keywords 从自由文本提取关键词指纹：小写、去非字母数字、丢弃长度≤2
// 与停用词的 token，按原文顺序截取前 15 个。不去重、不排序，
// 调用方应按集合交叠而非位置做比较
func Keywords(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonAlphaNum.ReplaceAllString(lowered, " ")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) >= maxKeywords {
			break
		}
	}
	return tokens
}

// rosterEntry 球队词条：小写子串 → 规范展示名
type rosterEntry struct {
	needle string
	name   string
}

// 三张固定球队名单（篮球/橄榄球/棒球）。子串匹配即算命中，
// 城市名同时是常用词的误报风险按设计接受，不做防护
var basketballRoster = []rosterEntry{
	{"lakers", "Lakers"}, {"celtics", "Celtics"}, {"warriors", "Warriors"},
	{"bucks", "Bucks"}, {"nuggets", "Nuggets"}, {"heat", "Heat"},
	{"suns", "Suns"}, {"knicks", "Knicks"}, {"nets", "Nets"},
	{"mavericks", "Mavericks"}, {"clippers", "Clippers"}, {"thunder", "Thunder"},
	{"76ers", "76ers"}, {"sixers", "76ers"}, {"bulls", "Bulls"},
	{"cavaliers", "Cavaliers"},
}

var footballRoster = []rosterEntry{
	{"chiefs", "Chiefs"}, {"eagles", "Eagles"}, {"cowboys", "Cowboys"},
	{"49ers", "49ers"}, {"bills", "Bills"}, {"ravens", "Ravens"},
	{"bengals", "Bengals"}, {"packers", "Packers"}, {"lions", "Lions"},
	{"dolphins", "Dolphins"}, {"jets", "Jets"}, {"steelers", "Steelers"},
	{"patriots", "Patriots"}, {"broncos", "Broncos"},
}

var baseballRoster = []rosterEntry{
	{"yankees", "Yankees"}, {"dodgers", "Dodgers"}, {"astros", "Astros"},
	{"braves", "Braves"}, {"mets", "Mets"}, {"phillies", "Phillies"},
	{"padres", "Padres"}, {"orioles", "Orioles"}, {"rangers", "Rangers"},
	{"cubs", "Cubs"},
}

// Teams 在小写文本中按子串包含扫描三张名单，命中则追加规范队名。
// 这只是查表，不是 NLP；无命中返回空切片
func Teams(text string) []string {
	lowered := strings.ToLower(text)
	var teams []string
	seen := make(map[string]struct{})
	for _, roster := range [][]rosterEntry{basketballRoster, footballRoster, baseballRoster} {
		for _, entry := range roster {
			if !strings.Contains(lowered, entry.needle) {
				continue
			}
			if _, ok := seen[entry.name]; ok {
				continue // 别名命中同一队（如 sixers/76ers）只记一次
			}
			seen[entry.name] = struct{}{}
			teams = append(teams, entry.name)
		}
	}
	return teams
}
