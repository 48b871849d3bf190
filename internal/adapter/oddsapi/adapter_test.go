package oddsapi

import (
	"math"
	"testing"

	"OddsLens/internal/model"
)

func h2hMarket(outcomes ...model.OddsAPIOutcome) model.OddsAPIMarket {
	return model.OddsAPIMarket{Key: "h2h", Outcomes: outcomes}
}

func TestConvertEvents(t *testing.T) {
	events := []model.OddsAPIEvent{
		{
			ID:         "ev-1",
			SportTitle: "NBA",
			HomeTeam:   "Lakers",
			AwayTeam:   "Celtics",
			Bookmakers: []model.OddsAPIBookmaker{
				{
					Key: "book_a",
					Markets: []model.OddsAPIMarket{h2hMarket(
						model.OddsAPIOutcome{Name: "Lakers", Price: 2.0},
						model.OddsAPIOutcome{Name: "Celtics", Price: 1.9},
					)},
				},
				{
					Key: "book_b",
					Markets: []model.OddsAPIMarket{h2hMarket(
						model.OddsAPIOutcome{Name: "Lakers", Price: 2.2},
						model.OddsAPIOutcome{Name: "Celtics", Price: 1.7},
					)},
				},
			},
		},
	}

	listings := ConvertEvents(events)
	if len(listings) != 2 {
		t.Fatalf("期望 2 条 listing，得到 %d", len(listings))
	}

	l := listings[0]
	if l.Title != "Lakers vs Celtics" || l.SubTitle != "NBA" {
		t.Errorf("标题组装错误: %q / %q", l.Title, l.SubTitle)
	}
	if l.Representation != model.ReprDecimalOdds {
		t.Errorf("Representation = %s, want decimal_odds", l.Representation)
	}
	if l.Category != "sports" {
		t.Errorf("Category = %s, want sports", l.Category)
	}
	// 共识价为两家博彩商均值
	if math.Abs(l.RawPrice-2.1) > 1e-9 {
		t.Errorf("Lakers 共识价 = %v, want 2.1", l.RawPrice)
	}
	if math.Abs(listings[1].RawPrice-1.8) > 1e-9 {
		t.Errorf("Celtics 共识价 = %v, want 1.8", listings[1].RawPrice)
	}
}

func TestConvertEventsCompleted(t *testing.T) {
	events := []model.OddsAPIEvent{
		{
			ID:        "ev-2",
			HomeTeam:  "Chiefs",
			AwayTeam:  "Eagles",
			Completed: true,
			Bookmakers: []model.OddsAPIBookmaker{
				{Key: "book_a", Markets: []model.OddsAPIMarket{h2hMarket(
					model.OddsAPIOutcome{Name: "Chiefs", Price: 1.5},
				)}},
			},
		},
	}
	listings := ConvertEvents(events)
	if len(listings) != 1 || listings[0].Status != "closed" {
		t.Fatalf("已完赛事件状态应为 closed: %+v", listings)
	}
}

// 无 h2h 盘口或无有效报价的赛事整体跳过
func TestConvertEventsSkipsEmpty(t *testing.T) {
	events := []model.OddsAPIEvent{
		{
			ID: "ev-3",
			Bookmakers: []model.OddsAPIBookmaker{
				{Key: "book_a", Markets: []model.OddsAPIMarket{
					{Key: "spreads", Outcomes: []model.OddsAPIOutcome{{Name: "X", Price: 1.9}}},
				}},
			},
		},
		{
			ID: "ev-4",
			Bookmakers: []model.OddsAPIBookmaker{
				{Key: "book_a", Markets: []model.OddsAPIMarket{h2hMarket(
					model.OddsAPIOutcome{Name: "X", Price: 0},
				)}},
			},
		},
	}
	if listings := ConvertEvents(events); len(listings) != 0 {
		t.Fatalf("无有效 h2h 报价应跳过，得到 %d 条", len(listings))
	}
}

// 零价报价不计入均值
func TestConsensusIgnoresZeroPrices(t *testing.T) {
	e := model.OddsAPIEvent{
		Bookmakers: []model.OddsAPIBookmaker{
			{Key: "a", Markets: []model.OddsAPIMarket{h2hMarket(
				model.OddsAPIOutcome{Name: "Lakers", Price: 2.0},
			)}},
			{Key: "b", Markets: []model.OddsAPIMarket{h2hMarket(
				model.OddsAPIOutcome{Name: "Lakers", Price: 0},
			)}},
		},
	}
	c := consensusPrices(e)
	if len(c.names) != 1 || math.Abs(c.avg[0]-2.0) > 1e-9 {
		t.Fatalf("零价应被忽略: %+v", c)
	}
}
