package prob

import (
	"math"
	"testing"

	"OddsLens/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		repr model.Representation
		want float64
	}{
		{"cents 48", 48, model.ReprCents, 0.48},
		{"cents 55", 55, model.ReprCents, 0.55},
		{"cents 0", 0, model.ReprCents, 0},
		{"cents 100", 100, model.ReprCents, 1},
		{"decimal 2.0", 2.0, model.ReprDecimalOdds, 0.5},
		{"decimal 3.125", 3.125, model.ReprDecimalOdds, 0.32},
		{"decimal 2.5", 2.5, model.ReprDecimalOdds, 0.40},
		{"probability passthrough", 0.73, model.ReprProbability, 0.73},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.repr)
			if !almostEqual(got, tt.want) {
				t.Errorf("Normalize(%v, %s) = %v, want %v", tt.raw, tt.repr, got, tt.want)
			}
		})
	}
}

// 欧赔越高隐含概率越低，且结果落在 (0,1]
func TestNormalizeDecimalMonotonic(t *testing.T) {
	odds := []float64{1.01, 1.5, 2.0, 3.0, 10.0, 100.0}
	prev := 2.0
	for _, d := range odds {
		p := Normalize(d, model.ReprDecimalOdds)
		if p <= 0 || p > 1 {
			t.Fatalf("Normalize(%v, decimal) = %v，超出 (0,1]", d, p)
		}
		if p >= prev {
			t.Fatalf("Normalize 非单调递减：odds=%v p=%v prev=%v", d, p, prev)
		}
		prev = p
	}
}

func TestDenormalizeRoundTrip(t *testing.T) {
	for _, repr := range []model.Representation{model.ReprCents, model.ReprDecimalOdds, model.ReprProbability} {
		for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
			raw := Denormalize(p, repr)
			if got := Normalize(raw, repr); !almostEqual(got, p) {
				t.Errorf("往返失败 repr=%s p=%v: Denormalize=%v Normalize=%v", repr, p, raw, got)
			}
		}
	}
}

func TestFromAmerican(t *testing.T) {
	tests := []struct {
		odds float64
		want float64
	}{
		{100, 0.5},
		{150, 0.4},
		{-110, 110.0 / 210.0},
		{-200, 200.0 / 300.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := FromAmerican(tt.odds); !almostEqual(got, tt.want) {
			t.Errorf("FromAmerican(%v) = %v, want %v", tt.odds, got, tt.want)
		}
	}
}

// 48 美分 + 55 美分 → vig 0.03
func TestVig(t *testing.T) {
	yes := Normalize(48, model.ReprCents)
	no := Normalize(55, model.ReprCents)
	if got := Vig(yes, no); math.Abs(got-0.03) > 1e-9 {
		t.Errorf("Vig(0.48, 0.55) = %v, want 0.03", got)
	}
	if got := Vig(0.5, 0.5); !almostEqual(got, 0) {
		t.Errorf("公平盘口 Vig = %v, want 0", got)
	}
	if got := Vig(0.3, 0.3, 0.3); !almostEqual(got, -0.1) {
		t.Errorf("概率和不足 1 时 Vig = %v, want -0.1", got)
	}
}

func TestMidSpread(t *testing.T) {
	if got := Mid(99, 101); !almostEqual(got, 100) {
		t.Errorf("Mid(99,101) = %v, want 100", got)
	}
	if got := Spread(99, 101); !almostEqual(got, 2) {
		t.Errorf("Spread(99,101) = %v, want 2", got)
	}
}

func TestZScore(t *testing.T) {
	if got := ZScore(12, 10, 2); !almostEqual(got, 1) {
		t.Errorf("ZScore(12,10,2) = %v, want 1", got)
	}
	// stddev 为 0 不得除零
	if got := ZScore(12, 10, 0); got != 0 {
		t.Errorf("ZScore stddev=0 = %v, want 0", got)
	}
}

func TestMeanStddev(t *testing.T) {
	mean, stddev := MeanStddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(mean, 5) {
		t.Errorf("mean = %v, want 5", mean)
	}
	if !almostEqual(stddev, 2) {
		t.Errorf("stddev = %v, want 2", stddev)
	}

	mean, stddev = MeanStddev(nil)
	if mean != 0 || stddev != 0 {
		t.Errorf("空输入应返回 0,0，得到 %v,%v", mean, stddev)
	}
}
