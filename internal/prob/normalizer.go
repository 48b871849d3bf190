package prob

import (
	"math"

	"OddsLens/internal/model"
)

// Normalize 按来源表示法把平台原生价格换算为 [0,1] 概率。
// 规则表是跨平台比价成立的前提：换算之后两个不相关平台的数字可以直接相减。
//   - cents：0–100 美分 → p/100
//   - decimal_odds：≥1.0 欧赔 → 1/d
//   - probability：已归一化，原样透传
// 不做区间校验也不做截断，上游数据合法性由调用方保证
func Normalize(raw float64, repr model.Representation) float64 {
	switch repr {
	case model.ReprCents:
		return raw / 100
	case model.ReprDecimalOdds:
		return 1 / raw
	default:
		return raw
	}
}

// Denormalize 概率换算回指定表示法的原生价格（构造补集选项时用）
func Denormalize(p float64, repr model.Representation) float64 {
	switch repr {
	case model.ReprCents:
		return p * 100
	case model.ReprDecimalOdds:
		if p == 0 {
			return 0
		}
		return 1 / p
	default:
		return p
	}
}

// FromAmerican 美式赔率 → 隐含概率（sportsbook 备用盘口）
func FromAmerican(odds float64) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100 / (odds + 100)
	}
	return -odds / (-odds + 100)
}

// Vig 隐含概率之和超出 1.0 的部分（做市商的内嵌利润）
func Vig(probs ...float64) float64 {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	return sum - 1
}

// Mid 买卖中间价
func Mid(bid, ask float64) float64 {
	return (bid + ask) / 2
}

// Spread 买卖价差
func Spread(bid, ask float64) float64 {
	return ask - bid
}

// ZScore x 相对均值的标准差倍数，stddev 为 0 时返回 0
func ZScore(x, mean, stddev float64) float64 {
	if stddev == 0 {
		return 0
	}
	return (x - mean) / stddev
}

// MeanStddev 样本均值与总体标准差
func MeanStddev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
