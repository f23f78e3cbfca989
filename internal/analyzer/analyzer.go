// Package analyzer computes classical technical indicators over a daily bar
// series, classifies each into a market-regime label, and folds the labels
// into a weighted 0-100 score with a trade recommendation.
//
// 交易理念：
//  1. 严进策略 - 不追高，乖离率超过 5% 不买
//  2. 趋势交易 - MA5>MA10>MA20 多头排列，顺势而为
//  3. 买点偏好 - 回踩 MA5/MA10 支撑，缩量回调优先
package analyzer

import (
	"sort"

	"TrendRadar/internal/model"
)

// 交易参数配置
const (
	biasThreshold      = 5.0  // 乖离率阈值（%），超过此值不买入
	volumeShrinkRatio  = 0.7  // 缩量判断阈值（当日量/5日均量）
	volumeHeavyRatio   = 1.5  // 放量判断阈值
	maSupportTolerance = 0.02 // MA 支撑判断容忍度（2%）

	macdFast       = 12 // MACD 快线周期
	macdSlow       = 26 // MACD 慢线周期
	macdSignalSpan = 9  // MACD 信号线周期

	rsiShort      = 6
	rsiMid        = 12
	rsiLong       = 24
	rsiOverbought = 70
	rsiOversold   = 30

	kdjN  = 9 // RSV 周期
	kdjM1 = 3 // K 平滑周期
	kdjM2 = 3 // D 平滑周期

	bollPeriod  = 20
	bollStdMult = 2

	// minBars is the minimum history required for a full analysis.
	minBars = 20
)

// defaultWeights are the sub-score weights for trend, bias, volume, support,
// MACD, RSI, KDJ and BOLL. They sum to 100.
var defaultWeights = [8]int{28, 18, 12, 8, 12, 7, 8, 7}

// Analyzer is the scoring engine. It has no mutable state after construction
// and may be shared across goroutines; every Analyze call is independent.
type Analyzer struct {
	weights [8]int
}

// New creates an Analyzer with the given 8-element weight vector (trend,
// bias, volume, support, MACD, RSI, KDJ, BOLL). Vectors that are not exactly
// 8 non-negative entries summing to 100 are silently replaced by the
// defaults; pass nil for the defaults.
func New(weights []int) *Analyzer {
	return &Analyzer{weights: normalizeWeights(weights)}
}

func normalizeWeights(weights []int) [8]int {
	if len(weights) != 8 {
		return defaultWeights
	}
	sum := 0
	for _, w := range weights {
		if w < 0 {
			return defaultWeights
		}
		sum += w
	}
	if sum != 100 {
		return defaultWeights
	}
	var out [8]int
	copy(out[:], weights)
	return out
}

// Weights returns the active weight vector.
func (a *Analyzer) Weights() [8]int { return a.weights }

// Analyze evaluates one instrument's bar series. Fewer than 20 bars is not
// an error: the call returns a default result carrying a single risk note,
// score 0 and a 观望 recommendation.
func (a *Analyzer) Analyze(series *model.PriceSeries) *model.AnalysisResult {
	r := &model.AnalysisResult{}
	if series != nil {
		r.Code = series.Code
	}
	if series == nil || len(series.Bars) < minBars {
		r.RiskFactors = append(r.RiskFactors, "数据不足，无法完成分析")
		return r
	}

	bars := preprocess(series.Bars)
	if len(bars) < minBars {
		r.RiskFactors = append(r.RiskFactors, "数据不足，无法完成分析")
		return r
	}

	t := buildTable(bars)
	n := len(bars)
	r.CurrentPrice = t.closes[n-1]
	r.MA5 = t.ma5[n-1]
	r.MA10 = t.ma10[n-1]
	r.MA20 = t.ma20[n-1]
	r.MA60 = t.ma60[n-1]

	classifyTrend(t, r)
	computeBias(r)
	classifyVolume(t, r)
	locateSupportResistance(t, r)
	classifyMACD(t, r)
	classifyRSI(t, r)
	classifyKDJ(t, r)
	classifyBoll(t, r)
	analyzeOBV(t, r)
	a.generateSignal(r)

	return r
}

// preprocess returns a copy of the bars sorted ascending by date with
// duplicate dates collapsed to the last occurrence. The input is never
// mutated.
func preprocess(bars []model.PriceBar) []model.PriceBar {
	sorted := make([]model.PriceBar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := sorted[:0]
	for _, b := range sorted {
		if len(out) > 0 && out[len(out)-1].Date.Equal(b.Date) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
