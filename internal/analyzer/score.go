package analyzer

import (
	"fmt"
	"math"

	"TrendRadar/internal/model"
)

// Raw sub-score tables. The values encode the trading philosophy (不追高、
// 偏好缩量回踩买点) and must stay exactly as listed; scoring never branches
// on display strings.
var trendRawScores = map[model.TrendStatus]int{
	model.TrendStrongBull:    28,
	model.TrendBull:          24,
	model.TrendWeakBull:      16,
	model.TrendConsolidation: 10,
	model.TrendWeakBear:      6,
	model.TrendBear:          3,
	model.TrendStrongBear:    0,
}

var volumeRawScores = map[model.VolumeStatus]int{
	model.ShrinkVolumeDown: 12,
	model.HeavyVolumeUp:    10,
	model.VolumeNormal:     8,
	model.ShrinkVolumeUp:   5,
	model.HeavyVolumeDown:  0,
}

// MACD 空头给 1 分而不是 0 分，保持与历史行为一致（下跌中持续缩短的绿柱
// 仍有吸筹含义），不要顺手改成 0。
var macdRawScores = map[model.MACDStatus]int{
	model.MACDGoldenCrossZero: 12,
	model.MACDGoldenCross:     10,
	model.MACDCrossingUp:      8,
	model.MACDBullish:         6,
	model.MACDBearish:         1,
	model.MACDCrossingDown:    0,
	model.MACDDeathCross:      0,
}

var rsiRawScores = map[model.RSIStatus]int{
	model.RSIOversold:   7,
	model.RSIStrong:     6,
	model.RSINeutral:    4,
	model.RSIWeak:       2,
	model.RSIOverbought: 0,
}

var kdjRawScores = map[model.KDJStatus]int{
	model.KDJGoldenCross: 8,
	model.KDJOversold:    7,
	model.KDJBullish:     5,
	model.KDJNeutral:     3,
	model.KDJBearish:     1,
	model.KDJDeathCross:  0,
	model.KDJOverbought:  0,
}

var bollRawScores = map[model.BollStatus]int{
	model.BollLowerBreak:    7,
	model.BollLowerNear:     6,
	model.BollMidSupport:    5,
	model.BollNormal:        4,
	model.BollUpperNear:     2,
	model.BollMidResistance: 1,
	model.BollUpperBreak:    1,
}

// scaleScore rescales a raw sub-score from its default weight to the
// configured one, rounding to the nearest integer.
func scaleScore(raw, weight, defaultWeight int) int {
	if defaultWeight == 0 {
		return 0
	}
	return int(math.Round(float64(raw) * float64(weight) / float64(defaultWeight)))
}

// generateSignal folds all classifier labels into the 0-100 composite score
// and the final recommendation. Reasons and risks accumulate in evaluation
// order (趋势、乖离率、量能、支撑、MACD、RSI、KDJ、BOLL); the order feeds
// straight into the report, so it must not be shuffled.
func (a *Analyzer) generateSignal(r *model.AnalysisResult) {
	var reasons, risks []string
	w := a.weights
	d := defaultWeights

	// 趋势
	trendScore := scaleScore(trendRawScores[r.TrendStatus], w[0], d[0])
	switch r.TrendStatus {
	case model.TrendStrongBull, model.TrendBull:
		reasons = append(reasons, fmt.Sprintf("✅ %s，顺势做多", r.TrendStatus))
	case model.TrendBear, model.TrendStrongBear:
		risks = append(risks, fmt.Sprintf("⚠️ %s，不宜做多", r.TrendStatus))
	}

	// 乖离率
	var biasRaw int
	bias := r.BiasMA5
	switch {
	case bias < 0 && bias > -3:
		biasRaw = 18
		reasons = append(reasons, fmt.Sprintf("✅ 价格略低于MA5(%.1f%%)，回踩买点", bias))
	case bias < 0 && bias > -5:
		biasRaw = 14
		reasons = append(reasons, fmt.Sprintf("✅ 价格回踩MA5(%.1f%%)，观察支撑", bias))
	case bias < 0:
		biasRaw = 8
		risks = append(risks, fmt.Sprintf("⚠️ 乖离率过大(%.1f%%)，可能破位", bias))
	case bias < 2:
		biasRaw = 16
		reasons = append(reasons, fmt.Sprintf("✅ 价格贴近MA5(%.1f%%)，介入好时机", bias))
	case bias < biasThreshold:
		biasRaw = 12
		reasons = append(reasons, fmt.Sprintf("⚡ 价格略高于MA5(%.1f%%)，可小仓介入", bias))
	default:
		biasRaw = 3
		risks = append(risks, fmt.Sprintf("❌ 乖离率过高(%.1f%%>5%%)，严禁追高！", bias))
	}
	biasScore := scaleScore(biasRaw, w[1], d[1])

	// 量能
	volScore := scaleScore(volumeRawScores[r.VolumeStatus], w[2], d[2])
	switch r.VolumeStatus {
	case model.ShrinkVolumeDown:
		reasons = append(reasons, "✅ 缩量回调，主力洗盘")
	case model.HeavyVolumeDown:
		risks = append(risks, "⚠️ 放量下跌，注意风险")
	}

	// 支撑
	var supportRaw int
	if r.SupportMA5 {
		supportRaw += 4
		reasons = append(reasons, "✅ MA5支撑有效")
	}
	if r.SupportMA10 {
		supportRaw += 4
		reasons = append(reasons, "✅ MA10支撑有效")
	}
	supportScore := scaleScore(supportRaw, w[3], d[3])

	// MACD
	macdScore := scaleScore(macdRawScores[r.MACDStatus], w[4], d[4])
	switch r.MACDStatus {
	case model.MACDGoldenCrossZero, model.MACDGoldenCross:
		reasons = append(reasons, fmt.Sprintf("✅ %s", r.MACDSignal))
	case model.MACDDeathCross, model.MACDCrossingDown:
		risks = append(risks, fmt.Sprintf("⚠️ %s", r.MACDSignal))
	default:
		reasons = append(reasons, r.MACDSignal)
	}

	// RSI
	rsiScore := scaleScore(rsiRawScores[r.RSIStatus], w[5], d[5])
	switch r.RSIStatus {
	case model.RSIOversold, model.RSIStrong:
		reasons = append(reasons, fmt.Sprintf("✅ %s", r.RSISignal))
	case model.RSIOverbought:
		risks = append(risks, fmt.Sprintf("⚠️ %s", r.RSISignal))
	default:
		reasons = append(reasons, r.RSISignal)
	}

	// KDJ
	kdjScore := scaleScore(kdjRawScores[r.KDJStatus], w[6], d[6])
	switch r.KDJStatus {
	case model.KDJGoldenCross, model.KDJOversold:
		reasons = append(reasons, fmt.Sprintf("✅ %s", r.KDJSignal))
	case model.KDJDeathCross, model.KDJOverbought:
		risks = append(risks, fmt.Sprintf("⚠️ %s", r.KDJSignal))
	}

	// BOLL
	bollScore := scaleScore(bollRawScores[r.BollStatus], w[7], d[7])
	switch r.BollStatus {
	case model.BollLowerBreak, model.BollLowerNear, model.BollMidSupport:
		reasons = append(reasons, fmt.Sprintf("✅ %s", r.BollSignal))
	}

	score := trendScore + biasScore + volScore + supportScore +
		macdScore + rsiScore + kdjScore + bollScore

	r.SignalScore = score
	r.SignalReasons = reasons
	r.RiskFactors = risks

	switch {
	case score >= 75 && (r.TrendStatus == model.TrendStrongBull || r.TrendStatus == model.TrendBull):
		r.BuySignal = model.SignalStrongBuy
	case score >= 60 && r.TrendStatus.IsBull():
		r.BuySignal = model.SignalBuy
	case score >= 45:
		r.BuySignal = model.SignalHold
	case score >= 30:
		r.BuySignal = model.SignalWait
	case r.TrendStatus == model.TrendBear || r.TrendStatus == model.TrendStrongBear:
		r.BuySignal = model.SignalStrongSell
	default:
		r.BuySignal = model.SignalSell
	}
}
