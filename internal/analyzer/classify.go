package analyzer

import (
	"fmt"
	"math"

	"TrendRadar/internal/model"
)

// classifyTrend maps the latest MA alignment into a trend label. Strong
// grades additionally require the MA5-MA20 spread to be wider than it was
// five bars ago and above 5%.
func classifyTrend(t *indicatorTable, r *model.AnalysisResult) {
	ma5, ma10, ma20 := r.MA5, r.MA10, r.MA20
	n := len(t.closes)
	prev := n - 1
	if n >= 5 {
		prev = n - 5
	}

	switch {
	case ma5 > ma10 && ma10 > ma20:
		prevSpread := spreadPct(t.ma5[prev], t.ma20[prev])
		currSpread := spreadPct(ma5, ma20)
		if currSpread > prevSpread && currSpread > 5 {
			r.TrendStatus = model.TrendStrongBull
			r.MAAlignment = "强势多头排列，均线发散上行"
			r.TrendStrength = 90
		} else {
			r.TrendStatus = model.TrendBull
			r.MAAlignment = "多头排列 MA5>MA10>MA20"
			r.TrendStrength = 75
		}
	case ma5 > ma10 && ma10 <= ma20:
		r.TrendStatus = model.TrendWeakBull
		r.MAAlignment = "弱势多头，MA5>MA10 但 MA10≤MA20"
		r.TrendStrength = 55
	case ma5 < ma10 && ma10 < ma20:
		prevSpread := spreadPct(t.ma20[prev], t.ma5[prev])
		currSpread := spreadPct(ma20, ma5)
		if currSpread > prevSpread && currSpread > 5 {
			r.TrendStatus = model.TrendStrongBear
			r.MAAlignment = "强势空头排列，均线发散下行"
			r.TrendStrength = 10
		} else {
			r.TrendStatus = model.TrendBear
			r.MAAlignment = "空头排列 MA5<MA10<MA20"
			r.TrendStrength = 25
		}
	case ma5 < ma10 && ma10 >= ma20:
		r.TrendStatus = model.TrendWeakBear
		r.MAAlignment = "弱势空头，MA5<MA10 但 MA10≥MA20"
		r.TrendStrength = 40
	default:
		r.TrendStatus = model.TrendConsolidation
		r.MAAlignment = "均线缠绕，趋势不明"
		r.TrendStrength = 50
	}
}

// spreadPct returns (hi-lo)/lo as a percentage, or 0 when lo is not a
// positive number (NaN warm-up values compare false and fall through).
func spreadPct(hi, lo float64) float64 {
	if lo > 0 {
		return (hi - lo) / lo * 100
	}
	return 0
}

// computeBias fills the percentage deviation of price from each MA.
func computeBias(r *model.AnalysisResult) {
	price := r.CurrentPrice
	if r.MA5 > 0 {
		r.BiasMA5 = (price - r.MA5) / r.MA5 * 100
	}
	if r.MA10 > 0 {
		r.BiasMA10 = (price - r.MA10) / r.MA10 * 100
	}
	if r.MA20 > 0 {
		r.BiasMA20 = (price - r.MA20) / r.MA20 * 100
	}
}

// classifyVolume compares today's volume against the mean of the preceding
// five bars and crosses the ratio with the price direction.
// 偏好：缩量回调 > 放量上涨 > 缩量上涨 > 放量下跌
func classifyVolume(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.volumes)
	if n < 5 {
		return
	}

	start := n - 6
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, v := range t.volumes[start : n-1] {
		sum += v
	}
	avg := sum / float64(n-1-start)
	if avg > 0 {
		r.VolumeRatio5d = t.volumes[n-1] / avg
	}

	prevClose := t.closes[n-2]
	priceChange := (t.closes[n-1] - prevClose) / prevClose * 100

	switch {
	case r.VolumeRatio5d >= volumeHeavyRatio:
		if priceChange > 0 {
			r.VolumeStatus = model.HeavyVolumeUp
			r.VolumeTrend = "放量上涨，多头力量强劲"
		} else {
			r.VolumeStatus = model.HeavyVolumeDown
			r.VolumeTrend = "放量下跌，注意风险"
		}
	case r.VolumeRatio5d <= volumeShrinkRatio:
		if priceChange > 0 {
			r.VolumeStatus = model.ShrinkVolumeUp
			r.VolumeTrend = "缩量上涨，上攻动能不足"
		} else {
			r.VolumeStatus = model.ShrinkVolumeDown
			r.VolumeTrend = "缩量回调，洗盘特征明显（好）"
		}
	default:
		r.VolumeStatus = model.VolumeNormal
		r.VolumeTrend = "量能正常"
	}
}

// locateSupportResistance marks MA5/MA10 as active support when price is
// within 2% above them, lists MA20 as support whenever price holds it, and
// takes the trailing 20-bar high as resistance when above current price.
func locateSupportResistance(t *indicatorTable, r *model.AnalysisResult) {
	price := r.CurrentPrice

	if r.MA5 > 0 {
		dist := math.Abs(price-r.MA5) / r.MA5
		if dist <= maSupportTolerance && price >= r.MA5 {
			r.SupportMA5 = true
			r.SupportLevels = append(r.SupportLevels, r.MA5)
		}
	}
	if r.MA10 > 0 {
		dist := math.Abs(price-r.MA10) / r.MA10
		if dist <= maSupportTolerance && price >= r.MA10 {
			r.SupportMA10 = true
			if !containsLevel(r.SupportLevels, r.MA10) {
				r.SupportLevels = append(r.SupportLevels, r.MA10)
			}
		}
	}
	if r.MA20 > 0 && price >= r.MA20 {
		r.SupportLevels = append(r.SupportLevels, r.MA20)
	}

	n := len(t.highs)
	if n >= 20 {
		recentHigh := math.Inf(-1)
		for _, h := range t.highs[n-20:] {
			if h > recentHigh {
				recentHigh = h
			}
		}
		if recentHigh > price {
			r.ResistanceLevels = append(r.ResistanceLevels, recentHigh)
		}
	}
}

func containsLevel(levels []float64, v float64) bool {
	for _, l := range levels {
		if l == v {
			return true
		}
	}
	return false
}

// classifyMACD detects edge-triggered crossovers between bar t-1 and t and
// resolves the state by fixed priority: 零轴上金叉 > 上穿零轴 > 金叉 > 死叉 >
// 下穿零轴 > 多头 > 空头 > 中性.
func classifyMACD(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.closes)
	if n < macdSlow {
		r.MACDSignal = "数据不足"
		return
	}

	r.MACDDIF = t.dif[n-1]
	r.MACDDEA = t.dea[n-1]
	r.MACDBar = t.bar[n-1]

	prevDiff := t.dif[n-2] - t.dea[n-2]
	currDiff := r.MACDDIF - r.MACDDEA
	goldenCross := prevDiff <= 0 && currDiff > 0
	deathCross := prevDiff >= 0 && currDiff < 0
	crossingUp := t.dif[n-2] <= 0 && r.MACDDIF > 0
	crossingDown := t.dif[n-2] >= 0 && r.MACDDIF < 0

	switch {
	case goldenCross && r.MACDDIF > 0:
		r.MACDStatus = model.MACDGoldenCrossZero
		r.MACDSignal = "⭐ 零轴上金叉，强烈买入信号！"
	case crossingUp:
		r.MACDStatus = model.MACDCrossingUp
		r.MACDSignal = "⚡ DIF上穿零轴，趋势转强"
	case goldenCross:
		r.MACDStatus = model.MACDGoldenCross
		r.MACDSignal = "✅ 金叉，趋势向上"
	case deathCross:
		r.MACDStatus = model.MACDDeathCross
		r.MACDSignal = "❌ 死叉，趋势向下"
	case crossingDown:
		r.MACDStatus = model.MACDCrossingDown
		r.MACDSignal = "⚠️ DIF下穿零轴，趋势转弱"
	case r.MACDDIF > 0 && r.MACDDEA > 0:
		r.MACDStatus = model.MACDBullish
		r.MACDSignal = "✓ 多头排列，持续上涨"
	case r.MACDDIF < 0 && r.MACDDEA < 0:
		r.MACDStatus = model.MACDBearish
		r.MACDSignal = "⚠ 空头排列，持续下跌"
	default:
		r.MACDStatus = model.MACDBullish
		r.MACDSignal = "MACD 中性区域"
	}
}

// classifyRSI judges overbought/oversold from the mid-window RSI(12).
func classifyRSI(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.closes)
	if n < rsiLong {
		r.RSISignal = "数据不足"
		return
	}

	r.RSI6 = t.rsi6[n-1]
	r.RSI12 = t.rsi12[n-1]
	r.RSI24 = t.rsi24[n-1]

	mid := r.RSI12
	switch {
	case mid > rsiOverbought:
		r.RSIStatus = model.RSIOverbought
		r.RSISignal = fmt.Sprintf("⚠️ RSI超买(%.1f>70)，短期回调风险高", mid)
	case mid > 60:
		r.RSIStatus = model.RSIStrong
		r.RSISignal = fmt.Sprintf("✅ RSI强势(%.1f)，多头力量充足", mid)
	case mid >= 40:
		r.RSIStatus = model.RSINeutral
		r.RSISignal = fmt.Sprintf("RSI中性(%.1f)，震荡整理中", mid)
	case mid >= rsiOversold:
		r.RSIStatus = model.RSIWeak
		r.RSISignal = fmt.Sprintf("⚡ RSI弱势(%.1f)，关注反弹", mid)
	default:
		r.RSIStatus = model.RSIOversold
		r.RSISignal = fmt.Sprintf("⭐ RSI超卖(%.1f<30)，反弹机会大", mid)
	}
}

// classifyKDJ resolves the stochastic state by fixed priority:
// 超买 > 超卖 > 金叉 > 死叉 > 多头 > 空头 > 中性.
func classifyKDJ(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.closes)
	if n < kdjN {
		r.KDJSignal = "数据不足"
		return
	}

	r.KDJK = t.kdjK[n-1]
	r.KDJD = t.kdjD[n-1]
	r.KDJJ = t.kdjJ[n-1]

	prevDiff := t.kdjK[n-2] - t.kdjD[n-2]
	currDiff := r.KDJK - r.KDJD
	goldenCross := prevDiff <= 0 && currDiff > 0
	deathCross := prevDiff >= 0 && currDiff < 0

	switch {
	case r.KDJJ > 100 || (r.KDJK > 80 && r.KDJD > 80):
		r.KDJStatus = model.KDJOverbought
		r.KDJSignal = fmt.Sprintf("⚠️ KDJ超买(K=%.1f,D=%.1f,J=%.1f)", r.KDJK, r.KDJD, r.KDJJ)
	case r.KDJJ < 0 || (r.KDJK < 20 && r.KDJD < 20):
		r.KDJStatus = model.KDJOversold
		r.KDJSignal = fmt.Sprintf("⭐ KDJ超卖(K=%.1f,D=%.1f,J=%.1f)", r.KDJK, r.KDJD, r.KDJJ)
	case goldenCross && r.KDJK < 30:
		r.KDJStatus = model.KDJGoldenCross
		r.KDJSignal = "✅ 低位金叉(K上穿D)，买入信号"
	case goldenCross:
		r.KDJStatus = model.KDJGoldenCross
		r.KDJSignal = "✅ KDJ金叉(K上穿D)"
	case deathCross:
		r.KDJStatus = model.KDJDeathCross
		r.KDJSignal = "❌ KDJ死叉(K下穿D)"
	case currDiff > 0:
		r.KDJStatus = model.KDJBullish
		r.KDJSignal = "✓ K>D，偏多"
	case currDiff < 0:
		r.KDJStatus = model.KDJBearish
		r.KDJSignal = "⚠ K<D，偏空"
	default:
		r.KDJStatus = model.KDJNeutral
		r.KDJSignal = fmt.Sprintf("KDJ中性(K=%.1f,D=%.1f)", r.KDJK, r.KDJD)
	}
}

// classifyBoll judges price proximity to the bands with a 2%/4% tolerance,
// evaluated in priority order: 突破上轨 > 跌破下轨 > 接近上轨 > 接近下轨 >
// 中轨支撑 > 中轨压力 > 通道内.
func classifyBoll(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.closes)
	if n < bollPeriod {
		r.BollSignal = "数据不足"
		return
	}

	price := r.CurrentPrice
	r.BollUpper = t.bollUpper[n-1]
	r.BollMid = t.bollMid[n-1]
	r.BollLower = t.bollLower[n-1]

	bandWidth := r.BollUpper - r.BollLower
	if bandWidth > 0 {
		pos := (price - r.BollMid) / (bandWidth / 2)
		r.BollPosition = math.Max(-1, math.Min(1, pos))
	}

	const tol = 0.02
	switch {
	case price >= r.BollUpper*(1-tol):
		r.BollStatus = model.BollUpperBreak
		r.BollSignal = "⚡ 突破上轨，强势(警惕回调)"
	case price <= r.BollLower*(1+tol):
		r.BollStatus = model.BollLowerBreak
		r.BollSignal = "⭐ 跌破下轨，超卖(关注反弹)"
	case price >= r.BollUpper*(1-tol*2):
		r.BollStatus = model.BollUpperNear
		r.BollSignal = "接近上轨，偏强"
	case price <= r.BollLower*(1+tol*2):
		r.BollStatus = model.BollLowerNear
		r.BollSignal = "接近下轨，潜在买点"
	case price >= r.BollMid && price < r.BollUpper:
		r.BollStatus = model.BollMidSupport
		r.BollSignal = "✓ 中轨上方，获支撑"
	case price < r.BollMid && price > r.BollLower:
		r.BollStatus = model.BollMidResistance
		r.BollSignal = "⚠ 中轨下方，受压制"
	default:
		r.BollStatus = model.BollNormal
		r.BollSignal = "通道内正常"
	}
}

// analyzeOBV reports the five-bar OBV change only when it exceeds 1% in
// magnitude and the five-bar-ago value is non-zero.
func analyzeOBV(t *indicatorTable, r *model.AnalysisResult) {
	n := len(t.obv)
	if n == 0 {
		return
	}
	r.OBV = t.obv[n-1]
	if n < 6 {
		return
	}
	base := t.obv[n-6]
	if base == 0 {
		return
	}
	chg := (r.OBV - base) / math.Abs(base) * 100
	if math.Abs(chg) > 1 {
		r.OBVTrend = fmt.Sprintf("OBV 5日变化 %+.1f%%", chg)
	} else {
		r.OBVTrend = "OBV 平稳"
	}
}
