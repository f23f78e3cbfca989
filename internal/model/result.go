package model

// AnalysisResult holds everything one analysis call produces for a single
// instrument. The zero value of every status field is its neutral variant,
// so a degraded result (insufficient history) is valid without further setup.
type AnalysisResult struct {
	Code string

	// 趋势判断
	TrendStatus   TrendStatus
	MAAlignment   string
	TrendStrength float64 // 0-100，仅用于展示

	// 均线数据
	MA5          float64
	MA10         float64
	MA20         float64
	MA60         float64
	CurrentPrice float64

	// 乖离率
	BiasMA5  float64
	BiasMA10 float64
	BiasMA20 float64

	// 量能分析
	VolumeStatus  VolumeStatus
	VolumeRatio5d float64
	VolumeTrend   string

	// 支撑压力
	SupportMA5       bool
	SupportMA10      bool
	SupportLevels    []float64
	ResistanceLevels []float64

	// MACD 指标
	MACDDIF    float64
	MACDDEA    float64
	MACDBar    float64
	MACDStatus MACDStatus
	MACDSignal string

	// RSI 指标
	RSI6      float64
	RSI12     float64
	RSI24     float64
	RSIStatus RSIStatus
	RSISignal string

	// KDJ 指标
	KDJK      float64
	KDJD      float64
	KDJJ      float64
	KDJStatus KDJStatus
	KDJSignal string

	// BOLL 布林带
	BollUpper    float64
	BollMid      float64
	BollLower    float64
	BollPosition float64 // 价格在通道中的相对位置 (-1到1)
	BollStatus   BollStatus
	BollSignal   string

	// OBV 能量潮
	OBV      float64
	OBVTrend string

	// 买入信号
	BuySignal     BuySignal
	SignalScore   int // 综合评分 0-100
	SignalReasons []string
	RiskFactors   []string
}

// Flatten returns the result as a flat key→value map for serialization to
// downstream report generators and notification senders.
func (r *AnalysisResult) Flatten() map[string]any {
	return map[string]any{
		"code":             r.Code,
		"trend_status":     r.TrendStatus.String(),
		"ma_alignment":     r.MAAlignment,
		"trend_strength":   r.TrendStrength,
		"ma5":              r.MA5,
		"ma10":             r.MA10,
		"ma20":             r.MA20,
		"ma60":             r.MA60,
		"current_price":    r.CurrentPrice,
		"bias_ma5":         r.BiasMA5,
		"bias_ma10":        r.BiasMA10,
		"bias_ma20":        r.BiasMA20,
		"volume_status":    r.VolumeStatus.String(),
		"volume_ratio_5d":  r.VolumeRatio5d,
		"volume_trend":     r.VolumeTrend,
		"support_ma5":      r.SupportMA5,
		"support_ma10":     r.SupportMA10,
		"buy_signal":       r.BuySignal.String(),
		"signal_score":     r.SignalScore,
		"signal_reasons":   r.SignalReasons,
		"risk_factors":     r.RiskFactors,
		"macd_dif":         r.MACDDIF,
		"macd_dea":         r.MACDDEA,
		"macd_bar":         r.MACDBar,
		"macd_status":      r.MACDStatus.String(),
		"macd_signal":      r.MACDSignal,
		"rsi_6":            r.RSI6,
		"rsi_12":           r.RSI12,
		"rsi_24":           r.RSI24,
		"rsi_status":       r.RSIStatus.String(),
		"rsi_signal":       r.RSISignal,
		"kdj_k":            r.KDJK,
		"kdj_d":            r.KDJD,
		"kdj_j":            r.KDJJ,
		"kdj_status":       r.KDJStatus.String(),
		"kdj_signal":       r.KDJSignal,
		"boll_upper":       r.BollUpper,
		"boll_mid":         r.BollMid,
		"boll_lower":       r.BollLower,
		"boll_position":    r.BollPosition,
		"boll_status":      r.BollStatus.String(),
		"boll_signal":      r.BollSignal,
		"obv":              r.OBV,
		"obv_trend":        r.OBVTrend,
	}
}
