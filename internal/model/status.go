package model

// TrendStatus classifies the moving-average alignment.
// The zero value is TrendConsolidation.
type TrendStatus int

const (
	TrendConsolidation TrendStatus = iota // 均线缠绕
	TrendStrongBull                       // MA5>MA10>MA20 且间距扩大
	TrendBull                             // MA5>MA10>MA20
	TrendWeakBull                         // MA5>MA10 但 MA10≤MA20
	TrendWeakBear                         // MA5<MA10 但 MA10≥MA20
	TrendBear                             // MA5<MA10<MA20
	TrendStrongBear                       // MA5<MA10<MA20 且间距扩大
)

var trendNames = map[TrendStatus]string{
	TrendConsolidation: "盘整",
	TrendStrongBull:    "强势多头",
	TrendBull:          "多头排列",
	TrendWeakBull:      "弱势多头",
	TrendWeakBear:      "弱势空头",
	TrendBear:          "空头排列",
	TrendStrongBear:    "强势空头",
}

func (s TrendStatus) String() string { return trendNames[s] }

// IsBull reports whether the trend is a bull alignment of any grade.
func (s TrendStatus) IsBull() bool {
	return s == TrendStrongBull || s == TrendBull || s == TrendWeakBull
}

// VolumeStatus classifies the volume character of the latest bar.
// The zero value is VolumeNormal.
type VolumeStatus int

const (
	VolumeNormal     VolumeStatus = iota // 量能正常
	HeavyVolumeUp                        // 量价齐升
	HeavyVolumeDown                      // 放量杀跌
	ShrinkVolumeUp                       // 无量上涨
	ShrinkVolumeDown                     // 缩量回调（好）
)

var volumeNames = map[VolumeStatus]string{
	VolumeNormal:     "量能正常",
	HeavyVolumeUp:    "放量上涨",
	HeavyVolumeDown:  "放量下跌",
	ShrinkVolumeUp:   "缩量上涨",
	ShrinkVolumeDown: "缩量回调",
}

func (s VolumeStatus) String() string { return volumeNames[s] }

// MACDStatus classifies the DIF/DEA state. The zero value is MACDBullish,
// which also covers the mixed-sign neutral zone.
type MACDStatus int

const (
	MACDBullish         MACDStatus = iota // DIF>0 且 DEA>0
	MACDGoldenCrossZero                   // DIF上穿DEA，且在零轴上方
	MACDGoldenCross                       // DIF上穿DEA
	MACDCrossingUp                        // DIF上穿零轴
	MACDCrossingDown                      // DIF下穿零轴
	MACDBearish                           // DIF<0 且 DEA<0
	MACDDeathCross                        // DIF下穿DEA
)

var macdNames = map[MACDStatus]string{
	MACDBullish:         "多头",
	MACDGoldenCrossZero: "零轴上金叉",
	MACDGoldenCross:     "金叉",
	MACDCrossingUp:      "上穿零轴",
	MACDCrossingDown:    "下穿零轴",
	MACDBearish:         "空头",
	MACDDeathCross:      "死叉",
}

func (s MACDStatus) String() string { return macdNames[s] }

// RSIStatus classifies the mid-window RSI(12). The zero value is RSINeutral.
type RSIStatus int

const (
	RSINeutral    RSIStatus = iota // 40 ≤ RSI ≤ 60
	RSIOverbought                  // RSI > 70
	RSIStrong                      // 60 < RSI ≤ 70
	RSIWeak                        // 30 ≤ RSI < 40
	RSIOversold                    // RSI < 30
)

var rsiNames = map[RSIStatus]string{
	RSINeutral:    "中性",
	RSIOverbought: "超买",
	RSIStrong:     "强势买入",
	RSIWeak:       "弱势",
	RSIOversold:   "超卖",
}

func (s RSIStatus) String() string { return rsiNames[s] }

// KDJStatus classifies the stochastic K/D/J state. The zero value is KDJNeutral.
type KDJStatus int

const (
	KDJNeutral     KDJStatus = iota // 震荡区域
	KDJGoldenCross                  // K上穿D
	KDJDeathCross                   // K下穿D
	KDJOverbought                   // J>100 或 K/D>80
	KDJOversold                     // J<0 或 K/D<20
	KDJBullish                      // K>D
	KDJBearish                      // K<D
)

var kdjNames = map[KDJStatus]string{
	KDJNeutral:     "中性",
	KDJGoldenCross: "金叉",
	KDJDeathCross:  "死叉",
	KDJOverbought:  "超买",
	KDJOversold:    "超卖",
	KDJBullish:     "多头",
	KDJBearish:     "空头",
}

func (s KDJStatus) String() string { return kdjNames[s] }

// BollStatus classifies where price sits in the Bollinger channel.
// The zero value is BollNormal.
type BollStatus int

const (
	BollNormal        BollStatus = iota // 通道内正常波动
	BollUpperBreak                      // 突破上轨
	BollLowerBreak                      // 跌破下轨
	BollUpperNear                       // 接近上轨
	BollLowerNear                       // 接近下轨
	BollMidSupport                      // 中轨上方获支撑
	BollMidResistance                   // 中轨下方受压制
)

var bollNames = map[BollStatus]string{
	BollNormal:        "通道内",
	BollUpperBreak:    "突破上轨",
	BollLowerBreak:    "跌破下轨",
	BollUpperNear:     "接近上轨",
	BollLowerNear:     "接近下轨",
	BollMidSupport:    "中轨支撑",
	BollMidResistance: "中轨压力",
}

func (s BollStatus) String() string { return bollNames[s] }

// BuySignal is the final trade recommendation. The zero value is SignalWait.
type BuySignal int

const (
	SignalWait       BuySignal = iota // 等待更好时机
	SignalStrongBuy                   // 多条件满足
	SignalBuy                         // 基本条件满足
	SignalHold                        // 已持有可继续
	SignalSell                        // 趋势转弱
	SignalStrongSell                  // 趋势破坏
)

var buySignalNames = map[BuySignal]string{
	SignalWait:       "观望",
	SignalStrongBuy:  "强烈买入",
	SignalBuy:        "买入",
	SignalHold:       "持有",
	SignalSell:       "卖出",
	SignalStrongSell: "强烈卖出",
}

func (s BuySignal) String() string { return buySignalNames[s] }
