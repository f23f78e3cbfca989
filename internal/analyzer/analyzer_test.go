package analyzer

import (
	"math"
	"testing"
	"time"

	"TrendRadar/internal/model"
)

func day(i int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func flatBars(n int, price, volume float64) []model.PriceBar {
	bars := make([]model.PriceBar, n)
	for i := range bars {
		bars[i] = model.PriceBar{
			Date: day(i), Open: price, High: price, Low: price,
			Close: price, Volume: volume,
		}
	}
	return bars
}

func risingBars(n int, start, step, volume float64) []model.PriceBar {
	bars := make([]model.PriceBar, n)
	for i := range bars {
		c := start + step*float64(i)
		span := math.Abs(step)
		bars[i] = model.PriceBar{
			Date: day(i), Open: c - step/2, High: c + span/2, Low: c - span,
			Close: c, Volume: volume,
		}
	}
	return bars
}

// driftBars is a gently rising series with a sine wobble, so some days close
// down while the 12-day net change stays positive.
func driftBars(n int) []model.PriceBar {
	bars := make([]model.PriceBar, n)
	for i := range bars {
		c := 10 + 0.05*float64(i) + 0.15*math.Sin(float64(i))
		bars[i] = model.PriceBar{
			Date: day(i), Open: c, High: c + 0.1, Low: c - 0.1,
			Close: c, Volume: 10000,
		}
	}
	return bars
}

func TestAnalyze_FlatSeries(t *testing.T) {
	a := New(nil)
	r := a.Analyze(&model.PriceSeries{Code: "159636", Bars: flatBars(30, 10, 1000)})

	if r.TrendStatus != model.TrendConsolidation {
		t.Errorf("expected consolidation for flat series, got %v", r.TrendStatus)
	}
	if r.BiasMA5 != 0 {
		t.Errorf("expected zero bias, got %.4f", r.BiasMA5)
	}
	if r.RSI12 != 50 {
		t.Errorf("expected neutral RSI for flat series, got %.1f", r.RSI12)
	}
	if r.KDJK != 50 || r.KDJD != 50 {
		t.Errorf("expected K=D=50 for flat series, got K=%.1f D=%.1f", r.KDJK, r.KDJD)
	}
	if r.VolumeStatus != model.VolumeNormal {
		t.Errorf("expected normal volume, got %v", r.VolumeStatus)
	}
	// 盘整10 + 乖离16 + 量能8 + 支撑8 + MACD6 + RSI4 + KDJ3 + BOLL1
	if r.SignalScore != 56 {
		t.Errorf("expected score 56 for flat series, got %d", r.SignalScore)
	}
	if r.BuySignal != model.SignalHold {
		t.Errorf("expected 持有 for score 56, got %v", r.BuySignal)
	}
}

func TestAnalyze_MonotonicRise(t *testing.T) {
	a := New(nil)
	r := a.Analyze(&model.PriceSeries{Code: "hk00700", Bars: risingBars(40, 10, 0.1, 5000)})

	if !r.TrendStatus.IsBull() {
		t.Errorf("expected bull trend for monotonic rise, got %v", r.TrendStatus)
	}
	if r.RSI12 != 100 {
		t.Errorf("expected RSI 100 when every day closes up, got %.1f", r.RSI12)
	}
	if r.MACDDIF <= 0 || r.MACDDEA <= 0 {
		t.Errorf("expected DIF and DEA above zero, got DIF=%.4f DEA=%.4f", r.MACDDIF, r.MACDDEA)
	}
	if r.RSIStatus != model.RSIOverbought {
		t.Errorf("expected RSI overbought at 100, got %v", r.RSIStatus)
	}
}

func TestAnalyze_DriftScenario(t *testing.T) {
	a := New(nil)
	r := a.Analyze(&model.PriceSeries{Code: "513180", Bars: driftBars(60)})

	if !r.TrendStatus.IsBull() {
		t.Errorf("expected bull trend, got %v", r.TrendStatus)
	}
	if r.RSI12 <= 50 {
		t.Errorf("expected RSI12 above 50 for net-positive drift, got %.1f", r.RSI12)
	}
	if len(r.SignalReasons) == 0 {
		t.Error("expected at least one signal reason")
	}
	switch r.BuySignal {
	case model.SignalStrongBuy, model.SignalBuy, model.SignalHold:
	default:
		t.Errorf("expected buy-side or hold recommendation, got %v (score=%d)", r.BuySignal, r.SignalScore)
	}
	if r.SignalScore < 0 || r.SignalScore > 100 {
		t.Errorf("score out of range: %d", r.SignalScore)
	}
}

func TestAnalyze_MinimumHistory(t *testing.T) {
	a := New(nil)
	r := a.Analyze(&model.PriceSeries{Code: "x", Bars: flatBars(20, 8.5, 2000)})

	if r.MA5 != 8.5 || r.MA10 != 8.5 || r.MA20 != 8.5 {
		t.Errorf("expected all MAs equal to close, got MA5=%.2f MA10=%.2f MA20=%.2f", r.MA5, r.MA10, r.MA20)
	}
	if r.MA60 != r.MA20 {
		t.Errorf("expected MA60 to fall back to MA20, got %.2f vs %.2f", r.MA60, r.MA20)
	}
	if r.BiasMA5 != 0 {
		t.Errorf("expected zero bias, got %.4f", r.BiasMA5)
	}
	if r.BollPosition != 0 {
		t.Errorf("expected zero band position when the band collapses, got %.2f", r.BollPosition)
	}
	// 20 根不足以算 MACD(26) 与 RSI(24)
	if r.MACDSignal != "数据不足" {
		t.Errorf("expected MACD 数据不足, got %q", r.MACDSignal)
	}
	if r.RSISignal != "数据不足" {
		t.Errorf("expected RSI 数据不足, got %q", r.RSISignal)
	}
}

func TestAnalyze_InsufficientHistory(t *testing.T) {
	a := New(nil)
	for _, series := range []*model.PriceSeries{
		nil,
		{Code: "short", Bars: flatBars(5, 10, 1000)},
		{Code: "empty"},
	} {
		r := a.Analyze(series)
		if r.SignalScore != 0 {
			t.Errorf("expected zero score, got %d", r.SignalScore)
		}
		if r.BuySignal != model.SignalWait {
			t.Errorf("expected 观望, got %v", r.BuySignal)
		}
		if len(r.RiskFactors) != 1 {
			t.Fatalf("expected exactly one risk note, got %v", r.RiskFactors)
		}
		if r.RiskFactors[0] != "数据不足，无法完成分析" {
			t.Errorf("unexpected risk note: %q", r.RiskFactors[0])
		}
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	a := New(nil)
	scenarios := map[string][]model.PriceBar{
		"flat":    flatBars(80, 3.2, 9e6),
		"rising":  risingBars(80, 5, 0.08, 1e6),
		"falling": risingBars(80, 20, -0.12, 1e6),
		"drift":   driftBars(120),
	}
	for name, bars := range scenarios {
		r := a.Analyze(&model.PriceSeries{Code: name, Bars: bars})
		if r.SignalScore < 0 || r.SignalScore > 100 {
			t.Errorf("%s: score out of range: %d", name, r.SignalScore)
		}
	}
}

func TestNew_WeightValidation(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		want    [8]int
	}{
		{"nil", nil, defaultWeights},
		{"too short", []int{50, 50}, defaultWeights},
		{"wrong sum", []int{28, 18, 12, 8, 12, 7, 8, 6}, defaultWeights},
		{"negative", []int{30, 20, 12, 8, 12, 7, 13, -2}, defaultWeights},
		{"valid custom", []int{30, 16, 12, 8, 12, 7, 8, 7}, [8]int{30, 16, 12, 8, 12, 7, 8, 7}},
	}
	for _, tt := range tests {
		a := New(tt.weights)
		if a.Weights() != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, a.Weights())
		}
	}
}

func TestAnalyze_CustomWeightsEqualDefaults(t *testing.T) {
	bars := driftBars(60)
	def := New(nil).Analyze(&model.PriceSeries{Code: "a", Bars: bars})
	bad := New([]int{1, 2, 3}).Analyze(&model.PriceSeries{Code: "a", Bars: bars})
	if def.SignalScore != bad.SignalScore {
		t.Errorf("invalid weights must score like defaults: %d vs %d", def.SignalScore, bad.SignalScore)
	}
}

func TestPreprocess_SortAndDedupe(t *testing.T) {
	bars := []model.PriceBar{
		{Date: day(2), Close: 12},
		{Date: day(0), Close: 10},
		{Date: day(1), Close: 11},
		{Date: day(1), Close: 11.5}, // duplicate date, keep last
	}
	out := preprocess(bars)
	if len(out) != 3 {
		t.Fatalf("expected 3 bars after dedupe, got %d", len(out))
	}
	if !out[0].Date.Equal(day(0)) || !out[2].Date.Equal(day(2)) {
		t.Errorf("bars not sorted: %v", out)
	}
	if out[1].Close != 11.5 {
		t.Errorf("expected last duplicate to win, got %.1f", out[1].Close)
	}
	// 输入不被修改
	if !bars[0].Date.Equal(day(2)) {
		t.Error("preprocess mutated its input")
	}
}
