package model

import "testing"

func TestZeroValuesAreNeutral(t *testing.T) {
	// 零值即各指标的中性档，未计算的指标直接落在安全默认上
	if TrendStatus(0) != TrendConsolidation {
		t.Error("zero TrendStatus must be 盘整")
	}
	if VolumeStatus(0) != VolumeNormal {
		t.Error("zero VolumeStatus must be 量能正常")
	}
	if MACDStatus(0) != MACDBullish {
		t.Error("zero MACDStatus must be 多头")
	}
	if RSIStatus(0) != RSINeutral {
		t.Error("zero RSIStatus must be 中性")
	}
	if KDJStatus(0) != KDJNeutral {
		t.Error("zero KDJStatus must be 中性")
	}
	if BollStatus(0) != BollNormal {
		t.Error("zero BollStatus must be 通道内")
	}
	if BuySignal(0) != SignalWait {
		t.Error("zero BuySignal must be 观望")
	}
}

func TestTrendStatus_IsBull(t *testing.T) {
	bulls := []TrendStatus{TrendStrongBull, TrendBull, TrendWeakBull}
	for _, s := range bulls {
		if !s.IsBull() {
			t.Errorf("%v must be bull", s)
		}
	}
	bears := []TrendStatus{TrendConsolidation, TrendWeakBear, TrendBear, TrendStrongBear}
	for _, s := range bears {
		if s.IsBull() {
			t.Errorf("%v must not be bull", s)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{TrendStrongBull.String(), "强势多头"},
		{HeavyVolumeUp.String(), "放量上涨"},
		{MACDGoldenCrossZero.String(), "零轴上金叉"},
		{RSIOversold.String(), "超卖"},
		{KDJDeathCross.String(), "死叉"},
		{BollLowerBreak.String(), "跌破下轨"},
		{SignalStrongBuy.String(), "强烈买入"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestFlatten(t *testing.T) {
	r := &AnalysisResult{
		Code:        "159636",
		TrendStatus: TrendBull,
		SignalScore: 68,
		BuySignal:   SignalBuy,
	}
	m := r.Flatten()
	if m["code"] != "159636" {
		t.Errorf("unexpected code: %v", m["code"])
	}
	if m["trend_status"] != "多头排列" {
		t.Errorf("unexpected trend_status: %v", m["trend_status"])
	}
	if m["signal_score"] != 68 {
		t.Errorf("unexpected signal_score: %v", m["signal_score"])
	}
	if m["buy_signal"] != "买入" {
		t.Errorf("unexpected buy_signal: %v", m["buy_signal"])
	}
}
