package analyzer

import (
	"math"

	"TrendRadar/internal/model"
)

// indicatorTable holds one aligned column of derived values per bar.
// Every column is a pure function of the bar prefix ending at that index;
// entries inside a rolling warm-up window are NaN (RSI warm-ups are filled
// with the neutral 50 instead, matching the scoring defaults).
type indicatorTable struct {
	closes  []float64
	highs   []float64
	lows    []float64
	volumes []float64

	ma5  []float64
	ma10 []float64
	ma20 []float64
	ma60 []float64

	dif []float64
	dea []float64
	bar []float64

	rsi6  []float64
	rsi12 []float64
	rsi24 []float64

	kdjK []float64
	kdjD []float64
	kdjJ []float64

	bollUpper []float64
	bollMid   []float64
	bollLower []float64

	obv []float64
}

func buildTable(bars []model.PriceBar) *indicatorTable {
	n := len(bars)
	t := &indicatorTable{
		closes:  make([]float64, n),
		highs:   make([]float64, n),
		lows:    make([]float64, n),
		volumes: make([]float64, n),
	}
	for i, b := range bars {
		t.closes[i] = b.Close
		t.highs[i] = b.High
		t.lows[i] = b.Low
		t.volumes[i] = b.Volume
	}

	// 均线
	t.ma5 = rollingMean(t.closes, 5)
	t.ma10 = rollingMean(t.closes, 10)
	t.ma20 = rollingMean(t.closes, 20)
	if n >= 60 {
		t.ma60 = rollingMean(t.closes, 60)
	} else {
		// 数据不足时使用 MA20 替代
		t.ma60 = t.ma20
	}

	// MACD: DIF = EMA(12) - EMA(26), DEA = EMA(DIF, 9), BAR = (DIF-DEA)*2
	emaFast := ema(t.closes, macdFast)
	emaSlow := ema(t.closes, macdSlow)
	t.dif = make([]float64, n)
	for i := range t.dif {
		t.dif[i] = emaFast[i] - emaSlow[i]
	}
	t.dea = ema(t.dif, macdSignalSpan)
	t.bar = make([]float64, n)
	for i := range t.bar {
		t.bar[i] = (t.dif[i] - t.dea[i]) * 2
	}

	t.rsi6 = rsiColumn(t.closes, rsiShort)
	t.rsi12 = rsiColumn(t.closes, rsiMid)
	t.rsi24 = rsiColumn(t.closes, rsiLong)

	t.kdjK, t.kdjD, t.kdjJ = kdjColumns(t.highs, t.lows, t.closes)

	t.bollMid = rollingMean(t.closes, bollPeriod)
	std := rollingStd(t.closes, bollPeriod)
	t.bollUpper = make([]float64, n)
	t.bollLower = make([]float64, n)
	for i := range t.bollMid {
		t.bollUpper[i] = t.bollMid[i] + bollStdMult*std[i]
		t.bollLower[i] = t.bollMid[i] - bollStdMult*std[i]
	}

	t.obv = obvColumn(t.closes, t.volumes)

	return t
}

// rollingMean computes the trailing arithmetic mean over the last `window`
// values; indices with less history are NaN.
func rollingMean(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	var sum float64
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// rollingStd computes the trailing sample standard deviation (n-1 divisor).
// Warm-up entries are 0, so the band collapses onto a NaN midline there.
func rollingStd(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		if i < window-1 {
			out[i] = 0
			continue
		}
		win := vals[i-window+1 : i+1]
		var mean float64
		for _, v := range win {
			mean += v
		}
		mean /= float64(window)
		var sq float64
		for _, v := range win {
			d := v - mean
			sq += d * d
		}
		out[i] = math.Sqrt(sq / float64(window-1))
	}
	return out
}

// ema computes the recursive exponential moving average with span-based
// smoothing (alpha = 2/(span+1)), seeded at the first value rather than a
// simple-average warm-up.
func ema(vals []float64, span int) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = out[i-1] + alpha*(vals[i]-out[i-1])
	}
	return out
}

// ewm computes the recursive exponential average with an explicit alpha,
// seeded at the first value.
func ewm(vals []float64, alpha float64) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = out[i-1] + alpha*(vals[i]-out[i-1])
	}
	return out
}

// rsiColumn computes RSI over a trailing window of day-over-day changes.
// RS = avg gain / avg loss; RSI = 100 - 100/(1+RS). A zero average loss
// yields 100 when gains exist and the neutral 50 when the window is flat;
// warm-up entries are also 50.
func rsiColumn(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		if i < period {
			out[i] = 50
			continue
		}
		var gain, loss float64
		for j := i - period + 1; j <= i; j++ {
			change := closes[j] - closes[j-1]
			if change > 0 {
				gain += change
			} else {
				loss -= change
			}
		}
		avgGain := gain / float64(period)
		avgLoss := loss / float64(period)
		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = 50
		case avgLoss == 0:
			out[i] = 100
		default:
			rs := avgGain / avgLoss
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out
}

// kdjColumns computes RSV over a trailing 9-bar high/low range, then K and D
// by recursive 1/3 smoothing and J = 3K - 2D. A zero range (and the warm-up
// window) defaults RSV to 50.
func kdjColumns(highs, lows, closes []float64) (k, d, j []float64) {
	n := len(closes)
	rsv := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < kdjN-1 {
			rsv[i] = 50
			continue
		}
		hi := math.Inf(-1)
		lo := math.Inf(1)
		for p := i - kdjN + 1; p <= i; p++ {
			if highs[p] > hi {
				hi = highs[p]
			}
			if lows[p] < lo {
				lo = lows[p]
			}
		}
		if hi == lo {
			rsv[i] = 50
		} else {
			rsv[i] = (closes[i] - lo) / (hi - lo) * 100
		}
	}
	k = ewm(rsv, 1.0/float64(kdjM1))
	d = ewm(k, 1.0/float64(kdjM2))
	j = make([]float64, n)
	for i := 0; i < n; i++ {
		j[i] = 3*k[i] - 2*d[i]
	}
	return k, d, j
}

// obvColumn computes the running signed volume sum: volume is added on an up
// close, subtracted on a down close, unchanged when flat. The first bar
// contributes zero.
func obvColumn(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}
