// Package report renders analysis results as human-readable text and manages
// report files on disk.
package report

import (
	"fmt"
	"strings"

	"TrendRadar/internal/model"
)

// Format renders the full text report for one analysis result.
func Format(r *model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s 趋势分析 ===\n\n", r.Code)

	fmt.Fprintf(&b, "📊 趋势判断: %s\n", r.TrendStatus)
	fmt.Fprintf(&b, "   均线排列: %s\n", r.MAAlignment)
	fmt.Fprintf(&b, "   趋势强度: %.0f/100\n\n", r.TrendStrength)

	b.WriteString("📈 均线数据:\n")
	fmt.Fprintf(&b, "   现价: %.2f\n", r.CurrentPrice)
	fmt.Fprintf(&b, "   MA5:  %.2f (乖离 %+.2f%%)\n", r.MA5, r.BiasMA5)
	fmt.Fprintf(&b, "   MA10: %.2f (乖离 %+.2f%%)\n", r.MA10, r.BiasMA10)
	fmt.Fprintf(&b, "   MA20: %.2f (乖离 %+.2f%%)\n\n", r.MA20, r.BiasMA20)

	fmt.Fprintf(&b, "📊 量能分析: %s\n", r.VolumeStatus)
	fmt.Fprintf(&b, "   量比(vs5日): %.2f\n", r.VolumeRatio5d)
	fmt.Fprintf(&b, "   量能趋势: %s\n\n", r.VolumeTrend)

	fmt.Fprintf(&b, "📈 MACD指标: %s\n", r.MACDStatus)
	fmt.Fprintf(&b, "   DIF: %.4f\n", r.MACDDIF)
	fmt.Fprintf(&b, "   DEA: %.4f\n", r.MACDDEA)
	fmt.Fprintf(&b, "   MACD: %.4f\n", r.MACDBar)
	fmt.Fprintf(&b, "   信号: %s\n\n", r.MACDSignal)

	fmt.Fprintf(&b, "📊 RSI指标: %s\n", r.RSIStatus)
	fmt.Fprintf(&b, "   RSI(6): %.1f\n", r.RSI6)
	fmt.Fprintf(&b, "   RSI(12): %.1f\n", r.RSI12)
	fmt.Fprintf(&b, "   RSI(24): %.1f\n", r.RSI24)
	fmt.Fprintf(&b, "   信号: %s\n\n", r.RSISignal)

	fmt.Fprintf(&b, "📈 KDJ指标: %s\n", r.KDJStatus)
	fmt.Fprintf(&b, "   K: %.1f D: %.1f J: %.1f\n", r.KDJK, r.KDJD, r.KDJJ)
	fmt.Fprintf(&b, "   信号: %s\n\n", r.KDJSignal)

	fmt.Fprintf(&b, "📊 BOLL通道: %s\n", r.BollStatus)
	fmt.Fprintf(&b, "   上轨: %.2f 中轨: %.2f 下轨: %.2f\n", r.BollUpper, r.BollMid, r.BollLower)
	fmt.Fprintf(&b, "   信号: %s\n", r.BollSignal)
	if r.OBVTrend != "" {
		fmt.Fprintf(&b, "   %s\n", r.OBVTrend)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "🎯 操作建议: %s\n", r.BuySignal)
	fmt.Fprintf(&b, "   综合评分: %d/100\n", r.SignalScore)

	if len(r.SignalReasons) > 0 {
		b.WriteString("\n✅ 买入理由:\n")
		for _, reason := range r.SignalReasons {
			fmt.Fprintf(&b, "   %s\n", reason)
		}
	}
	if len(r.RiskFactors) > 0 {
		b.WriteString("\n⚠️ 风险因素:\n")
		for _, risk := range r.RiskFactors {
			fmt.Fprintf(&b, "   %s\n", risk)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// SplitChunks splits content on line boundaries so that each chunk stays
// within maxBytes. A single line longer than maxBytes becomes its own chunk
// rather than being cut mid-rune.
func SplitChunks(content string, maxBytes int) []string {
	if maxBytes <= 0 || len(content) <= maxBytes {
		return []string{content}
	}

	var chunks []string
	var cur strings.Builder
	for _, line := range strings.Split(content, "\n") {
		need := len(line)
		if cur.Len() > 0 {
			need += cur.Len() + 1
		}
		if need > maxBytes && cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
