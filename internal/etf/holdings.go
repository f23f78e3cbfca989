// Package etf maintains the static ETF constituent mapping (港股科技类) and
// expands ETF codes into their core holdings before analysis.
package etf

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Holding is one constituent position of an ETF.
type Holding struct {
	Code   string  `yaml:"code"`   // 带市场前缀，如 hk00700
	Name   string  `yaml:"name"`   // 股票名称
	Weight float64 `yaml:"weight"` // 权重（%）
	Sector string  `yaml:"sector"` // 所属行业
}

// Info holds basic metadata about a supported ETF.
type Info struct {
	Name        string `yaml:"name"`
	Index       string `yaml:"index"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// 港股科技类 ETF 成分股映射（手动维护，定期更新）。
// 数据来源：天天基金网、Wind、各 ETF 官网。
var holdingsMap = map[string][]Holding{
	// 港科技30 (159636) - 跟踪恒生科技指数前30只
	"159636": {
		{Code: "hk00700", Name: "腾讯控股", Weight: 30.5, Sector: "互联网"},
		{Code: "hk03690", Name: "美团", Weight: 15.2, Sector: "互联网"},
		{Code: "hk09988", Name: "阿里巴巴", Weight: 12.8, Sector: "互联网"},
		{Code: "hk01810", Name: "小米集团", Weight: 8.3, Sector: "消费电子"},
		{Code: "hk00981", Name: "中芯国际", Weight: 6.1, Sector: "半导体"},
		{Code: "hk01024", Name: "快手", Weight: 5.4, Sector: "互联网"},
		{Code: "hk02015", Name: "理想汽车", Weight: 4.2, Sector: "新能源车"},
		{Code: "hk09961", Name: "携程", Weight: 3.8, Sector: "互联网"},
		{Code: "hk09618", Name: "京东集团", Weight: 3.5, Sector: "互联网"},
		{Code: "hk01833", Name: "平安好医生", Weight: 2.1, Sector: "医疗"},
	},
	// 恒生科技 ETF (513180) - 华泰柏瑞南方东英
	"513180": {
		{Code: "hk00700", Name: "腾讯控股", Weight: 28.7, Sector: "互联网"},
		{Code: "hk09988", Name: "阿里巴巴", Weight: 14.5, Sector: "互联网"},
		{Code: "hk03690", Name: "美团", Weight: 13.8, Sector: "互联网"},
		{Code: "hk01024", Name: "快手", Weight: 6.2, Sector: "互联网"},
		{Code: "hk02015", Name: "理想汽车", Weight: 5.1, Sector: "新能源车"},
		{Code: "hk01810", Name: "小米集团", Weight: 4.9, Sector: "消费电子"},
		{Code: "hk00981", Name: "中芯国际", Weight: 4.6, Sector: "半导体"},
		{Code: "hk09618", Name: "京东集团", Weight: 4.3, Sector: "互联网"},
		{Code: "hk09961", Name: "携程", Weight: 3.2, Sector: "互联网"},
		{Code: "hk02359", Name: "药明生物", Weight: 2.8, Sector: "生物医药"},
	},
	// 易方达中证香港科技 (513050)
	"513050": {
		{Code: "hk00700", Name: "腾讯控股", Weight: 32.1, Sector: "互联网"},
		{Code: "hk03690", Name: "美团", Weight: 16.3, Sector: "互联网"},
		{Code: "hk09988", Name: "阿里巴巴", Weight: 11.2, Sector: "互联网"},
		{Code: "hk01810", Name: "小米集团", Weight: 9.1, Sector: "消费电子"},
		{Code: "hk09618", Name: "京东集团", Weight: 6.4, Sector: "互联网"},
		{Code: "hk00981", Name: "中芯国际", Weight: 5.8, Sector: "半导体"},
		{Code: "hk01024", Name: "快手", Weight: 4.7, Sector: "互联网"},
		{Code: "hk02015", Name: "理想汽车", Weight: 3.9, Sector: "新能源车"},
		{Code: "hk09961", Name: "携程", Weight: 3.2, Sector: "互联网"},
		{Code: "hk02382", Name: "舜宇光学", Weight: 2.5, Sector: "光学器件"},
	},
	// 恒生科技指数 ETF (159742) - 华安恒生科技
	"159742": {
		{Code: "hk00700", Name: "腾讯控股", Weight: 29.3, Sector: "互联网"},
		{Code: "hk09988", Name: "阿里巴巴", Weight: 13.9, Sector: "互联网"},
		{Code: "hk03690", Name: "美团", Weight: 14.2, Sector: "互联网"},
		{Code: "hk01024", Name: "快手", Weight: 5.8, Sector: "互联网"},
		{Code: "hk01810", Name: "小米集团", Weight: 5.2, Sector: "消费电子"},
		{Code: "hk00981", Name: "中芯国际", Weight: 4.9, Sector: "半导体"},
		{Code: "hk09618", Name: "京东集团", Weight: 4.5, Sector: "互联网"},
		{Code: "hk02015", Name: "理想汽车", Weight: 4.1, Sector: "新能源车"},
		{Code: "hk09961", Name: "携程", Weight: 3.4, Sector: "互联网"},
		{Code: "hk02359", Name: "药明生物", Weight: 2.6, Sector: "生物医药"},
	},
	// 恒生科技 ETF (513130) - 易方达恒生科技
	"513130": {
		{Code: "hk00700", Name: "腾讯控股", Weight: 28.5, Sector: "互联网"},
		{Code: "hk09988", Name: "阿里巴巴", Weight: 14.1, Sector: "互联网"},
		{Code: "hk03690", Name: "美团", Weight: 13.6, Sector: "互联网"},
		{Code: "hk01024", Name: "快手", Weight: 6.0, Sector: "互联网"},
		{Code: "hk02015", Name: "理想汽车", Weight: 5.3, Sector: "新能源车"},
		{Code: "hk01810", Name: "小米集团", Weight: 4.8, Sector: "消费电子"},
		{Code: "hk00981", Name: "中芯国际", Weight: 4.7, Sector: "半导体"},
		{Code: "hk09618", Name: "京东集团", Weight: 4.2, Sector: "互联网"},
		{Code: "hk09961", Name: "携程", Weight: 3.3, Sector: "互联网"},
		{Code: "hk02359", Name: "药明生物", Weight: 2.9, Sector: "生物医药"},
	},
}

var infoMap = map[string]Info{
	"159636": {Name: "港科技30", Index: "恒生科技指数", Type: "港股科技", Description: "跟踪恒生科技指数前30只成份股"},
	"513180": {Name: "恒生科技ETF", Index: "恒生科技指数", Type: "港股科技", Description: "华泰柏瑞南方东英恒生科技ETF"},
	"513050": {Name: "易方达中证香港科技", Index: "中证香港科技指数", Type: "港股科技", Description: "跟踪中证香港科技指数"},
	"513130": {Name: "易方达恒生科技", Index: "恒生科技指数", Type: "港股科技", Description: "易方达恒生科技ETF"},
	"159742": {Name: "华安恒生科技", Index: "恒生科技指数", Type: "港股科技", Description: "华安恒生科技ETF"},
}

// Manager answers constituent lookups. The zero-config manager serves the
// built-in table; extra holdings can be merged from a YAML file.
type Manager struct {
	holdings map[string][]Holding
	info     map[string]Info
}

// NewManager returns a Manager backed by the built-in table.
func NewManager() *Manager {
	return &Manager{holdings: holdingsMap, info: infoMap}
}

// holdingsFile is the on-disk override shape.
type holdingsFile struct {
	ETFs map[string]struct {
		Info     Info      `yaml:"info"`
		Holdings []Holding `yaml:"holdings"`
	} `yaml:"etfs"`
}

// NewManagerFromFile merges a YAML holdings file over the built-in table,
// letting operators refresh constituents without rebuilding.
func NewManagerFromFile(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holdings file: %w", err)
	}
	var f holdingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse holdings file: %w", err)
	}

	m := &Manager{
		holdings: make(map[string][]Holding, len(holdingsMap)+len(f.ETFs)),
		info:     make(map[string]Info, len(infoMap)+len(f.ETFs)),
	}
	for code, hs := range holdingsMap {
		m.holdings[code] = hs
	}
	for code, info := range infoMap {
		m.info[code] = info
	}
	for code, entry := range f.ETFs {
		m.holdings[code] = entry.Holdings
		if entry.Info.Name != "" {
			m.info[code] = entry.Info
		}
	}
	return m, nil
}

// IsSupportedETF reports whether the code has a constituent mapping.
func (m *Manager) IsSupportedETF(code string) bool {
	_, ok := m.holdings[code]
	return ok
}

// Holdings returns the constituents of an ETF; topN <= 0 returns all.
func (m *Manager) Holdings(code string, topN int) []Holding {
	hs := m.holdings[code]
	if topN > 0 && topN < len(hs) {
		hs = hs[:topN]
	}
	return hs
}

// HoldingCodes returns just the constituent codes.
func (m *Manager) HoldingCodes(code string, topN int) []string {
	hs := m.Holdings(code, topN)
	codes := make([]string, len(hs))
	for i, h := range hs {
		codes[i] = h.Code
	}
	return codes
}

// Info returns ETF metadata and whether the ETF is known.
func (m *Manager) Info(code string) (Info, bool) {
	info, ok := m.info[code]
	return info, ok
}

// FormatHoldingsSummary renders the top holdings for logs and reports.
func (m *Manager) FormatHoldingsSummary(code string, topN int) string {
	hs := m.Holdings(code, topN)
	if len(hs) == 0 {
		return fmt.Sprintf("%s: 无成分股数据", code)
	}
	name := code
	if info, ok := m.Info(code); ok {
		name = info.Name
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s 前%d大重仓股:\n", name, topN)
	for i, h := range hs {
		fmt.Fprintf(&b, "  %d. %s(%s) %.1f%%\n", i+1, h.Name, h.Code, h.Weight)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Expand replaces each supported ETF code with itself (when includeETF) plus
// its top constituents, deduping while preserving first-seen order. The
// second return value maps each expanded ETF to its constituent codes.
func (m *Manager) Expand(codes []string, topN int, includeETF bool) ([]string, map[string][]string) {
	var expanded []string
	mapping := make(map[string][]string)

	for _, code := range codes {
		if !m.IsSupportedETF(code) {
			expanded = append(expanded, code)
			continue
		}
		if includeETF {
			expanded = append(expanded, code)
		}
		hs := m.HoldingCodes(code, topN)
		expanded = append(expanded, hs...)
		mapping[code] = hs
		log.Printf("[INFO] ETF扩展 %s -> %d 只成分股", code, len(hs))
	}

	seen := make(map[string]bool, len(expanded))
	unique := expanded[:0]
	for _, code := range expanded {
		if seen[code] {
			continue
		}
		seen[code] = true
		unique = append(unique, code)
	}
	return unique, mapping
}
