package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbols []string `yaml:"symbols"`
	Weights []int    `yaml:"weights"` // 趋势,乖离,量能,支撑,MACD,RSI,KDJ,BOLL
	ETF     struct {
		Expand       bool   `yaml:"expand"`
		TopN         int    `yaml:"top_n"`
		IncludeETF   bool   `yaml:"include_etf"`
		HoldingsFile string `yaml:"holdings_file"`
	} `yaml:"etf"`
	Data struct {
		KlineDir   string `yaml:"kline_dir"`
		ReportsDir string `yaml:"reports_dir"`
	} `yaml:"data"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Report struct {
		MaxBytes    int `yaml:"max_bytes"`
		Concurrency int `yaml:"concurrency"`
	} `yaml:"report"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = splitList(v)
	}
	if v := os.Getenv("SCORE_WEIGHTS"); v != "" {
		cfg.Weights = parseIntList(v)
	}
	if v := os.Getenv("KLINE_DIR"); v != "" {
		cfg.Data.KlineDir = v
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.Data.ReportsDir = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ETF_HOLDINGS_FILE"); v != "" {
		cfg.ETF.HoldingsFile = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"159636"}
	}
	if cfg.ETF.TopN == 0 {
		cfg.ETF.TopN = 5
	}
	if cfg.Data.KlineDir == "" {
		cfg.Data.KlineDir = "data/kline"
	}
	if cfg.Data.ReportsDir == "" {
		cfg.Data.ReportsDir = "reports"
	}
	if cfg.Schedule.DailyCron == "" {
		// 工作日收盘后
		cfg.Schedule.DailyCron = "0 30 15 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trendradar.db"
	}
	if cfg.Report.MaxBytes == 0 {
		cfg.Report.MaxBytes = 20480
	}
	if cfg.Report.Concurrency == 0 {
		cfg.Report.Concurrency = 4
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols is required")
	}
	if c.Data.KlineDir == "" {
		return fmt.Errorf("data.kline_dir is required")
	}
	if c.Report.Concurrency <= 0 {
		return fmt.Errorf("report.concurrency must be positive")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseIntList parses "28,18,12,8,12,7,8,7". A malformed list returns nil,
// which downstream treats as "use the defaults".
func parseIntList(v string) []int {
	parts := splitList(v)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}
