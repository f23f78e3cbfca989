package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if len(cfg.Symbols) != 1 || cfg.Symbols[0] != "159636" {
		t.Errorf("unexpected default symbols: %v", cfg.Symbols)
	}
	if cfg.ETF.TopN != 5 {
		t.Errorf("expected default top_n 5, got %d", cfg.ETF.TopN)
	}
	if cfg.Data.KlineDir != "data/kline" || cfg.Data.ReportsDir != "reports" {
		t.Errorf("unexpected default dirs: %s %s", cfg.Data.KlineDir, cfg.Data.ReportsDir)
	}
	if cfg.Schedule.DailyCron != "0 30 15 * * 1-5" {
		t.Errorf("unexpected default cron: %s", cfg.Schedule.DailyCron)
	}
	if cfg.Report.Concurrency != 4 {
		t.Errorf("expected default concurrency 4, got %d", cfg.Report.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `symbols:
  - "513180"
  - hk00700
weights: [30, 16, 12, 8, 12, 7, 8, 7]
etf:
  expand: true
  top_n: 3
  include_etf: true
data:
  kline_dir: /tmp/kline
database:
  sqlite_path: ""
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[1] != "hk00700" {
		t.Errorf("unexpected symbols: %v", cfg.Symbols)
	}
	if len(cfg.Weights) != 8 || cfg.Weights[0] != 30 {
		t.Errorf("unexpected weights: %v", cfg.Weights)
	}
	if !cfg.ETF.Expand || cfg.ETF.TopN != 3 || !cfg.ETF.IncludeETF {
		t.Errorf("unexpected etf config: %+v", cfg.ETF)
	}
	if cfg.Data.KlineDir != "/tmp/kline" {
		t.Errorf("unexpected kline dir: %s", cfg.Data.KlineDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYMBOLS", "159742, 513050")
	t.Setenv("SCORE_WEIGHTS", "28,18,12,8,12,7,8,7")
	t.Setenv("CRON_DAILY", "0 0 16 * * *")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "159742" || cfg.Symbols[1] != "513050" {
		t.Errorf("unexpected symbols: %v", cfg.Symbols)
	}
	if len(cfg.Weights) != 8 || cfg.Weights[1] != 18 {
		t.Errorf("unexpected weights: %v", cfg.Weights)
	}
	if cfg.Schedule.DailyCron != "0 0 16 * * *" {
		t.Errorf("unexpected cron: %s", cfg.Schedule.DailyCron)
	}
}

func TestParseIntList(t *testing.T) {
	if got := parseIntList("1, 2,3"); len(got) != 3 || got[2] != 3 {
		t.Errorf("unexpected result: %v", got)
	}
	if got := parseIntList("1,x,3"); got != nil {
		t.Errorf("malformed list must return nil, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Symbols: []string{"a"}}
	cfg.Data.KlineDir = "data/kline"
	cfg.Report.Concurrency = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Symbols = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty symbols")
	}
}
