package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"TrendRadar/internal/analyzer"
	"TrendRadar/internal/config"
	"TrendRadar/internal/etf"
	"TrendRadar/internal/loader"
	"TrendRadar/internal/recorder"
	"TrendRadar/internal/report"
	"TrendRadar/internal/runner"
	"TrendRadar/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendRadar starting...")

	// .env is optional; real env vars take precedence either way.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] .env loaded")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init ETF holdings manager
	var em *etf.Manager
	if cfg.ETF.HoldingsFile != "" {
		em, err = etf.NewManagerFromFile(cfg.ETF.HoldingsFile)
		if err != nil {
			log.Fatalf("[FATAL] load ETF holdings: %v", err)
		}
	} else {
		em = etf.NewManager()
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init report writer
	rw, err := report.NewWriter(cfg.Data.ReportsDir)
	if err != nil {
		log.Fatalf("[FATAL] init report writer: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &runner.Runner{
		Analyzer: analyzer.New(cfg.Weights),
		ETF:      em,
		Loader:   loader.NewLoader(cfg.Data.KlineDir),
		Writer:   rw,
		Recorder: rec,
		Opts: runner.Options{
			Symbols:     cfg.Symbols,
			ExpandETF:   cfg.ETF.Expand,
			ETFTopN:     cfg.ETF.TopN,
			IncludeETF:  cfg.ETF.IncludeETF,
			Concurrency: cfg.Report.Concurrency,
			MaxBytes:    cfg.Report.MaxBytes,
		},
	}

	sched := scheduler.NewScheduler(ctx, r)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] TrendRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendRadar stopped")
}
