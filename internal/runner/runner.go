// Package runner orchestrates one full analysis pass: symbol expansion,
// kline loading, concurrent scoring, report writing and snapshot recording.
package runner

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"TrendRadar/internal/analyzer"
	"TrendRadar/internal/etf"
	"TrendRadar/internal/loader"
	"TrendRadar/internal/model"
	"TrendRadar/internal/recorder"
	"TrendRadar/internal/report"
)

// Options controls a Runner's behavior.
type Options struct {
	Symbols     []string
	ExpandETF   bool
	ETFTopN     int
	IncludeETF  bool
	Concurrency int
	MaxBytes    int
}

// Runner wires the analysis pipeline together. All collaborators are safe
// for concurrent use, so symbols are processed in parallel.
type Runner struct {
	Analyzer *analyzer.Analyzer
	ETF      *etf.Manager
	Loader   *loader.Loader
	Writer   *report.Writer
	Recorder recorder.Recorder
	Opts     Options
}

// Outcome is the per-symbol result of a pass. Chunks holds the report split
// for size-capped delivery surfaces.
type Outcome struct {
	Code   string
	Result *model.AnalysisResult
	Report string
	Chunks []string
}

// RunAll analyzes every configured symbol (ETFs expanded to constituents)
// and returns the outcomes in input order. A symbol whose kline file is
// missing or malformed is logged and skipped; it never aborts the batch.
func (r *Runner) RunAll(ctx context.Context) []Outcome {
	codes := r.Opts.Symbols
	if r.Opts.ExpandETF && r.ETF != nil {
		codes, _ = r.ETF.Expand(codes, r.Opts.ETFTopN, r.Opts.IncludeETF)
	}
	log.Printf("[INFO] analyzing %d symbols", len(codes))

	outcomes := make([]Outcome, len(codes))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Opts.Concurrency)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out := r.runOne(code)
			mu.Lock()
			outcomes[i] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[WARN] analysis pass interrupted: %v", err)
	}

	kept := outcomes[:0]
	for _, o := range outcomes {
		if o.Result != nil {
			kept = append(kept, o)
		}
	}
	return kept
}

func (r *Runner) runOne(code string) Outcome {
	series, err := r.Loader.Load(code)
	if err != nil {
		log.Printf("[WARN] load kline for %s: %v", code, err)
		return Outcome{Code: code}
	}

	result := r.Analyzer.Analyze(series)
	text := report.Format(result)

	if r.Writer != nil {
		if _, err := r.Writer.Write(code, text); err != nil {
			log.Printf("[ERROR] write report for %s: %v", code, err)
		}
	}
	if r.Recorder != nil {
		if err := r.Recorder.RecordAnalysis(result); err != nil {
			log.Printf("[ERROR] record analysis for %s: %v", code, err)
		}
	}

	log.Printf("[INFO] %s: %s 评分=%d 建议=%s",
		code, result.TrendStatus, result.SignalScore, result.BuySignal)
	return Outcome{
		Code:   code,
		Result: result,
		Report: text,
		Chunks: report.SplitChunks(text, r.Opts.MaxBytes),
	}
}
