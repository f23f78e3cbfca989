// Package loader reads kline CSV files from a data directory into price
// series. The directory is refreshed by external tooling; nothing here
// touches the network.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"TrendRadar/internal/model"
)

const dateLayout = "2006-01-02"

// Loader resolves symbol codes to CSV files under a base directory.
type Loader struct {
	DataDir string
}

// NewLoader creates a Loader rooted at dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{DataDir: dataDir}
}

// Load reads <dataDir>/<code>.csv into a PriceSeries.
func (l *Loader) Load(code string) (*model.PriceSeries, error) {
	path := filepath.Join(l.DataDir, code+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kline file: %w", err)
	}
	defer f.Close()

	bars, err := readBars(f)
	if err != nil {
		return nil, fmt.Errorf("parse kline file %s: %w", path, err)
	}
	return &model.PriceSeries{
		Code:     code,
		Bars:     bars,
		LoadedAt: time.Now(),
	}, nil
}

// readBars parses CSV rows of the form date,open,high,low,close,volume.
// A header row is detected and skipped. Bars come back sorted ascending by
// date with duplicate dates collapsed to the last occurrence.
func readBars(r io.Reader) ([]model.PriceBar, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var bars []model.PriceBar
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(record) < 6 {
			return nil, fmt.Errorf("line %d: expected 6 columns, got %d", line, len(record))
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			continue
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date: %w", line, err)
		}
		vals := make([]float64, 5)
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse column %d: %w", line, i+2, err)
			}
			vals[i] = v
		}
		bars = append(bars, model.PriceBar{
			Date:   date,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	deduped := bars[:0]
	for _, b := range bars {
		if len(deduped) > 0 && deduped[len(deduped)-1].Date.Equal(b.Date) {
			deduped[len(deduped)-1] = b
			continue
		}
		deduped = append(deduped, b)
	}
	return deduped, nil
}
