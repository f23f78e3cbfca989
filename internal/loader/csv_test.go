package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, dir, code, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, code+".csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "159636", `date,open,high,low,close,volume
2025-01-02,1.00,1.05,0.98,1.03,120000
2025-01-03,1.03,1.08,1.02,1.06,98000
2025-01-06,1.06,1.07,1.01,1.02,150000
`)

	series, err := NewLoader(dir).Load("159636")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Code != "159636" {
		t.Errorf("expected code 159636, got %s", series.Code)
	}
	if len(series.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(series.Bars))
	}
	b := series.Bars[1]
	if b.Open != 1.03 || b.High != 1.08 || b.Low != 1.02 || b.Close != 1.06 || b.Volume != 98000 {
		t.Errorf("unexpected bar: %+v", b)
	}
}

func TestLoad_UnsortedAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	// 乱序 + 重复日期（修正行在后）
	writeCSV(t, dir, "x", `2025-01-03,1,1,1,1.10,100
2025-01-02,1,1,1,1.00,100
2025-01-03,1,1,1,1.12,100
`)

	series, err := NewLoader(dir).Load("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 2 {
		t.Fatalf("expected 2 bars after dedupe, got %d", len(series.Bars))
	}
	if !series.Bars[0].Date.Before(series.Bars[1].Date) {
		t.Error("bars not sorted ascending")
	}
	if series.Bars[1].Close != 1.12 {
		t.Errorf("expected corrected row to win, got %.2f", series.Bars[1].Close)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load("nope")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open kline file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()

	writeCSV(t, dir, "badcols", "2025-01-02,1.0,1.1,0.9\n")
	if _, err := NewLoader(dir).Load("badcols"); err == nil {
		t.Error("expected error for short row")
	}

	writeCSV(t, dir, "baddate", "02/01/2025,1,1,1,1,100\n")
	if _, err := NewLoader(dir).Load("baddate"); err == nil {
		t.Error("expected error for bad date format")
	}

	writeCSV(t, dir, "badnum", "2025-01-02,1,1,1,abc,100\n")
	if _, err := NewLoader(dir).Load("badnum"); err == nil {
		t.Error("expected error for non-numeric close")
	}
}
