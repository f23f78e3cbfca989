package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Writer persists rendered reports under a base directory, one file per
// instrument per day.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer, creating the directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// Write stores the report and returns the file path.
func (w *Writer) Write(code, content string) (string, error) {
	name := fmt.Sprintf("%s_%s.md", code, time.Now().Format("2006-01-02"))
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	log.Printf("[INFO] report written: %s (%d bytes)", path, len(content))
	return path, nil
}

// ReadFile loads a previously written report from disk.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report file %s: %w", path, err)
	}
	return string(data), nil
}
