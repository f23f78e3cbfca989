package recorder

import "TrendRadar/internal/model"

// Recorder persists analysis history.
type Recorder interface {
	RecordAnalysis(result *model.AnalysisResult) error
	Close() error
}
