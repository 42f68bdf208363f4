package model

import (
	"log/slog"
	"time"

	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// RowStatus is the outcome of processing a single manifest row
type RowStatus string

const (
	RowSucceeded RowStatus = "succeeded"
	RowFailed    RowStatus = "failed"
	RowSkipped   RowStatus = "skipped"
)

// RowResult is the typed outcome of one manifest row. Row processing never
// lets an error escape the row boundary; failures are carried here and folded
// by the run controller.
type RowResult struct {
	Row    ManifestRow
	Status RowStatus
	Err    error
}

// Succeeded builds a success result for the row
func Succeeded(row ManifestRow) RowResult {
	return RowResult{Row: row, Status: RowSucceeded}
}

// Failed builds a failure result for the row
func Failed(row ManifestRow, err error) RowResult {
	return RowResult{Row: row, Status: RowFailed, Err: err}
}

// Skipped builds a skipped result for the row
func Skipped(row ManifestRow) RowResult {
	return RowResult{Row: row, Status: RowSkipped}
}

// RunSummary accumulates row results across a provisioning run
type RunSummary struct {
	RunID      types.RunID
	Succeeded  int
	Failed     int
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunSummary creates a summary for a run starting now
func NewRunSummary(runID types.RunID) *RunSummary {
	return &RunSummary{
		RunID:     runID,
		StartedAt: time.Now(),
	}
}

// Fold accumulates one row result
func (s *RunSummary) Fold(result RowResult) {
	switch result.Status {
	case RowSucceeded:
		s.Succeeded++
	case RowFailed:
		s.Failed++
	case RowSkipped:
		s.Skipped++
	}
}

// Finish records the completion time and returns the summary
func (s *RunSummary) Finish() *RunSummary {
	s.FinishedAt = time.Now()
	return s
}

// Processed returns the number of rows that reached the provisioner
func (s *RunSummary) Processed() int {
	return s.Succeeded + s.Failed
}

// LogValue returns structured log value
func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("runID", s.RunID.String()),
		slog.Int("succeeded", s.Succeeded),
		slog.Int("failed", s.Failed),
		slog.Int("skipped", s.Skipped),
		slog.Duration("elapsed", s.FinishedAt.Sub(s.StartedAt)),
	)
}
