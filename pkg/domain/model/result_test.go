package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

func TestRunSummaryFold(t *testing.T) {
	summary := model.NewRunSummary(types.NewRunID())

	row := model.ManifestRow{Site: "https://t.sharepoint.com/sites/a", GroupName: "Team A"}
	summary.Fold(model.Succeeded(row))
	summary.Fold(model.Succeeded(row))
	summary.Fold(model.Failed(row, goerr.New("remote call failed")))
	summary.Fold(model.Skipped(model.ManifestRow{}))

	gt.Equal(t, 2, summary.Succeeded)
	gt.Equal(t, 1, summary.Failed)
	gt.Equal(t, 1, summary.Skipped)
	gt.Equal(t, 3, summary.Processed())
}

func TestRunSummaryFinish(t *testing.T) {
	summary := model.NewRunSummary(types.NewRunID())
	finished := summary.Finish()

	gt.True(t, !finished.FinishedAt.IsZero())
	gt.True(t, !finished.FinishedAt.Before(finished.StartedAt))
}

func TestRowResultConstructors(t *testing.T) {
	row := model.ManifestRow{GroupName: "Team A"}

	ok := model.Succeeded(row)
	gt.Equal(t, model.RowSucceeded, ok.Status)
	gt.NoError(t, ok.Err)

	err := goerr.New("boom")
	failed := model.Failed(row, err)
	gt.Equal(t, model.RowFailed, failed.Status)
	gt.Equal[error](t, err, failed.Err)

	skipped := model.Skipped(row)
	gt.Equal(t, model.RowSkipped, skipped.Status)
}
