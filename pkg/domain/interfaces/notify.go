package interfaces

//go:generate moq -out mocks/notify_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// Notifier posts the run summary to an external channel. Notification
// failures are logged by callers and never affect the run outcome.
type Notifier interface {
	NotifyRunSummary(ctx context.Context, summary *model.RunSummary) error
}
