package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// Slack posts run summaries to a Slack channel
type Slack struct {
	client  *slack.Client
	channel string
}

// NewSlack creates a Slack notifier
func NewSlack(token, channel string) interfaces.Notifier {
	return &Slack{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyRunSummary posts the run summary to the configured channel
func (s *Slack) NotifyRunSummary(ctx context.Context, summary *model.RunSummary) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(FormatSummary(summary), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post run summary to Slack",
			goerr.V("channel", s.channel),
			goerr.V("runID", summary.RunID))
	}
	return nil
}

// FormatSummary renders the run summary as a Slack message line
func FormatSummary(summary *model.RunSummary) string {
	icon := ":white_check_mark:"
	if summary.Failed > 0 {
		icon = ":warning:"
	}
	return fmt.Sprintf("%s spgroups run `%s` finished: %d succeeded, %d failed, %d skipped (%s)",
		icon,
		summary.RunID.String(),
		summary.Succeeded,
		summary.Failed,
		summary.Skipped,
		summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond),
	)
}
