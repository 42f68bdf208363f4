package config

import (
	"log/slog"

	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Slack holds the optional Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for run summary notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPGROUPS_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel to receive the run summary",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPGROUPS_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notification is enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates a notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) interfaces.Notifier {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, run summary notification disabled")
		return nil
	}
	return notify.NewSlack(s.OAuthToken, s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
