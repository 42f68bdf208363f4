package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/sp-ops/spgroups/pkg/cli/config"
	"github.com/sp-ops/spgroups/pkg/service/directory"
	"github.com/sp-ops/spgroups/pkg/service/sharepoint"
	"github.com/sp-ops/spgroups/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdProvision() *cli.Command {
	var (
		manifestCfg config.Manifest
		azureCfg    config.Azure
		defaultsCfg config.Defaults
		slackCfg    config.Slack
	)

	flags := joinFlags(
		manifestCfg.Flags(),
		azureCfg.Flags(),
		defaultsCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "provision",
		Usage: "Provision site groups and directory group links from the manifest",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting spgroups",
				slog.Any("manifest", manifestCfg),
				slog.Any("azure", azureCfg),
				slog.Any("defaults", defaultsCfg),
				slog.Any("slack", slackCfg),
			)

			cred, err := azureCfg.Configure()
			if err != nil {
				return err
			}

			graph, err := azureCfg.ConfigureGraph(cred)
			if err != nil {
				return err
			}

			defaults, err := defaultsCfg.Configure()
			if err != nil {
				return err
			}

			uc := usecase.NewProvision(
				manifestCfg.Configure(),
				sharepoint.NewConnector(cred),
				directory.New(graph),
				defaults,
			)

			summary, err := uc.Run(ctx)
			if err != nil {
				// Fatal: the manifest could not be loaded. Row failures do
				// not reach this path; the run always completes so operators
				// can inspect the summary.
				return err
			}

			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				if err := notifier.NotifyRunSummary(ctx, summary); err != nil {
					logger.Warn("Failed to send run summary notification", "error", err)
				}
			}

			return nil
		},
	}
}
