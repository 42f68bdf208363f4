package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// Provision runs the manifest row loop: one site session per row, results
// folded into an explicit accumulator. Row errors never cross the row
// boundary; only a manifest load failure is returned as an error.
type Provision struct {
	manifest interfaces.ManifestSource
	sites    interfaces.SiteConnector
	resolver *Resolver
	defaults *model.Defaults
}

// NewProvision creates the provisioning use case
func NewProvision(
	manifest interfaces.ManifestSource,
	sites interfaces.SiteConnector,
	directory interfaces.DirectoryClient,
	defaults *model.Defaults,
) *Provision {
	if defaults == nil {
		defaults = model.NewDefaults()
	}
	return &Provision{
		manifest: manifest,
		sites:    sites,
		resolver: NewResolver(directory),
		defaults: defaults,
	}
}

// Run executes the whole provisioning run and returns the summary. The error
// return is non-nil only when the manifest cannot be loaded; individual row
// failures are counted in the summary and logged.
func (u *Provision) Run(ctx context.Context) (*model.RunSummary, error) {
	runID := types.NewRunID()
	logger := ctxlog.From(ctx).With("runID", runID.String())
	ctx = ctxlog.With(ctx, logger)

	rows, err := u.manifest.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load manifest")
	}

	logger.Info("Starting provisioning run", "rows", len(rows))
	summary := model.NewRunSummary(runID)

	for _, row := range rows {
		if row.IsSkippable() {
			logger.Info("Skipping row with blank site or group name", "row", row)
			summary.Fold(model.Skipped(row))
			continue
		}

		result := u.processRow(ctx, row)
		if result.Status == model.RowFailed {
			logger.Error("Row failed", "row", row, "error", result.Err)
		} else {
			logger.Info("Row succeeded", "row", row, "status", "success")
		}
		summary.Fold(result)
	}

	summary.Finish()
	logger.Info("Provisioning run completed", "summary", summary)
	return summary, nil
}

// processRow makes the remote site's access-control state match one manifest
// row. Each step is a distinct remote write with no rollback on partial
// failure; a re-run converges because creation is preceded by an existence
// check.
func (u *Provision) processRow(ctx context.Context, row model.ManifestRow) model.RowResult {
	logger := ctxlog.From(ctx)

	session, err := u.sites.Open(ctx, row.Site)
	if err != nil {
		return model.Failed(row, goerr.Wrap(err, "failed to open site session",
			goerr.V("site", row.Site)))
	}
	// Teardown happens on every exit path: success, skip, or error
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("Failed to close site session", "site", row.Site, "error", err)
		}
	}()

	group, err := session.FindGroup(ctx, row.GroupName)
	if err != nil {
		return model.Failed(row, goerr.Wrap(err, "failed to look up site group"))
	}
	if group != nil {
		logger.Info("Site group already exists, skipping creation",
			"site", row.Site, "group", row.GroupName, "groupID", group.ID)
	} else {
		group, err = session.CreateGroup(ctx, row.GroupName, u.defaults.GroupDescription)
		if err != nil {
			return model.Failed(row, goerr.Wrap(err, "failed to create site group"))
		}
		logger.Info("Created site group",
			"site", row.Site, "group", row.GroupName, "groupID", group.ID, "status", "success")
	}

	if level := u.defaults.EffectivePermission(row); !level.IsEmpty() {
		if err := session.GrantPermission(ctx, group.ID, level); err != nil {
			return model.Failed(row, goerr.Wrap(err, "failed to grant permission level"))
		}
		logger.Info("Granted permission level",
			"site", row.Site, "group", row.GroupName, "level", level)
	}

	if row.HasDirectoryGroup() {
		dirGroup, err := u.resolver.Resolve(ctx, row.DirectoryGroupName)
		if err != nil {
			// Membership step is skipped; the row is an error but the run
			// continues with the next row.
			return model.Failed(row, err)
		}

		login := dirGroup.ID.ClaimsLogin()
		if err := session.AddMember(ctx, group.ID, login); err != nil {
			return model.Failed(row, goerr.Wrap(err, "failed to add directory group member",
				goerr.V("login", login)))
		}
		logger.Info("Linked directory group as member",
			"site", row.Site, "group", row.GroupName,
			"directoryGroup", row.DirectoryGroupName, "login", login)
	}

	return model.Succeeded(row)
}
