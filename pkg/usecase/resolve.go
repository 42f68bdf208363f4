package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// Resolver maps a directory group display name to a directory group. Exact
// display-name match wins; alias (mail nickname) match is the fallback.
type Resolver struct {
	directory interfaces.DirectoryClient
}

// NewResolver creates a Resolver
func NewResolver(directory interfaces.DirectoryClient) *Resolver {
	return &Resolver{directory: directory}
}

// Resolve returns the directory group for the given display name. Transport
// and auth failures are logged and reported as ErrDirectoryGroupNotFound:
// resolution failure is never fatal to the run, only to the calling row.
func (r *Resolver) Resolve(ctx context.Context, name string) (*model.DirectoryGroup, error) {
	logger := ctxlog.From(ctx)

	matches, err := r.directory.FindGroupByDisplayName(ctx, name)
	if err != nil {
		logger.Error("Directory lookup by display name failed", "name", name, "error", err)
		return nil, goerr.Wrap(model.ErrDirectoryGroupNotFound, "directory lookup failed",
			goerr.V("name", name))
	}

	if len(matches) == 0 {
		matches, err = r.directory.FindGroupByMailNickname(ctx, name)
		if err != nil {
			logger.Error("Directory lookup by alias failed", "name", name, "error", err)
			return nil, goerr.Wrap(model.ErrDirectoryGroupNotFound, "directory lookup failed",
				goerr.V("name", name))
		}
	}

	if len(matches) == 0 {
		return nil, goerr.Wrap(model.ErrDirectoryGroupNotFound, "no matching directory group",
			goerr.V("name", name))
	}

	// Duplicate display names are possible in Entra ID. First match wins,
	// but the ambiguity is worth surfacing.
	if len(matches) > 1 {
		logger.Warn("Multiple directory groups matched, using first",
			"name", name,
			"matches", len(matches),
			"selectedID", matches[0].ID.String())
	}

	return matches[0], nil
}
