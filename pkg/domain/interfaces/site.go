package interfaces

//go:generate moq -out mocks/site_mock.go -pkg mocks . SiteConnector SiteSession

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// SiteConnector opens authenticated sessions against SharePoint sites.
// A session is opened per manifest row and closed before the next row.
type SiteConnector interface {
	Open(ctx context.Context, site types.SiteURL) (SiteSession, error)
}

// SiteSession is a scoped connection to a single site. Close must be called
// on every exit path; all other operations are remote calls against the
// session's site.
type SiteSession interface {
	// FindGroup looks up a site group by title. Returns nil when absent.
	FindGroup(ctx context.Context, title string) (*model.SiteGroup, error)

	// CreateGroup creates a site group with the given title and description
	CreateGroup(ctx context.Context, title, description string) (*model.SiteGroup, error)

	// GrantPermission assigns the named permission level to the group
	GrantPermission(ctx context.Context, groupID types.SiteGroupID, level types.PermissionLevel) error

	// AddMember adds a principal to the group by login token
	AddMember(ctx context.Context, groupID types.SiteGroupID, login types.LoginName) error

	// Close tears down the session
	Close() error
}
