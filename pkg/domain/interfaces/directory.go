package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// DirectoryClient queries the identity directory for security groups.
// Both lookups return an empty slice when nothing matches; errors are
// reserved for transport and auth failures.
type DirectoryClient interface {
	// FindGroupByDisplayName finds a group by exact display name
	FindGroupByDisplayName(ctx context.Context, name string) ([]*model.DirectoryGroup, error)

	// FindGroupByMailNickname finds a group by alias (mail nickname)
	FindGroupByMailNickname(ctx context.Context, name string) ([]*model.DirectoryGroup, error)
}
