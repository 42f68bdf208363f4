package interfaces

//go:generate moq -out mocks/manifest_mock.go -pkg mocks . ManifestSource

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// ManifestSource loads the provisioning manifest. Load is restartable:
// calling it again yields the same rows in the same order.
type ManifestSource interface {
	Load(ctx context.Context) ([]model.ManifestRow, error)
}
