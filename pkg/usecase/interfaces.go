package usecase

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// ProvisionUseCase defines the interface for a provisioning run
type ProvisionUseCase interface {
	// Run executes the manifest row loop and returns the aggregate summary
	Run(ctx context.Context) (*model.RunSummary, error)
}

var _ ProvisionUseCase = (*Provision)(nil)
