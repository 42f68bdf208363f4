package repository

import (
	"context"

	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
)

// Memory implements ManifestSource over an in-memory row list
type Memory struct {
	rows []model.ManifestRow
}

// NewMemory creates a manifest source backed by the given rows
func NewMemory(rows []model.ManifestRow) interfaces.ManifestSource {
	return &Memory{rows: rows}
}

// Load returns a copy of the configured rows
func (m *Memory) Load(ctx context.Context) ([]model.ManifestRow, error) {
	if len(m.rows) == 0 {
		return nil, model.ErrManifestEmpty
	}

	rows := make([]model.ManifestRow, len(m.rows))
	copy(rows, m.rows)
	return rows, nil
}
