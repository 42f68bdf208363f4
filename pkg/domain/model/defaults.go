package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// DefaultGroupDescription is used when no defaults file overrides it
const DefaultGroupDescription = "Provisioned by spgroups"

// Defaults holds run-wide provisioning defaults, optionally loaded from a
// YAML file. Row values always win over defaults.
type Defaults struct {
	// GroupDescription is the description applied to newly created site groups
	GroupDescription string `yaml:"group_description"`

	// PermissionLevel is the fallback level for rows with an empty permission
	// column. Empty means no fallback: such rows skip the grant step.
	PermissionLevel string `yaml:"permission_level"`
}

// NewDefaults returns the built-in defaults
func NewDefaults() *Defaults {
	return &Defaults{
		GroupDescription: DefaultGroupDescription,
	}
}

// Validate validates the defaults configuration
func (d *Defaults) Validate() error {
	if d.GroupDescription == "" {
		return goerr.New("group_description must not be empty")
	}
	return nil
}

// EffectivePermission returns the row's permission level, falling back to the
// run-wide default when the row leaves it blank.
func (d *Defaults) EffectivePermission(row ManifestRow) types.PermissionLevel {
	if !row.PermissionLevel.IsEmpty() {
		return row.PermissionLevel
	}
	return types.PermissionLevel(d.PermissionLevel)
}
