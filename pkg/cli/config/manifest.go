package config

import (
	"log/slog"

	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Manifest holds manifest input configuration
type Manifest struct {
	Path      string
	TenantURL string
}

// Flags returns CLI flags for Manifest configuration
func (m *Manifest) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to the CSV manifest (site URL, group name, permission level, directory group name)",
			Category:    "Input",
			Required:    true,
			Sources:     cli.EnvVars("SPGROUPS_MANIFEST"),
			Destination: &m.Path,
		},
		&cli.StringFlag{
			Name:        "tenant-url",
			Usage:       "Base tenant site URL, for run logs only; each row carries its own site URL",
			Category:    "Input",
			Required:    true,
			Sources:     cli.EnvVars("SPGROUPS_TENANT_URL"),
			Destination: &m.TenantURL,
		},
	}
}

// Configure creates the manifest source
func (m *Manifest) Configure() interfaces.ManifestSource {
	return repository.NewCSV(m.Path)
}

// LogValue returns structured log value
func (m Manifest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", m.Path),
		slog.String("tenant_url", m.TenantURL),
	)
}
