package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Defaults holds the optional provisioning defaults file configuration
type Defaults struct {
	Path string
}

// Flags returns CLI flags for Defaults configuration
func (d *Defaults) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "defaults",
			Usage:       "Path to a YAML file with provisioning defaults (group description, fallback permission level)",
			Category:    "Input",
			Sources:     cli.EnvVars("SPGROUPS_DEFAULTS"),
			Destination: &d.Path,
		},
	}
}

// Configure loads the defaults file, or returns the built-in defaults when no
// file is given. Fields left empty in the file keep their built-in values.
func (d *Defaults) Configure() (*model.Defaults, error) {
	defaults := model.NewDefaults()
	if d.Path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read defaults file", goerr.V("path", d.Path))
	}

	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, goerr.Wrap(err, "failed to parse defaults file", goerr.V("path", d.Path))
	}
	if defaults.GroupDescription == "" {
		defaults.GroupDescription = model.DefaultGroupDescription
	}

	if err := defaults.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid defaults file", goerr.V("path", d.Path))
	}
	return defaults, nil
}

// LogValue returns structured log value
func (d Defaults) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
	)
}
