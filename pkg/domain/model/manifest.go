package model

import (
	"log/slog"
	"strings"

	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// ManifestRow is one line of the provisioning manifest. Field meaning is
// positional in the source file: site URL, group name, permission level,
// directory group name.
type ManifestRow struct {
	Site               types.SiteURL
	GroupName          string
	PermissionLevel    types.PermissionLevel
	DirectoryGroupName string

	// Line is the 1-based line number in the source file, for log attribution
	Line int
}

// IsSkippable reports whether the row should be skipped without any remote
// calls. A row with a blank site URL or blank group name is neither a success
// nor an error.
func (r ManifestRow) IsSkippable() bool {
	return r.Site.IsBlank() || strings.TrimSpace(r.GroupName) == ""
}

// HasDirectoryGroup reports whether the row requests a membership link
func (r ManifestRow) HasDirectoryGroup() bool {
	return strings.TrimSpace(r.DirectoryGroupName) != ""
}

// LogValue returns structured log value
func (r ManifestRow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", r.Line),
		slog.String("site", r.Site.String()),
		slog.String("group", r.GroupName),
		slog.String("permission", r.PermissionLevel.String()),
		slog.String("directoryGroup", r.DirectoryGroupName),
	)
}
