package model

import "github.com/sp-ops/spgroups/pkg/domain/types"

// DirectoryGroup is an Entra ID security group. Owned by the directory
// service; read-only to this tool.
type DirectoryGroup struct {
	ID           types.DirectoryGroupID
	DisplayName  string
	MailNickname string
}

// SiteGroup is a SharePoint site access-control group. Owned by the target
// site; values here are call-scoped snapshots, never a local copy of remote
// state.
type SiteGroup struct {
	ID          types.SiteGroupID
	Title       string
	Description string
}
