package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SiteURL represents a full SharePoint site URL
type SiteURL string

// String returns the string representation
func (u SiteURL) String() string {
	return string(u)
}

// IsBlank reports whether the URL is empty after trimming whitespace
func (u SiteURL) IsBlank() bool {
	return strings.TrimSpace(string(u)) == ""
}

// APIBase returns the site's REST API base URL
func (u SiteURL) APIBase() string {
	return strings.TrimRight(string(u), "/") + "/_api"
}

// PermissionLevel represents a named SharePoint permission level (role definition name)
type PermissionLevel string

// String returns the string representation
func (p PermissionLevel) String() string {
	return string(p)
}

// IsEmpty reports whether no permission level was specified
func (p PermissionLevel) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// SiteGroupID represents a SharePoint site group identifier (principal ID)
type SiteGroupID int

// Int returns the int representation
func (id SiteGroupID) Int() int {
	return int(id)
}

// String returns the string representation
func (id SiteGroupID) String() string {
	return fmt.Sprintf("%d", id)
}

// RoleDefinitionID represents a SharePoint role definition identifier
type RoleDefinitionID int

// Int returns the int representation
func (id RoleDefinitionID) Int() int {
	return int(id)
}

// DirectoryGroupID represents an Entra ID security group object ID
type DirectoryGroupID string

// String returns the string representation
func (id DirectoryGroupID) String() string {
	return string(id)
}

// claimsPrefix is the trusted claims provider prefix SharePoint Online uses
// for Entra ID security group principals.
const claimsPrefix = "c:0t.c|tenant|"

// LoginName represents a site-scoped principal login token
type LoginName string

// String returns the string representation
func (n LoginName) String() string {
	return string(n)
}

// ClaimsLogin builds the principal login token for the directory group
func (id DirectoryGroupID) ClaimsLogin() LoginName {
	return LoginName(claimsPrefix + string(id))
}

// RunID represents a single provisioning run identifier
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}
