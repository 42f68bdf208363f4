package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrManifestEmpty          = goerr.New("manifest has no data rows")
	ErrDirectoryGroupNotFound = goerr.New("directory group not found")
	ErrRoleDefinitionNotFound = goerr.New("role definition not found on site")
)
