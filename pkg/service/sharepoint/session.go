package sharepoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// Session is a scoped REST connection to a single site
type Session struct {
	site       types.SiteURL
	token      string
	httpClient *http.Client
}

type siteGroupPayload struct {
	ID          int    `json:"Id"`
	Title       string `json:"Title"`
	Description string `json:"Description"`
}

type siteGroupListPayload struct {
	Value []siteGroupPayload `json:"value"`
}

type roleDefinitionPayload struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

type roleDefinitionListPayload struct {
	Value []roleDefinitionPayload `json:"value"`
}

// ping verifies the session can read the site web
func (s *Session) ping(ctx context.Context) error {
	var web struct {
		Title string `json:"Title"`
	}
	if err := s.get(ctx, "/web?$select=Title", &web); err != nil {
		return goerr.Wrap(err, "failed to open site session", goerr.V("site", s.site))
	}
	return nil
}

// FindGroup looks up a site group by title. Returns nil when no group with
// that title exists.
func (s *Session) FindGroup(ctx context.Context, title string) (*model.SiteGroup, error) {
	path := fmt.Sprintf("/web/sitegroups?$filter=%s&$select=Id,Title,Description",
		url.QueryEscape(fmt.Sprintf("Title eq '%s'", escapeODataLiteral(title))))

	var list siteGroupListPayload
	if err := s.get(ctx, path, &list); err != nil {
		return nil, goerr.Wrap(err, "failed to look up site group",
			goerr.V("site", s.site),
			goerr.V("title", title))
	}
	if len(list.Value) == 0 {
		return nil, nil
	}
	return toSiteGroup(list.Value[0]), nil
}

// CreateGroup creates a site group with the given title and description
func (s *Session) CreateGroup(ctx context.Context, title, description string) (*model.SiteGroup, error) {
	body := map[string]string{
		"Title":       title,
		"Description": description,
	}

	var created siteGroupPayload
	if err := s.post(ctx, "/web/sitegroups", body, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create site group",
			goerr.V("site", s.site),
			goerr.V("title", title))
	}
	return toSiteGroup(created), nil
}

// GrantPermission resolves the named role definition on the site and assigns
// it to the group. An unknown level surfaces as ErrRoleDefinitionNotFound.
func (s *Session) GrantPermission(ctx context.Context, groupID types.SiteGroupID, level types.PermissionLevel) error {
	roleDefID, err := s.findRoleDefinition(ctx, level)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/web/roleassignments/addroleassignment(principalid=%d,roledefid=%d)",
		groupID.Int(), roleDefID.Int())
	if err := s.post(ctx, path, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to grant permission level",
			goerr.V("site", s.site),
			goerr.V("groupID", groupID),
			goerr.V("level", level))
	}
	return nil
}

// AddMember adds a principal to the group by login token
func (s *Session) AddMember(ctx context.Context, groupID types.SiteGroupID, login types.LoginName) error {
	body := map[string]string{
		"LoginName": login.String(),
	}

	path := fmt.Sprintf("/web/sitegroups(%d)/users", groupID.Int())
	if err := s.post(ctx, path, body, nil); err != nil {
		return goerr.Wrap(err, "failed to add group member",
			goerr.V("site", s.site),
			goerr.V("groupID", groupID),
			goerr.V("login", login))
	}
	return nil
}

// Close tears down the session
func (s *Session) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}

func (s *Session) findRoleDefinition(ctx context.Context, level types.PermissionLevel) (types.RoleDefinitionID, error) {
	path := fmt.Sprintf("/web/roledefinitions?$filter=%s&$select=Id,Name",
		url.QueryEscape(fmt.Sprintf("Name eq '%s'", escapeODataLiteral(level.String()))))

	var list roleDefinitionListPayload
	if err := s.get(ctx, path, &list); err != nil {
		return 0, goerr.Wrap(err, "failed to look up role definition",
			goerr.V("site", s.site),
			goerr.V("level", level))
	}
	if len(list.Value) == 0 {
		return 0, goerr.Wrap(model.ErrRoleDefinitionNotFound, "unknown permission level",
			goerr.V("site", s.site),
			goerr.V("level", level))
	}
	return types.RoleDefinitionID(list.Value[0].ID), nil
}

func (s *Session) get(ctx context.Context, path string, out any) error {
	return s.do(ctx, http.MethodGet, path, nil, out)
}

func (s *Session) post(ctx context.Context, path string, body, out any) error {
	return s.do(ctx, http.MethodPost, path, body, out)
}

func (s *Session) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.site.APIBase()+path, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json;odata=nometadata")
	if body != nil {
		req.Header.Set("Content-Type", "application/json;odata=nometadata")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return goerr.New("unexpected response status",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
	}
	return nil
}

func toSiteGroup(p siteGroupPayload) *model.SiteGroup {
	return &model.SiteGroup{
		ID:          types.SiteGroupID(p.ID),
		Title:       p.Title,
		Description: p.Description,
	}
}

func escapeODataLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
