package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/groups"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// Client implements DirectoryClient over Microsoft Graph
type Client struct {
	graph *msgraphsdk.GraphServiceClient
}

// New creates a directory client from an initialized Graph service client
func New(graph *msgraphsdk.GraphServiceClient) interfaces.DirectoryClient {
	return &Client{graph: graph}
}

// FindGroupByDisplayName finds groups whose display name matches exactly
func (c *Client) FindGroupByDisplayName(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
	filter := fmt.Sprintf("displayName eq '%s'", escapeODataLiteral(name))
	return c.findGroups(ctx, filter)
}

// FindGroupByMailNickname finds groups by alias (mail nickname)
func (c *Client) FindGroupByMailNickname(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
	filter := fmt.Sprintf("mailNickname eq '%s'", escapeODataLiteral(name))
	return c.findGroups(ctx, filter)
}

func (c *Client) findGroups(ctx context.Context, filter string) ([]*model.DirectoryGroup, error) {
	cfg := &groups.GroupsRequestBuilderGetRequestConfiguration{
		QueryParameters: &groups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{"id", "displayName", "mailNickname"},
		},
	}

	resp, err := c.graph.Groups().Get(ctx, cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query directory groups", goerr.V("filter", filter))
	}

	var result []*model.DirectoryGroup
	for _, g := range resp.GetValue() {
		result = append(result, toDirectoryGroup(g))
	}
	return result, nil
}

func toDirectoryGroup(g models.Groupable) *model.DirectoryGroup {
	group := &model.DirectoryGroup{}
	if id := g.GetId(); id != nil {
		group.ID = types.DirectoryGroupID(*id)
	}
	if name := g.GetDisplayName(); name != nil {
		group.DisplayName = *name
	}
	if nickname := g.GetMailNickname(); nickname != nil {
		group.MailNickname = *nickname
	}
	return group
}

// escapeODataLiteral escapes single quotes for use inside an OData string
// literal.
func escapeODataLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
