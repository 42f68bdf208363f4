package sharepoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// Connector opens per-site REST sessions authenticated with Entra ID app
// credentials. Tokens are requested per session; a session lives for one
// manifest row.
type Connector struct {
	cred       azcore.TokenCredential
	httpClient *http.Client
}

// Option configures a Connector
type Option func(*Connector)

// WithHTTPClient overrides the HTTP client used for REST calls
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connector) {
		c.httpClient = client
	}
}

// NewConnector creates a SharePoint connector using the given credential
func NewConnector(cred azcore.TokenCredential, opts ...Option) interfaces.SiteConnector {
	c := &Connector{
		cred:       cred,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open acquires a token scoped to the site's host and verifies the site is
// reachable before returning the session.
func (c *Connector) Open(ctx context.Context, site types.SiteURL) (interfaces.SiteSession, error) {
	parsed, err := url.Parse(site.String())
	if err != nil {
		return nil, goerr.Wrap(err, "invalid site URL", goerr.V("site", site))
	}
	if parsed.Host == "" {
		return nil, goerr.New("site URL has no host", goerr.V("site", site))
	}

	scope := fmt.Sprintf("%s://%s/.default", parsed.Scheme, parsed.Host)
	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to acquire site token",
			goerr.V("site", site),
			goerr.V("scope", scope))
	}

	session := &Session{
		site:       site,
		token:      token.Token,
		httpClient: c.httpClient,
	}

	if err := session.ping(ctx); err != nil {
		return nil, err
	}
	return session, nil
}
