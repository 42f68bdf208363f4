package config

import (
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/m-mizutani/goerr/v2"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/urfave/cli/v3"
)

// graphScope is the default scope for Microsoft Graph application access
const graphScope = "https://graph.microsoft.com/.default"

// Azure holds Entra ID application credentials shared by the directory and
// site clients
type Azure struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// Flags returns CLI flags for Azure configuration
func (a *Azure) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant-id",
			Usage:       "Entra ID tenant ID",
			Category:    "Azure",
			Required:    true,
			Sources:     cli.EnvVars("SPGROUPS_TENANT_ID"),
			Destination: &a.TenantID,
		},
		&cli.StringFlag{
			Name:        "client-id",
			Usage:       "Entra ID application (client) ID",
			Category:    "Azure",
			Required:    true,
			Sources:     cli.EnvVars("SPGROUPS_CLIENT_ID"),
			Destination: &a.ClientID,
		},
		&cli.StringFlag{
			Name:        "client-secret",
			Usage:       "Entra ID application client secret",
			Category:    "Azure",
			Required:    true,
			Sources:     cli.EnvVars("SPGROUPS_CLIENT_SECRET"),
			Destination: &a.ClientSecret,
		},
	}
}

// Configure creates a token credential from the client secret
func (a *Azure) Configure() (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(a.TenantID, a.ClientID, a.ClientSecret, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Azure credential",
			goerr.V("tenantID", a.TenantID),
			goerr.V("clientID", a.ClientID))
	}
	return cred, nil
}

// ConfigureGraph creates a Microsoft Graph client using the credential
func (a *Azure) ConfigureGraph(cred azcore.TokenCredential) (*msgraphsdk.GraphServiceClient, error) {
	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{graphScope})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Graph client")
	}
	return client, nil
}

// LogValue returns structured log value
func (a Azure) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant_id", a.TenantID),
		slog.String("client_id", a.ClientID),
		slog.Bool("has_client_secret", a.ClientSecret != ""),
	)
}
