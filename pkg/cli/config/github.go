package config

import (
	"strings"

	"github.com/m-mizutani/notionlog/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

const defaultAPIURL = "https://api.github.com"

// GitHub holds GitHub API and event configuration
type GitHub struct {
	Token string `masq:"secret" flag:"github-token"`

	AppID          int64  `flag:"github-app-id"`
	InstallationID int64  `flag:"github-app-installation-id" validate:"required_with=AppID"`
	PrivateKey     string `masq:"secret" flag:"github-app-private-key" validate:"required_with=AppID"`

	APIURL    string `flag:"github-api-url" validate:"omitempty,url"`
	ServerURL string `flag:"github-server-url" validate:"omitempty,url"`

	EventName  string `flag:"event-name"`
	EventPath  string `flag:"event-path"`
	Repository string `flag:"repository"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token; changed files are not listed without a token or App credential",
			Destination: &c.Token,
			Sources:     sources("GITHUB_TOKEN", "TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of a token",
			Destination: &c.AppID,
			Sources:     sources("GITHUB_APP_ID", "APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     sources("GITHUB_APP_INSTALLATION_ID", "APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     sources("GITHUB_APP_PRIVATE_KEY", "APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Value:       defaultAPIURL,
			Destination: &c.APIURL,
			Sources:     sources("GITHUB_API_URL", "", "GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-server-url",
			Usage:       "GitHub web URL used for release links",
			Value:       types.DefaultServerURL,
			Destination: &c.ServerURL,
			Sources:     sources("GITHUB_SERVER_URL", "", "GITHUB_SERVER_URL"),
		},
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the triggering event",
			Value:       "push",
			Destination: &c.EventName,
			Sources:     sources("EVENT_NAME", "", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path to the event payload JSON",
			Destination: &c.EventPath,
			Sources:     sources("EVENT_PATH", "", "GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "owner/repo used when the payload has no repository owner",
			Destination: &c.Repository,
			Sources:     sources("REPOSITORY", "", "GITHUB_REPOSITORY"),
		},
	}
}

// HasCredential reports whether authenticated API calls are possible
func (c *GitHub) HasCredential() bool {
	return c.Token != "" || c.AppID != 0
}

// UseApp reports whether GitHub App authentication is configured
func (c *GitHub) UseApp() bool {
	return c.AppID != 0
}

// EnterpriseAPIURL returns the API URL when it differs from github.com, or ""
func (c *GitHub) EnterpriseAPIURL() string {
	u := strings.TrimSuffix(c.APIURL, "/")
	if u == "" || u == defaultAPIURL {
		return ""
	}
	return u
}
