package config

import "github.com/urfave/cli/v3"

// Slack holds run notification configuration
type Slack struct {
	WebhookURL string `masq:"secret" flag:"slack-webhook-url" validate:"omitempty,url"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for run summaries",
			Destination: &c.WebhookURL,
			Sources:     sources("SLACK_WEBHOOK_URL", "SLACK_WEBHOOK_URL"),
		},
	}
}

// Enabled reports whether run summaries should be sent
func (c *Slack) Enabled() bool {
	return c.WebhookURL != ""
}
