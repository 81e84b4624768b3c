package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr          string `flag:"addr" validate:"required"`
	WebhookSecret string `masq:"secret" flag:"github-webhook-secret" validate:"required"`
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     sources("ADDR", ""),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Destination: &c.WebhookSecret,
			Sources:     sources("GITHUB_WEBHOOK_SECRET", ""),
		},
	}
}
