package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
	httpClient *http.Client
}

// Option configures the notifier
type Option func(*notifier)

// WithHTTPClient replaces the HTTP client used to post messages
func WithHTTPClient(c *http.Client) Option {
	return func(n *notifier) {
		n.httpClient = c
	}
}

// NewNotifier posts run summaries to a Slack incoming webhook
func NewNotifier(webhookURL string, opts ...Option) *notifier {
	n := &notifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *notifier) Notify(ctx context.Context, summary *model.RunSummary) error {
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, buildMessage(summary)); err != nil {
		return goerr.Wrap(err, "failed to post slack message", goerr.V("repository", summary.Repository))
	}
	return nil
}

func buildMessage(summary *model.RunSummary) *slack.WebhookMessage {
	var linked []string
	for _, r := range summary.Records {
		var tags []string
		if r.TaskLinked {
			tags = append(tags, "task")
		}
		if r.SoftwareLink {
			tags = append(tags, "software")
		}
		if r.ClientLink {
			tags = append(tags, "client")
		}
		if r.VersionUpdate {
			tags = append(tags, "version")
		}

		line := fmt.Sprintf("`%s`", shortSHA(r.CommitID))
		if len(tags) > 0 {
			line += " (" + strings.Join(tags, ", ") + ")"
		}
		linked = append(linked, line)
	}

	return &slack.WebhookMessage{
		Text: fmt.Sprintf("Published %d commit record(s) for %s", len(summary.Records), summary.Repository),
		Attachments: []slack.Attachment{
			{
				Color: "good",
				Fields: []slack.AttachmentField{
					{Title: "Event", Value: string(summary.Kind), Short: true},
					{Title: "Files", Value: string(summary.FilesStatus), Short: true},
					{Title: "Commits", Value: strings.Join(linked, "\n")},
				},
			},
		},
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
