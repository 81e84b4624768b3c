package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/notionlog/pkg/controller/github"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/infra/github"
	"github.com/m-mizutani/notionlog/pkg/infra/notion"
	"github.com/m-mizutani/notionlog/pkg/infra/slack"
	"github.com/m-mizutani/notionlog/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// pipelineConfig is the configuration shared by the run and serve commands
type pipelineConfig struct {
	notion  config.Notion
	github  config.GitHub
	publish config.Publish
	slack   config.Slack
}

func (x *pipelineConfig) flags() []cli.Flag {
	flags := x.notion.Flags()
	flags = append(flags, x.github.Flags()...)
	flags = append(flags, x.publish.Flags()...)
	flags = append(flags, x.slack.Flags()...)
	return flags
}

// newProcessor validates the configuration and wires clients into an event processor.
// out receives dry-run records.
func (x *pipelineConfig) newProcessor(ctx context.Context, loader *config.FileLoader, out io.Writer) (*githubcontroller.EventProcessor, error) {
	logger := ctxlog.From(ctx)

	file, err := loader.Load()
	if err != nil {
		return nil, err
	}
	x.notion.ApplyFile(file)
	x.publish.ApplyFile(file)
	fields := x.notion.FieldNames()

	if err := config.Validate(&x.notion, &x.github, &x.publish, &x.slack, fields); err != nil {
		return nil, err
	}

	format := x.publish.Format()
	if format.Enabled() && !x.github.HasCredential() {
		logger.Warn("No GitHub token or App credential, changed files are not listed",
			"files_format", format,
		)
		format = model.FilesFormatNone
	}

	githubClient, err := x.newGitHubClient()
	if err != nil {
		return nil, err
	}

	var notionClient interfaces.NotionClient
	if x.notion.DryRun {
		logger.Info("Dry run, records are printed instead of written")
		notionClient = notion.NewPrinter(out)
	} else {
		notionClient = notion.NewClient(x.notion.Secret)
	}

	var opts []usecase.PublishOption
	if x.slack.Enabled() {
		opts = append(opts, usecase.WithNotifier(slack.NewNotifier(x.slack.WebhookURL)))
	}

	publisher := usecase.NewPublisher(githubClient, notionClient, usecase.PublishConfig{
		CommitDatabaseID:   x.notion.CommitDatabaseID,
		TaskDatabaseID:     x.notion.TaskDatabaseID,
		SoftwareDatabaseID: x.notion.SoftwareDatabaseID,
		ClientDatabaseID:   x.notion.ClientDatabaseID,
		Fields:             fields,
		FilesFormat:        format,
		FilesStrictCompare: x.publish.StrictCompare,
		ServerURL:          x.github.ServerURL,
	}, opts...)

	logger.Debug("Configured pipeline",
		"notion", x.notion,
		"github", x.github,
		"files_format", format,
	)

	return githubcontroller.NewEventProcessor(publisher,
		githubcontroller.WithRepository(x.github.Repository),
	), nil
}

func (x *pipelineConfig) newGitHubClient() (interfaces.GitHubClient, error) {
	var opts []github.Option
	if u := x.github.EnterpriseAPIURL(); u != "" {
		opts = append(opts, github.WithBaseURL(u))
	}

	if x.github.UseApp() {
		client, err := github.NewAppClient(x.github.AppID, x.github.InstallationID, []byte(x.github.PrivateKey), opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App client", goerr.T(model.TagConfig))
		}
		return client, nil
	}

	// Without a token the client is unauthenticated and works for public repositories only
	return github.NewClient(x.github.Token, opts...)
}
