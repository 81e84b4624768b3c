package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/cli/config"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/domain/types"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"
)

func cmdRun(fileCfg *config.FileLoader) *cli.Command {
	var pipeline pipelineConfig

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Publish the commits of one GitHub event, e.g. as an Actions step",
		Flags:   pipeline.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			summary, err := runEvent(ctx, &pipeline, fileCfg, os.Stdout)
			if err != nil {
				return err
			}

			if os.Getenv("GITHUB_OUTPUT") != "" {
				writeActionOutputs(githubactions.New(), summary)
			}
			return nil
		},
	}
}

// runEvent reads the event payload and runs the pipeline once
func runEvent(ctx context.Context, pipeline *pipelineConfig, fileCfg *config.FileLoader, out io.Writer) (*model.RunSummary, error) {
	logger := ctxlog.From(ctx).With("run_id", types.NewRunID().String())
	ctx = ctxlog.With(ctx, logger)

	if pipeline.github.EventPath == "" {
		return nil, goerr.New("event payload path is required (--event-path or GITHUB_EVENT_PATH)",
			goerr.T(model.TagConfig),
		)
	}

	processor, err := pipeline.newProcessor(ctx, fileCfg, out)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(pipeline.github.EventPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload",
			goerr.V("path", pipeline.github.EventPath),
			goerr.T(model.TagConfig),
		)
	}

	logger.Info("Processing event",
		"event", pipeline.github.EventName,
		"path", pipeline.github.EventPath,
	)

	return processor.ProcessEvent(ctx, pipeline.github.EventName, payload)
}

func writeActionOutputs(action *githubactions.Action, summary *model.RunSummary) {
	pageIDs := summary.PageIDs()
	action.SetOutput("records", strconv.Itoa(len(pageIDs)))
	action.SetOutput("page_ids", strings.Join(pageIDs, ","))

	var sb strings.Builder
	fmt.Fprintf(&sb, "### Notion commit records for %s\n\n", summary.Repository)
	fmt.Fprintf(&sb, "| Commit | Page | Task | Client version |\n|---|---|---|---|\n")
	for _, r := range summary.Records {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", r.CommitID, r.PageID, yesNo(r.TaskLinked), yesNo(r.VersionUpdate))
	}
	action.AddStepSummary(sb.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
