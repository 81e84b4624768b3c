package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/notionlog/pkg/cli/config"
	"github.com/m-mizutani/notionlog/pkg/domain/types"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		fileCfg   config.FileLoader

		logger        *slog.Logger
		sentryEnabled bool
	)

	flags := append(loggerCfg.Flags(), sentryCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)

	app := &cli.Command{
		Name:           "notionlog",
		Usage:          "Publish GitHub commits to a Notion database",
		Version:        types.Version,
		Flags:          flags,
		DefaultCommand: "run",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			if err := config.Validate(&sentryCfg); err != nil {
				return nil, err
			}
			sentryEnabled, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdRun(&fileCfg),
			cmdServe(&fileCfg),
		},
	}

	err := app.Run(ctx, args)
	if sentryEnabled {
		if err != nil {
			sentry.CaptureException(err)
		}
		sentry.Flush(2 * time.Second)
	}

	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))

		if os.Getenv("GITHUB_ACTIONS") == "true" {
			githubactions.New().Errorf("%s", err.Error())
		}
		return err
	}

	return nil
}
