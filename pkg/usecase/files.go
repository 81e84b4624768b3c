package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/domain/types"
)

// changedFiles lists files changed by the event. It is computed once per run and shared by
// every record. Only a non-ahead comparison in strict mode returns an error.
func (uc *publisher) changedFiles(ctx context.Context, event *model.Event) (*model.FileChangeSet, error) {
	logger := ctxlog.From(ctx)

	files, err := uc.compare(ctx, event)
	if err != nil {
		return nil, err
	}

	switch files.Status {
	case model.FileChangeFailed:
		logger.Warn("Changed files unavailable", "reason", files.Reason)
	case model.FileChangeSkipped:
		logger.Debug("Changed files skipped", "reason", files.Reason)
	default:
		logger.Info("Listed changed files", "count", len(files.Files))
	}

	return files, nil
}

func (uc *publisher) compare(ctx context.Context, event *model.Event) (*model.FileChangeSet, error) {
	if !uc.cfg.FilesFormat.Enabled() {
		return model.SkippedFiles("files listing disabled"), nil
	}
	if event.IsTagPush() {
		return model.SkippedFiles("tag push"), nil
	}
	if event.Name != model.EventPush && event.Name != model.EventPullRequest {
		return model.SkippedFiles("unsupported event type"), nil
	}

	base, head := event.DiffRange()
	if base == "" || head == "" {
		return model.SkippedFiles("missing base or head"), nil
	}
	if base == types.ZeroSHA {
		return model.SkippedFiles("first push"), nil
	}

	cmp, err := uc.githubClient.CompareCommits(ctx, event.Owner, event.Repo, base, head)
	if err != nil {
		return model.FailedFiles(err.Error()), nil
	}
	if cmp.HTTPStatus != http.StatusOK {
		return model.FailedFiles(http.StatusText(cmp.HTTPStatus)), nil
	}
	if cmp.Status != model.ComparisonStatusAhead {
		if uc.cfg.FilesStrictCompare {
			return nil, goerr.New("comparison is not ahead",
				goerr.V("status", cmp.Status),
				goerr.V("base", base),
				goerr.V("head", head),
				goerr.T(model.TagDiff),
			)
		}
		return model.FailedFiles("comparison status: " + cmp.Status), nil
	}

	return &model.FileChangeSet{
		Files:  cmp.Files,
		Status: model.FileChangeListed,
	}, nil
}
