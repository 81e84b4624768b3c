package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/domain/types"
)

// resolveCommits returns the commits to publish for the classified event
func (uc *publisher) resolveCommits(ctx context.Context, event *model.Event, kind model.EventKind) ([]*model.CommitDescriptor, error) {
	switch kind {
	case model.EventKindTagPush:
		commit, err := uc.resolveTag(ctx, event)
		if err != nil {
			return nil, err
		}
		return []*model.CommitDescriptor{commit}, nil

	case model.EventKindMultiCommit:
		return event.Commits, nil

	case model.EventKindFirstPush:
		commit, err := uc.githubClient.GetCommit(ctx, event.Owner, event.Repo, event.After)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get head commit of new branch",
				goerr.V("repository", event.FullName()),
				goerr.V("sha", event.After),
			)
		}
		return []*model.CommitDescriptor{{
			ID:      commit.SHA,
			URL:     commit.HTMLURL,
			Message: commit.Message,
		}}, nil

	default:
		return nil, goerr.New("unexpected event structure, no commits or tag found",
			goerr.T(model.TagClassification),
			goerr.V("event", event.Name),
			goerr.V("ref", event.Ref),
			goerr.V("before", event.Before),
		)
	}
}

// resolveTag follows a lightweight or annotated tag to its commit
func (uc *publisher) resolveTag(ctx context.Context, event *model.Event) (*model.CommitDescriptor, error) {
	logger := ctxlog.From(ctx)
	tagName := event.TagName()

	ref, err := uc.githubClient.GetRef(ctx, event.Owner, event.Repo, "tags/"+tagName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tag reference", goerr.V("tag", tagName))
	}

	var sha string
	switch ref.Type {
	case model.GitObjectCommit:
		sha = ref.SHA

	case model.GitObjectTag:
		target, err := uc.githubClient.GetTag(ctx, event.Owner, event.Repo, ref.SHA)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get annotated tag", goerr.V("tag", tagName), goerr.V("sha", ref.SHA))
		}
		sha = target.SHA

	default:
		return nil, goerr.New("unexpected tag object type",
			goerr.T(model.TagClassification),
			goerr.V("tag", tagName),
			goerr.V("type", string(ref.Type)),
		)
	}

	logger.Debug("Resolved tag", "tag", tagName, "object_type", ref.Type, "sha", sha)

	commit, err := uc.githubClient.GetCommit(ctx, event.Owner, event.Repo, sha)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tagged commit", goerr.V("tag", tagName), goerr.V("sha", sha))
	}

	return &model.CommitDescriptor{
		ID:      commit.SHA,
		URL:     commit.HTMLURL,
		Message: commit.Message,
		TagName: tagName,
		TagURL:  uc.releaseURL(event, tagName),
	}, nil
}

func (uc *publisher) releaseURL(event *model.Event, tagName string) string {
	server := strings.TrimSuffix(uc.cfg.ServerURL, "/")
	if server == "" {
		server = types.DefaultServerURL
	}
	return fmt.Sprintf("%s/%s/%s/releases/tag/%s", server, event.Owner, event.Repo, tagName)
}
