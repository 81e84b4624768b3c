package github

import (
	"context"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// EventProcessor parses GitHub event payloads and hands them to the publisher
type EventProcessor struct {
	publishUC interfaces.PublishUseCase

	// owner/repo used when the payload does not carry a repository owner
	repository string
}

// ProcessorOption is a functional option for EventProcessor
type ProcessorOption func(*EventProcessor)

// WithRepository sets the fallback "owner/repo", e.g. from GITHUB_REPOSITORY
func WithRepository(repository string) ProcessorOption {
	return func(p *EventProcessor) {
		p.repository = repository
	}
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(publishUC interfaces.PublishUseCase, opts ...ProcessorOption) *EventProcessor {
	p := &EventProcessor{
		publishUC: publishUC,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessEvent parses the payload of the named event and runs the publish pipeline
func (p *EventProcessor) ProcessEvent(ctx context.Context, eventName string, payload []byte) (*model.RunSummary, error) {
	event, err := ParseEvent(eventName, payload, p.repository)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx).With(
		"repository", event.FullName(),
		"ref", event.Ref,
	)
	logger.Debug("Parsed event",
		"event", event.Name,
		"before", event.Before,
		"after", event.After,
		"commits", len(event.Commits),
	)

	return p.publishUC.Run(ctxlog.With(ctx, logger), event)
}

// ParseEvent converts a raw GitHub event payload into a domain event.
// fallbackRepository ("owner/repo") fills the owner or name when the payload lacks them.
func ParseEvent(eventName string, payload []byte, fallbackRepository string) (*model.Event, error) {
	parsed, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse event payload",
			goerr.T(model.TagClassification),
			goerr.V("event", eventName),
		)
	}

	var event *model.Event
	switch ev := parsed.(type) {
	case *github.PushEvent:
		event = fromPushEvent(ev)
	case *github.PullRequestEvent:
		event = fromPullRequestEvent(ev)
	default:
		// Classified as unsupported downstream
		event = &model.Event{Name: model.EventName(eventName)}
	}

	fallbackOwner, fallbackRepo, _ := strings.Cut(fallbackRepository, "/")
	if event.Owner == "" {
		event.Owner = fallbackOwner
	}
	if event.Repo == "" {
		event.Repo = fallbackRepo
	}
	if event.Owner == "" || event.Repo == "" {
		return nil, goerr.New("repository owner and name are required",
			goerr.T(model.TagConfig),
			goerr.V("event", eventName),
			goerr.V("owner", event.Owner),
			goerr.V("repo", event.Repo),
		)
	}

	return event, nil
}

func fromPushEvent(ev *github.PushEvent) *model.Event {
	owner := ev.GetRepo().GetOwner().GetLogin()
	if owner == "" {
		// Push payloads carry the owner's login in "name"
		owner = ev.GetRepo().GetOwner().GetName()
	}

	event := &model.Event{
		Name:   model.EventPush,
		Owner:  owner,
		Repo:   ev.GetRepo().GetName(),
		Ref:    ev.GetRef(),
		Before: ev.GetBefore(),
		After:  ev.GetAfter(),
	}

	for _, c := range ev.Commits {
		event.Commits = append(event.Commits, &model.CommitDescriptor{
			ID:      c.GetID(),
			URL:     c.GetURL(),
			Message: c.GetMessage(),
		})
	}

	return event
}

func fromPullRequestEvent(ev *github.PullRequestEvent) *model.Event {
	return &model.Event{
		Name:  model.EventPullRequest,
		Owner: ev.GetRepo().GetOwner().GetLogin(),
		Repo:  ev.GetRepo().GetName(),
		PullRequest: &model.PullRequestRef{
			BaseSHA: ev.GetPullRequest().GetBase().GetSHA(),
			HeadSHA: ev.GetPullRequest().GetHead().GetSHA(),
		},
	}
}
