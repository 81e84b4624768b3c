package github_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	githubcontroller "github.com/m-mizutani/notionlog/pkg/controller/github"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/domain/types"
)

// MockPublishUseCase is a mock implementation of PublishUseCase
type MockPublishUseCase struct {
	runFunc func(ctx context.Context, event *model.Event) (*model.RunSummary, error)
	events  []*model.Event
}

func (m *MockPublishUseCase) Run(ctx context.Context, event *model.Event) (*model.RunSummary, error) {
	m.events = append(m.events, event)
	if m.runFunc != nil {
		return m.runFunc(ctx, event)
	}
	return &model.RunSummary{Repository: event.FullName()}, nil
}

const pushPayload = `{
	"ref": "refs/heads/main",
	"before": "1111111111111111111111111111111111111111",
	"after": "2222222222222222222222222222222222222222",
	"repository": {
		"name": "billing",
		"full_name": "acme-inc/billing",
		"owner": {"name": "acme-inc", "login": "acme-inc"}
	},
	"commits": [
		{"id": "c1", "url": "https://github.com/acme-inc/billing/commit/c1", "message": "Add invoices\n\natnt: Invoice export"},
		{"id": "c2", "url": "https://github.com/acme-inc/billing/commit/c2", "message": "Fix rounding"}
	]
}`

func TestParseEvent_Push(t *testing.T) {
	event, err := githubcontroller.ParseEvent("push", []byte(pushPayload), "")
	gt.NoError(t, err)

	gt.Equal(t, event.Name, model.EventPush)
	gt.Equal(t, event.Owner, "acme-inc")
	gt.Equal(t, event.Repo, "billing")
	gt.Equal(t, event.Ref, "refs/heads/main")
	gt.Equal(t, event.Before, "1111111111111111111111111111111111111111")
	gt.Equal(t, event.After, "2222222222222222222222222222222222222222")
	gt.Equal(t, len(event.Commits), 2)
	gt.Equal(t, event.Commits[0].ID, "c1")
	gt.Equal(t, event.Commits[0].URL, "https://github.com/acme-inc/billing/commit/c1")
	gt.Equal(t, event.Commits[1].Message, "Fix rounding")
	gt.Equal(t, event.Classify(), model.EventKindMultiCommit)
}

func TestParseEvent_TagPush(t *testing.T) {
	payload := `{
		"ref": "refs/tags/v1.2.3_acme",
		"before": "` + types.ZeroSHA + `",
		"after": "3333333333333333333333333333333333333333",
		"repository": {"name": "billing", "owner": {"name": "acme-inc"}},
		"commits": []
	}`

	event, err := githubcontroller.ParseEvent("push", []byte(payload), "")
	gt.NoError(t, err)
	gt.Equal(t, event.Owner, "acme-inc")
	gt.Equal(t, event.TagName(), "v1.2.3_acme")
	gt.Equal(t, event.Classify(), model.EventKindTagPush)
}

func TestParseEvent_PullRequest(t *testing.T) {
	payload := `{
		"action": "opened",
		"repository": {"name": "billing", "owner": {"login": "acme-inc"}},
		"pull_request": {
			"base": {"sha": "base-sha"},
			"head": {"sha": "head-sha"}
		}
	}`

	event, err := githubcontroller.ParseEvent("pull_request", []byte(payload), "")
	gt.NoError(t, err)
	gt.Equal(t, event.Name, model.EventPullRequest)
	gt.Equal(t, event.PullRequest.BaseSHA, "base-sha")
	gt.Equal(t, event.PullRequest.HeadSHA, "head-sha")
	gt.Equal(t, event.Classify(), model.EventKindUnsupported)

	base, head := event.DiffRange()
	gt.Equal(t, base, "base-sha")
	gt.Equal(t, head, "head-sha")
}

func TestParseEvent_FallbackRepository(t *testing.T) {
	payload := `{"ref": "refs/heads/main", "before": "` + types.ZeroSHA + `", "after": "abc"}`

	t.Run("fills owner and repo", func(t *testing.T) {
		event, err := githubcontroller.ParseEvent("push", []byte(payload), "acme-inc/billing")
		gt.NoError(t, err)
		gt.Equal(t, event.FullName(), "acme-inc/billing")
		gt.Equal(t, event.Classify(), model.EventKindFirstPush)
	})

	t.Run("missing repository", func(t *testing.T) {
		_, err := githubcontroller.ParseEvent("push", []byte(payload), "")
		gt.Error(t, err)
		gt.Value(t, goerr.HasTag(err, model.TagConfig)).Equal(true)
	})
}

func TestParseEvent_Invalid(t *testing.T) {
	t.Run("unknown event name", func(t *testing.T) {
		_, err := githubcontroller.ParseEvent("no_such_event", []byte(`{}`), "acme-inc/billing")
		gt.Error(t, err)
		gt.Value(t, goerr.HasTag(err, model.TagClassification)).Equal(true)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := githubcontroller.ParseEvent("push", []byte(`{`), "acme-inc/billing")
		gt.Error(t, err)
	})

	t.Run("other known event is passed on as unsupported", func(t *testing.T) {
		event, err := githubcontroller.ParseEvent("issues", []byte(`{"action":"opened"}`), "acme-inc/billing")
		gt.NoError(t, err)
		gt.Equal(t, event.Name, model.EventName("issues"))
		gt.Equal(t, event.Classify(), model.EventKindUnsupported)
	})
}

func TestEventProcessor_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the publisher with the parsed event", func(t *testing.T) {
		mockUC := &MockPublishUseCase{}
		processor := githubcontroller.NewEventProcessor(mockUC)

		summary, err := processor.ProcessEvent(ctx, "push", []byte(pushPayload))
		gt.NoError(t, err)
		gt.Equal(t, summary.Repository, "acme-inc/billing")
		gt.Equal(t, len(mockUC.events), 1)
		gt.Equal(t, len(mockUC.events[0].Commits), 2)
	})

	t.Run("uses fallback repository", func(t *testing.T) {
		mockUC := &MockPublishUseCase{}
		processor := githubcontroller.NewEventProcessor(mockUC, githubcontroller.WithRepository("acme-inc/billing"))

		_, err := processor.ProcessEvent(ctx, "push", []byte(`{"ref":"refs/heads/main","before":"`+types.ZeroSHA+`","after":"abc"}`))
		gt.NoError(t, err)
		gt.Equal(t, mockUC.events[0].FullName(), "acme-inc/billing")
	})

	t.Run("returns publisher errors", func(t *testing.T) {
		mockUC := &MockPublishUseCase{
			runFunc: func(ctx context.Context, event *model.Event) (*model.RunSummary, error) {
				return nil, errors.New("notion unavailable")
			},
		}
		processor := githubcontroller.NewEventProcessor(mockUC)

		_, err := processor.ProcessEvent(ctx, "push", []byte(pushPayload))
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("notion unavailable")
	})

	t.Run("parse errors do not reach the publisher", func(t *testing.T) {
		mockUC := &MockPublishUseCase{}
		processor := githubcontroller.NewEventProcessor(mockUC)

		_, err := processor.ProcessEvent(ctx, "push", []byte(`not json`))
		gt.Error(t, err)
		gt.Equal(t, len(mockUC.events), 0)
	})
}
