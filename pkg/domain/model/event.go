package model

import (
	"strings"

	"github.com/m-mizutani/notionlog/pkg/domain/types"
)

// EventName is the GitHub event name (X-GitHub-Event header or GITHUB_EVENT_NAME)
type EventName string

const (
	EventPush        EventName = "push"
	EventPullRequest EventName = "pull_request"
)

// EventKind is the processing path chosen for an event
type EventKind string

const (
	EventKindTagPush     EventKind = "tag_push"
	EventKindMultiCommit EventKind = "multi_commit"
	EventKindFirstPush   EventKind = "first_push"
	EventKindUnsupported EventKind = "unsupported"
)

// Event is the part of a GitHub event payload the pipeline needs
type Event struct {
	Name  EventName
	Owner string
	Repo  string

	Ref    string
	Before string
	After  string

	// Commits embedded in a push payload, in payload order
	Commits []*CommitDescriptor

	// Set for pull_request events
	PullRequest *PullRequestRef
}

// PullRequestRef holds the revisions compared for a pull request
type PullRequestRef struct {
	BaseSHA string
	HeadSHA string
}

// FullName returns "owner/repo"
func (x *Event) FullName() string {
	return x.Owner + "/" + x.Repo
}

// IsTagPush reports whether Ref points to a tag
func (x *Event) IsTagPush() bool {
	return strings.HasPrefix(x.Ref, types.TagRefPrefix)
}

// TagName returns Ref without the tag prefix
func (x *Event) TagName() string {
	return strings.TrimPrefix(x.Ref, types.TagRefPrefix)
}

// Classify decides the processing path. The first matching rule wins.
func (x *Event) Classify() EventKind {
	switch {
	case x.IsTagPush():
		return EventKindTagPush
	case len(x.Commits) > 0:
		return EventKindMultiCommit
	case x.Before == types.ZeroSHA:
		return EventKindFirstPush
	default:
		return EventKindUnsupported
	}
}

// DiffRange returns the base and head revisions to compare for the event
func (x *Event) DiffRange() (base, head string) {
	switch x.Name {
	case EventPullRequest:
		if x.PullRequest == nil {
			return "", ""
		}
		return x.PullRequest.BaseSHA, x.PullRequest.HeadSHA
	case EventPush:
		return x.Before, x.After
	default:
		return "", ""
	}
}
