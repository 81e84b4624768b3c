package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/notionlog/pkg/domain/types"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// CommitDescriptor is a commit to be published as one Notion record
type CommitDescriptor struct {
	ID      string // Commit SHA
	URL     string // Permalink to the commit
	Message string // Raw commit message

	// Set only when the commit was resolved from a tag push
	TagName string
	TagURL  string
}

// TagMeta is the version and client short name encoded in a tag name such as "v1.2.3_acme"
type TagMeta struct {
	Version         string
	ClientShortName string
}

func (x *CommitDescriptor) lines() []string {
	return lineBreak.Split(x.Message, -1)
}

// Title returns the first line of the commit message
func (x *CommitDescriptor) Title() string {
	return x.lines()[0]
}

// Description returns the lines following the title joined by single spaces
func (x *CommitDescriptor) Description() string {
	lines := x.lines()
	return strings.Join(lines[1:], " ")
}

// TaskName returns the task title referenced by the task marker, or "" if there is none
func (x *CommitDescriptor) TaskName() string {
	idx := strings.Index(x.Message, types.TaskMarker)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(x.Message[idx+len(types.TaskMarker):])
}

// HasTag reports whether the commit was resolved from a tag push
func (x *CommitDescriptor) HasTag() bool {
	return x.TagName != ""
}

// TagMeta splits TagName once on "_"
func (x *CommitDescriptor) TagMeta() TagMeta {
	version, client, _ := strings.Cut(x.TagName, "_")
	return TagMeta{
		Version:         version,
		ClientShortName: client,
	}
}
