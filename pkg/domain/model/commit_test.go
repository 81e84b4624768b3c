package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

func TestCommitDescriptor_TitleAndDescription(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		title       string
		description string
	}{
		{
			name:        "single line",
			message:     "Fix typo in README",
			title:       "Fix typo in README",
			description: "",
		},
		{
			name:        "body lines joined by spaces",
			message:     "Add parser\n\nSupports nested blocks\nand comments",
			title:       "Add parser",
			description: " Supports nested blocks and comments",
		},
		{
			name:        "CRLF line breaks",
			message:     "Title\r\nfirst\r\nsecond",
			title:       "Title",
			description: "first second",
		},
		{
			name:        "message starting with newline",
			message:     "\nbody only",
			title:       "",
			description: "body only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.CommitDescriptor{Message: tt.message}
			gt.Equal(t, c.Title(), tt.title)
			gt.Equal(t, c.Description(), tt.description)
		})
	}
}

func TestCommitDescriptor_TaskName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "marker in body",
			message: "Implement login\n\natnt:  Login page  ",
			want:    "Login page",
		},
		{
			name:    "marker in title",
			message: "atnt:Refactor",
			want:    "Refactor",
		},
		{
			name:    "first occurrence wins",
			message: "atnt: A atnt: B",
			want:    "A atnt: B",
		},
		{
			name:    "no marker",
			message: "Plain commit",
			want:    "",
		},
		{
			name:    "marker at end",
			message: "Something atnt:",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.CommitDescriptor{Message: tt.message}
			gt.Equal(t, c.TaskName(), tt.want)
		})
	}
}

func TestCommitDescriptor_TagMeta(t *testing.T) {
	t.Run("version and client", func(t *testing.T) {
		c := &model.CommitDescriptor{TagName: "v1.2.3_acme"}
		gt.Value(t, c.HasTag()).Equal(true)
		meta := c.TagMeta()
		gt.Equal(t, meta.Version, "v1.2.3")
		gt.Equal(t, meta.ClientShortName, "acme")
	})

	t.Run("split only once", func(t *testing.T) {
		meta := (&model.CommitDescriptor{TagName: "v2_acme_eu"}).TagMeta()
		gt.Equal(t, meta.Version, "v2")
		gt.Equal(t, meta.ClientShortName, "acme_eu")
	})

	t.Run("no client part", func(t *testing.T) {
		meta := (&model.CommitDescriptor{TagName: "v3.0.0"}).TagMeta()
		gt.Equal(t, meta.Version, "v3.0.0")
		gt.Equal(t, meta.ClientShortName, "")
	})

	t.Run("no tag", func(t *testing.T) {
		c := &model.CommitDescriptor{}
		gt.Value(t, c.HasTag()).Equal(false)
		gt.Equal(t, c.TagMeta().Version, "")
	})
}
