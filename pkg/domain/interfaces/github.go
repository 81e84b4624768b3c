package interfaces

import (
	"context"

	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// GetRef fetches the object a reference such as "tags/v1.0.0" points to
	GetRef(ctx context.Context, owner, repo, ref string) (*model.GitObject, error)

	// GetTag fetches an annotated tag object and returns the object it points to
	GetTag(ctx context.Context, owner, repo, sha string) (*model.GitObject, error)

	// GetCommit fetches commit metadata
	GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error)

	// CompareCommits compares two revisions and lists changed files
	CompareCommits(ctx context.Context, owner, repo, base, head string) (*model.Comparison, error)
}
