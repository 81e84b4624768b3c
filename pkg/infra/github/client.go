package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

type options struct {
	baseURL   string
	transport http.RoundTripper
}

// Option configures the GitHub client
type Option func(*options)

// WithBaseURL points the client at a GitHub Enterprise API, e.g. https://ghe.example.com/api/v3
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTransport replaces the underlying HTTP transport
func WithTransport(tr http.RoundTripper) Option {
	return func(o *options) {
		o.transport = tr
	}
}

func buildOptions(opts []Option) *options {
	o := &options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewClient creates a new GitHub client authenticated with a token
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	o := buildOptions(opts)

	githubClient := github.NewClient(&http.Client{Transport: o.transport})
	if token != "" {
		githubClient = githubClient.WithAuthToken(token)
	}

	return newClient(githubClient, o)
}

// NewAppClient creates a new GitHub client with App authentication
func NewAppClient(appID, installationID int64, privateKey []byte, opts ...Option) (interfaces.GitHubClient, error) {
	o := buildOptions(opts)

	itr, err := ghinstallation.New(o.transport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
		)
	}
	if o.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(o.baseURL, "/")
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), o)
}

func newClient(githubClient *github.Client, o *options) (*client, error) {
	if o.baseURL != "" {
		baseURL := o.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", o.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{githubClient: githubClient}, nil
}

// GetRef returns the object a reference points to. ref is given without the "refs/" prefix.
func (c *client) GetRef(ctx context.Context, owner, repo, ref string) (*model.GitObject, error) {
	reference, _, err := c.githubClient.Git.GetRef(ctx, owner, repo, ref)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get reference",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}
	return toGitObject(reference.GetObject()), nil
}

// GetTag returns the object an annotated tag points to
func (c *client) GetTag(ctx context.Context, owner, repo, sha string) (*model.GitObject, error) {
	tag, _, err := c.githubClient.Git.GetTag(ctx, owner, repo, sha)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tag object",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}
	return toGitObject(tag.GetObject()), nil
}

// GetCommit returns a single commit
func (c *client) GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error) {
	commit, _, err := c.githubClient.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}

	return &model.Commit{
		SHA:     commit.GetSHA(),
		HTMLURL: commit.GetHTMLURL(),
		Message: commit.GetCommit().GetMessage(),
	}, nil
}

// CompareCommits compares base with head and returns the changed file names
func (c *client) CompareCommits(ctx context.Context, owner, repo, base, head string) (*model.Comparison, error) {
	cmp, resp, err := c.githubClient.Repositories.CompareCommits(ctx, owner, repo, base, head, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compare commits",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("base", base),
			goerr.V("head", head),
		)
	}

	result := &model.Comparison{
		Status: cmp.GetStatus(),
	}
	if resp != nil {
		result.HTTPStatus = resp.StatusCode
	}
	for _, file := range cmp.Files {
		result.Files = append(result.Files, file.GetFilename())
	}

	return result, nil
}

func toGitObject(obj *github.GitObject) *model.GitObject {
	return &model.GitObject{
		Type: model.GitObjectType(obj.GetType()),
		SHA:  obj.GetSHA(),
	}
}
