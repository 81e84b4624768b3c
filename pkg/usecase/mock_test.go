package usecase_test

import (
	"context"
	"errors"

	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// MockGitHubClient is a mock implementation of GitHubClient
type MockGitHubClient struct {
	getRefFunc         func(ctx context.Context, owner, repo, ref string) (*model.GitObject, error)
	getTagFunc         func(ctx context.Context, owner, repo, sha string) (*model.GitObject, error)
	getCommitFunc      func(ctx context.Context, owner, repo, sha string) (*model.Commit, error)
	compareCommitsFunc func(ctx context.Context, owner, repo, base, head string) (*model.Comparison, error)

	refCalls     []string
	tagCalls     []string
	commitCalls  []string
	compareCalls []string
}

func (m *MockGitHubClient) GetRef(ctx context.Context, owner, repo, ref string) (*model.GitObject, error) {
	m.refCalls = append(m.refCalls, ref)
	if m.getRefFunc != nil {
		return m.getRefFunc(ctx, owner, repo, ref)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockGitHubClient) GetTag(ctx context.Context, owner, repo, sha string) (*model.GitObject, error) {
	m.tagCalls = append(m.tagCalls, sha)
	if m.getTagFunc != nil {
		return m.getTagFunc(ctx, owner, repo, sha)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockGitHubClient) GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error) {
	m.commitCalls = append(m.commitCalls, sha)
	if m.getCommitFunc != nil {
		return m.getCommitFunc(ctx, owner, repo, sha)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockGitHubClient) CompareCommits(ctx context.Context, owner, repo, base, head string) (*model.Comparison, error) {
	m.compareCalls = append(m.compareCalls, base+"..."+head)
	if m.compareCommitsFunc != nil {
		return m.compareCommitsFunc(ctx, owner, repo, base, head)
	}
	return nil, errors.New("mock not configured")
}

type findCall struct {
	DatabaseID string
	Kind       model.PropertyKind
	Property   string
	Value      string
}

type updateCall struct {
	PageID   string
	Property string
	Value    string
}

// MockNotionClient is a mock implementation of NotionClient
type MockNotionClient struct {
	findPageFunc     func(ctx context.Context, databaseID, property, value string) (string, error)
	createRecordFunc func(ctx context.Context, databaseID string, record *model.CommitRecord) (string, error)
	updateTextFunc   func(ctx context.Context, pageID, property, value string) error

	findCalls   []findCall
	records     []*model.CommitRecord
	updateCalls []updateCall
}

func (m *MockNotionClient) FindPage(ctx context.Context, databaseID string, kind model.PropertyKind, property, value string) (string, error) {
	m.findCalls = append(m.findCalls, findCall{DatabaseID: databaseID, Kind: kind, Property: property, Value: value})
	if m.findPageFunc != nil {
		return m.findPageFunc(ctx, databaseID, property, value)
	}
	return "", nil
}

func (m *MockNotionClient) CreateRecord(ctx context.Context, databaseID string, record *model.CommitRecord, fields model.FieldNames) (string, error) {
	m.records = append(m.records, record)
	if m.createRecordFunc != nil {
		return m.createRecordFunc(ctx, databaseID, record)
	}
	return "page-" + record.CommitID, nil
}

func (m *MockNotionClient) UpdateText(ctx context.Context, pageID, property, value string) error {
	m.updateCalls = append(m.updateCalls, updateCall{PageID: pageID, Property: property, Value: value})
	if m.updateTextFunc != nil {
		return m.updateTextFunc(ctx, pageID, property, value)
	}
	return nil
}

// MockNotifier records summaries
type MockNotifier struct {
	err       error
	summaries []*model.RunSummary
}

func (m *MockNotifier) Notify(ctx context.Context, summary *model.RunSummary) error {
	m.summaries = append(m.summaries, summary)
	return m.err
}
