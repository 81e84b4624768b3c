package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// PublishConfig holds the settings of the publish pipeline
type PublishConfig struct {
	CommitDatabaseID string

	// Lookups are skipped when the database ID is empty
	TaskDatabaseID     string
	SoftwareDatabaseID string
	ClientDatabaseID   string

	Fields model.FieldNames

	FilesFormat model.FilesFormat
	// Abort the run when the comparison status is not "ahead"
	FilesStrictCompare bool

	// Base URL for tag permalinks, e.g. https://github.com
	ServerURL string
}

// PublishOption is a functional option for the publisher
type PublishOption func(*publisher)

// WithNotifier sends a run summary after every successful run
func WithNotifier(notifier interfaces.Notifier) PublishOption {
	return func(p *publisher) {
		p.notifier = notifier
	}
}

type publisher struct {
	githubClient interfaces.GitHubClient
	notionClient interfaces.NotionClient
	notifier     interfaces.Notifier
	cfg          PublishConfig
}

// NewPublisher creates a new PublishUseCase instance
func NewPublisher(
	githubClient interfaces.GitHubClient,
	notionClient interfaces.NotionClient,
	cfg PublishConfig,
	opts ...PublishOption,
) interfaces.PublishUseCase {
	p := &publisher{
		githubClient: githubClient,
		notionClient: notionClient,
		cfg:          cfg,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run resolves the commits of the event and publishes one record per commit, in order
func (uc *publisher) Run(ctx context.Context, event *model.Event) (*model.RunSummary, error) {
	logger := ctxlog.From(ctx)

	if err := uc.cfg.FilesFormat.Validate(); err != nil {
		return nil, err
	}

	kind := event.Classify()
	logger.Info("Classified event",
		"event", event.Name,
		"kind", kind,
	)

	commits, err := uc.resolveCommits(ctx, event, kind)
	if err != nil {
		return nil, err
	}

	files, err := uc.changedFiles(ctx, event)
	if err != nil {
		return nil, err
	}
	filesText := files.Render(uc.cfg.FilesFormat)

	summary := &model.RunSummary{
		Repository:  event.FullName(),
		Kind:        kind,
		FilesStatus: files.Status,
	}

	for _, commit := range commits {
		record, err := uc.publishCommit(ctx, event, commit, filesText)
		if err != nil {
			return summary, err
		}
		summary.Records = append(summary.Records, record)
	}

	logger.Info("Published commit records",
		"records", len(summary.Records),
		"files_status", summary.FilesStatus,
	)

	if uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, summary); err != nil {
			logger.Warn("Failed to send run notification", "error", err)
		}
	}

	return summary, nil
}

// publishCommit creates the record of a single commit and updates the linked client version
func (uc *publisher) publishCommit(ctx context.Context, event *model.Event, commit *model.CommitDescriptor, files string) (*model.PublishedRecord, error) {
	logger := ctxlog.From(ctx).With("commit_id", commit.ID)
	fields := uc.cfg.Fields

	record := &model.CommitRecord{
		Title:       commit.Title(),
		URL:         commit.URL,
		CommitID:    commit.ID,
		Description: commit.Description(),
		Project:     event.Repo,
		TagName:     commit.TagName,
		TagURL:      commit.TagURL,
		Files:       files,
	}

	if task := commit.TaskName(); task != "" {
		record.TaskPageID = uc.lookup(ctx, "task", uc.cfg.TaskDatabaseID, model.PropertyTitle, fields.TaskTitle, task)
	}

	var meta model.TagMeta
	if commit.HasTag() {
		meta = commit.TagMeta()
		record.SoftwarePageID = uc.lookup(ctx, "software", uc.cfg.SoftwareDatabaseID, model.PropertyRichText, fields.SoftwareRepoName, event.Repo)
		if meta.ClientShortName != "" {
			record.ClientPageID = uc.lookup(ctx, "client", uc.cfg.ClientDatabaseID, model.PropertyRichText, fields.ClientShortName, meta.ClientShortName)
		}
	}

	pageID, err := uc.notionClient.CreateRecord(ctx, uc.cfg.CommitDatabaseID, record, fields)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create commit record",
			goerr.T(model.TagPublish),
			goerr.V("commit_id", commit.ID),
			goerr.V("database_id", uc.cfg.CommitDatabaseID),
		)
	}

	logger.Info("Created commit record",
		"page_id", pageID,
		"title", record.Title,
		"task_linked", record.TaskPageID != "",
	)

	result := &model.PublishedRecord{
		CommitID:     commit.ID,
		PageID:       pageID,
		TaskLinked:   record.TaskPageID != "",
		SoftwareLink: record.SoftwarePageID != "",
		ClientLink:   record.ClientPageID != "",
	}

	if record.ClientPageID != "" && meta.Version != "" {
		if err := uc.notionClient.UpdateText(ctx, record.ClientPageID, fields.ClientVersion, meta.Version); err != nil {
			// The commit record stays; the version update is not retried
			logger.Warn("Failed to update client version",
				"error", err,
				"client_page_id", record.ClientPageID,
				"version", meta.Version,
			)
		} else {
			result.VersionUpdate = true
			logger.Info("Updated client version",
				"client_page_id", record.ClientPageID,
				"version", meta.Version,
			)
		}
	}

	return result, nil
}

// lookup finds a related page by exact property match. Failures degrade to no relation.
func (uc *publisher) lookup(ctx context.Context, kind, databaseID string, propKind model.PropertyKind, property, value string) string {
	logger := ctxlog.From(ctx)

	if databaseID == "" {
		logger.Debug("Lookup disabled, no database configured", "kind", kind)
		return ""
	}

	pageID, err := uc.notionClient.FindPage(ctx, databaseID, propKind, property, value)
	if err != nil {
		logger.Warn("Lookup failed, publishing without relation",
			"kind", kind,
			"value", value,
			"error", err,
		)
		return ""
	}
	if pageID == "" {
		logger.Info("No matching page found", "kind", kind, "value", value)
	}

	return pageID
}
