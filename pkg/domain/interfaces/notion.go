package interfaces

import (
	"context"

	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// NotionClient defines the Notion operations used by the publisher
type NotionClient interface {
	// FindPage returns the ID of the first page whose property equals value, or "" when none matches
	FindPage(ctx context.Context, databaseID string, kind model.PropertyKind, property, value string) (string, error)

	// CreateRecord creates a commit record page in the database and returns its page ID
	CreateRecord(ctx context.Context, databaseID string, record *model.CommitRecord, fields model.FieldNames) (string, error)

	// UpdateText replaces a rich text property of a page
	UpdateText(ctx context.Context, pageID, property, value string) error
}

// Notifier sends a summary of a finished run
type Notifier interface {
	Notify(ctx context.Context, summary *model.RunSummary) error
}
