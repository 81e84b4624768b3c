package interfaces

import (
	"context"

	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// PublishUseCase turns an event into Notion commit records
type PublishUseCase interface {
	// Run resolves the commits of the event and publishes one record per commit
	Run(ctx context.Context, event *model.Event) (*model.RunSummary, error)
}

// EventProcessor turns a raw GitHub event payload into published records
type EventProcessor interface {
	// ProcessEvent parses the payload of the named event and runs the publish pipeline
	ProcessEvent(ctx context.Context, eventName string, payload []byte) (*model.RunSummary, error)
}
