package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/notionlog/pkg/domain/interfaces"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
	"github.com/m-mizutani/notionlog/pkg/utils/async"
)

type webhookUseCase struct {
	processor interfaces.EventProcessor
	dispatch  func(ctx context.Context, handler func(ctx context.Context) error)
}

// WebhookOption is a functional option for the webhook use case
type WebhookOption func(*webhookUseCase)

// WithDispatcher replaces the background dispatcher, e.g. to run deliveries inline
func WithDispatcher(dispatch func(ctx context.Context, handler func(ctx context.Context) error)) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatch = dispatch
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(processor interfaces.EventProcessor, opts ...WebhookOption) *webhookUseCase {
	uc := &webhookUseCase{
		processor: processor,
		dispatch:  async.Dispatch,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent publishes push deliveries in the background and ignores everything else
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx).With("delivery_id", event.ID)

	logger.Info("Processing webhook event",
		"type", event.Type,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Warn("Unsupported event received", "type", event.Type)
		return nil
	}

	if uc.processor == nil {
		logger.Warn("No event processor configured, delivery dropped")
		return nil
	}

	ctx = ctxlog.With(ctx, logger)
	uc.dispatch(ctx, func(ctx context.Context) error {
		summary, err := uc.processor.ProcessEvent(ctx, string(event.Type), event.RawPayload)
		if err != nil {
			return err
		}
		ctxlog.From(ctx).Info("Webhook delivery published",
			"repository", summary.Repository,
			"records", len(summary.Records),
		)
		return nil
	})

	return nil
}
