package model

import "time"

// WebhookEvent represents a webhook delivery received from GitHub
type WebhookEvent struct {
	ID         string    // Retrieved from X-GitHub-Delivery header
	Type       EventName // Retrieved from X-GitHub-Event header
	Repository string    // Repository full name
	Sender     string    // Sender username
	ReceivedAt time.Time // Time when the event was received
	RawPayload []byte    // Raw JSON payload
}

// IsSupportedEvent checks if the delivery should be published. Only pushes create records.
func (e *WebhookEvent) IsSupportedEvent() bool {
	return e.Type == EventPush
}
