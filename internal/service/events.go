package service

import (
	"context"
	"time"

	"github.com/gashorafarm/farmconnect/pkg/events"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

// publish never fails the caller; delivery problems are logged.
func publish(ctx context.Context, p events.Publisher, topic, key, eventType string, payload map[string]any) {
	if p == nil {
		return
	}
	event := map[string]any{
		"type":        eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range payload {
		event[k] = v
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "type", eventType, "error", err)
	}
}
