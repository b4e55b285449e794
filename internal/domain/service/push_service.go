package service

import "context"

// PushService defines the interface for push delivery transports (e.g., FCM).
// The engine publishes to per-user topics; device token registration is the
// client platform's concern, not the core's.
type PushService interface {
	// SendToTopic sends a push notification to every device subscribed to the topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
