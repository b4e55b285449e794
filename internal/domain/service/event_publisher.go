package service

import (
	"context"
)

// NotificationEvent represents a created notification handed to the async
// delivery pipeline. Delivery failure never rolls back the stored notification.
type NotificationEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	UserID         string            `json:"user_id"`
	GeofenceID     string            `json:"geofence_id,omitempty"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
