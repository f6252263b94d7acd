package repository

import (
	"context"

	"medscanapi/internal/model"
)

// AuditRepository appends rows to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *model.AuditLog) error
}

// NotificationRepository enqueues user notifications.
type NotificationRepository interface {
	Enqueue(ctx context.Context, n *model.Notification) error
}
