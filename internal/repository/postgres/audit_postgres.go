package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// AuditPostgres is a PostgreSQL implementation of repository.AuditRepository.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

// Insert appends a row to the audit trail.
func (r *AuditPostgres) Insert(ctx context.Context, entry *model.AuditLog) error {
	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, detail)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5)
	`
	_, err = r.db.ExecContext(ctx, q,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		detail,
	)
	return err
}

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

// Enqueue inserts a notification row for a user.
func (r *NotificationPostgres) Enqueue(ctx context.Context, n *model.Notification) error {
	const q = `
		INSERT INTO notifications (user_id, type, title, body)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, q, n.UserID, n.Type, n.Title, n.Body)
	return err
}
