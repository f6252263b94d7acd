package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscanapi/internal/model"
)

func TestAuditInsert(t *testing.T) {
	db, dbMock := newMock(t)
	repo := NewAuditPostgres(db)

	dbMock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("user-1", "ai_analysis_started", "scan", "scan-1", []byte(`{"model":"tb"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), &model.AuditLog{
		UserID:     "user-1",
		Action:     model.AuditAnalysisStarted,
		EntityType: "scan",
		EntityID:   "scan-1",
		Detail:     map[string]any{"model": "tb"},
	})
	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestNotificationEnqueue(t *testing.T) {
	db, dbMock := newMock(t)
	repo := NewNotificationPostgres(db)

	dbMock.ExpectExec("INSERT INTO notifications").
		WithArgs("user-9", "report_published", "New report available",
			"A diagnostic report for one of your scans has been published.").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Enqueue(context.Background(), &model.Notification{
		UserID: "user-9",
		Type:   "report_published",
		Title:  "New report available",
		Body:   "A diagnostic report for one of your scans has been published.",
	})
	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
