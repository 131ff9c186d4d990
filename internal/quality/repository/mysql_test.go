package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgplanning/pegging-loader/internal/database"
	"github.com/mfgplanning/pegging-loader/internal/model"
)

func newMockRepo(t *testing.T) (*MySQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMySQLRepository(database.Static(sqlx.NewDb(db, "mysql"))), mock
}

func TestInsertIssues(t *testing.T) {
	repo, mock := newMockRepo(t)

	issues := []model.QualityIssue{
		{
			RunID:       "run-1",
			CheckType:   "invalid_quantity",
			EntityType:  "bom_edge",
			EntityID:    "800004403/MAT001",
			Description: "quantity \"-1\" is not a positive number",
			Severity:    model.SeverityWarning,
			Status:      model.QualityStatusOpen,
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO data_quality_log`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rows, err := repo.InsertIssues(context.Background(), issues)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAudit(t *testing.T) {
	repo, mock := newMockRepo(t)

	old := "2.5"
	entries := []model.AuditEntry{
		{RunID: "run-1", SKUID: "800004403", Action: "UPDATE", OldValue: &old, ChangedBy: "planner"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pegging_audit_trail`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rows, err := repo.InsertAudit(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIssuesEmptyIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows, err := repo.InsertIssues(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
