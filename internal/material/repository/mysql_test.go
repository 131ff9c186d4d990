package repository

import (
	"context"
	"errors"
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

func TestUpsertBatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	desc := "Cartridge glass"
	materials := []model.Material{
		{MaterialID: "MAT001", MaterialCode: "MAT001", Description: &desc},
		{MaterialID: "MAT2", MaterialCode: "MAT2"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)INSERT INTO materials.*ON DUPLICATE KEY UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	rows, err := repo.UpsertBatch(context.Background(), materials)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatchEmptyIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows, err := repo.UpsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatchRollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO materials`).
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	_, err := repo.UpsertBatch(context.Background(), []model.Material{
		{MaterialID: "MAT001", MaterialCode: "MAT001"},
	})
	assert.ErrorContains(t, err, "insert materials")
	assert.NoError(t, mock.ExpectationsWereMet())
}
