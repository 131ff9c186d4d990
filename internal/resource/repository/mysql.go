package repository

import (
	"context"
	"fmt"

	"github.com/mfgplanning/pegging-loader/internal/database"
	"github.com/mfgplanning/pegging-loader/internal/model"
)

type MySQLRepository struct {
	conn database.Handle
}

func NewMySQLRepository(conn database.Handle) *MySQLRepository {
	return &MySQLRepository{conn: conn}
}

// Capacity and changeover columns are manually maintained, so the upsert
// never writes them.
const upsertQuery = `
	INSERT INTO resources (
		resource_id, resource_description, molecule, product_id, stage
	)
	VALUES (
		:resource_id, :resource_description, :molecule, :product_id, :stage
	)
	ON DUPLICATE KEY UPDATE
		updated_at = CURRENT_TIMESTAMP`

func (r *MySQLRepository) UpsertBatch(ctx context.Context, resources []model.Resource) (int64, error) {
	if len(resources) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin resources batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, upsertQuery, resources)
	if err != nil {
		return 0, fmt.Errorf("insert resources: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit resources batch: %w", err)
	}
	return rows, nil
}
