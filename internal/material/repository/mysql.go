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

const upsertQuery = `
	INSERT INTO materials (
		material_id, material_code, material_description, section,
		common_unique, total_lead_time_weeks, buom, model
	)
	VALUES (
		:material_id, :material_code, :material_description, :section,
		:common_unique, :total_lead_time_weeks, :buom, :model
	)
	ON DUPLICATE KEY UPDATE
		material_description = VALUES(material_description),
		updated_at = CURRENT_TIMESTAMP`

func (r *MySQLRepository) UpsertBatch(ctx context.Context, materials []model.Material) (int64, error) {
	if len(materials) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin materials batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, upsertQuery, materials)
	if err != nil {
		return 0, fmt.Errorf("insert materials: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit materials batch: %w", err)
	}
	return rows, nil
}
