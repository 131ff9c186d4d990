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

const insertQuery = `
	INSERT INTO bom_hierarchy (
		sku_id, level, product_id, product_description, material_id,
		material_description, quantity, section, common_unique, buom,
		lead_time_weeks, resource_id, resource_description
	)
	VALUES (
		:sku_id, :level, :product_id, :product_description, :material_id,
		:material_description, :quantity, :section, :common_unique, :buom,
		:lead_time_weeks, :resource_id, :resource_description
	)`

func (r *MySQLRepository) InsertBatch(ctx context.Context, edges []model.BOMEdge) (int64, error) {
	if len(edges) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bom hierarchy batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, insertQuery, edges)
	if err != nil {
		return 0, fmt.Errorf("insert bom hierarchy: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bom hierarchy batch: %w", err)
	}
	return rows, nil
}
