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
	INSERT INTO skus (
		sku_id, sku_code, sku_description, product_family, pack_size,
		country, region, assembly_product_id, filling_product_id
	)
	VALUES (
		:sku_id, :sku_code, :sku_description, :product_family, :pack_size,
		:country, :region, :assembly_product_id, :filling_product_id
	)
	ON DUPLICATE KEY UPDATE
		updated_at = CURRENT_TIMESTAMP`

func (r *MySQLRepository) UpsertBatch(ctx context.Context, skus []model.SKU) (int64, error) {
	if len(skus) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin skus batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, upsertQuery, skus)
	if err != nil {
		return 0, fmt.Errorf("insert skus: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit skus batch: %w", err)
	}
	return rows, nil
}
