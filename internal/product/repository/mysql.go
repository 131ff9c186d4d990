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
	INSERT INTO products (
		product_id, product_code, product_description, product_family,
		hierarchy_level, bom_type, batch_size
	)
	VALUES (
		:product_id, :product_code, :product_description, :product_family,
		:hierarchy_level, :bom_type, :batch_size
	)
	ON DUPLICATE KEY UPDATE
		product_description = VALUES(product_description),
		updated_at = CURRENT_TIMESTAMP`

func (r *MySQLRepository) UpsertBatch(ctx context.Context, products []model.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin products batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, upsertQuery, products)
	if err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit products batch: %w", err)
	}
	return rows, nil
}
