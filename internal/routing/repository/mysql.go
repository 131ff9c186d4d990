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
	INSERT INTO routing_rules (
		rule_id, rule_description, resource_id, rule_type, stage, priority, is_active
	)
	VALUES (
		:rule_id, :rule_description, :resource_id, :rule_type, :stage, :priority, :is_active
	)
	ON DUPLICATE KEY UPDATE
		updated_at = CURRENT_TIMESTAMP`

func (r *MySQLRepository) UpsertBatch(ctx context.Context, rules []model.RoutingRule) (int64, error) {
	if len(rules) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin routing rules batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, upsertQuery, rules)
	if err != nil {
		return 0, fmt.Errorf("insert routing rules: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit routing rules batch: %w", err)
	}
	return rows, nil
}
