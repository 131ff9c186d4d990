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

const insertIssueQuery = `
	INSERT INTO data_quality_log (
		run_id, check_type, entity_type, entity_id, issue_description, severity, status
	)
	VALUES (
		:run_id, :check_type, :entity_type, :entity_id, :issue_description, :severity, :status
	)`

const insertAuditQuery = `
	INSERT INTO pegging_audit_trail (
		run_id, sku_id, product_id, material_id, action, old_value,
		new_value, changed_by, change_reason
	)
	VALUES (
		:run_id, :sku_id, :product_id, :material_id, :action, :old_value,
		:new_value, :changed_by, :change_reason
	)`

func (r *MySQLRepository) InsertIssues(ctx context.Context, issues []model.QualityIssue) (int64, error) {
	if len(issues) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin quality log batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, insertIssueQuery, issues)
	if err != nil {
		return 0, fmt.Errorf("insert quality log: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit quality log batch: %w", err)
	}
	return rows, nil
}

func (r *MySQLRepository) InsertAudit(ctx context.Context, entries []model.AuditEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.conn.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin audit trail batch: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, insertAuditQuery, entries)
	if err != nil {
		return 0, fmt.Errorf("insert audit trail: %w", err)
	}
	rows, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit audit trail batch: %w", err)
	}
	return rows, nil
}
