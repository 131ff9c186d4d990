package model

import "time"

// Severity and status values for data-quality issues.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"

	QualityStatusOpen = "open"
)

// QualityIssue is an append-only record of a validation finding made during
// extraction or load. RunID ties all issues of one loader invocation
// together.
type QualityIssue struct {
	LogID       int64      `db:"log_id"`
	RunID       string     `db:"run_id"`
	CheckType   string     `db:"check_type"`
	EntityType  string     `db:"entity_type"`
	EntityID    string     `db:"entity_id"`
	Description string     `db:"issue_description"`
	Severity    string     `db:"severity"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
}

// AuditEntry records an after-the-fact change to pegging data.
type AuditEntry struct {
	AuditID      int64     `db:"audit_id"`
	RunID        string    `db:"run_id"`
	SKUID        string    `db:"sku_id"`
	ProductID    *string   `db:"product_id"`
	MaterialID   *string   `db:"material_id"`
	Action       string    `db:"action"`
	OldValue     *string   `db:"old_value"`
	NewValue     *string   `db:"new_value"`
	ChangedBy    string    `db:"changed_by"`
	ChangeReason *string   `db:"change_reason"`
	CreatedAt    time.Time `db:"created_at"`
}
