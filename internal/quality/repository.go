package quality

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	// InsertIssues appends validation findings for one run.
	InsertIssues(ctx context.Context, issues []model.QualityIssue) (int64, error)
	// InsertAudit appends after-the-fact change records.
	InsertAudit(ctx context.Context, entries []model.AuditEntry) (int64, error)
}
