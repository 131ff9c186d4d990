package loader

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mfgplanning/pegging-loader/internal/extract"
)

// RunOptions selects the inputs for one load run.
type RunOptions struct {
	DPWorkbook  string
	SNPWorkbook string
	DryRun      bool
}

// RunReport accumulates per-stage outcomes. FailedBatches records entity
// batches that were logged and skipped; a non-empty list still counts as a
// completed run (partial loads are possible by design).
type RunReport struct {
	RunID  string
	DryRun bool

	ProductsExtracted  int
	MaterialsExtracted int
	SKUsExtracted      int

	MaterialRows int64
	ProductRows  int64
	SKURows      int64
	EdgeRows     int64
	ResourceRows int64
	RuleRows     int64
	IssueRows    int64

	FailedBatches []string
}

type UseCase interface {
	Run(ctx context.Context, opts RunOptions) (*RunReport, error)
}

// Extractor is what the use case needs from the extraction stage.
type Extractor interface {
	Run(dpPath, snpPath string) (*extract.Result, error)
}

// Connector is the two-state database client the use case drives.
type Connector interface {
	Connect(ctx context.Context) error
	Close() error
	DB() *sqlx.DB
}

// EnsureSchemaFunc creates the relational schema if absent.
type EnsureSchemaFunc func(ctx context.Context, db *sqlx.DB) error
