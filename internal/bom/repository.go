package bom

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	// InsertBatch appends a full hierarchy snapshot. There is no conflict
	// key: every run adds its own set of edges, so earlier loads stay
	// queryable.
	InsertBatch(ctx context.Context, edges []model.BOMEdge) (int64, error)
}
