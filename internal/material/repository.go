package material

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	// UpsertBatch inserts all materials in one statement, updating the
	// mutable descriptive fields on key collision. Returns rows written.
	UpsertBatch(ctx context.Context, materials []model.Material) (int64, error)
}
