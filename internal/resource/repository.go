package resource

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	UpsertBatch(ctx context.Context, resources []model.Resource) (int64, error)
}
