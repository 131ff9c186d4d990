package product

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	UpsertBatch(ctx context.Context, products []model.Product) (int64, error)
}
