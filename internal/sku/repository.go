package sku

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	UpsertBatch(ctx context.Context, skus []model.SKU) (int64, error)
}
