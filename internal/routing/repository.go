package routing

import (
	"context"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

type Repository interface {
	UpsertBatch(ctx context.Context, rules []model.RoutingRule) (int64, error)
}
