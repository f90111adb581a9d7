package interfaces

import (
	"context"

	"fieldops/internal/domain/risk"
)

// IRiskCache is a short-TTL cache for dashboard aggregates. A miss or cache
// failure is never an error for the caller; the summary is recomputed from
// the store instead.
type IRiskCache interface {
	Get(ctx context.Context, key string) (risk.Summary, bool, error)
	Set(ctx context.Context, key string, s risk.Summary) error
}
