package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// IJobRepository resolves job references inside a tenant scope. Lookups are
// tenant-scoped so a job belonging to another tenant is indistinguishable
// from one that does not exist.
type IJobRepository interface {
	GetByID(ctx context.Context, tenantID, jobID string) (entities.Job, error)
}
