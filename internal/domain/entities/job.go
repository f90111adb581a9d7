package entities

import "time"

// Job is the minimal projection of a job the engine needs: tickets must
// reference a job that exists inside the caller's tenant. Job CRUD itself
// lives in another service.
type Job struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
}
