package interfaces

import "context"

// ITicketSequenceRepository allocates ticket sequence numbers.
//
// Next must be an atomic fetch-and-increment per tenant per calendar year.
// Deriving the next value from a point-in-time document count is not safe
// under concurrent creates and must never be used.
type ITicketSequenceRepository interface {
	Next(ctx context.Context, tenantID string, year int) (int64, error)
}
