package interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

// IFieldTicketRepository abstracts DynamoDB persistence for FieldTicket.
//
// The engine must be able to:
//   - create a ticket under a freshly allocated ticket number
//   - load and save one ticket inside a tenant scope
//   - list a tenant's tickets as one snapshot for aggregation
//   - sign a batch of tickets atomically (all-or-nothing)
type IFieldTicketRepository interface {
	Create(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error)
	GetByNumber(ctx context.Context, tenantID, ticketNumber string) (entities.FieldTicket, error)
	Update(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.FieldTicket, error)

	// SignBatch transitions every ticket to signed with the same signature
	// in a single transaction. Each write is conditioned on the ticket still
	// being pending_signature; any failed condition aborts the whole batch.
	SignBatch(ctx context.Context, tenantID string, ticketNumbers []string, sig entities.InspectorSignature, now time.Time) error
}
