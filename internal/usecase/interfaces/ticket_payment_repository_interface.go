package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// ITicketPaymentRepository abstracts DynamoDB persistence for TicketPayment.
//
// Ticket numbers repeat across tenants, so every ticket-number lookup must
// be scoped to the caller's tenant.
type ITicketPaymentRepository interface {
	Create(ctx context.Context, p entities.TicketPayment) (entities.TicketPayment, error)
	GetByID(ctx context.Context, id string) (entities.TicketPayment, error)
	ListByTicketNumber(ctx context.Context, tenantID, ticketNumber string) ([]entities.TicketPayment, error)
}
