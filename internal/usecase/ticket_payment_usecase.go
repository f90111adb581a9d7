package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/lifecycle"
	"fieldops/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound       = errors.New("ticket payment not found")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
	ErrTicketNotBilled       = errors.New("ticket not billed")
	ErrPaymentGatewayFailed  = errors.New("payment gateway failed")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// ITicketPaymentUseCase records a provider payment against a billed ticket
// and moves the ticket to paid.
type ITicketPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, tenantID, ticketNumber string, payload json.RawMessage) (entities.TicketPayment, error)
	ListByTicketNumber(ctx context.Context, tenantID, ticketNumber string) ([]entities.TicketPayment, error)
}

type TicketPaymentUseCase struct {
	payments interfaces.ITicketPaymentRepository
	tickets  interfaces.IFieldTicketRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.ITicketNotifier
}

var _ ITicketPaymentUseCase = (*TicketPaymentUseCase)(nil)

func NewTicketPaymentUseCase(
	payments interfaces.ITicketPaymentRepository,
	tickets interfaces.IFieldTicketRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.ITicketNotifier,
) *TicketPaymentUseCase {
	return &TicketPaymentUseCase{payments: payments, tickets: tickets, gateway: gateway, notifier: notifier}
}

func (u *TicketPaymentUseCase) CreateAndApprove(ctx context.Context, tenantID, ticketNumber string, payload json.RawMessage) (entities.TicketPayment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TicketPayment{}, ErrInvalidTenant
	}
	ticketNumber = strings.TrimSpace(ticketNumber)
	if ticketNumber == "" {
		return entities.TicketPayment{}, ErrInvalidTicketNumber
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.TicketPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.TicketPayment{}, ErrGatewayNotConfigured
	}

	ticket, err := u.tickets.GetByNumber(ctx, tenantID, ticketNumber)
	if err != nil {
		return entities.TicketPayment{}, err
	}
	if ticket.ID == "" {
		return entities.TicketPayment{}, ErrTicketNotFound
	}
	if ticket.Status != entities.TicketStatusBilled {
		return entities.TicketPayment{}, fmt.Errorf("%w: status %s", ErrTicketNotBilled, ticket.Status)
	}

	// The source of truth for the amount is the ticket total in the store.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = ticket.TicketNumber
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Field ticket %s", ticket.TicketNumber)
		}
		reqMap["transaction_amount"] = ticket.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed ticket=%s err=%v", ticketNumber, err)
		return entities.TicketPayment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	log.Printf("[payment][usecase] gateway success ticket=%s provider_payment_id=%s provider_status=%s",
		ticketNumber, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed ticket=%s err=%v", ticketNumber, err)
	}

	now := time.Now().UTC()
	p := entities.TicketPayment{
		ID:                 providerPaymentID,
		TenantID:           tenantID,
		TicketNumber:       ticket.TicketNumber,
		Amount:             ticket.TotalAmount,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.TicketPayment{}, err
	}

	if err := lifecycle.MarkPaid(&ticket, now); err != nil {
		// The payment is recorded; a racing transition left the ticket in an
		// unexpected state. Surface it rather than silently dropping either.
		return entities.TicketPayment{}, err
	}
	updated, err := u.tickets.Update(ctx, ticket)
	if err != nil {
		return entities.TicketPayment{}, err
	}
	if u.notifier != nil {
		u.notifier.Notify("ticket.paid", updated)
	}
	return created, nil
}

func (u *TicketPaymentUseCase) ListByTicketNumber(ctx context.Context, tenantID, ticketNumber string) ([]entities.TicketPayment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenant
	}
	ticketNumber = strings.TrimSpace(ticketNumber)
	if ticketNumber == "" {
		return nil, ErrInvalidTicketNumber
	}
	return u.payments.ListByTicketNumber(ctx, tenantID, ticketNumber)
}
