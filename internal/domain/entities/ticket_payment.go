package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome for a billed
// ticket. The engine only persists approved payments; denied exists for
// completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// TicketPayment is a payment recorded against a billed field ticket.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_number-index): ticket_number
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type TicketPayment struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	TicketNumber string        `json:"ticket_number"`
	Amount       float64       `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
