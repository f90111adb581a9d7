package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type TicketPaymentResponse struct {
	ID           string    `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromTicketPayment(p entities.TicketPayment) TicketPaymentResponse {
	return TicketPaymentResponse{
		ID:                 p.ID,
		TicketNumber:       p.TicketNumber,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
