package request

import "encoding/json"

// TicketPaymentCreateRequest is the payload for charging a billed ticket.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// payment provider schemas; the engine only overrides the amount and the
// external reference.

type TicketPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
