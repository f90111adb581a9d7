package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const webhookTimeout = 5 * time.Second

type webhookEvent struct {
	Event        string    `json:"event"`
	TenantID     string    `json:"tenant_id"`
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// WebhookNotifier posts lifecycle events to a configured endpoint. Delivery
// happens on a background goroutine; failures are logged and dropped, never
// surfaced to the transition that produced the event.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.ITicketNotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier returns nil when url is empty, which callers treat as
// notifications disabled.
func NewWebhookNotifier(url string) *WebhookNotifier {
	if url == "" {
		return nil
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

func (n *WebhookNotifier) Notify(event string, t entities.FieldTicket) {
	if n == nil {
		return
	}
	go n.deliver(webhookEvent{
		Event:        event,
		TenantID:     t.TenantID,
		TicketNumber: t.TicketNumber,
		Status:       string(t.Status),
		TotalAmount:  t.TotalAmount,
		OccurredAt:   time.Now().UTC(),
	})
}

func (n *WebhookNotifier) deliver(ev webhookEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[notify][webhook] marshal failed event=%s err=%v", ev.Event, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[notify][webhook] request build failed event=%s err=%v", ev.Event, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[notify][webhook] delivery failed event=%s ticket=%s err=%v", ev.Event, ev.TicketNumber, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[notify][webhook] delivery rejected event=%s ticket=%s status=%d", ev.Event, ev.TicketNumber, resp.StatusCode)
		return
	}
	log.Printf("[notify][webhook] delivered event=%s ticket=%s", ev.Event, ev.TicketNumber)
}
