package interfaces

import "fieldops/internal/domain/entities"

// ITicketNotifier fans out lifecycle events to interested systems (push,
// email, webhooks). Delivery is fire-and-forget: implementations must not
// block the caller and a failed notification is not a failed transition.
type ITicketNotifier interface {
	Notify(event string, t entities.FieldTicket)
}
